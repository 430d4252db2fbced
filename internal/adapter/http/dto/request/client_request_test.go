package request

import (
	"encoding/json"
	"testing"
)

func TestClientRequest_Resolve(t *testing.T) {
	r := ClientRequest{Name: "  Banco del Sur  ", Type: " Banco "}
	if got := r.ResolveName(); got != "Banco del Sur" {
		t.Fatalf("ResolveName: got %q", got)
	}
	if got := r.ResolveType(); got != "Banco" {
		t.Fatalf("ResolveType: got %q", got)
	}
}

func TestClientRequest_Unmarshal(t *testing.T) {
	raw := `{
		"name": "PagoYa",
		"type": "Fintech",
		"products": [{"productId": 2, "transactions": 1500, "unitValue": 1.25}]
	}`

	var r ClientRequest
	if err := json.Unmarshal([]byte(raw), &r); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if r.Name != "PagoYa" || r.Type != "Fintech" {
		t.Fatalf("unexpected payload: %+v", r)
	}
	if len(r.Products) != 1 || r.Products[0].ProductID != 2 || r.Products[0].UnitValue != 1.25 {
		t.Fatalf("unexpected links: %+v", r.Products)
	}
}

func TestProductRequest_ResolveName(t *testing.T) {
	r := ProductRequest{Name: "  Links de Pago  "}
	if got := r.ResolveName(); got != "Links de Pago" {
		t.Fatalf("ResolveName: got %q", got)
	}
}
