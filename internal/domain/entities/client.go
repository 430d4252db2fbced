package entities

// ClientType classifies simulator clients.

type ClientType string

const (
	ClientTypeBanco   ClientType = "Banco"
	ClientTypeFintech ClientType = "Fintech"
)

// Valid reports whether the type is one of the supported values.
func (t ClientType) Valid() bool {
	return t == ClientTypeBanco || t == ClientTypeFintech
}

// ClientProductLink is the client-side half of a product/client association.
// It mirrors the product's ProductClientLink for the same pair.

type ClientProductLink struct {
	ProductID    int     `json:"id"`
	ProductName  string  `json:"name"`
	Transactions int     `json:"transactions"`
	UnitValue    float64 `json:"unitValue"`
	Revenue      float64 `json:"revenue"`
}

// Client is a portfolio client (bank or fintech).
//
// Rollup fields: Transactions and Revenue are the sums over Products.

type Client struct {
	ID           int                 `json:"id"`
	Name         string              `json:"name"`
	Type         ClientType          `json:"type"`
	Products     []ClientProductLink `json:"products"`
	Transactions int                 `json:"transactions"`
	Revenue      float64             `json:"revenue"`
}

// Clone returns a deep copy safe to hand out across the store boundary.
func (c Client) Clone() Client {
	out := c
	if c.Products != nil {
		out.Products = make([]ClientProductLink, len(c.Products))
		copy(out.Products, c.Products)
	}
	return out
}
