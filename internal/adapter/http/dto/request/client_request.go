package request

import "strings"

// ClientLinkRequest is one product row of the add/edit client form. Rows with
// zero transactions or unit value correspond to unchecked products and are
// filtered by the use case.
type ClientLinkRequest struct {
	ProductID    int     `json:"productId" binding:"required"`
	Transactions int     `json:"transactions"`
	UnitValue    float64 `json:"unitValue"`
}

// ClientRequest is the add/edit client form payload.
type ClientRequest struct {
	Name     string              `json:"name" binding:"required"`
	Type     string              `json:"type" binding:"required"`
	Products []ClientLinkRequest `json:"products"`
}

func (r ClientRequest) ResolveName() string {
	return strings.TrimSpace(r.Name)
}

func (r ClientRequest) ResolveType() string {
	return strings.TrimSpace(r.Type)
}
