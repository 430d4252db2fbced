package request

import "strings"

// ProductRequest is the add-product form payload.
type ProductRequest struct {
	Name         string  `json:"name" binding:"required"`
	Unit         string  `json:"unit"`
	Transactions int     `json:"transactions"`
	UnitValue    float64 `json:"unitValue"`
}

func (r ProductRequest) ResolveName() string {
	return strings.TrimSpace(r.Name)
}
