package response

import "newpay_simulator/internal/domain/entities"

type ClientProductLinkResponse struct {
	ID           int     `json:"id"`
	Name         string  `json:"name"`
	Transactions int     `json:"transactions"`
	UnitValue    float64 `json:"unitValue"`
	Revenue      float64 `json:"revenue"`
}

type ClientResponse struct {
	ID           int                         `json:"id"`
	Name         string                      `json:"name"`
	Type         string                      `json:"type"`
	Products     []ClientProductLinkResponse `json:"products"`
	Transactions int                         `json:"transactions"`
	Revenue      float64                     `json:"revenue"`
}

func FromClient(c entities.Client) ClientResponse {
	products := make([]ClientProductLinkResponse, 0, len(c.Products))
	for _, link := range c.Products {
		products = append(products, ClientProductLinkResponse{
			ID:           link.ProductID,
			Name:         link.ProductName,
			Transactions: link.Transactions,
			UnitValue:    link.UnitValue,
			Revenue:      link.Revenue,
		})
	}
	return ClientResponse{
		ID:           c.ID,
		Name:         c.Name,
		Type:         string(c.Type),
		Products:     products,
		Transactions: c.Transactions,
		Revenue:      c.Revenue,
	}
}

func FromClients(clients []entities.Client) []ClientResponse {
	out := make([]ClientResponse, 0, len(clients))
	for _, c := range clients {
		out = append(out, FromClient(c))
	}
	return out
}
