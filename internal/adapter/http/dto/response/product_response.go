package response

import "newpay_simulator/internal/domain/entities"

type ProductClientLinkResponse struct {
	ID           int     `json:"id"`
	Name         string  `json:"name"`
	Transactions int     `json:"transactions"`
	UnitValue    float64 `json:"unitValue"`
	Revenue      float64 `json:"revenue"`
}

type ProductResponse struct {
	ID           int                         `json:"id"`
	Name         string                      `json:"name"`
	Unit         string                      `json:"unit"`
	Clients      []ProductClientLinkResponse `json:"clients"`
	Transactions int                         `json:"transactions"`
	UnitValue    float64                     `json:"unitValue"`
	Growth       float64                     `json:"growth"`
	MarketShare  float64                     `json:"marketShare"`
	MarketGrowth float64                     `json:"marketGrowth"`
	Strategy     string                      `json:"strategy"`
}

func FromProduct(p entities.Product) ProductResponse {
	clients := make([]ProductClientLinkResponse, 0, len(p.Clients))
	for _, link := range p.Clients {
		clients = append(clients, ProductClientLinkResponse{
			ID:           link.ClientID,
			Name:         link.ClientName,
			Transactions: link.Transactions,
			UnitValue:    link.UnitValue,
			Revenue:      link.Revenue,
		})
	}
	return ProductResponse{
		ID:           p.ID,
		Name:         p.Name,
		Unit:         p.Unit,
		Clients:      clients,
		Transactions: p.Transactions,
		UnitValue:    p.UnitValue,
		Growth:       p.Growth,
		MarketShare:  p.MarketShare,
		MarketGrowth: p.MarketGrowth,
		Strategy:     p.Strategy,
	}
}

func FromProducts(products []entities.Product) []ProductResponse {
	out := make([]ProductResponse, 0, len(products))
	for _, p := range products {
		out = append(out, FromProduct(p))
	}
	return out
}
