package entities

// ProductClientLink is the product-side half of a product/client association.
//
// Consistency rule:
//   - a product holds one ProductClientLink per linked client, and that client
//     holds the mirrored ClientProductLink with identical transactions,
//     unitValue and revenue.
//
// Revenue is always derived as transactions * unitValue at link time.

type ProductClientLink struct {
	ClientID     int     `json:"id"`
	ClientName   string  `json:"name"`
	Transactions int     `json:"transactions"`
	UnitValue    float64 `json:"unitValue"`
	Revenue      float64 `json:"revenue"`
}

// Product is a payment product of the simulated portfolio.
//
// Rollup fields:
//   - Transactions is the sum of link transactions.
//   - UnitValue is the plain (unweighted) mean of the per-link unit values.
//     This intentionally ignores transaction volume; the dashboard has always
//     displayed it that way and downstream numbers depend on it.
//
// Growth, MarketShare and MarketGrowth are simulation-only values, independent
// of the client links and never recomputed from them.

type Product struct {
	ID           int                 `json:"id"`
	Name         string              `json:"name"`
	Unit         string              `json:"unit"`
	Clients      []ProductClientLink `json:"clients"`
	Transactions int                 `json:"transactions"`
	UnitValue    float64             `json:"unitValue"`
	Growth       float64             `json:"growth"`
	MarketShare  float64             `json:"marketShare"`
	MarketGrowth float64             `json:"marketGrowth"`
	Strategy     string              `json:"strategy"`
}

// Clone returns a deep copy safe to hand out across the store boundary.
func (p Product) Clone() Product {
	out := p
	if p.Clients != nil {
		out.Clients = make([]ProductClientLink, len(p.Clients))
		copy(out.Clients, p.Clients)
	}
	return out
}
