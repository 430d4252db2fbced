package entities

// PESTEL and Porter are the fixed analysis frameworks of the dashboard. The
// catalogs are static configuration reloaded from defaults each session; only
// the selected variable ids are part of the persisted state.

type PestelCategory string

const (
	PestelPolitical     PestelCategory = "political"
	PestelEconomic      PestelCategory = "economic"
	PestelSocial        PestelCategory = "social"
	PestelTechnological PestelCategory = "technological"
	PestelEcological    PestelCategory = "ecological"
	PestelLegal         PestelCategory = "legal"
)

type PorterForce string

const (
	PorterNewEntrants PorterForce = "new-entrants"
	PorterBuyers      PorterForce = "buyers"
	PorterSubstitutes PorterForce = "substitutes"
	PorterCompetition PorterForce = "competition"
	PorterSuppliers   PorterForce = "suppliers"
)

// FrameworkVariable is one selectable entry of a PESTEL category or Porter
// force catalog.

type FrameworkVariable struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}
