package entities

// Strategy is a strategic initiative loaded from the strategy catalog.
//
// ImpactoIngresos is the revenue-impact coefficient consumed by the financial
// recompute: each active strategy shifts NPS by impactoIngresos/10 and churn
// by -impactoIngresos/20. The field names keep the catalog's JSON schema.

type Strategy struct {
	ID              int     `json:"id"`
	Description     string  `json:"description"`
	ImpactoIngresos float64 `json:"impactoIngresos"`
	Activa          bool    `json:"activa"`
}
