package entities

// FinancialData is the single derived metrics record for the dashboard.
//
// It is recreated wholesale on every recompute; no caller patches individual
// fields. Uptime is the exception: it is a simulated static value that the
// recompute carries over untouched.

type FinancialData struct {
	Revenue     float64 `json:"revenue"`
	OpCosts     float64 `json:"opCosts"`
	GenExpenses float64 `json:"genExpenses"`
	Ebitda      float64 `json:"ebitda"`
	ROI         float64 `json:"roi"`
	NPS         float64 `json:"nps"`
	Churn       float64 `json:"churn"`
	Uptime      float64 `json:"uptime"`
}

// Budget holds the static per-metric targets shown next to the derived
// metrics. Targets are compiled-in configuration and never persisted.

type Budget struct {
	Revenue     float64 `json:"revenue"`
	OpCosts     float64 `json:"opCosts"`
	GenExpenses float64 `json:"genExpenses"`
	Ebitda      float64 `json:"ebitda"`
	ROI         float64 `json:"roi"`
	NPS         float64 `json:"nps"`
	Churn       float64 `json:"churn"`
	Uptime      float64 `json:"uptime"`
}
