package response

import "newpay_simulator/internal/domain/entities"

type FinancialResponse struct {
	Revenue     float64 `json:"revenue"`
	OpCosts     float64 `json:"opCosts"`
	GenExpenses float64 `json:"genExpenses"`
	Ebitda      float64 `json:"ebitda"`
	ROI         float64 `json:"roi"`
	NPS         float64 `json:"nps"`
	Churn       float64 `json:"churn"`
	Uptime      float64 `json:"uptime"`
}

func FromFinancialData(f entities.FinancialData) FinancialResponse {
	return FinancialResponse{
		Revenue:     f.Revenue,
		OpCosts:     f.OpCosts,
		GenExpenses: f.GenExpenses,
		Ebitda:      f.Ebitda,
		ROI:         f.ROI,
		NPS:         f.NPS,
		Churn:       f.Churn,
		Uptime:      f.Uptime,
	}
}

type BudgetResponse struct {
	Revenue     float64 `json:"revenue"`
	OpCosts     float64 `json:"opCosts"`
	GenExpenses float64 `json:"genExpenses"`
	Ebitda      float64 `json:"ebitda"`
	ROI         float64 `json:"roi"`
	NPS         float64 `json:"nps"`
	Churn       float64 `json:"churn"`
	Uptime      float64 `json:"uptime"`
}

func FromBudget(b entities.Budget) BudgetResponse {
	return BudgetResponse{
		Revenue:     b.Revenue,
		OpCosts:     b.OpCosts,
		GenExpenses: b.GenExpenses,
		Ebitda:      b.Ebitda,
		ROI:         b.ROI,
		NPS:         b.NPS,
		Churn:       b.Churn,
		Uptime:      b.Uptime,
	}
}

type StrategyResponse struct {
	ID              int     `json:"id"`
	Description     string  `json:"description"`
	ImpactoIngresos float64 `json:"impactoIngresos"`
	Activa          bool    `json:"activa"`
}

func FromStrategy(s entities.Strategy) StrategyResponse {
	return StrategyResponse{
		ID:              s.ID,
		Description:     s.Description,
		ImpactoIngresos: s.ImpactoIngresos,
		Activa:          s.Activa,
	}
}

func FromStrategies(strategies []entities.Strategy) []StrategyResponse {
	out := make([]StrategyResponse, 0, len(strategies))
	for _, s := range strategies {
		out = append(out, FromStrategy(s))
	}
	return out
}
