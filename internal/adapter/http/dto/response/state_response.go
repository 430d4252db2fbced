package response

import "newpay_simulator/internal/usecase"

// StateResponse is the full dashboard view: everything a client needs to
// render, taken from one consistent read of the store.
type StateResponse struct {
	Products                []ProductResponse  `json:"products"`
	Clients                 []ClientResponse   `json:"clients"`
	Strategies              []StrategyResponse `json:"strategies"`
	SelectedPestelVariables []int              `json:"selectedPestelVariables"`
	SelectedPorterVariables []int              `json:"selectedPorterVariables"`
	ActiveStrategies        []int              `json:"activeStrategies"`
	FinancialData           FinancialResponse  `json:"financialData"`
	Budget                  BudgetResponse     `json:"budget"`
	CurrentSection          string             `json:"currentSection"`
}

func FromSessionView(v usecase.SessionView) StateResponse {
	return StateResponse{
		Products:                FromProducts(v.Products),
		Clients:                 FromClients(v.Clients),
		Strategies:              FromStrategies(v.Strategies),
		SelectedPestelVariables: v.SelectedPestelVariables,
		SelectedPorterVariables: v.SelectedPorterVariables,
		ActiveStrategies:        v.ActiveStrategies,
		FinancialData:           FromFinancialData(v.FinancialData),
		Budget:                  FromBudget(v.Budget),
		CurrentSection:          v.CurrentSection,
	}
}
