package usecase

import (
	"errors"
	"log"
	"math"

	"newpay_simulator/internal/domain"
	"newpay_simulator/internal/domain/entities"
)

var ErrStrategyNotFound = errors.New("strategy not found")

const (
	opCostsRate     = 0.30
	genExpensesRate = 0.20
	baseNPS         = 50.0
	baseChurn       = 5.0
)

// IFinancialUseCase derives the financial metrics record and manages the
// strategy flags it consumes.

type IFinancialUseCase interface {
	Recompute() entities.FinancialData
	Snapshot() entities.FinancialData
	Budget() entities.Budget
	ListStrategies() []entities.Strategy
	ToggleStrategy(id int) (entities.Strategy, error)
}

type FinancialUseCase struct {
	state *domain.State
}

var _ IFinancialUseCase = (*FinancialUseCase)(nil)

func NewFinancialUseCase(state *domain.State) *FinancialUseCase {
	return &FinancialUseCase{state: state}
}

// Recompute rebuilds the FinancialData record from the current products and
// the active strategies. It is idempotent: with unchanged inputs, repeated
// calls produce identical output. Uptime is a simulated static value and is
// carried over untouched.
func (u *FinancialUseCase) Recompute() entities.FinancialData {
	u.state.Lock()
	defer u.state.Unlock()

	u.state.FinancialData = recomputeFinancials(u.state.Products, u.state.Strategies, u.state.FinancialData.Uptime)
	return u.state.FinancialData
}

// Snapshot returns the current metrics record without recomputing.
func (u *FinancialUseCase) Snapshot() entities.FinancialData {
	u.state.Lock()
	defer u.state.Unlock()
	return u.state.FinancialData
}

// Budget returns the static per-metric targets.
func (u *FinancialUseCase) Budget() entities.Budget {
	u.state.Lock()
	defer u.state.Unlock()
	return u.state.Budget
}

func (u *FinancialUseCase) ListStrategies() []entities.Strategy {
	u.state.Lock()
	defer u.state.Unlock()
	out := make([]entities.Strategy, 0, len(u.state.Strategies))
	for _, st := range u.state.Strategies {
		out = append(out, *st)
	}
	return out
}

// ToggleStrategy flips a strategy's active flag and refreshes the active-id
// list kept alongside it. The caller is expected to follow up with Recompute.
func (u *FinancialUseCase) ToggleStrategy(id int) (entities.Strategy, error) {
	u.state.Lock()
	defer u.state.Unlock()

	st := u.state.FindStrategy(id)
	if st == nil {
		return entities.Strategy{}, ErrStrategyNotFound
	}
	st.Activa = !st.Activa

	active := make([]int, 0, len(u.state.Strategies))
	for _, s := range u.state.Strategies {
		if s.Activa {
			active = append(active, s.ID)
		}
	}
	u.state.ActiveStrategies = active

	log.Printf("[financial][usecase] strategy toggled id=%d activa=%t", st.ID, st.Activa)
	return *st, nil
}

// recomputeFinancials is the pure derivation: revenue from product rollups,
// fixed 30%/20% cost ratios, ROI over the cost base, and NPS/churn shifted by
// each active strategy's revenue-impact coefficient.
func recomputeFinancials(products []*entities.Product, strategies []*entities.Strategy, uptime float64) entities.FinancialData {
	revenue := 0.0
	for _, p := range products {
		revenue += float64(p.Transactions) * p.UnitValue
	}

	opCosts := revenue * opCostsRate
	genExpenses := revenue * genExpensesRate
	ebitda := revenue - opCosts - genExpenses

	roi := 0.0
	if totalInvestment := opCosts + genExpenses; totalInvestment > 0 {
		roi = (ebitda / totalInvestment) * 100
	}

	npsAdjustment := 0.0
	churnAdjustment := 0.0
	for _, st := range strategies {
		if !st.Activa {
			continue
		}
		npsAdjustment += st.ImpactoIngresos / 10
		churnAdjustment -= st.ImpactoIngresos / 20
	}

	return entities.FinancialData{
		Revenue:     revenue,
		OpCosts:     opCosts,
		GenExpenses: genExpenses,
		Ebitda:      ebitda,
		ROI:         roi,
		NPS:         math.Min(100, math.Max(0, baseNPS+npsAdjustment)),
		Churn:       math.Max(0, baseChurn+churnAdjustment),
		Uptime:      uptime,
	}
}
