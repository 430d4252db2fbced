package handlers

import (
	"net/http"
	"testing"

	response "newpay_simulator/internal/adapter/http/dto/response"
	"newpay_simulator/internal/domain/entities"
)

func strategyFixture(t *testing.T) *testEnv {
	t.Helper()
	env := newTestEnv(t)
	env.state.Lock()
	env.state.Strategies = append(env.state.Strategies, &entities.Strategy{
		ID: 1, Description: "Expansión regional", ImpactoIngresos: 20,
	})
	env.state.Unlock()
	return env
}

func TestFinancialHandler_GetFinancials(t *testing.T) {
	env := newTestEnv(t)
	rec := env.do(t, http.MethodGet, "/v1/financials", nil)
	mustStatus(t, rec, http.StatusOK)

	got := decode[response.FinancialResponse](t, rec)
	if got.NPS != 50 || got.Churn != 5 || got.Uptime != 99.5 {
		t.Fatalf("expected default metrics, got %+v", got)
	}
}

func TestFinancialHandler_GetBudget(t *testing.T) {
	env := newTestEnv(t)
	rec := env.do(t, http.MethodGet, "/v1/budget", nil)
	mustStatus(t, rec, http.StatusOK)

	got := decode[response.BudgetResponse](t, rec)
	if got.Revenue != 1000000 || got.ROI != 25 || got.Uptime != 99.9 {
		t.Fatalf("unexpected budget: %+v", got)
	}
}

func TestFinancialHandler_ListStrategies(t *testing.T) {
	env := strategyFixture(t)
	rec := env.do(t, http.MethodGet, "/v1/strategies", nil)
	mustStatus(t, rec, http.StatusOK)

	got := decode[[]response.StrategyResponse](t, rec)
	if len(got) != 1 || got[0].ImpactoIngresos != 20 || got[0].Activa {
		t.Fatalf("unexpected list: %+v", got)
	}
}

func TestFinancialHandler_ToggleStrategy(t *testing.T) {
	t.Run("activates and shifts the metrics", func(t *testing.T) {
		env := strategyFixture(t)
		rec := env.do(t, http.MethodPatch, "/v1/strategies/1/toggle", nil)
		mustStatus(t, rec, http.StatusOK)

		got := decode[response.StrategyResponse](t, rec)
		if !got.Activa {
			t.Fatalf("expected activated strategy, got %+v", got)
		}

		rec = env.do(t, http.MethodGet, "/v1/financials", nil)
		fin := decode[response.FinancialResponse](t, rec)
		if fin.NPS != 52 || fin.Churn != 4 {
			t.Fatalf("metrics not recomputed after toggle: %+v", fin)
		}
	})

	t.Run("second toggle deactivates", func(t *testing.T) {
		env := strategyFixture(t)
		env.do(t, http.MethodPatch, "/v1/strategies/1/toggle", nil)
		rec := env.do(t, http.MethodPatch, "/v1/strategies/1/toggle", nil)
		mustStatus(t, rec, http.StatusOK)
		if got := decode[response.StrategyResponse](t, rec); got.Activa {
			t.Fatalf("expected deactivated strategy, got %+v", got)
		}

		rec = env.do(t, http.MethodGet, "/v1/financials", nil)
		if fin := decode[response.FinancialResponse](t, rec); fin.NPS != 50 || fin.Churn != 5 {
			t.Fatalf("metrics not reset after deactivation: %+v", fin)
		}
	})

	t.Run("unknown id", func(t *testing.T) {
		env := strategyFixture(t)
		rec := env.do(t, http.MethodPatch, "/v1/strategies/9/toggle", nil)
		mustStatus(t, rec, http.StatusNotFound)
		mustErrorCode(t, rec, "STRATEGY_NOT_FOUND")
	})

	t.Run("non-numeric id", func(t *testing.T) {
		env := strategyFixture(t)
		rec := env.do(t, http.MethodPatch, "/v1/strategies/x/toggle", nil)
		mustStatus(t, rec, http.StatusBadRequest)
	})
}
