package handlers

import (
	"log"
	"net/http"

	response "newpay_simulator/internal/adapter/http/dto/response"
	"newpay_simulator/internal/usecase"

	"github.com/gin-gonic/gin"
)

// FinancialHandler serves the derived metrics, the budget targets and the
// strategy toggles.

type FinancialHandler struct {
	financial usecase.IFinancialUseCase
}

func NewFinancialHandler(financial usecase.IFinancialUseCase) *FinancialHandler {
	return &FinancialHandler{financial: financial}
}

// GetFinancials returns the current financial snapshot.
//
// @Summary  Get financial metrics
// @Tags     financials
// @Produce  json
// @Success  200 {object} response.FinancialResponse
// @Router   /financials [get]
func (h *FinancialHandler) GetFinancials(c *gin.Context) {
	c.JSON(http.StatusOK, response.FromFinancialData(h.financial.Snapshot()))
}

// GetBudget returns the static per-metric targets.
//
// @Summary  Get budget targets
// @Tags     financials
// @Produce  json
// @Success  200 {object} response.BudgetResponse
// @Router   /budget [get]
func (h *FinancialHandler) GetBudget(c *gin.Context) {
	c.JSON(http.StatusOK, response.FromBudget(h.financial.Budget()))
}

// ListStrategies returns all strategies with their active flags.
//
// @Summary  List strategies
// @Tags     strategies
// @Produce  json
// @Success  200 {array} response.StrategyResponse
// @Router   /strategies [get]
func (h *FinancialHandler) ListStrategies(c *gin.Context) {
	c.JSON(http.StatusOK, response.FromStrategies(h.financial.ListStrategies()))
}

// ToggleStrategy flips a strategy's active flag and refreshes the metrics.
//
// @Summary  Toggle a strategy
// @Tags     strategies
// @Produce  json
// @Param    id path int true "Strategy id"
// @Success  200 {object} response.StrategyResponse
// @Failure  404 {object} pkg.HTTPError
// @Router   /strategies/{id}/toggle [patch]
func (h *FinancialHandler) ToggleStrategy(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		writeAppError(c, errInvalidPayload)
		return
	}

	strategy, err := h.financial.ToggleStrategy(id)
	if err != nil {
		log.Printf("[financial][handler] toggle failed id=%d err=%v", id, err)
		writeAppError(c, mapSimulatorError(err))
		return
	}
	h.financial.Recompute()

	c.JSON(http.StatusOK, response.FromStrategy(strategy))
}
