package handlers

import (
	"net/http"

	request "newpay_simulator/internal/adapter/http/dto/request"
	response "newpay_simulator/internal/adapter/http/dto/response"
	"newpay_simulator/internal/usecase"

	"github.com/gin-gonic/gin"
)

// SessionHandler serves the full dashboard view and the per-session UI state
// (framework selections, current section).

type SessionHandler struct {
	session usecase.ISessionUseCase
}

func NewSessionHandler(session usecase.ISessionUseCase) *SessionHandler {
	return &SessionHandler{session: session}
}

// GetState returns the whole dashboard view.
//
// @Summary  Get full simulator state
// @Tags     state
// @Produce  json
// @Success  200 {object} response.StateResponse
// @Router   /state [get]
func (h *SessionHandler) GetState(c *gin.Context) {
	c.JSON(http.StatusOK, response.FromSessionView(h.session.View()))
}

// SetPestelSelection replaces the selected PESTEL variable ids.
//
// @Summary  Set PESTEL selection
// @Tags     frameworks
// @Accept   json
// @Produce  json
// @Param    payload body request.SelectionRequest true "Selection"
// @Success  200 {object} request.SelectionRequest
// @Router   /frameworks/pestel/selection [put]
func (h *SessionHandler) SetPestelSelection(c *gin.Context) {
	var payload request.SelectionRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeAppError(c, errInvalidPayload)
		return
	}
	ids := h.session.SetPestelSelection(payload.IDs)
	c.JSON(http.StatusOK, request.SelectionRequest{IDs: ids})
}

// SetPorterSelection replaces the selected Porter variable ids.
//
// @Summary  Set Porter selection
// @Tags     frameworks
// @Accept   json
// @Produce  json
// @Param    payload body request.SelectionRequest true "Selection"
// @Success  200 {object} request.SelectionRequest
// @Router   /frameworks/porter/selection [put]
func (h *SessionHandler) SetPorterSelection(c *gin.Context) {
	var payload request.SelectionRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeAppError(c, errInvalidPayload)
		return
	}
	ids := h.session.SetPorterSelection(payload.IDs)
	c.JSON(http.StatusOK, request.SelectionRequest{IDs: ids})
}

// SetSection records the dashboard section the user navigated to.
//
// @Summary  Set current section
// @Tags     state
// @Accept   json
// @Produce  json
// @Param    payload body request.SectionRequest true "Section"
// @Success  200 {object} request.SectionRequest
// @Failure  400 {object} pkg.HTTPError
// @Router   /section [put]
func (h *SessionHandler) SetSection(c *gin.Context) {
	var payload request.SectionRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeAppError(c, errInvalidPayload)
		return
	}

	section, err := h.session.SetSection(payload.Section)
	if err != nil {
		writeAppError(c, mapSimulatorError(err))
		return
	}
	c.JSON(http.StatusOK, request.SectionRequest{Section: section})
}
