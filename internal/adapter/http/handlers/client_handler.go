package handlers

import (
	"log"
	"net/http"

	request "newpay_simulator/internal/adapter/http/dto/request"
	response "newpay_simulator/internal/adapter/http/dto/response"
	"newpay_simulator/internal/domain/entities"
	"newpay_simulator/internal/usecase"

	"github.com/gin-gonic/gin"
)

// ClientHandler handles HTTP requests for portfolio clients. Every mutation
// refreshes the financial metrics before responding, so readers always see
// numbers consistent with the link state.

type ClientHandler struct {
	association usecase.IAssociationUseCase
	financial   usecase.IFinancialUseCase
}

func NewClientHandler(association usecase.IAssociationUseCase, financial usecase.IFinancialUseCase) *ClientHandler {
	return &ClientHandler{association: association, financial: financial}
}

// CreateClient registers a new client with its product links.
//
// @Summary  Add a client
// @Tags     clients
// @Accept   json
// @Produce  json
// @Param    payload body request.ClientRequest true "Client"
// @Success  201 {object} response.ClientResponse
// @Failure  400 {object} pkg.HTTPError
// @Router   /clients [post]
func (h *ClientHandler) CreateClient(c *gin.Context) {
	var payload request.ClientRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeAppError(c, errInvalidPayload)
		return
	}

	client, err := h.association.AddClient(payload.ResolveName(), entities.ClientType(payload.ResolveType()), toLinkSpecs(payload.Products))
	if err != nil {
		log.Printf("[client][handler] create failed name=%q err=%v", payload.Name, err)
		writeAppError(c, mapSimulatorError(err))
		return
	}
	h.financial.Recompute()

	c.JSON(http.StatusCreated, response.FromClient(client))
}

// UpdateClient replaces a client's identity and its whole link set.
//
// @Summary  Edit a client
// @Tags     clients
// @Accept   json
// @Produce  json
// @Param    id path int true "Client id"
// @Param    payload body request.ClientRequest true "Client"
// @Success  200 {object} response.ClientResponse
// @Failure  400 {object} pkg.HTTPError
// @Failure  404 {object} pkg.HTTPError
// @Router   /clients/{id} [put]
func (h *ClientHandler) UpdateClient(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		writeAppError(c, errInvalidPayload)
		return
	}

	var payload request.ClientRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeAppError(c, errInvalidPayload)
		return
	}

	client, err := h.association.EditClient(id, payload.ResolveName(), entities.ClientType(payload.ResolveType()), toLinkSpecs(payload.Products))
	if err != nil {
		log.Printf("[client][handler] update failed id=%d err=%v", id, err)
		writeAppError(c, mapSimulatorError(err))
		return
	}
	h.financial.Recompute()

	c.JSON(http.StatusOK, response.FromClient(client))
}

// ListClients returns all clients with their product links.
//
// @Summary  List clients
// @Tags     clients
// @Produce  json
// @Success  200 {array} response.ClientResponse
// @Router   /clients [get]
func (h *ClientHandler) ListClients(c *gin.Context) {
	c.JSON(http.StatusOK, response.FromClients(h.association.ListClients()))
}

// GetClient returns one client by id.
//
// @Summary  Get a client
// @Tags     clients
// @Produce  json
// @Param    id path int true "Client id"
// @Success  200 {object} response.ClientResponse
// @Failure  404 {object} pkg.HTTPError
// @Router   /clients/{id} [get]
func (h *ClientHandler) GetClient(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		writeAppError(c, errInvalidPayload)
		return
	}

	client, err := h.association.GetClient(id)
	if err != nil {
		writeAppError(c, mapSimulatorError(err))
		return
	}

	c.JSON(http.StatusOK, response.FromClient(client))
}

func toLinkSpecs(links []request.ClientLinkRequest) []usecase.LinkSpec {
	specs := make([]usecase.LinkSpec, 0, len(links))
	for _, link := range links {
		specs = append(specs, usecase.LinkSpec{
			ProductID:    link.ProductID,
			Transactions: link.Transactions,
			UnitValue:    link.UnitValue,
		})
	}
	return specs
}
