package handlers

import (
	"log"
	"net/http"

	request "newpay_simulator/internal/adapter/http/dto/request"
	response "newpay_simulator/internal/adapter/http/dto/response"
	"newpay_simulator/internal/usecase"

	"github.com/gin-gonic/gin"
)

// ProductHandler handles HTTP requests for portfolio products.

type ProductHandler struct {
	association usecase.IAssociationUseCase
	financial   usecase.IFinancialUseCase
}

func NewProductHandler(association usecase.IAssociationUseCase, financial usecase.IFinancialUseCase) *ProductHandler {
	return &ProductHandler{association: association, financial: financial}
}

// CreateProduct registers a new product and refreshes the financial metrics.
//
// @Summary  Add a product
// @Tags     products
// @Accept   json
// @Produce  json
// @Param    payload body request.ProductRequest true "Product"
// @Success  201 {object} response.ProductResponse
// @Failure  400 {object} pkg.HTTPError
// @Router   /products [post]
func (h *ProductHandler) CreateProduct(c *gin.Context) {
	var payload request.ProductRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		writeAppError(c, errInvalidPayload)
		return
	}

	product, err := h.association.AddProduct(payload.ResolveName(), payload.Unit, payload.Transactions, payload.UnitValue)
	if err != nil {
		log.Printf("[product][handler] create failed name=%q err=%v", payload.Name, err)
		writeAppError(c, mapSimulatorError(err))
		return
	}
	h.financial.Recompute()

	c.JSON(http.StatusCreated, response.FromProduct(product))
}

// ListProducts returns all products with their client links.
//
// @Summary  List products
// @Tags     products
// @Produce  json
// @Success  200 {array} response.ProductResponse
// @Router   /products [get]
func (h *ProductHandler) ListProducts(c *gin.Context) {
	c.JSON(http.StatusOK, response.FromProducts(h.association.ListProducts()))
}

// GetProduct returns one product by id.
//
// @Summary  Get a product
// @Tags     products
// @Produce  json
// @Param    id path int true "Product id"
// @Success  200 {object} response.ProductResponse
// @Failure  404 {object} pkg.HTTPError
// @Router   /products/{id} [get]
func (h *ProductHandler) GetProduct(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		writeAppError(c, errInvalidPayload)
		return
	}

	product, err := h.association.GetProduct(id)
	if err != nil {
		writeAppError(c, mapSimulatorError(err))
		return
	}

	c.JSON(http.StatusOK, response.FromProduct(product))
}
