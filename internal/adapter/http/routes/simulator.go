package routes

import (
	"newpay_simulator/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathProducts   = "/products"
	PathClients    = "/clients"
	PathStrategies = "/strategies"
)

func addSimulatorRoutes(
	rg *gin.RouterGroup,
	productHandler *handlers.ProductHandler,
	clientHandler *handlers.ClientHandler,
	financialHandler *handlers.FinancialHandler,
	sessionHandler *handlers.SessionHandler,
	snapshotHandler *handlers.SnapshotHandler,
) {
	products := rg.Group(PathProducts)
	{
		products.POST("", productHandler.CreateProduct)
		products.GET("", productHandler.ListProducts)
		products.GET("/:id", productHandler.GetProduct)
	}

	clients := rg.Group(PathClients)
	{
		clients.POST("", clientHandler.CreateClient)
		clients.GET("", clientHandler.ListClients)
		clients.GET("/:id", clientHandler.GetClient)
		clients.PUT("/:id", clientHandler.UpdateClient)
	}

	strategies := rg.Group(PathStrategies)
	{
		strategies.GET("", financialHandler.ListStrategies)
		strategies.PATCH("/:id/toggle", financialHandler.ToggleStrategy)
	}

	rg.GET("/financials", financialHandler.GetFinancials)
	rg.GET("/budget", financialHandler.GetBudget)
	rg.GET("/state", sessionHandler.GetState)
	rg.PUT("/section", sessionHandler.SetSection)
	rg.PUT("/frameworks/pestel/selection", sessionHandler.SetPestelSelection)
	rg.PUT("/frameworks/porter/selection", sessionHandler.SetPorterSelection)
	rg.POST("/snapshot/save", snapshotHandler.SaveSnapshot)
	rg.POST("/snapshot/load", snapshotHandler.LoadSnapshot)
}
