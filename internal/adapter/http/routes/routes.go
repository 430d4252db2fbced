package routes

import (
	"context"
	"log"
	"math/rand"
	"os"
	"strconv"
	"time"

	_ "newpay_simulator/docs" // This will be auto-generated
	"newpay_simulator/internal/adapter/http/handlers"
	repository2 "newpay_simulator/internal/adapter/persistence/repository"
	"newpay_simulator/internal/domain"
	"newpay_simulator/internal/infrastructure/database"
	"newpay_simulator/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

var router = gin.Default()

const PORT = 8080

var httpRequestsTotal = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Name: "newpay_http_requests_total",
		Help: "HTTP requests served, by method, route and status.",
	},
	[]string{"method", "route", "status"},
)

// Run will start the server
func Run() {
	setMiddlewares()

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	prometheus.MustRegister(httpRequestsTotal)
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	getRoutes()

	err := router.Run(":" + strconv.Itoa(PORT))
	if err != nil {
		log.Fatalf("Failed to startup the application: %v", err.Error())
	}
}

func getRoutes() {
	state := domain.NewState()

	ddb := database.ConnectDynamoDB()
	snapshotRepo := repository2.NewSnapshotDynamoRepository(ddb)
	catalogLoader := repository2.NewFileCatalogLoader()

	associationUseCase := usecase.NewAssociationUseCase(state)
	financialUseCase := usecase.NewFinancialUseCase(state)
	sessionUseCase := usecase.NewSessionUseCase(state)
	snapshotUseCase := usecase.NewSnapshotUseCase(state, snapshotRepo, os.Getenv("SNAPSHOT_KEY"))
	seedUseCase := usecase.NewSeedUseCase(state, rand.New(rand.NewSource(time.Now().UnixNano())))

	bootstrap := usecase.NewBootstrapUseCase(state, catalogLoader, snapshotUseCase, seedUseCase, financialUseCase)
	bootstrap.Initialize(context.Background())

	productHandler := handlers.NewProductHandler(associationUseCase, financialUseCase)
	clientHandler := handlers.NewClientHandler(associationUseCase, financialUseCase)
	financialHandler := handlers.NewFinancialHandler(financialUseCase)
	sessionHandler := handlers.NewSessionHandler(sessionUseCase)
	snapshotHandler := handlers.NewSnapshotHandler(snapshotUseCase, sessionUseCase)

	// Rutas publicas
	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addSimulatorRoutes(v1, productHandler, clientHandler, financialHandler, sessionHandler, snapshotHandler)
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
	router.Use(requestIDMiddleware())
	router.Use(metricsMiddleware())
}

// requestIDMiddleware tags every request with an X-Request-ID so log lines
// from one call can be correlated.
func requestIDMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader("X-Request-ID")
		if requestID == "" {
			requestID = uuid.NewString()
		}
		c.Writer.Header().Set("X-Request-ID", requestID)
		c.Next()
	}
}

func metricsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()
		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		httpRequestsTotal.WithLabelValues(c.Request.Method, route, strconv.Itoa(c.Writer.Status())).Inc()
	}
}
