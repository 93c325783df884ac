package routes

import (
	"log"
	"net/http"
	"os"
	"strconv"

	_ "restauplus/docs" // This will be auto-generated
	"restauplus/internal/adapter/http/handlers"
	repository "restauplus/internal/adapter/persistence/repository"
	"restauplus/internal/infrastructure/database"
	"restauplus/internal/usecase"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

var router = gin.Default()

const defaultPort = 8080

// Run will start the server
func Run() {
	setMiddlewares()

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	getRoutes()

	port := defaultPort
	if v := os.Getenv("PORT"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			port = parsed
		}
	}

	if err := router.Run(":" + strconv.Itoa(port)); err != nil {
		log.Fatalf("Failed to startup the application: %v", err.Error())
	}
}

func getRoutes() {
	ddb := database.ConnectDynamoDB()

	orderRepo := repository.NewOrderDynamoRepository(ddb)
	restaurantRepo := repository.NewRestaurantDynamoRepository(ddb)
	menuRepo := repository.NewMenuItemDynamoRepository(ddb)

	orderUseCase := usecase.NewOrderUseCase(orderRepo)
	analyticsUseCase := usecase.NewAnalyticsUseCase(orderRepo)
	receiptUseCase := usecase.NewReceiptUseCase(orderRepo, restaurantRepo, menuRepo)

	orderHandler := handlers.NewOrderHandler(orderUseCase)
	analyticsHandler := handlers.NewAnalyticsHandler(analyticsUseCase)
	receiptHandler := handlers.NewReceiptHandler(receiptUseCase)

	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addOrderRoutes(v1, orderHandler, receiptHandler)
	addAnalyticsRoutes(v1, analyticsHandler)
}

func addPingRoutes(rg *gin.RouterGroup) {
	rg.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}
