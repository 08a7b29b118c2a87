package routes

import (
	"log"
	"os"
	"strconv"

	_ "grafica_xpto/docs" // This will be auto-generated
	"grafica_xpto/internal/adapter/http/handlers"
	repository2 "grafica_xpto/internal/adapter/persistence/repository"
	"grafica_xpto/internal/infrastructure/database"
	"grafica_xpto/internal/infrastructure/payments"
	"grafica_xpto/internal/usecase"
	"grafica_xpto/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

var router = gin.Default()

const PORT = 8080

// Run will start the server
func Run() {
	setMiddlewares()

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	getRoutes()

	err := router.Run(":" + strconv.Itoa(PORT))
	if err != nil {
		log.Fatalf("Failed to startup the application: %v", err.Error())
	}
}

func getRoutes() {
	ddb := database.ConnectDynamoDB()

	quoteRepo := repository2.NewQuoteDynamoRepository(ddb)
	catalogRepo := repository2.NewCatalogDynamoRepository(ddb)

	catalogUseCase := usecase.NewCatalogUseCase(catalogRepo)
	quoteUseCase := usecase.NewQuoteUseCase(quoteRepo, catalogRepo)

	var paymentGateway interfaces.IPaymentGateway
	mpGateway, err := payments.NewMercadoPagoGateway(os.Getenv("MERCADOPAGO_ACCESS_TOKEN"))
	if err != nil {
		log.Printf("Mercado Pago gateway not configured: %v", err)
	} else {
		paymentGateway = mpGateway
	}

	saleUseCase := usecase.NewSaleUseCase(quoteUseCase, quoteRepo, paymentGateway)

	quoteHandler := handlers.NewQuoteHandler(quoteUseCase)
	saleHandler := handlers.NewSaleHandler(saleUseCase)
	catalogHandler := handlers.NewCatalogHandler(catalogUseCase)

	// Rotas publicas
	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addPricingRoutes(v1, quoteHandler, saleHandler, catalogHandler)
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}
