package routes

import (
	"context"
	"log"

	_ "bengal_portal/docs" // generated by swag init
	"bengal_portal/internal/adapter/persistence/store"
	"bengal_portal/internal/config"
	"bengal_portal/internal/infrastructure/assistant"
	"bengal_portal/internal/infrastructure/database"
	"bengal_portal/internal/infrastructure/payments"
	"bengal_portal/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

var router = gin.Default()

// Run will start the server
func Run() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err.Error())
	}

	setMiddlewares()

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	if err := getRoutes(cfg); err != nil {
		log.Fatalf("Failed to wire the application: %v", err.Error())
	}

	err = router.Run(":" + cfg.Port)
	if err != nil {
		log.Fatalf("Failed to startup the application: %v", err.Error())
	}
}

func getRoutes(cfg config.Config) error {
	ctx := context.Background()

	st, err := newStore(ctx, cfg)
	if err != nil {
		return err
	}

	// The gateway and the assistant are optional: without them quotes fall
	// back to the configured checkout URL and chat answers degrade.
	var paymentGateway interfaces.IPaymentGateway
	mpGateway, err := payments.NewMercadoPagoGateway(cfg.MercadoPagoAccessToken, cfg.PaymentGatewayMock)
	if err != nil {
		log.Printf("Mercado Pago gateway not configured: %v", err)
	} else {
		paymentGateway = mpGateway
	}

	var chatAssistant interfaces.IAssistant
	gemini, err := assistant.NewGeminiAssistant(ctx, cfg.GeminiAPIKey, cfg.AssistantModel)
	if err != nil {
		log.Printf("Gemini assistant not configured: %v", err)
	} else {
		chatAssistant = gemini
	}

	registerRoutes(router, cfg, dependencies{
		store:     st,
		gateway:   paymentGateway,
		assistant: chatAssistant,
		registry:  prometheus.NewRegistry(),
	})
	return nil
}

// newStore picks the durable store behind every repository.
func newStore(ctx context.Context, cfg config.Config) (interfaces.IStore, error) {
	switch cfg.StoreBackend {
	case config.StoreBackendDynamoDB:
		ddb, err := database.ConnectDynamoDB(ctx, cfg)
		if err != nil {
			return nil, err
		}
		return store.NewDynamoStore(ddb, cfg.StoreTable), nil
	case config.StoreBackendRedis:
		rdb, err := database.ConnectRedis(ctx, cfg)
		if err != nil {
			return nil, err
		}
		return store.NewRedisStore(rdb), nil
	default:
		log.Printf("[store][memory] using in-process store; data is lost on restart")
		return store.NewMemoryStore(), nil
	}
}

func setMiddlewares() {
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}
