package routes

import (
	"context"
	"log"
	"os"

	_ "supplymind/docs"
	"supplymind/internal/adapter/http/handlers"
	"supplymind/internal/adapter/persistence/memory"
	"supplymind/internal/adapter/persistence/repository"
	"supplymind/internal/config"
	"supplymind/internal/infrastructure/clock"
	"supplymind/internal/infrastructure/database"
	"supplymind/internal/infrastructure/payments"
	"supplymind/internal/infrastructure/signing"
	"supplymind/internal/infrastructure/simulation"
	"supplymind/internal/usecase"
	"supplymind/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// Run will start the server
func Run() {
	cfg := config.Load()
	router := NewRouter(cfg)

	if err := router.Run(cfg.Addr()); err != nil {
		log.Fatalf("Failed to startup the application: %v", err.Error())
	}
}

// NewRouter wires storage, use cases and handlers for cfg and registers every route.
func NewRouter(cfg config.Config) *gin.Engine {
	router := gin.New()
	setMiddlewares(router)

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	getRoutes(router, cfg)
	return router
}

func getRoutes(router *gin.Engine, cfg config.Config) {
	negotiationRepo, mandateRepo := buildRepositories(cfg)
	catalog := buildCatalog(cfg)
	ids := clock.UUIDGenerator{}
	now := clock.SystemClock{}

	negotiationUseCase := usecase.NewNegotiationUseCase(
		negotiationRepo,
		catalog,
		simulation.NewMarkupResponder(cfg.MarkupSeed),
		now,
		ids,
		usecase.NegotiationOptions{
			DefaultBaseCost:  cfg.DefaultBaseCost,
			DefaultMaxRounds: cfg.DefaultMaxRounds,
			StrictMaxRounds:  cfg.MaxRoundsMode == config.MaxRoundsStrict,
		},
	)

	var paymentGateway interfaces.IPaymentGateway
	mpGateway, err := payments.NewMercadoPagoGateway(os.Getenv("MERCADOPAGO_ACCESS_TOKEN"))
	if err != nil {
		log.Printf("[mandate][gateway] not configured, payments are recorded locally only: %v", err)
	} else {
		paymentGateway = mpGateway
	}

	mandateUseCase := usecase.NewPaymentMandateUseCase(
		mandateRepo,
		catalog,
		signing.NewRSAKeyProvider(cfg.SigningKeyID, cfg.SigningKeyPEM, cfg.SigningKeyFile),
		paymentGateway,
		now,
		ids,
		usecase.MandateOptions{
			Issuer:              cfg.MandateIssuer,
			Audience:            cfg.MandateAudience,
			Validity:            cfg.MandateValidity,
			AutoVerifyOnExecute: cfg.AutoVerifyOnExecute,
		},
	)

	mcpHandler := handlers.NewMCPHandler(negotiationUseCase, mandateUseCase)
	negotiationHandler := handlers.NewNegotiationHandler(negotiationUseCase)
	mandateHandler := handlers.NewMandateHandler(mandateUseCase)

	addHealthRoutes(router)
	router.POST(PathMCP, mcpHandler.Handle)

	// Rotas publicas
	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addNegotiationRoutes(v1, negotiationHandler)
	addMandateRoutes(v1, mandateHandler)
}

func buildRepositories(cfg config.Config) (interfaces.INegotiationRepository, interfaces.IPaymentMandateRepository) {
	switch cfg.StorageDriver {
	case config.StorageDriverMemory:
		log.Printf("[storage][memory] using in-memory repositories; state is lost on restart")
		return memory.NewNegotiationRepository(), memory.NewPaymentMandateRepository()
	case config.StorageDriverDynamoDB:
	default:
		log.Printf("[config] unknown STORAGE_DRIVER=%q; using dynamodb", cfg.StorageDriver)
	}
	ddb := database.ConnectDynamoDB()
	return repository.NewNegotiationDynamoRepository(ddb, cfg.SessionsTable, cfg.RoundsTable),
		repository.NewPaymentMandateDynamoRepository(ddb, cfg.MandatesTable)
}

func buildCatalog(cfg config.Config) interfaces.ISupplierCatalog {
	if cfg.CatalogDriver != config.CatalogDriverPostgres {
		return memory.NewDemoSupplierCatalog()
	}
	pool, err := database.ConnectPostgres(context.Background(), cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("[storage][postgres] failed to connect catalog: %v", err)
	}
	return repository.NewSupplierPostgresCatalog(pool)
}

func setMiddlewares(router *gin.Engine) {
	router.Use(gin.Logger())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}
