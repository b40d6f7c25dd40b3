package routes

import (
	"log"
	"net/http"
	"os"

	"truckservice/internal/adapter/http/handlers"
	"truckservice/internal/adapter/persistence/repository"
	"truckservice/internal/clock"
	"truckservice/internal/config"
	"truckservice/internal/infrastructure/cache"
	"truckservice/internal/infrastructure/documents"
	"truckservice/internal/infrastructure/workspace"
	"truckservice/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

var router = gin.Default()

// Run wires the whole engine together and starts the server.
func Run() {
	cfg, err := config.Load(getenvDefault("TSM_CONFIG", "config.yaml"))
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	setMiddlewares()
	getRoutes(cfg)

	port := getenvDefault("TSM_PORT", "8080")
	if err := router.Run(":" + port); err != nil {
		log.Fatalf("Failed to startup the application: %v", err)
	}
}

func getRoutes(cfg config.Config) {
	layout, err := workspace.New(cfg)
	if err != nil {
		log.Fatalf("Failed to prepare workspace at %s: %v", cfg.Root, err)
	}
	log.Printf("[routes] workspace ready at %s (%d categories)", cfg.Root, len(layout.Categories()))

	clk := clock.NewSystem()
	store := cache.NewStore(cfg.CacheTTL(), clk)

	worksRepo := repository.NewWorksXLSXRepository(layout, store)
	materialsRepo := repository.NewMaterialsXLSXRepository(layout, store)
	accountingRepo := repository.NewAccountingXLSXRepository(layout)
	headersRepo, err := repository.NewHeaderTemplateJSONRepository(layout.HeaderTemplatesPath())
	if err != nil {
		log.Fatalf("Failed to load header templates: %v", err)
	}
	photoStore := repository.NewFilePhotoStore(layout)

	factory := documents.NewFactory(layout, headersRepo, materialsRepo, cfg.HourlyRate)
	validator := usecase.NewValidator(clk, cfg.MaxPastDays, cfg.MaxFutureDays)

	orderUseCase := usecase.NewOrderSessionUseCase(
		layout, worksRepo, materialsRepo, accountingRepo, headersRepo,
		factory, photoStore, validator, cfg.HourlyRate, cfg.PageSize,
	)
	adminUseCase := usecase.NewCatalogAdminUseCase(layout, worksRepo, headersRepo)

	orderHandler := handlers.NewOrderHandler(orderUseCase)
	catalogHandler := handlers.NewCatalogHandler(adminUseCase)

	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addOrderRoutes(v1, orderHandler)
	addCatalogRoutes(v1, catalogHandler)
}

func setMiddlewares() {
	router.Use(requestID())
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}

// requestID tags every response so a ledger row can be traced back to the
// request that produced it.
func requestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader("X-Request-ID")
		if id == "" {
			id = uuid.NewString()
		}
		c.Header("X-Request-ID", id)
		c.Next()
	}
}

func addPingRoutes(rg *gin.RouterGroup) {
	rg.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})
}

func getenvDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
