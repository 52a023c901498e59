package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/nutrabene/backoffice/internal/adapter/api/controller"
	"github.com/nutrabene/backoffice/internal/adapter/api/route"
	"github.com/nutrabene/backoffice/internal/adapter/repository"
	"github.com/nutrabene/backoffice/internal/infrastructure/database"
	"github.com/nutrabene/backoffice/internal/infrastructure/messaging"
	infrareport "github.com/nutrabene/backoffice/internal/infrastructure/report"
	"github.com/nutrabene/backoffice/internal/infrastructure/storage"
	"github.com/nutrabene/backoffice/internal/service/ledger"
	"github.com/nutrabene/backoffice/internal/service/notifier"
	"github.com/nutrabene/backoffice/internal/service/report"
	"github.com/nutrabene/backoffice/pkg/auth"
	"github.com/nutrabene/backoffice/pkg/logger"
	"github.com/nutrabene/backoffice/pkg/middleware"
)

// App agrupa as dependências da aplicação
type App struct {
	router    *gin.Engine
	db        *pgxpool.Pool
	redis     *redis.Client
	renderer  *infrareport.ChromedpRenderer
	scheduler *notifier.Scheduler
	logger    logger.Logger
}

// NewApp monta a aplicação: banco, repositórios, serviços, controllers e rotas
func NewApp() (*App, error) {
	log := logger.NewLogger()

	db, err := database.NewPostgresDB()
	if err != nil {
		return nil, err
	}

	// Repositórios
	adminRepo := repository.NewAdminRepository(db)
	clientRepo := repository.NewClientRepository(db)
	productRepo := repository.NewProductRepository(db)
	resellerRepo := repository.NewResellerRepository(db)
	saleRepo := repository.NewSaleRepository(db)
	entryRepo := repository.NewFinancialEntryRepository(db)
	categoryRepo := repository.NewCategoryRepository(db)
	accountRepo := repository.NewBankAccountRepository(db)
	cardRepo := repository.NewCreditCardRepository(db)
	settingsRepo := repository.NewSettingsRepository(db)

	txManager := database.NewPgxTxManager(db)

	// Serviços
	ledgerService := ledger.NewService(saleRepo, productRepo, entryRepo, accountRepo, cardRepo, txManager, log)

	renderer := infrareport.NewChromedpRenderer(os.Getenv("CHROME_REMOTE_URL"), log)
	reportService := report.NewService(saleRepo, productRepo, resellerRepo, renderer, log)

	location, err := time.LoadLocation("America/Sao_Paulo")
	if err != nil {
		location = time.FixedZone("BRT", -3*60*60)
	}

	gateway := messaging.NewZAPIClient(messaging.Config{
		BaseURL:     os.Getenv("ZAPI_BASE_URL"),
		InstanceID:  os.Getenv("ZAPI_INSTANCE_ID"),
		Token:       os.Getenv("ZAPI_TOKEN"),
		ClientToken: os.Getenv("ZAPI_CLIENT_TOKEN"),
	}, log)

	notifierService := notifier.NewService(clientRepo, settingsRepo, gateway, location, log)

	var redisClient *redis.Client
	if addr := os.Getenv("REDIS_ADDR"); addr != "" {
		redisClient = redis.NewClient(&redis.Options{
			Addr:     addr,
			Password: os.Getenv("REDIS_PASSWORD"),
		})
	}
	scheduler := notifier.NewScheduler(notifierService, redisClient, log)

	// storage de mídia é opcional; sem bucket o upload responde erro amigável
	var uploader storage.Uploader
	if s3Uploader, err := storage.NewS3Uploader(context.Background(), log); err != nil {
		log.Warn("storage de mídia não configurado", "error", err)
	} else {
		uploader = s3Uploader
	}

	jwtService, err := auth.NewJWTService()
	if err != nil {
		return nil, err
	}

	// Controllers
	authController := controller.NewAuthController(adminRepo, jwtService, log)
	clientController := controller.NewClientController(clientRepo, log)
	productController := controller.NewProductController(productRepo, log)
	resellerController := controller.NewResellerController(resellerRepo, ledgerService, reportService, log)
	saleController := controller.NewSaleController(ledgerService, saleRepo, log)
	financeController := controller.NewFinanceController(ledgerService, entryRepo, log)
	categoryController := controller.NewCategoryController(categoryRepo, log)
	accountController := controller.NewAccountController(accountRepo, log)
	cardController := controller.NewCardController(cardRepo, log)
	settingsController := controller.NewSettingsController(settingsRepo, uploader, log)
	reportController := controller.NewReportController(reportService, log)
	jobController := controller.NewJobController(notifierService, log)

	// Router
	if os.Getenv("GIN_MODE") == "" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(gin.Recovery())

	corsConfig := cors.DefaultConfig()
	corsConfig.AllowAllOrigins = true
	corsConfig.AllowHeaders = append(corsConfig.AllowHeaders, "Authorization", "X-Cron-Secret")
	router.Use(cors.New(corsConfig))

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	api := router.Group("/api/v1")
	protected := api.Group("")
	protected.Use(middleware.AuthMiddleware(jwtService, adminRepo))

	route.RegisterAuthRoutes(api, protected, authController)
	route.RegisterClientRoutes(api, protected, clientController)
	route.RegisterJobRoutes(api, jobController)
	route.RegisterProductRoutes(protected, productController)
	route.RegisterResellerRoutes(protected, resellerController)
	route.RegisterSaleRoutes(protected, saleController)
	route.RegisterFinanceRoutes(protected, financeController, categoryController, accountController, cardController)
	route.RegisterSettingsRoutes(protected, settingsController)
	route.RegisterReportRoutes(protected, reportController)

	return &App{
		router:    router,
		db:        db,
		redis:     redisClient,
		renderer:  renderer,
		scheduler: scheduler,
		logger:    log,
	}, nil
}

// Run sobe o servidor HTTP e o agendador de lembretes, e aguarda o sinal de
// encerramento para desligar tudo de forma ordenada
func (a *App) Run() error {
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	server := &http.Server{
		Addr:    ":" + port,
		Handler: a.router,
	}

	a.scheduler.Start()

	errCh := make(chan error, 1)
	go func() {
		a.logger.Info("servidor iniciado", "port", port)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return err
	case sig := <-quit:
		a.logger.Info("sinal recebido, encerrando", "signal", sig.String())
	}

	a.scheduler.Stop()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return server.Shutdown(ctx)
}

// Close libera os recursos da aplicação
func (a *App) Close() {
	if a.renderer != nil {
		a.renderer.Close()
	}
	if a.redis != nil {
		_ = a.redis.Close()
	}
	if a.db != nil {
		a.db.Close()
	}
}
