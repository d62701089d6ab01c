package internal

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"resume-evaluator-api/config"
	"resume-evaluator-api/internal/application/ports"
	"resume-evaluator-api/internal/application/services"
	"resume-evaluator-api/internal/domain/plan"
	"resume-evaluator-api/internal/infrastructure/billing"
	"resume-evaluator-api/internal/infrastructure/db/postgres"
	"resume-evaluator-api/internal/infrastructure/db/postgres/analysis"
	"resume-evaluator-api/internal/infrastructure/db/postgres/job_posting"
	"resume-evaluator-api/internal/infrastructure/db/postgres/payment"
	"resume-evaluator-api/internal/infrastructure/db/postgres/tracking"
	"resume-evaluator-api/internal/infrastructure/db/postgres/usage"
	"resume-evaluator-api/internal/infrastructure/db/postgres/user"
	"resume-evaluator-api/internal/infrastructure/db/postgres/user_file"
	"resume-evaluator-api/internal/infrastructure/extract"
	"resume-evaluator-api/internal/infrastructure/gemini"
	"resume-evaluator-api/internal/infrastructure/jsearch"
	"resume-evaluator-api/internal/infrastructure/jwt"
	"resume-evaluator-api/internal/infrastructure/logger"
	"resume-evaluator-api/internal/infrastructure/metrics"
	"resume-evaluator-api/internal/infrastructure/mq"
	"resume-evaluator-api/internal/infrastructure/s3"
	"resume-evaluator-api/internal/interface/api/rest"
	"resume-evaluator-api/internal/interface/api/rest/middleware"
	"resume-evaluator-api/pkg/rmqconsumer"
)

type App struct {
	logger     *zap.Logger
	cfg        config.Config
	db         *pgxpool.Pool
	s3         ports.S3Client
	httpSrv    *http.Server
	router     *gin.Engine
	mCounter   *prometheus.CounterVec
	mq         ports.RabbitMQ
	mqConsumer ports.RMQConsumer
	tokens     ports.TokenValidator
	evaluator  ports.ResumeEvaluator
}

// LoadConfig reads .env when present and then the process environment.
func LoadConfig() (config.Config, error) {
	if err := godotenv.Load(".env"); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return config.Config{}, fmt.Errorf("load .env: %w", err)
	}
	return config.Load(), nil
}

func NewApp(ctx context.Context) (*App, error) {
	// config
	cfg, err := LoadConfig()
	if err != nil {
		return nil, err
	}

	// logger
	log, err := logger.New(cfg.App.Env)
	if err != nil {
		return nil, fmt.Errorf("cannot initialize zap logger: %w", err)
	}

	// metrics
	mCounter := metrics.NewCounter()

	// router
	switch cfg.App.Env {
	case gin.ReleaseMode, "prod", "production":
		gin.SetMode(gin.ReleaseMode)
	case gin.TestMode:
		gin.SetMode(gin.TestMode)
	default:
		gin.SetMode(gin.DebugMode)
	}
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(newCORS(cfg.App))
	r.Use(middleware.RequestLogGin(log, mCounter))

	// httpServer
	httpSrv := &http.Server{
		Addr:              cfg.App.Host + ":" + cfg.App.Port,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	// auth
	tokens, err := newTokenValidator(cfg)
	if err != nil {
		return nil, fmt.Errorf("auth config error: %w", err)
	}

	// db
	dbDsn, err := cfg.DBDSN()
	if err != nil {
		return nil, fmt.Errorf("DB config error: %w", err)
	}
	dbPool, err := postgres.New(ctx, log, dbDsn, cfg.DB.MaxConns)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	if cfg.App.AutoMigrate {
		if err = postgres.Migrate(ctx, dbPool); err != nil {
			dbPool.Close()
			return nil, fmt.Errorf("failed to migrate database: %w", err)
		}
		log.Info("database schema applied")
	}

	// s3
	s3Client, err := s3.New(ctx, log, cfg.S3)
	if err != nil {
		dbPool.Close()
		return nil, fmt.Errorf("failed to connect to S3: %w", err)
	}

	// llm
	gen, err := gemini.NewGenerator(ctx, cfg.Gemini.APIKey, cfg.Gemini.Model)
	if err != nil {
		dbPool.Close()
		return nil, fmt.Errorf("failed to init gemini: %w", err)
	}

	// rabbitMQ
	rabbitDsn, err := cfg.AMQPDSN()
	if err != nil {
		dbPool.Close()
		return nil, fmt.Errorf("RabbitMQ config error: %w", err)
	}
	rbMQ := mq.New(cfg.MQ, log)
	if err = rbMQ.Connect(ctx, rabbitDsn); err != nil {
		dbPool.Close()
		return nil, fmt.Errorf("failed to connect to rabbitMQ: %w", err)
	}
	if err = rbMQ.Init(); err != nil {
		dbPool.Close()
		_ = rbMQ.Close()
		return nil, fmt.Errorf("failed init rabbitMQ: %w", err)
	}
	// rmqConsumer
	rmqConsumer := rmqconsumer.New(cfg.MQ, log, mq.EventTypes())
	if err = rmqConsumer.Connect(rabbitDsn); err != nil {
		dbPool.Close()
		_ = rbMQ.Close()
		return nil, fmt.Errorf("failed to connect rabbitMQ consumer: %w", err)
	}
	if err = rmqConsumer.Init(); err != nil {
		dbPool.Close()
		_ = rmqConsumer.Close()
		_ = rbMQ.Close()
		return nil, fmt.Errorf("failed to init rabbitMQ consumer: %w", err)
	}

	return &App{
		logger:     log,
		cfg:        cfg,
		db:         dbPool,
		s3:         s3Client,
		httpSrv:    httpSrv,
		router:     r,
		mCounter:   mCounter,
		mq:         rbMQ,
		mqConsumer: rmqConsumer,
		tokens:     tokens,
		evaluator:  gemini.NewEvaluator(gen),
	}, nil
}

func newCORS(cfg config.APP) gin.HandlerFunc {
	cc := cors.Config{
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}
	if len(cfg.CORSOrigins) > 0 {
		cc.AllowOrigins = cfg.CORSOrigins
	} else {
		cc.AllowOrigins = []string{cfg.FrontendURL}
	}
	return cors.New(cc)
}

// newTokenValidator prefers the identity provider's JWKS and falls back to
// the shared HS256 secret for local development.
func newTokenValidator(cfg config.Config) (ports.TokenValidator, error) {
	if cfg.Auth.Issuer != "" {
		return jwt.NewVerifier(cfg.Auth.Issuer, cfg.Auth.Audience, cfg.Auth.JWKSURL)
	}
	if cfg.App.JWTSecret == "" {
		return nil, errors.New("either AUTH_ISSUER or SERVICE_JWT_SECRET must be set")
	}
	return jwt.New(cfg.App.JWTSecret), nil
}

func (a *App) Close() {
	if a.db != nil {
		a.db.Close()
	}
	if a.mqConsumer != nil {
		_ = a.mqConsumer.Close()
	}
	if a.mq != nil {
		_ = a.mq.Close()
	}
	if a.logger != nil {
		_ = a.logger.Sync()
	}
}

// Run - The central place to launch and manage our application and
// parallel processes through a single context.
func (a *App) Run(ctx context.Context) error {
	// context with os signals cancel chan
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM, syscall.SIGUSR1)
	defer stop()

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		a.logger.Info("starting "+a.cfg.App.Name, zap.String("addr", a.httpSrv.Addr))
		if err := a.httpSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server "+a.cfg.App.Name+" error: %w", err)
		}

		return nil
	})

	g.Go(func() error {
		a.mq.PublisherWorker(ctx)
		return nil
	})

	g.Go(func() error {
		a.mqConsumer.DeliveryWorker(ctx)
		return nil
	})

	<-ctx.Done()

	a.logger.Info("shutting down " + a.cfg.App.Name + " gracefully...")
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()
	if a.httpSrv != nil {
		if err := a.httpSrv.Shutdown(shutdownCtx); err != nil {
			a.logger.Error("http server shutdown "+a.cfg.App.Name+" error", zap.Error(err))
			return err
		}
	}

	if err := g.Wait(); err != nil {
		a.logger.Error(a.cfg.App.Name+" returning an error", zap.Error(err))
		return err
	}

	a.logger.Info(a.cfg.App.Name + " gracefully stopped")

	return nil
}

func (a *App) InitControllers() {
	// repos
	userRepo := user.NewRepository(a.db)
	usageRepo := usage.NewRepository(a.db)
	userFileRepo := user_file.NewRepository(a.db)
	analysisRepo := analysis.NewRepository(a.db)
	trackingRepo := tracking.NewRepository(a.db)
	paymentRepo := payment.NewRepository(a.db)
	jobRepo := job_posting.NewRepository(a.db)

	// services
	entitlementService := services.NewEntitlementService(userRepo, usageRepo, plan.DefaultCatalog, a.logger, a.mCounter)
	userService := services.NewUserService(userRepo, usageRepo, userFileRepo, a.s3, a.mq, a.logger, a.mCounter)
	userFileService := services.NewUserFileService(a.s3, extract.Extractor{}, userFileRepo, userRepo, a.logger, a.mCounter)
	analysisService := services.NewAnalysisService(userRepo, userFileRepo, analysisRepo, a.evaluator, entitlementService, a.mq, a.logger, a.mCounter)
	generationService := services.NewGenerationService(userRepo, trackingRepo, a.evaluator, entitlementService, a.logger)
	jobService := services.NewJobService(userRepo, jobRepo, jsearch.New(a.cfg.JobSearch.BaseURL, a.cfg.JobSearch.APIKey), entitlementService, a.logger)
	trackingService := services.NewTrackingService(userRepo, trackingRepo, trackingRepo, trackingRepo)
	billingService := services.NewBillingService(
		userRepo,
		paymentRepo,
		billing.NewStripe(a.logger, a.cfg.Stripe),
		a.cfg.App.FrontendURL,
		a.mq,
		a.logger,
		a.mCounter,
	)

	// controllers
	rest.NewUserController(a.router, userService, entitlementService, a.logger, a.tokens)
	rest.NewUserFileController(a.router, userFileService, a.logger, a.tokens)
	rest.NewAnalysisController(a.router, analysisService, generationService, a.logger, a.tokens)
	rest.NewJobController(a.router, jobService, a.logger, a.tokens)
	rest.NewTrackingController(a.router, trackingService, a.logger, a.tokens)
	rest.NewBillingController(a.router, billingService, a.logger, a.tokens)

	// ops
	a.router.GET(rest.RouteHealth, rest.Health(a.cfg.App.Name))
	a.router.GET(rest.RouteMetrics, gin.WrapH(promhttp.Handler()))
}

func (a *App) Logger() *zap.Logger { return a.logger }
