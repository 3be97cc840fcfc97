package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/khoahotran/portfolio/adapters/event"
	httpAdapter "github.com/khoahotran/portfolio/adapters/http"
	"github.com/khoahotran/portfolio/adapters/media_storage"
	"github.com/khoahotran/portfolio/adapters/portfolioapi"
	"github.com/khoahotran/portfolio/adapters/ratelimit"
	authUC "github.com/khoahotran/portfolio/internal/application/usecase/auth"
	contactUC "github.com/khoahotran/portfolio/internal/application/usecase/contact"
	"github.com/khoahotran/portfolio/internal/application/usecase/section"
	"github.com/khoahotran/portfolio/internal/config"
	"github.com/khoahotran/portfolio/pkg/auth"
	"github.com/khoahotran/portfolio/pkg/logger"
	"github.com/khoahotran/portfolio/pkg/tracing"
)

const serviceName = "portfolio-web"

func main() {
	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		panic("cannot load config: " + err.Error())
	}

	appLogger := logger.NewZapLogger(cfg.App.Env)
	defer logger.Sync(appLogger)
	appLogger.Info("Start Portfolio Web Server...", zap.String("env", cfg.App.Env), zap.String("backend", cfg.API.BaseURL))

	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	shutdownTracing, err := tracing.NewTracerProvider(cfg, appLogger, serviceName)
	if err != nil {
		appLogger.Fatal("cannot init tracing", err)
	}
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := shutdownTracing(ctx); err != nil {
			appLogger.Error("failed to shut down tracer provider", err)
		}
	}()

	// Backend client
	clientCfg := portfolioapi.ClientConfigFrom(cfg)
	client := portfolioapi.NewClient(clientCfg, appLogger)
	api := portfolioapi.NewService(client)

	// Optional infrastructure
	formOpts := contactUC.Options{SuccessWindow: cfg.Contact.SuccessWindow}

	if cfg.Redis.Addr != "" {
		redisClient, err := ratelimit.NewRedisClient(cfg, appLogger)
		if err != nil {
			appLogger.Warn("Redis unavailable, contact rate limiting disabled", zap.Error(err))
		} else {
			defer redisClient.Close()
			formOpts.Limiter = ratelimit.NewFixedWindow(redisClient, cfg.Contact.RateLimit, cfg.Contact.RateWindow)
		}
	}

	if len(cfg.Kafka.Brokers) > 0 {
		kafkaClient, err := event.NewKafkaProducerClient(cfg, appLogger)
		if err != nil {
			appLogger.Fatal("cannot init Kafka", err)
		}
		defer kafkaClient.Close()
		formOpts.Notifier = kafkaClient
	}

	images, err := media_storage.NewImageResolver(cfg, appLogger)
	if err != nil {
		appLogger.Fatal("Failed to initialize image resolver", err)
	}

	// Services
	jwtSvc := auth.NewJWTService(cfg.Auth.JWTSecret, cfg.Auth.TokenLifespan)
	if !jwtSvc.Enabled() {
		appLogger.Warn("JWT_SECRET not set, admin routes disabled")
	}

	// Use Cases
	loaders := section.NewLoaders(api, cfg.API.UserID, appLogger)
	contactForm := contactUC.NewForm(api, appLogger, formOpts)
	loginUseCase := authUC.NewLoginUseCase(cfg.Auth.AdminPasswordHash, jwtSvc, appLogger)

	// HTTP Handlers
	tmpl, err := httpAdapter.LoadTemplates(images, time.Now)
	if err != nil {
		appLogger.Fatal("cannot parse templates", err)
	}

	router := httpAdapter.NewRouter(httpAdapter.RouterDeps{
		Templates: tmpl,
		ImagesDir: cfg.App.ImagesDir,
		JWT:       jwtSvc,
		Logger:    appLogger,
		Pages:     httpAdapter.NewPageHandler(loaders),
		Contact:   httpAdapter.NewContactHandler(contactForm),
		Health:    httpAdapter.NewHealthHandler(api, appLogger),
		Auth:      httpAdapter.NewAuthHandler(loginUseCase, appLogger),
		Admin:     httpAdapter.NewAdminHandler(api, images, appLogger),
	})

	srv := &http.Server{
		Addr:              ":" + cfg.App.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		appLogger.Info("Server running", zap.String("port", cfg.App.Port))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			appLogger.Fatal("Cannot run server", err)
		}
	}()

	<-ctx.Done()
	appLogger.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		appLogger.Error("server forced to shut down", err)
	}
}
