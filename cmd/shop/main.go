package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"

	"github.com/Skotchmaster/shop/internal/config"
	"github.com/Skotchmaster/shop/internal/db"
	"github.com/Skotchmaster/shop/internal/events"
	"github.com/Skotchmaster/shop/internal/httpserver"
	"github.com/Skotchmaster/shop/internal/logging"
	"github.com/Skotchmaster/shop/internal/middleware/auth"
	loggingmw "github.com/Skotchmaster/shop/internal/middleware/logging"
	"github.com/Skotchmaster/shop/internal/repo"
	"github.com/Skotchmaster/shop/internal/service"
	"github.com/Skotchmaster/shop/internal/tokens"
)

func main() {
	config.LoadEnvFile(".env")

	cfg := config.Load()
	logger := logging.New(cfg.LogLevel, cfg.ServiceName)
	if err := cfg.Validate(); err != nil {
		logger.Fatal().Err(err).Msg("invalid configuration")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	gdb, err := db.Open(ctx, cfg.DBDriver, cfg.DatabaseURL)
	if err == nil {
		err = db.Migrate(ctx, gdb)
	}
	cancel()
	if err != nil {
		logger.Fatal().Err(err).Str("driver", cfg.DBDriver).Msg("db init failed")
	}

	var publisher events.Publisher = events.Nop{}
	var producer *events.Producer
	if len(cfg.KafkaBrokers) > 0 {
		producer, err = events.NewProducer(cfg.KafkaBrokers)
		if err != nil {
			logger.Fatal().Err(err).Msg("kafka producer init failed")
		}
		publisher = producer
	} else {
		logger.Warn().Msg("KAFKA_BROKERS not set, domain events are dropped")
	}

	issuer := tokens.NewIssuer(cfg.JWTSecret, cfg.JWTTTL)
	store := repo.New(gdb)
	categories := &service.CategoryService{Repo: store}
	products := &service.ProductService{Repo: store}
	users := &service.UserService{Repo: store, Tokens: issuer}

	if cfg.ManagerUsername != "" {
		seedCtx, seedCancel := context.WithTimeout(logging.IntoContext(context.Background(), logger), 5*time.Second)
		created, err := users.EnsureManager(seedCtx, cfg.ManagerUsername, cfg.ManagerPassword)
		seedCancel()
		if err != nil {
			logger.Fatal().Err(err).Str("username", cfg.ManagerUsername).Msg("bootstrap manager failed")
		}
		logger.Info().Str("username", cfg.ManagerUsername).Bool("created", created).Msg("bootstrap manager ensured")
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Pre(echomw.RemoveTrailingSlash())
	e.Use(echomw.Recover())
	e.Use(echomw.RequestID())
	e.Use(loggingmw.RequestLogger(logger))
	e.Use(echomw.CORS())

	httpserver.Register(e, &httpserver.Deps{
		CategoryHandler: &httpserver.CategoryHTTP{Svc: categories, Events: publisher},
		ProductHandler:  &httpserver.ProductHTTP{Svc: products, Events: publisher},
		UserHandler:     &httpserver.UserHTTP{Svc: users, Events: publisher},
		Gate:            auth.NewGate(issuer),
		DB:              gdb,
	})

	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           e,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      15 * time.Second,
		ReadHeaderTimeout: 3 * time.Second,
	}

	go func() {
		logger.Info().Str("addr", srv.Addr).Msg("shop listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal().Err(err).Msg("listen")
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error().Err(err).Msg("http shutdown")
	}
	if producer != nil {
		if err := producer.Close(); err != nil {
			logger.Error().Err(err).Msg("kafka producer close")
		}
	}
	if err := db.Close(gdb); err != nil {
		logger.Error().Err(err).Msg("db close")
	}

	logger.Info().Msg("shop stopped")
}
