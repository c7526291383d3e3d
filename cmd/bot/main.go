package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"

	"github.com/worldwidesim/esim-store/internal/bot"
	"github.com/worldwidesim/esim-store/internal/catalog"
	"github.com/worldwidesim/esim-store/internal/config"
	"github.com/worldwidesim/esim-store/internal/database"
	"github.com/worldwidesim/esim-store/internal/esim"
	"github.com/worldwidesim/esim-store/internal/handler"
	"github.com/worldwidesim/esim-store/internal/middleware"
	"github.com/worldwidesim/esim-store/internal/repository"
	"github.com/worldwidesim/esim-store/internal/service"
)

func main() {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	log.Logger = zerolog.New(os.Stdout).With().Timestamp().Caller().Logger()

	cfg := config.Load()
	gin.SetMode(cfg.GinMode)

	if cfg.BotToken == "" {
		log.Fatal().Msg("BOT_TOKEN is required")
	}

	// Startup self-test: every region country must resolve to a code.
	if missing, unreferenced := catalog.VerifyCountries(); len(missing) > 0 || len(unreferenced) > 0 {
		log.Warn().
			Strs("missing_codes", missing).
			Strs("unreferenced", unreferenced).
			Msg("region/country data inconsistent")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Order storage degrades to memory when no database is reachable;
	// orders are the only durable state this process keeps.
	var orders repository.OrderStore = repository.NewMemoryOrderStore()
	pool, err := database.NewPool(ctx, cfg.DatabaseURL())
	if err != nil {
		log.Warn().Err(err).Msg("database unavailable, keeping orders in memory")
		pool = nil
	} else {
		defer pool.Close()
		if cfg.AutoMigrate {
			if err := database.RunMigrations(cfg.DatabaseURL()); err != nil {
				log.Fatal().Err(err).Msg("failed to run migrations")
			}
		}
		orders = repository.NewOrderRepository(pool)
	}

	esimClient := esim.NewClient(cfg.EsimBaseURL, cfg.EsimAccessCode)
	rates := service.NewRateService(
		cfg.RateMarketURL, cfg.RateCentralURL,
		cfg.RatePair, cfg.RateCurrency,
		cfg.RateFallback, cfg.RateCacheTTL,
	)
	catalogSvc := service.NewCatalogService(esimClient)
	sessions := repository.NewSessionStore(cfg.SessionTTL)
	purchases := service.NewPurchaseService(catalogSvc, rates, esimClient, sessions, orders)

	tg, err := bot.New(cfg.BotToken, purchases)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to start bot")
	}

	router := gin.New()
	router.Use(middleware.Logger())
	router.Use(middleware.ErrorHandler())
	router.Use(gin.Recovery())

	healthHandler := handler.NewHealthHandler(pool)
	router.GET("/health", healthHandler.Health)

	orderHandler := handler.NewOrderHandler(orders)
	api := router.Group("/api/v1")
	{
		api.GET("/users/:user_id/orders", orderHandler.ListByUser)
	}

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		log.Info().Str("port", cfg.Port).Msg("starting ops server")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	g.Go(func() error {
		err := tg.Run(gctx)
		if errors.Is(err, context.Canceled) {
			return nil
		}
		return err
	})

	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		log.Fatal().Err(err).Msg("service failed")
	}

	log.Info().Msg("service exited")
}
