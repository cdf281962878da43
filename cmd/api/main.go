package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	httptransport "github.com/nuansacp2025/ticketing/internal/api/http"
	"github.com/nuansacp2025/ticketing/internal/api/http/handlers"
	"github.com/nuansacp2025/ticketing/internal/auth"
	"github.com/nuansacp2025/ticketing/internal/config"
	"github.com/nuansacp2025/ticketing/internal/events"
	"github.com/nuansacp2025/ticketing/internal/mailer"
	"github.com/nuansacp2025/ticketing/internal/observability"
	"github.com/nuansacp2025/ticketing/internal/persistence"
	"github.com/nuansacp2025/ticketing/internal/repository"
	"github.com/nuansacp2025/ticketing/internal/service"
	"github.com/nuansacp2025/ticketing/internal/worker"
)

const deliveryLogTTL = 30 * 24 * time.Hour

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger, err := observability.NewLogger(cfg.Logger)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logger.Sync() //nolint:errcheck

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pg, err := persistence.NewPostgres(ctx, cfg.Postgres, logger)
	if err != nil {
		logger.Fatal("failed to connect ticket store", zap.Error(err))
	}
	defer pg.Close()

	if cfg.Postgres.RunMigrations {
		if err := persistence.RunMigrations(ctx, pg.PoolHandle(), logger); err != nil {
			logger.Fatal("failed to run migrations", zap.Error(err))
		}
	}

	redis := persistence.NewRedis(cfg.Redis, logger)
	defer redis.Close()

	metrics := observability.NewMetrics()
	dispatcher := events.NewInMemoryDispatcher()

	ticketRepo := repository.NewTicketRepository(pg.PoolHandle())
	deliveryLog := repository.NewDeliveryLogRepository(redis.Client, deliveryLogTTL)

	resolver := service.NewTicketResolver(ticketRepo, logger)
	generator := service.NewSeatPDFGenerator(cfg.Event)
	composer := service.NewEmailComposer(cfg.Event)
	smtpMailer := mailer.NewSMTPMailer(cfg.Mailer, logger)
	coordinator := service.NewDeliveryCoordinator(resolver, generator, composer, smtpMailer, dispatcher, logger)

	deliveryWorker := worker.NewDeliveryWorker(deliveryLog, metrics, logger)
	deliveryWorker.Register(dispatcher)

	guard := auth.NewCredentialGuard(cfg.Auth)

	app := fiber.New()
	httptransport.RegisterMiddlewares(app, logger, metrics, cfg.App.RequestTimeout())

	httptransport.RegisterRoutes(app, httptransport.RouteConfig{
		Confirmation: handlers.NewConfirmationHandler(coordinator),
		Diag:         handlers.NewDiagHandler(cfg.App.Name, cfg.App.Version, pg, redis),
		Guard:        guard,
	})

	go func() {
		if err := app.Listen(cfg.App.Addr()); err != nil {
			logger.Fatal("fiber listen", zap.Error(err))
		}
	}()

	waitForShutdown(logger)

	_ = app.Shutdown()
}

func waitForShutdown(logger *zap.Logger) {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	sig := <-sigCh
	logger.Info("shutting down", zap.String("signal", sig.String()))
}
