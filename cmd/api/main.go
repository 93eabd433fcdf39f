package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"slices"
	"strings"
	"syscall"
	"time"
	_ "time/tzdata"

	"aquarium-storefront/internal/auth"
	"aquarium-storefront/internal/client"
	"aquarium-storefront/internal/config"
	"aquarium-storefront/internal/messaging"
	"aquarium-storefront/internal/messaging/kafka"
	"aquarium-storefront/internal/repository"
	"aquarium-storefront/internal/server"
	"aquarium-storefront/internal/service"

	"github.com/caarlos0/env/v10"
	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
)

func main() {
	// load .env into os.Environ
	if err := godotenv.Load(); err != nil {
		fmt.Println("No .env file found (ok in prod)")
	}

	cfg := &config.Config{}
	if err := env.Parse(cfg); err != nil {
		fmt.Printf("Failed to parse config: %v\n", err)
		os.Exit(1)
	}

	slog.SetDefault(newLogger(&cfg.Log))
	decimal.MarshalJSONWithoutQuotes = true

	if err := run(cfg); err != nil {
		slog.Error("storefront stopped", "err", err)
		os.Exit(1)
	}
}

func run(cfg *config.Config) error {
	ctx := context.Background()

	db, err := client.InitDBClient(&cfg.Database)
	if err != nil {
		return err
	}
	defer func() {
		if err := client.CloseDBClient(db); err != nil {
			slog.Error("close database", "err", err)
		}
	}()

	productRepo := repository.NewProductRepository(db)
	orderRepo := repository.NewOrderRepository(db)
	notificationRepo := repository.NewNotificationRepository(db)
	settingsRepo := repository.NewSettingsRepository(db)
	memberRepo := repository.NewMemberRepository(db)

	var cartRepo repository.CartRepository
	switch cfg.Cart.Store {
	case "redis":
		rdb, err := client.InitRedisClient(ctx, &cfg.Redis)
		if err != nil {
			return err
		}
		defer rdb.Close()
		cartRepo = repository.NewRedisCartRepository(rdb, cfg.Redis.CartTTL)
	case "sql", "":
		cartRepo = repository.NewCartRepository(db)
	default:
		return fmt.Errorf("unsupported cart store %q", cfg.Cart.Store)
	}

	brokers := slices.DeleteFunc(cfg.Kafka.Brokers, func(b string) bool {
		return strings.TrimSpace(b) == ""
	})
	var publisher messaging.Publisher = messaging.NewNopPublisher()
	if len(brokers) > 0 {
		publisher = kafka.NewPublisher(brokers)
		slog.Info("publishing order events", "brokers", brokers, "topic", cfg.Kafka.OrdersTopic)
	}
	defer func() {
		if err := publisher.Close(); err != nil {
			slog.Error("close publisher", "err", err)
		}
	}()

	catalogService := service.NewCatalogService(productRepo)
	if _, err := catalogService.Bootstrap(ctx, cfg.Catalog.SeedFile); err != nil {
		return err
	}

	locks := service.NewSessionLocks()
	settingsService := service.NewSettingsService(settingsRepo)
	notificationService := service.NewNotificationService(
		notificationRepo,
		settingsService,
		client.NewLineClient(&cfg.Line),
		loadLocation(cfg.Locale.Timezone),
		cfg.Line.HandoffDelay,
	)
	defer notificationService.Close()

	provider := auth.NewProvider(cfg.Auth.IdpSecret)
	slog.Info("login provider selected", "provider", provider.Name())

	services := server.Services{
		Catalog: catalogService,
		Cart:    service.NewCartService(productRepo, cartRepo, locks),
		Orders: service.NewOrderService(
			cartRepo, orderRepo,
			notificationService,
			publisher, cfg.Kafka.OrdersTopic,
			locks,
		),
		Notification: notificationService,
		Settings:     settingsService,
		Members: service.NewMemberService(
			provider,
			auth.NewSessions(cfg.Auth.SessionSecret, cfg.Auth.SessionTTL),
			memberRepo,
		),
	}

	serverAddr := cfg.HTTP.Host + ":" + cfg.HTTP.Port

	// Init HTTP server
	srv := server.NewServer(services, cfg.Cart.SessionCookie)

	serverErr := make(chan error, 1)
	slog.Info("Starting HTTP server", "addr", serverAddr, "environment", cfg.Environment.Name)
	go func() {
		if err := srv.Start(serverAddr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGTERM, syscall.SIGINT)

	select {
	case err := <-serverErr:
		return fmt.Errorf("http server: %w", err)
	case <-sigChan:
	}
	slog.Info("Signal received, starting graceful shutdown...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("http server shutdown: %w", err)
	}
	return nil
}

func newLogger(cfg *config.Log) *slog.Logger {
	var level slog.Level
	if err := level.UnmarshalText([]byte(cfg.Level)); err != nil {
		level = slog.LevelInfo
	}
	opts := &slog.HandlerOptions{Level: level}

	if strings.EqualFold(cfg.Format, "text") {
		return slog.New(slog.NewTextHandler(os.Stdout, opts))
	}
	return slog.New(slog.NewJSONHandler(os.Stdout, opts))
}

// loadLocation falls back to UTC+8 when the zone database has no entry.
func loadLocation(name string) *time.Location {
	loc, err := time.LoadLocation(name)
	if err != nil {
		slog.Warn("unknown timezone, using UTC+8", "timezone", name, "err", err)
		return time.FixedZone("CST", 8*60*60)
	}
	return loc
}
