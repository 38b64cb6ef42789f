package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/go-redis/redis_rate/v10"
	"github.com/ijalalfrz/tequila-client/internal/app/config"
	"github.com/ijalalfrz/tequila-client/internal/app/dto"
	"github.com/ijalalfrz/tequila-client/internal/app/endpoints"
	"github.com/ijalalfrz/tequila-client/internal/app/service"
	"github.com/ijalalfrz/tequila-client/internal/app/transport"
	"github.com/ijalalfrz/tequila-client/internal/pkg/locationcache"
	"github.com/ijalalfrz/tequila-client/internal/pkg/logger"
	"github.com/ijalalfrz/tequila-client/internal/pkg/transport/httpclient"
	"github.com/ijalalfrz/tequila-client/pkg/tequila"
	"github.com/redis/go-redis/v9"
)

// @title           Tequila Gateway API
// @version         0.0.1
// @description     HTTP gateway in front of the Kiwi.com Tequila API
// @host      localhost:8080
// @BasePath  /api/v1
// @license.name Rizal Alfarizi
// @license.url https://github.com/ijalalfrz
func main() {
	cfg := config.MustInitConfig(".env")
	logger.InitStructuredLogger(cfg.LogLevel)

	slog.Debug("config loaded successfully", slog.Any("config", cfg))
	runApp(cfg)
}

func runApp(cfg config.Config) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	slog.InfoContext(ctx, "starting...", slog.String("log_level", string(cfg.LogLevel)))

	var waitGroup sync.WaitGroup
	// Starts the server in a go routine
	waitGroup.Add(1)
	go func() {
		defer waitGroup.Done()
		defer cancel()
		startHTTPServer(ctx, cfg)
	}()

	sigChannel := make(chan os.Signal, 1)
	signal.Notify(sigChannel, os.Interrupt, syscall.SIGTERM, syscall.SIGQUIT)

	select {
	case sig := <-sigChannel:
		cancel()
		slog.InfoContext(ctx, "received OS signal. Exiting...", slog.String("signal", sig.String()))
	case <-ctx.Done():
		slog.ErrorContext(ctx, "HTTP server stopped")
	}

	waitGroup.Wait()
	slog.InfoContext(ctx, "All service closed...")
}

func startHTTPServer(ctx context.Context, cfg config.Config) {
	redisClient := redis.NewClient(&redis.Options{
		Addr:         cfg.Redis.Addr,
		Password:     cfg.Redis.Password,
		DB:           cfg.Redis.DB,
		ReadTimeout:  cfg.Redis.Timeout,
		WriteTimeout: cfg.Redis.Timeout,
	})
	defer redisClient.Close()

	endpts, err := makeEndpoints(ctx, cfg, redisClient)
	if err != nil {
		slog.ErrorContext(ctx, "failed to init endpoints", slog.String("error", err.Error()))
		return
	}

	router := transport.MakeHTTPRouter(endpts)
	server := &http.Server{
		Handler:      router,
		Addr:         fmt.Sprintf(":%d", cfg.HTTP.Port),
		WriteTimeout: cfg.HTTP.Timeout,
		ReadTimeout:  cfg.HTTP.Timeout,
	}

	slog.Info("running HTTP server...", slog.Int("port", cfg.HTTP.Port))

	go func() {
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.ErrorContext(ctx, "failed to start HTTP server", slog.String("error", err.Error()))
		}
	}()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTP.Timeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		slog.ErrorContext(ctx, "failed to shutdown HTTP server", slog.String("error", err.Error()))
	}

	slog.InfoContext(ctx, "HTTP server shutdown gracefully")
}

func makeEndpoints(ctx context.Context, cfg config.Config, redisClient *redis.Client) (endpoints.Endpoints, error) {
	if err := dto.InitValidator(); err != nil {
		return endpoints.Endpoints{}, fmt.Errorf("init validator: %w", err)
	}

	var httpClient tequila.HTTPDoer = &http.Client{Timeout: cfg.Tequila.Timeout}
	if cfg.Tequila.RateLimit > 0 {
		// only requests sent upstream take a token
		httpClient = httpclient.NewRateLimitedClient(httpClient, redis_rate.NewLimiter(redisClient),
			httpclient.RateLimitKey, redis_rate.PerSecond(cfg.Tequila.RateLimit))
	}

	client, err := tequila.New(tequila.Config{
		APIKey:     cfg.Tequila.APIKey,
		BaseURL:    cfg.Tequila.BaseURL,
		AuthToken:  cfg.Tequila.AuthToken,
		HTTPClient: httpClient,
	})
	if err != nil {
		return endpoints.Endpoints{}, fmt.Errorf("init tequila client: %w", err)
	}

	slog.InfoContext(ctx, "tequila client ready", slog.String("base_url", client.BaseURL()))

	locationService := service.NewLocationService(client.Location(), locationcache.NewLocationCache(redisClient),
		cfg.Location.CacheExpiration, cfg.Location.LockTimeout)

	manageService := service.NewManageService(client.Manage(), cfg.Tequila.AuthToken != "",
		func(token string) (service.ManageAPI, error) {
			tokenClient, err := client.WithAuthToken(token)
			if err != nil {
				return nil, err
			}

			return tokenClient.Manage(), nil
		})

	return endpoints.Endpoints{
		Location: endpoints.MakeLocationEndpoint(locationService),
		Search:   endpoints.MakeSearchEndpoint(service.NewSearchService(client.Search())),
		Booking:  endpoints.MakeBookingEndpoint(service.NewBookingService(client.Booking())),
		Manage:   endpoints.MakeManageEndpoint(manageService),
	}, nil
}
