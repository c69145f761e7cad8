package main

import (
	"context"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"go.uber.org/zap"

	httpapi "weather-report/internal/api/http"
	"weather-report/internal/config"
	"weather-report/internal/observability"
	"weather-report/internal/report"
	"weather-report/internal/scheduler"
	"weather-report/internal/store"
	"weather-report/internal/weather"
	"weather-report/internal/weather/providers"
)

func main() {
	serve := flag.Bool("serve", false, "run as a long-lived service instead of printing a one-shot report")
	flag.Parse()

	log, err := observability.NewLogger()
	if err != nil {
		fmt.Fprintf(os.Stderr, "logger: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = log.Sync() }()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal("failed to load config", zap.Error(err))
	}

	// Shared HTTP client for outbound calls; the timeout bounds every request.
	httpClient := &http.Client{Timeout: cfg.HTTPTimeout}

	var resolver weather.Resolver
	switch cfg.GeocoderBackend {
	case config.GeocoderGoogle:
		resolver = providers.NewGoogleResolver(cfg.GeocoderAPIKey)
	default:
		resolver = providers.NewOpenMeteoResolver(httpClient)
	}
	observer := providers.NewOpenMeteoObserver(httpClient, cfg.WindUnit)

	service := weather.NewService(resolver, observer)

	if *serve {
		runServe(log, cfg, service)
		return
	}

	if err := runOnce(cfg, service); err != nil {
		// One diagnostic line; the batch is fail-fast so there is nothing
		// partial to report.
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// runOnce fetches the configured cities, prints the report views, and writes
// the CSV artifact.
func runOnce(cfg *config.AppConfig, service *weather.Service) error {
	ctx, cancel := context.WithTimeout(context.Background(), batchTimeout(cfg))
	defer cancel()

	records, err := fetchRun(ctx, cfg, service)
	if err != nil {
		return err
	}

	table, err := report.Normalize(records, cfg.WindUnit)
	if err != nil {
		return err
	}

	out := os.Stdout
	if err := report.WriteText(out, "Cities Ranked by Temperature (Hottest to Coldest):", table.RankByTemperature()); err != nil {
		return err
	}
	if err := report.WriteText(out, "Cities Ranked by Humidity (Driest to Most Humid):", table.RankByHumidity()); err != nil {
		return err
	}
	if err := report.WriteSummaries(out, "Summary Statistics:", table.Describe()); err != nil {
		return err
	}

	warm := table.WarmerThan(cfg.WarmThresholdC)
	title := fmt.Sprintf("Warm Cities (>%g°C):", cfg.WarmThresholdC)
	if warm.Len() == 0 {
		fmt.Fprintf(out, "\n%s none\n", title)
	} else if err := report.WriteText(out, title, warm); err != nil {
		return err
	}

	path, err := table.SaveCSV(cfg.CSVDir, time.Now())
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "\nReport written to %s\n", path)
	return nil
}

// runServe runs the long-lived service: a scheduler refreshing the run store,
// and a fiber API serving pipeline views computed from the latest run.
func runServe(log *zap.Logger, cfg *config.AppConfig, service *weather.Service) {
	runs := store.NewRunStore(cfg.StoreMaxHistory, cfg.StoreMaxAge)

	refresh := func(ctx context.Context) error {
		records, err := fetchRun(ctx, cfg, service)
		if err != nil {
			return err
		}
		runs.Save(store.Run{FetchedAt: time.Now().UTC(), Records: records})
		return nil
	}

	// First run up front so the API has data; a failure here is not fatal,
	// the scheduler will retry.
	initCtx, cancel := context.WithTimeout(context.Background(), batchTimeout(cfg))
	if err := refresh(initCtx); err != nil {
		log.Warn("initial refresh failed", zap.Error(err))
	}
	cancel()

	sched := scheduler.New(cfg.FetchInterval, batchTimeout(cfg), log, refresh)
	if err := sched.Start(); err != nil {
		log.Fatal("failed to start scheduler", zap.Error(err))
	}
	defer sched.Stop()

	app := fiber.New(fiber.Config{
		AppName:               "weather-report",
		DisableStartupMessage: true,
		ReadTimeout:           10 * time.Second,
		WriteTimeout:          10 * time.Second,
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			code := fiber.StatusInternalServerError
			if e, ok := err.(*fiber.Error); ok {
				code = e.Code
			}
			return c.Status(code).JSON(fiber.Map{
				"error":   true,
				"message": err.Error(),
			})
		},
	})

	app.Use(logger.New())
	app.Use(recover.New())

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status":  "ok",
			"service": "weather-report",
		})
	})
	app.Get("/metrics", adaptor.HTTPHandler(observability.MetricsHandler()))

	httpapi.RegisterRoutes(app, runs, cfg.WindUnit)

	go func() {
		if err := app.Listen(":" + cfg.Port); err != nil {
			log.Error("fiber server stopped", zap.Error(err))
		}
	}()
	log.Info("serving weather report",
		zap.String("port", cfg.Port),
		zap.Strings("cities", cfg.Cities),
		zap.Duration("interval", cfg.FetchInterval))

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	<-ctx.Done()

	shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancelShutdown()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error("error during shutdown", zap.Error(err))
	}
}

// fetchRun runs one fail-fast batch and records its metrics.
func fetchRun(ctx context.Context, cfg *config.AppConfig, service *weather.Service) ([]weather.Record, error) {
	start := time.Now()
	records, err := service.FetchAll(ctx, cfg.Cities)
	observability.FetchRunDuration.Observe(time.Since(start).Seconds())
	if err != nil {
		observability.FetchRunsTotal.WithLabelValues("error").Inc()
		return nil, err
	}
	observability.FetchRunsTotal.WithLabelValues("success").Inc()
	return records, nil
}

// batchTimeout bounds a whole sequential batch: one resolve and one
// observation per city, each retried a few times.
func batchTimeout(cfg *config.AppConfig) time.Duration {
	perCity := 2 * cfg.HTTPTimeout * 4 // two endpoints, up to 1+3 attempts each
	return time.Duration(len(cfg.Cities)) * perCity
}
