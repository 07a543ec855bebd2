package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang-portfolio-sentiment/internal/tracker/config"
	delivery "golang-portfolio-sentiment/internal/tracker/delivery/http"
	_ "golang-portfolio-sentiment/internal/tracker/docs"
	"golang-portfolio-sentiment/pkg/logger"

	"github.com/labstack/echo/v4"
	"github.com/spf13/cobra"
	swagger "github.com/swaggo/echo-swagger"
)

var (
	configPath  string
	impactLimit int
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Starts the portfolio tracker service",
	Run:   runServe,
}

var impactCmd = &cobra.Command{
	Use:   "impact",
	Short: "Runs one impact pass and prints the result as JSON",
	Run:   runImpact,
}

func setup(ctx context.Context) (*config.Config, *logger.Logger, *app) {
	cfg, err := config.Load(configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	appLogger, err := logger.New(cfg.Logger.Level, cfg.Logger.Encoding)
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}

	a, err := buildApp(ctx, cfg, appLogger)
	if err != nil {
		appLogger.Fatal("Failed to initialize tracker", logger.ErrorField(err))
	}
	return cfg, appLogger, a
}

func runServe(cmd *cobra.Command, args []string) {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, appLogger, a := setup(ctx)
	defer func() { _ = appLogger.Sync() }()
	defer a.Close()

	appLogger.Info("Starting Tracker Service", logger.Field("name", cfg.App.Name))

	go a.runner.Start(ctx)

	e := echo.New()
	e.HideBanner = true
	e.Use(delivery.RequestID())

	apiV1 := e.Group("/api/v1")
	delivery.NewPortfolioHandler(a.portfolioSvc, appLogger).RegisterRoutes(apiV1)
	delivery.NewImpactHandler(a.impactSvc, appLogger).RegisterRoutes(apiV1)
	delivery.NewJobHandler(a.runner, appLogger).RegisterRoutes(apiV1.Group("/jobs"))

	e.GET("/swagger/*", swagger.WrapHandler)

	go func() {
		addr := fmt.Sprintf("%s:%d", cfg.API.Host, cfg.API.Port)
		appLogger.Info("HTTP server starting", logger.Field("address", addr))
		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			appLogger.Error("HTTP server failed to start", logger.ErrorField(err))
			stop()
		}
	}()

	<-ctx.Done()

	appLogger.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		appLogger.Error("Server forced to shutdown", logger.ErrorField(err))
	}

	appLogger.Info("Server exiting")
}

func runImpact(cmd *cobra.Command, args []string) {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, appLogger, a := setup(ctx)
	defer func() { _ = appLogger.Sync() }()
	defer a.Close()

	if cfg.Tracker.RunTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, cfg.Tracker.RunTimeout)
		defer cancel()
	}

	resp, err := a.impactSvc.Run(ctx, impactLimit)
	if err != nil {
		appLogger.Fatal("Impact pass failed", logger.ErrorField(err))
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(resp); err != nil {
		appLogger.Fatal("Failed to encode result", logger.ErrorField(err))
	}
}

// @title Portfolio Sentiment API
// @version 1.0
// @description Sentiment-weighted impact of news on a stock portfolio.
// @BasePath /api/v1
func main() {
	rootCmd := &cobra.Command{Use: "tracker-service"}
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "configs/config-tracker.yaml", "Path to the configuration file")
	impactCmd.Flags().IntVarP(&impactLimit, "limit", "n", 0, "Number of top impacts (0 uses the default)")

	rootCmd.AddCommand(serveCmd, impactCmd)
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error executing tracker-service CLI: %s\n", err)
		os.Exit(1)
	}
}
