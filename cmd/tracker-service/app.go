package main

import (
	"context"
	"fmt"

	"golang-portfolio-sentiment/internal/impact"
	"golang-portfolio-sentiment/internal/tracker/config"
	"golang-portfolio-sentiment/internal/tracker/delivery/scheduler"
	"golang-portfolio-sentiment/internal/tracker/repository"
	"golang-portfolio-sentiment/internal/tracker/service"
	"golang-portfolio-sentiment/internal/tracker/strategy"
	"golang-portfolio-sentiment/pkg/common"
	"golang-portfolio-sentiment/pkg/logger"
	"golang-portfolio-sentiment/pkg/postgres"
	"golang-portfolio-sentiment/pkg/redis"
	"golang-portfolio-sentiment/pkg/sentiment"
	"golang-portfolio-sentiment/pkg/telegram"
	"golang-portfolio-sentiment/pkg/utils"

	"google.golang.org/genai"
)

type app struct {
	portfolioSvc service.PortfolioService
	impactSvc    service.ImpactService
	runner       *scheduler.Runner
	closers      []func()
}

func (a *app) Close() {
	for i := len(a.closers) - 1; i >= 0; i-- {
		a.closers[i]()
	}
}

func buildApp(ctx context.Context, cfg *config.Config, appLogger *logger.Logger) (*app, error) {
	a := &app{}

	postgresCfg := postgres.Config{
		Host:            cfg.Database.Host,
		Port:            cfg.Database.Port,
		User:            cfg.Database.User,
		Password:        cfg.Database.Password,
		DBName:          cfg.Database.DBName,
		SSLMode:         cfg.Database.SSLMode,
		TimeZone:        cfg.Database.TimeZone,
		MaxIdleConns:    cfg.Database.MaxIdleConns,
		MaxOpenConns:    cfg.Database.MaxOpenConns,
		ConnMaxLifetime: cfg.Database.ConnMaxLifetime,
		LogLevel:        cfg.Database.LogLevel,
	}
	db, err := postgres.NewDB(postgresCfg)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}
	if sqlDB, err := db.DB.DB(); err == nil {
		a.closers = append(a.closers, func() { _ = sqlDB.Close() })
	}

	var lastPriceRepo repository.LastPriceRepository
	redisClient, err := redis.NewClient(redis.Config{
		Host:     cfg.Redis.Host,
		Port:     cfg.Redis.Port,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
		PoolSize: cfg.Redis.PoolSize,
	})
	if err != nil {
		appLogger.Warn("Redis unavailable, last price fallback disabled", logger.ErrorField(err))
	} else {
		a.closers = append(a.closers, func() { _ = redisClient.Close() })
		lastPriceRepo = repository.NewLastPriceRepository(redisClient.Client)
	}

	clock := utils.SystemClock{}

	// Repositories
	holdingRepo := repository.NewHoldingRepository(db.DB)
	articleRepo := repository.NewNewsArticleRepository(db.DB)
	snapshotRepo := repository.NewImpactSnapshotRepository(db.DB)
	quoteRepo := repository.NewCachedQuoteRepository(
		repository.NewYahooFinanceRepository(cfg.YahooFinance, clock, appLogger),
		repository.NewQuoteCache(cfg.YahooFinance.CacheTTL, clock),
		lastPriceRepo,
		appLogger,
	)
	newsRepo := repository.NewGoogleNewsRepository(cfg.News, appLogger)

	backend, err := newPolarityBackend(ctx, cfg, appLogger)
	if err != nil {
		return nil, err
	}
	keywords := sentiment.NewKeywords(cfg.Sentiment.PositiveKeywords, cfg.Sentiment.NegativeKeywords)
	scorer := sentiment.NewScorer(backend, keywords, cfg.Sentiment.Scorer, appLogger)

	// Services
	a.portfolioSvc = service.NewPortfolioService(holdingRepo, quoteRepo, clock, cfg.Tracker.MaxConcurrentFetch, appLogger)
	a.impactSvc = service.NewImpactService(service.ImpactDeps{
		Holdings:   holdingRepo,
		Quotes:     quoteRepo,
		News:       newsRepo,
		Articles:   articleRepo,
		Snapshots:  snapshotRepo,
		Scorer:     scorer,
		Calculator: impact.NewCalculator(cfg.Impact),
		Clock:      clock,
	}, cfg.Tracker, appLogger)

	notifier := telegram.NewNopNotifier()
	if cfg.Telegram.Enabled {
		notifier, err = telegram.NewClient(cfg.Telegram.BotToken, cfg.Telegram.ChatID)
		if err != nil {
			appLogger.Warn("Telegram notifier disabled", logger.ErrorField(err))
			notifier = telegram.NewNopNotifier()
		}
	}

	// Strategies
	strategies := []strategy.JobStrategy{
		strategy.NewImpactRefreshStrategy(a.impactSvc, notifier, appLogger),
		strategy.NewPriceRefreshStrategy(a.portfolioSvc, appLogger),
	}
	executionRepo := repository.NewJobExecutionRepository(db.DB)
	a.runner = scheduler.NewRunner(strategies, executionRepo, clock, cfg.Tracker.RunTimeout, appLogger)
	if err := a.runner.Schedule(common.JobTypeImpactRefresh, cfg.Scheduler.ImpactRefreshCron); err != nil {
		return nil, err
	}
	if err := a.runner.Schedule(common.JobTypePriceRefresh, cfg.Scheduler.PriceRefreshCron); err != nil {
		return nil, err
	}

	return a, nil
}

func newPolarityBackend(ctx context.Context, cfg *config.Config, appLogger *logger.Logger) (sentiment.PolarityBackend, error) {
	switch cfg.Sentiment.Backend {
	case "gemini":
		client, err := genai.NewClient(ctx, &genai.ClientConfig{
			APIKey:  cfg.Gemini.APIKey,
			Backend: genai.BackendGeminiAPI,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to create gemini client: %w", err)
		}
		appLogger.Info("Using Gemini polarity backend", logger.StringField("model", cfg.Gemini.Model))
		return repository.NewGeminiPolarityRepository(cfg.Gemini, client.Models, appLogger), nil
	case "", "lexicon":
		return sentiment.NewLexiconBackend(), nil
	default:
		return nil, fmt.Errorf("unknown sentiment backend: %s", cfg.Sentiment.Backend)
	}
}
