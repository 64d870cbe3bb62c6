package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/jordanlanch/bizradar/config"
	"github.com/jordanlanch/bizradar/pkg/api/handlers"
	"github.com/jordanlanch/bizradar/pkg/cache"
	"github.com/jordanlanch/bizradar/pkg/database"
	"github.com/jordanlanch/bizradar/pkg/export"
	"github.com/jordanlanch/bizradar/pkg/finance"
	"github.com/jordanlanch/bizradar/pkg/jobs"
	"github.com/jordanlanch/bizradar/pkg/leadgen"
	"github.com/jordanlanch/bizradar/pkg/logger"
	"github.com/jordanlanch/bizradar/pkg/marketanalysis"
	"github.com/jordanlanch/bizradar/pkg/sentiment"
	"github.com/jordanlanch/bizradar/pkg/store"
	"github.com/jordanlanch/bizradar/pkg/support"
)

func main() {
	cfg := config.Load()
	log := logger.New(cfg.LogLevel, cfg.LogFormat)
	log.Info("configuration loaded", "environment", cfg.APIEnvironment)

	db, err := database.NewClient(cfg.DatabasePath)
	if err != nil {
		log.Error("failed to open database", "error", err)
		os.Exit(1)
	}
	defer db.Close()
	log.Info("database ready", "path", cfg.DatabasePath)

	// Report caching degrades gracefully when redis is unreachable.
	var redisClient *cache.Client
	if cfg.RedisURL != "" {
		redisClient, err = cache.NewClient(cfg.RedisURL)
		if err != nil {
			log.Warn("redis unavailable, report caching disabled", "error", err)
			redisClient = nil
		} else {
			defer redisClient.Close()
			log.Info("redis connected")
		}
	}

	var scorer sentiment.Scorer
	if cfg.OpenAIAPIKey != "" {
		scorer = sentiment.NewOpenAIScorer(cfg.OpenAIAPIKey, cfg.OpenAIModel)
		log.Info("using openai sentiment scorer", "model", cfg.OpenAIModel)
	} else {
		scorer = sentiment.NewLexiconScorer()
		log.Info("using lexicon sentiment scorer")
	}

	st := store.New(db.DB, log)
	financeClient := finance.NewClient(cfg.FinanceBaseURL)
	collector := finance.NewCollector(financeClient, st, scorer, log)

	leadAgent := leadgen.NewAgent(st, log)
	cacheTTL := time.Duration(cfg.AnalysisCacheTTL) * time.Minute
	analysisAgent := marketanalysis.NewAgent(st, collector, redisClient, cacheTTL, log)
	supportAgent := support.NewAgent(st, scorer, cfg.ReminderLogPath, log)
	exportService := export.NewService(st, cfg.ExportDir, log)

	cronManager := jobs.NewCronManager(supportAgent, st, cfg.ReportTicker, cfg.ReportRegion, cfg.ReportCronSchedule, log)
	if err := cronManager.SetupJobs(); err != nil {
		log.Error("failed to set up cron jobs", "error", err)
		os.Exit(1)
	}
	cronManager.Start()
	defer cronManager.Stop()

	e := echo.New()
	e.HideBanner = true

	e.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogStatus: true,
		LogURI:    true,
		LogError:  true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			log.Info("request", "method", c.Request().Method, "uri", v.URI, "status", v.Status)
			return nil
		},
	}))
	e.Use(middleware.Recover())
	e.Use(middleware.CORS())

	e.GET("/", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]any{
			"name":        "BizRadar API",
			"status":      "running",
			"environment": cfg.APIEnvironment,
			"timestamp":   time.Now().Unix(),
		})
	})

	e.GET("/health", func(c echo.Context) error {
		if err := db.Ping(); err != nil {
			return c.JSON(http.StatusServiceUnavailable, map[string]any{
				"status":   "unhealthy",
				"database": "down",
			})
		}
		cacheStatus := "disabled"
		if redisClient != nil {
			cacheStatus = "up"
			if err := redisClient.Redis.Ping(c.Request().Context()).Err(); err != nil {
				cacheStatus = "down"
			}
		}
		return c.JSON(http.StatusOK, map[string]any{
			"status":   "healthy",
			"database": "up",
			"cache":    cacheStatus,
		})
	})

	leadGenHandler := handlers.NewLeadGenHandler(leadAgent, exportService)
	analysisHandler := handlers.NewMarketAnalysisHandler(analysisAgent, collector)
	supportHandler := handlers.NewSupportHandler(supportAgent)

	v1 := e.Group("/api/v1")

	v1.POST("/icps", leadGenHandler.DefineICP)
	v1.GET("/icps/:name", leadGenHandler.GetICP)
	v1.POST("/leads/generate", leadGenHandler.GenerateLeads)
	v1.POST("/leads/export", leadGenHandler.ExportLeads)

	v1.POST("/analysis/competitor", analysisHandler.AnalyzeCompetitor)
	v1.POST("/analysis/trends", analysisHandler.IdentifyTrends)
	v1.POST("/analysis/swot", analysisHandler.PerformSWOT)
	v1.POST("/analysis/segment", analysisHandler.AnalyzeSegment)
	v1.POST("/companies/collect", analysisHandler.CollectCompany)

	v1.POST("/support/sentiment", supportHandler.TopicSentiment)
	v1.GET("/support/news/industry/:industry", supportHandler.IndustryNews)
	v1.GET("/support/news/company", supportHandler.CompanyNews)
	v1.POST("/support/reminders", supportHandler.SetReminder)
	v1.GET("/support/reminders", supportHandler.ViewReminders)
	v1.POST("/support/reports/summary", supportHandler.SummaryReport)

	go func() {
		addr := cfg.APIHost + ":" + cfg.APIPort
		log.Info("starting server", "addr", addr)
		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			log.Error("server stopped", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Info("shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(ctx); err != nil {
		log.Error("forced shutdown", "error", err)
	}
}
