// Eco-Tourisme API server.
//
// @title Eco-Tourisme API
// @version 1.0
// @description Sustainable travel recommendation engine over a SPARQL knowledge store
// @BasePath /api/v1
package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/nouraboussaoud/Eco-Tourisme/internal/api/handlers"
	"github.com/nouraboussaoud/Eco-Tourisme/internal/api/router"
	"github.com/nouraboussaoud/Eco-Tourisme/internal/config"
	"github.com/nouraboussaoud/Eco-Tourisme/internal/nlq"
	"github.com/nouraboussaoud/Eco-Tourisme/internal/pkg/logger"
	"github.com/nouraboussaoud/Eco-Tourisme/internal/pkg/validator"
	"github.com/nouraboussaoud/Eco-Tourisme/internal/services"
	"github.com/nouraboussaoud/Eco-Tourisme/internal/store/fuseki"
	"github.com/nouraboussaoud/Eco-Tourisme/internal/worker"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load configuration: %v", err)
	}

	logger.Init(logger.Config{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
	})
	appLogger := logger.New(logger.Config{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
	})

	appLogger.WithFields(map[string]interface{}{
		"environment": cfg.Server.Environment,
		"store":       cfg.Store.QueryEndpoint,
	}).Info("Starting Eco-Tourisme API")

	// Knowledge store
	storeClient := fuseki.NewClient(cfg.Store, appLogger)
	catalog := fuseki.NewCatalog(storeClient, cfg.Store.OntologyNS, appLogger)

	// Natural-language translation, generative when configured
	var translator nlq.Translator = nlq.NewRuleBased(cfg.Store.OntologyNS)
	if cfg.AI.UseGenerative {
		translator = nlq.NewGenerative(cfg.AI.OpenAIAPIKey, cfg.AI.Model, cfg.Store.OntologyNS, appLogger)
		appLogger.Info("Generative query translation enabled")
	}

	// Personality classification, generative when configured
	var classifier services.Classifier = services.NewRuleBasedClassifier()
	if cfg.AI.UseGenerative {
		classifier = services.NewGenerativeClassifier(cfg.AI.OpenAIAPIKey, cfg.AI.Model, appLogger)
		appLogger.Info("Generative personality analysis enabled")
	}

	// Services
	recommendationService := services.NewRecommendationService(catalog, appLogger)
	packageService := services.NewPackageService(appLogger)
	personalityService := services.NewPersonalityService(classifier, appLogger)

	// Handlers
	val := validator.New()
	h := &router.Handlers{
		Health:         handlers.NewHealthHandler(storeClient, appLogger),
		Query:          handlers.NewQueryHandler(translator, storeClient, appLogger, val),
		Contribution:   handlers.NewContributionHandler(catalog, appLogger, val),
		Recommendation: handlers.NewRecommendationHandler(recommendationService, appLogger, val),
		Personality:    handlers.NewPersonalityHandler(personalityService, packageService, catalog, appLogger, val),
	}

	// Background store availability probe
	monitor := worker.NewStoreMonitor(storeClient, cfg.Store.ProbeSchedule, appLogger)
	monitorCtx, cancelMonitor := context.WithCancel(context.Background())
	defer cancelMonitor()
	if err := monitor.Start(monitorCtx); err != nil {
		appLogger.ErrorWithErr(err, "Failed to start store monitor")
	}

	srv := &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:      router.New(cfg, appLogger, h),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	go func() {
		appLogger.WithFields(map[string]interface{}{
			"addr": srv.Addr,
		}).Info("HTTP server listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			appLogger.ErrorWithErr(err, "HTTP server failed")
			os.Exit(1)
		}
	}()

	// Wait for shutdown signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	appLogger.Info("Shutting down")
	cancelMonitor()
	monitor.Stop()

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		appLogger.ErrorWithErr(err, "Forced shutdown")
	}

	appLogger.Info("Server stopped")
}
