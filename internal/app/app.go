package app

import (
	"fmt"

	log "github.com/sirupsen/logrus"

	"tasktagger/internal/config"
	"tasktagger/internal/inputprocessor"
	"tasktagger/internal/services"
	"tasktagger/pkg/categorizer"
)

type App struct {
	Config         *config.Config
	InputProcessor inputprocessor.Processor

	// Built once at startup and shared read-only by every request.
	Rules       *categorizer.RuleSet
	Categorizer categorizer.ContentCategorizer

	// --- Initialized Services ---
	CategorizationService *services.CategorizationService
	TaggingService        services.TaggingService
}

func NewApp(cfg *config.Config, inputProc inputprocessor.Processor) (*App, error) {
	if cfg == nil {
		return nil, fmt.Errorf("init app: config is nil")
	}
	app := &App{Config: cfg, InputProcessor: inputProc}
	if app.InputProcessor == nil {
		app.InputProcessor = inputprocessor.New()
	}

	app.initCategorizer()
	app.initServices()

	log.WithFields(log.Fields{
		"rules":           len(app.Rules.Rules()),
		"urgent_triggers": app.Rules.UrgentTriggers(),
	}).Debug("Application initialization complete.")
	return app, nil
}

// --- Private Helper Methods ---

func (a *App) initCategorizer() {
	a.Rules = categorizer.DefaultRuleSet()
	a.Categorizer = categorizer.NewKeywordCategorizer(a.Rules)
}

func (a *App) initServices() {
	a.CategorizationService = services.NewCategorizationService(a.Categorizer)
	a.TaggingService = services.NewTaggingService(a.CategorizationService)
}
