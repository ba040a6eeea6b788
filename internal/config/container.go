package config

import (
	"fmt"

	"github.com/Thomaslgrn/pdftotexte/internal/domain"
	"github.com/Thomaslgrn/pdftotexte/internal/infra/pdfengine"
	"github.com/Thomaslgrn/pdftotexte/internal/service"
	"github.com/Thomaslgrn/pdftotexte/pkg/logger"
)

// Container holds all application dependencies
type Container struct {
	Config    domain.Config
	Logger    domain.Logger
	Engine    domain.PDFEngine
	Extractor domain.TextExtractor

	appLogger *logger.AppLogger
}

// NewContainer creates a new dependency injection container
func NewContainer(cfg domain.Config) (*Container, error) {
	appLogger := logger.NewLogger(cfg.GetLogLevel())

	engine, err := pdfengine.NewEngine(cfg.GetPDFEngine())
	if err != nil {
		return nil, fmt.Errorf("configure pdf engine: %w", err)
	}

	return &Container{
		Config:    cfg,
		Logger:    appLogger,
		Engine:    engine,
		Extractor: service.NewExtractionService(engine, appLogger),
		appLogger: appLogger,
	}, nil
}

// Close flushes the logger
func (c *Container) Close() {
	if c.appLogger != nil {
		_ = c.appLogger.Sync()
	}
}
