// Package app provides the dependency injection container for the application.
package app

import (
	"fmt"

	"github.com/runoshun/tasktrack/internal/domain"
	"github.com/runoshun/tasktrack/internal/infra/codec"
	"github.com/runoshun/tasktrack/internal/infra/config"
	"github.com/runoshun/tasktrack/internal/infra/jsonstore"
	"github.com/runoshun/tasktrack/internal/infra/logging"
	"github.com/runoshun/tasktrack/internal/usecase"
)

// Config holds the resolved application paths.
type Config struct {
	WorkDir   string // Working directory (local config and relative paths)
	StorePath string // Path to the save file
	LogPath   string // Path to the log file (empty = logging disabled)
}

// Container provides dependency injection for the application.
// It holds all port implementations and builds the task service on first use,
// so the save file path can still be overridden after construction.
type Container struct {
	// Ports (interfaces bound to implementations)
	Gateway       domain.TaskGateway
	Files         domain.TaskFiles
	Clock         domain.Clock
	Logger        domain.Logger
	ConfigLoader  domain.ConfigLoader
	ConfigManager domain.ConfigManager

	// Pointer fields
	AppConfig *domain.Config
	service   *usecase.TaskService
	closer    interface{ Close() error }

	// Configuration
	Config Config
}

// New creates a new Container for the given working directory.
// Config load errors are reported as warnings and defaults are used.
func New(workDir string) (*Container, error) {
	configLoader := config.NewLoader(workDir)
	appConfig, err := configLoader.Load()
	if err != nil {
		appConfig = domain.NewDefaultConfig()
		appConfig.Warnings = append(appConfig.Warnings, fmt.Sprintf("load config: %v", err))
	}

	cfg := Config{
		WorkDir:   workDir,
		StorePath: domain.ResolvePath(workDir, appConfig.Store.Path),
		LogPath:   domain.ResolvePath(workDir, appConfig.Log.File),
	}

	clock := domain.RealClock{}
	logger := logging.New(cfg.LogPath, logging.ParseLevel(appConfig.Log.Level))

	return &Container{
		Gateway:       jsonstore.New(cfg.StorePath, clock),
		Files:         codec.Files{},
		Clock:         clock,
		Logger:        logger,
		ConfigLoader:  configLoader,
		ConfigManager: config.NewManager(workDir),
		AppConfig:     appConfig,
		closer:        logger,
		Config:        cfg,
	}, nil
}

// NewWithDeps creates a new Container with custom dependencies for testing.
func NewWithDeps(cfg Config, gateway domain.TaskGateway, clock domain.Clock, logger domain.Logger) *Container {
	if logger == nil {
		logger = domain.NopLogger{}
	}
	return &Container{
		Gateway:      gateway,
		Files:        codec.Files{},
		Clock:        clock,
		Logger:       logger,
		ConfigLoader: staticConfigLoader{},
		AppConfig:    domain.NewDefaultConfig(),
		Config:       cfg,
	}
}

// SetStorePath points the container at a different save file.
// It has no effect once the task service has been built.
func (c *Container) SetStorePath(path string) {
	if c.service != nil || path == "" {
		return
	}
	c.Config.StorePath = domain.ResolvePath(c.Config.WorkDir, path)
	c.Gateway = jsonstore.New(c.Config.StorePath, c.Clock)
}

// TaskService returns the task service, loading the save file on first call.
func (c *Container) TaskService() *usecase.TaskService {
	if c.service == nil {
		c.service = usecase.NewTaskService(c.Gateway, c.Files, c.Clock, c.Logger)
	}
	return c.service
}

// PersistErr reports the task service's last failed save.
// It is nil when the service was never built.
func (c *Container) PersistErr() error {
	if c.service == nil {
		return nil
	}
	return c.service.PersistErr()
}

// Close releases resources held by the container.
func (c *Container) Close() error {
	if c.closer == nil {
		return nil
	}
	return c.closer.Close()
}

// staticConfigLoader returns default configuration.
type staticConfigLoader struct{}

func (staticConfigLoader) Load() (*domain.Config, error) {
	return domain.NewDefaultConfig(), nil
}
