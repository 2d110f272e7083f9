package domain

import (
	"bytes"
	_ "embed"
	"fmt"
	"text/template"
)

//go:embed config_template.toml
var configTemplateContent string

// Config represents the application configuration.
// Fields are ordered to minimize memory padding.
type Config struct {
	Warnings []string    `toml:"-"`
	Store    StoreConfig `toml:"store"`
	Log      LogConfig   `toml:"log"`
	UI       UIConfig    `toml:"ui"`
}

// StoreConfig holds settings for the save file from [store] section.
type StoreConfig struct {
	Path string `toml:"path,omitempty"` // Save file path (default: tasks.json in the working directory)
}

// LogConfig holds logging settings from [log] section.
type LogConfig struct {
	Level string `toml:"level,omitempty"` // Log level: debug, info, warn, error
	File  string `toml:"file,omitempty"`  // Log file path (empty = logging disabled)
}

// UIConfig holds presentation defaults from [ui] section.
type UIConfig struct {
	DefaultSort string `toml:"default_sort,omitempty"` // Initial sort criterion for list views
	DefaultView string `toml:"default_view,omitempty"` // Initial TUI view filter
}

// Default configuration values.
const (
	DefaultLogLevel = "info"
	DefaultSort     = string(SortByTitle)
	DefaultView     = "all"
)

// NewDefaultConfig returns a Config with default values.
func NewDefaultConfig() *Config {
	return &Config{
		Store: StoreConfig{
			Path: DefaultStoreFileName,
		},
		Log: LogConfig{
			Level: DefaultLogLevel,
		},
		UI: UIConfig{
			DefaultSort: DefaultSort,
			DefaultView: DefaultView,
		},
	}
}

// templateData holds all data for rendering the config template.
type templateData struct {
	StorePath   string
	LogLevel    string
	LogFile     string
	LogFileHint string
	DefaultSort string
	DefaultView string
}

// RenderConfigTemplate renders a commented config file from the given Config.
func RenderConfigTemplate(cfg *Config) string {
	data := templateData{
		StorePath:   cfg.Store.Path,
		LogLevel:    cfg.Log.Level,
		LogFile:     cfg.Log.File,
		LogFileHint: LogFileName,
		DefaultSort: cfg.UI.DefaultSort,
		DefaultView: cfg.UI.DefaultView,
	}

	tmpl, err := template.New("config").Delims("<<", ">>").Parse(configTemplateContent)
	if err != nil {
		// Should never happen with embedded template
		panic(fmt.Sprintf("failed to parse config template: %v", err))
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		panic(fmt.Sprintf("failed to execute config template: %v", err))
	}

	return buf.String()
}
