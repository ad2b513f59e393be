// Package runtimeconfig holds the configuration surface for the static
// router. The root package re-exports these types so hosts configure the
// module without importing internal packages.
package runtimeconfig

import (
	"errors"
	"strings"
	"time"

	"github.com/goliatone/go-static-router/pkg/interfaces"
)

var ErrContentDirRequired = errors.New("staticrouter config: content directory is required")
var ErrDefaultTemplateRequired = errors.New("staticrouter config: default template is required")
var ErrWatchDebounceInvalid = errors.New("staticrouter config: watch debounce must be zero or positive")
var ErrLoggingProviderUnknown = errors.New("staticrouter config: logging provider is invalid")
var ErrLoggingLevelInvalid = errors.New("staticrouter config: logging level is invalid")
var ErrLoggingFormatInvalid = errors.New("staticrouter config: logging format is invalid")

// Config aggregates content discovery, rendering, watch, and logging options.
// Fields intentionally use simple types so host applications can unmarshal
// them from their own configuration files.
type Config struct {
	Content  ContentConfig
	Markdown MarkdownConfig
	Render   RenderConfig
	Watch    WatchConfig
	Logging  LoggingConfig
}

// ContentConfig captures how documents are discovered.
type ContentConfig struct {
	// Dir is the content root the loader walks.
	Dir string
	// Pattern limits discovery to matching files (defaults to "*.md").
	Pattern string
	// Recursive controls traversal into sub-directories.
	Recursive bool
	// IncludeDrafts serves documents marked draft: true.
	IncludeDrafts bool
	// RequireFrontMatter fails the load when a document has no metadata block.
	RequireFrontMatter bool
}

// MarkdownConfig mirrors interfaces.ParseOptions with config-friendly names.
type MarkdownConfig struct {
	Extensions []string
	Sanitize   bool
	HardWraps  bool
	SafeMode   bool
}

// ParseOptions converts the config section into parser options.
func (m MarkdownConfig) ParseOptions() interfaces.ParseOptions {
	return interfaces.ParseOptions{
		Extensions: append([]string(nil), m.Extensions...),
		Sanitize:   m.Sanitize,
		HardWraps:  m.HardWraps,
		SafeMode:   m.SafeMode,
	}
}

// RenderConfig controls template resolution at request time.
type RenderConfig struct {
	// DefaultTemplate is used when a page's frontmatter names no template.
	DefaultTemplate string
}

// WatchConfig enables content directory watching with automatic reloads.
type WatchConfig struct {
	Enabled  bool
	Debounce time.Duration
}

// LoggingConfig captures provider-specific options for runtime logging.
type LoggingConfig struct {
	Provider  string
	Level     string
	Format    string
	AddSource bool
	Focus     []string
}

// DefaultConfig returns the settings a typical host starts from: recursive
// discovery of *.md files, mandatory frontmatter, "default" template, watch
// disabled, and no-op logging.
func DefaultConfig() Config {
	return Config{
		Content: ContentConfig{
			Pattern:            "*.md",
			Recursive:          true,
			RequireFrontMatter: true,
		},
		Render: RenderConfig{
			DefaultTemplate: "default",
		},
		Watch: WatchConfig{
			Debounce: 100 * time.Millisecond,
		},
		Logging: LoggingConfig{
			Provider: "noop",
			Level:    "info",
			Format:   "console",
		},
	}
}

// Validate checks cross-field consistency before the module boots. Each
// section validates independently so callers that replace one concern (a
// custom content loader, say) can still verify the rest.
func (c Config) Validate() error {
	if err := c.Content.Validate(); err != nil {
		return err
	}
	if err := c.Render.Validate(); err != nil {
		return err
	}
	if err := c.Watch.Validate(); err != nil {
		return err
	}
	return c.Logging.Validate()
}

// Validate checks the content discovery section.
func (c ContentConfig) Validate() error {
	if strings.TrimSpace(c.Dir) == "" {
		return ErrContentDirRequired
	}
	return nil
}

// Validate checks the render section.
func (c RenderConfig) Validate() error {
	if strings.TrimSpace(c.DefaultTemplate) == "" {
		return ErrDefaultTemplateRequired
	}
	return nil
}

// Validate checks the watch section.
func (c WatchConfig) Validate() error {
	if c.Debounce < 0 {
		return ErrWatchDebounceInvalid
	}
	return nil
}

// Validate checks the logging section.
func (c LoggingConfig) Validate() error {
	switch strings.ToLower(strings.TrimSpace(c.Provider)) {
	case "", "noop", "gologger":
	default:
		return ErrLoggingProviderUnknown
	}

	switch strings.ToLower(strings.TrimSpace(c.Level)) {
	case "", "trace", "debug", "info", "warn", "error", "fatal":
	default:
		return ErrLoggingLevelInvalid
	}

	switch strings.ToLower(strings.TrimSpace(c.Format)) {
	case "", "json", "console", "pretty":
	default:
		return ErrLoggingFormatInvalid
	}

	return nil
}
