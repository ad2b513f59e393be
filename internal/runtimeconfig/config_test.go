package runtimeconfig_test

import (
	"errors"
	"testing"

	"github.com/goliatone/go-static-router/internal/runtimeconfig"
)

func TestDefaultConfigValidatesWithContentDir(t *testing.T) {
	cfg := runtimeconfig.DefaultConfig()
	cfg.Content.Dir = "content"

	if err := cfg.Validate(); err != nil {
		t.Fatalf("Validate() returned unexpected error: %v", err)
	}
}

func TestValidateRequiresContentDir(t *testing.T) {
	cfg := runtimeconfig.DefaultConfig()
	cfg.Content.Dir = "   "

	if err := cfg.Validate(); !errors.Is(err, runtimeconfig.ErrContentDirRequired) {
		t.Fatalf("expected ErrContentDirRequired, got %v", err)
	}
}

func TestValidateRequiresDefaultTemplate(t *testing.T) {
	cfg := runtimeconfig.DefaultConfig()
	cfg.Content.Dir = "content"
	cfg.Render.DefaultTemplate = ""

	if err := cfg.Validate(); !errors.Is(err, runtimeconfig.ErrDefaultTemplateRequired) {
		t.Fatalf("expected ErrDefaultTemplateRequired, got %v", err)
	}
}

func TestValidateRejectsNegativeDebounce(t *testing.T) {
	cfg := runtimeconfig.DefaultConfig()
	cfg.Content.Dir = "content"
	cfg.Watch.Debounce = -1

	if err := cfg.Validate(); !errors.Is(err, runtimeconfig.ErrWatchDebounceInvalid) {
		t.Fatalf("expected ErrWatchDebounceInvalid, got %v", err)
	}
}

func TestValidateLoggingSection(t *testing.T) {
	cfg := runtimeconfig.DefaultConfig()
	cfg.Content.Dir = "content"

	cfg.Logging.Provider = "syslog"
	if err := cfg.Validate(); !errors.Is(err, runtimeconfig.ErrLoggingProviderUnknown) {
		t.Fatalf("expected ErrLoggingProviderUnknown, got %v", err)
	}

	cfg.Logging.Provider = "gologger"
	cfg.Logging.Level = "verbose"
	if err := cfg.Validate(); !errors.Is(err, runtimeconfig.ErrLoggingLevelInvalid) {
		t.Fatalf("expected ErrLoggingLevelInvalid, got %v", err)
	}

	cfg.Logging.Level = "debug"
	cfg.Logging.Format = "xml"
	if err := cfg.Validate(); !errors.Is(err, runtimeconfig.ErrLoggingFormatInvalid) {
		t.Fatalf("expected ErrLoggingFormatInvalid, got %v", err)
	}
}

func TestMarkdownConfigParseOptions(t *testing.T) {
	cfg := runtimeconfig.MarkdownConfig{
		Extensions: []string{"tables", "footnote"},
		HardWraps:  true,
	}

	opts := cfg.ParseOptions()
	if len(opts.Extensions) != 2 || !opts.HardWraps {
		t.Fatalf("ParseOptions did not carry values over: %#v", opts)
	}

	opts.Extensions[0] = "mutated"
	if cfg.Extensions[0] != "tables" {
		t.Fatalf("ParseOptions must copy the extension slice")
	}
}

func TestSectionsValidateIndependently(t *testing.T) {
	render := runtimeconfig.RenderConfig{}
	if err := render.Validate(); !errors.Is(err, runtimeconfig.ErrDefaultTemplateRequired) {
		t.Fatalf("expected ErrDefaultTemplateRequired, got %v", err)
	}

	watch := runtimeconfig.WatchConfig{Debounce: -1}
	if err := watch.Validate(); !errors.Is(err, runtimeconfig.ErrWatchDebounceInvalid) {
		t.Fatalf("expected ErrWatchDebounceInvalid, got %v", err)
	}

	logging := runtimeconfig.LoggingConfig{Provider: "syslog"}
	if err := logging.Validate(); !errors.Is(err, runtimeconfig.ErrLoggingProviderUnknown) {
		t.Fatalf("expected ErrLoggingProviderUnknown, got %v", err)
	}
}
