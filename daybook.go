package daybook

import (
	"log/slog"

	"github.com/aretw0/daybook/internal/platform"
	"github.com/aretw0/daybook/pkg/core"
)

// --- Types ---

// Service is the public alias for the journal service.
type Service = core.Service

// Event is the public alias for notification payloads.
type Event = core.Event

// ClassifyResult is the public alias for per-day classification outcomes.
type ClassifyResult = core.ClassifyResult

// --- Configuration ---

// Option defines a functional option for configuring daybook.
type Option = platform.Option

// WithLogger sets the logger for the service.
func WithLogger(logger *slog.Logger) Option {
	return platform.WithLogger(logger)
}

// WithSettingsPath overrides the settings file location.
func WithSettingsPath(path string) Option {
	return platform.WithSettingsPath(path)
}

// WithSettingsStore allows injecting a custom settings store.
func WithSettingsStore(store core.SettingsStore) Option {
	return platform.WithSettingsStore(store)
}

// WithFileStore allows injecting a custom document store.
func WithFileStore(store core.FileStore) Option {
	return platform.WithFileStore(store)
}

// WithClassifier allows injecting a custom classifier.
func WithClassifier(c core.Classifier) Option {
	return platform.WithClassifier(c)
}

// --- Factory ---

// New creates a new daybook Service.
func New(opts ...Option) (*core.Service, error) {
	return platform.New(opts...)
}
