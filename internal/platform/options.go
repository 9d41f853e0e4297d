package platform

import (
	"log/slog"

	"github.com/aretw0/daybook/pkg/core"
)

// options holds the internal configuration for the daybook service.
type options struct {
	logger       *slog.Logger
	settingsPath string
	settings     core.SettingsStore
	files        core.FileStore
	classifier   core.Classifier
}

// Option defines a functional option for configuring daybook.
type Option func(*options)

func defaultOptions() *options {
	return &options{}
}

// WithLogger sets the logger for the service.
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// WithSettingsPath overrides the settings file location.
// Defaults to <user config dir>/daybook/settings.yaml.
func WithSettingsPath(path string) Option {
	return func(o *options) {
		o.settingsPath = path
	}
}

// WithSettingsStore injects a custom settings store (e.g. in-memory for
// tests). Takes precedence over WithSettingsPath.
func WithSettingsStore(store core.SettingsStore) Option {
	return func(o *options) {
		o.settings = store
	}
}

// WithFileStore injects a custom document store.
func WithFileStore(store core.FileStore) Option {
	return func(o *options) {
		o.files = store
	}
}

// WithClassifier injects a custom classifier. If not provided, an OpenAI
// classifier is built from the settings record when a credential exists.
func WithClassifier(c core.Classifier) Option {
	return func(o *options) {
		o.classifier = c
	}
}
