package platform

import (
	"context"
	"log/slog"

	"github.com/aretw0/daybook/pkg/adapters/fs"
	"github.com/aretw0/daybook/pkg/adapters/openai"
	"github.com/aretw0/daybook/pkg/core"
	"github.com/aretw0/daybook/pkg/settings"
)

// New wires settings, document store and classifier into a core.Service.
//
// The classifier is built from the settings record at construction time:
// changing the credential requires a new service. Everything else
// (document content, taxonomy, notes path) is re-read per operation.
func New(opts ...Option) (*core.Service, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(o)
	}

	logger := o.logger
	if logger == nil {
		logger = slog.Default()
	}

	settingsStore := o.settings
	if settingsStore == nil {
		path := o.settingsPath
		if path == "" {
			var err error
			path, err = settings.DefaultPath()
			if err != nil {
				return nil, err
			}
		}
		settingsStore = settings.NewStore(path)
	}

	files := o.files
	if files == nil {
		files = fs.NewStore(logger)
	}

	classifier := o.classifier
	if classifier == nil {
		rec, err := settingsStore.Load(context.Background())
		if err != nil {
			return nil, err
		}
		if rec.Classifier.APIKey != "" {
			classifier, err = openai.New(rec.Classifier.APIKey,
				openai.WithModel(rec.Classifier.Model),
				openai.WithBaseURL(rec.Classifier.BaseURL),
				openai.WithLogger(logger),
			)
			if err != nil {
				return nil, err
			}
		}
		// No credential: leave the classifier nil; classification then
		// reports no_credential instead of failing construction.
	}

	return core.NewService(files, settingsStore, classifier, logger), nil
}
