package core

import (
	"context"

	"github.com/aretw0/daybook/pkg/settings"
)

// FileStore defines the contract for the whole-file text resource backing
// the document. Adhering to this interface keeps the core independent of
// the underlying storage mechanism (filesystem, memory, remote).
//
// There is no lock or transaction token around the read-modify-write
// cycle: concurrent operations can race and the last writer's full
// document wins. Callers that need serialization must provide it.
type FileStore interface {
	// Read returns the full document text, with line endings normalized
	// to \n. A missing file surfaces as fs.ErrNotExist.
	Read(ctx context.Context, path string) (string, error)

	// Write replaces the full document text.
	Write(ctx context.Context, path, text string) error
}

// SettingsStore persists the configuration record. The core reads a fresh
// record at the start of every operation and writes it back whole; it
// never caches one across calls.
type SettingsStore interface {
	Load(ctx context.Context) (settings.Record, error)
	Save(ctx context.Context, rec settings.Record) error
}
