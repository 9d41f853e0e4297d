package platform

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/aretw0/daybook/pkg/settings"
)

func TestNewWiresDefaults(t *testing.T) {
	dir := t.TempDir()
	store := settings.NewStore(filepath.Join(dir, "settings.yaml"))

	rec := settings.Record{NotesPath: filepath.Join(dir, "notes.md")}
	if err := store.Save(context.TODO(), rec); err != nil {
		t.Fatal(err)
	}

	svc, err := New(WithSettingsStore(store))
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	// No credential configured: service builds, classification will
	// report no_credential instead.
	if err := svc.SaveDay(context.TODO(), "2024-01-01", "- wired"); err != nil {
		t.Fatalf("SaveDay through factory wiring failed: %v", err)
	}

	content, ok, err := svc.Day(context.TODO(), "2024-01-01")
	if err != nil || !ok {
		t.Fatalf("Day() = %q, %v, %v", content, ok, err)
	}
	if content != "- wired" {
		t.Errorf("content = %q", content)
	}

	res, err := svc.ClassifyDay(context.TODO(), "2024-01-01", false)
	if err != nil {
		t.Fatalf("ClassifyDay failed: %v", err)
	}
	if res.OK || res.Reason != "no_credential" {
		t.Errorf("result = %+v, want no_credential", res)
	}
}

func TestNewUsesSettingsPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.yaml")

	svc, err := New(WithSettingsPath(path))
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	if err := svc.SetNotesPath(context.TODO(), "/tmp/notes.md"); err != nil {
		t.Fatalf("SetNotesPath failed: %v", err)
	}

	rec, err := settings.NewStore(path).Load(context.TODO())
	if err != nil {
		t.Fatal(err)
	}
	if rec.NotesPath != "/tmp/notes.md" {
		t.Errorf("persisted path = %q", rec.NotesPath)
	}
}
