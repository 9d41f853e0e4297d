package settings

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/aretw0/daybook/pkg/taxonomy"
)

func TestLoadMissingFile(t *testing.T) {
	store := NewStore(filepath.Join(t.TempDir(), "settings.yaml"))

	rec, err := store.Load(context.TODO())
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if rec.NotesPath != "" || len(rec.CustomStates) != 0 {
		t.Errorf("expected zero record, got %+v", rec)
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "settings.yaml")
	store := NewStore(path)
	ctx := context.TODO()

	title := "Job"
	rec := Record{
		NotesPath: "/home/me/notes.md",
		CustomStates: []taxonomy.State{
			{Code: "cre", Title: "Creative Work", Color: taxonomy.ColorRed},
		},
		StateOverrides: map[string]taxonomy.Patch{
			"w": {Title: &title},
		},
		Classifier: ClassifierConfig{APIKey: "sk-test", Model: "gpt-4o-mini"},
	}

	if err := store.Save(ctx, rec); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	got, err := store.Load(ctx)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if got.NotesPath != rec.NotesPath {
		t.Errorf("notes path = %q", got.NotesPath)
	}
	if len(got.CustomStates) != 1 || got.CustomStates[0].Code != "cre" {
		t.Errorf("custom states = %+v", got.CustomStates)
	}
	patch, ok := got.StateOverrides["w"]
	if !ok || patch.Title == nil || *patch.Title != "Job" {
		t.Errorf("overrides = %+v", got.StateOverrides)
	}
	if got.Classifier.APIKey != "sk-test" {
		t.Errorf("classifier config = %+v", got.Classifier)
	}
}

func TestSaveOverwrites(t *testing.T) {
	store := NewStore(filepath.Join(t.TempDir(), "settings.yaml"))
	ctx := context.TODO()

	if err := store.Save(ctx, Record{NotesPath: "/a"}); err != nil {
		t.Fatalf("Save() error = %v", err)
	}
	if err := store.Save(ctx, Record{NotesPath: "/b"}); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	rec, err := store.Load(ctx)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if rec.NotesPath != "/b" {
		t.Errorf("notes path = %q, want /b", rec.NotesPath)
	}
}
