package taxonomy

import (
	"errors"
	"testing"
)

func TestSnapshotDefaultsFirst(t *testing.T) {
	set := NewSet(nil, nil)
	snap := set.Snapshot()

	defs := Defaults()
	if len(snap) != len(defs) {
		t.Fatalf("snapshot length %d, want %d", len(snap), len(defs))
	}
	for i, d := range defs {
		if snap[i] != d {
			t.Errorf("snapshot[%d] = %+v, want %+v", i, snap[i], d)
		}
	}
}

func TestSnapshotCodesDistinct(t *testing.T) {
	set := NewSet(nil, nil)
	titles := []string{"Creative Work", "Creative Work", "Crest", "", "Side Projects", "s"}
	for _, title := range titles {
		set.Add(title, "", "", "")
	}

	seen := make(map[string]bool)
	for _, st := range set.Snapshot() {
		if seen[st.Code] {
			t.Errorf("duplicate code %q in snapshot", st.Code)
		}
		seen[st.Code] = true
	}

	// Defaults survive untouched and in order.
	snap := set.Snapshot()
	for i, d := range Defaults() {
		if snap[i].Code != d.Code || snap[i].Title != d.Title {
			t.Errorf("default %d altered: %+v", i, snap[i])
		}
	}
}

func TestCodeFor(t *testing.T) {
	tests := []struct {
		title string
		used  map[string]bool
		want  string
	}{
		{"Creative Work", map[string]bool{}, "cre"},
		{"Creative Work", map[string]bool{"cre": true}, "cre2"},
		{"Creative Work", map[string]bool{"cre": true, "cre2": true}, "cre3"},
		{"A B", map[string]bool{}, "ab"},
		{"!!!", map[string]bool{}, "s"},
		{"", map[string]bool{"s": true}, "s2"},
		{"Go 1.26", map[string]bool{}, "go1"},
	}

	for _, tt := range tests {
		if got := CodeFor(tt.title, tt.used); got != tt.want {
			t.Errorf("CodeFor(%q, %v) = %q, want %q", tt.title, tt.used, got, tt.want)
		}
	}
}

func TestAddDerivesAndResolvesCodes(t *testing.T) {
	set := NewSet(nil, nil)

	first := set.Add("Creative Work", "", "", "")
	if first.Code != "cre" {
		t.Errorf("first code = %q, want cre", first.Code)
	}

	second := set.Add("Creative Work", "", "", "")
	if second.Code != "cre2" {
		t.Errorf("second code = %q, want cre2", second.Code)
	}

	// Explicit code colliding with a default keeps the typed code and
	// gets a numeric suffix.
	collision := set.Add("Wellness", "", "", "w")
	if collision.Code != "w2" {
		t.Errorf("collision code = %q, want w2", collision.Code)
	}

	// Invalid colors fall back to the default palette member.
	colored := set.Add("Other", "", "chartreuse", "")
	if colored.Color != DefaultColor {
		t.Errorf("color = %q, want %q", colored.Color, DefaultColor)
	}
}

func TestAddExplicitCodeCollisionKeepsTypedCode(t *testing.T) {
	set := NewSet(nil, nil)

	first := set.Add("Food", "", "", "food")
	if first.Code != "food" {
		t.Fatalf("first code = %q, want food", first.Code)
	}

	// A colliding explicit code is suffixed as typed, never re-derived
	// or truncated.
	second := set.Add("Food Again", "", "", "food")
	if second.Code != "food2" {
		t.Errorf("second code = %q, want food2", second.Code)
	}

	third := set.Add("More Food", "", "", "food")
	if third.Code != "food3" {
		t.Errorf("third code = %q, want food3", third.Code)
	}

	underscored := set.Add("Side Quest", "", "", "side_q")
	if underscored.Code != "side_q" {
		t.Errorf("underscored code = %q, want side_q", underscored.Code)
	}
}

func TestUpdateCustomInPlace(t *testing.T) {
	set := NewSet(nil, nil)
	st := set.Add("Creative Work", "making things", "red", "")

	newTitle := "Art"
	if err := set.Update(st.Code, Patch{Title: &newTitle}); err != nil {
		t.Fatalf("Update() error = %v", err)
	}

	for _, s := range set.Customs() {
		if s.Code == st.Code {
			if s.Title != "Art" {
				t.Errorf("title = %q, want Art", s.Title)
			}
			if s.Description != "making things" {
				t.Errorf("description changed: %q", s.Description)
			}
			return
		}
	}
	t.Fatal("custom not found after update")
}

func TestUpdateDefaultCreatesOverride(t *testing.T) {
	set := NewSet(nil, nil)

	newTitle := "Job"
	if err := set.Update("w", Patch{Title: &newTitle}); err != nil {
		t.Fatalf("Update() error = %v", err)
	}

	snap := set.Snapshot()
	if snap[0].Title != "Job" {
		t.Errorf("overridden title = %q, want Job", snap[0].Title)
	}
	if snap[0].Code != "w" {
		t.Errorf("override must not rename the code, got %q", snap[0].Code)
	}

	// The stored default itself is untouched.
	if Defaults()[0].Title != "Work" {
		t.Error("default record was mutated")
	}

	// A later patch extends the same override entry.
	color := "red"
	if err := set.Update("w", Patch{Color: &color}); err != nil {
		t.Fatalf("Update() error = %v", err)
	}
	snap = set.Snapshot()
	if snap[0].Title != "Job" || snap[0].Color != ColorRed {
		t.Errorf("override merge lost fields: %+v", snap[0])
	}
}

func TestUpdateUnknownCode(t *testing.T) {
	set := NewSet(nil, nil)
	title := "x"
	err := set.Update("zzz", Patch{Title: &title})
	if !errors.Is(err, ErrUnknownState) {
		t.Errorf("error = %v, want ErrUnknownState", err)
	}
}

func TestDelete(t *testing.T) {
	set := NewSet(nil, nil)
	st := set.Add("Creative Work", "", "", "")

	if err := set.Delete(st.Code); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}
	if len(set.Customs()) != 0 {
		t.Error("custom not removed")
	}

	if err := set.Delete("w"); !errors.Is(err, ErrDefaultState) {
		t.Errorf("deleting a default: error = %v, want ErrDefaultState", err)
	}
	if err := set.Delete("zzz"); !errors.Is(err, ErrUnknownState) {
		t.Errorf("deleting unknown: error = %v, want ErrUnknownState", err)
	}
}

func TestParseColor(t *testing.T) {
	if ParseColor("blue") != ColorBlue {
		t.Error("valid color rejected")
	}
	if ParseColor("") != DefaultColor {
		t.Error("empty color should fall back")
	}
	if ParseColor("magenta") != DefaultColor {
		t.Error("unknown color should fall back")
	}
}
