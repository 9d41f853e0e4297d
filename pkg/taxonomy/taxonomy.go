// Package taxonomy owns the ordered, code-unique set of life-area states.
//
// The set is composed at read time from three origins: six fixed defaults
// (never deleted or renamed), per-default override patches, and
// user-added customs in insertion order. Codes are resolved once, at add
// time, and are pairwise distinct across the whole snapshot.
package taxonomy

import (
	"errors"
	"fmt"
	"strings"
)

// State is one life-area category.
type State struct {
	Code        string `yaml:"code" json:"code"`
	Title       string `yaml:"title" json:"title"`
	Description string `yaml:"description,omitempty" json:"description,omitempty"`
	Color       Color  `yaml:"color" json:"color"`
}

// Patch is a partial update to a state. Nil fields are left untouched.
type Patch struct {
	Title       *string `yaml:"title,omitempty" json:"title,omitempty"`
	Description *string `yaml:"description,omitempty" json:"description,omitempty"`
	Color       *string `yaml:"color,omitempty" json:"color,omitempty"`
}

// Empty reports whether the patch carries no fields.
func (p Patch) Empty() bool {
	return p.Title == nil && p.Description == nil && p.Color == nil
}

func (p Patch) applyTo(s *State) {
	if p.Title != nil {
		s.Title = *p.Title
	}
	if p.Description != nil {
		s.Description = *p.Description
	}
	if p.Color != nil {
		s.Color = ParseColor(*p.Color)
	}
}

// Typed domain failures. Callers branch with errors.Is.
var (
	ErrUnknownState = errors.New("unknown state code")
	ErrDefaultState = errors.New("default states cannot be deleted")
)

// defaults are the six fixed states. Order and codes never change;
// overrides can restyle them but a default is never mutated in place.
var defaults = []State{
	{Code: "w", Title: "Work", Description: "Career, projects, professional growth", Color: ColorBlue},
	{Code: "h", Title: "Health", Description: "Exercise, sleep, medical care", Color: ColorGreen},
	{Code: "f", Title: "Finance", Description: "Money, bills, investments", Color: ColorYellow},
	{Code: "p", Title: "Personal", Description: "Errands, home, everyday life", Color: ColorPurple},
	{Code: "s", Title: "Social", Description: "Family, friends, community", Color: ColorOrange},
	{Code: "l", Title: "Learning", Description: "Reading, study, new skills", Color: ColorRed},
}

// Defaults returns a copy of the six fixed states in their fixed order.
func Defaults() []State {
	out := make([]State, len(defaults))
	copy(out, defaults)
	return out
}

// Set composes defaults, overrides and customs into one taxonomy.
// It is a plain value rebuilt from persisted settings on every operation;
// it holds no cross-call identity.
type Set struct {
	customs   []State
	overrides map[string]Patch
}

// NewSet builds a Set from persisted customs and override patches.
// Custom colors are re-validated against the palette on the way in.
func NewSet(customs []State, overrides map[string]Patch) *Set {
	cs := make([]State, len(customs))
	copy(cs, customs)
	for i := range cs {
		cs[i].Color = ParseColor(string(cs[i].Color))
	}

	ov := make(map[string]Patch, len(overrides))
	for code, p := range overrides {
		ov[code] = p
	}

	return &Set{customs: cs, overrides: ov}
}

// Snapshot returns the composed taxonomy: defaults first in fixed order,
// each overlaid with its override patch if present, then customs in
// insertion order.
func (s *Set) Snapshot() []State {
	out := make([]State, 0, len(defaults)+len(s.customs))
	for _, d := range defaults {
		if p, ok := s.overrides[d.Code]; ok {
			p.applyTo(&d)
		}
		out = append(out, d)
	}
	out = append(out, s.customs...)
	return out
}

// Customs returns the custom states in insertion order, for persistence.
func (s *Set) Customs() []State {
	out := make([]State, len(s.customs))
	copy(out, s.customs)
	return out
}

// Overrides returns the override patches, for persistence.
func (s *Set) Overrides() map[string]Patch {
	out := make(map[string]Patch, len(s.overrides))
	for code, p := range s.overrides {
		out[code] = p
	}
	return out
}

func (s *Set) usedCodes() map[string]bool {
	used := make(map[string]bool, len(defaults)+len(s.customs))
	for _, d := range defaults {
		used[d.Code] = true
	}
	for _, c := range s.customs {
		used[c.Code] = true
	}
	return used
}

// CodeFor derives a short code from a title: lowercase, keep [a-z0-9],
// take the first 3 characters ("s" when nothing survives), then append
// 2, 3, ... until the result is free in used.
func CodeFor(title string, used map[string]bool) string {
	var b strings.Builder
	for _, r := range strings.ToLower(title) {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
			if b.Len() == 3 {
				break
			}
		}
	}

	base := b.String()
	if base == "" {
		base = "s"
	}

	if !used[base] {
		return base
	}
	return suffixCode(base, used)
}

// suffixCode appends 2, 3, ... to base until the result is free in used.
func suffixCode(base string, used map[string]bool) string {
	for n := 2; ; n++ {
		candidate := fmt.Sprintf("%s%d", base, n)
		if !used[candidate] {
			return candidate
		}
	}
}

// Add appends a new custom state.
//
// A blank code is derived from the title via CodeFor; an explicit code is
// lowercased and kept as typed, with a numeric suffix appended if it
// collides with a default or existing custom. The color falls back to
// DefaultColor when absent or outside the palette. The finalized state is
// returned; its code never changes afterwards.
func (s *Set) Add(title, description, color, code string) State {
	used := s.usedCodes()

	code = strings.ToLower(strings.TrimSpace(code))
	if code == "" {
		code = CodeFor(title, used)
	} else if used[code] {
		code = suffixCode(code, used)
	}

	st := State{
		Code:        code,
		Title:       title,
		Description: description,
		Color:       ParseColor(color),
	}
	s.customs = append(s.customs, st)
	return st
}

// Update merges a patch into the state identified by code. A custom is
// patched in place; a default gets (or extends) an override entry, the
// default record itself is never touched. Unknown codes fail with
// ErrUnknownState.
func (s *Set) Update(code string, p Patch) error {
	for i := range s.customs {
		if s.customs[i].Code == code {
			p.applyTo(&s.customs[i])
			return nil
		}
	}

	for _, d := range defaults {
		if d.Code != code {
			continue
		}
		existing := s.overrides[code]
		if p.Title != nil {
			existing.Title = p.Title
		}
		if p.Description != nil {
			existing.Description = p.Description
		}
		if p.Color != nil {
			valid := string(ParseColor(*p.Color))
			existing.Color = &valid
		}
		s.overrides[code] = existing
		return nil
	}

	return fmt.Errorf("%w: %q", ErrUnknownState, code)
}

// Delete removes a custom state. Defaults are protected and unknown codes
// fail; both are reported, never silently absorbed.
func (s *Set) Delete(code string) error {
	for i := range s.customs {
		if s.customs[i].Code == code {
			s.customs = append(s.customs[:i], s.customs[i+1:]...)
			return nil
		}
	}

	for _, d := range defaults {
		if d.Code == code {
			return fmt.Errorf("%w: %q", ErrDefaultState, code)
		}
	}

	return fmt.Errorf("%w: %q", ErrUnknownState, code)
}
