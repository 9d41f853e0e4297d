package notes

import (
	"reflect"
	"testing"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name       string
		input      string
		wantHeader string
		wantDays   map[string]string
	}{
		{
			name:       "Header And One Day",
			input:      "# Notes\n\n## 2024-01-01\n\n- Ran 5k\n- Paid rent {f}\n",
			wantHeader: "# Notes",
			wantDays:   map[string]string{"2024-01-01": "- Ran 5k\n- Paid rent {f}"},
		},
		{
			name:       "Missing Header Falls Back",
			input:      "## 2024-01-01\n\n- A\n",
			wantHeader: DefaultHeader,
			wantDays:   map[string]string{"2024-01-01": "- A"},
		},
		{
			name:       "Multi Line Header",
			input:      "My journal\nkept since 2020\n\n## 2024-01-01\n\n- A\n",
			wantHeader: "My journal\nkept since 2020",
			wantDays:   map[string]string{"2024-01-01": "- A"},
		},
		{
			name:       "Duplicate Key Last Wins",
			input:      "# Notes\n\n## d\n\n- first\n\n## d\n\n- second\n",
			wantHeader: "# Notes",
			wantDays:   map[string]string{"d": "- second"},
		},
		{
			name:       "Empty Section Dropped",
			input:      "# Notes\n\n## 2024-01-01\n\n\n\n## 2024-01-02\n\n- A\n",
			wantHeader: "# Notes",
			wantDays:   map[string]string{"2024-01-02": "- A"},
		},
		{
			name:       "Empty Input",
			input:      "",
			wantHeader: DefaultHeader,
			wantDays:   map[string]string{},
		},
		{
			name:       "Non Date Keys Are Legal",
			input:      "# Notes\n\n## someday\n\n- dream big\n",
			wantHeader: "# Notes",
			wantDays:   map[string]string{"someday": "- dream big"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc := Parse(tt.input)
			if doc.Header != tt.wantHeader {
				t.Errorf("header = %q, want %q", doc.Header, tt.wantHeader)
			}
			got := make(map[string]string)
			for _, key := range doc.Keys() {
				content, _ := doc.Day(key)
				got[key] = content
			}
			if !reflect.DeepEqual(got, tt.wantDays) {
				t.Errorf("days = %v, want %v", got, tt.wantDays)
			}
		})
	}
}

func TestBuild(t *testing.T) {
	doc := NewDocument()
	doc.SetDay("2024-01-02", "- later")
	doc.SetDay("2024-01-01", "- earlier")

	want := "# Notes\n\n## 2024-01-01\n\n- earlier\n\n## 2024-01-02\n\n- later\n"
	if got := doc.Build(); got != want {
		t.Errorf("Build() = %q, want %q", got, want)
	}
}

func TestBuildEmptyDocument(t *testing.T) {
	doc := NewDocument()
	if got, want := doc.Build(), "# Notes\n"; got != want {
		t.Errorf("Build() = %q, want %q", got, want)
	}
}

func TestBuildSortsDatesChronologically(t *testing.T) {
	doc := NewDocument()
	doc.SetDay("2024-02-01", "- feb")
	doc.SetDay("2024-01-15", "- jan")

	text := doc.Build()
	jan := indexOf(t, text, "## 2024-01-15")
	feb := indexOf(t, text, "## 2024-02-01")
	if jan > feb {
		t.Errorf("expected january before february:\n%s", text)
	}
}

func TestBuildSortsNonDateKeysLexicographically(t *testing.T) {
	doc := NewDocument()
	doc.SetDay("zeta", "- z")
	doc.SetDay("alpha", "- a")

	text := doc.Build()
	if indexOf(t, text, "## alpha") > indexOf(t, text, "## zeta") {
		t.Errorf("expected alpha before zeta:\n%s", text)
	}
}

func TestSetDayBlankRemoves(t *testing.T) {
	doc := NewDocument()
	doc.SetDay("2024-01-01", "- A")
	doc.SetDay("2024-01-01", "   \n  ")

	if doc.Len() != 0 {
		t.Errorf("expected day removed, have %d days", doc.Len())
	}
}

func TestKeysDocumentOrder(t *testing.T) {
	doc := Parse("# Notes\n\n## b\n\n- 1\n\n## a\n\n- 2\n")
	if got, want := doc.Keys(), []string{"b", "a"}; !reflect.DeepEqual(got, want) {
		t.Errorf("Keys() = %v, want %v", got, want)
	}
}

// Round trip: date-like keys with trimmed non-empty content survive
// parse(build) unchanged.
func TestRoundTrip(t *testing.T) {
	doc := NewDocument()
	doc.Header = "# My Notes"
	days := map[string]string{
		"2024-01-01": "- Ran 5k\n- Paid rent {f}",
		"2024-01-02": "- Called mom {s}",
		"2024-03-10": "- single",
	}
	for key, content := range days {
		doc.SetDay(key, content)
	}

	parsed := Parse(doc.Build())
	if parsed.Header != doc.Header {
		t.Errorf("header = %q, want %q", parsed.Header, doc.Header)
	}
	if parsed.Len() != len(days) {
		t.Fatalf("day count = %d, want %d", parsed.Len(), len(days))
	}
	for key, want := range days {
		got, ok := parsed.Day(key)
		if !ok {
			t.Errorf("missing day %s", key)
			continue
		}
		if got != want {
			t.Errorf("day %s = %q, want %q", key, got, want)
		}
	}
}

func indexOf(t *testing.T, text, sub string) int {
	t.Helper()
	for i := 0; i+len(sub) <= len(text); i++ {
		if text[i:i+len(sub)] == sub {
			return i
		}
	}
	t.Fatalf("%q not found in output", sub)
	return -1
}
