package output

import (
	"errors"
	"strings"
	"testing"

	"github.com/jokarl/gitref/internal/manifest"
	"github.com/jokarl/gitref/internal/refs"
)

var (
	testSHA  = strings.Repeat("b", 40)
	otherSHA = strings.Repeat("c", 40)
)

func TestNewRenderer(t *testing.T) {
	tests := []struct {
		format   Format
		wantType string
	}{
		{FormatText, "*output.TextRenderer"},
		{FormatJSON, "*output.JSONRenderer"},
		{"unknown", "*output.TextRenderer"}, // Default
		{"", "*output.TextRenderer"},        // Empty defaults to text
	}

	for _, tt := range tests {
		t.Run(string(tt.format), func(t *testing.T) {
			renderer := NewRenderer(tt.format, false)
			gotType := getTypeName(renderer)
			if gotType != tt.wantType {
				t.Errorf("NewRenderer(%q) = %s, want %s", tt.format, gotType, tt.wantType)
			}
		})
	}
}

func TestIsValidFormat(t *testing.T) {
	tests := []struct {
		format string
		valid  bool
	}{
		{"text", true},
		{"json", true},
		{"sarif", false},
		{"", false},
		{"TEXT", false}, // Case sensitive
	}

	for _, tt := range tests {
		t.Run(tt.format, func(t *testing.T) {
			if got := IsValidFormat(tt.format); got != tt.valid {
				t.Errorf("IsValidFormat(%q) = %v, want %v", tt.format, got, tt.valid)
			}
		})
	}
}

func TestResolveResult_Summary(t *testing.T) {
	result := sampleResult()

	got := result.Summary()
	want := Summary{Resolved: 2, NeedsClone: 1, Failed: 1, Total: 4}
	if got != want {
		t.Errorf("Summary() = %+v, want %+v", got, want)
	}
	if !result.Failed() {
		t.Error("Failed() = false with a failed entry")
	}

	if (&ResolveResult{}).Failed() {
		t.Error("Failed() = true for an empty result")
	}
}

func getTypeName(r Renderer) string {
	switch r.(type) {
	case *TextRenderer:
		return "*output.TextRenderer"
	case *JSONRenderer:
		return "*output.JSONRenderer"
	default:
		return "unknown"
	}
}

// sampleResult has one entry per outcome: resolved, pinned sha,
// needs clone and failed.
func sampleResult() *ResolveResult {
	url := "git://example.com/pkg.git"
	resolved := manifest.Spec{Name: "pkg", Locator: url + "#v1.2.0"}
	pinned := manifest.Spec{Name: "pkg", Locator: url + "#" + otherSHA}
	clone := manifest.Spec{Name: "pkg", Locator: url + "#develop"}
	failed := manifest.Spec{Name: "pkg", Locator: url + "#semver:^9"}

	return &ResolveResult{Entries: []Entry{
		{Spec: resolved, Manifest: &manifest.Manifest{
			RepositoryURL:  url,
			Resolved:       url + "#" + testSHA,
			Spec:           resolved,
			Ref:            &refs.Doc{SHA: testSHA, Name: "v1.2.0", Kind: refs.KindTag},
			RawCommittish:  "v1.2.0",
			UniqueResolved: url + "#" + testSHA,
		}},
		{Spec: pinned, Manifest: &manifest.Manifest{
			RepositoryURL:  url,
			Resolved:       url + "#" + otherSHA,
			Spec:           pinned,
			RawCommittish:  otherSHA,
			UniqueResolved: url + "#" + otherSHA,
			RemoteErr:      errors.New("failed to list remote refs: exit 128\nsecond line"),
		}},
		{Spec: clone, Manifest: &manifest.Manifest{
			RepositoryURL: url,
			Spec:          clone,
			RawCommittish: "develop",
		}},
		{Spec: failed, Err: errors.New(`no version of pkg satisfies "^9"`)},
	}}
}

func sampleListing() *RefListing {
	v120 := refs.Doc{SHA: testSHA, Name: "v1.2.0", Kind: refs.KindTag}
	return &RefListing{
		URL: "git://example.com/pkg.git",
		Refs: []refs.Doc{
			{SHA: otherSHA, Name: "main", Kind: refs.KindBranch},
			v120,
		},
		Versions: map[string]refs.Doc{"1.2.0": v120},
	}
}
