// Package output renders resolution results and remote ref listings.
package output

import (
	"io"

	"github.com/jokarl/gitref/internal/manifest"
	"github.com/jokarl/gitref/internal/refs"
)

// Renderer defines the interface for output renderers
type Renderer interface {
	// RenderResolve writes the outcome of resolving one or more specs
	RenderResolve(w io.Writer, result *ResolveResult) error
	// RenderRefs writes the ref index of a remote
	RenderRefs(w io.Writer, listing *RefListing) error
}

// Format represents an output format
type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
)

// ValidFormats returns the names of all supported formats.
func ValidFormats() []string {
	return []string{string(FormatText), string(FormatJSON)}
}

// IsValidFormat reports whether format names a supported renderer.
func IsValidFormat(format string) bool {
	for _, f := range ValidFormats() {
		if f == format {
			return true
		}
	}
	return false
}

// NewRenderer creates a renderer for the given format
func NewRenderer(format Format, colorEnabled bool) Renderer {
	switch format {
	case FormatJSON:
		return &JSONRenderer{}
	default:
		return &TextRenderer{ColorEnabled: colorEnabled}
	}
}

// Entry is the outcome for a single spec. Exactly one of Manifest and Err
// is set.
type Entry struct {
	Spec     manifest.Spec
	Manifest *manifest.Manifest
	Err      error
}

// Summary counts entries by outcome.
type Summary struct {
	Resolved   int `json:"resolved"`
	NeedsClone int `json:"needs_clone"`
	Failed     int `json:"failed"`
	Total      int `json:"total"`
}

// ResolveResult is the ordered outcome of a resolve run.
type ResolveResult struct {
	Entries []Entry
}

// Summary tallies the entries.
func (r *ResolveResult) Summary() Summary {
	var s Summary
	for _, e := range r.Entries {
		s.Total++
		switch {
		case e.Err != nil:
			s.Failed++
		case e.Manifest.NeedsClone():
			s.NeedsClone++
		default:
			s.Resolved++
		}
	}
	return s
}

// Failed reports whether any entry failed.
func (r *ResolveResult) Failed() bool {
	return r.Summary().Failed > 0
}

// RefListing is a filtered view of a remote ref index.
type RefListing struct {
	URL      string
	Refs     []refs.Doc
	Versions map[string]refs.Doc
	DistTags map[string]refs.Doc
}
