package output

import (
	"encoding/json"
	"io"

	"github.com/jokarl/gitref/internal/manifest"
	"github.com/jokarl/gitref/internal/refs"
)

// JSONRenderer renders output in JSON format
type JSONRenderer struct{}

// jsonResolveOutput is the structure for resolve JSON output
type jsonResolveOutput struct {
	Version string      `json:"version"`
	Results []jsonEntry `json:"results"`
	Summary Summary     `json:"summary"`
}

type jsonEntry struct {
	Spec        manifest.Spec      `json:"spec"`
	Manifest    *manifest.Manifest `json:"manifest,omitempty"`
	NeedsClone  bool               `json:"needs_clone"`
	RemoteError string             `json:"remote_error,omitempty"`
	Error       string             `json:"error,omitempty"`
}

// jsonRefsOutput is the structure for refs JSON output
type jsonRefsOutput struct {
	Version  string              `json:"version"`
	URL      string              `json:"url"`
	Refs     []refs.Doc          `json:"refs"`
	Versions map[string]refs.Doc `json:"versions"`
	DistTags map[string]refs.Doc `json:"dist_tags"`
}

// RenderResolve writes the resolve result in JSON format
func (r *JSONRenderer) RenderResolve(w io.Writer, result *ResolveResult) error {
	output := jsonResolveOutput{
		Version: "1.0",
		Results: make([]jsonEntry, 0, len(result.Entries)),
		Summary: result.Summary(),
	}

	for _, e := range result.Entries {
		entry := jsonEntry{Spec: e.Spec}
		if e.Err != nil {
			entry.Error = e.Err.Error()
		} else {
			entry.Manifest = e.Manifest
			entry.NeedsClone = e.Manifest.NeedsClone()
			if e.Manifest.RemoteErr != nil {
				entry.RemoteError = e.Manifest.RemoteErr.Error()
			}
		}
		output.Results = append(output.Results, entry)
	}

	return encode(w, output)
}

// RenderRefs writes the ref listing in JSON format
func (r *JSONRenderer) RenderRefs(w io.Writer, listing *RefListing) error {
	output := jsonRefsOutput{
		Version:  "1.0",
		URL:      listing.URL,
		Refs:     listing.Refs,
		Versions: listing.Versions,
		DistTags: listing.DistTags,
	}
	if output.Refs == nil {
		output.Refs = []refs.Doc{}
	}
	if output.Versions == nil {
		output.Versions = map[string]refs.Doc{}
	}
	if output.DistTags == nil {
		output.DistTags = map[string]refs.Doc{}
	}

	return encode(w, output)
}

func encode(w io.Writer, v any) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(v)
}
