package output

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/fatih/color"

	"github.com/jokarl/gitref/internal/refs"
)

// TextRenderer renders output in human-readable text format
type TextRenderer struct {
	ColorEnabled bool
}

// RenderResolve writes each entry followed by a summary line
func (r *TextRenderer) RenderResolve(w io.Writer, result *ResolveResult) error {
	for _, e := range result.Entries {
		r.renderEntry(w, e)
	}

	fmt.Fprintln(w, strings.Repeat("-", 60))
	r.renderSummary(w, result.Summary())
	return nil
}

func (r *TextRenderer) renderEntry(w io.Writer, e Entry) {
	if e.Err != nil {
		fmt.Fprintf(w, "%s  %s\n", r.paint("FAILED", color.FgRed, color.Bold), e.Spec)
		r.renderIndented(w, e.Err.Error(), "  ")
		fmt.Fprintln(w)
		return
	}

	m := e.Manifest
	switch {
	case m.Ref != nil:
		fmt.Fprintf(w, "%s  %s\n", r.paint("RESOLVED", color.FgGreen), m.Spec)
		fmt.Fprintf(w, "  %s %s (%s)\n", m.Ref.SHA, m.Ref.Name, m.Ref.Kind)
	case !m.NeedsClone():
		fmt.Fprintf(w, "%s  %s\n", r.paint("PINNED", color.FgCyan), m.Spec)
		fmt.Fprintf(w, "  %s (not confirmed by remote)\n", m.RawCommittish)
	default:
		fmt.Fprintf(w, "%s  %s\n", r.paint("CLONE", color.FgYellow), m.Spec)
		fmt.Fprintf(w, "  %q not found in remote refs\n", m.RawCommittish)
	}

	fmt.Fprintf(w, "  repository: %s\n", m.RepositoryURL)
	if m.Resolved != "" {
		fmt.Fprintf(w, "  resolved:   %s\n", m.Resolved)
	}
	if m.RemoteErr != nil {
		fmt.Fprintf(w, "  remote:     %s\n", r.paint(firstLine(m.RemoteErr.Error()), color.FgYellow))
	}
	fmt.Fprintln(w)
}

func (r *TextRenderer) renderSummary(w io.Writer, s Summary) {
	parts := []string{}

	if s.Resolved > 0 {
		parts = append(parts, fmt.Sprintf("%d resolved", s.Resolved))
	}
	if s.NeedsClone > 0 {
		parts = append(parts, fmt.Sprintf("%d need clone", s.NeedsClone))
	}
	if s.Failed > 0 {
		parts = append(parts, r.paint(fmt.Sprintf("%d failed", s.Failed), color.FgRed))
	}
	if len(parts) == 0 {
		parts = append(parts, "nothing to resolve")
	}

	fmt.Fprintf(w, "Summary: %s\n", strings.Join(parts, ", "))
}

// RenderRefs writes refs, versions and dist-tags as aligned columns
func (r *TextRenderer) RenderRefs(w io.Writer, listing *RefListing) error {
	fmt.Fprintf(w, "%s\n\n", r.paint(listing.URL, color.Bold))

	if len(listing.Refs) == 0 {
		fmt.Fprintln(w, "no matching refs")
		return nil
	}

	width := 0
	for _, d := range listing.Refs {
		if len(d.Name) > width {
			width = len(d.Name)
		}
	}
	for _, d := range listing.Refs {
		fmt.Fprintf(w, "%s  %-*s  %s\n", d.SHA, width, d.Name, r.colorKind(d.Kind))
	}

	if len(listing.Versions) > 0 {
		fmt.Fprintln(w)
		fmt.Fprintln(w, "Versions:")
		for _, v := range sortedKeys(listing.Versions) {
			fmt.Fprintf(w, "  %s -> %s\n", v, listing.Versions[v].Name)
		}
	}

	if len(listing.DistTags) > 0 {
		fmt.Fprintln(w)
		fmt.Fprintln(w, "Dist-tags:")
		for _, tag := range sortedKeys(listing.DistTags) {
			fmt.Fprintf(w, "  %s -> %s\n", tag, listing.DistTags[tag].Name)
		}
	}

	return nil
}

// renderIndented writes text with the given prefix on each line
func (r *TextRenderer) renderIndented(w io.Writer, text, prefix string) {
	lines := strings.Split(text, "\n")
	for _, line := range lines {
		fmt.Fprintf(w, "%s%s\n", prefix, line)
	}
}

func (r *TextRenderer) colorKind(k refs.Kind) string {
	switch k {
	case refs.KindTag:
		return r.paint(string(k), color.FgGreen)
	case refs.KindBranch:
		return r.paint(string(k), color.FgCyan)
	case refs.KindHead:
		return r.paint(string(k), color.FgMagenta)
	default:
		return string(k)
	}
}

func (r *TextRenderer) paint(s string, attrs ...color.Attribute) string {
	if !r.ColorEnabled {
		return s
	}
	c := color.New(attrs...)
	c.EnableColor()
	return c.Sprint(s)
}

func firstLine(s string) string {
	line, _, _ := strings.Cut(s, "\n")
	return line
}

func sortedKeys(m map[string]refs.Doc) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
