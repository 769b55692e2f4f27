package output

import (
	"bytes"
	"strings"
	"testing"
)

func TestTextRenderer_RenderResolve(t *testing.T) {
	renderer := &TextRenderer{ColorEnabled: false}
	var buf bytes.Buffer
	if err := renderer.RenderResolve(&buf, sampleResult()); err != nil {
		t.Fatalf("RenderResolve error: %v", err)
	}

	output := buf.String()

	for _, want := range []string{
		"RESOLVED  pkg@git://example.com/pkg.git#v1.2.0",
		testSHA + " v1.2.0 (tag)",
		"PINNED  pkg@git://example.com/pkg.git#" + otherSHA,
		"not confirmed by remote",
		"remote:     failed to list remote refs: exit 128\n",
		"CLONE  pkg@git://example.com/pkg.git#develop",
		`"develop" not found in remote refs`,
		"FAILED  pkg@git://example.com/pkg.git#semver:^9",
		`  no version of pkg satisfies "^9"`,
		"Summary: 2 resolved, 1 need clone, 1 failed",
	} {
		if !strings.Contains(output, want) {
			t.Errorf("output missing %q\n%s", want, output)
		}
	}

	if strings.Contains(output, "second line") {
		t.Error("remote error should be cut to its first line")
	}
	if strings.Contains(output, "\x1b[") {
		t.Error("output should not contain ANSI codes when color is disabled")
	}
}

func TestTextRenderer_Empty(t *testing.T) {
	renderer := &TextRenderer{ColorEnabled: false}
	var buf bytes.Buffer
	if err := renderer.RenderResolve(&buf, &ResolveResult{}); err != nil {
		t.Fatalf("RenderResolve error: %v", err)
	}

	if !strings.Contains(buf.String(), "Summary: nothing to resolve") {
		t.Errorf("unexpected output:\n%s", buf.String())
	}

	buf.Reset()
	if err := renderer.RenderRefs(&buf, &RefListing{URL: "git://example.com/x.git"}); err != nil {
		t.Fatalf("RenderRefs error: %v", err)
	}
	if !strings.Contains(buf.String(), "no matching refs") {
		t.Errorf("unexpected output:\n%s", buf.String())
	}
}

func TestTextRenderer_Color(t *testing.T) {
	renderer := &TextRenderer{ColorEnabled: true}
	var buf bytes.Buffer
	if err := renderer.RenderResolve(&buf, sampleResult()); err != nil {
		t.Fatalf("RenderResolve error: %v", err)
	}

	if !strings.Contains(buf.String(), "\x1b[") {
		t.Error("output should contain ANSI codes when color is enabled")
	}
}

func TestTextRenderer_RenderRefs(t *testing.T) {
	renderer := &TextRenderer{ColorEnabled: false}
	var buf bytes.Buffer
	if err := renderer.RenderRefs(&buf, sampleListing()); err != nil {
		t.Fatalf("RenderRefs error: %v", err)
	}

	output := buf.String()
	for _, want := range []string{
		"git://example.com/pkg.git\n",
		otherSHA + "  main    branch\n",
		testSHA + "  v1.2.0  tag\n",
		"Versions:\n  1.2.0 -> v1.2.0\n",
	} {
		if !strings.Contains(output, want) {
			t.Errorf("output missing %q\n%s", want, output)
		}
	}
	if strings.Contains(output, "Dist-tags:") {
		t.Error("empty dist-tags should not be printed")
	}
}
