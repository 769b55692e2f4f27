package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/jokarl/gitref/internal/git"
	"github.com/jokarl/gitref/internal/giturl"
	"github.com/jokarl/gitref/internal/manifest"
	"github.com/jokarl/gitref/internal/output"
)

var (
	nameFlag string
	jobsFlag int
)

var resolveCmd = &cobra.Command{
	Use:   "resolve <locator>...",
	Short: "Resolve git dependency specifiers to commits",
	Long: `Resolve one or more git dependency locators to exact commits using only
the remote's ref listing.

A locator is a repository URL with an optional "#<committish>" fragment.
The committish may be a branch, tag, full commit sha, or "semver:<range>".
Without a fragment, master is used.

Locators that cannot be confirmed remotely are reported as needing a
clone. The command fails if any locator could not be resolved at all.`,
	Example: `  gitref resolve git+https://github.com/org/repo.git#semver:^1.2.0
  gitref resolve --jobs 8 git@github.com:org/a.git#main git@github.com:org/b.git#v2.0.0`,
	Args: cobra.MinimumNArgs(1),
	RunE: runResolve,
}

func init() {
	rootCmd.AddCommand(resolveCmd)

	resolveCmd.Flags().StringVar(&nameFlag, "name", "", "Package name used in messages (default: derived from the URL)")
	resolveCmd.Flags().IntVarP(&jobsFlag, "jobs", "j", 4, "Number of remotes queried concurrently")
}

func runResolve(cmd *cobra.Command, args []string) error {
	if jobsFlag < 1 {
		return fmt.Errorf("invalid --jobs value %d: must be at least 1", jobsFlag)
	}

	s, err := newSession(cmd)
	if err != nil {
		return err
	}

	specs := make([]manifest.Spec, len(args))
	for i, locator := range args {
		specs[i] = manifest.Spec{Name: specName(locator), Locator: locator}
	}

	builder := manifest.NewBuilderWithLogger(s.client, s.logger)
	result, err := resolveAll(commandContext(cmd), builder, specs, jobsFlag)
	if err != nil {
		return err
	}

	for _, e := range result.Entries {
		if e.Manifest == nil {
			continue
		}
		if hint := remoteHint(e.Manifest.RepositoryURL, e.Manifest.RemoteErr); hint != "" {
			cmd.PrintErrln(hint)
		}
	}

	if err := s.renderer(cmd.OutOrStdout()).RenderResolve(cmd.OutOrStdout(), result); err != nil {
		return fmt.Errorf("failed to render output: %w", err)
	}

	if result.Failed() {
		summary := result.Summary()
		return fmt.Errorf("%d of %d specs could not be resolved", summary.Failed, summary.Total)
	}
	return nil
}

// specName returns --name, or the package name derived from the locator.
func specName(locator string) string {
	if nameFlag != "" {
		return nameFlag
	}
	normed, err := giturl.Normalize(locator)
	if err != nil {
		return locator
	}
	return giturl.PackageName(normed.URL)
}

// resolveAll builds a manifest per spec with at most jobs in flight.
// Entries keep the order of specs. A missing git executable or a canceled
// context aborts the run; other failures are recorded per entry.
func resolveAll(ctx context.Context, builder *manifest.Builder, specs []manifest.Spec, jobs int) (*output.ResolveResult, error) {
	entries := make([]output.Entry, len(specs))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(jobs)
	for i, spec := range specs {
		g.Go(func() error {
			m, err := builder.Build(ctx, spec)
			if err != nil && (errors.Is(err, git.ErrGitNotFound) || ctx.Err() != nil) {
				return err
			}
			entries[i] = output.Entry{Spec: spec, Manifest: m, Err: err}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return &output.ResolveResult{Entries: entries}, nil
}
