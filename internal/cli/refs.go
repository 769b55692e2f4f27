package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jokarl/gitref/internal/giturl"
	"github.com/jokarl/gitref/internal/manifest"
	"github.com/jokarl/gitref/internal/output"
	"github.com/jokarl/gitref/internal/reffilter"
)

var matchFlag string

var refsCmd = &cobra.Command{
	Use:   "refs <locator>",
	Short: "List the tags and heads of a remote",
	Long: `List the refs of a remote repository as gitref indexes them: every tag and
head with its kind, the semantic versions found in tag names, and dist-tags.

Names are filtered by the refs block of the configuration and by --match.
Any "#<committish>" fragment of the locator is ignored.`,
	Example: `  gitref refs https://github.com/org/repo.git
  gitref refs --match 'v1.*' --format json git@github.com:org/repo.git`,
	Args: cobra.ExactArgs(1),
	RunE: runRefs,
}

func init() {
	rootCmd.AddCommand(refsCmd)

	refsCmd.Flags().StringVarP(&matchFlag, "match", "m", "", "Only show refs whose name matches this glob")
}

func runRefs(cmd *cobra.Command, args []string) error {
	s, err := newSession(cmd)
	if err != nil {
		return err
	}

	normed, err := giturl.Normalize(args[0])
	if err != nil {
		return err
	}

	builder := manifest.NewBuilderWithLogger(s.client, s.logger)
	idx, err := builder.Index(commandContext(cmd), normed.URL)
	if err != nil {
		if hint := remoteHint(normed.URL, err); hint != "" {
			cmd.PrintErrln(hint)
		}
		return err
	}

	filter := reffilter.New(s.cfg.Refs.Include, s.cfg.Refs.Exclude).Narrow(matchFlag)
	listing := &output.RefListing{URL: normed.URL}
	if listing.Refs, err = filter.Docs(idx.Refs()); err != nil {
		return fmt.Errorf("invalid ref pattern: %w", err)
	}
	if listing.Versions, err = filter.DocMap(idx.VersionMap()); err != nil {
		return fmt.Errorf("invalid ref pattern: %w", err)
	}
	if listing.DistTags, err = filter.DocMap(idx.DistTags()); err != nil {
		return fmt.Errorf("invalid ref pattern: %w", err)
	}

	if err := s.renderer(cmd.OutOrStdout()).RenderRefs(cmd.OutOrStdout(), listing); err != nil {
		return fmt.Errorf("failed to render output: %w", err)
	}
	return nil
}
