package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Long:  "Print the version, commit, and build date of gitref, and the version of the configured git.",
	Run: func(cmd *cobra.Command, args []string) {
		w := cmd.OutOrStdout()
		fmt.Fprintf(w, "gitref version %s\n", versionStr)
		if commitStr != "none" && commitStr != "" {
			fmt.Fprintf(w, "  commit: %s\n", commitStr)
		}
		if dateStr != "unknown" && dateStr != "" {
			fmt.Fprintf(w, "  built:  %s\n", dateStr)
		}

		s, err := newSession(cmd)
		if err != nil {
			fmt.Fprintf(w, "  git:    unavailable (%v)\n", err)
			return
		}
		v, err := s.client.Version(commandContext(cmd))
		if err != nil {
			fmt.Fprintf(w, "  git:    unavailable (%v)\n", err)
			return
		}
		fmt.Fprintf(w, "  git:    %s\n", v)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
