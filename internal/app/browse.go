package app

import (
	"fmt"
	"os"

	"github.com/blackwell-systems/reelctl/internal/tui"
	"github.com/spf13/cobra"
)

func newBrowseCmd() *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:     "browse",
		Aliases: []string{"ls"},
		Short:   "Browse movies now playing (interactive TUI or text output)",
		Long: `Browse the movies now playing.

In a terminal this opens the interactive browser. When output is piped, or
with --no-interactive or --format, the list is printed instead.

Examples:
  reelctl browse
  reelctl browse --format json | jq '.results[].title'`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := validateFormat(format); err != nil {
				return err
			}
			if err := requireClient(); err != nil {
				return err
			}

			if tui.ShouldUseTUI(cmd) {
				return runBrowser()
			}

			records, err := client.NowPlaying(cmd.Context())
			if err != nil {
				return fmt.Errorf("fetching now playing: %w", err)
			}
			sets := []resultSet{newResultSet("", records, cfg.TMDB.ImageBase)}
			return printResults(os.Stdout, sets, format)
		},
	}

	cmd.Flags().StringVar(&format, "format", "", "Output format: table or json (implies --no-interactive)")
	return cmd
}
