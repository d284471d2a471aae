package app

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/blackwell-systems/reelctl/internal/tui"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

// maxParallelSearches bounds concurrent requests for multi-query searches.
const maxParallelSearches = 4

func newSearchCmd() *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "search <query>...",
		Short: "Search the catalog by title",
		Long: `Search the catalog for movies matching each query and print the results.

Several queries run concurrently and are printed in the order given.

Examples:
  reelctl search batman
  reelctl search "star wars" alien --format json`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := validateFormat(format); err != nil {
				return err
			}
			if err := requireClient(); err != nil {
				return err
			}

			sets, err := searchAll(cmd.Context(), client, args, cfg.TMDB.ImageBase)
			if err != nil {
				return err
			}
			return printResults(os.Stdout, sets, format)
		},
	}

	cmd.Flags().StringVar(&format, "format", "", "Output format: table or json")
	return cmd
}

// searchAll runs every query against src and returns the result sets in
// query order. The first failure cancels the remaining requests.
func searchAll(ctx context.Context, src tui.CatalogSource, queries []string, imageBase string) ([]resultSet, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	cleaned := make([]string, len(queries))
	for i, q := range queries {
		cleaned[i] = strings.TrimSpace(q)
		if cleaned[i] == "" {
			return nil, fmt.Errorf("query %d is empty", i+1)
		}
	}
	sets := make([]resultSet, len(cleaned))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(maxParallelSearches)

	for i, q := range cleaned {
		g.Go(func() error {
			records, err := src.Search(gctx, q)
			if err != nil {
				return fmt.Errorf("searching %q: %w", q, err)
			}
			logger.Debug().Str("query", q).Int("count", len(records)).Msg("search complete")
			sets[i] = newResultSet(q, records, imageBase)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return sets, nil
}
