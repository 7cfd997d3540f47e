package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"chess-league-service/internal/scraper"
)

var (
	scrapeSelectorFlag string
	scrapePatternFlag  string
)

func init() {
	scrapeCmd.Flags().StringVar(&scrapeSelectorFlag, "selector", "", "CSS selector narrowing the scan (e.g. the announcement post body)")
	scrapeCmd.Flags().StringVar(&scrapePatternFlag, "pattern", "", "regexp overriding the default match-link pattern")
	rootCmd.AddCommand(scrapeCmd)
}

var scrapeCmd = &cobra.Command{
	Use:   "scrape <forum-url>",
	Short: "Extract match IDs from a forum announcement page.",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		svc := newServices()
		ids, err := svc.scraper.MatchIDs(cmd.Context(), args[0], scraper.Options{
			Pattern:  scrapePatternFlag,
			Selector: scrapeSelectorFlag,
		})
		if err != nil {
			return err
		}
		for _, id := range ids {
			fmt.Fprintln(cmd.OutOrStdout(), id)
		}
		return nil
	},
}
