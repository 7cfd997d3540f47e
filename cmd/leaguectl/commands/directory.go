package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"chess-league-service/internal/directory"
)

var directorySeasonFlag string

func init() {
	directoryCmd.Flags().StringVar(&directorySeasonFlag, "season", "", "only show the season with this label")
	rootCmd.AddCommand(directoryCmd)
}

var directoryCmd = &cobra.Command{
	Use:   "directory",
	Short: "List the known seasons and their competitions.",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if directorySeasonFlag != "" {
			season, ok := directory.FindSeason(directorySeasonFlag)
			if !ok {
				return fmt.Errorf("unknown season %q", directorySeasonFlag)
			}
			return printJSON(season)
		}
		return printJSON(directory.Seasons())
	},
}
