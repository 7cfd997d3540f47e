package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	domainmatches "chess-league-service/internal/domain/matches"
)

var (
	playerStatusFlag string
	playerIDsFlag    bool
)

func init() {
	playerCmd.Flags().StringVar(&playerStatusFlag, "status", "", `statuses to include, abbreviations accepted (e.g. "fi", "reg", "finished,registered")`)
	playerCmd.Flags().BoolVar(&playerIDsFlag, "ids", false, "print only the match IDs")
	rootCmd.AddCommand(playerCmd)
}

var playerCmd = &cobra.Command{
	Use:   "player <username>",
	Short: "Show a player's team matches grouped by status.",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		statuses, dropped := domainmatches.ParseStatuses(playerStatusFlag)
		if len(dropped) > 0 {
			fmt.Fprintf(cmd.ErrOrStderr(), "ignoring unrecognized statuses: %s\n", strings.Join(dropped, ", "))
		}

		svc := newServices()
		if playerIDsFlag {
			ids, err := svc.players.MatchIDs(cmd.Context(), args[0], statuses, refreshFlag)
			if err != nil {
				return err
			}
			for _, id := range ids {
				fmt.Fprintln(cmd.OutOrStdout(), id)
			}
			return nil
		}

		grouped, err := svc.players.Matches(cmd.Context(), args[0], statuses, refreshFlag)
		if err != nil {
			return err
		}
		return printJSON(grouped)
	},
}
