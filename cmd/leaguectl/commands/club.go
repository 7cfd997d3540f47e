package commands

import (
	"github.com/spf13/cobra"
)

var clubMatchesFlag bool

func init() {
	clubCmd.Flags().BoolVar(&clubMatchesFlag, "matches", false, "show the club's team matches grouped by status")
	rootCmd.AddCommand(clubCmd)
}

var clubCmd = &cobra.Command{
	Use:   "club <id>",
	Short: "Show a club's profile, or its team matches with --matches.",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		svc := newServices()
		if clubMatchesFlag {
			grouped, err := svc.clubs.Matches(cmd.Context(), args[0], refreshFlag)
			if err != nil {
				return err
			}
			return printJSON(grouped)
		}
		profile, err := svc.clubs.Get(cmd.Context(), args[0], refreshFlag)
		if err != nil {
			return err
		}
		return printJSON(profile)
	},
}
