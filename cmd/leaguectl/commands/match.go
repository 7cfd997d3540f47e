package commands

import (
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(matchCmd)
}

var matchCmd = &cobra.Command{
	Use:   "match <id-or-url>",
	Short: "Show a team match by numeric ID or chess.com match URL.",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		svc := newServices()
		match, err := svc.matches.Get(cmd.Context(), args[0], refreshFlag)
		if err != nil {
			return err
		}
		return printJSON(match)
	},
}
