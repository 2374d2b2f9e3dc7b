package cli

import (
	"github.com/payday-labs/sndeploy/internal/cli/render"
	"github.com/spf13/cobra"
)

// NewMissionCmd creates the mission command
func NewMissionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "mission [text...]",
		Short: "Print the mission banner",
		RunE: func(cmd *cobra.Command, args []string) error {
			render.MissionStatement(cmd.OutOrStdout(), args...)
			return nil
		},
	}
}
