package cli

import (
	"github.com/payday-labs/sndeploy/internal/cli/render"
	"github.com/payday-labs/sndeploy/internal/domain"
	"github.com/spf13/cobra"
)

// NewStatusCmd creates the status command
func NewStatusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status <tx-hash>",
		Short: "Show the current status of a transaction",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := getApp(cmd)
			if err != nil {
				return err
			}

			hash, err := domain.ParseFelt(args[0])
			if err != nil {
				return err
			}

			status, err := app.QueryTransactionStatus.Run(cmd.Context(), hash)
			if err != nil {
				return err
			}

			return render.RenderStatus(cmd.OutOrStdout(), hash, status, app.Config.JSON)
		},
	}
}
