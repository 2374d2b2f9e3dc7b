package cli

import (
	"github.com/payday-labs/sndeploy/internal/cli/render"
	"github.com/payday-labs/sndeploy/internal/domain"
	"github.com/spf13/cobra"
)

// NewWaitCmd creates the wait command
func NewWaitCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "wait <tx-hash>",
		Short: "Wait for a transaction to settle and print the result",
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

			reporter := render.NewInvocationRenderer(cmd.OutOrStdout())
			_, err = app.AwaitInvocation.Run(cmd.Context(), domain.Invocation{Hash: hash}, reporter)
			return err
		},
	}

	cmd.Flags().Duration("poll-interval", 0, "Interval between status checks")

	return cmd
}
