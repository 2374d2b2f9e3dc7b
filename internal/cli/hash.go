package cli

import (
	"github.com/payday-labs/sndeploy/internal/cli/render"
	"github.com/payday-labs/sndeploy/internal/domain"
	"github.com/payday-labs/sndeploy/internal/usecase"
	"github.com/spf13/cobra"
)

// NewHashCmd creates the hash command
func NewHashCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "hash <address> [calldata...]",
		Short: "Compute the hash of an invoke transaction",
		Long: `Compute the version 0 transaction hash of an __execute__ invocation on
<address> with the given calldata, zero max fee and the network's chain id.`,
		Example: `  sndeploy hash 0x4e3b...f3a 1 2 3`,
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := getApp(cmd)
			if err != nil {
				return err
			}

			address, err := domain.ParseFelt(args[0])
			if err != nil {
				return err
			}
			calldata, err := domain.ParseFelts(args[1:])
			if err != nil {
				return err
			}

			hash, err := app.ComputeInvokeHash.Run(usecase.ComputeInvokeHashParams{
				Address:  address,
				Calldata: calldata,
			})
			if err != nil {
				return err
			}

			return render.NewHashRenderer(cmd.OutOrStdout(), app.Config.JSON).RenderInvokeHash(address, calldata, hash)
		},
	}
}
