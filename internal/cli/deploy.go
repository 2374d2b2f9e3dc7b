package cli

import (
	"github.com/payday-labs/sndeploy/internal/cli/render"
	"github.com/payday-labs/sndeploy/internal/domain"
	"github.com/payday-labs/sndeploy/internal/usecase"
	"github.com/spf13/cobra"
)

// NewDeployCmd creates the deploy command
func NewDeployCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "deploy <contract> [constructor-args...]",
		Short: "Compile and deploy a contract, reusing the cached address when present",
		Long: `Compile <contract>.cairo, deploy it and cache the address under
<CONTRACT>_ADDRESS in the address cache.

When the cache already holds an address for the contract, it is returned
without compiling or touching the network. Set ACCOUNT_CACHE or pass
--no-cache to force a fresh deployment.`,
		Example: `  # Deploy contracts/account.cairo with no constructor arguments
  sndeploy deploy contracts/account

  # Deploy with constructor arguments (hex or decimal felts)
  sndeploy deploy contracts/vault 0x1234 100

  # Ignore the cached address
  ACCOUNT_CACHE=1 sndeploy deploy contracts/vault`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := getApp(cmd)
			if err != nil {
				return err
			}

			constructorArgs, err := domain.ParseFelts(args[1:])
			if err != nil {
				return err
			}

			result, err := app.DeployContract.Run(cmd.Context(), usecase.DeployContractParams{
				ContractPath:    args[0],
				ConstructorArgs: constructorArgs,
			})
			if err != nil {
				return err
			}

			return render.NewDeployRenderer(cmd.OutOrStdout(), app.Config.JSON).RenderDeployment(result)
		},
	}

	cmd.Flags().Bool("no-cache", false, "Bypass the address cache (same as setting ACCOUNT_CACHE)")
	cmd.Flags().String("compiler", "", "Compiler binary (default: starknet-compile)")
	cmd.Flags().Duration("poll-interval", 0, "Interval between status checks while waiting")

	return cmd
}
