package cli

import (
	"fmt"

	"github.com/payday-labs/sndeploy/internal/cli/render"
	"github.com/payday-labs/sndeploy/internal/usecase"
	"github.com/spf13/cobra"
)

// NewForgetCmd creates the forget command
func NewForgetCmd() *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "forget [contract]",
		Short: "Remove a contract from the address cache",
		Long: `Remove <CONTRACT>_ADDRESS from the address cache so the next deploy
compiles and deploys the contract again. Without an argument the entry
is picked interactively.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := getApp(cmd)
			if err != nil {
				return err
			}

			params := usecase.ForgetCachedAddressParams{Force: yes}
			if len(args) == 1 {
				params.ContractPath = args[0]
			}

			result, err := app.ForgetCachedAddress.Run(cmd.Context(), params)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if result.Cancelled {
				fmt.Fprintln(out, render.FormatWarning("Cancelled, cache unchanged"))
				return nil
			}
			fmt.Fprintln(out, render.FormatSuccess(fmt.Sprintf("Forgot %s (%s)", result.CacheKey, result.Address)))
			return nil
		},
	}

	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Skip the confirmation prompt")

	return cmd
}
