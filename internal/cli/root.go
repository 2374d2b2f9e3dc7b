package cli

import (
	"context"
	"fmt"

	"github.com/payday-labs/sndeploy/internal/adapters/progress"
	"github.com/payday-labs/sndeploy/internal/app"
	"github.com/payday-labs/sndeploy/internal/config"
	"github.com/payday-labs/sndeploy/internal/usecase"
	"github.com/spf13/cobra"
)

// contextKey is the type for context keys
type contextKey string

const (
	// appKey is the context key for the app instance
	appKey contextKey = "app"
)

// commandsWithoutApp run without loading configuration
var commandsWithoutApp = map[string]bool{
	"version":    true,
	"help":       true,
	"completion": true,
	"mission":    true,
}

// NewRootCmd creates the root command
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "sndeploy",
		Short: "Compile, deploy and cache StarkNet contracts",
		Long: `sndeploy compiles a Cairo contract, deploys it to a StarkNet network, waits
for acceptance and caches the resulting address in account.json so later runs
reuse it. Set ACCOUNT_CACHE (to any value) or pass --no-cache to redeploy.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if commandsWithoutApp[cmd.Name()] {
				return nil
			}

			projectRoot, err := config.FindProjectRoot()
			if err != nil {
				return err
			}

			v := config.SetupViper(projectRoot, cmd)

			var sink usecase.ProgressSink = progress.NewNopSink()
			if !v.GetBool("json") && !v.GetBool("non_interactive") {
				spinnerSink := progress.NewSpinnerSink(cmd.ErrOrStderr())
				sink = spinnerSink
				cmd.PersistentPostRun = func(cmd *cobra.Command, args []string) {
					spinnerSink.Stop()
				}
			}

			appInstance, err := app.InitApp(v, sink)
			if err != nil {
				return fmt.Errorf("failed to initialize app: %w", err)
			}

			ctx := context.WithValue(cmd.Context(), appKey, appInstance)

			if appInstance.Config.Timeout > 0 {
				var cancel context.CancelFunc
				ctx, cancel = context.WithTimeout(ctx, appInstance.Config.Timeout)
				cmd.PostRun = func(cmd *cobra.Command, args []string) {
					cancel()
				}
			}

			cmd.SetContext(ctx)
			return nil
		},
	}

	// Global flags
	rootCmd.PersistentFlags().Bool("debug", false, "Enable debug output")
	rootCmd.PersistentFlags().Bool("non-interactive", false, "Disable interactive prompts and spinners")
	rootCmd.PersistentFlags().Bool("json", false, "Output in JSON format")
	rootCmd.PersistentFlags().StringP("network", "n", "", "Network to use (e.g., testnet, sepolia, mainnet)")
	rootCmd.PersistentFlags().String("rpc-url", "", "Override the network RPC URL")
	rootCmd.PersistentFlags().String("cache-file", "", "Address cache file (default: account.json in the project root)")
	rootCmd.PersistentFlags().Duration("timeout", 0, "Abort after this duration (0 waits indefinitely)")

	rootCmd.AddGroup(&cobra.Group{
		ID:    "main",
		Title: "Main Commands",
	})
	rootCmd.AddGroup(&cobra.Group{
		ID:    "transactions",
		Title: "Transaction Commands",
	})
	rootCmd.AddGroup(&cobra.Group{
		ID:    "cache",
		Title: "Cache Commands",
	})

	deployCmd := NewDeployCmd()
	deployCmd.GroupID = "main"
	rootCmd.AddCommand(deployCmd)

	missionCmd := NewMissionCmd()
	missionCmd.GroupID = "main"
	rootCmd.AddCommand(missionCmd)

	hashCmd := NewHashCmd()
	hashCmd.GroupID = "transactions"
	rootCmd.AddCommand(hashCmd)

	waitCmd := NewWaitCmd()
	waitCmd.GroupID = "transactions"
	rootCmd.AddCommand(waitCmd)

	statusCmd := NewStatusCmd()
	statusCmd.GroupID = "transactions"
	rootCmd.AddCommand(statusCmd)

	listCmd := NewListCmd()
	listCmd.GroupID = "cache"
	rootCmd.AddCommand(listCmd)

	forgetCmd := NewForgetCmd()
	forgetCmd.GroupID = "cache"
	rootCmd.AddCommand(forgetCmd)

	rootCmd.AddCommand(NewVersionCmd())

	return rootCmd
}

// getApp retrieves the app instance from the command context
func getApp(cmd *cobra.Command) (*app.App, error) {
	appInstance := cmd.Context().Value(appKey)
	if appInstance == nil {
		return nil, fmt.Errorf("app not initialized")
	}

	app, ok := appInstance.(*app.App)
	if !ok {
		return nil, fmt.Errorf("invalid app instance")
	}

	return app, nil
}
