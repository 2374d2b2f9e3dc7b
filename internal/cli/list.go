package cli

import (
	"strings"

	"github.com/payday-labs/sndeploy/internal/cli/render"
	"github.com/payday-labs/sndeploy/internal/usecase"
	"github.com/spf13/cobra"
)

// NewListCmd creates the list command
func NewListCmd() *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:     "list [filter]",
		Aliases: []string{"ls"},
		Short:   "List cached contract addresses",
		Example: `  # List everything in the cache
  sndeploy list

  # Fuzzy filter by contract path
  sndeploy list acct

  # Machine readable
  sndeploy list --format yaml`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := getApp(cmd)
			if err != nil {
				return err
			}

			params := usecase.ListCachedAddressesParams{}
			if len(args) == 1 {
				params.Filter = args[0]
			}

			result, err := app.ListCachedAddresses.Run(cmd.Context(), params)
			if err != nil {
				return err
			}

			if app.Config.JSON {
				format = render.FormatJSON
			}
			return render.NewCacheRenderer(cmd.OutOrStdout(), strings.ToLower(format)).RenderList(result)
		},
	}

	cmd.Flags().StringVarP(&format, "format", "o", render.FormatTable, "Output format: table, json or yaml")

	return cmd
}
