package cmd

import (
	"github.com/spf13/cobra"

	"github.com/ssargent/tdswire/pkg/api"
)

// typesCmd represents the types command
var typesCmd = &cobra.Command{
	Use:   "types",
	Short: "List the supported column types",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		format, _ := cmd.Flags().GetString("format")
		if err := validateFormat(format); err != nil {
			return err
		}
		return outputTypes(cmd.OutOrStdout(), format, api.DescribeKinds())
	},
}

func init() {
	rootCmd.AddCommand(typesCmd)
	typesCmd.Flags().StringP("format", "o", formatTable, "Output format (table or json)")
}
