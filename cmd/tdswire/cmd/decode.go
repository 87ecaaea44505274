package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ssargent/tdswire/pkg/api"
	"github.com/ssargent/tdswire/pkg/tds"
	"github.com/ssargent/tdswire/pkg/wire"
)

// decodeCmd represents the decode command
var decodeCmd = &cobra.Command{
	Use:   "decode <hex>",
	Short: "Decode a column value",
	Long: `Decode the raw bytes of one column value given as hex.

The column is described either by --type (with --size and --scale where they
apply) or by a raw TYPE_INFO block in --type-info.

Examples:
  tdswire decode --type guid 000102030405060708090a0b0c0d0e0f
  tdswire decode --type datetimeoffset 00188576698f460b7800
  tdswire decode --type-info 2b03 --temporal-scale declared 000000008f460b0000`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		env, err := appEnvFrom(cmd)
		if err != nil {
			return err
		}

		format, _ := cmd.Flags().GetString("format")
		if err := validateFormat(format); err != nil {
			return err
		}

		ti, err := decodeTypeInfo(cmd)
		if err != nil {
			return err
		}

		b, err := wire.ParseHex(args[0])
		if err != nil {
			return err
		}
		if limit := env.config.Codec.MaxValueSize; len(b) > limit {
			return fmt.Errorf("value of %d bytes exceeds limit of %d", len(b), limit)
		}

		v, err := env.decoder.DecodeBytes(ti, b)
		if err != nil {
			return err
		}

		return outputDecoded(cmd.OutOrStdout(), format, api.NewDecodeResponse(ti, v))
	},
}

func init() {
	rootCmd.AddCommand(decodeCmd)
	decodeCmd.Flags().StringP("type", "t", "", "Column type (guid, binary, varbinary, datetimeoffset)")
	decodeCmd.Flags().String("type-info", "", "Raw TYPE_INFO block as hex, instead of --type")
	decodeCmd.Flags().Uint32("size", 0, "Declared column size")
	decodeCmd.Flags().Uint8("scale", 7, "Declared fractional-second scale for temporal types")
	decodeCmd.Flags().String("temporal-scale", "", "Override codec.temporal_scale (fixed or declared)")
	decodeCmd.Flags().StringP("format", "o", formatTable, "Output format (table or json)")
}

func decodeTypeInfo(cmd *cobra.Command) (tds.TypeInfo, error) {
	typeInfoHex, _ := cmd.Flags().GetString("type-info")
	if typeInfoHex != "" {
		return wire.ParseTypeInfo(typeInfoHex)
	}

	typeName, _ := cmd.Flags().GetString("type")
	if typeName == "" {
		return tds.TypeInfo{}, fmt.Errorf("--type or --type-info is required")
	}
	size, _ := cmd.Flags().GetUint32("size")
	scale, _ := cmd.Flags().GetUint8("scale")
	return wire.Describe(typeName, size, scale, 0)
}
