package cmd

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/ssargent/tdswire/pkg/api"
	"github.com/ssargent/tdswire/pkg/codec"
	"github.com/ssargent/tdswire/pkg/wire"
)

// encodeCmd represents the encode command
var encodeCmd = &cobra.Command{
	Use:   "encode [hex-or-uuid]",
	Short: "Encode a column value",
	Long: `Encode a uniqueidentifier or binary value into its wire form.

GUIDs may be given as UUID text or as 16 canonical bytes in hex.

Examples:
  tdswire encode --type guid 6ba7b810-9dad-11d1-80b4-00c04fd430c8
  tdswire encode --type varbinary cafe
  tdswire encode --type binary --null`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		env, err := appEnvFrom(cmd)
		if err != nil {
			return err
		}

		format, _ := cmd.Flags().GetString("format")
		if err := validateFormat(format); err != nil {
			return err
		}

		typeName, _ := cmd.Flags().GetString("type")
		kind, err := codec.ParseKind(typeName)
		if err != nil {
			return err
		}

		null, _ := cmd.Flags().GetBool("null")
		if null == (len(args) == 1) {
			return fmt.Errorf("give either a value or --null")
		}

		var payload []byte
		if !null {
			payload, err = parseEncodeArg(kind, args[0])
			if err != nil {
				return err
			}
		}
		if limit := env.config.Codec.MaxValueSize; len(payload) > limit {
			return fmt.Errorf("value of %d bytes exceeds limit of %d", len(payload), limit)
		}

		out, isNull, err := codec.Encode(nil, kind, payload)
		if err != nil {
			return err
		}
		env.logger.Debug().Str("kind", kind.String()).Int("len", len(out)).Msg("encoded")

		return outputEncoded(cmd.OutOrStdout(), format, api.NewEncodeResponse(kind, out, isNull))
	},
}

func init() {
	rootCmd.AddCommand(encodeCmd)
	encodeCmd.Flags().StringP("type", "t", "", "Column type (guid, binary, varbinary)")
	encodeCmd.Flags().Bool("null", false, "Encode an absent value")
	encodeCmd.Flags().StringP("format", "o", formatTable, "Output format (table or json)")
	if err := encodeCmd.MarkFlagRequired("type"); err != nil {
		panic(err)
	}
}

// parseEncodeArg reads UUID text for GUIDs, hex otherwise. The result is
// never nil so an empty argument encodes an empty, non-null value.
func parseEncodeArg(kind codec.Kind, arg string) ([]byte, error) {
	if kind == codec.KindGUID && strings.Contains(arg, "-") {
		u, err := uuid.Parse(arg)
		if err != nil {
			return nil, fmt.Errorf("invalid uuid: %w", err)
		}
		return u[:], nil
	}
	b, err := wire.ParseHex(arg)
	if err != nil {
		return nil, err
	}
	if b == nil {
		b = []byte{}
	}
	return b, nil
}
