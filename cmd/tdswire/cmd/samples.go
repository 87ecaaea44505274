package cmd

import (
	"encoding/hex"
	"fmt"
	"io"
	"text/tabwriter"
	"time"

	"github.com/segmentio/ksuid"
	"github.com/spf13/cobra"

	"github.com/ssargent/tdswire/pkg/api"
	"github.com/ssargent/tdswire/pkg/codec"
	"github.com/ssargent/tdswire/pkg/storage"
	"github.com/ssargent/tdswire/pkg/wire"
)

// samplesCmd groups the sample corpus commands
var samplesCmd = &cobra.Command{
	Use:   "samples",
	Short: "Manage a corpus of captured column values",
	Long: `Keep captured column values together with their TYPE_INFO so they can be
listed and re-decoded later, for example after changing codec.temporal_scale.

Examples:
  tdswire samples add --type-info 2b07 --note "orders.created_at" 00188576698f460b7800
  tdswire samples list
  tdswire samples verify`,
}

var samplesAddCmd = &cobra.Command{
	Use:   "add <hex>",
	Short: "Store a captured value",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		env, err := appEnvFrom(cmd)
		if err != nil {
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
		note, _ := cmd.Flags().GetString("note")

		return withSampleStore(cmd, env, func(store *storage.SampleStore) error {
			sample, err := store.Add(ti, b, note)
			if err != nil {
				return err
			}
			env.logger.Debug().Str("id", sample.ID.String()).Str("type", ti.String()).Msg("sample stored")
			fmt.Fprintln(cmd.OutOrStdout(), sample.ID.String())
			return nil
		})
	},
}

var samplesListCmd = &cobra.Command{
	Use:   "list",
	Short: "List stored values and how they decode",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		env, err := appEnvFrom(cmd)
		if err != nil {
			return err
		}
		format, _ := cmd.Flags().GetString("format")
		if err := validateFormat(format); err != nil {
			return err
		}

		return withSampleStore(cmd, env, func(store *storage.SampleStore) error {
			samples, err := store.List()
			if err != nil {
				return err
			}
			results := checkSamples(env.decoder, samples)
			if format == formatJSON {
				return outputJSON(cmd.OutOrStdout(), results)
			}
			return outputSamples(cmd.OutOrStdout(), results)
		})
	},
}

var samplesVerifyCmd = &cobra.Command{
	Use:   "verify",
	Short: "Decode every stored value and fail if any is rejected",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		env, err := appEnvFrom(cmd)
		if err != nil {
			return err
		}

		return withSampleStore(cmd, env, func(store *storage.SampleStore) error {
			samples, err := store.List()
			if err != nil {
				return err
			}
			results := checkSamples(env.decoder, samples)

			out := cmd.OutOrStdout()
			failed := 0
			for _, r := range results {
				if r.Error != "" {
					failed++
					fmt.Fprintf(out, "FAIL %s %s: %s\n", r.ID, r.TypeInfo, r.Error)
				}
			}
			fmt.Fprintf(out, "%d samples, %d failed (temporal scale %s)\n",
				len(results), failed, env.decoder.TemporalScale())
			if failed > 0 {
				return fmt.Errorf("%d of %d samples failed to decode", failed, len(results))
			}
			return nil
		})
	},
}

var samplesDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Remove a stored value",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		env, err := appEnvFrom(cmd)
		if err != nil {
			return err
		}
		id, err := ksuid.Parse(args[0])
		if err != nil {
			return fmt.Errorf("invalid sample id: %w", err)
		}
		return withSampleStore(cmd, env, func(store *storage.SampleStore) error {
			return store.Delete(id)
		})
	},
}

func init() {
	rootCmd.AddCommand(samplesCmd)
	samplesCmd.AddCommand(samplesAddCmd, samplesListCmd, samplesVerifyCmd, samplesDeleteCmd)

	samplesCmd.PersistentFlags().String("samples-dir", "", "Sample store directory (overrides samples.dir)")
	samplesCmd.PersistentFlags().String("temporal-scale", "", "Override codec.temporal_scale (fixed or declared)")

	samplesAddCmd.Flags().StringP("type", "t", "", "Column type (guid, binary, varbinary, datetimeoffset)")
	samplesAddCmd.Flags().String("type-info", "", "Raw TYPE_INFO block as hex, instead of --type")
	samplesAddCmd.Flags().Uint32("size", 0, "Declared column size")
	samplesAddCmd.Flags().Uint8("scale", 7, "Declared fractional-second scale for temporal types")
	samplesAddCmd.Flags().String("note", "", "Free text stored with the value")

	samplesListCmd.Flags().StringP("format", "o", formatTable, "Output format (table or json)")
}

// sampleResult is a stored sample together with its decode outcome
type sampleResult struct {
	ID       string              `json:"id"`
	Created  time.Time           `json:"created"`
	TypeInfo string              `json:"type_info"`
	Hex      string              `json:"hex"`
	Note     string              `json:"note,omitempty"`
	Decoded  *api.DecodeResponse `json:"decoded,omitempty"`
	Error    string              `json:"error,omitempty"`
}

func checkSamples(decoder *codec.Decoder, samples []storage.Sample) []sampleResult {
	results := make([]sampleResult, 0, len(samples))
	for _, s := range samples {
		r := sampleResult{
			ID:       s.ID.String(),
			Created:  s.Created,
			TypeInfo: s.TypeInfo.String(),
			Hex:      hex.EncodeToString(s.Value),
			Note:     s.Note,
		}
		v, err := decoder.DecodeBytes(s.TypeInfo, s.Value)
		if err != nil {
			r.Error = err.Error()
		} else {
			resp := api.NewDecodeResponse(s.TypeInfo, v)
			r.Decoded = &resp
		}
		results = append(results, r)
	}
	return results
}

func outputSamples(w io.Writer, results []sampleResult) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	defer tw.Flush()

	fmt.Fprintln(tw, "ID\tTYPE\tVALUE\tNOTE")
	fmt.Fprintln(tw, "--\t----\t-----\t----")
	for _, r := range results {
		value := "error: " + r.Error
		if r.Decoded != nil {
			value = r.Decoded.Value
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", r.ID, r.TypeInfo, value, r.Note)
	}
	return nil
}

func withSampleStore(cmd *cobra.Command, env *appEnv, fn func(*storage.SampleStore) error) error {
	dir := env.config.Samples.Dir
	if cmd.Flags().Changed("samples-dir") {
		dir, _ = cmd.Flags().GetString("samples-dir")
	}
	store, err := storage.Open(dir)
	if err != nil {
		return err
	}
	defer store.Close()
	return fn(store)
}
