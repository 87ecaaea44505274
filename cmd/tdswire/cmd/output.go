package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/ssargent/tdswire/pkg/api"
)

const (
	formatTable = "table"
	formatJSON  = "json"
)

func validateFormat(format string) error {
	if format != formatTable && format != formatJSON {
		return fmt.Errorf("invalid output format %q (want table or json)", format)
	}
	return nil
}

// outputDecoded displays a decoded value
func outputDecoded(w io.Writer, format string, resp api.DecodeResponse) error {
	if format == formatJSON {
		return outputJSON(w, resp)
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	defer tw.Flush()

	fmt.Fprintf(tw, "Kind:\t%s\n", resp.Kind)
	fmt.Fprintf(tw, "Type:\t%s\n", resp.TypeInfo)
	fmt.Fprintf(tw, "Value:\t%s\n", resp.Value)
	if resp.Hex != "" {
		fmt.Fprintf(tw, "Hex:\t%s\n", resp.Hex)
	}
	if resp.Unix != nil {
		fmt.Fprintf(tw, "Unix:\t%d\n", *resp.Unix)
	}
	return nil
}

// outputEncoded displays the wire form of an encoded value
func outputEncoded(w io.Writer, format string, resp api.EncodeResponse) error {
	if format == formatJSON {
		return outputJSON(w, resp)
	}
	if resp.Null {
		_, err := fmt.Fprintln(w, "NULL")
		return err
	}
	_, err := fmt.Fprintln(w, resp.Hex)
	return err
}

// outputTypes displays the supported kinds
func outputTypes(w io.Writer, format string, types []api.TypeDescriptor) error {
	if format == formatJSON {
		return outputJSON(w, types)
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	defer tw.Flush()

	fmt.Fprintln(tw, "KIND\tTAG\tTYPE INFO\tACCEPTS")
	fmt.Fprintln(tw, "----\t---\t---------\t-------")
	for _, t := range types {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", t.Kind, t.Tag, t.TypeInfo, strings.Join(t.Accepts, ", "))
	}
	return nil
}

func outputJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
