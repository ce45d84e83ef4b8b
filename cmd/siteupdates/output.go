package main

import (
	"fmt"
	"io"
	"os"

	"github.com/ghodss/yaml"
	jsoniter "github.com/json-iterator/go"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
)

const (
	formatJSON = "json"
	formatYAML = "yaml"
)

// output writes updates document in the format chosen with command flags.
type output struct {
	format string
	pretty bool
}

func (o *output) bindFlags(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&o.format, "output", "o", formatJSON, "Output format: json or yaml")
	cmd.Flags().BoolVar(&o.pretty, "pretty", isatty.IsTerminal(os.Stdout.Fd()), "Indent json output")
}

func (o output) print(w io.Writer, v interface{}) error {
	switch o.format {
	case formatJSON, "":
		enc := jsoniter.ConfigCompatibleWithStandardLibrary.NewEncoder(w)
		if o.pretty {
			enc.SetIndent("", "  ")
		}
		return enc.Encode(v)
	case formatYAML:
		b, err := yaml.Marshal(v)
		if err != nil {
			return fmt.Errorf("marshalling yaml: %w", err)
		}
		_, err = w.Write(b)
		return err
	default:
		return fmt.Errorf("unknown output format %q", o.format)
	}
}
