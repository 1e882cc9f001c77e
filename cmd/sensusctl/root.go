package main

import (
	"fmt"
	"io"
	"sensus-service/internal/app/services/core/scoring"

	"github.com/goccy/go-json"
	"github.com/spf13/cobra"
)

const (
	outputText = "text"
	outputJSON = "json"
)

// version is set at build time via -ldflags.
var version = "dev"

type rootOptions struct {
	instrumentsDir string
	output         string
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}
	cmd := &cobra.Command{
		Use:   "sensusctl",
		Short: "Score mental health questionnaires offline",
		CompletionOptions: cobra.CompletionOptions{
			HiddenDefaultCmd: true,
		},
		SilenceUsage: true,
		Version:      version,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if opts.output != outputText && opts.output != outputJSON {
				return fmt.Errorf("unknown output %q, use %s or %s", opts.output, outputText, outputJSON)
			}
			return nil
		},
	}

	flags := cmd.PersistentFlags()
	flags.StringVar(&opts.instrumentsDir, "instruments-dir", "", "Directory of instrument YAML files")
	flags.StringVarP(&opts.output, "output", "o", outputText, "Output format: text or json")

	cmd.AddCommand(newScoreCmd(opts), newInstrumentCmd(opts))
	return cmd
}

func (o *rootOptions) catalog() (*scoring.Catalog, error) {
	return scoring.LoadCatalog(o.instrumentsDir, "")
}

func writeJSON(w io.Writer, v interface{}) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(v)
}
