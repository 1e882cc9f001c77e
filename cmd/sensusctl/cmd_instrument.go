package main

import (
	"fmt"
	"sensus-service/internal/app/services/core/scoring"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

func newInstrumentCmd(opts *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "instrument",
		Short: "Inspect the instrument catalog",
	}
	cmd.AddCommand(newInstrumentListCmd(opts), newInstrumentShowCmd(opts))
	return cmd
}

func newInstrumentListCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List instrument codes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			catalog, err := opts.catalog()
			if err != nil {
				return err
			}

			instruments := make([]*scoring.Instrument, 0)
			for _, code := range catalog.Codes() {
				instrument, _ := catalog.Find(code)
				instruments = append(instruments, instrument)
			}
			if opts.output == outputJSON {
				return writeJSON(cmd.OutOrStdout(), instruments)
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "CODE\tQUESTIONS\tMAX SCORE\tTITLE")
			for _, instrument := range instruments {
				fmt.Fprintf(w, "%s\t%d\t%d\t%s\n", instrument.Code, instrument.QuestionCount(), instrument.MaxScore(), instrument.Title)
			}
			return w.Flush()
		},
	}
}

func newInstrumentShowCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "show CODE",
		Short: "Print questions, options and bands of one instrument",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			catalog, err := opts.catalog()
			if err != nil {
				return err
			}
			instrument, err := catalog.Find(args[0])
			if err != nil {
				return err
			}
			if opts.output == outputJSON {
				return writeJSON(cmd.OutOrStdout(), instrument)
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%s (%s)\n", instrument.Title, instrument.Code)
			if instrument.Prompt != "" {
				fmt.Fprintln(out, instrument.Prompt)
			}
			fmt.Fprintln(out)
			for i, question := range instrument.Questions {
				fmt.Fprintf(out, "%2d. %s\n", i+1, question.Text)
			}
			fmt.Fprintln(out, "\nOptions:")
			for _, option := range instrument.Options {
				fmt.Fprintf(out, "  %d  %s\n", option.Value, option.Label)
			}
			fmt.Fprintln(out, "\nBands:")
			for _, band := range instrument.Bands {
				fmt.Fprintf(out, "  %2d-%-2d  %s\n", band.Min, band.Max, band.Label)
			}
			return nil
		},
	}
}
