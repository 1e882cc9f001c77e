package main

import (
	"errors"
	"fmt"
	"sensus-service/internal/app/services/core/scoring"
	"sensus-service/internal/pkg/utils"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
)

// defaultInstrumentEnv is shared with the HTTP server config.
const defaultInstrumentEnv = "ASSESSMENT_DEFAULT_INSTRUMENT_CODE"

func newScoreCmd(opts *rootOptions) *cobra.Command {
	var (
		instrumentCode string
		answers        string
	)

	cmd := &cobra.Command{
		Use:   "score",
		Short: "Score one set of answers",
		Long: "Score one set of answers. Answers are comma separated option values in\n" +
			"question order; leave a position empty to mark it unanswered.",
		RunE: func(cmd *cobra.Command, _ []string) error {
			catalog, err := opts.catalog()
			if err != nil {
				return err
			}
			instrument, err := catalog.Find(instrumentCode)
			if err != nil {
				return err
			}
			responses, err := parseAnswers(answers)
			if err != nil {
				return err
			}

			result, err := instrument.Score(responses)
			if err != nil {
				return describeScoringError(err)
			}

			if opts.output == outputJSON {
				return writeJSON(cmd.OutOrStdout(), result)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s: %d / %d\n", instrument.Title, result.Score, result.MaxScore)
			fmt.Fprintf(cmd.OutOrStdout(), "%s (%s)\n", result.Label, result.Category)
			fmt.Fprintln(cmd.OutOrStdout(), result.Message)
			return nil
		},
	}

	cmd.Flags().StringVarP(&instrumentCode, "instrument", "i",
		utils.GetEnvString(defaultInstrumentEnv, scoring.GAD7().Code),
		"Instrument code, defaults to $"+defaultInstrumentEnv)
	cmd.Flags().StringVarP(&answers, "answers", "a", "", "Comma separated answer values (required)")
	_ = cmd.MarkFlagRequired("answers")
	return cmd
}

// parseAnswers turns "1,,3" into {0: 1, 2: 3}. Blank positions stay
// unanswered so the instrument can report them.
func parseAnswers(raw string) (map[int]int, error) {
	responses := make(map[int]int)
	for index, field := range strings.Split(raw, ",") {
		field = strings.TrimSpace(field)
		if field == "" {
			continue
		}
		value, err := strconv.Atoi(field)
		if err != nil {
			return nil, fmt.Errorf("answer %d is not a number: %q", index+1, field)
		}
		responses[index] = value
	}
	return responses, nil
}

func describeScoringError(err error) error {
	var incomplete *scoring.IncompleteSubmissionError
	if errors.As(err, &incomplete) {
		numbers := make([]string, 0, len(incomplete.Missing))
		for _, index := range incomplete.Missing {
			numbers = append(numbers, strconv.Itoa(index+1))
		}
		return fmt.Errorf("please answer every question, missing: %s", strings.Join(numbers, ", "))
	}

	var outOfRange *scoring.OutOfRangeAnswerError
	if errors.As(err, &outOfRange) {
		return fmt.Errorf("question %d has an invalid answer", outOfRange.Index+1)
	}
	return err
}
