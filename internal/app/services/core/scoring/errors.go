package scoring

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var (
	ErrIncompleteSubmission = errors.New("incomplete submission")
	ErrOutOfRangeAnswer     = errors.New("out of range answer")
	ErrInvalidInstrument    = errors.New("invalid instrument")
	ErrScoreOutOfRange      = errors.New("score outside every band")
	ErrUnknownInstrument    = errors.New("unknown instrument")
)

// IncompleteSubmissionError lists every unanswered question index in
// ascending order.
type IncompleteSubmissionError struct {
	InstrumentCode string
	Missing        []int
}

func (e *IncompleteSubmissionError) Error() string {
	indices := make([]string, 0, len(e.Missing))
	for _, index := range e.Missing {
		indices = append(indices, strconv.Itoa(index))
	}
	return fmt.Sprintf("%s: instrument %s is missing answers for question indices [%s]",
		ErrIncompleteSubmission, e.InstrumentCode, strings.Join(indices, ", "))
}

func (e *IncompleteSubmissionError) Is(target error) bool {
	return target == ErrIncompleteSubmission
}

// OutOfRangeAnswerError reports the lowest offending question index. Known is
// false when the index does not belong to the questionnaire at all.
type OutOfRangeAnswerError struct {
	InstrumentCode string
	Index          int
	Value          int
	Min            int
	Max            int
	Known          bool
}

func (e *OutOfRangeAnswerError) Error() string {
	if !e.Known {
		return fmt.Sprintf("%s: instrument %s has no question index %d", ErrOutOfRangeAnswer, e.InstrumentCode, e.Index)
	}
	return fmt.Sprintf("%s: instrument %s question index %d answered %d, want [%d,%d]",
		ErrOutOfRangeAnswer, e.InstrumentCode, e.Index, e.Value, e.Min, e.Max)
}

func (e *OutOfRangeAnswerError) Is(target error) bool {
	return target == ErrOutOfRangeAnswer
}

func invalidInstrument(code, reason string) error {
	return fmt.Errorf("%w %q: %s", ErrInvalidInstrument, code, reason)
}
