package scoring

import "sort"

// AssessmentResult is the outcome of one scoring call. It is returned by
// value and holds no references into the Instrument.
type AssessmentResult struct {
	InstrumentCode string   `json:"instrument_code"`
	Score          int      `json:"score"`
	MaxScore       int      `json:"max_score"`
	Category       Category `json:"category"`
	Label          string   `json:"label"`
	Message        string   `json:"message"`
	Style          string   `json:"style,omitempty"`
}

// Score validates responses (question index -> selected value) and maps their
// sum to a band. Unanswered questions are reported before out of range values
// and nothing is scored unless the whole set is valid.
func (in *Instrument) Score(responses map[int]int) (AssessmentResult, error) {
	if missing := in.missingIndices(responses); len(missing) > 0 {
		return AssessmentResult{}, &IncompleteSubmissionError{InstrumentCode: in.Code, Missing: missing}
	}
	if err := in.checkDomain(responses); err != nil {
		return AssessmentResult{}, err
	}

	total := 0
	for _, value := range responses {
		total += value
	}

	band, err := in.Categorize(total)
	if err != nil {
		return AssessmentResult{}, err
	}

	return AssessmentResult{
		InstrumentCode: in.Code,
		Score:          total,
		MaxScore:       in.MaxScore(),
		Category:       band.Category,
		Label:          band.Label,
		Message:        band.Message,
		Style:          band.Style,
	}, nil
}

func (in *Instrument) missingIndices(responses map[int]int) []int {
	var missing []int
	for index := range in.Questions {
		if _, ok := responses[index]; !ok {
			missing = append(missing, index)
		}
	}
	return missing
}

func (in *Instrument) checkDomain(responses map[int]int) error {
	indices := make([]int, 0, len(responses))
	for index := range responses {
		indices = append(indices, index)
	}
	sort.Ints(indices)

	for _, index := range indices {
		value := responses[index]
		known := index >= 0 && index < len(in.Questions)
		if !known || value < in.MinAnswer || value > in.MaxAnswer {
			return &OutOfRangeAnswerError{
				InstrumentCode: in.Code,
				Index:          index,
				Value:          value,
				Min:            in.MinAnswer,
				Max:            in.MaxAnswer,
				Known:          known,
			}
		}
	}
	return nil
}
