// Package scoring maps a completed questionnaire to a severity category.
//
// Everything in this package is pure: an Instrument is read-only once built,
// and Score neither performs I/O nor keeps state between calls, so a single
// Instrument may be shared by any number of goroutines.
package scoring

import (
	"fmt"
	"sort"
)

type Category string

const (
	CategoryMinimal  Category = "minimal"
	CategoryMild     Category = "mild"
	CategoryModerate Category = "moderate"
	CategorySevere   Category = "severe"
)

func (c Category) IsValid() bool {
	switch c {
	case CategoryMinimal, CategoryMild, CategoryModerate, CategorySevere:
		return true
	}
	return false
}

// Band is a closed score interval [Min, Max] mapped to one category.
type Band struct {
	Category Category `json:"category" yaml:"category"`
	Label    string   `json:"label" yaml:"label"`
	Min      int      `json:"min" yaml:"min"`
	Max      int      `json:"max" yaml:"max"`
	Message  string   `json:"message" yaml:"message"`
	Style    string   `json:"style,omitempty" yaml:"style"`
}

func (b Band) Contains(score int) bool {
	return score >= b.Min && score <= b.Max
}

type Question struct {
	Text string `json:"text" yaml:"text"`
}

// Option is one selectable answer; its Value is what gets summed.
type Option struct {
	Value int    `json:"value" yaml:"value"`
	Label string `json:"label" yaml:"label"`
}

type Instrument struct {
	Code      string     `json:"code" yaml:"code"`
	Title     string     `json:"title" yaml:"title"`
	Prompt    string     `json:"prompt,omitempty" yaml:"prompt"`
	Questions []Question `json:"questions" yaml:"questions"`
	Options   []Option   `json:"options" yaml:"options"`
	MinAnswer int        `json:"min_answer" yaml:"min_answer"`
	MaxAnswer int        `json:"max_answer" yaml:"max_answer"`
	Bands     []Band     `json:"bands" yaml:"bands"`
}

func (in *Instrument) QuestionCount() int {
	return len(in.Questions)
}

func (in *Instrument) MinScore() int {
	return in.MinAnswer * len(in.Questions)
}

func (in *Instrument) MaxScore() int {
	return in.MaxAnswer * len(in.Questions)
}

// Validate checks that the instrument can score every possible submission:
// the answer domain is well formed, the options stay inside it, and the bands
// tile [MinScore, MaxScore] with no gap and no overlap.
func (in *Instrument) Validate() error {
	if in.Code == "" {
		return invalidInstrument(in.Code, "code is empty")
	}
	if len(in.Questions) == 0 {
		return invalidInstrument(in.Code, "no questions")
	}
	if in.MinAnswer > in.MaxAnswer {
		return invalidInstrument(in.Code, fmt.Sprintf("answer domain [%d,%d] is empty", in.MinAnswer, in.MaxAnswer))
	}

	seenValues := make(map[int]bool, len(in.Options))
	for _, option := range in.Options {
		if option.Value < in.MinAnswer || option.Value > in.MaxAnswer {
			return invalidInstrument(in.Code, fmt.Sprintf("option %q value %d outside [%d,%d]", option.Label, option.Value, in.MinAnswer, in.MaxAnswer))
		}
		if seenValues[option.Value] {
			return invalidInstrument(in.Code, fmt.Sprintf("option value %d declared twice", option.Value))
		}
		seenValues[option.Value] = true
	}

	if len(in.Bands) == 0 {
		return invalidInstrument(in.Code, "no bands")
	}

	bands := in.sortedBands()
	next := in.MinScore()
	for _, band := range bands {
		if band.Category == "" {
			return invalidInstrument(in.Code, fmt.Sprintf("band [%d,%d] has no category", band.Min, band.Max))
		}
		if !band.Category.IsValid() {
			return invalidInstrument(in.Code, fmt.Sprintf("band [%d,%d] has unknown category %q", band.Min, band.Max, band.Category))
		}
		if band.Min > band.Max {
			return invalidInstrument(in.Code, fmt.Sprintf("band %s is inverted [%d,%d]", band.Category, band.Min, band.Max))
		}
		switch {
		case band.Min > next:
			return invalidInstrument(in.Code, fmt.Sprintf("scores %d..%d are not covered by any band", next, band.Min-1))
		case band.Min < next:
			return invalidInstrument(in.Code, fmt.Sprintf("band %s overlaps the previous band at %d", band.Category, band.Min))
		}
		next = band.Max + 1
	}
	if last := next - 1; last != in.MaxScore() {
		if last < in.MaxScore() {
			return invalidInstrument(in.Code, fmt.Sprintf("scores %d..%d are not covered by any band", next, in.MaxScore()))
		}
		return invalidInstrument(in.Code, fmt.Sprintf("bands extend to %d beyond the maximum score %d", last, in.MaxScore()))
	}

	return nil
}

// Categorize returns the band containing score.
func (in *Instrument) Categorize(score int) (Band, error) {
	for _, band := range in.Bands {
		if band.Contains(score) {
			return band, nil
		}
	}
	return Band{}, fmt.Errorf("%w: score %d for instrument %s", ErrScoreOutOfRange, score, in.Code)
}

func (in *Instrument) sortedBands() []Band {
	bands := make([]Band, len(in.Bands))
	copy(bands, in.Bands)
	sort.SliceStable(bands, func(i, j int) bool { return bands[i].Min < bands[j].Min })
	return bands
}
