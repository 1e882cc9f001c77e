package responses

import "time"

type AnswerOption struct {
	Value int    `json:"value"`
	Label string `json:"label"`
}

type Instrument struct {
	Code      string         `json:"code"`
	Title     string         `json:"title"`
	Prompt    string         `json:"prompt,omitempty"`
	Questions []string       `json:"questions"`
	Options   []AnswerOption `json:"options"`
	MaxScore  int            `json:"max_score"`
}

type AssessmentResult struct {
	ID             string    `json:"id,omitempty"`
	InstrumentCode string    `json:"instrument_code"`
	Score          int       `json:"score"`
	MaxScore       int       `json:"max_score"`
	ScoreDisplay   string    `json:"score_display"`
	Category       string    `json:"category"`
	Label          string    `json:"label"`
	Message        string    `json:"message"`
	Style          string    `json:"style,omitempty"`
	Saved          bool      `json:"saved"`
	CreatedAt      time.Time `json:"created_at,omitempty"`
}

type ExportAssessmentResults struct {
	URL       string    `json:"url"`
	Object    string    `json:"object"`
	Count     int       `json:"count"`
	ExpiresAt time.Time `json:"expires_at"`
}
