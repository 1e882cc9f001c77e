package requests

// Answers maps a zero-based question index to the selected option value.
type ScoreAssessment struct {
	Answers map[int]int `json:"answers"`
	Save    bool        `json:"save"`
}

// Missing answers are reported by the scoring engine, question by question.
type SaveAssessmentResult struct {
	Answers map[int]int `json:"answers"`
}
