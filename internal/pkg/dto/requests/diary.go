package requests

// Mood and text are checked by the usecase so that each gets its own message.
type CreateDiaryEntry struct {
	Mood string `json:"mood"`
	Text string `json:"text"`
}
