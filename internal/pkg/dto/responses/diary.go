package responses

import "time"

type DiaryEntry struct {
	ID        string    `json:"id"`
	Mood      string    `json:"mood"`
	Text      string    `json:"text"`
	CreatedAt time.Time `json:"created_at"`
}

type CreateDiaryEntry struct {
	Entry  DiaryEntry `json:"entry"`
	Streak int        `json:"streak"`
}

type DiaryEntries struct {
	Entries []DiaryEntry `json:"entries"`
	Streak  int          `json:"streak"`
}
