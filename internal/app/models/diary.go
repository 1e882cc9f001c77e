package models

import "time"

type DiaryEntry struct {
	ID        string
	UserID    string
	Mood      string
	Text      string
	CreatedAt time.Time
}
