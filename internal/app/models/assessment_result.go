package models

import "time"

type AssessmentResult struct {
	ID             string    `bson:"_id,omitempty"`
	UserID         string    `bson:"userId"`
	InstrumentCode string    `bson:"instrumentCode"`
	Score          int       `bson:"score"`
	MaxScore       int       `bson:"maxScore"`
	Category       string    `bson:"category"`
	Label          string    `bson:"label"`
	Message        string    `bson:"message"`
	Answers        []int     `bson:"answers"`
	CreatedAt      time.Time `bson:"createdAt"`
}
