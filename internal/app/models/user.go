package models

import "go.mongodb.org/mongo-driver/bson"

type User struct {
	ID           string `bson:"_id,omitempty"`
	Name         string `bson:"name"`
	Email        string `bson:"email"`
	PasswordHash string `bson:"passwordHash"`
	TimeModel    `bson:",inline"`
}

// ConvertToBsonM returns the mutable fields for a $set update.
func (u *User) ConvertToBsonM() bson.M {
	return bson.M{
		"name":         u.Name,
		"email":        u.Email,
		"passwordHash": u.PasswordHash,
		"updatedAt":    u.UpdatedAt,
	}
}
