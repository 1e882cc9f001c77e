package queries

const (
	CreateDiaryEntriesTableQuery = `
CREATE TABLE IF NOT EXISTS diary_entries (
	id         UUID PRIMARY KEY,
	user_id    TEXT NOT NULL,
	mood       TEXT NOT NULL,
	text       TEXT NOT NULL,
	created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
)`

	CreateDiaryEntriesUserIndexQuery = `
CREATE INDEX IF NOT EXISTS diary_entries_user_created_idx
	ON diary_entries (user_id, created_at DESC)`

	DropDiaryEntriesTableQuery = `DROP TABLE IF EXISTS diary_entries`

	InsertDiaryEntryQuery = `
INSERT INTO diary_entries (id, user_id, mood, text, created_at)
VALUES ($1, $2, $3, $4, $5)
RETURNING id, created_at`

	FindDiaryEntriesByUserIDQuery = `
SELECT id, user_id, mood, text, created_at
FROM diary_entries
WHERE user_id = $1
ORDER BY created_at DESC
LIMIT $2`

	FindDiaryEntryByIDQuery = `
SELECT id, user_id, mood, text, created_at
FROM diary_entries
WHERE id = $1`

	// Days are bucketed in the caller's time zone so that a streak follows
	// the user's calendar, not the server's.
	FindDiaryEntryDaysByUserIDQuery = `
SELECT DISTINCT (created_at AT TIME ZONE $2)::date AS day
FROM diary_entries
WHERE user_id = $1
ORDER BY day DESC
LIMIT $3`

	DeleteDiaryEntryQuery = `DELETE FROM diary_entries WHERE id = $1 AND user_id = $2`
)
