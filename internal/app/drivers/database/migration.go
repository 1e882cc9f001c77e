package database

import (
	"database/sql"
	"fmt"
	"sensus-service/internal/pkg/queries"

	migrate "github.com/rubenv/sql-migrate"
	"github.com/sirupsen/logrus"
)

// Migrations lists the postgres schema changes in apply order. New entries
// are appended, never edited, once released.
func Migrations() *migrate.MemoryMigrationSource {
	return &migrate.MemoryMigrationSource{
		Migrations: []*migrate.Migration{
			{
				Id:   "0001_create_diary_entries",
				Up:   []string{queries.CreateDiaryEntriesTableQuery, queries.CreateDiaryEntriesUserIndexQuery},
				Down: []string{queries.DropDiaryEntriesTableQuery},
			},
		},
	}
}

// RunMigrations applies up to max migrations in the given direction. A max
// of zero means all of them.
func RunMigrations(db *sql.DB, direction migrate.MigrationDirection, max int, log *logrus.Logger) (int, error) {
	applied, err := migrate.ExecMax(db, "postgres", Migrations(), direction, max)
	if err != nil {
		return applied, fmt.Errorf("execute migrations: %w", err)
	}

	log.WithFields(logrus.Fields{
		"applied":   applied,
		"direction": directionName(direction),
	}).Info("Migrations finished")
	return applied, nil
}

func directionName(direction migrate.MigrationDirection) string {
	if direction == migrate.Down {
		return "down"
	}
	return "up"
}
