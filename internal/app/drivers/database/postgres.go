package database

import (
	"context"
	"database/sql"
	"fmt"
	"sensus-service/internal/app/config"

	_ "github.com/lib/pq"
	"go.uber.org/zap"
)

func NewPostgresDB(ctx context.Context, driverConfig *config.DriverConfig, log *zap.Logger) (*sql.DB, error) {
	connectionString := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		driverConfig.PostgreSQL.Host,
		driverConfig.PostgreSQL.Port,
		driverConfig.PostgreSQL.Username,
		driverConfig.PostgreSQL.Password,
		driverConfig.PostgreSQL.DbName,
		driverConfig.PostgreSQL.SSLMode,
	)

	db, err := sql.Open("postgres", connectionString)
	if err != nil {
		return nil, fmt.Errorf("open postgres database: %w", err)
	}
	if err = db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping postgres database: %w", err)
	}

	log.Info("Successfully connected to postgres database", zap.String("database", driverConfig.PostgreSQL.DbName))
	return db, nil
}
