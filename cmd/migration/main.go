// migration applies or rolls back the postgres schema.
//
// Usage:
//
//	migration up
//	migration down --steps=1
package main

import (
	"context"
	"fmt"
	"os"
	"sensus-service/internal/app/config"
	"sensus-service/internal/app/drivers/database"
	"sensus-service/internal/app/drivers/logger"
	"time"

	migrate "github.com/rubenv/sql-migrate"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

const connectTimeout = 10 * time.Second

var (
	upSteps   int
	downSteps int
)

var rootCmd = &cobra.Command{
	Use:   "migration",
	Short: "Manage the sensus postgres schema",
	CompletionOptions: cobra.CompletionOptions{
		HiddenDefaultCmd: true,
	},
	SilenceUsage: true,
}

var upCmd = &cobra.Command{
	Use:   "up",
	Short: "Apply pending migrations",
	RunE: func(cmd *cobra.Command, _ []string) error {
		return run(migrate.Up, upSteps)
	},
}

var downCmd = &cobra.Command{
	Use:   "down",
	Short: "Roll back applied migrations",
	RunE: func(cmd *cobra.Command, _ []string) error {
		return run(migrate.Down, downSteps)
	},
}

func init() {
	upCmd.Flags().IntVar(&upSteps, "steps", 0, "Maximum migrations to apply (0 applies all)")
	downCmd.Flags().IntVar(&downSteps, "steps", 1, "Maximum migrations to roll back (0 rolls back all)")
	rootCmd.AddCommand(upCmd, downCmd)
}

func run(direction migrate.MigrationDirection, max int) error {
	driverConfig := config.NewDriverConfig()
	internalConfig := config.NewInternalConfig()
	log := logger.NewLogrusLogger(internalConfig.App.Env)

	ctx, cancel := context.WithTimeout(context.Background(), connectTimeout)
	defer cancel()

	db, err := database.NewPostgresDB(ctx, driverConfig, zap.NewNop())
	if err != nil {
		return err
	}
	defer db.Close()

	log.WithFields(logrus.Fields{
		"database": driverConfig.PostgreSQL.DbName,
		"host":     driverConfig.PostgreSQL.Host,
	}).Info("Connected to postgres")

	_, err = database.RunMigrations(db, direction, max, log)
	return err
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
