package config

import (
	"context"
	"database/sql"

	"github.com/go-chi/chi/v5"
	"github.com/minio/minio-go/v7"
	"github.com/rabbitmq/amqp091-go"
	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

type Bootstrap struct {
	Router         *chi.Mux
	MongoDB        *mongo.Database
	PostgresDB     *sql.DB
	Redis          *redis.Client
	Logger         *zap.Logger
	RabbitMQ       *amqp091.Connection
	Minio          *minio.Client
	InternalConfig *InternalConfig
	DriverConfig   *DriverConfig
	// WorkerStop, when set, stops background consumers before stores close.
	WorkerStop func()
}

// Shutdown stops workers first, then closes every store in parallel and
// finally flushes the logger.
func (b *Bootstrap) Shutdown(ctx context.Context) error {
	if b.WorkerStop != nil {
		b.WorkerStop()
		b.Logger.Info("Successfully stopped background workers")
	}

	group, ctx := errgroup.WithContext(ctx)
	if b.Redis != nil {
		group.Go(func() error {
			if err := b.Redis.Close(); err != nil {
				return err
			}
			b.Logger.Info("Successfully closing Redis")
			return nil
		})
	}
	if b.MongoDB != nil {
		group.Go(func() error {
			if err := b.MongoDB.Client().Disconnect(ctx); err != nil {
				return err
			}
			b.Logger.Info("Successfully closing MongoDB")
			return nil
		})
	}
	if b.PostgresDB != nil {
		group.Go(func() error {
			if err := b.PostgresDB.Close(); err != nil {
				return err
			}
			b.Logger.Info("Successfully closing PostgreSQL")
			return nil
		})
	}
	if b.RabbitMQ != nil {
		group.Go(func() error {
			if err := b.RabbitMQ.Close(); err != nil {
				return err
			}
			b.Logger.Info("Successfully closing RabbitMQ")
			return nil
		})
	}
	if err := group.Wait(); err != nil {
		return err
	}

	// Sync on stdout returns EINVAL on some platforms; nothing to recover.
	_ = b.Logger.Sync()
	return nil
}
