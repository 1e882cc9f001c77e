package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"sensus-service/internal/app/config"
	"sensus-service/internal/app/delivery/http/controllers"
	"sensus-service/internal/app/delivery/http/middlewares"
	"sensus-service/internal/app/delivery/http/routers"
	"sensus-service/internal/app/drivers/database"
	"sensus-service/internal/app/drivers/logger"
	mailerDriver "sensus-service/internal/app/drivers/mailer"
	"sensus-service/internal/app/drivers/messaging"
	"sensus-service/internal/app/drivers/storage"
	"sensus-service/internal/app/services/core/assessment_results"
	"sensus-service/internal/app/services/core/assessments"
	"sensus-service/internal/app/services/core/auth"
	"sensus-service/internal/app/services/core/diaries"
	"sensus-service/internal/app/services/core/preferences"
	"sensus-service/internal/app/services/core/scoring"
	"sensus-service/internal/app/services/core/session"
	"sensus-service/internal/app/services/core/testimonials"
	"sensus-service/internal/app/services/core/users"
	"sensus-service/internal/app/services/shared/jwtmanager"
	"sensus-service/internal/app/services/shared/locker"
	"sensus-service/internal/app/services/shared/mailer"
	"sensus-service/internal/app/services/shared/redis"
	sharedStorage "sensus-service/internal/app/services/shared/storage"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

func main() {
	driverConfig := config.NewDriverConfig()
	internalConfig := config.NewInternalConfig()

	zapLogger, err := logger.NewZapLogger(driverConfig, internalConfig)
	if err != nil {
		log.Fatalf("Error initializing logger: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	bootstrap, err := connectDrivers(ctx, driverConfig, internalConfig, zapLogger)
	if err != nil {
		zapLogger.Fatal("Error connecting drivers", zap.Error(err))
	}

	if err := bootstrapingTheApp(ctx, bootstrap); err != nil {
		zapLogger.Fatal("Error bootstraping the app", zap.Error(err))
	}

	server := &http.Server{
		Addr:              fmt.Sprintf(":%s", internalConfig.App.Port),
		Handler:           bootstrap.Router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	group, groupCtx := errgroup.WithContext(ctx)
	group.Go(func() error {
		zapLogger.Info("Server is listening", zap.String("address", server.Addr))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	group.Go(func() error {
		<-groupCtx.Done()
		zapLogger.Info("Waiting for pending requests that already received by server to be processed..")

		shutdownCtx, cancel := context.WithTimeout(
			context.Background(),
			time.Second*time.Duration(internalConfig.App.ShutdownTimeout),
		)
		defer cancel()

		if err := server.Shutdown(shutdownCtx); err != nil {
			zapLogger.Error("Server forced to shutdown", zap.Error(err))
		}
		return bootstrap.Shutdown(shutdownCtx)
	})

	if err := group.Wait(); err != nil {
		zapLogger.Error("Server exited with error", zap.Error(err))
		os.Exit(1)
	}
	log.Println("Server exiting")
}

func connectDrivers(ctx context.Context, driverConfig *config.DriverConfig, internalConfig *config.InternalConfig, log *zap.Logger) (*config.Bootstrap, error) {
	mongoDB, err := database.NewMongoDB(ctx, driverConfig, log)
	if err != nil {
		return nil, err
	}
	postgresDB, err := database.NewPostgresDB(ctx, driverConfig, log)
	if err != nil {
		return nil, err
	}
	redisClient, err := database.NewRedisClient(ctx, driverConfig, log)
	if err != nil {
		return nil, err
	}
	rabbitMQ, err := messaging.NewRabbitMQ(driverConfig, log)
	if err != nil {
		return nil, err
	}
	minioClient, err := storage.NewMinio(ctx, driverConfig, internalConfig.Minio.BucketName, log)
	if err != nil {
		return nil, err
	}

	return &config.Bootstrap{
		Router:         chi.NewRouter(),
		MongoDB:        mongoDB,
		PostgresDB:     postgresDB,
		Redis:          redisClient,
		Logger:         log,
		RabbitMQ:       rabbitMQ,
		Minio:          minioClient,
		InternalConfig: internalConfig,
		DriverConfig:   driverConfig,
	}, nil
}

func bootstrapingTheApp(ctx context.Context, bootstrap *config.Bootstrap) error {
	cfg := bootstrap.InternalConfig
	log := bootstrap.Logger

	// Indexes
	if err := users.EnsureIndexes(ctx, bootstrap.MongoDB); err != nil {
		return fmt.Errorf("ensure user indexes: %w", err)
	}
	if err := assessmentResults.EnsureIndexes(ctx, bootstrap.MongoDB); err != nil {
		return fmt.Errorf("ensure assessment result indexes: %w", err)
	}

	// Shared services
	redisRepository := redis.NewRedisRepository(bootstrap.Redis)
	sessionService := session.NewSessionService(redisRepository, log)
	lockerService := locker.NewLockService(redisRepository, log)
	minioStorage := sharedStorage.NewMinioStorage(bootstrap.Minio)

	jwtManager, err := jwtmanager.NewJWTManager(cfg.JWT.Secret, time.Duration(cfg.JWT.SessionExpiredTimeInHours)*time.Hour, log)
	if err != nil {
		return err
	}

	mailerService, err := mailer.NewMailerService(bootstrap.RabbitMQ, cfg.RabbitMQ.MailerQueue, log)
	if err != nil {
		return fmt.Errorf("init mailer: %w", err)
	}
	smtpClient := mailerDriver.NewSMTPClient(bootstrap.DriverConfig, cfg.Mailer.EmailSender)
	stopWorker, err := mailer.StartMailWorker(bootstrap.RabbitMQ, cfg.RabbitMQ.MailerQueue, mailer.NewMailWorker(smtpClient, log))
	if err != nil {
		return fmt.Errorf("start mail worker: %w", err)
	}
	bootstrap.WorkerStop = stopWorker

	// Assessments
	catalog, err := scoring.LoadCatalog(cfg.Assessment.InstrumentsDir, cfg.Assessment.DefaultInstrumentCode)
	if err != nil {
		return fmt.Errorf("build instrument catalog: %w", err)
	}
	assessmentResultRepository := assessmentResults.NewAssessmentResultMongoRepository(bootstrap.MongoDB)
	assessmentUsecase := assessments.NewAssessmentUsecase(catalog, assessmentResultRepository, mailerService, minioStorage, cfg, log)

	// Auth
	userRepository := users.NewUserMongoRepository(bootstrap.MongoDB)
	identityProvider := auth.NewAuthUsecase(userRepository, redisRepository, sessionService, lockerService, mailerService, jwtManager, cfg, log)

	// Diary
	diaryRepository := diaries.NewDiaryPostgresRepository(bootstrap.PostgresDB, log)
	diaryUsecase, err := diaries.NewDiaryUsecase(diaryRepository, cfg, log)
	if err != nil {
		return fmt.Errorf("init diary usecase: %w", err)
	}

	// Preferences
	preferenceUsecase := preferences.NewPreferenceUsecase(redisRepository, cfg, log)

	// Testimonials
	items, err := testimonials.LoadTestimonials(cfg.Testimonial.File)
	if err != nil {
		return fmt.Errorf("load testimonials: %w", err)
	}
	testimonialUsecase := testimonials.NewTestimonialUsecase(items, redisRepository, cfg, log)

	routers.SetupRoutes(bootstrap.Router, cfg, log,
		middlewares.NewMiddlewares(log, jwtManager, sessionService, cfg),
		routers.Controllers{
			Assessment:  controllers.NewAssessmentController(log, assessmentUsecase),
			Auth:        controllers.NewAuthController(log, identityProvider),
			Diary:       controllers.NewDiaryController(log, diaryUsecase),
			Preference:  controllers.NewPreferenceController(log, preferenceUsecase),
			Testimonial: controllers.NewTestimonialController(log, testimonialUsecase),
		},
	)
	return nil
}
