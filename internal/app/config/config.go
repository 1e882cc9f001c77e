package config

import (
	"sensus-service/internal/pkg/utils"
	"time"

	"github.com/joho/godotenv"
)

func init() {
	godotenv.Load()
}

func NewDriverConfig() *DriverConfig {
	return &DriverConfig{
		MongoDB: MongoDB{
			Port:     utils.GetEnvString("MONGODB_PORT", "27017"),
			Host:     utils.GetEnvString("MONGODB_HOST", "localhost"),
			DbName:   utils.GetEnvString("MONGODB_DB_NAME", "sensus"),
			Username: utils.GetEnvString("MONGODB_USERNAME", ""),
			Password: utils.GetEnvString("MONGODB_PASSWORD", ""),
		},
		PostgreSQL: PostgreSQL{
			Port:     utils.GetEnvString("POSTGRES_PORT", "5432"),
			Host:     utils.GetEnvString("POSTGRES_HOST", "localhost"),
			DbName:   utils.GetEnvString("POSTGRES_DB_NAME", "sensus"),
			Username: utils.GetEnvString("POSTGRES_USERNAME", "postgres"),
			Password: utils.GetEnvString("POSTGRES_PASSWORD", "postgres"),
			SSLMode:  utils.GetEnvString("POSTGRES_SSL_MODE", "disable"),
		},
		Redis: Redis{
			Host:     utils.GetEnvString("REDIS_HOST", "localhost"),
			Port:     utils.GetEnvString("REDIS_PORT", "6379"),
			Password: utils.GetEnvString("REDIS_PASSWORD", ""),
			DB:       utils.GetEnvInt("REDIS_DB", 0),
		},
		Logger: Logger{
			Level:               utils.GetEnvString("LOGGER_LEVEL", "debug"),
			OutputFileName:      utils.GetEnvString("LOGGER_OUTPUT_FILENAME", "logger.log"),
			OutputErrorFileName: utils.GetEnvString("LOGGER_OUTPUT_ERROR_FILENAME", "logger_error.log"),
		},
		RabbitMQ: RabbitMQ{
			Port:     utils.GetEnvString("RABBITMQ_PORT", "5672"),
			Host:     utils.GetEnvString("RABBITMQ_HOST", "localhost"),
			Username: utils.GetEnvString("RABBITMQ_USERNAME", "guest"),
			Password: utils.GetEnvString("RABBITMQ_PASSWORD", "guest"),
		},
		Minio: Minio{
			Port:     utils.GetEnvString("MINIO_PORT", "9000"),
			Host:     utils.GetEnvString("MINIO_HOST", "localhost"),
			Username: utils.GetEnvString("MINIO_USERNAME", "minioadmin"),
			Password: utils.GetEnvString("MINIO_PASSWORD", "minioadmin"),
			UseSSL:   utils.GetEnvBool("MINIO_USE_SSL", false),
		},
		SMTP: SMTP{
			Host:     utils.GetEnvString("SMTP_HOST", "localhost"),
			Port:     utils.GetEnvInt("SMTP_PORT", 2525),
			Username: utils.GetEnvString("SMTP_USERNAME", ""),
			Password: utils.GetEnvString("SMTP_PASSWORD", ""),
		},
	}
}

func NewInternalConfig() *InternalConfig {
	return &InternalConfig{
		App: App{
			Env:                        utils.GetEnvString("APP_ENV", "development"),
			Port:                       utils.GetEnvString("APP_PORT", "8080"),
			Version:                    utils.GetEnvString("APP_VERSION", "v1"),
			Address:                    utils.GetEnvString("APP_ADDRESS", "localhost"),
			Timezone:                   utils.GetEnvString("APP_TIMEZONE", "UTC"),
			EndpointPrefix:             utils.GetEnvString("APP_ENDPOINT_PREFIX", "/api"),
			FrontendDomain:             utils.GetEnvString("APP_FRONTEND_DOMAIN", "http://localhost:3000"),
			ResetPasswordUrl:           utils.GetEnvString("APP_RESET_PASSWORD_URL", "http://localhost:3000/reset-password"),
			MaxRequests:                utils.GetEnvInt("APP_MAX_REQUEST", 100),
			ShutdownTimeout:            utils.GetEnvInt("APP_SHUTDOWN_TIMEOUT", 10),
			MaxTimeRequestsPerSeconds:  utils.GetEnvInt("APP_MAX_TIME_REQUESTS_PER_SECONDS", 60),
			RequestBodyLimitInMegabyte: utils.GetEnvInt("APP_REQUEST_BODY_LIMIT_IN_MEGABYTE", 1),
			AuthRateLimitPerMinute:     utils.GetEnvInt("APP_AUTH_RATE_LIMIT_PER_MINUTE", 10),
			AuthRateLimitBurst:         utils.GetEnvInt("APP_AUTH_RATE_LIMIT_BURST", 5),
			ThemeExpiredTimeInDays:     utils.GetEnvInt("APP_THEME_EXPIRED_TIME_IN_DAYS", 365),
			CarouselExpiredTimeInHours: utils.GetEnvInt("APP_CAROUSEL_EXPIRED_TIME_IN_HOURS", 24),
		},
		JWT: JWT{
			Secret:                           utils.GetEnvString("JWT_SECRET", "sensus-secret"),
			SessionExpiredTimeInHours:        utils.GetEnvInt("JWT_SESSION_EXPIRED_TIME_IN_HOURS", 24),
			ResetPasswordExpiredTimeInMinute: utils.GetEnvInt("JWT_RESET_PASSWORD_EXPIRED_TIME_IN_MINUTE", 30),
		},
		Assessment: Assessment{
			DefaultInstrumentCode: utils.GetEnvString("ASSESSMENT_DEFAULT_INSTRUMENT_CODE", "gad7"),
			InstrumentsDir:        utils.GetEnvString("ASSESSMENT_INSTRUMENTS_DIR", ""),
		},
		Mailer: Mailer{
			EmailSender: utils.GetEnvString("MAILER_EMAIL_SENDER", "no-reply@sensus.local"),
		},
		RabbitMQ: AppRabbitMQ{
			MailerQueue: utils.GetEnvString("RABBITMQ_MAILER_QUEUE", "sensus.mailer"),
		},
		Minio: AppMinio{
			BucketName:                 utils.GetEnvString("MINIO_BUCKET_NAME", "sensus-reports"),
			PreSignedUrlExpiryInMinute: utils.GetEnvInt("MINIO_PRESIGNED_URL_EXPIRY_IN_MINUTE", 15),
		},
		Testimonial: Testimonial{
			File:                utils.GetEnvString("TESTIMONIAL_FILE", ""),
			AutoAdvanceInterval: utils.GetEnvDuration("TESTIMONIAL_AUTO_ADVANCE_INTERVAL", 5*time.Second),
		},
	}
}
