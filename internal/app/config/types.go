package config

import "time"

type (
	DriverConfig struct {
		MongoDB    MongoDB
		PostgreSQL PostgreSQL
		Redis      Redis
		Logger     Logger
		RabbitMQ   RabbitMQ
		Minio      Minio
		SMTP       SMTP
	}
	MongoDB struct {
		Port     string
		Host     string
		DbName   string
		Username string
		Password string
	}
	PostgreSQL struct {
		Port     string
		Host     string
		DbName   string
		Username string
		Password string
		SSLMode  string
	}
	Redis struct {
		Host     string
		Port     string
		Password string
		DB       int
	}
	Logger struct {
		Level               string
		OutputFileName      string
		OutputErrorFileName string
	}
	RabbitMQ struct {
		Port     string
		Host     string
		Username string
		Password string
	}
	Minio struct {
		Port     string
		Host     string
		Username string
		Password string
		UseSSL   bool
	}
	SMTP struct {
		Host     string
		Port     int
		Username string
		Password string
	}
)

type (
	InternalConfig struct {
		App         App
		JWT         JWT
		Assessment  Assessment
		Mailer      Mailer
		RabbitMQ    AppRabbitMQ
		Minio       AppMinio
		Testimonial Testimonial
	}

	App struct {
		Env                        string
		Port                       string
		Version                    string
		Address                    string
		Timezone                   string
		EndpointPrefix             string
		FrontendDomain             string
		ResetPasswordUrl           string
		MaxRequests                int
		ShutdownTimeout            int
		MaxTimeRequestsPerSeconds  int
		RequestBodyLimitInMegabyte int
		AuthRateLimitPerMinute     int
		AuthRateLimitBurst         int
		ThemeExpiredTimeInDays     int
		CarouselExpiredTimeInHours int
	}

	JWT struct {
		Secret                           string
		SessionExpiredTimeInHours        int
		ResetPasswordExpiredTimeInMinute int
	}

	Assessment struct {
		DefaultInstrumentCode string
		InstrumentsDir        string
	}

	Mailer struct {
		EmailSender string
	}

	AppRabbitMQ struct {
		MailerQueue string
	}

	AppMinio struct {
		BucketName                 string
		PreSignedUrlExpiryInMinute int
	}

	Testimonial struct {
		File                string
		AutoAdvanceInterval time.Duration
	}
)
