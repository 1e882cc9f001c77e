package constvars

type ContextKey string

const (
	CONTEXT_REQUEST_ID_KEY           ContextKey = "request_id"
	CONTEXT_IS_CLIENT_REQUEST_ID_KEY ContextKey = "is_client_request_id"
	CONTEXT_SESSION_KEY              ContextKey = "session"
	CONTEXT_VIEWER_ID_KEY            ContextKey = "viewer_id"
)

const (
	AppEnvProduction  = "production"
	AppEnvDevelopment = "development"

	AppPaginationUrlFormat = "%s?page=%d&page_size=%d"
	AppDefaultPageSize     = 10
	AppMaxPageSize         = 100

	AppControllerTimeoutInSeconds = 10
)

const (
	MongoCollectionUsers             = "users"
	MongoCollectionAssessmentResults = "assessment_results"
)

const (
	RedisKeySessionPrefix       = "session:"
	RedisKeyResetPasswordPrefix = "reset_password:"
	RedisKeyThemePrefix         = "theme:"
	RedisKeyCarouselPrefix      = "carousel:"
	RedisKeyLockPrefix          = "lock:"
	RedisKeyRateLimitPrefix     = "rate_limit:"
)

const (
	MinioReportObjectFormat = "reports/%s/%s.json"
	MinioReportContentType  = "application/json"
)

const (
	EventTypePasswordReset = "password_reset"
	EventTypeResultSaved   = "assessment_result_saved"
	MessageHeaderEventType = "event_type"
	MessageHeaderRequestID = "request_id"
)

const (
	MoodHappy   = "happy"
	MoodCalm    = "calm"
	MoodNeutral = "neutral"
	MoodSad     = "sad"
	MoodAnxious = "anxious"
	MoodAngry   = "angry"
)

var Moods = []string{MoodHappy, MoodCalm, MoodNeutral, MoodSad, MoodAnxious, MoodAngry}

func IsValidMood(mood string) bool {
	for _, m := range Moods {
		if m == mood {
			return true
		}
	}
	return false
}

const (
	ThemeLight = "light"
	ThemeDark  = "dark"
)

func IsValidTheme(theme string) bool {
	return theme == ThemeLight || theme == ThemeDark
}
