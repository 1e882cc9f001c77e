package constvars

const (
	LoggingRequestIDKey      = "request_id"
	LoggingMethodKey         = "method"
	LoggingEndpointKey       = "endpoint"
	LoggingRemoteAddrKey     = "remote_addr"
	LoggingUserAgentKey      = "user_agent"
	LoggingQueryKey          = "query"
	LoggingStatusCodeKey     = "status_code"
	LoggingDurationKey       = "duration"
	LoggingSuccessKey        = "success"
	LoggingUserIDKey         = "user_id"
	LoggingSessionIDKey      = "session_id"
	LoggingViewerIDKey       = "viewer_id"
	LoggingEmailKey          = "email"
	LoggingInstrumentCodeKey = "instrument_code"
	LoggingScoreKey          = "score"
	LoggingSaveKey           = "save"
	LoggingCategoryKey       = "category"
	LoggingResultIDKey       = "result_id"
	LoggingResultCountKey    = "result_count"
	LoggingEntryIDKey        = "entry_id"
	LoggingEntryCountKey     = "entry_count"
	LoggingMoodKey           = "mood"
	LoggingStreakKey         = "streak"
	LoggingThemeKey          = "theme"
	LoggingCarouselIndexKey  = "carousel_index"
	LoggingQueueKey          = "queue"
	LoggingEventTypeKey      = "event_type"
	LoggingBucketKey         = "bucket"
	LoggingObjectKey         = "object"
	LoggingIdentityOutcome   = "identity_outcome"

	LoggingRedisKey              = "redis_key"
	LoggingLockExpirationTimeKey = "lock_expiration_time"
	LoggingMessageIDKey          = "message_id"
	LoggingAttemptKey            = "attempt"
	LoggingRequeueKey            = "requeue"
	LoggingPanicKey              = "panic"
	LoggingStackTraceKey         = "stack_trace"
)
