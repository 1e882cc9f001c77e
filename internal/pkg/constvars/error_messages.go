package constvars

// Validation messages mapper
var CustomValidationErrorMessages = map[string]string{
	"required": "is required",
	"email":    "must be a valid email",
	"min":      "must be at least %s characters long",
	"max":      "maximum at %s characters long",
	"eqfield":  "must match %s",
	"oneof":    "must be one of [%s]",
	"gte":      "must be greater than or equal to %s",
	"lte":      "must be less than or equal to %s",
	"theme":    "must be either 'light' or 'dark'",
}

// Tags that require parameter substitution
var TagsWithParams = map[string]bool{
	"min":     true,
	"max":     true,
	"eqfield": true,
	"oneof":   true,
	"gte":     true,
	"lte":     true,
}

// Error messages for clients
const (
	ErrClientSomethingWrongWithApplication = "something wrong with the application, please try again later"
	ErrClientCannotProcessRequest          = "cannot process the request, please check your input"
	ErrClientServerLongRespond             = "the server took too long to respond, please try again"
	ErrClientNotAuthorized                 = "you are not authorized to access this resource"
	ErrClientNotLoggedIn                   = "please sign in to continue"
	ErrClientTooManyRequests               = "too many requests, please slow down"
	ErrClientResourceNotFound              = "the requested resource does not exist"

	// Identity outcomes, worded after the messages shown by the site
	ErrClientFillAllFields        = "please fill in all the fields"
	ErrClientPasswordsDoNotMatch  = "the passwords do not match"
	ErrClientWeakPassword         = "the password must be at least 6 characters long"
	ErrClientInvalidEmail         = "the email address format is not valid"
	ErrClientEmailAlreadyInUse    = "this email address is already registered"
	ErrClientUserNotFound         = "there is no account with this email address"
	ErrClientInvalidCredentials   = "incorrect password"
	ErrClientIdentityNetworkError = "connection error, please check your internet connection"
	ErrClientResetEmailRequired   = "please enter your email address to recover your password"
	ErrClientResetTokenInvalid    = "the password reset link is invalid or has expired"
	ErrClientIdentityUnknownError = "an error has occurred, please try again"

	// Assessment
	ErrClientIncompleteSubmission = "please answer every question, missing: %s"
	ErrClientOutOfRangeAnswer     = "question %d has an invalid answer"
	ErrClientUnknownInstrument    = "the requested assessment does not exist"

	// Diary and preferences
	ErrClientMoodRequired      = "please select how you feel today"
	ErrClientDiaryTextRequired = "please write something in your diary entry"
	ErrClientInvalidTheme      = "the theme must be light or dark"
	ErrClientNoTestimonials    = "there are no testimonials to show"
)

// Error messages for developers
const (
	ErrDevInvalidInput             = "invalid input"
	ErrDevValidationFailed         = "validation failed"
	ErrDevCannotParseJSON          = "cannot parse JSON into struct or other data types"
	ErrDevCannotMarshalJSON        = "cannot convert struct or other data types to JSON"
	ErrDevURLParamValidationFailed = "invalid url param %s"
	ErrDevServerProcess            = "server failed to process the request"
	ErrDevServerDeadlineExceeded   = "server deadline exceeded"
	ErrDevMissingRequestID         = "request id missing from context"
	ErrDevMissingSession           = "session missing from context"
	ErrDevMissingViewerID          = "viewer id missing from context and header"
	ErrDevResourceNotOwned         = "resource %s is not owned by the requesting user"
	ErrDevResourceNotFound         = "resource %s not found"

	ErrDevAuthTokenMissing     = "authorization token missing"
	ErrDevAuthTokenInvalid     = "authorization token invalid"
	ErrDevAuthSigningMethod    = "unexpected token signing method"
	ErrDevAuthGenerateToken    = "failed to generate token"
	ErrDevAuthInvalidSession   = "session not found or expired"
	ErrDevFailedToHashPassword = "failed to hash password"
	ErrDevIdentityOutcome      = "identity provider returned %s"
	ErrDevAuthRateLimited      = "auth endpoint rate limit exceeded for %s"

	ErrDevIncompleteSubmission = "incomplete submission for instrument %s"
	ErrDevOutOfRangeAnswer     = "out of range answer for instrument %s"
	ErrDevUnknownInstrument    = "unknown instrument %s"
	ErrDevScoringFailed        = "scoring failed for instrument %s"

	ErrDevEmptyCarousel = "carousel has no items"

	ErrDevDBFailedToFindDocument     = "failed to find document"
	ErrDevDBFailedToInsertDocument   = "failed to insert document"
	ErrDevDBFailedToUpdateDocument   = "failed to update document"
	ErrDevDBFailedToDeleteDocument   = "failed to delete document"
	ErrDevDBFailedToIterateDocuments = "failed to iterate documents"
	ErrDevDBDuplicateDocument        = "document violates a unique index"
	ErrDevDBStringNotObjectID        = "string is not a valid object id"

	ErrDevDBFailedToFindData   = "failed to find data"
	ErrDevDBFailedToInsertData = "failed to insert data"
	ErrDevDBFailedToDeleteData = "failed to delete data"

	ErrDevRedisGetData       = "failed to get data from redis"
	ErrDevRedisSetData       = "failed to set data to redis"
	ErrDevRedisDeleteData    = "failed to delete data from redis"
	ErrDevRedisIncrementData = "failed to increment data in redis"
	ErrDevRedisUnlock        = "failed to release redis lock"

	ErrDevRabbitMQPublishMessage     = "failed to publish message to queue %s"
	ErrDevMinioFailedToCreateObject  = "failed to create object in bucket %s"
	ErrDevMinioFailedToPresignObject = "failed to presign object in bucket %s"
)
