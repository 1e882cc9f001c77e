package auth

import (
	"errors"
	"fmt"
	"sensus-service/internal/pkg/constvars"
	"sensus-service/internal/pkg/exceptions"
)

// Outcome names the result of an identity operation.
type Outcome string

const (
	OutcomeSuccess            Outcome = "success"
	OutcomeMissingFields      Outcome = "missing_fields"
	OutcomePasswordsMismatch  Outcome = "passwords_do_not_match"
	OutcomeWeakPassword       Outcome = "weak_password"
	OutcomeInvalidEmail       Outcome = "invalid_email"
	OutcomeEmailAlreadyInUse  Outcome = "email_already_in_use"
	OutcomeUserNotFound       Outcome = "user_not_found"
	OutcomeInvalidCredentials Outcome = "invalid_credentials"
	OutcomeInvalidResetToken  Outcome = "invalid_reset_token"
	OutcomeTooManyRequests    Outcome = "too_many_requests"
	OutcomeNetworkError       Outcome = "network_error"
	OutcomeUnknown            Outcome = "unknown"
)

var (
	ErrMissingFields      = errors.New("missing required fields")
	ErrPasswordsMismatch  = errors.New("passwords do not match")
	ErrWeakPassword       = errors.New("password too short")
	ErrInvalidEmail       = errors.New("invalid email format")
	ErrEmailAlreadyInUse  = errors.New("email already in use")
	ErrUserNotFound       = errors.New("user not found")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidResetToken  = errors.New("invalid or expired reset token")
	ErrTooManyRequests    = errors.New("too many requests")
	ErrNetwork            = errors.New("identity store unreachable")
)

const minPasswordLength = 6

type outcomeSpec struct {
	outcome       Outcome
	statusCode    int
	clientMessage string
}

var outcomes = map[error]outcomeSpec{
	ErrMissingFields:      {OutcomeMissingFields, constvars.StatusBadRequest, constvars.ErrClientFillAllFields},
	ErrPasswordsMismatch:  {OutcomePasswordsMismatch, constvars.StatusBadRequest, constvars.ErrClientPasswordsDoNotMatch},
	ErrWeakPassword:       {OutcomeWeakPassword, constvars.StatusBadRequest, constvars.ErrClientWeakPassword},
	ErrInvalidEmail:       {OutcomeInvalidEmail, constvars.StatusBadRequest, constvars.ErrClientInvalidEmail},
	ErrEmailAlreadyInUse:  {OutcomeEmailAlreadyInUse, constvars.StatusConflict, constvars.ErrClientEmailAlreadyInUse},
	ErrUserNotFound:       {OutcomeUserNotFound, constvars.StatusNotFound, constvars.ErrClientUserNotFound},
	ErrInvalidCredentials: {OutcomeInvalidCredentials, constvars.StatusUnauthorized, constvars.ErrClientInvalidCredentials},
	ErrInvalidResetToken:  {OutcomeInvalidResetToken, constvars.StatusBadRequest, constvars.ErrClientResetTokenInvalid},
	ErrTooManyRequests:    {OutcomeTooManyRequests, constvars.StatusTooManyRequests, constvars.ErrClientTooManyRequests},
	ErrNetwork:            {OutcomeNetworkError, constvars.StatusServiceUnavailable, constvars.ErrClientIdentityNetworkError},
}

// identityError wraps cause under sentinel and renders it with the sentinel's
// status and client message. The cause is flattened so that an underlying
// CustomError does not take over the response.
func identityError(sentinel, cause error) error {
	return identityErrorWithMessage(sentinel, cause, outcomes[sentinel].clientMessage)
}

func identityErrorWithMessage(sentinel, cause error, clientMessage string) error {
	mapping, ok := outcomes[sentinel]
	if !ok {
		return exceptions.ErrIdentityOutcome(sentinel, constvars.StatusInternalServerError, constvars.ErrClientIdentityUnknownError, string(OutcomeUnknown))
	}

	err := sentinel
	if cause != nil {
		err = fmt.Errorf("%w: %v", sentinel, cause)
	}
	return exceptions.ErrIdentityOutcome(err, mapping.statusCode, clientMessage, string(mapping.outcome))
}

// OutcomeOf maps an error returned by the identity provider back to its
// outcome. A nil error is a success; anything unrecognised is unknown.
func OutcomeOf(err error) Outcome {
	if err == nil {
		return OutcomeSuccess
	}
	for sentinel, mapping := range outcomes {
		if errors.Is(err, sentinel) {
			return mapping.outcome
		}
	}
	return OutcomeUnknown
}
