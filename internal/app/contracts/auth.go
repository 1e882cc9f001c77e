package contracts

import (
	"context"
	"sensus-service/internal/app/models"
	"sensus-service/internal/pkg/dto/requests"
	"sensus-service/internal/pkg/dto/responses"
)

// IdentityProvider is the account boundary. Every failure it returns carries
// one identity outcome that the caller can read back with auth.OutcomeOf.
type IdentityProvider interface {
	SignUp(ctx context.Context, request *requests.SignUp) (*responses.SignUp, error)
	SignIn(ctx context.Context, request *requests.SignIn) (*responses.SignIn, error)
	RequestPasswordReset(ctx context.Context, request *requests.RequestPasswordReset) error
	ResetPassword(ctx context.Context, request *requests.ResetPassword) error
	SignOut(ctx context.Context, sessionID string) error
}

type UserRepository interface {
	CreateUser(ctx context.Context, user *models.User) (userID string, err error)
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	FindByID(ctx context.Context, userID string) (*models.User, error)
	UpdateUser(ctx context.Context, user *models.User) error
}
