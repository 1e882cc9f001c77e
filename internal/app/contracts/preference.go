package contracts

import "context"

type PreferenceUsecase interface {
	GetTheme(ctx context.Context, viewerID string) (string, error)
	SetTheme(ctx context.Context, viewerID, theme string) (string, error)
	ToggleTheme(ctx context.Context, viewerID string) (string, error)
}
