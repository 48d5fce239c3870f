package auth

import "context"

type AuthService interface {
	Login(ctx context.Context, req LoginRequest) (TokenResponse, error)
	Refresh(ctx context.Context, req RefreshRequest) (TokenResponse, error)
	Logout(ctx context.Context, refreshToken string) error
	Profile(ctx context.Context, userID string) (ProfileResponse, error)

	// GoogleAuthURL and GoogleCallback implement the OAuth login flow for
	// field devices provisioned with corporate Google accounts.
	GoogleAuthURL(state string) string
	GoogleCallback(ctx context.Context, code string) (TokenResponse, error)
}
