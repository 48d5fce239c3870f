package user

import "context"

type UserRepository interface {
	Create(ctx context.Context, u User) (User, error)
	GetByID(ctx context.Context, id string) (User, error)
	GetByEmail(ctx context.Context, email string) (User, error)
	GetByGoogleID(ctx context.Context, googleID string) (User, error)
	LinkGoogleID(ctx context.Context, id, googleID string) error
	UpdatePassword(ctx context.Context, id, passwordHash string) error
}
