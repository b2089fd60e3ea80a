package user

import (
	"context"
	"errors"

	"devconnect/internal/core/user"
)

var (
	ErrNotFound = errors.New("user not found")
	ErrConflict = errors.New("user already exists")
)

// UserRepository is the outbound port for the user directory.
type UserRepository interface {
	FindBySubjectID(ctx context.Context, subjectID string) (*user.User, error)
	Create(ctx context.Context, u *user.User) (*user.User, error)
	UpdateEmail(ctx context.Context, id uint, email string) error
}
