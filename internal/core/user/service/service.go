package userapp

import (
	"context"
	"errors"
	"fmt"

	"devconnect/internal/core/user"
	"devconnect/internal/identity"
	userPort "devconnect/internal/ports/user"
)

// UserService resolves verified identities to local directory records.
type UserService struct {
	UserRepository userPort.UserRepository
}

func NewUserService(repo userPort.UserRepository) *UserService {
	return &UserService{UserRepository: repo}
}

// ResolveIdentity returns the directory record for the claims' subject,
// creating it on first sight. A stored email that no longer matches the
// verified one is reconciled in place; no other field is touched.
func (s *UserService) ResolveIdentity(ctx context.Context, claims *identity.Claims) (*user.User, error) {
	u, err := s.UserRepository.FindBySubjectID(ctx, claims.Subject)
	if err == nil {
		if u.Email != claims.Email {
			if err := s.UserRepository.UpdateEmail(ctx, u.ID, claims.Email); err != nil {
				return nil, fmt.Errorf("reconcile email: %w", err)
			}
			u.Email = claims.Email
		}
		return u, nil
	}
	if !errors.Is(err, userPort.ErrNotFound) {
		return nil, err
	}

	newUser := &user.User{
		SubjectID: claims.Subject,
		Email:     claims.Email,
	}
	if claims.Name != "" {
		name := claims.Name
		newUser.Name = &name
	}

	created, err := s.UserRepository.Create(ctx, newUser)
	if err == nil {
		return created, nil
	}
	if !errors.Is(err, userPort.ErrConflict) {
		return nil, fmt.Errorf("create user: %w", err)
	}

	// A concurrent first request for the same subject won the insert.
	// The unique index on subject_id is the backstop; use its row.
	return s.UserRepository.FindBySubjectID(ctx, claims.Subject)
}
