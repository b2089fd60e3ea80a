package database

import (
	"context"
	"errors"

	"devconnect/internal/config"
	"devconnect/internal/core/user"
	userPort "devconnect/internal/ports/user"

	"gorm.io/gorm"
)

// UserRepositoryDatabase implements UserRepository on the shared GORM handle.
type UserRepositoryDatabase struct{}

func NewUserRepositoryDatabase() *UserRepositoryDatabase {
	return &UserRepositoryDatabase{}
}

func (repo *UserRepositoryDatabase) FindBySubjectID(ctx context.Context, subjectID string) (*user.User, error) {
	var u user.User
	if err := config.DB.WithContext(ctx).Where("subject_id = ?", subjectID).First(&u).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, userPort.ErrNotFound
		}
		return nil, err
	}
	return &u, nil
}

func (repo *UserRepositoryDatabase) Create(ctx context.Context, u *user.User) (*user.User, error) {
	if err := config.DB.WithContext(ctx).Create(u).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, userPort.ErrConflict
		}
		return nil, err
	}
	return u, nil
}

func (repo *UserRepositoryDatabase) UpdateEmail(ctx context.Context, id uint, email string) error {
	return config.DB.WithContext(ctx).
		Model(&user.User{}).
		Where("id = ?", id).
		Update("email", email).Error
}
