package database

import (
	"context"
	"errors"

	"devconnect/internal/config"
	"devconnect/internal/core/post"
	postPort "devconnect/internal/ports/post"

	"gorm.io/gorm"
)

// PostRepositoryDatabase implements PostRepository on the shared GORM handle.
type PostRepositoryDatabase struct{}

func NewPostRepositoryDatabase() *PostRepositoryDatabase {
	return &PostRepositoryDatabase{}
}

func (repo *PostRepositoryDatabase) Create(ctx context.Context, p *post.Post) (*post.Post, error) {
	if err := config.DB.WithContext(ctx).Create(p).Error; err != nil {
		return nil, err
	}
	return p, nil
}

func (repo *PostRepositoryDatabase) FindByUserID(ctx context.Context, userID uint) ([]*post.Post, error) {
	var posts []*post.Post
	if err := config.DB.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&posts).Error; err != nil {
		return nil, err
	}
	return posts, nil
}

// FindOwned fetches a post by id and owner in a single filtered query.
func (repo *PostRepositoryDatabase) FindOwned(ctx context.Context, id, userID uint) (*post.Post, error) {
	var p post.Post
	if err := config.DB.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		First(&p).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, postPort.ErrNotFound
		}
		return nil, err
	}
	return &p, nil
}

func (repo *PostRepositoryDatabase) Update(ctx context.Context, p *post.Post) (*post.Post, error) {
	if err := config.DB.WithContext(ctx).
		Model(p).
		Updates(map[string]interface{}{
			"title":       p.Title,
			"description": p.Description,
		}).Error; err != nil {
		return nil, err
	}
	return p, nil
}

func (repo *PostRepositoryDatabase) Delete(ctx context.Context, p *post.Post) error {
	return config.DB.WithContext(ctx).Delete(p).Error
}
