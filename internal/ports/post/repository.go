package post

import (
	"context"
	"errors"
	"time"

	"devconnect/internal/core/post"
)

var ErrNotFound = errors.New("post not found")

// PostRepository is the outbound port for the post store. Owned lookups
// filter by post id and owner in one query so that a row owned by
// someone else is indistinguishable from a missing one.
type PostRepository interface {
	Create(ctx context.Context, p *post.Post) (*post.Post, error)
	FindByUserID(ctx context.Context, userID uint) ([]*post.Post, error)
	FindOwned(ctx context.Context, id, userID uint) (*post.Post, error)
	Update(ctx context.Context, p *post.Post) (*post.Post, error)
	Delete(ctx context.Context, p *post.Post) error
}

// PostDTO is the wire shape of a post.
type PostDTO struct {
	ID          uint      `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	UserID      uint      `json:"user_id"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
