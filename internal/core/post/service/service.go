package postapp

import (
	"context"
	"errors"
	"fmt"
	"strings"

	postEntity "devconnect/internal/core/post"
	postPort "devconnect/internal/ports/post"
)

// ErrEmptyFields is returned when title or description is empty after
// trimming.
var ErrEmptyFields = errors.New("title and description cannot be empty")

// PostService owns validation and ownership-scoped CRUD for posts.
type PostService struct {
	PostRepository postPort.PostRepository
}

func NewPostService(repo postPort.PostRepository) *PostService {
	return &PostService{PostRepository: repo}
}

// ListPosts returns the caller's posts, newest first.
func (s *PostService) ListPosts(ctx context.Context, userID uint) ([]*postPort.PostDTO, error) {
	posts, err := s.PostRepository.FindByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list posts: %w", err)
	}

	dtos := make([]*postPort.PostDTO, 0, len(posts))
	for _, p := range posts {
		dtos = append(dtos, toDTO(p))
	}
	return dtos, nil
}

// CreatePost validates and inserts a post owned by userID.
func (s *PostService) CreatePost(ctx context.Context, userID uint, title, description string) (*postPort.PostDTO, error) {
	title, description, err := trimFields(title, description)
	if err != nil {
		return nil, err
	}

	created, err := s.PostRepository.Create(ctx, &postEntity.Post{
		Title:       title,
		Description: description,
		UserID:      userID,
	})
	if err != nil {
		return nil, fmt.Errorf("create post: %w", err)
	}
	return toDTO(created), nil
}

// UpdatePost replaces title and description of a post owned by userID.
// A post owned by someone else reports ErrNotFound, same as a missing one.
func (s *PostService) UpdatePost(ctx context.Context, userID, postID uint, title, description string) (*postPort.PostDTO, error) {
	title, description, err := trimFields(title, description)
	if err != nil {
		return nil, err
	}

	p, err := s.PostRepository.FindOwned(ctx, postID, userID)
	if err != nil {
		return nil, err
	}

	p.Title = title
	p.Description = description
	updated, err := s.PostRepository.Update(ctx, p)
	if err != nil {
		return nil, fmt.Errorf("update post: %w", err)
	}
	return toDTO(updated), nil
}

// DeletePost removes a post owned by userID.
func (s *PostService) DeletePost(ctx context.Context, userID, postID uint) error {
	p, err := s.PostRepository.FindOwned(ctx, postID, userID)
	if err != nil {
		return err
	}

	if err := s.PostRepository.Delete(ctx, p); err != nil {
		return fmt.Errorf("delete post: %w", err)
	}
	return nil
}

func trimFields(title, description string) (string, string, error) {
	title = strings.TrimSpace(title)
	description = strings.TrimSpace(description)
	if title == "" || description == "" {
		return "", "", ErrEmptyFields
	}
	return title, description, nil
}

func toDTO(p *postEntity.Post) *postPort.PostDTO {
	return &postPort.PostDTO{
		ID:          p.ID,
		Title:       p.Title,
		Description: p.Description,
		UserID:      p.UserID,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}
