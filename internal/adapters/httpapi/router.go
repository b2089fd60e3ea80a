package httpapi

import (
	"context"

	"devconnect/internal/adapters/httpapi/middleware"
	"devconnect/internal/identity"
	postPort "devconnect/internal/ports/post"
	ratelimitPort "devconnect/internal/ports/ratelimit"

	"github.com/gin-gonic/gin"
)

// PostUseCase is the inbound port the controller needs.
type PostUseCase interface {
	ListPosts(ctx context.Context, userID uint) ([]*postPort.PostDTO, error)
	CreatePost(ctx context.Context, userID uint, title, description string) (*postPort.PostDTO, error)
	UpdatePost(ctx context.Context, userID, postID uint, title, description string) (*postPort.PostDTO, error)
	DeletePost(ctx context.Context, userID, postID uint) error
}

// SetupRoutes builds the engine; use cases and capabilities are injected.
// A nil limiter disables rate limiting, a nil verifier leaves the
// capability unconfigured (authenticated routes then answer 500).
func SetupRoutes(
	verifier identity.Verifier,
	users middleware.IdentityResolver,
	postUC PostUseCase,
	limiter ratelimitPort.Limiter,
) *gin.Engine {
	r := gin.Default()
	r.Use(middleware.RequestID())
	if limiter != nil {
		r.Use(middleware.RateLimit(limiter))
	}

	r.GET("/", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	pc := NewPostController(postUC)
	auth := middleware.AuthBinding(verifier, users)

	r.GET("/posts", auth, pc.ListPosts)
	r.POST("/posts", auth, pc.CreatePost)
	r.PUT("/posts/:id", auth, pc.UpdatePost)
	r.DELETE("/posts/:id", auth, pc.DeletePost)

	return r
}
