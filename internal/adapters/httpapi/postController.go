package httpapi

import (
	"errors"
	"net/http"
	"strconv"

	"devconnect/internal/adapters/httpapi/middleware"
	postapp "devconnect/internal/core/post/service"
	postPort "devconnect/internal/ports/post"

	"github.com/gin-gonic/gin"
)

type PostController struct{ pc PostUseCase }

func NewPostController(pc PostUseCase) *PostController { return &PostController{pc: pc} }

type postRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

func (ctl *PostController) ListPosts(c *gin.Context) {
	userID, ok := callerID(c)
	if !ok {
		return
	}

	posts, err := ctl.pc.ListPosts(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not fetch posts"})
		return
	}
	c.JSON(http.StatusOK, posts)
}

func (ctl *PostController) CreatePost(c *gin.Context) {
	userID, ok := callerID(c)
	if !ok {
		return
	}

	var req postRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input"})
		return
	}

	created, err := ctl.pc.CreatePost(c.Request.Context(), userID, req.Title, req.Description)
	if err != nil {
		if errors.Is(err, postapp.ErrEmptyFields) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not create post"})
		return
	}
	c.JSON(http.StatusCreated, created)
}

func (ctl *PostController) UpdatePost(c *gin.Context) {
	userID, ok := callerID(c)
	if !ok {
		return
	}

	postID, err := parsePostID(c)
	if err != nil {
		return
	}

	var req postRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input"})
		return
	}

	updated, err := ctl.pc.UpdatePost(c.Request.Context(), userID, postID, req.Title, req.Description)
	if err != nil {
		switch {
		case errors.Is(err, postapp.ErrEmptyFields):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case errors.Is(err, postPort.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "post not found"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "could not update post"})
		}
		return
	}
	c.JSON(http.StatusOK, updated)
}

func (ctl *PostController) DeletePost(c *gin.Context) {
	userID, ok := callerID(c)
	if !ok {
		return
	}

	postID, err := parsePostID(c)
	if err != nil {
		return
	}

	if err := ctl.pc.DeletePost(c.Request.Context(), userID, postID); err != nil {
		if errors.Is(err, postPort.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "post not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not delete post"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "post deleted"})
}

// callerID reads the local user id bound by the auth middleware.
func callerID(c *gin.Context) (uint, bool) {
	v, exists := c.Get(middleware.ContextUserID)
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not found in context"})
		return 0, false
	}
	id, ok := v.(uint)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not found in context"})
		return 0, false
	}
	return id, true
}

// parsePostID rejects non-numeric path ids before any storage access.
func parsePostID(c *gin.Context) (uint, error) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid post id"})
		return 0, err
	}
	return uint(id), nil
}
