package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/Mduduzi-Ndlovu1/Blog-Project/internal/application"
	"github.com/Mduduzi-Ndlovu1/Blog-Project/internal/domain/entity"
	repo "github.com/Mduduzi-Ndlovu1/Blog-Project/internal/domain/repository"
	"github.com/Mduduzi-Ndlovu1/Blog-Project/pkg/response"
	"github.com/Mduduzi-Ndlovu1/Blog-Project/pkg/validation"
)

// PostHandler serves the admin post CRUD behind the authorization gate, plus
// the public read-only list.
type PostHandler struct {
	Posts        *application.PostService
	Logger       *logrus.Logger
	PostsPerPage int
}

func NewPostHandler(posts *application.PostService, logger *logrus.Logger, postsPerPage int) *PostHandler {
	return &PostHandler{Posts: posts, Logger: logger, PostsPerPage: postsPerPage}
}

type postRequest struct {
	Title string `json:"title" form:"title" binding:"required"`
	Body  string `json:"body" form:"body" binding:"required"`
}

func postJSON(p *entity.Post) gin.H {
	return gin.H{
		"id":         p.ID,
		"title":      p.Title,
		"body":       p.Body,
		"created_at": p.CreatedAt,
		"updated_at": p.UpdatedAt,
	}
}

func postListJSON(posts []*entity.Post) []gin.H {
	out := make([]gin.H, 0, len(posts))
	for _, p := range posts {
		out = append(out, postJSON(p))
	}
	return out
}

// Home GET /
// Public paginated post list, newest first.
func (h *PostHandler) Home(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	res, err := h.Posts.List(c.Request.Context(), page, h.PostsPerPage)
	if err != nil {
		h.Logger.WithError(err).Error("list posts failed")
		response.Error(c, http.StatusInternalServerError, "Internal server error", nil)
		return
	}
	response.Success(c, http.StatusOK, postListJSON(res.Posts), "posts", gin.H{
		"page":        res.Page,
		"per_page":    res.PerPage,
		"total":       res.Total,
		"total_pages": res.TotalPages,
	})
}

// ShowPost GET /post/:id
func (h *PostHandler) ShowPost(c *gin.Context) {
	p, err := h.Posts.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			response.Error(c, http.StatusNotFound, "Post not found", nil)
			return
		}
		h.Logger.WithError(err).Error("get post failed")
		response.Error(c, http.StatusInternalServerError, "Internal server error", nil)
		return
	}
	response.Success(c, http.StatusOK, postJSON(p), "post", nil)
}

// Dashboard GET /dashboard
func (h *PostHandler) Dashboard(c *gin.Context) {
	posts, err := h.Posts.ListAll(c.Request.Context())
	if err != nil {
		h.Logger.WithError(err).Error("list posts failed")
		response.Error(c, http.StatusInternalServerError, "Internal server error", nil)
		return
	}
	response.Success(c, http.StatusOK, postListJSON(posts), "Dashboard", nil)
}

// AddPostForm GET /add-post
func (h *PostHandler) AddPostForm(c *gin.Context) {
	response.Success(c, http.StatusOK, gin.H{"title": "Add Post"}, "add post", nil)
}

// AddPost POST /add-post
func (h *PostHandler) AddPost(c *gin.Context) {
	var req postRequest
	if err := c.ShouldBind(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	if _, err := h.Posts.Create(c.Request.Context(), req.Title, req.Body); err != nil {
		h.Logger.WithError(err).Error("create post failed")
		response.Error(c, http.StatusInternalServerError, "Internal server error", nil)
		return
	}
	c.Redirect(http.StatusFound, "/dashboard")
}

// EditPostForm GET /edit-post/:id
func (h *PostHandler) EditPostForm(c *gin.Context) {
	p, err := h.Posts.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			response.Error(c, http.StatusNotFound, "Post not found", nil)
			return
		}
		h.Logger.WithError(err).Error("get post failed")
		response.Error(c, http.StatusInternalServerError, "Internal server error", nil)
		return
	}
	response.Success(c, http.StatusOK, postJSON(p), "Edit Post", nil)
}

// EditPost POST /edit-post/:id
func (h *PostHandler) EditPost(c *gin.Context) {
	var req postRequest
	if err := c.ShouldBind(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	id := c.Param("id")
	if _, err := h.Posts.Update(c.Request.Context(), id, req.Title, req.Body); err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			response.Error(c, http.StatusNotFound, "Post not found", nil)
			return
		}
		h.Logger.WithError(err).Error("update post failed")
		response.Error(c, http.StatusInternalServerError, "Internal server error", nil)
		return
	}
	c.Redirect(http.StatusFound, "/edit-post/"+id)
}

// DeletePost DELETE /delete-post/:id
func (h *PostHandler) DeletePost(c *gin.Context) {
	if err := h.Posts.Delete(c.Request.Context(), c.Param("id")); err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			response.Error(c, http.StatusNotFound, "Post not found", nil)
			return
		}
		h.Logger.WithError(err).Error("delete post failed")
		response.Error(c, http.StatusInternalServerError, "Internal server error", nil)
		return
	}
	c.Redirect(http.StatusFound, "/dashboard")
}
