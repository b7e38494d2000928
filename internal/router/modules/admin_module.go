package modules

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Mduduzi-Ndlovu1/Blog-Project/internal/container"
	handlers "github.com/Mduduzi-Ndlovu1/Blog-Project/internal/interface/http"
	"github.com/Mduduzi-Ndlovu1/Blog-Project/internal/interface/middleware"
)

// AdminModule wires the admin surface.
// Public: GET/POST /admin, POST /register, GET /logout.
// Behind the gate: /dashboard and the post CRUD routes.
type AdminModule struct {
	Auth  *handlers.AuthHandler
	Posts *handlers.PostHandler
}

func NewAdminModule(auth *handlers.AuthHandler, posts *handlers.PostHandler) *AdminModule {
	return &AdminModule{Auth: auth, Posts: posts}
}

func (m *AdminModule) Register(rg *gin.RouterGroup) {
	// Credential endpoints get tight per-IP limits
	loginLimiter := middleware.RateLimit(container.GetRedis(), 10, time.Minute, middleware.KeyByIP())
	registerLimiter := middleware.RateLimit(container.GetRedis(), 5, time.Minute, middleware.KeyByIPAndPath())

	rg.GET("/admin", m.Auth.LoginForm)
	rg.POST("/admin", loginLimiter, m.Auth.Login)
	rg.POST("/register", registerLimiter, m.Auth.Register)
	rg.GET("/logout", m.Auth.Logout)

	// Everything below requires a valid session token
	auth := rg.Group("/")
	auth.Use(middleware.JWTAuth(container.GetTokens()))
	{
		auth.GET("/dashboard", m.Posts.Dashboard)
		auth.GET("/add-post", m.Posts.AddPostForm)
		auth.POST("/add-post", m.Posts.AddPost)
		auth.GET("/edit-post/:id", m.Posts.EditPostForm)
		auth.POST("/edit-post/:id", m.Posts.EditPost)
		auth.DELETE("/delete-post/:id", m.Posts.DeletePost)
	}
}
