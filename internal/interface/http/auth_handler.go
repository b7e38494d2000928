package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/Mduduzi-Ndlovu1/Blog-Project/internal/application"
	repo "github.com/Mduduzi-Ndlovu1/Blog-Project/internal/domain/repository"
	"github.com/Mduduzi-Ndlovu1/Blog-Project/pkg/helpers"
	"github.com/Mduduzi-Ndlovu1/Blog-Project/pkg/response"
	"github.com/Mduduzi-Ndlovu1/Blog-Project/pkg/validation"
)

// AuthHandler serves the login, registration, and logout endpoints. These are
// the only admin routes reachable without a session.
type AuthHandler struct {
	Auth    *application.AuthService
	Logger  *logrus.Logger
	Cookies *helpers.CookieManager
}

func NewAuthHandler(auth *application.AuthService, logger *logrus.Logger, cookieDomain string, cookieSecure bool) *AuthHandler {
	return &AuthHandler{Auth: auth, Logger: logger, Cookies: helpers.NewCookie(cookieDomain, cookieSecure)}
}

type credentialsRequest struct {
	Username string `json:"username" form:"username" binding:"required"`
	Password string `json:"password" form:"password" binding:"required"`
}

// LoginForm GET /admin
func (h *AuthHandler) LoginForm(c *gin.Context) {
	response.Success(c, http.StatusOK, gin.H{"title": "Admin"}, "admin login", nil)
}

// Login POST /admin
// Same 401 for an unknown username and a wrong password.
func (h *AuthHandler) Login(c *gin.Context) {
	var req credentialsRequest
	if err := c.ShouldBind(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}

	token, exp, err := h.Auth.Login(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		if errors.Is(err, application.ErrInvalidCredentials) {
			response.Error(c, http.StatusUnauthorized, "Invalid Credentials", nil)
			return
		}
		h.Logger.WithError(err).Error("login failed")
		response.Error(c, http.StatusInternalServerError, "Internal server error", nil)
		return
	}

	h.Cookies.Set(c, token, exp)
	c.Redirect(http.StatusFound, "/dashboard")
}

// Register POST /register
func (h *AuthHandler) Register(c *gin.Context) {
	var req credentialsRequest
	if err := c.ShouldBind(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}

	u, err := h.Auth.Register(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		if errors.Is(err, repo.ErrDuplicate) {
			response.Error(c, http.StatusConflict, "User already registered", nil)
			return
		}
		h.Logger.WithError(err).WithField("username", req.Username).Error("register failed")
		response.Error(c, http.StatusInternalServerError, "Internal server error", nil)
		return
	}

	response.Success(c, http.StatusCreated, gin.H{
		"id":         u.ID,
		"username":   u.Username,
		"created_at": u.CreatedAt,
	}, "User Created", nil)
}

// Logout GET /logout
// Idempotent: clearing an absent cookie is fine.
func (h *AuthHandler) Logout(c *gin.Context) {
	h.Cookies.Clear(c)
	c.Redirect(http.StatusFound, "/")
}
