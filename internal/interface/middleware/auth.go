package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Mduduzi-Ndlovu1/Blog-Project/pkg/helpers"
	"github.com/Mduduzi-Ndlovu1/Blog-Project/pkg/response"
)

// CtxUserIDKey is the Gin context key carrying the authenticated user id.
const CtxUserIDKey = "userID"

// JWTAuth is the authorization gate for admin routes. It reads the session
// cookie, verifies the token, and injects the user id into the context. The
// user record itself is not looked up; the id is a weak reference resolved by
// handlers that need it.
func JWTAuth(tm *helpers.TokenManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(helpers.SessionCookie)
		if err != nil || token == "" {
			response.AbortError(c, http.StatusUnauthorized, "Unauthorized", nil)
			return
		}
		claims, err := tm.Parse(token)
		if err != nil {
			response.AbortError(c, http.StatusUnauthorized, "Unauthorized", nil)
			return
		}
		c.Set(CtxUserIDKey, claims.UserID)
		c.Next()
	}
}
