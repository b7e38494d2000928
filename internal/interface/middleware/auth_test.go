package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Mduduzi-Ndlovu1/Blog-Project/pkg/helpers"
)

func newGateRouter(tm *helpers.TokenManager) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/protected", JWTAuth(tm), func(c *gin.Context) {
		c.String(http.StatusOK, c.GetString(CtxUserIDKey))
	})
	return r
}

func getProtected(r *gin.Engine, cookie string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if cookie != "" {
		req.AddCookie(&http.Cookie{Name: helpers.SessionCookie, Value: cookie})
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestJWTAuth_NoCookie(t *testing.T) {
	r := newGateRouter(helpers.NewTokenManager("secret", time.Hour))

	w := getProtected(r, "")
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("status: got %d want %d", w.Code, http.StatusUnauthorized)
	}
}

func TestJWTAuth_InvalidToken(t *testing.T) {
	r := newGateRouter(helpers.NewTokenManager("secret", time.Hour))

	w := getProtected(r, "not.a.token")
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("status: got %d want %d", w.Code, http.StatusUnauthorized)
	}
}

func TestJWTAuth_WrongKeyToken(t *testing.T) {
	r := newGateRouter(helpers.NewTokenManager("secret", time.Hour))

	tok, _, err := helpers.NewTokenManager("other-secret", time.Hour).Generate("u1")
	if err != nil {
		t.Fatalf("Generate error: %v", err)
	}

	w := getProtected(r, tok)
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("status: got %d want %d", w.Code, http.StatusUnauthorized)
	}
}

func TestJWTAuth_ExpiredToken(t *testing.T) {
	tm := helpers.NewTokenManager("secret", -time.Minute)
	r := newGateRouter(tm)

	tok, _, err := tm.Generate("u1")
	if err != nil {
		t.Fatalf("Generate error: %v", err)
	}

	w := getProtected(r, tok)
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("status: got %d want %d", w.Code, http.StatusUnauthorized)
	}
}

func TestJWTAuth_ValidToken(t *testing.T) {
	tm := helpers.NewTokenManager("secret", time.Hour)
	r := newGateRouter(tm)

	tok, _, err := tm.Generate("u1")
	if err != nil {
		t.Fatalf("Generate error: %v", err)
	}

	w := getProtected(r, tok)
	if w.Code != http.StatusOK {
		t.Fatalf("status: got %d want %d", w.Code, http.StatusOK)
	}
	if w.Body.String() != "u1" {
		t.Fatalf("userID in context: got %q want %q", w.Body.String(), "u1")
	}
}
