package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"law-agenda-api/internal/auth"
	"law-agenda-api/internal/middleware"
)

const secret = "test-secret"

func router(rl *middleware.RateLimiter) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	if rl != nil {
		r.POST("/limited", middleware.RateLimit(rl), func(c *gin.Context) {
			c.Status(http.StatusOK)
		})
	}
	authed := r.Group("", middleware.RequireAuth(secret))
	authed.GET("/me", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"uid": c.GetInt64(middleware.CtxUserID)})
	})
	authed.GET("/admin", middleware.RequireAdmin(), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})
	return r
}

func do(r *gin.Engine, method, path, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func TestRequireAuth(t *testing.T) {
	r := router(nil)

	if rec := do(r, "GET", "/me", ""); rec.Code != http.StatusUnauthorized {
		t.Errorf("no token: expected 401, got %d", rec.Code)
	}
	if rec := do(r, "GET", "/me", "garbage"); rec.Code != http.StatusUnauthorized {
		t.Errorf("bad token: expected 401, got %d", rec.Code)
	}

	tok, _ := auth.MakeToken(7, false, secret)
	if rec := do(r, "GET", "/me", tok); rec.Code != http.StatusOK {
		t.Errorf("valid token: expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
}

func TestRequireAdmin(t *testing.T) {
	r := router(nil)

	userTok, _ := auth.MakeToken(7, false, secret)
	if rec := do(r, "GET", "/admin", userTok); rec.Code != http.StatusForbidden {
		t.Errorf("non-admin: expected 403, got %d", rec.Code)
	}

	adminTok, _ := auth.MakeToken(8, true, secret)
	if rec := do(r, "GET", "/admin", adminTok); rec.Code != http.StatusOK {
		t.Errorf("admin: expected 200, got %d", rec.Code)
	}
}

func TestRateLimit(t *testing.T) {
	r := router(middleware.NewRateLimiter(1, 1))

	if rec := do(r, "POST", "/limited", ""); rec.Code != http.StatusOK {
		t.Fatalf("first request: expected 200, got %d", rec.Code)
	}
	if rec := do(r, "POST", "/limited", ""); rec.Code != http.StatusTooManyRequests {
		t.Errorf("second request: expected 429, got %d", rec.Code)
	}
}
