package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"weddingconsole/config"
	"weddingconsole/models"
	"weddingconsole/services/auth"
	"weddingconsole/utils"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

type stubAuth struct {
	auth.AuthService
	session *utils.Session
	err     error
}

func (s stubAuth) Authenticate(ctx context.Context, token string) (*utils.Session, error) {
	return s.session, s.err
}

func init() {
	gin.SetMode(gin.TestMode)
}

func serve(h gin.HandlerFunc, header string) *httptest.ResponseRecorder {
	r := gin.New()
	r.GET("/x", h, func(c *gin.Context) {
		c.String(http.StatusOK, "%v|%v", c.GetString(ContextAccountID), c.MustGet(ContextRole))
	})
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/x", nil)
	if header != "" {
		req.Header.Set("Authorization", header)
	}
	r.ServeHTTP(w, req)
	return w
}

func TestJWTAuthAdminMiddleware(t *testing.T) {
	config.AppConfig.AdminToken = "admin-secret"

	assert.Equal(t, http.StatusUnauthorized, serve(JWTAuthAdminMiddleware(), "").Code)
	assert.Equal(t, http.StatusUnauthorized, serve(JWTAuthAdminMiddleware(), "Bearer nope").Code)

	w := serve(JWTAuthAdminMiddleware(), "Bearer admin-secret")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "|admin", w.Body.String())
}

func TestJWTAuthAdminMiddleware_EmptyConfiguredToken(t *testing.T) {
	config.AppConfig.AdminToken = ""
	assert.Equal(t, http.StatusUnauthorized, serve(JWTAuthAdminMiddleware(), "Bearer ").Code)
}

func TestJWTAuthRoleMiddleware(t *testing.T) {
	provider := stubAuth{session: &utils.Session{AccountID: "p1", Role: string(models.RoleServiceProvider)}}

	w := serve(JWTAuthRoleMiddleware(provider, models.RoleServiceProvider), "Bearer t")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "p1|serviceProvider", w.Body.String())

	w = serve(JWTAuthRoleMiddleware(provider, models.RoleHallManager), "Bearer t")
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = serve(JWTAuthRoleMiddleware(provider), "Bearer t")
	assert.Equal(t, http.StatusOK, w.Code)

	w = serve(JWTAuthRoleMiddleware(stubAuth{err: auth.ErrInvalidSession}), "Bearer t")
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = serve(JWTAuthRoleMiddleware(stubAuth{err: auth.ErrAccountRejected}), "Bearer t")
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = serve(JWTAuthRoleMiddleware(stubAuth{err: errors.New("redis down")}), "Bearer t")
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)

	w = serve(JWTAuthRoleMiddleware(provider), "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRateLimitMiddleware(t *testing.T) {
	r := gin.New()
	r.Use(RateLimitMiddleware(2))
	r.GET("/x", func(c *gin.Context) { c.Status(http.StatusOK) })

	codes := make([]int, 0, 3)
	for i := 0; i < 3; i++ {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/x", nil)
		req.Header.Set("X-Forwarded-For", "10.0.0.1, 10.0.0.2")
		r.ServeHTTP(w, req)
		codes = append(codes, w.Code)
	}
	assert.Equal(t, []int{http.StatusOK, http.StatusOK, http.StatusTooManyRequests}, codes)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/x", nil)
	req.Header.Set("X-Real-IP", "10.0.0.9")
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRateLimiterStore_SweepsIdleVisitors(t *testing.T) {
	clock := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	store := newRateLimiterStore(10)
	store.now = func() time.Time { return clock }
	store.lastSweep = clock

	first := store.getLimiter("10.0.0.1")
	store.getLimiter("10.0.0.2")

	clock = clock.Add(2 * time.Minute)
	store.getLimiter("10.0.0.2")
	assert.Len(t, store.visitors, 2)

	clock = clock.Add(2 * time.Minute)
	store.getLimiter("10.0.0.3")
	assert.Len(t, store.visitors, 2)
	assert.NotContains(t, store.visitors, "10.0.0.1")
	assert.Contains(t, store.visitors, "10.0.0.2")

	assert.NotSame(t, first, store.getLimiter("10.0.0.1"))
}
