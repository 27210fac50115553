package http

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"gamehub/internal/entity"
	"gamehub/pkg/jwt"
	"gamehub/pkg/logger"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

type stubVersionSource struct {
	versions map[string]int
}

func (s *stubVersionSource) TokenVersion(id string) (int, error) {
	version, ok := s.versions[id]
	if !ok {
		return 0, gorm.ErrRecordNotFound
	}
	return version, nil
}

func testRouter(middleware *AuthMiddleware) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	protected := r.Group("", middleware.Authenticate())
	protected.GET("/ping", func(c *gin.Context) {
		actor := actorFromContext(c)
		respondData(c, http.StatusOK, gin.H{"id": actor.ID})
	})
	protected.GET("/admin", middleware.RequireAdmin(), func(c *gin.Context) {
		respondMessage(c, http.StatusOK, "ok")
	})
	protected.GET("/super", middleware.RequireSuperAdmin(), func(c *gin.Context) {
		respondMessage(c, http.StatusOK, "ok")
	})
	return r
}

func newTestMiddleware(source TokenVersionSource) (*AuthMiddleware, *jwt.Service) {
	tokens := jwt.NewService("test-secret", time.Hour)
	return NewAuthMiddleware(tokens, nil, source, logger.New()), tokens
}

func TestAuthenticateRejectsMissingToken(t *testing.T) {
	middleware, _ := newTestMiddleware(&stubVersionSource{})
	r := testRouter(middleware)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthenticateAcceptsBearerToken(t *testing.T) {
	userID := uuid.New().String()
	source := &stubVersionSource{versions: map[string]int{userID: 0}}
	middleware, tokens := newTestMiddleware(source)
	r := testRouter(middleware)

	token, _ := tokens.GenerateToken(userID, []string{"USER"}, 0)
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), userID)
}

func TestAuthenticateAcceptsCookie(t *testing.T) {
	userID := uuid.New().String()
	source := &stubVersionSource{versions: map[string]int{userID: 0}}
	middleware, tokens := newTestMiddleware(source)
	r := testRouter(middleware)

	token, _ := tokens.GenerateToken(userID, []string{"USER"}, 0)
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.AddCookie(&http.Cookie{Name: authCookie, Value: token})
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestAuthenticateFencesStaleTokenVersion(t *testing.T) {
	userID := uuid.New().String()
	// The account was force-logged-out after the token was minted.
	source := &stubVersionSource{versions: map[string]int{userID: 3}}
	middleware, tokens := newTestMiddleware(source)
	r := testRouter(middleware)

	token, _ := tokens.GenerateToken(userID, []string{"USER"}, 2)
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "invalidated")
}

func TestAuthenticateRejectsUnknownAccount(t *testing.T) {
	middleware, tokens := newTestMiddleware(&stubVersionSource{})
	r := testRouter(middleware)

	token, _ := tokens.GenerateToken(uuid.New().String(), []string{"USER"}, 0)
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRoleGuards(t *testing.T) {
	userID := uuid.New().String()
	adminID := uuid.New().String()
	superID := uuid.New().String()
	source := &stubVersionSource{versions: map[string]int{userID: 0, adminID: 0, superID: 0}}
	middleware, tokens := newTestMiddleware(source)
	r := testRouter(middleware)

	cases := []struct {
		name   string
		id     string
		roles  []string
		path   string
		status int
	}{
		{"user denied admin", userID, []string{string(entity.RoleUser)}, "/admin", http.StatusForbidden},
		{"admin allowed admin", adminID, []string{string(entity.RoleAdmin)}, "/admin", http.StatusOK},
		{"admin denied super", adminID, []string{string(entity.RoleAdmin)}, "/super", http.StatusForbidden},
		{"super allowed everywhere", superID, []string{string(entity.RoleSuperAdmin)}, "/super", http.StatusOK},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			token, _ := tokens.GenerateToken(tc.id, tc.roles, 0)
			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, tc.path, nil)
			req.Header.Set("Authorization", "Bearer "+token)
			r.ServeHTTP(w, req)

			assert.Equal(t, tc.status, w.Code)
		})
	}
}
