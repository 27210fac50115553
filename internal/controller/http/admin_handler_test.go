package http

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"gamehub/internal/apperr"
	"gamehub/internal/entity"
	"gamehub/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubAdminUseCase struct {
	lastActor entity.Actor
	lastIDs   []string
	err       error
}

func (s *stubAdminUseCase) ListUsers(usecase.ListUsersInput) (*usecase.UserPage, error) {
	if s.err != nil {
		return nil, s.err
	}
	return &usecase.UserPage{Users: []*entity.User{{ID: "u1"}}, Total: 1, Page: 1, PageSize: 10, TotalPages: 1}, nil
}

func (s *stubAdminUseCase) ForceLogout(actor entity.Actor, ids []string) (string, error) {
	s.lastActor, s.lastIDs = actor, ids
	if s.err != nil {
		return "", s.err
	}
	return "Logged out 2 users", nil
}

func (s *stubAdminUseCase) SoftDelete(actor entity.Actor, ids []string) (string, error) {
	s.lastActor, s.lastIDs = actor, ids
	if s.err != nil {
		return "", s.err
	}
	return "Moved 2 users to trash", nil
}

func (s *stubAdminUseCase) Restore(ids []string) (string, error) {
	s.lastIDs = ids
	if s.err != nil {
		return "", s.err
	}
	return "Restored 1 users", nil
}

func (s *stubAdminUseCase) CreateUser(input usecase.CreateUserInput) (*entity.User, error) {
	if s.err != nil {
		return nil, s.err
	}
	return &entity.User{Username: input.Username, Email: input.Email}, nil
}

func (s *stubAdminUseCase) UpdateUser(id string, input usecase.UpdateUserInput) (*entity.User, error) {
	if s.err != nil {
		return nil, s.err
	}
	return &entity.User{ID: id, Username: input.Username, Email: input.Email}, nil
}

func adminTestRouter(stub *stubAdminUseCase) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	handler := NewAdminHandler(stub)
	// Authentication is exercised in the middleware tests; here the actor is
	// injected directly.
	r.Use(func(c *gin.Context) {
		c.Set(ctxActor, entity.Actor{ID: "actor-1", Roles: []entity.Role{entity.RoleAdmin}})
	})
	r.GET("/admin/users", handler.ListUsers)
	r.PUT("/admin/users/force-logout", handler.ForceLogout)
	r.DELETE("/admin/users/soft-delete", handler.SoftDelete)
	r.PUT("/admin/users/restore", handler.Restore)
	r.POST("/admin/users", handler.CreateUser)
	r.PUT("/admin/users/:id", handler.UpdateUser)
	return r
}

func jsonBody(t *testing.T, v interface{}) *bytes.Buffer {
	t.Helper()
	raw, err := json.Marshal(v)
	require.NoError(t, err)
	return bytes.NewBuffer(raw)
}

func TestForceLogoutEndpoint(t *testing.T) {
	stub := &stubAdminUseCase{}
	r := adminTestRouter(stub)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPut, "/admin/users/force-logout",
		jsonBody(t, IDsRequest{IDs: []string{"id-1", "id-2"}}))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "actor-1", stub.lastActor.ID)
	assert.Equal(t, []string{"id-1", "id-2"}, stub.lastIDs)

	var resp Response
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, http.StatusOK, resp.Status)
	assert.Equal(t, "Logged out 2 users", resp.Message)
}

func TestForceLogoutEndpointRequiresIDs(t *testing.T) {
	r := adminTestRouter(&stubAdminUseCase{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPut, "/admin/users/force-logout",
		bytes.NewBufferString(`{}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestErrorStatusIsMirroredInEnvelope(t *testing.T) {
	stub := &stubAdminUseCase{err: apperr.ErrAdminCannotDelete}
	r := adminTestRouter(stub)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodDelete, "/admin/users/soft-delete",
		jsonBody(t, IDsRequest{IDs: []string{"id-1"}}))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)

	var resp Response
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, http.StatusForbidden, resp.Status)
	assert.Equal(t, apperr.ErrAdminCannotDelete.Message, resp.Message)
}

func TestListUsersEndpointBindsQuery(t *testing.T) {
	r := adminTestRouter(&stubAdminUseCase{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet,
		"/admin/users?page=2&limit=5&roles=USER&roles=ADMIN&isActive=true&sortBy=email&sortOrder=asc", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "u1")
}

func TestCreateUserEndpointValidatesBody(t *testing.T) {
	r := adminTestRouter(&stubAdminUseCase{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/admin/users",
		jsonBody(t, gin.H{"username": "ab", "email": "not-an-email", "password": "short"}))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}
