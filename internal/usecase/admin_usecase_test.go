package usecase

import (
	"testing"

	"gamehub/internal/apperr"
	"gamehub/internal/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListUsersRejectsUnknownRoles(t *testing.T) {
	uc := NewAdminUseCase(newFakeUserRepo(seedUser()), newFakeImageRepo(), nil, testLogger())

	_, err := uc.ListUsers(ListUsersInput{Roles: []string{"USER", "WIZARD", "GOBLIN"}})

	appErr := apperr.From(err)
	assert.Equal(t, 400, appErr.Status)
	assert.Contains(t, appErr.Message, "WIZARD")
	assert.Contains(t, appErr.Message, "GOBLIN")
}

func TestListUsersRejectsBadDateRange(t *testing.T) {
	uc := NewAdminUseCase(newFakeUserRepo(seedUser()), newFakeImageRepo(), nil, testLogger())

	_, err := uc.ListUsers(ListUsersInput{StartDate: "not-a-date"})
	assert.Equal(t, 400, apperr.From(err).Status)

	_, err = uc.ListUsers(ListUsersInput{StartDate: "2026-02-01", EndDate: "2026-01-01"})
	assert.Equal(t, 400, apperr.From(err).Status)
}

func TestListUsersEmptyResultIsNotFound(t *testing.T) {
	uc := NewAdminUseCase(newFakeUserRepo(seedUser()), newFakeImageRepo(), nil, testLogger())

	_, err := uc.ListUsers(ListUsersInput{Roles: []string{"SUPER_ADMIN"}})

	assert.Equal(t, apperr.ErrUserNotFound, err)
}

func TestListUsersReturnsPageMeta(t *testing.T) {
	uc := NewAdminUseCase(newFakeUserRepo(seedUser(), seedUser(), seedUser()), newFakeImageRepo(), nil, testLogger())

	page, err := uc.ListUsers(ListUsersInput{Page: 1, PageSize: 2})

	require.NoError(t, err)
	assert.Equal(t, int64(3), page.Total)
	assert.Equal(t, 2, page.PageSize)
	assert.Equal(t, 2, page.TotalPages)
}

func TestCreateUserValidatesRoles(t *testing.T) {
	uc := NewAdminUseCase(newFakeUserRepo(), newFakeImageRepo(), nil, testLogger())

	_, err := uc.CreateUser(CreateUserInput{
		Username: "p", Email: "p@example.com", Password: "x12345678",
		Roles: []string{"OVERLORD"},
	})

	assert.Equal(t, 400, apperr.From(err).Status)
}

func TestCreateUserDefaultsToUserRole(t *testing.T) {
	repo := newFakeUserRepo()
	uc := NewAdminUseCase(repo, newFakeImageRepo(), nil, testLogger())

	user, err := uc.CreateUser(CreateUserInput{
		Username: "newbie", Email: "newbie@example.com", Password: "x12345678",
	})

	require.NoError(t, err)
	assert.Equal(t, []entity.Role{entity.RoleUser}, user.Roles)
	assert.True(t, user.IsActive)
}

func TestCreateUserWithAdminRoleAndImage(t *testing.T) {
	repo := newFakeUserRepo()
	images := newFakeImageRepo()
	uc := NewAdminUseCase(repo, images, nil, testLogger())

	user, err := uc.CreateUser(CreateUserInput{
		Username: "mod", Email: "mod@example.com", Password: "x12345678",
		Roles: []string{"ADMIN"},
		Image: &entity.Image{Key: "avatars/mod", Name: "mod.png", URL: "http://store.local/avatars/mod"},
	})

	require.NoError(t, err)
	assert.Equal(t, []entity.Role{entity.RoleAdmin}, user.Roles)
	assert.NotEmpty(t, user.ImageID)
}

func TestUpdateUserConflictsAndNotFound(t *testing.T) {
	user := seedUser()
	other := seedUser()
	other.Username = "held"
	other.Email = "held@example.com"
	uc := NewAdminUseCase(newFakeUserRepo(user, other), newFakeImageRepo(), nil, testLogger())

	_, err := uc.UpdateUser("bad-id", UpdateUserInput{Username: "x"})
	assert.Equal(t, apperr.ErrInvalidID, err)

	_, err = uc.UpdateUser(uuid.New().String(), UpdateUserInput{Username: "x"})
	assert.Equal(t, apperr.ErrUserNotFound, err)

	_, err = uc.UpdateUser(user.ID, UpdateUserInput{Username: "held"})
	assert.Equal(t, apperr.ErrUsernameExists, err)

	_, err = uc.UpdateUser(user.ID, UpdateUserInput{Email: "held@example.com"})
	assert.Equal(t, apperr.ErrEmailExists, err)

	updated, err := uc.UpdateUser(user.ID, UpdateUserInput{Username: "renamed", Email: "renamed@example.com"})
	require.NoError(t, err)
	assert.Equal(t, "renamed", updated.Username)
	assert.Equal(t, "renamed@example.com", updated.Email)
}
