package usecase

import (
	"strings"
	"time"

	"gamehub/internal/apperr"
	"gamehub/internal/entity"
	"gamehub/internal/repo/persistent"
	"gamehub/pkg/cache"
	"gamehub/pkg/logger"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

type ListUsersInput struct {
	Page      int
	PageSize  int
	Search    string
	Roles     []string
	IsActive  *bool
	SortBy    string
	SortOrder string
	StartDate string
	EndDate   string
}

type CreateUserInput struct {
	Username string
	Email    string
	Password string
	Roles    []string
	Image    *entity.Image
}

type UpdateUserInput struct {
	Username string
	Email    string
}

type UserPage struct {
	Users      []*entity.User
	Total      int64
	Page       int
	PageSize   int
	TotalPages int
}

type AdminUseCase interface {
	ListUsers(input ListUsersInput) (*UserPage, error)
	ForceLogout(actor entity.Actor, ids []string) (string, error)
	SoftDelete(actor entity.Actor, ids []string) (string, error)
	Restore(ids []string) (string, error)
	CreateUser(input CreateUserInput) (*entity.User, error)
	UpdateUser(id string, input UpdateUserInput) (*entity.User, error)
}

type adminUseCase struct {
	users  persistent.UserRepository
	images persistent.ImageRepository
	life   lifecycle
	log    *logger.Logger
}

func NewAdminUseCase(
	users persistent.UserRepository,
	images persistent.ImageRepository,
	versions *cache.TokenVersions,
	log *logger.Logger,
) AdminUseCase {
	return &adminUseCase{
		users:  users,
		images: images,
		life:   lifecycle{users: users, versions: versions, log: log},
		log:    log,
	}
}

func (uc *adminUseCase) ListUsers(input ListUsersInput) (*UserPage, error) {
	if bad := entity.InvalidRoleNames(input.Roles); len(bad) > 0 {
		return nil, apperr.Invalid("invalid roles: %s", strings.Join(bad, ", "))
	}

	start, err := parseDate(input.StartDate)
	if err != nil {
		return nil, apperr.Invalid("invalid startDate: %s", input.StartDate)
	}
	end, err := parseDate(input.EndDate)
	if err != nil {
		return nil, apperr.Invalid("invalid endDate: %s", input.EndDate)
	}
	if start != nil && end != nil && start.After(*end) {
		return nil, apperr.Invalid("startDate must not be after endDate")
	}
	if end != nil && len(input.EndDate) == len("2006-01-02") {
		// Date-only bound is inclusive of the whole day.
		bounded := end.Add(24*time.Hour - time.Nanosecond)
		end = &bounded
	}

	page := input.Page
	if page < 1 {
		page = 1
	}
	pageSize := input.PageSize
	if pageSize < 1 || pageSize > 100 {
		pageSize = 10
	}

	users, total, err := uc.users.List(persistent.ListParams{
		Page:           page,
		PageSize:       pageSize,
		Search:         input.Search,
		Roles:          input.Roles,
		IsActive:       input.IsActive,
		SortBy:         input.SortBy,
		SortOrder:      input.SortOrder,
		CreatedAtStart: start,
		CreatedAtEnd:   end,
	})
	if err != nil {
		uc.log.Error("[admin] user listing failed: %v", err)
		return nil, apperr.ErrInternal
	}
	if len(users) == 0 {
		return nil, apperr.ErrUserNotFound
	}

	totalPages := int((total + int64(pageSize) - 1) / int64(pageSize))
	return &UserPage{
		Users:      users,
		Total:      total,
		Page:       page,
		PageSize:   pageSize,
		TotalPages: totalPages,
	}, nil
}

func (uc *adminUseCase) ForceLogout(actor entity.Actor, ids []string) (string, error) {
	msg, appErr := uc.life.forceLogoutBatch(actor, ids, true)
	if appErr != nil {
		return "", appErr
	}
	return msg, nil
}

func (uc *adminUseCase) SoftDelete(actor entity.Actor, ids []string) (string, error) {
	msg, appErr := uc.life.softDeleteBatch(actor, ids, true)
	if appErr != nil {
		return "", appErr
	}
	return msg, nil
}

func (uc *adminUseCase) Restore(ids []string) (string, error) {
	msg, appErr := uc.life.restoreBatch(ids, true)
	if appErr != nil {
		return "", appErr
	}
	return msg, nil
}

func (uc *adminUseCase) CreateUser(input CreateUserInput) (*entity.User, error) {
	if bad := entity.InvalidRoleNames(input.Roles); len(bad) > 0 {
		return nil, apperr.Invalid("invalid roles: %s", strings.Join(bad, ", "))
	}
	roles := entity.RolesFromNames(input.Roles)
	if len(roles) == 0 {
		roles = []entity.Role{entity.RoleUser}
	}

	if _, err := uc.users.GetActiveByEmail(input.Email); err == nil {
		return nil, apperr.ErrEmailExists
	} else if !isNotFound(err) {
		uc.log.Error("[admin] email lookup failed: %v", err)
		return nil, apperr.ErrInternal
	}
	taken, err := uc.users.UsernameTaken(input.Username)
	if err != nil {
		uc.log.Error("[admin] username lookup failed: %v", err)
		return nil, apperr.ErrInternal
	}
	if taken {
		return nil, apperr.ErrUsernameExists
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		uc.log.Error("[admin] password hash failed: %v", err)
		return nil, apperr.ErrInternal
	}

	user := &entity.User{
		Username: input.Username,
		Email:    input.Email,
		Password: string(hashed),
		Provider: entity.ProviderLocal,
		Roles:    roles,
		IsActive: true,
	}

	if input.Image != nil {
		if err := uc.images.Create(input.Image); err != nil {
			uc.log.Error("[admin] image create failed: %v", err)
			return nil, apperr.ErrInternal
		}
		user.ImageID = input.Image.ID
		user.Image = input.Image
	}

	if err := uc.users.Create(user); err != nil {
		uc.log.Error("[admin] create user failed: %v", err)
		return nil, apperr.ErrInternal
	}

	uc.log.Info("[admin] created user %s", user.Username)
	return user, nil
}

func (uc *adminUseCase) UpdateUser(id string, input UpdateUserInput) (*entity.User, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, apperr.ErrInvalidID
	}

	user, err := uc.users.GetByID(id)
	if err != nil {
		if isNotFound(err) {
			return nil, apperr.ErrUserNotFound
		}
		uc.log.Error("[admin] lookup failed for %s: %v", id, err)
		return nil, apperr.ErrInternal
	}

	if input.Username != "" && input.Username != user.Username {
		taken, err := uc.users.UsernameTaken(input.Username)
		if err != nil {
			uc.log.Error("[admin] username lookup failed: %v", err)
			return nil, apperr.ErrInternal
		}
		if taken {
			return nil, apperr.ErrUsernameExists
		}
		user.Username = input.Username
	}

	if input.Email != "" && input.Email != user.Email {
		if _, err := uc.users.GetActiveByEmail(input.Email); err == nil {
			return nil, apperr.ErrEmailExists
		} else if !isNotFound(err) {
			uc.log.Error("[admin] email lookup failed: %v", err)
			return nil, apperr.ErrInternal
		}
		user.Email = input.Email
	}

	if err := uc.users.UpdateProfile(id, user.Username, user.Email); err != nil {
		uc.log.Error("[admin] profile update failed for %s: %v", id, err)
		return nil, apperr.ErrInternal
	}
	return user, nil
}

// parseDate accepts YYYY-MM-DD or a full RFC 3339 timestamp.
func parseDate(value string) (*time.Time, error) {
	if value == "" {
		return nil, nil
	}
	if t, err := time.Parse("2006-01-02", value); err == nil {
		return &t, nil
	}
	t, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return nil, err
	}
	return &t, nil
}
