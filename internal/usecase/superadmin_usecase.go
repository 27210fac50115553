package usecase

import (
	"context"
	"fmt"

	"gamehub/internal/apperr"
	"gamehub/internal/entity"
	"gamehub/internal/repo/persistent"
	"gamehub/pkg/cache"
	"gamehub/pkg/jwt"
	"gamehub/pkg/logger"

	"github.com/google/uuid"
)

type SuperAdminUseCase interface {
	ForceLogoutAll(actor entity.Actor) (string, error)
	ForceLogout(actor entity.Actor, ids []string) (string, error)
	SoftDelete(actor entity.Actor, ids []string) (string, error)
	HardDelete(actor entity.Actor, ids []string) (string, error)
	Restore(ids []string) (string, error)
	Impersonate(actor entity.Actor, targetID string) (*entity.User, string, error)
}

type superAdminUseCase struct {
	users    persistent.UserRepository
	audit    persistent.ImpersonationLogRepository
	tokens   *jwt.Service
	versions *cache.TokenVersions
	life     lifecycle
	log      *logger.Logger
}

func NewSuperAdminUseCase(
	users persistent.UserRepository,
	audit persistent.ImpersonationLogRepository,
	tokens *jwt.Service,
	versions *cache.TokenVersions,
	log *logger.Logger,
) SuperAdminUseCase {
	return &superAdminUseCase{
		users:    users,
		audit:    audit,
		tokens:   tokens,
		versions: versions,
		life:     lifecycle{users: users, versions: versions, log: log},
		log:      log,
	}
}

func (uc *superAdminUseCase) ForceLogoutAll(actor entity.Actor) (string, error) {
	count, err := uc.users.IncrementTokenVersionAll(actor.ID)
	if err != nil {
		uc.log.Error("[superadmin] force logout all failed: %v", err)
		return "", apperr.ErrInternal
	}
	uc.versions.InvalidateAll(context.Background())

	uc.log.Info("[superadmin] %s forced logout of all users (%d affected)", actor.ID, count)
	return fmt.Sprintf("Logged out %d users", count), nil
}

func (uc *superAdminUseCase) ForceLogout(actor entity.Actor, ids []string) (string, error) {
	msg, appErr := uc.life.forceLogoutBatch(actor, ids, false)
	if appErr != nil {
		return "", appErr
	}
	return msg, nil
}

func (uc *superAdminUseCase) SoftDelete(actor entity.Actor, ids []string) (string, error) {
	msg, appErr := uc.life.softDeleteBatch(actor, ids, false)
	if appErr != nil {
		return "", appErr
	}
	return msg, nil
}

func (uc *superAdminUseCase) HardDelete(actor entity.Actor, ids []string) (string, error) {
	msg, appErr := uc.life.hardDeleteBatch(actor, ids)
	if appErr != nil {
		return "", appErr
	}
	return msg, nil
}

func (uc *superAdminUseCase) Restore(ids []string) (string, error) {
	msg, appErr := uc.life.restoreBatch(ids, false)
	if appErr != nil {
		return "", appErr
	}
	return msg, nil
}

// Impersonate issues a credential carrying the target's identity plus the
// actor's id for traceability, and records the event in the audit log before
// handing the token out.
func (uc *superAdminUseCase) Impersonate(actor entity.Actor, targetID string) (*entity.User, string, error) {
	// Route guard already checked the role; re-check so the rule does not
	// depend on wiring alone.
	if !entity.HasSuperAdmin(actor.Roles) {
		return nil, "", apperr.ErrForbidden
	}
	if _, err := uuid.Parse(targetID); err != nil {
		return nil, "", apperr.ErrInvalidID
	}
	if targetID == actor.ID {
		return nil, "", apperr.ErrCannotActOnSelf
	}

	target, err := uc.users.GetByID(targetID)
	if err != nil {
		if isNotFound(err) {
			return nil, "", apperr.ErrUserNotFound
		}
		uc.log.Error("[superadmin] impersonation lookup failed for %s: %v", targetID, err)
		return nil, "", apperr.ErrInternal
	}

	if err := uc.audit.Create(actor.ID, target.ID); err != nil {
		uc.log.Error("[superadmin] impersonation audit write failed: %v", err)
		return nil, "", apperr.ErrInternal
	}

	token, err := uc.tokens.GenerateImpersonationToken(
		target.ID, entity.RoleNames(target.Roles), target.TokenVersion, actor.ID)
	if err != nil {
		uc.log.Error("[superadmin] impersonation token failed: %v", err)
		return nil, "", apperr.ErrInternal
	}

	uc.log.Warn("[superadmin] %s now impersonating %s", actor.ID, target.Username)
	return target, token, nil
}
