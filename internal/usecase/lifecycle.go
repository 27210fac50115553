package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gamehub/internal/apperr"
	"gamehub/internal/entity"
	"gamehub/internal/repo/persistent"
	"gamehub/pkg/cache"
	"gamehub/pkg/logger"

	"gorm.io/gorm"
)

func isNotFound(err error) bool {
	return errors.Is(err, gorm.ErrRecordNotFound)
}

// lifecycle holds the account state machine shared by the admin and super
// admin surfaces. protectAdmins distinguishes the two: plain admins may not
// touch accounts holding ADMIN or SUPER_ADMIN, super admins may.
type lifecycle struct {
	users    persistent.UserRepository
	versions *cache.TokenVersions
	log      *logger.Logger
}

func (l *lifecycle) forceLogoutOne(id string, protectAdmins bool) *apperr.Error {
	user, err := l.users.GetByIDUnscoped(id)
	if err != nil {
		if isNotFound(err) {
			return apperr.ErrUserNotFound
		}
		l.log.Error("[lifecycle] forceLogout lookup failed for %s: %v", id, err)
		return apperr.ErrInternal
	}

	if user.IsDeleted() {
		return apperr.ErrUserDeleted
	}
	if protectAdmins && user.IsProtected() {
		return apperr.ErrAdminCannotLogout
	}

	if err := l.users.IncrementTokenVersion(id); err != nil {
		l.log.Error("[lifecycle] forceLogout update failed for %s: %v", id, err)
		return apperr.ErrInternal
	}
	l.versions.Invalidate(context.Background(), id)

	l.log.Info("[lifecycle] forced logout of %s", user.Username)
	return nil
}

func (l *lifecycle) softDeleteOne(id string, protectAdmins bool) *apperr.Error {
	user, err := l.users.GetByIDUnscoped(id)
	if err != nil {
		if isNotFound(err) {
			return apperr.ErrUserNotFound
		}
		l.log.Error("[lifecycle] softDelete lookup failed for %s: %v", id, err)
		return apperr.ErrInternal
	}

	if user.IsDeleted() {
		return apperr.ErrUserDeleted
	}
	if protectAdmins && user.IsProtected() {
		return apperr.ErrAdminCannotDelete
	}

	now := time.Now()
	if err := l.users.SetDeletedAt(id, &now); err != nil {
		l.log.Error("[lifecycle] softDelete update failed for %s: %v", id, err)
		return apperr.ErrInternal
	}
	l.versions.Invalidate(context.Background(), id)

	l.log.Info("[lifecycle] moved %s to trash", user.Username)
	return nil
}

func (l *lifecycle) restoreOne(id string, protectAdmins bool) *apperr.Error {
	user, err := l.users.GetByIDUnscoped(id)
	if err != nil {
		if isNotFound(err) {
			return apperr.ErrUserNotFound
		}
		l.log.Error("[lifecycle] restore lookup failed for %s: %v", id, err)
		return apperr.ErrInternal
	}

	if !user.IsDeleted() {
		return apperr.ErrUserNotDeleted
	}
	if protectAdmins && user.IsProtected() {
		return apperr.ErrAdminCannotRestore
	}

	if err := l.users.SetDeletedAt(id, nil); err != nil {
		l.log.Error("[lifecycle] restore update failed for %s: %v", id, err)
		return apperr.ErrInternal
	}
	l.versions.Invalidate(context.Background(), id)

	l.log.Info("[lifecycle] restored %s from trash", user.Username)
	return nil
}

func (l *lifecycle) hardDeleteOne(id string) *apperr.Error {
	// Unscoped on purpose: accounts already in the trash are still
	// hard-deletable, the cleanup job relies on the same path.
	user, err := l.users.GetByIDUnscoped(id)
	if err != nil {
		if isNotFound(err) {
			return apperr.ErrUserNotFound
		}
		l.log.Error("[lifecycle] hardDelete lookup failed for %s: %v", id, err)
		return apperr.ErrInternal
	}

	if err := l.users.HardDelete(id); err != nil {
		l.log.Error("[lifecycle] hardDelete cascade failed for %s: %v", id, err)
		return apperr.ErrInternal
	}
	l.versions.Invalidate(context.Background(), id)

	l.log.Info("[lifecycle] permanently deleted %s", user.Username)
	return nil
}

// forceLogoutBatch bumps tokenVersion for every id; session-killing, so the
// actor may never include themself.
func (l *lifecycle) forceLogoutBatch(actor entity.Actor, ids []string, protectAdmins bool) (string, *apperr.Error) {
	if appErr := validateIDs(ids); appErr != nil {
		return "", appErr
	}
	if appErr := guardSelf(actor.ID, ids); appErr != nil {
		return "", appErr
	}

	appErr := forEachID(ids, func(id string) *apperr.Error {
		return l.forceLogoutOne(id, protectAdmins)
	})
	if appErr != nil {
		return "", appErr
	}
	return fmt.Sprintf("Logged out %d users", len(ids)), nil
}

// softDeleteBatch is the composite transition: every target is force-logged-
// out first, and the deletion step never runs unless the whole logout batch
// succeeded. A trashed account can therefore never keep a live session.
func (l *lifecycle) softDeleteBatch(actor entity.Actor, ids []string, protectAdmins bool) (string, *apperr.Error) {
	if _, appErr := l.forceLogoutBatch(actor, ids, protectAdmins); appErr != nil {
		return "", appErr
	}

	appErr := forEachID(ids, func(id string) *apperr.Error {
		return l.softDeleteOne(id, protectAdmins)
	})
	if appErr != nil {
		return "", appErr
	}
	return fmt.Sprintf("Moved %d users to trash", len(ids)), nil
}

func (l *lifecycle) restoreBatch(ids []string, protectAdmins bool) (string, *apperr.Error) {
	if appErr := validateIDs(ids); appErr != nil {
		return "", appErr
	}

	appErr := forEachID(ids, func(id string) *apperr.Error {
		return l.restoreOne(id, protectAdmins)
	})
	if appErr != nil {
		return "", appErr
	}
	return fmt.Sprintf("Restored %d users", len(ids)), nil
}

func (l *lifecycle) hardDeleteBatch(actor entity.Actor, ids []string) (string, *apperr.Error) {
	if appErr := validateIDs(ids); appErr != nil {
		return "", appErr
	}
	if appErr := guardSelf(actor.ID, ids); appErr != nil {
		return "", appErr
	}

	appErr := forEachID(ids, func(id string) *apperr.Error {
		return l.hardDeleteOne(id)
	})
	if appErr != nil {
		return "", appErr
	}
	return fmt.Sprintf("Permanently deleted %d users", len(ids)), nil
}
