package usecase

import (
	"sync"

	"gamehub/internal/apperr"

	"github.com/google/uuid"
)

// validateIDs rejects empty lists and anything that is not a well-formed UUID
// before any storage access.
func validateIDs(ids []string) *apperr.Error {
	if len(ids) == 0 {
		return apperr.ErrInvalidID
	}
	for _, id := range ids {
		if _, err := uuid.Parse(id); err != nil {
			return apperr.ErrInvalidID
		}
	}
	return nil
}

// guardSelf rejects the whole batch when the actor targets their own account.
// Destructive and session-killing transitions fail closed before any id is
// touched, never partially.
func guardSelf(actorID string, ids []string) *apperr.Error {
	for _, id := range ids {
		if id == actorID {
			return apperr.ErrCannotActOnSelf
		}
	}
	return nil
}

// forEachID applies op to every id concurrently, waits for all attempts to
// settle, and returns the first failure in input order. Mutations already
// committed for other ids are not rolled back, so a failed batch response
// means "possibly partial", not "nothing happened".
func forEachID(ids []string, op func(id string) *apperr.Error) *apperr.Error {
	outcomes := make([]*apperr.Error, len(ids))

	var wg sync.WaitGroup
	for i, id := range ids {
		wg.Add(1)
		go func(i int, id string) {
			defer wg.Done()
			outcomes[i] = op(id)
		}(i, id)
	}
	wg.Wait()

	for _, outcome := range outcomes {
		if outcome != nil {
			return outcome
		}
	}
	return nil
}
