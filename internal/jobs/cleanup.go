package jobs

import (
	"context"
	"time"

	"gamehub/internal/repo/persistent"
	"gamehub/pkg/logger"
)

// Cleanup permanently removes accounts that have sat in the trash beyond the
// retention window, cascading over their game data the same way an explicit
// hard delete does.
type Cleanup struct {
	users     persistent.UserRepository
	interval  time.Duration
	retention time.Duration
	log       *logger.Logger
}

func NewCleanup(users persistent.UserRepository, interval, retention time.Duration, log *logger.Logger) *Cleanup {
	return &Cleanup{users: users, interval: interval, retention: retention, log: log}
}

// Run blocks until ctx is cancelled. One sweep is executed immediately so a
// restart does not postpone overdue purges by a full interval.
func (j *Cleanup) Run(ctx context.Context) {
	j.sweep()

	ticker := time.NewTicker(j.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			j.log.Info("[cleanup] stopped")
			return
		case <-ticker.C:
			j.sweep()
		}
	}
}

func (j *Cleanup) sweep() {
	cutoff := time.Now().Add(-j.retention)

	expired, err := j.users.ListDeletedBefore(cutoff)
	if err != nil {
		j.log.Error("[cleanup] listing expired accounts failed: %v", err)
		return
	}
	if len(expired) == 0 {
		return
	}

	purged := 0
	for _, user := range expired {
		if err := j.users.HardDelete(user.ID); err != nil {
			j.log.Error("[cleanup] purge of %s failed: %v", user.ID, err)
			continue
		}
		purged++
	}
	j.log.Info("[cleanup] purged %d of %d expired accounts", purged, len(expired))
}
