package jobs

import (
	"context"
	"sync"
	"testing"
	"time"

	"gamehub/internal/entity"
	"gamehub/internal/repo/persistent"
	"gamehub/pkg/logger"

	"github.com/stretchr/testify/assert"
)

type stubUserRepo struct {
	persistent.UserRepository

	mu      sync.Mutex
	expired []*entity.User
	deleted []string
}

func (s *stubUserRepo) ListDeletedBefore(cutoff time.Time) ([]*entity.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []*entity.User
	for _, user := range s.expired {
		if user.DeletedAt != nil && user.DeletedAt.Before(cutoff) {
			out = append(out, user)
		}
	}
	return out, nil
}

func (s *stubUserRepo) HardDelete(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.deleted = append(s.deleted, id)
	return nil
}

func TestSweepPurgesOnlyExpiredTrash(t *testing.T) {
	old := time.Now().Add(-8 * 24 * time.Hour)
	recent := time.Now().Add(-time.Hour)
	repo := &stubUserRepo{expired: []*entity.User{
		{ID: "old-user", DeletedAt: &old},
		{ID: "recent-user", DeletedAt: &recent},
	}}

	job := NewCleanup(repo, time.Hour, 7*24*time.Hour, logger.New())
	job.sweep()

	assert.Equal(t, []string{"old-user"}, repo.deleted)
}

func TestRunStopsOnContextCancel(t *testing.T) {
	repo := &stubUserRepo{}
	job := NewCleanup(repo, 10*time.Millisecond, time.Hour, logger.New())

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	done := make(chan struct{})
	go func() {
		job.Run(ctx)
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("cleanup did not stop after cancellation")
	}
}
