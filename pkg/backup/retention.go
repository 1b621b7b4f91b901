package backup

import (
	"time"

	"github.com/2getpro/installer/pkg/log"
)

// Policy decides which snapshots survive a prune.
type Policy struct {
	// KeepLast always preserves the newest N snapshots.
	KeepLast int
	// MaxAge removes snapshots older than this; 0 disables the age
	// rule, so only snapshots beyond KeepLast are removed.
	MaxAge time.Duration
}

// DefaultPolicy keeps the last 7 snapshots and anything younger than
// 30 days.
func DefaultPolicy() Policy {
	return Policy{KeepLast: 7, MaxAge: 30 * 24 * time.Hour}
}

// Apply prunes the manager's snapshots per the policy and returns the
// number deleted.
func (p Policy) Apply(m *Manager) (int, error) {
	metas, err := m.List(Filter{})
	if err != nil {
		return 0, err
	}

	deleted := 0
	cutoff := time.Time{}
	if p.MaxAge > 0 {
		cutoff = time.Now().Add(-p.MaxAge)
	}

	for i, meta := range metas {
		if i < p.KeepLast {
			continue
		}
		// Beyond KeepLast: drop if the age rule is disabled or the
		// snapshot is past the cutoff.
		if p.MaxAge == 0 || meta.CreatedAt.Before(cutoff) {
			if err := m.Delete(meta); err != nil {
				return deleted, err
			}
			deleted++
		}
	}

	if deleted > 0 {
		m.logger.Info("retention applied", log.Int("deleted", deleted))
	}
	return deleted, nil
}
