package backup

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/2getpro/installer/pkg/log"
)

func newTestManager(t *testing.T) *Manager {
	t.Helper()
	m, err := NewManager(t.TempDir(), log.NewLogger(log.WithLevel(log.ErrorLevel)))
	require.NoError(t, err)
	return m
}

func writeSource(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))
	return path
}

func TestSnapshotAndList(t *testing.T) {
	m := newTestManager(t)
	src := writeSource(t, "BOT_TOKEN=1:a\n")

	meta, err := m.Snapshot(src)
	require.NoError(t, err)
	assert.NotEmpty(t, meta.ID)
	assert.Equal(t, int64(14), meta.SizeBytes)

	copied, err := os.ReadFile(m.Path(*meta))
	require.NoError(t, err)
	assert.Equal(t, "BOT_TOKEN=1:a\n", string(copied))

	metas, err := m.List(Filter{})
	require.NoError(t, err)
	require.Len(t, metas, 1)
	assert.Equal(t, meta.ID, metas[0].ID)
}

func TestSnapshotNamesAreUnique(t *testing.T) {
	m := newTestManager(t)
	src := writeSource(t, "A=1\n")

	first, err := m.Snapshot(src)
	require.NoError(t, err)
	second, err := m.Snapshot(src)
	require.NoError(t, err)

	assert.NotEqual(t, first.File, second.File)
}

func TestDelete(t *testing.T) {
	m := newTestManager(t)
	src := writeSource(t, "A=1\n")

	meta, err := m.Snapshot(src)
	require.NoError(t, err)
	require.NoError(t, m.Delete(*meta))

	metas, err := m.List(Filter{})
	require.NoError(t, err)
	assert.Empty(t, metas)

	_, statErr := os.Stat(m.Path(*meta))
	assert.True(t, os.IsNotExist(statErr))
}

func TestListFilterBySource(t *testing.T) {
	m := newTestManager(t)
	srcA := writeSource(t, "A=1\n")
	srcB := writeSource(t, "B=2\n")

	_, err := m.Snapshot(srcA)
	require.NoError(t, err)
	_, err = m.Snapshot(srcB)
	require.NoError(t, err)

	all, err := m.List(Filter{})
	require.NoError(t, err)
	require.Len(t, all, 2)

	onlyA, err := m.List(Filter{Source: srcA})
	require.NoError(t, err)
	require.Len(t, onlyA, 1)
	assert.Equal(t, srcA, onlyA[0].Source)
}

func TestFilterMaxAge(t *testing.T) {
	now := time.Now()
	old := Meta{CreatedAt: now.Add(-48 * time.Hour)}
	young := Meta{CreatedAt: now.Add(-time.Hour)}

	f := Filter{MaxAge: 24 * time.Hour}
	assert.False(t, f.match(old, now))
	assert.True(t, f.match(young, now))

	assert.True(t, Filter{}.match(old, now), "zero filter matches everything")
}

func TestStats(t *testing.T) {
	m := newTestManager(t)
	src := writeSource(t, "A=1\n")

	_, err := m.Snapshot(src)
	require.NoError(t, err)
	_, err = m.Snapshot(src)
	require.NoError(t, err)

	st, err := m.Stats()
	require.NoError(t, err)
	assert.Equal(t, 2, st.Count)
	assert.Equal(t, int64(8), st.TotalBytes)
	assert.False(t, st.Newest.Before(st.Oldest))
}

func TestFind(t *testing.T) {
	m := newTestManager(t)
	src := writeSource(t, "A=1\n")

	meta, err := m.Snapshot(src)
	require.NoError(t, err)

	found, err := m.Find(meta.ID)
	require.NoError(t, err)
	assert.Equal(t, meta.File, found.File)

	found, err = m.Find(meta.ID[:8])
	require.NoError(t, err)
	assert.Equal(t, meta.ID, found.ID)

	_, err = m.Find("not-a-snapshot")
	assert.Error(t, err)
}

func TestRestore(t *testing.T) {
	m := newTestManager(t)
	src := writeSource(t, "BOT_TOKEN=1:a\n")

	meta, err := m.Snapshot(src)
	require.NoError(t, err)

	// Source drifts after the snapshot was taken.
	require.NoError(t, os.WriteFile(src, []byte("BOT_TOKEN=broken\n"), 0600))

	require.NoError(t, m.Restore(*meta, ""))

	content, err := os.ReadFile(src)
	require.NoError(t, err)
	assert.Equal(t, "BOT_TOKEN=1:a\n", string(content))
}

func TestRestoreToExplicitTarget(t *testing.T) {
	m := newTestManager(t)
	src := writeSource(t, "A=1\n")

	meta, err := m.Snapshot(src)
	require.NoError(t, err)

	target := filepath.Join(t.TempDir(), "restored.env")
	require.NoError(t, m.Restore(*meta, target))

	content, err := os.ReadFile(target)
	require.NoError(t, err)
	assert.Equal(t, "A=1\n", string(content))
}

func TestRestoreRejectsCorruptSnapshot(t *testing.T) {
	m := newTestManager(t)
	src := writeSource(t, "A=1\n")

	meta, err := m.Snapshot(src)
	require.NoError(t, err)

	// The stored copy no longer matches its recorded size.
	require.NoError(t, os.WriteFile(m.Path(*meta), []byte("A=1\nEXTRA=2\n"), 0600))

	err = m.Restore(*meta, "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "verification")

	content, err := os.ReadFile(src)
	require.NoError(t, err)
	assert.Equal(t, "A=1\n", string(content), "a failed restore must not touch the target")
}

func TestRetentionKeepLast(t *testing.T) {
	m := newTestManager(t)
	src := writeSource(t, "A=1\n")

	var metas []*Meta
	for i := 0; i < 5; i++ {
		meta, err := m.Snapshot(src)
		require.NoError(t, err)
		metas = append(metas, meta)
	}

	policy := Policy{KeepLast: 2}
	deleted, err := policy.Apply(m)
	require.NoError(t, err)
	assert.Equal(t, 3, deleted)

	left, err := m.List(Filter{})
	require.NoError(t, err)
	require.Len(t, left, 2)
	// Newest two survive
	assert.Equal(t, metas[4].ID, left[0].ID)
	assert.Equal(t, metas[3].ID, left[1].ID)
}

func TestRetentionMaxAgeSparesRecentSnapshots(t *testing.T) {
	m := newTestManager(t)
	src := writeSource(t, "A=1\n")

	for i := 0; i < 3; i++ {
		_, err := m.Snapshot(src)
		require.NoError(t, err)
	}

	// Young snapshots beyond KeepLast survive an age-based policy.
	policy := Policy{KeepLast: 1, MaxAge: 24 * time.Hour}
	deleted, err := policy.Apply(m)
	require.NoError(t, err)
	assert.Zero(t, deleted)
}
