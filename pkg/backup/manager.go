// Package backup manages snapshots of the rendered environment
// document: timestamped copies with JSON metadata sidecars, a retention
// policy, and optional offsite upload.
package backup

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/2getpro/installer/pkg/log"
)

const timestampFormat = "20060102_150405"

// Meta describes one snapshot.
type Meta struct {
	ID        string    `json:"id"`
	Source    string    `json:"source"`
	File      string    `json:"file"`
	CreatedAt time.Time `json:"created_at"`
	SizeBytes int64     `json:"size_bytes"`
}

// Manager owns a backups directory. Snapshots live directly in the
// directory; their metadata sidecars live under metadata/.
type Manager struct {
	dir    string
	logger log.Logger
}

// NewManager creates (if needed) the backups directory and returns a
// manager over it.
func NewManager(dir string, logger log.Logger) (*Manager, error) {
	if err := os.MkdirAll(filepath.Join(dir, "metadata"), 0700); err != nil {
		return nil, fmt.Errorf("creating backups dir: %w", err)
	}
	return &Manager{dir: dir, logger: logger.WithComponent("backup")}, nil
}

// Dir returns the backups directory.
func (m *Manager) Dir() string { return m.dir }

// Path returns the absolute path of a snapshot file.
func (m *Manager) Path(meta Meta) string {
	return filepath.Join(m.dir, meta.File)
}

// Snapshot copies src into the backups directory under a timestamped
// name and records its metadata.
func (m *Manager) Snapshot(src string) (*Meta, error) {
	info, err := os.Stat(src)
	if err != nil {
		return nil, fmt.Errorf("stat %s: %w", src, err)
	}

	ts := time.Now()
	name := fmt.Sprintf("%s.%s", filepath.Base(src), ts.Format(timestampFormat))
	for {
		if _, err := os.Stat(filepath.Join(m.dir, name)); os.IsNotExist(err) {
			break
		}
		ts = ts.Add(time.Second)
		name = fmt.Sprintf("%s.%s", filepath.Base(src), ts.Format(timestampFormat))
	}

	if err := copyFile(src, filepath.Join(m.dir, name)); err != nil {
		return nil, fmt.Errorf("copying %s: %w", src, err)
	}

	meta := &Meta{
		ID:        uuid.NewString(),
		Source:    src,
		File:      name,
		CreatedAt: ts,
		SizeBytes: info.Size(),
	}
	if err := m.saveMeta(meta); err != nil {
		os.Remove(filepath.Join(m.dir, name))
		return nil, err
	}

	m.logger.Info("snapshot created", log.Str("file", name), log.Str("id", meta.ID))
	return meta, nil
}

// Filter narrows a snapshot listing. The zero value matches everything.
type Filter struct {
	// Source keeps only snapshots taken from this path.
	Source string
	// MaxAge keeps only snapshots younger than this; 0 keeps all.
	MaxAge time.Duration
}

func (f Filter) match(meta Meta, now time.Time) bool {
	if f.Source != "" && meta.Source != f.Source {
		return false
	}
	if f.MaxAge > 0 && meta.CreatedAt.Before(now.Add(-f.MaxAge)) {
		return false
	}
	return true
}

// List returns the snapshots matching the filter, newest first.
func (m *Manager) List(filter Filter) ([]Meta, error) {
	entries, err := os.ReadDir(filepath.Join(m.dir, "metadata"))
	if err != nil {
		return nil, err
	}

	now := time.Now()
	var metas []Meta
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".json") {
			continue
		}
		data, err := os.ReadFile(filepath.Join(m.dir, "metadata", e.Name()))
		if err != nil {
			return nil, err
		}
		var meta Meta
		if err := json.Unmarshal(data, &meta); err != nil {
			m.logger.Warn("skipping unreadable metadata", log.Str("file", e.Name()), log.Err(err))
			continue
		}
		if !filter.match(meta, now) {
			continue
		}
		metas = append(metas, meta)
	}

	sort.Slice(metas, func(i, j int) bool {
		return metas[i].CreatedAt.After(metas[j].CreatedAt)
	})
	return metas, nil
}

// Stats summarizes every stored snapshot.
type Stats struct {
	Count      int
	TotalBytes int64
	Newest     time.Time
	Oldest     time.Time
}

// Stats aggregates count, total size and the age range of the stored
// snapshots.
func (m *Manager) Stats() (Stats, error) {
	metas, err := m.List(Filter{})
	if err != nil {
		return Stats{}, err
	}
	st := Stats{Count: len(metas)}
	for _, meta := range metas {
		st.TotalBytes += meta.SizeBytes
	}
	if len(metas) > 0 {
		st.Newest = metas[0].CreatedAt
		st.Oldest = metas[len(metas)-1].CreatedAt
	}
	return st, nil
}

// Find resolves a snapshot ID or unique ID prefix.
func (m *Manager) Find(id string) (*Meta, error) {
	metas, err := m.List(Filter{})
	if err != nil {
		return nil, err
	}

	var found *Meta
	for i := range metas {
		if metas[i].ID == id {
			return &metas[i], nil
		}
		if strings.HasPrefix(metas[i].ID, id) {
			if found != nil {
				return nil, fmt.Errorf("snapshot ID %q is ambiguous", id)
			}
			found = &metas[i]
		}
	}
	if found == nil {
		return nil, fmt.Errorf("no snapshot with ID %q", id)
	}
	return found, nil
}

// Restore copies a snapshot back to target, or to the snapshot's
// original source when target is empty. The snapshot is verified
// against its recorded size before the copy and the written byte count
// after; the target is replaced atomically.
func (m *Manager) Restore(meta Meta, target string) error {
	snap := m.Path(meta)
	info, err := os.Stat(snap)
	if err != nil {
		return fmt.Errorf("stat snapshot: %w", err)
	}
	if info.Size() != meta.SizeBytes {
		return fmt.Errorf("snapshot %s fails verification: %d bytes on disk, %d recorded",
			meta.File, info.Size(), meta.SizeBytes)
	}

	if target == "" {
		target = meta.Source
	}

	in, err := os.Open(snap)
	if err != nil {
		return err
	}
	defer in.Close()

	tmp, err := os.CreateTemp(filepath.Dir(target), filepath.Base(target)+".restore-*")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName)

	n, err := io.Copy(tmp, in)
	if err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	if n != meta.SizeBytes {
		return fmt.Errorf("restore of %s wrote %d bytes, expected %d", meta.File, n, meta.SizeBytes)
	}
	if err := os.Rename(tmpName, target); err != nil {
		return fmt.Errorf("replacing %s: %w", target, err)
	}

	m.logger.Info("snapshot restored",
		log.Str("file", meta.File),
		log.Str("target", target),
		log.Bool("verified", true))
	return nil
}

// Delete removes a snapshot and its metadata.
func (m *Manager) Delete(meta Meta) error {
	if err := os.Remove(filepath.Join(m.dir, meta.File)); err != nil && !os.IsNotExist(err) {
		return err
	}
	if err := os.Remove(m.metaPath(meta.ID)); err != nil && !os.IsNotExist(err) {
		return err
	}
	m.logger.Info("snapshot deleted", log.Str("file", meta.File), log.Str("id", meta.ID))
	return nil
}

func (m *Manager) metaPath(id string) string {
	return filepath.Join(m.dir, "metadata", id+".json")
}

func (m *Manager) saveMeta(meta *Meta) error {
	data, err := json.MarshalIndent(meta, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(m.metaPath(meta.ID), data, 0600)
}

func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.OpenFile(dst, os.O_CREATE|os.O_EXCL|os.O_WRONLY, 0600)
	if err != nil {
		return err
	}
	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		os.Remove(dst)
		return err
	}
	return out.Close()
}
