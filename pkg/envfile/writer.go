package envfile

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"
)

// backupTimestampFormat matches the suffix the installer has always
// used: <path>.backup.YYYYMMDD_HHMMSS.
const backupTimestampFormat = "20060102_150405"

// WriteResult reports what the writer did.
type WriteResult struct {
	Path       string
	BackupPath string // empty when there was nothing to back up
	// PermWarning is non-nil when the document was written but its
	// permissions could not be restricted; the secrets inside may be
	// readable by other users.
	PermWarning error
}

// Write serializes the document to path. An existing non-empty file at
// path is copied to a timestamped backup first; if that copy fails the
// write does not happen. The document is written to a temporary file in
// the same directory and renamed into place.
func Write(doc *Document, path string) (*WriteResult, error) {
	res := &WriteResult{Path: path}

	if info, err := os.Stat(path); err == nil && info.Size() > 0 {
		backupPath, err := backupCopy(path)
		if err != nil {
			return nil, fmt.Errorf("backing up existing %s: %w", path, err)
		}
		res.BackupPath = backupPath
	}

	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, filepath.Base(path)+".tmp-*")
	if err != nil {
		return nil, fmt.Errorf("creating temp file in %s: %w", dir, err)
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName)

	if _, err := io.WriteString(tmp, doc.String()); err != nil {
		tmp.Close()
		return nil, fmt.Errorf("writing %s: %w", tmpName, err)
	}
	if err := tmp.Close(); err != nil {
		return nil, fmt.Errorf("closing %s: %w", tmpName, err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		return nil, fmt.Errorf("replacing %s: %w", path, err)
	}

	// The document holds plaintext secrets. A chmod failure is reported
	// as a warning, not an error: the file exists and is usable.
	if err := os.Chmod(path, 0600); err != nil {
		res.PermWarning = fmt.Errorf("restricting permissions on %s: %w", path, err)
	}
	return res, nil
}

// backupCopy copies path to a timestamped sibling and returns the
// backup path. When two renders land inside the same clock second the
// suffix is bumped forward until it is unique.
func backupCopy(path string) (string, error) {
	ts := time.Now()
	backupPath := fmt.Sprintf("%s.backup.%s", path, ts.Format(backupTimestampFormat))
	for {
		if _, err := os.Stat(backupPath); os.IsNotExist(err) {
			break
		}
		ts = ts.Add(time.Second)
		backupPath = fmt.Sprintf("%s.backup.%s", path, ts.Format(backupTimestampFormat))
	}

	src, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer src.Close()

	dst, err := os.OpenFile(backupPath, os.O_CREATE|os.O_EXCL|os.O_WRONLY, 0600)
	if err != nil {
		return "", err
	}
	if _, err := io.Copy(dst, src); err != nil {
		dst.Close()
		os.Remove(backupPath)
		return "", err
	}
	if err := dst.Close(); err != nil {
		os.Remove(backupPath)
		return "", err
	}
	return backupPath, nil
}
