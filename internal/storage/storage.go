// Package storage isolates file side effects behind a small interface so
// services can be exercised against an in-memory fake.
package storage

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
)

// Store persists uploaded files by name.
type Store interface {
	// Save writes the reader's content under name and returns the byte count.
	Save(name string, r io.Reader) (int64, error)
	// Remove deletes the named file. Removing a missing file is an error.
	Remove(name string) error
	// Exists reports whether the named file is present.
	Exists(name string) bool
}

// Disk stores files in a single directory on the local filesystem.
type Disk struct {
	dir string
}

// NewDisk creates the directory if needed and returns a disk-backed store.
func NewDisk(dir string) (*Disk, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create upload dir: %w", err)
	}
	return &Disk{dir: dir}, nil
}

// Save writes the content to dir/name.
func (d *Disk) Save(name string, r io.Reader) (int64, error) {
	dst, err := os.Create(filepath.Join(d.dir, name))
	if err != nil {
		return 0, fmt.Errorf("create file: %w", err)
	}
	defer dst.Close()

	n, err := io.Copy(dst, r)
	if err != nil {
		return n, fmt.Errorf("write file: %w", err)
	}
	return n, nil
}

// Remove deletes dir/name.
func (d *Disk) Remove(name string) error {
	return os.Remove(filepath.Join(d.dir, name))
}

// Exists reports whether dir/name is present.
func (d *Disk) Exists(name string) bool {
	_, err := os.Stat(filepath.Join(d.dir, name))
	return err == nil
}

// GenerateFilename builds a collision-resistant stored name of the form
// <field>-<timestamp>-<random><ext>. The original filename contributes only
// its extension.
func GenerateFilename(field, original string) string {
	ext := filepath.Ext(original)
	return fmt.Sprintf("%s-%d-%s%s", field, time.Now().UnixMilli(), uuid.NewString(), ext)
}
