package history

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// FileStore keeps one file per owner in dir, the terminal counterpart of
// browser local storage.
type FileStore struct {
	dir string
}

func NewFileStore(dir string) *FileStore {
	return &FileStore{dir: dir}
}

// path names the owner's file after the hex SHA-256 of the owner: fixed
// length, lower case only and distinct for distinct owners.
func (s *FileStore) path(owner string) string {
	sum := sha256.Sum256([]byte(owner))
	return filepath.Join(s.dir, fmt.Sprintf("%s_%s.json", Key, hex.EncodeToString(sum[:])))
}

func (s *FileStore) Load(ctx context.Context, owner string) (string, bool, error) {
	b, err := os.ReadFile(s.path(owner))
	if errors.Is(err, os.ErrNotExist) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return string(b), true, nil
}

func (s *FileStore) Save(ctx context.Context, owner, value string) error {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return fmt.Errorf("failed to create history directory: %w", err)
	}

	tmp, err := os.CreateTemp(s.dir, "history-*.tmp")
	if err != nil {
		return err
	}
	if _, err := tmp.WriteString(value); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return err
	}
	return os.Rename(tmp.Name(), s.path(owner))
}

func (s *FileStore) Delete(ctx context.Context, owner string) error {
	err := os.Remove(s.path(owner))
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	return err
}
