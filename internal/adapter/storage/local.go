package storage

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/hendrawan/sitevault/internal/domain"
)

// LocalStore owns the local backup directory. It keeps zero historical depth:
// every prior generation is pruned before a new archive is written, so at most
// one archive exists locally at any stable point.
type LocalStore struct {
	basePath string
}

func NewLocal(basePath string) (*LocalStore, error) {
	if err := os.MkdirAll(basePath, 0755); err != nil {
		return nil, fmt.Errorf("failed to create backup directory: %w", err)
	}
	return &LocalStore{basePath: basePath}, nil
}

func (l *LocalStore) Path(filename string) string {
	return filepath.Join(l.basePath, filename)
}

// ListArchives returns the archive files currently in the backup directory.
func (l *LocalStore) ListArchives() ([]string, error) {
	entries, err := os.ReadDir(l.basePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read backup directory: %w", err)
	}

	var archives []string
	for _, entry := range entries {
		if !entry.IsDir() && domain.IsArchiveName(entry.Name()) {
			archives = append(archives, entry.Name())
		}
	}
	return archives, nil
}

// Prune deletes every archive already present from a prior run. Unrelated
// files in the directory are left alone.
func (l *LocalStore) Prune() error {
	archives, err := l.ListArchives()
	if err != nil {
		return fmt.Errorf("%w: %v", domain.ErrCleanupFailed, err)
	}

	for _, name := range archives {
		if err := os.Remove(filepath.Join(l.basePath, name)); err != nil {
			return fmt.Errorf("%w: remove %s: %v", domain.ErrCleanupFailed, name, err)
		}
	}
	return nil
}
