package usecase

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/hendrawan/sitevault/internal/domain"
)

// Names of the staged entries inside the archive.
const (
	siteEntryDir = "site_data"
	dumpEntry    = "database/database_backup.sql"
)

type LocalStore interface {
	Path(filename string) string
	Prune() error
}

type Logger interface {
	Infof(template string, args ...interface{})
	Warnf(template string, args ...interface{})
	Errorf(template string, args ...interface{})
}

// Backup produces one local archive generation: it prunes prior generations,
// stages a copy of the site tree plus a fresh database dump in a temp
// directory, and zips the staging area into the backup directory.
type Backup struct {
	sitePath string
	local    LocalStore
	dumper   domain.Dumper
	archiver domain.Archiver
	logger   Logger
	now      func() time.Time
}

func NewBackup(
	sitePath string,
	local LocalStore,
	dumper domain.Dumper,
	archiver domain.Archiver,
	logger Logger,
) *Backup {
	return &Backup{
		sitePath: sitePath,
		local:    local,
		dumper:   dumper,
		archiver: archiver,
		logger:   logger,
		now:      time.Now,
	}
}

func (uc *Backup) Execute(ctx context.Context) (*domain.Archive, error) {
	start := uc.now()
	uc.logger.Infof("Starting backup of %s", uc.sitePath)

	// Local retention keeps a single generation: clear out prior archives
	// before writing the new one. A failed prune is reported but does not
	// stop the backup.
	if err := uc.local.Prune(); err != nil {
		uc.logger.Warnf("Failed to prune previous archives: %v", err)
	}

	info, err := os.Stat(uc.sitePath)
	if err != nil || !info.IsDir() {
		return nil, fmt.Errorf("%w: %s", domain.ErrSourceUnavailable, uc.sitePath)
	}

	staging, err := os.MkdirTemp("", "sitevault-staging-*")
	if err != nil {
		return nil, fmt.Errorf("%w: create staging dir: %v", domain.ErrArchiveWriteFailed, err)
	}
	defer os.RemoveAll(staging)

	siteDest := filepath.Join(staging, siteEntryDir)
	if err := os.CopyFS(siteDest, os.DirFS(uc.sitePath)); err != nil {
		return nil, fmt.Errorf("%w: copy site tree: %v", domain.ErrSourceUnavailable, err)
	}
	uc.logger.Infof("Site files copied to staging area")

	dumpPath := filepath.Join(staging, filepath.FromSlash(dumpEntry))
	if err := os.MkdirAll(filepath.Dir(dumpPath), 0755); err != nil {
		return nil, fmt.Errorf("%w: create dump dir: %v", domain.ErrArchiveWriteFailed, err)
	}
	if err := uc.dumper.Dump(ctx, dumpPath); err != nil {
		return nil, fmt.Errorf("database dump: %w", err)
	}
	uc.logger.Infof("Database dump completed")

	filename := domain.ArchiveFilename(start)
	destPath := uc.local.Path(filename)
	if err := uc.archiver.Create(staging, destPath); err != nil {
		return nil, fmt.Errorf("create archive: %w", err)
	}

	archiveInfo, err := os.Stat(destPath)
	if err != nil {
		return nil, fmt.Errorf("%w: stat archive: %v", domain.ErrArchiveWriteFailed, err)
	}

	uc.logger.Infof("Archive created in %s: %s (%.2f MB)",
		time.Since(start).Round(time.Second), filename,
		float64(archiveInfo.Size())/(1024*1024))

	return &domain.Archive{
		Filename:  filename,
		Path:      destPath,
		Size:      archiveInfo.Size(),
		CreatedAt: start,
	}, nil
}
