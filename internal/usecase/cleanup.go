package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/hendrawan/sitevault/internal/domain"
)

// Cleanup sweeps remote archives older than the retention window. The sweep
// is best-effort: a rejected delete is logged and the remaining files are
// still processed.
type Cleanup struct {
	keepDays int
	logger   Logger
	now      func() time.Time
}

func NewCleanup(keepDays int, logger Logger) *Cleanup {
	return &Cleanup{
		keepDays: keepDays,
		logger:   logger,
		now:      time.Now,
	}
}

func (uc *Cleanup) Execute(ctx context.Context, remote domain.RemoteStorage) error {
	if uc.keepDays == 0 {
		uc.logger.Infof("Remote retention disabled (keep_days = 0), skipping sweep")
		return nil
	}

	uc.logger.Infof("Sweeping remote archives older than %d day(s)", uc.keepDays)

	files, err := remote.List(ctx)
	if err != nil {
		return fmt.Errorf("list remote archives: %w", err)
	}

	// A file aged exactly keepDays sits on the cutoff and is retained; only
	// files strictly older are deleted.
	cutoff := uc.now().AddDate(0, 0, -uc.keepDays)

	deleted := 0
	for _, file := range files {
		if !domain.IsArchiveName(file.Name) {
			continue
		}
		if !file.ModTime.Before(cutoff) {
			continue
		}

		if err := remote.Delete(ctx, file.Name); err != nil {
			uc.logger.Errorf("Failed to delete remote archive %s: %v", file.Name, err)
			continue
		}
		uc.logger.Infof("Deleted old remote archive: %s", file.Name)
		deleted++
	}

	uc.logger.Infof("Remote retention sweep completed, %d archive(s) deleted", deleted)
	return nil
}
