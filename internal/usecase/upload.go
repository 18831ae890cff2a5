package usecase

import (
	"context"
	"fmt"

	"github.com/hendrawan/sitevault/internal/domain"
)

// Uploader transfers the freshly created archive to the remote directory.
// One attempt, no resume: a failed transfer ends the run.
type Uploader struct {
	logger Logger
}

func NewUploader(logger Logger) *Uploader {
	return &Uploader{logger: logger}
}

func (uc *Uploader) Execute(ctx context.Context, remote domain.RemoteStorage, archive *domain.Archive) error {
	uc.logger.Infof("Uploading %s (%.2f MB)...",
		archive.Filename, float64(archive.Size)/(1024*1024))

	if err := remote.Upload(ctx, archive.Path, archive.Filename); err != nil {
		return fmt.Errorf("upload archive: %w", err)
	}

	uc.logger.Infof("Archive uploaded: %s", archive.Filename)
	return nil
}
