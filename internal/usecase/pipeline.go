package usecase

import (
	"context"
	"fmt"

	"github.com/hendrawan/sitevault/internal/domain"
)

// RemoteFactory opens a remote session. The pipeline connects only after the
// local archive exists, so a failed backup never touches the network.
type RemoteFactory func(ctx context.Context) (domain.RemoteStorage, error)

// Pipeline runs one backup generation end to end: local archive, remote
// upload, remote retention sweep. Archive and upload failures are fatal;
// sweep failures are logged and the run still succeeds.
type Pipeline struct {
	backup   *Backup
	uploader *Uploader
	cleanup  *Cleanup
	connect  RemoteFactory
	logger   Logger
}

func NewPipeline(
	backup *Backup,
	uploader *Uploader,
	cleanup *Cleanup,
	connect RemoteFactory,
	logger Logger,
) *Pipeline {
	return &Pipeline{
		backup:   backup,
		uploader: uploader,
		cleanup:  cleanup,
		connect:  connect,
		logger:   logger,
	}
}

func (p *Pipeline) Run(ctx context.Context) (*domain.Archive, error) {
	archive, err := p.backup.Execute(ctx)
	if err != nil {
		return nil, err
	}

	remote, err := p.connect(ctx)
	if err != nil {
		return nil, fmt.Errorf("connect remote: %w", err)
	}
	defer func() {
		if err := remote.Close(); err != nil {
			p.logger.Warnf("Failed to close remote session: %v", err)
		}
	}()

	if err := p.uploader.Execute(ctx, remote, archive); err != nil {
		// Nothing new reached the remote side, so the retention sweep is
		// skipped for this run.
		return nil, err
	}

	if err := p.cleanup.Execute(ctx, remote); err != nil {
		p.logger.Errorf("Remote retention sweep failed: %v", err)
	}

	return archive, nil
}
