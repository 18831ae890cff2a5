package storage

import (
	"context"
	"fmt"
	"os"
	"time"

	"google.golang.org/api/drive/v3"
	"google.golang.org/api/option"

	"github.com/hendrawan/sitevault/internal/config"
	"github.com/hendrawan/sitevault/internal/domain"
)

// GDriveStorage targets a Google Drive folder, authenticated with a
// service-account credentials file.
type GDriveStorage struct {
	service  *drive.Service
	folderID string
}

func NewGDrive(ctx context.Context, cfg *config.GDriveConfig) (*GDriveStorage, error) {
	service, err := drive.NewService(ctx, option.WithCredentialsFile(cfg.CredentialsFile))
	if err != nil {
		return nil, fmt.Errorf("%w: create drive service: %v", domain.ErrConnectionFailed, err)
	}

	return &GDriveStorage{
		service:  service,
		folderID: cfg.FolderID,
	}, nil
}

func (g *GDriveStorage) Upload(ctx context.Context, localPath string, remoteName string) error {
	file, err := os.Open(localPath)
	if err != nil {
		return fmt.Errorf("%w: open %s: %v", domain.ErrTransferFailed, localPath, err)
	}
	defer file.Close()

	metadata := &drive.File{
		Name:    remoteName,
		Parents: []string{g.folderID},
	}

	_, err = g.service.Files.Create(metadata).
		Media(file).
		Context(ctx).
		Do()
	if err != nil {
		return fmt.Errorf("%w: upload %s: %v", domain.ErrTransferFailed, remoteName, err)
	}
	return nil
}

func (g *GDriveStorage) List(ctx context.Context) ([]domain.RemoteFile, error) {
	query := fmt.Sprintf("'%s' in parents and trashed=false", g.folderID)

	fileList, err := g.service.Files.List().
		Q(query).
		Fields("files(id, name, modifiedTime)").
		Context(ctx).
		Do()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrListingFailed, err)
	}

	var files []domain.RemoteFile
	for _, file := range fileList.Files {
		modTime, err := time.Parse(time.RFC3339, file.ModifiedTime)
		if err != nil {
			continue
		}
		files = append(files, domain.RemoteFile{Name: file.Name, ModTime: modTime})
	}
	return files, nil
}

func (g *GDriveStorage) Delete(ctx context.Context, remoteName string) error {
	query := fmt.Sprintf("'%s' in parents and name='%s' and trashed=false", g.folderID, remoteName)

	fileList, err := g.service.Files.List().
		Q(query).
		Fields("files(id)").
		Context(ctx).
		Do()
	if err != nil {
		return fmt.Errorf("%w: find %s: %v", domain.ErrRemoteDeleteFailed, remoteName, err)
	}
	if len(fileList.Files) == 0 {
		return fmt.Errorf("%w: file not found: %s", domain.ErrRemoteDeleteFailed, remoteName)
	}

	if err := g.service.Files.Delete(fileList.Files[0].Id).Context(ctx).Do(); err != nil {
		return fmt.Errorf("%w: %s: %v", domain.ErrRemoteDeleteFailed, remoteName, err)
	}
	return nil
}

func (g *GDriveStorage) Close() error {
	return nil
}
