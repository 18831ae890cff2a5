package domain

import "context"

// RemoteStorage is one session against the remote backup directory. The
// session must be closed on every exit path regardless of transfer outcome.
type RemoteStorage interface {
	Upload(ctx context.Context, localPath string, remoteName string) error
	List(ctx context.Context) ([]RemoteFile, error)
	Delete(ctx context.Context, remoteName string) error
	Close() error
}
