package storage

import (
	"context"
	"fmt"
	"net"
	"os"
	"strconv"
	"time"

	"github.com/jlaffaye/ftp"

	"github.com/hendrawan/sitevault/internal/config"
	"github.com/hendrawan/sitevault/internal/domain"
)

const ftpDialTimeout = 30 * time.Second

// FTPStorage is one authenticated FTP session, positioned in the configured
// remote backup directory.
type FTPStorage struct {
	conn *ftp.ServerConn
}

// DialFTP connects, authenticates and changes into the remote directory. Any
// failure along the way is a connection failure; a half-open session is closed
// before returning.
func DialFTP(ctx context.Context, cfg *config.FTPConfig) (*FTPStorage, error) {
	addr := net.JoinHostPort(cfg.Host, strconv.Itoa(cfg.Port))

	conn, err := ftp.Dial(addr, ftp.DialWithContext(ctx), ftp.DialWithTimeout(ftpDialTimeout))
	if err != nil {
		return nil, fmt.Errorf("%w: dial %s: %v", domain.ErrConnectionFailed, addr, err)
	}

	if err := conn.Login(cfg.User, cfg.Password); err != nil {
		conn.Quit()
		return nil, fmt.Errorf("%w: login as %s: %v", domain.ErrConnectionFailed, cfg.User, err)
	}

	if err := conn.ChangeDir(cfg.Dir); err != nil {
		conn.Quit()
		return nil, fmt.Errorf("%w: change dir %s: %v", domain.ErrConnectionFailed, cfg.Dir, err)
	}

	return &FTPStorage{conn: conn}, nil
}

func (f *FTPStorage) Upload(ctx context.Context, localPath string, remoteName string) error {
	file, err := os.Open(localPath)
	if err != nil {
		return fmt.Errorf("%w: open %s: %v", domain.ErrTransferFailed, localPath, err)
	}
	defer file.Close()

	if err := f.conn.Stor(remoteName, file); err != nil {
		return fmt.Errorf("%w: store %s: %v", domain.ErrTransferFailed, remoteName, err)
	}
	return nil
}

func (f *FTPStorage) List(ctx context.Context) ([]domain.RemoteFile, error) {
	entries, err := f.conn.List(".")
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrListingFailed, err)
	}

	var files []domain.RemoteFile
	for _, entry := range entries {
		if entry.Type != ftp.EntryTypeFile {
			continue
		}
		files = append(files, domain.RemoteFile{Name: entry.Name, ModTime: entry.Time})
	}
	return files, nil
}

func (f *FTPStorage) Delete(ctx context.Context, remoteName string) error {
	if err := f.conn.Delete(remoteName); err != nil {
		return fmt.Errorf("%w: %s: %v", domain.ErrRemoteDeleteFailed, remoteName, err)
	}
	return nil
}

func (f *FTPStorage) Close() error {
	return f.conn.Quit()
}
