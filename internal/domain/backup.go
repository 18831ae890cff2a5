package domain

import (
	"fmt"
	"strings"
	"time"
)

// Archive is one backup generation on local disk.
type Archive struct {
	Filename  string
	Path      string
	Size      int64
	CreatedAt time.Time
}

// RemoteFile is one entry of a remote directory listing.
type RemoteFile struct {
	Name    string
	ModTime time.Time
}

const (
	archivePrefix = "backup-"
	archiveSuffix = ".zip"
)

// ArchiveFilename returns the deterministic archive name for the given day,
// e.g. backup-2024-01-02.zip.
func ArchiveFilename(t time.Time) string {
	return fmt.Sprintf("%s%s%s", archivePrefix, t.Format("2006-01-02"), archiveSuffix)
}

// IsArchiveName reports whether name looks like an archive produced by this
// tool. Retention sweeps use it to leave unrelated files alone.
func IsArchiveName(name string) bool {
	return strings.HasPrefix(name, archivePrefix) && strings.HasSuffix(name, archiveSuffix)
}
