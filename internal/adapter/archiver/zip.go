package archiver

import (
	"archive/zip"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/hendrawan/sitevault/internal/domain"
)

// ZipArchiver packs a directory tree into a single zip file. Entry names are
// relative to the source directory, so the staged site tree and database dump
// become top-level entries of the archive.
type ZipArchiver struct{}

func NewZip() *ZipArchiver {
	return &ZipArchiver{}
}

func (z *ZipArchiver) Create(sourceDir, destPath string) error {
	destFile, err := os.Create(destPath)
	if err != nil {
		return fmt.Errorf("%w: create %s: %v", domain.ErrArchiveWriteFailed, destPath, err)
	}

	writer := zip.NewWriter(destFile)

	walkErr := filepath.WalkDir(sourceDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}

		rel, err := filepath.Rel(sourceDir, path)
		if err != nil {
			return err
		}

		return z.addFile(writer, path, filepath.ToSlash(rel))
	})

	if walkErr != nil {
		writer.Close()
		destFile.Close()
		os.Remove(destPath)
		return fmt.Errorf("%w: %v", domain.ErrArchiveWriteFailed, walkErr)
	}

	if err := writer.Close(); err != nil {
		destFile.Close()
		os.Remove(destPath)
		return fmt.Errorf("%w: finalize: %v", domain.ErrArchiveWriteFailed, err)
	}
	if err := destFile.Close(); err != nil {
		os.Remove(destPath)
		return fmt.Errorf("%w: close: %v", domain.ErrArchiveWriteFailed, err)
	}

	return nil
}

func (z *ZipArchiver) addFile(writer *zip.Writer, path, name string) error {
	info, err := os.Stat(path)
	if err != nil {
		return err
	}

	header, err := zip.FileInfoHeader(info)
	if err != nil {
		return err
	}
	header.Name = name
	header.Method = zip.Deflate

	entry, err := writer.CreateHeader(header)
	if err != nil {
		return err
	}

	source, err := os.Open(path)
	if err != nil {
		return err
	}
	defer source.Close()

	_, err = io.Copy(entry, source)
	return err
}
