package domain

// Archiver packs a staged directory tree into a single compressed archive.
type Archiver interface {
	Create(sourceDir, destPath string) error
}
