package domain

import "errors"

// Failure kinds of a backup run. Archive creation and upload failures are
// fatal to the run; cleanup and retention failures are reported and skipped.
var (
	ErrSourceUnavailable  = errors.New("site directory unavailable")
	ErrDumpFailed         = errors.New("database dump failed")
	ErrArchiveWriteFailed = errors.New("archive write failed")
	ErrCleanupFailed      = errors.New("local cleanup failed")
	ErrConnectionFailed   = errors.New("remote connection failed")
	ErrTransferFailed     = errors.New("transfer failed")
	ErrListingFailed      = errors.New("remote listing failed")
	ErrRemoteDeleteFailed = errors.New("remote delete failed")
)
