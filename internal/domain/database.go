package domain

import "context"

// Dumper produces a database dump file given configured credentials.
type Dumper interface {
	Dump(ctx context.Context, outputPath string) error
}
