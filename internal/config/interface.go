package config

import "context"

// Loader is the interface for a format-specific preference loader.
type Loader interface {
	// Load reads every file named by paths (directories are searched) and
	// merges them in order into one Model.
	Load(ctx context.Context, paths ...string) (*Model, error)
}
