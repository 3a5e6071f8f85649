// Package api provides interfaces for dependency injection
package api

import (
	"context"

	"github.com/ssargent/catbuffer/pkg/archive"
)

// ArchiveStore is an EntityArchive that owns its resources
type ArchiveStore interface {
	EntityArchive

	// Close releases the underlying database
	Close() error
}

// ArchiveFactory opens archives
type ArchiveFactory interface {
	// OpenArchive opens the archive described by cfg
	OpenArchive(cfg archive.Config) (ArchiveStore, error)
}

// ServerStarter defines the interface for starting the API server
type ServerStarter interface {
	// StartServer serves the API until ctx is cancelled
	StartServer(ctx context.Context, archive EntityArchive, config ServerConfig) error
}

// ServerFactory creates server instances
type ServerFactory interface {
	// CreateServerStarter creates a server starter
	CreateServerStarter() ServerStarter
}
