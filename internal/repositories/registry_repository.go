package repositories

import (
	"context"

	"github.com/ai-ml-platform/featstore/internal/entities"
)

// RegistryChangedChannel is the PostgreSQL NOTIFY channel the postgres
// backend signals after committing a registry change. The payload is the
// project name. Cache layers listen on it to drop stale snapshots.
const RegistryChangedChannel = "registry_changed"

// RegistryRepository defines the interface for registry persistence.
type RegistryRepository interface {
	// GetRegistry loads every registered object for a project. A project
	// with nothing registered yields an empty registry, not an error.
	GetRegistry(ctx context.Context, project string) (*entities.Registry, error)

	// ApplyObjects upserts the given objects for a project and stamps the
	// registry with the given version, all in a single transaction.
	ApplyObjects(ctx context.Context, project string, version string, objs []entities.Object) error

	// DeleteRegistry removes every registered object and the version
	// metadata for a project. Deleting an empty registry is not an error.
	DeleteRegistry(ctx context.Context, project string) error
}
