// Package badgerdb implements registry persistence on an embedded BadgerDB
// database, the default backend for single-repo local registries.
package badgerdb

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/ai-ml-platform/featstore/internal/entities"
	badger "github.com/dgraph-io/badger/v4"
)

// StoreOptions configures the local registry database.
type StoreOptions struct {
	// Path is the database directory. An empty path opens an in-memory
	// database.
	Path string
	// InMemory forces in-memory mode even when Path is set.
	InMemory bool
	// Logger receives BadgerDB's own log output. Nil disables it.
	Logger badger.Logger
}

// BadgerRegistryRepository stores registry objects in BadgerDB under
// project-scoped keys.
type BadgerRegistryRepository struct {
	db *badger.DB
}

// registryMeta is the stored version metadata for one project.
type registryMeta struct {
	Version   string    `json:"version"`
	UpdatedAt time.Time `json:"updated_at"`
}

var objectKinds = []entities.ObjectKind{
	entities.KindEntity,
	entities.KindDataSource,
	entities.KindFeatureView,
	entities.KindFeatureService,
}

// NewBadgerRegistryRepository opens the database and returns a repository
// backed by it. Close must be called when done.
func NewBadgerRegistryRepository(opts StoreOptions) (*BadgerRegistryRepository, error) {
	badgerOpts := badger.DefaultOptions(opts.Path)
	if opts.Path == "" || opts.InMemory {
		badgerOpts = badgerOpts.WithInMemory(true).WithDir("").WithValueDir("")
	}
	badgerOpts = badgerOpts.WithLogger(opts.Logger)

	db, err := badger.Open(badgerOpts)
	if err != nil {
		return nil, fmt.Errorf("failed to open registry database: %w", err)
	}
	return &BadgerRegistryRepository{db: db}, nil
}

// Close releases the underlying database.
func (r *BadgerRegistryRepository) Close() error {
	return r.db.Close()
}

// objectKey builds the storage key for one registry object.
func objectKey(project string, kind entities.ObjectKind, name string) []byte {
	return []byte(project + "/" + string(kind) + "/" + name)
}

// metaKey builds the storage key for a project's version metadata. The
// "_meta" segment cannot collide with an object kind.
func metaKey(project string) []byte {
	return []byte(project + "/_meta")
}

// GetRegistry implements RegistryRepository.
func (r *BadgerRegistryRepository) GetRegistry(ctx context.Context, project string) (*entities.Registry, error) {
	registry := &entities.Registry{Project: project}

	err := r.db.View(func(txn *badger.Txn) error {
		for _, kind := range objectKinds {
			prefix := []byte(project + "/" + string(kind) + "/")
			it := txn.NewIterator(badger.DefaultIteratorOptions)

			for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
				var obj entities.Object
				err := it.Item().Value(func(val []byte) error {
					decoded, err := entities.DecodeObject(kind, val)
					if err != nil {
						return err
					}
					obj = decoded
					return nil
				})
				if err != nil {
					it.Close()
					return err
				}

				switch o := obj.(type) {
				case *entities.Entity:
					registry.Entities = append(registry.Entities, o)
				case entities.DataSource:
					registry.DataSources = append(registry.DataSources, o)
				case *entities.FeatureView:
					registry.FeatureViews = append(registry.FeatureViews, o)
				case *entities.FeatureService:
					registry.FeatureServices = append(registry.FeatureServices, o)
				}
			}
			it.Close()
		}

		item, err := txn.Get(metaKey(project))
		if err == badger.ErrKeyNotFound {
			return nil
		}
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			var meta registryMeta
			if err := json.Unmarshal(val, &meta); err != nil {
				return fmt.Errorf("failed to decode registry metadata: %w", err)
			}
			registry.Version = meta.Version
			registry.UpdatedAt = meta.UpdatedAt
			return nil
		})
	})
	if err != nil {
		return nil, fmt.Errorf("failed to load registry: %w", err)
	}

	return registry, nil
}

// ApplyObjects implements RegistryRepository.
func (r *BadgerRegistryRepository) ApplyObjects(ctx context.Context, project string, version string, objs []entities.Object) error {
	meta, err := json.Marshal(registryMeta{Version: version, UpdatedAt: time.Now().UTC()})
	if err != nil {
		return fmt.Errorf("failed to encode registry metadata: %w", err)
	}

	err = r.db.Update(func(txn *badger.Txn) error {
		for _, obj := range objs {
			data, err := entities.EncodeObject(obj)
			if err != nil {
				return err
			}
			if err := txn.Set(objectKey(project, obj.ObjectKind(), obj.ObjectName()), data); err != nil {
				return err
			}
		}
		return txn.Set(metaKey(project), meta)
	})
	if err != nil {
		return fmt.Errorf("failed to write registry objects: %w", err)
	}
	return nil
}

// DeleteRegistry implements RegistryRepository.
func (r *BadgerRegistryRepository) DeleteRegistry(ctx context.Context, project string) error {
	err := r.db.Update(func(txn *badger.Txn) error {
		prefix := []byte(project + "/")
		it := txn.NewIterator(badger.IteratorOptions{PrefetchValues: false})

		var keys [][]byte
		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			keys = append(keys, it.Item().KeyCopy(nil))
		}
		it.Close()

		for _, key := range keys {
			if err := txn.Delete(key); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to delete registry: %w", err)
	}
	return nil
}
