package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/ai-ml-platform/featstore/internal/entities"
	"github.com/ai-ml-platform/featstore/internal/repositories"
)

// PostgresRegistryRepository implements RegistryRepository using PostgreSQL,
// for teams that share one registry across repos.
type PostgresRegistryRepository struct {
	db *sql.DB
}

// NewPostgresRegistryRepository creates a new PostgreSQL registry repository
func NewPostgresRegistryRepository(db *sql.DB) repositories.RegistryRepository {
	return &PostgresRegistryRepository{db: db}
}

// kindTables maps each object kind to its registry table. Table names are
// fixed constants; they are never built from user input.
var kindTables = map[entities.ObjectKind]string{
	entities.KindEntity:         "entities",
	entities.KindDataSource:     "data_sources",
	entities.KindFeatureView:    "feature_views",
	entities.KindFeatureService: "feature_services",
}

// GetRegistry retrieves every registered object for a project
func (r *PostgresRegistryRepository) GetRegistry(ctx context.Context, project string) (*entities.Registry, error) {
	registry := &entities.Registry{Project: project}

	for _, kind := range []entities.ObjectKind{
		entities.KindEntity,
		entities.KindDataSource,
		entities.KindFeatureView,
		entities.KindFeatureService,
	} {
		objs, err := r.loadObjects(ctx, project, kind)
		if err != nil {
			return nil, err
		}
		for _, obj := range objs {
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
	}

	query := `
		SELECT version, updated_at
		FROM registry_metadata
		WHERE project = $1
	`
	var version string
	var updatedAt time.Time
	err := r.db.QueryRowContext(ctx, query, project).Scan(&version, &updatedAt)
	if err != nil && err != sql.ErrNoRows {
		return nil, fmt.Errorf("failed to get registry metadata: %w", err)
	}
	if err == nil {
		registry.Version = version
		registry.UpdatedAt = updatedAt
	}

	return registry, nil
}

// loadObjects reads and decodes every row of one kind for a project
func (r *PostgresRegistryRepository) loadObjects(ctx context.Context, project string, kind entities.ObjectKind) ([]entities.Object, error) {
	query := fmt.Sprintf(`
		SELECT spec
		FROM %s
		WHERE project = $1
		ORDER BY name
	`, kindTables[kind])

	rows, err := r.db.QueryContext(ctx, query, project)
	if err != nil {
		return nil, fmt.Errorf("failed to query %s: %w", kindTables[kind], err)
	}
	defer rows.Close()

	var objs []entities.Object
	for rows.Next() {
		var spec []byte
		if err := rows.Scan(&spec); err != nil {
			return nil, fmt.Errorf("failed to scan %s row: %w", kindTables[kind], err)
		}
		obj, err := entities.DecodeObject(kind, spec)
		if err != nil {
			return nil, err
		}
		objs = append(objs, obj)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate %s rows: %w", kindTables[kind], err)
	}

	return objs, nil
}

// ApplyObjects upserts the given objects and the version metadata in a
// single transaction
func (r *PostgresRegistryRepository) ApplyObjects(ctx context.Context, project string, version string, objs []entities.Object) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	now := time.Now()
	for _, obj := range objs {
		table, ok := kindTables[obj.ObjectKind()]
		if !ok {
			return fmt.Errorf("unknown object kind: %s", obj.ObjectKind())
		}

		spec, err := entities.EncodeObject(obj)
		if err != nil {
			return err
		}

		query := fmt.Sprintf(`
			INSERT INTO %s (project, name, spec, created_at, updated_at)
			VALUES ($1, $2, $3, $4, $4)
			ON CONFLICT (project, name)
			DO UPDATE SET spec = EXCLUDED.spec, updated_at = EXCLUDED.updated_at
		`, table)
		if _, err := tx.ExecContext(ctx, query, project, obj.ObjectName(), spec, now); err != nil {
			return fmt.Errorf("failed to upsert %s %s: %w", obj.ObjectKind(), obj.ObjectName(), err)
		}
	}

	metaQuery := `
		INSERT INTO registry_metadata (project, version, updated_at)
		VALUES ($1, $2, $3)
		ON CONFLICT (project)
		DO UPDATE SET version = EXCLUDED.version, updated_at = EXCLUDED.updated_at
	`
	if _, err := tx.ExecContext(ctx, metaQuery, project, version, now); err != nil {
		return fmt.Errorf("failed to upsert registry metadata: %w", err)
	}

	if err := r.notifyChanged(ctx, tx, project); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit registry apply: %w", err)
	}
	return nil
}

// notifyChanged signals listeners that the project's registry changed.
// The notification goes out when the transaction commits.
func (r *PostgresRegistryRepository) notifyChanged(ctx context.Context, tx *sql.Tx, project string) error {
	if _, err := tx.ExecContext(ctx, `SELECT pg_notify($1, $2)`, repositories.RegistryChangedChannel, project); err != nil {
		return fmt.Errorf("failed to notify registry change: %w", err)
	}
	return nil
}

// DeleteRegistry removes every registered object and the version metadata
// for a project
func (r *PostgresRegistryRepository) DeleteRegistry(ctx context.Context, project string) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	for _, table := range []string{"entities", "data_sources", "feature_views", "feature_services", "registry_metadata"} {
		query := fmt.Sprintf(`DELETE FROM %s WHERE project = $1`, table)
		if _, err := tx.ExecContext(ctx, query, project); err != nil {
			return fmt.Errorf("failed to delete from %s: %w", table, err)
		}
	}

	if err := r.notifyChanged(ctx, tx, project); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit registry delete: %w", err)
	}
	return nil
}
