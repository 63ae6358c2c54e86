package services

import (
	"context"
	"fmt"
	"slices"

	"github.com/ai-ml-platform/featstore/internal/entities"
	"github.com/ai-ml-platform/featstore/internal/repositories"
	"github.com/ai-ml-platform/featstore/internal/services/validator"
	"github.com/google/uuid"
)

// RegistryServiceInterface defines the interface for registry operations
type RegistryServiceInterface interface {
	Apply(ctx context.Context, objs []entities.Object) (*ApplyResult, error)
	Plan(ctx context.Context, objs []entities.Object) (*ApplyResult, error)
	Registry(ctx context.Context) (*entities.Registry, error)
	Teardown(ctx context.Context) error
}

// RegistryService validates and applies feature definitions against one
// project's registry.
type RegistryService struct {
	repo    repositories.RegistryRepository
	project string
}

// NewRegistryService creates a new RegistryService
func NewRegistryService(repo repositories.RegistryRepository, project string) *RegistryService {
	return &RegistryService{
		repo:    repo,
		project: project,
	}
}

// Apply validates the given objects against the registry and persists the
// ones that are new or changed, stamping a fresh registry version. The
// batch is validated as if already applied, so objects may reference each
// other or anything registered earlier; a feature view applied before its
// entities fails validation. Batch sources carried by feature views are
// registered alongside them.
func (s *RegistryService) Apply(ctx context.Context, objs []entities.Object) (*ApplyResult, error) {
	result, changed, err := s.plan(ctx, objs)
	if err != nil {
		return nil, err
	}

	// Nothing new or changed: leave the registry version untouched.
	if len(changed) == 0 {
		return result, nil
	}

	version := uuid.NewString()
	if err := s.repo.ApplyObjects(ctx, s.project, version, changed); err != nil {
		return nil, fmt.Errorf("failed to apply registry objects: %w", err)
	}

	result.Version = version
	return result, nil
}

// Plan reports what Apply would do with the given objects without writing
// anything.
func (s *RegistryService) Plan(ctx context.Context, objs []entities.Object) (*ApplyResult, error) {
	result, _, err := s.plan(ctx, objs)
	return result, err
}

// Registry loads the project's current registry.
func (s *RegistryService) Registry(ctx context.Context) (*entities.Registry, error) {
	registry, err := s.repo.GetRegistry(ctx, s.project)
	if err != nil {
		return nil, fmt.Errorf("failed to load registry: %w", err)
	}
	return registry, nil
}

// Teardown removes every registered object for the project. Tearing down
// an empty registry is a no-op.
func (s *RegistryService) Teardown(ctx context.Context) error {
	if err := s.repo.DeleteRegistry(ctx, s.project); err != nil {
		return fmt.Errorf("failed to tear down registry: %w", err)
	}
	return nil
}

// plan loads the current registry, expands and validates the batch, and
// diffs it against the registered state. It returns the full change list
// and the subset of objects that actually need persisting.
func (s *RegistryService) plan(ctx context.Context, objs []entities.Object) (*ApplyResult, []entities.Object, error) {
	// Validate input
	if len(objs) == 0 {
		return nil, nil, fmt.Errorf("at least one object is required")
	}

	current, err := s.repo.GetRegistry(ctx, s.project)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load registry: %w", err)
	}

	batch, err := expandBatch(objs)
	if err != nil {
		return nil, nil, err
	}

	// Validate the state the registry would be in after this batch.
	merged := mergeSnapshot(current, batch)
	if err := validator.New(merged).Validate(); err != nil {
		return nil, nil, err
	}

	result := &ApplyResult{Version: current.Version}
	var changed []entities.Object
	for _, obj := range batch {
		action := ActionCreate
		if existing := current.GetObject(obj.ObjectKind(), obj.ObjectName()); existing != nil {
			if entities.ObjectEqual(existing, obj) {
				action = ActionUnchanged
			} else {
				action = ActionUpdate
			}
		}
		result.Changes = append(result.Changes, Change{Kind: obj.ObjectKind(), Name: obj.ObjectName(), Action: action})
		if action != ActionUnchanged {
			changed = append(changed, obj)
		}
	}

	return result, changed, nil
}

// expandBatch pulls every feature view's batch source into the batch, so
// sources ride along with the views that declare them, and rejects
// conflicting duplicate definitions.
func expandBatch(objs []entities.Object) ([]entities.Object, error) {
	type objectKey struct {
		kind entities.ObjectKind
		name string
	}
	seen := make(map[objectKey]entities.Object)
	var batch []entities.Object

	add := func(obj entities.Object) error {
		key := objectKey{obj.ObjectKind(), obj.ObjectName()}
		if existing, ok := seen[key]; ok {
			if !entities.ObjectEqual(existing, obj) {
				return fmt.Errorf("conflicting definitions for %s %s in one apply", key.kind, key.name)
			}
			return nil
		}
		seen[key] = obj
		batch = append(batch, obj)
		return nil
	}

	for _, obj := range objs {
		if view, ok := obj.(*entities.FeatureView); ok && view.BatchSource != nil {
			if err := add(view.BatchSource); err != nil {
				return nil, err
			}
		}
		if err := add(obj); err != nil {
			return nil, err
		}
	}

	return batch, nil
}

// mergeSnapshot overlays a batch onto the current registry, replacing
// objects by kind and name. The result is the registry state as it would
// look once the batch is applied.
func mergeSnapshot(current *entities.Registry, batch []entities.Object) *entities.Registry {
	merged := &entities.Registry{
		Project:         current.Project,
		Version:         current.Version,
		Entities:        slices.Clone(current.Entities),
		DataSources:     slices.Clone(current.DataSources),
		FeatureViews:    slices.Clone(current.FeatureViews),
		FeatureServices: slices.Clone(current.FeatureServices),
		UpdatedAt:       current.UpdatedAt,
	}

	for _, obj := range batch {
		switch o := obj.(type) {
		case *entities.Entity:
			merged.Entities = upsert(merged.Entities, o, func(e *entities.Entity) string { return e.Name })
		case entities.DataSource:
			merged.DataSources = upsert(merged.DataSources, o, entities.DataSource.SourceName)
		case *entities.FeatureView:
			merged.FeatureViews = upsert(merged.FeatureViews, o, func(v *entities.FeatureView) string { return v.Name })
		case *entities.FeatureService:
			merged.FeatureServices = upsert(merged.FeatureServices, o, func(fs *entities.FeatureService) string { return fs.Name })
		}
	}

	return merged
}

// upsert replaces the list element with the same name, or appends.
func upsert[T any](list []T, item T, nameOf func(T) string) []T {
	name := nameOf(item)
	for i := range list {
		if nameOf(list[i]) == name {
			list[i] = item
			return list
		}
	}
	return append(list, item)
}
