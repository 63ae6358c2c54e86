package badgerdb

import (
	"context"
	"testing"

	"github.com/ai-ml-platform/featstore/internal/entities"
	"github.com/ai-ml-platform/featstore/pkg/duration"
)

func setupRepository(t *testing.T) *BadgerRegistryRepository {
	t.Helper()

	repo, err := NewBadgerRegistryRepository(StoreOptions{InMemory: true})
	if err != nil {
		t.Fatalf("NewBadgerRegistryRepository() unexpected error: %v", err)
	}
	t.Cleanup(func() {
		if err := repo.Close(); err != nil {
			t.Errorf("Close() unexpected error: %v", err)
		}
	})
	return repo
}

func testObjects() []entities.Object {
	source := &entities.FileSource{
		Name:           "user_activity_source",
		Path:           "s3://datasets/feast/user_activity/",
		TimestampField: "event_timestamp",
	}
	view := &entities.FeatureView{
		Name:     "user_engagement_features",
		Entities: []string{"user_id"},
		TTL:      duration.Days(7),
		Features: []*entities.Feature{
			{Name: "total_sessions_7d", DType: entities.ValueTypeInt64},
		},
		Online:      true,
		BatchSource: source,
	}

	return []entities.Object{
		&entities.Entity{Name: "user_id", ValueType: entities.ValueTypeInt64},
		source,
		view,
		&entities.FeatureService{
			Name:     "recommendation_v1",
			Features: []*entities.FeatureSelection{view.Select("total_sessions_7d")},
		},
	}
}

func TestGetRegistry_Empty(t *testing.T) {
	repo := setupRepository(t)
	ctx := context.Background()

	registry, err := repo.GetRegistry(ctx, "empty_project")
	if err != nil {
		t.Fatalf("GetRegistry() unexpected error: %v", err)
	}
	if !registry.IsEmpty() {
		t.Error("GetRegistry() on fresh store should return an empty registry")
	}
	if registry.Project != "empty_project" {
		t.Errorf("Project = %q, want %q", registry.Project, "empty_project")
	}
	if registry.Version != "" {
		t.Errorf("Version = %q, want empty", registry.Version)
	}
}

func TestApplyObjects_RoundTrip(t *testing.T) {
	repo := setupRepository(t)
	ctx := context.Background()

	if err := repo.ApplyObjects(ctx, "test_project", "v-1", testObjects()); err != nil {
		t.Fatalf("ApplyObjects() unexpected error: %v", err)
	}

	registry, err := repo.GetRegistry(ctx, "test_project")
	if err != nil {
		t.Fatalf("GetRegistry() unexpected error: %v", err)
	}

	if len(registry.Entities) != 1 {
		t.Errorf("len(Entities) = %d, want 1", len(registry.Entities))
	}
	if len(registry.DataSources) != 1 {
		t.Errorf("len(DataSources) = %d, want 1", len(registry.DataSources))
	}
	if len(registry.FeatureViews) != 1 {
		t.Errorf("len(FeatureViews) = %d, want 1", len(registry.FeatureViews))
	}
	if len(registry.FeatureServices) != 1 {
		t.Errorf("len(FeatureServices) = %d, want 1", len(registry.FeatureServices))
	}
	if registry.Version != "v-1" {
		t.Errorf("Version = %q, want %q", registry.Version, "v-1")
	}
	if registry.UpdatedAt.IsZero() {
		t.Error("UpdatedAt should be stamped on apply")
	}

	view := registry.GetFeatureView("user_engagement_features")
	if view == nil {
		t.Fatal("GetFeatureView() = nil after apply")
	}
	if view.TTL != duration.Days(7) {
		t.Errorf("TTL = %v, want %v", view.TTL, duration.Days(7))
	}
	if got := view.BatchSourceName(); got != "user_activity_source" {
		t.Errorf("BatchSourceName() = %q, want %q", got, "user_activity_source")
	}
}

func TestApplyObjects_UpsertReplaces(t *testing.T) {
	repo := setupRepository(t)
	ctx := context.Background()

	if err := repo.ApplyObjects(ctx, "test_project", "v-1", testObjects()); err != nil {
		t.Fatalf("ApplyObjects() unexpected error: %v", err)
	}

	updated := &entities.Entity{
		Name:        "user_id",
		ValueType:   entities.ValueTypeInt64,
		Description: "now with a description",
	}
	if err := repo.ApplyObjects(ctx, "test_project", "v-2", []entities.Object{updated}); err != nil {
		t.Fatalf("ApplyObjects() unexpected error: %v", err)
	}

	registry, err := repo.GetRegistry(ctx, "test_project")
	if err != nil {
		t.Fatalf("GetRegistry() unexpected error: %v", err)
	}
	if len(registry.Entities) != 1 {
		t.Fatalf("len(Entities) = %d, want 1 after upsert", len(registry.Entities))
	}
	if got := registry.Entities[0].Description; got != "now with a description" {
		t.Errorf("Description = %q, want the updated value", got)
	}
	if registry.Version != "v-2" {
		t.Errorf("Version = %q, want %q", registry.Version, "v-2")
	}

	// Objects from the first apply are untouched.
	if registry.GetFeatureService("recommendation_v1") == nil {
		t.Error("feature service from earlier apply should survive")
	}
}

func TestProjectIsolation(t *testing.T) {
	repo := setupRepository(t)
	ctx := context.Background()

	if err := repo.ApplyObjects(ctx, "project_a", "v-1", testObjects()); err != nil {
		t.Fatalf("ApplyObjects() unexpected error: %v", err)
	}

	registry, err := repo.GetRegistry(ctx, "project_b")
	if err != nil {
		t.Fatalf("GetRegistry() unexpected error: %v", err)
	}
	if !registry.IsEmpty() {
		t.Error("objects applied to project_a should not be visible in project_b")
	}
}

func TestDeleteRegistry(t *testing.T) {
	repo := setupRepository(t)
	ctx := context.Background()

	if err := repo.ApplyObjects(ctx, "test_project", "v-1", testObjects()); err != nil {
		t.Fatalf("ApplyObjects() unexpected error: %v", err)
	}
	if err := repo.DeleteRegistry(ctx, "test_project"); err != nil {
		t.Fatalf("DeleteRegistry() unexpected error: %v", err)
	}

	registry, err := repo.GetRegistry(ctx, "test_project")
	if err != nil {
		t.Fatalf("GetRegistry() unexpected error: %v", err)
	}
	if !registry.IsEmpty() {
		t.Error("registry should be empty after teardown")
	}
	if registry.Version != "" {
		t.Errorf("Version = %q, want empty after teardown", registry.Version)
	}
}

func TestDeleteRegistry_EmptyIsNoError(t *testing.T) {
	repo := setupRepository(t)

	if err := repo.DeleteRegistry(context.Background(), "never_applied"); err != nil {
		t.Errorf("DeleteRegistry() on empty project unexpected error: %v", err)
	}
}

func TestOnDiskStore(t *testing.T) {
	dir := t.TempDir()

	repo, err := NewBadgerRegistryRepository(StoreOptions{Path: dir})
	if err != nil {
		t.Fatalf("NewBadgerRegistryRepository() unexpected error: %v", err)
	}
	ctx := context.Background()

	if err := repo.ApplyObjects(ctx, "test_project", "v-1", testObjects()); err != nil {
		t.Fatalf("ApplyObjects() unexpected error: %v", err)
	}
	if err := repo.Close(); err != nil {
		t.Fatalf("Close() unexpected error: %v", err)
	}

	// Reopen and confirm the objects survived.
	repo, err = NewBadgerRegistryRepository(StoreOptions{Path: dir})
	if err != nil {
		t.Fatalf("NewBadgerRegistryRepository() reopen unexpected error: %v", err)
	}
	defer repo.Close()

	registry, err := repo.GetRegistry(ctx, "test_project")
	if err != nil {
		t.Fatalf("GetRegistry() unexpected error: %v", err)
	}
	if registry.IsEmpty() {
		t.Error("registry should survive a close and reopen")
	}
}
