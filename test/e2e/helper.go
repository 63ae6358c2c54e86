package e2e

import (
	"context"
	"testing"

	"github.com/ai-ml-platform/featstore/internal/definitions"
	"github.com/ai-ml-platform/featstore/internal/entities"
	"github.com/ai-ml-platform/featstore/internal/repositories/badgerdb"
	"github.com/ai-ml-platform/featstore/internal/services"
)

const testProject = "ai_ml_platform"

// E2ETestEnv represents an E2E test environment backed by an in-memory
// registry database
type E2ETestEnv struct {
	Service *services.RegistryService
	Repo    *badgerdb.BadgerRegistryRepository
}

// SetupE2ETest sets up an E2E test environment
func SetupE2ETest(t *testing.T) *E2ETestEnv {
	t.Helper()

	repo, err := badgerdb.NewBadgerRegistryRepository(badgerdb.StoreOptions{InMemory: true})
	if err != nil {
		t.Fatalf("failed to open registry database: %v", err)
	}

	return &E2ETestEnv{
		Service: services.NewRegistryService(repo, testProject),
		Repo:    repo,
	}
}

// Teardown cleans up the E2E test environment
func (e *E2ETestEnv) Teardown(t *testing.T) {
	t.Helper()

	if e.Repo != nil {
		if err := e.Repo.Close(); err != nil {
			t.Logf("warning: failed to close registry database: %v", err)
		}
	}
}

// serviceStore adapts the registry service to the definitions.Store
// contract and keeps the result of each batch.
type serviceStore struct {
	svc     *services.RegistryService
	results []*services.ApplyResult
}

func (s *serviceStore) Apply(ctx context.Context, objs []entities.Object) error {
	result, err := s.svc.Apply(ctx, objs)
	if err != nil {
		return err
	}
	s.results = append(s.results, result)
	return nil
}

// ApplyDefinitions registers every declared feature definition in order
// and returns the per-batch results.
func (e *E2ETestEnv) ApplyDefinitions(ctx context.Context, t *testing.T) []*services.ApplyResult {
	t.Helper()

	store := &serviceStore{svc: e.Service}
	if err := definitions.Apply(ctx, store); err != nil {
		t.Fatalf("failed to apply feature definitions: %v", err)
	}
	return store.results
}
