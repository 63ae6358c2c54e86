// Package cached wraps a registry repository with an in-memory read
// cache. Long-running consumers such as serving components read the
// registry far more often than it changes; the cache keeps those reads
// off the backend while writes and notifications keep it honest.
package cached

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/ai-ml-platform/featstore/internal/entities"
	"github.com/ai-ml-platform/featstore/internal/repositories"
	"github.com/ai-ml-platform/featstore/pkg/cache"
	"github.com/ai-ml-platform/featstore/pkg/cache/memorycache"
	"github.com/lib/pq"
)

const defaultMaxSizeBytes = 16 * 1024 * 1024

// Options configures the cached repository.
type Options struct {
	// TTL bounds how stale a cached registry may get without an explicit
	// invalidation. Required.
	TTL time.Duration

	// MaxSizeBytes bounds the cache. Zero uses a default large enough for
	// hundreds of projects.
	MaxSizeBytes int64
}

// CachedRegistryRepository is a read-through cache over another registry
// repository. Registries returned from GetRegistry are shared between
// callers and must be treated as read-only.
type CachedRegistryRepository struct {
	repo  repositories.RegistryRepository
	store *memorycache.Cache
	ttl   time.Duration

	mu       sync.Mutex
	listener *pq.Listener
	stopCh   chan struct{}
	stopped  bool
}

// NewCachedRegistryRepository wraps repo with a read cache.
func NewCachedRegistryRepository(repo repositories.RegistryRepository, opts Options) (*CachedRegistryRepository, error) {
	if opts.TTL <= 0 {
		return nil, fmt.Errorf("cache ttl must be positive")
	}
	maxSize := opts.MaxSizeBytes
	if maxSize == 0 {
		maxSize = defaultMaxSizeBytes
	}

	store, err := memorycache.New(&memorycache.Config{
		MaxSizeBytes:  maxSize,
		DefaultTTL:    opts.TTL,
		EnableMetrics: true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create registry cache: %w", err)
	}

	return &CachedRegistryRepository{
		repo:   repo,
		store:  store,
		ttl:    opts.TTL,
		stopCh: make(chan struct{}),
	}, nil
}

// GetRegistry returns the cached registry for the project, loading it
// from the backend on a miss or after expiry.
func (r *CachedRegistryRepository) GetRegistry(ctx context.Context, project string) (*entities.Registry, error) {
	if value, ok := r.store.Get(ctx, project); ok {
		if registry, ok := value.(*entities.Registry); ok {
			return registry, nil
		}
	}

	registry, err := r.repo.GetRegistry(ctx, project)
	if err != nil {
		return nil, err
	}
	if err := r.store.Set(ctx, project, registry, r.ttl); err != nil {
		return nil, fmt.Errorf("failed to cache registry: %w", err)
	}
	return registry, nil
}

// ApplyObjects writes through to the backend and drops the project's
// cached registry.
func (r *CachedRegistryRepository) ApplyObjects(ctx context.Context, project string, version string, objs []entities.Object) error {
	if err := r.repo.ApplyObjects(ctx, project, version, objs); err != nil {
		return err
	}
	return r.store.Delete(ctx, project)
}

// DeleteRegistry writes through to the backend and drops the project's
// cached registry.
func (r *CachedRegistryRepository) DeleteRegistry(ctx context.Context, project string) error {
	if err := r.repo.DeleteRegistry(ctx, project); err != nil {
		return err
	}
	return r.store.Delete(ctx, project)
}

// Invalidate drops the project's cached registry. The next read goes to
// the backend.
func (r *CachedRegistryRepository) Invalidate(ctx context.Context, project string) error {
	return r.store.Delete(ctx, project)
}

// Metrics returns cache statistics.
func (r *CachedRegistryRepository) Metrics() *cache.Metrics {
	return r.store.Metrics()
}

// Listen starts a PostgreSQL LISTEN/NOTIFY watcher that drops a cached
// registry the moment another instance changes it. connStr must point at
// the same database the backend writes to. Without a listener the cache
// still converges within one TTL.
func (r *CachedRegistryRepository) Listen(connStr string) error {
	reportProblem := func(ev pq.ListenerEventType, err error) {
		if err != nil {
			// The TTL fallback covers missed notifications
			fmt.Printf("registry cache listener error: %v\n", err)
		}
	}

	listener := pq.NewListener(connStr, 10*time.Second, time.Minute, reportProblem)
	if err := listener.Listen(repositories.RegistryChangedChannel); err != nil {
		listener.Close()
		return fmt.Errorf("failed to listen on %s: %w", repositories.RegistryChangedChannel, err)
	}

	r.mu.Lock()
	r.listener = listener
	r.mu.Unlock()

	go r.handleNotifications(listener)

	return nil
}

// handleNotifications drops cache entries named by incoming notifications.
func (r *CachedRegistryRepository) handleNotifications(listener *pq.Listener) {
	ctx := context.Background()
	for {
		select {
		case <-r.stopCh:
			return
		case notification := <-listener.Notify:
			if notification == nil {
				// Connection lost, listener reconnects automatically
				continue
			}
			r.store.Delete(ctx, notification.Extra)
		case <-time.After(90 * time.Second):
			// Periodic ping to keep the connection alive
			go func() {
				if err := listener.Ping(); err != nil {
					fmt.Printf("registry cache ping error: %v\n", err)
				}
			}()
		}
	}
}

// Close stops the listener, if any, and releases the cache.
func (r *CachedRegistryRepository) Close() error {
	r.mu.Lock()
	if r.stopped {
		r.mu.Unlock()
		return nil
	}
	r.stopped = true
	close(r.stopCh)
	listener := r.listener
	r.mu.Unlock()

	if listener != nil {
		if err := listener.Close(); err != nil {
			return err
		}
	}
	return r.store.Close()
}
