// Package definitions declares the feature registry of the ai-ml-platform:
// every entity, data source, feature view, and feature service, plus the
// ordered registration flow that pushes them into a store.
package definitions

import (
	"context"
	"log"

	"github.com/ai-ml-platform/featstore/internal/entities"
)

// Entities lists every join key known to the platform.
var Entities = []*entities.Entity{
	userEntity,
	driverEntity,
	productEntity,
	locationEntity,
}

// DataSources lists every declared source. Sources are never applied as
// their own batch; each feature view carries its batch source into the
// registry.
var DataSources = []entities.DataSource{
	userActivitySource,
	driverPerformanceSource,
	productCatalogSource,
	transactionSource,
	userActivityStreamSource,
}

// FeatureViews lists every feature view.
var FeatureViews = []*entities.FeatureView{
	userEngagementFeatures,
	userDemographicsFeatures,
	driverPerformanceFeatures,
	productFeatures,
	transactionFeatures,
	userSessionFeatures,
}

// FeatureServices lists every model-facing feature service.
var FeatureServices = []*entities.FeatureService{
	recommendationFeatureService,
	fraudDetectionFeatureService,
	driverMatchingFeatureService,
	churnPredictionFeatureService,
}

// Store is the registration contract Apply works against. A batch may
// reference objects registered by an earlier call or carried in the same
// batch; anything else must fail.
type Store interface {
	Apply(ctx context.Context, objs []entities.Object) error
}

// Apply registers all feature definitions with the given store, in
// dependency order: entities first, then feature views with their batch
// sources, then feature services. A store error aborts the sequence and is
// returned to the caller as is.
func Apply(ctx context.Context, store Store) error {
	log.Println("Applying entities...")
	if err := store.Apply(ctx, asObjects(Entities)); err != nil {
		return err
	}

	log.Println("Applying feature views...")
	if err := store.Apply(ctx, asObjects(FeatureViews)); err != nil {
		return err
	}

	log.Println("Applying feature services...")
	if err := store.Apply(ctx, asObjects(FeatureServices)); err != nil {
		return err
	}

	log.Println("Feature definitions applied successfully")
	return nil
}

// Snapshot assembles the declared definitions into a registry snapshot,
// the shape validation and planning work on.
func Snapshot() *entities.Registry {
	return &entities.Registry{
		Entities:        Entities,
		DataSources:     DataSources,
		FeatureViews:    FeatureViews,
		FeatureServices: FeatureServices,
	}
}

// Summary reports how many definitions of each kind are declared.
type Summary struct {
	Entities        int
	FeatureViews    int
	FeatureServices int
	DataSources     int
}

// Summarize counts the declared definitions.
func Summarize() Summary {
	return Summary{
		Entities:        len(Entities),
		FeatureViews:    len(FeatureViews),
		FeatureServices: len(FeatureServices),
		DataSources:     len(DataSources),
	}
}

func asObjects[T entities.Object](items []T) []entities.Object {
	objs := make([]entities.Object, len(items))
	for i, item := range items {
		objs[i] = item
	}
	return objs
}
