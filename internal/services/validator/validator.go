// Package validator checks a registry snapshot for structural and
// referential integrity before it is persisted.
package validator

import (
	"fmt"
	"strings"

	"github.com/ai-ml-platform/featstore/internal/entities"
)

// Validator accumulates every problem found in a registry snapshot so that
// a single run reports all errors at once.
type Validator struct {
	registry *entities.Registry
	errors   []string
}

// New creates a validator for the given registry snapshot.
func New(registry *entities.Registry) *Validator {
	return &Validator{registry: registry}
}

// Validate checks the snapshot and returns an error listing every problem
// found, or nil if the snapshot is valid.
func (v *Validator) Validate() error {
	v.errors = nil

	v.validateUniqueNames()
	v.validateObjects()
	v.validateFeatureViewReferences()
	v.validateFeatureServiceReferences()

	if len(v.errors) > 0 {
		return fmt.Errorf("validation errors:\n%s", strings.Join(v.errors, "\n"))
	}
	return nil
}

func (v *Validator) addError(format string, args ...interface{}) {
	v.errors = append(v.errors, fmt.Sprintf(format, args...))
}

// validateUniqueNames checks that no name is declared twice within a kind.
func (v *Validator) validateUniqueNames() {
	seen := make(map[string]bool)
	for _, e := range v.registry.Entities {
		if seen[e.Name] {
			v.addError("duplicate entity name: %s", e.Name)
		}
		seen[e.Name] = true
	}

	seen = make(map[string]bool)
	for _, s := range v.registry.DataSources {
		if seen[s.SourceName()] {
			v.addError("duplicate data source name: %s", s.SourceName())
		}
		seen[s.SourceName()] = true
	}

	seen = make(map[string]bool)
	for _, fv := range v.registry.FeatureViews {
		if seen[fv.Name] {
			v.addError("duplicate feature view name: %s", fv.Name)
		}
		seen[fv.Name] = true
	}

	seen = make(map[string]bool)
	for _, fs := range v.registry.FeatureServices {
		if seen[fs.Name] {
			v.addError("duplicate feature service name: %s", fs.Name)
		}
		seen[fs.Name] = true
	}
}

// validateObjects runs each object's structural validation.
func (v *Validator) validateObjects() {
	for _, e := range v.registry.Entities {
		if err := e.Validate(); err != nil {
			v.addError("%v", err)
		}
	}
	for _, s := range v.registry.DataSources {
		if err := s.Validate(); err != nil {
			v.addError("%v", err)
		}
	}
	for _, fv := range v.registry.FeatureViews {
		if err := fv.Validate(); err != nil {
			v.addError("%v", err)
		}
	}
	for _, fs := range v.registry.FeatureServices {
		if err := fs.Validate(); err != nil {
			v.addError("%v", err)
		}
	}
}

// validateFeatureViewReferences checks that every view's entities and batch
// source are registered.
func (v *Validator) validateFeatureViewReferences() {
	for _, fv := range v.registry.FeatureViews {
		for _, entityName := range fv.Entities {
			if v.registry.GetEntity(entityName) == nil {
				v.addError("feature view %s references undefined entity: %s", fv.Name, entityName)
			}
		}
		if name := fv.BatchSourceName(); name != "" && v.registry.GetDataSource(name) == nil {
			v.addError("feature view %s references undefined data source: %s", fv.Name, name)
		}
	}
}

// validateFeatureServiceReferences checks that every selection resolves to
// a registered view and that every selected feature exists on that view.
func (v *Validator) validateFeatureServiceReferences() {
	for _, fs := range v.registry.FeatureServices {
		for _, sel := range fs.Features {
			view := v.registry.GetFeatureView(sel.ViewName)
			if view == nil {
				v.addError("feature service %s references undefined feature view: %s", fs.Name, sel.ViewName)
				continue
			}
			for _, featureName := range sel.Features {
				if view.GetFeature(featureName) == nil {
					v.addError("feature service %s: feature %s not found in feature view %s", fs.Name, featureName, sel.ViewName)
				}
			}
		}
	}
}
