package entities

import (
	"fmt"
	"maps"
	"slices"
)

// FeatureSelection picks a subset of features from one feature view. The
// view is referenced by name so that selections survive registry storage.
type FeatureSelection struct {
	ViewName string   `json:"feature_view" yaml:"feature_view"`
	Features []string `json:"features" yaml:"features"`
}

// Validate checks that the selection is structurally sound.
func (s *FeatureSelection) Validate() error {
	if s.ViewName == "" {
		return fmt.Errorf("feature selection must name a feature view")
	}
	if len(s.Features) == 0 {
		return fmt.Errorf("feature selection on %s must select at least one feature", s.ViewName)
	}
	seen := make(map[string]bool, len(s.Features))
	for _, name := range s.Features {
		if name == "" {
			return fmt.Errorf("feature selection on %s contains an empty feature name", s.ViewName)
		}
		if seen[name] {
			return fmt.Errorf("feature selection on %s selects %s twice", s.ViewName, name)
		}
		seen[name] = true
	}
	return nil
}

// Equal reports whether two selections are identical.
func (s *FeatureSelection) Equal(other *FeatureSelection) bool {
	if s == nil || other == nil {
		return s == other
	}
	return s.ViewName == other.ViewName &&
		slices.Equal(s.Features, other.Features)
}

// FeatureService is a named bundle of feature selections served together to
// a model, for example all inputs of a recommendation ranker.
type FeatureService struct {
	Name        string              `json:"name" yaml:"name"`
	Features    []*FeatureSelection `json:"features" yaml:"features"`
	Description string              `json:"description,omitempty" yaml:"description,omitempty"`
	Tags        map[string]string   `json:"tags,omitempty" yaml:"tags,omitempty"`
}

// ObjectKind implements Object.
func (s *FeatureService) ObjectKind() ObjectKind {
	return KindFeatureService
}

// ObjectName implements Object.
func (s *FeatureService) ObjectName() string {
	return s.Name
}

// GetSelection returns the selection for the given view name, or nil.
func (s *FeatureService) GetSelection(viewName string) *FeatureSelection {
	for _, sel := range s.Features {
		if sel.ViewName == viewName {
			return sel
		}
	}
	return nil
}

// Validate checks that the feature service is structurally sound.
// References to feature views are resolved by registry validation.
func (s *FeatureService) Validate() error {
	if s.Name == "" {
		return fmt.Errorf("feature service name is required")
	}
	if len(s.Features) == 0 {
		return fmt.Errorf("feature service %s: at least one feature selection is required", s.Name)
	}
	for _, sel := range s.Features {
		if err := sel.Validate(); err != nil {
			return fmt.Errorf("feature service %s: %w", s.Name, err)
		}
	}
	return nil
}

// Equal reports whether two feature services are identical.
func (s *FeatureService) Equal(other *FeatureService) bool {
	if s == nil || other == nil {
		return s == other
	}
	return s.Name == other.Name &&
		slices.EqualFunc(s.Features, other.Features, func(a, b *FeatureSelection) bool { return a.Equal(b) }) &&
		s.Description == other.Description &&
		maps.Equal(s.Tags, other.Tags)
}
