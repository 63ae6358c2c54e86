package entities

import (
	"encoding/json"
	"fmt"
	"maps"
	"slices"

	"github.com/ai-ml-platform/featstore/pkg/duration"
	"gopkg.in/yaml.v3"
)

// FeatureView is a named group of features computed from one batch source
// and keyed by one or more entities.
type FeatureView struct {
	Name     string
	Entities []string
	TTL      duration.Duration
	Features []*Feature
	Online   bool
	// BatchSource is the source object this view reads from. Registry
	// storage keeps only the source name; a view loaded from storage
	// carries the name and a nil BatchSource.
	BatchSource DataSource
	Tags        map[string]string

	batchSourceName string
}

// featureViewRecord is the serialized form of a FeatureView. The batch
// source is referenced by name; the source object itself is registered
// separately.
type featureViewRecord struct {
	Name        string            `json:"name" yaml:"name"`
	Entities    []string          `json:"entities,omitempty" yaml:"entities,omitempty"`
	TTL         duration.Duration `json:"ttl" yaml:"ttl"`
	Features    []*Feature        `json:"features" yaml:"features"`
	Online      bool              `json:"online" yaml:"online"`
	BatchSource string            `json:"batch_source,omitempty" yaml:"batch_source,omitempty"`
	Tags        map[string]string `json:"tags,omitempty" yaml:"tags,omitempty"`
}

// ObjectKind implements Object.
func (v *FeatureView) ObjectKind() ObjectKind {
	return KindFeatureView
}

// ObjectName implements Object.
func (v *FeatureView) ObjectName() string {
	return v.Name
}

// BatchSourceName returns the name of the view's batch source, whether the
// view holds the source object or only its stored reference.
func (v *FeatureView) BatchSourceName() string {
	if v.BatchSource != nil {
		return v.BatchSource.SourceName()
	}
	return v.batchSourceName
}

// GetFeature returns the feature with the given name, or nil.
func (v *FeatureView) GetFeature(name string) *Feature {
	for _, f := range v.Features {
		if f.Name == name {
			return f
		}
	}
	return nil
}

// Select builds a feature selection referencing this view by name. The
// selected feature names are not resolved here; registry validation checks
// them against the view's declared features.
func (v *FeatureView) Select(features ...string) *FeatureSelection {
	return &FeatureSelection{
		ViewName: v.Name,
		Features: features,
	}
}

// Validate checks that the feature view is structurally sound. References
// to entities and sources are resolved by registry validation, not here.
func (v *FeatureView) Validate() error {
	if v.Name == "" {
		return fmt.Errorf("feature view name is required")
	}
	if v.TTL < 0 {
		return fmt.Errorf("feature view %s: ttl must not be negative", v.Name)
	}
	if len(v.Features) == 0 {
		return fmt.Errorf("feature view %s: at least one feature is required", v.Name)
	}
	seen := make(map[string]bool, len(v.Features))
	for _, f := range v.Features {
		if err := f.Validate(); err != nil {
			return fmt.Errorf("feature view %s: %w", v.Name, err)
		}
		if seen[f.Name] {
			return fmt.Errorf("feature view %s: duplicate feature: %s", v.Name, f.Name)
		}
		seen[f.Name] = true
	}
	if v.BatchSourceName() == "" {
		return fmt.Errorf("feature view %s: batch source is required", v.Name)
	}
	return nil
}

// Equal reports whether two feature views are identical. Batch sources are
// compared by name; source contents are compared on the source objects
// themselves.
func (v *FeatureView) Equal(other *FeatureView) bool {
	if v == nil || other == nil {
		return v == other
	}
	return v.Name == other.Name &&
		slices.Equal(v.Entities, other.Entities) &&
		v.TTL == other.TTL &&
		slices.EqualFunc(v.Features, other.Features, func(a, b *Feature) bool { return a.Equal(b) }) &&
		v.Online == other.Online &&
		v.BatchSourceName() == other.BatchSourceName() &&
		maps.Equal(v.Tags, other.Tags)
}

func (v *FeatureView) record() featureViewRecord {
	return featureViewRecord{
		Name:        v.Name,
		Entities:    v.Entities,
		TTL:         v.TTL,
		Features:    v.Features,
		Online:      v.Online,
		BatchSource: v.BatchSourceName(),
		Tags:        v.Tags,
	}
}

func (v *FeatureView) fromRecord(rec featureViewRecord) {
	v.Name = rec.Name
	v.Entities = rec.Entities
	v.TTL = rec.TTL
	v.Features = rec.Features
	v.Online = rec.Online
	v.BatchSource = nil
	v.Tags = rec.Tags
	v.batchSourceName = rec.BatchSource
}

// MarshalJSON implements json.Marshaler.
func (v *FeatureView) MarshalJSON() ([]byte, error) {
	return json.Marshal(v.record())
}

// UnmarshalJSON implements json.Unmarshaler.
func (v *FeatureView) UnmarshalJSON(data []byte) error {
	var rec featureViewRecord
	if err := json.Unmarshal(data, &rec); err != nil {
		return err
	}
	v.fromRecord(rec)
	return nil
}

// MarshalYAML implements yaml.Marshaler.
func (v *FeatureView) MarshalYAML() (interface{}, error) {
	return v.record(), nil
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (v *FeatureView) UnmarshalYAML(n *yaml.Node) error {
	var rec featureViewRecord
	if err := n.Decode(&rec); err != nil {
		return err
	}
	v.fromRecord(rec)
	return nil
}
