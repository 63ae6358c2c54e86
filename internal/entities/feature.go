package entities

import "fmt"

// Feature is a single feature column within a feature view or a request
// source schema.
type Feature struct {
	Name        string    `json:"name" yaml:"name"`
	DType       ValueType `json:"dtype" yaml:"dtype"`
	Description string    `json:"description,omitempty" yaml:"description,omitempty"`
}

// Validate checks that the feature is structurally sound.
func (f *Feature) Validate() error {
	if f.Name == "" {
		return fmt.Errorf("feature name is required")
	}
	if !f.DType.Valid() {
		return fmt.Errorf("feature %s: dtype is required", f.Name)
	}
	return nil
}

// Equal reports whether two features are identical.
func (f *Feature) Equal(other *Feature) bool {
	if f == nil || other == nil {
		return f == other
	}
	return f.Name == other.Name &&
		f.DType == other.DType &&
		f.Description == other.Description
}
