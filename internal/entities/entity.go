package entities

import (
	"fmt"
	"maps"
)

// Entity represents a join key that feature rows are indexed by, such as a
// user or driver identifier.
type Entity struct {
	Name        string            `json:"name" yaml:"name"`
	ValueType   ValueType         `json:"value_type" yaml:"value_type"`
	Description string            `json:"description,omitempty" yaml:"description,omitempty"`
	Tags        map[string]string `json:"tags,omitempty" yaml:"tags,omitempty"`
}

// ObjectKind implements Object.
func (e *Entity) ObjectKind() ObjectKind {
	return KindEntity
}

// ObjectName implements Object.
func (e *Entity) ObjectName() string {
	return e.Name
}

// Validate checks that the entity is structurally sound.
func (e *Entity) Validate() error {
	if e.Name == "" {
		return fmt.Errorf("entity name is required")
	}
	if !e.ValueType.Valid() {
		return fmt.Errorf("entity %s: join key value type is required", e.Name)
	}
	return nil
}

// Equal reports whether two entities are identical.
func (e *Entity) Equal(other *Entity) bool {
	if e == nil || other == nil {
		return e == other
	}
	return e.Name == other.Name &&
		e.ValueType == other.ValueType &&
		e.Description == other.Description &&
		maps.Equal(e.Tags, other.Tags)
}
