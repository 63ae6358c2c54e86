package entities

import (
	"fmt"
	"maps"
	"slices"
)

// SourceKind identifies the concrete type of a data source.
type SourceKind string

const (
	SourceKindFile    SourceKind = "file"
	SourceKindRequest SourceKind = "request"
)

// DataSource is implemented by the source kinds a feature view can read
// from. It is sealed: only FileSource and RequestSource satisfy it.
type DataSource interface {
	Object
	SourceName() string
	SourceKind() SourceKind
	Validate() error
	EqualSource(other DataSource) bool
	isDataSource()
}

// FileSource reads feature rows from files at a path or object-store URI,
// for example "s3://bucket/feast/user_activity/".
type FileSource struct {
	Name                   string            `json:"name" yaml:"name"`
	Path                   string            `json:"path" yaml:"path"`
	TimestampField         string            `json:"timestamp_field" yaml:"timestamp_field"`
	CreatedTimestampColumn string            `json:"created_timestamp_column,omitempty" yaml:"created_timestamp_column,omitempty"`
	Description            string            `json:"description,omitempty" yaml:"description,omitempty"`
	Tags                   map[string]string `json:"tags,omitempty" yaml:"tags,omitempty"`
}

func (s *FileSource) isDataSource() {}

// ObjectKind implements Object.
func (s *FileSource) ObjectKind() ObjectKind {
	return KindDataSource
}

// ObjectName implements Object.
func (s *FileSource) ObjectName() string {
	return s.Name
}

// SourceName implements DataSource.
func (s *FileSource) SourceName() string {
	return s.Name
}

// SourceKind implements DataSource.
func (s *FileSource) SourceKind() SourceKind {
	return SourceKindFile
}

// Validate checks that the file source is structurally sound. The path is
// not checked for reachability.
func (s *FileSource) Validate() error {
	if s.Name == "" {
		return fmt.Errorf("data source name is required")
	}
	if s.Path == "" {
		return fmt.Errorf("data source %s: path is required", s.Name)
	}
	if s.TimestampField == "" {
		return fmt.Errorf("data source %s: timestamp field is required", s.Name)
	}
	return nil
}

// EqualSource reports whether two data sources are identical.
func (s *FileSource) EqualSource(other DataSource) bool {
	o, ok := other.(*FileSource)
	if !ok {
		return false
	}
	if s == nil || o == nil {
		return s == nil && o == nil
	}
	return s.Name == o.Name &&
		s.Path == o.Path &&
		s.TimestampField == o.TimestampField &&
		s.CreatedTimestampColumn == o.CreatedTimestampColumn &&
		s.Description == o.Description &&
		maps.Equal(s.Tags, o.Tags)
}

// RequestSource describes feature values supplied by the caller at request
// time instead of being read from storage.
type RequestSource struct {
	Name        string            `json:"name" yaml:"name"`
	Schema      []*Feature        `json:"schema" yaml:"schema"`
	Description string            `json:"description,omitempty" yaml:"description,omitempty"`
	Tags        map[string]string `json:"tags,omitempty" yaml:"tags,omitempty"`
}

func (s *RequestSource) isDataSource() {}

// ObjectKind implements Object.
func (s *RequestSource) ObjectKind() ObjectKind {
	return KindDataSource
}

// ObjectName implements Object.
func (s *RequestSource) ObjectName() string {
	return s.Name
}

// SourceName implements DataSource.
func (s *RequestSource) SourceName() string {
	return s.Name
}

// SourceKind implements DataSource.
func (s *RequestSource) SourceKind() SourceKind {
	return SourceKindRequest
}

// Validate checks that the request source is structurally sound.
func (s *RequestSource) Validate() error {
	if s.Name == "" {
		return fmt.Errorf("data source name is required")
	}
	if len(s.Schema) == 0 {
		return fmt.Errorf("data source %s: request schema must declare at least one field", s.Name)
	}
	seen := make(map[string]bool, len(s.Schema))
	for _, f := range s.Schema {
		if err := f.Validate(); err != nil {
			return fmt.Errorf("data source %s: %w", s.Name, err)
		}
		if seen[f.Name] {
			return fmt.Errorf("data source %s: duplicate schema field: %s", s.Name, f.Name)
		}
		seen[f.Name] = true
	}
	return nil
}

// EqualSource reports whether two data sources are identical.
func (s *RequestSource) EqualSource(other DataSource) bool {
	o, ok := other.(*RequestSource)
	if !ok {
		return false
	}
	if s == nil || o == nil {
		return s == nil && o == nil
	}
	return s.Name == o.Name &&
		slices.EqualFunc(s.Schema, o.Schema, func(a, b *Feature) bool { return a.Equal(b) }) &&
		s.Description == o.Description &&
		maps.Equal(s.Tags, o.Tags)
}
