package entities

import (
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"
)

// ValueType is the primitive type of an entity join key or a feature column.
type ValueType int

const (
	ValueTypeUnknown ValueType = iota
	ValueTypeInt64
	ValueTypeString
	ValueTypeFloat
	ValueTypeBool
)

var valueTypeNames = map[ValueType]string{
	ValueTypeInt64:  "int64",
	ValueTypeString: "string",
	ValueTypeFloat:  "float",
	ValueTypeBool:   "bool",
}

var valueTypesByName = map[string]ValueType{
	"int64":  ValueTypeInt64,
	"string": ValueTypeString,
	"float":  ValueTypeFloat,
	"bool":   ValueTypeBool,
}

// String returns the wire name of the value type.
func (t ValueType) String() string {
	if name, ok := valueTypeNames[t]; ok {
		return name
	}
	return "unknown"
}

// Valid reports whether t is one of the supported value types.
func (t ValueType) Valid() bool {
	_, ok := valueTypeNames[t]
	return ok
}

// ParseValueType converts a wire name into a ValueType.
func ParseValueType(s string) (ValueType, error) {
	if t, ok := valueTypesByName[s]; ok {
		return t, nil
	}
	return ValueTypeUnknown, fmt.Errorf("unknown value type: %s", s)
}

// MarshalJSON encodes the value type as its wire name.
func (t ValueType) MarshalJSON() ([]byte, error) {
	if !t.Valid() {
		return nil, fmt.Errorf("cannot marshal unknown value type %d", int(t))
	}
	return json.Marshal(t.String())
}

// UnmarshalJSON decodes a value type from its wire name.
func (t *ValueType) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("value type must be a string: %w", err)
	}
	parsed, err := ParseValueType(s)
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

// MarshalYAML encodes the value type as its wire name.
func (t ValueType) MarshalYAML() (interface{}, error) {
	if !t.Valid() {
		return nil, fmt.Errorf("cannot marshal unknown value type %d", int(t))
	}
	return t.String(), nil
}

// UnmarshalYAML decodes a value type from its wire name.
func (t *ValueType) UnmarshalYAML(n *yaml.Node) error {
	var s string
	if err := n.Decode(&s); err != nil {
		return fmt.Errorf("value type must be a string: %w", err)
	}
	parsed, err := ParseValueType(s)
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}
