package entities

import (
	"encoding/json"
	"fmt"
)

// sourceEnvelope wraps a serialized data source with its concrete kind so
// that the right type can be restored on load.
type sourceEnvelope struct {
	Kind SourceKind      `json:"kind"`
	Spec json.RawMessage `json:"spec"`
}

// EncodeDataSource serializes a data source for registry storage.
func EncodeDataSource(src DataSource) ([]byte, error) {
	spec, err := json.Marshal(src)
	if err != nil {
		return nil, fmt.Errorf("failed to encode data source %s: %w", src.SourceName(), err)
	}
	return json.Marshal(sourceEnvelope{Kind: src.SourceKind(), Spec: spec})
}

// DecodeDataSource restores a data source from its stored form.
func DecodeDataSource(data []byte) (DataSource, error) {
	var env sourceEnvelope
	if err := json.Unmarshal(data, &env); err != nil {
		return nil, fmt.Errorf("failed to decode data source envelope: %w", err)
	}

	switch env.Kind {
	case SourceKindFile:
		var s FileSource
		if err := json.Unmarshal(env.Spec, &s); err != nil {
			return nil, fmt.Errorf("failed to decode file source: %w", err)
		}
		return &s, nil
	case SourceKindRequest:
		var s RequestSource
		if err := json.Unmarshal(env.Spec, &s); err != nil {
			return nil, fmt.Errorf("failed to decode request source: %w", err)
		}
		return &s, nil
	default:
		return nil, fmt.Errorf("unknown data source kind: %s", env.Kind)
	}
}

// EncodeObject serializes a registry object for storage.
func EncodeObject(obj Object) ([]byte, error) {
	if src, ok := obj.(DataSource); ok {
		return EncodeDataSource(src)
	}
	data, err := json.Marshal(obj)
	if err != nil {
		return nil, fmt.Errorf("failed to encode %s %s: %w", obj.ObjectKind(), obj.ObjectName(), err)
	}
	return data, nil
}

// DecodeObject restores a registry object of the given kind from its stored
// form.
func DecodeObject(kind ObjectKind, data []byte) (Object, error) {
	switch kind {
	case KindEntity:
		var e Entity
		if err := json.Unmarshal(data, &e); err != nil {
			return nil, fmt.Errorf("failed to decode entity: %w", err)
		}
		return &e, nil
	case KindDataSource:
		return DecodeDataSource(data)
	case KindFeatureView:
		var v FeatureView
		if err := json.Unmarshal(data, &v); err != nil {
			return nil, fmt.Errorf("failed to decode feature view: %w", err)
		}
		return &v, nil
	case KindFeatureService:
		var s FeatureService
		if err := json.Unmarshal(data, &s); err != nil {
			return nil, fmt.Errorf("failed to decode feature service: %w", err)
		}
		return &s, nil
	default:
		return nil, fmt.Errorf("unknown object kind: %s", kind)
	}
}
