package entities

import "time"

// Registry is the complete set of feature definitions registered for a
// project, together with the version metadata stamped at the last apply.
type Registry struct {
	Project         string            `json:"project" yaml:"project"`
	Version         string            `json:"version,omitempty" yaml:"version,omitempty"`
	Entities        []*Entity         `json:"entities,omitempty" yaml:"entities,omitempty"`
	DataSources     []DataSource      `json:"data_sources,omitempty" yaml:"data_sources,omitempty"`
	FeatureViews    []*FeatureView    `json:"feature_views,omitempty" yaml:"feature_views,omitempty"`
	FeatureServices []*FeatureService `json:"feature_services,omitempty" yaml:"feature_services,omitempty"`
	UpdatedAt       time.Time         `json:"updated_at,omitempty" yaml:"updated_at,omitempty"`
}

// GetEntity returns the entity with the given name, or nil.
func (r *Registry) GetEntity(name string) *Entity {
	for _, e := range r.Entities {
		if e.Name == name {
			return e
		}
	}
	return nil
}

// GetDataSource returns the data source with the given name, or nil.
func (r *Registry) GetDataSource(name string) DataSource {
	for _, s := range r.DataSources {
		if s.SourceName() == name {
			return s
		}
	}
	return nil
}

// GetFeatureView returns the feature view with the given name, or nil.
func (r *Registry) GetFeatureView(name string) *FeatureView {
	for _, v := range r.FeatureViews {
		if v.Name == name {
			return v
		}
	}
	return nil
}

// GetFeatureService returns the feature service with the given name, or nil.
func (r *Registry) GetFeatureService(name string) *FeatureService {
	for _, s := range r.FeatureServices {
		if s.Name == name {
			return s
		}
	}
	return nil
}

// GetFeature returns the named feature of the named view, or nil.
func (r *Registry) GetFeature(viewName, featureName string) *Feature {
	v := r.GetFeatureView(viewName)
	if v == nil {
		return nil
	}
	return v.GetFeature(featureName)
}

// GetObject returns the registered object of the given kind and name, or nil.
func (r *Registry) GetObject(kind ObjectKind, name string) Object {
	switch kind {
	case KindEntity:
		if e := r.GetEntity(name); e != nil {
			return e
		}
	case KindDataSource:
		if s := r.GetDataSource(name); s != nil {
			return s
		}
	case KindFeatureView:
		if v := r.GetFeatureView(name); v != nil {
			return v
		}
	case KindFeatureService:
		if s := r.GetFeatureService(name); s != nil {
			return s
		}
	}
	return nil
}

// Objects returns all registered objects in registration order: entities,
// data sources, feature views, feature services.
func (r *Registry) Objects() []Object {
	objs := make([]Object, 0, len(r.Entities)+len(r.DataSources)+len(r.FeatureViews)+len(r.FeatureServices))
	for _, e := range r.Entities {
		objs = append(objs, e)
	}
	for _, s := range r.DataSources {
		objs = append(objs, s)
	}
	for _, v := range r.FeatureViews {
		objs = append(objs, v)
	}
	for _, s := range r.FeatureServices {
		objs = append(objs, s)
	}
	return objs
}

// Counts reports how many objects of each kind are registered.
func (r *Registry) Counts() (entities, sources, views, services int) {
	return len(r.Entities), len(r.DataSources), len(r.FeatureViews), len(r.FeatureServices)
}

// IsEmpty reports whether the registry holds no objects.
func (r *Registry) IsEmpty() bool {
	return len(r.Entities) == 0 &&
		len(r.DataSources) == 0 &&
		len(r.FeatureViews) == 0 &&
		len(r.FeatureServices) == 0
}
