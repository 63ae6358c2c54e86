package entities

// ObjectKind identifies the registry table an object belongs to.
type ObjectKind string

const (
	KindEntity         ObjectKind = "entity"
	KindDataSource     ObjectKind = "data_source"
	KindFeatureView    ObjectKind = "feature_view"
	KindFeatureService ObjectKind = "feature_service"
)

// Object is implemented by every definition that can be registered:
// entities, data sources, feature views, and feature services.
type Object interface {
	ObjectKind() ObjectKind
	ObjectName() string
}

// ObjectEqual reports whether two registry objects are identical in kind,
// name, and content.
func ObjectEqual(a, b Object) bool {
	if a == nil || b == nil {
		return a == b
	}
	if a.ObjectKind() != b.ObjectKind() {
		return false
	}

	switch x := a.(type) {
	case *Entity:
		y, ok := b.(*Entity)
		return ok && x.Equal(y)
	case *FeatureView:
		y, ok := b.(*FeatureView)
		return ok && x.Equal(y)
	case *FeatureService:
		y, ok := b.(*FeatureService)
		return ok && x.Equal(y)
	}

	if xs, ok := a.(DataSource); ok {
		ys, ok := b.(DataSource)
		return ok && xs.EqualSource(ys)
	}

	return false
}
