package entities

import "testing"

func testRegistry() *Registry {
	return &Registry{
		Project: "test_project",
		Version: "v-123",
		Entities: []*Entity{
			{Name: "user_id", ValueType: ValueTypeInt64},
			{Name: "driver_id", ValueType: ValueTypeInt64},
		},
		DataSources: []DataSource{
			validFileSource(),
			validRequestSource(),
		},
		FeatureViews: []*FeatureView{
			validFeatureView(),
		},
		FeatureServices: []*FeatureService{
			validFeatureService(),
		},
	}
}

func TestRegistry_Lookups(t *testing.T) {
	reg := testRegistry()

	if e := reg.GetEntity("driver_id"); e == nil || e.Name != "driver_id" {
		t.Errorf("GetEntity(%q) = %v, want driver_id entity", "driver_id", e)
	}
	if e := reg.GetEntity("missing"); e != nil {
		t.Errorf("GetEntity(%q) = %v, want nil", "missing", e)
	}

	if s := reg.GetDataSource("user_activity_stream_source"); s == nil || s.SourceKind() != SourceKindRequest {
		t.Errorf("GetDataSource(%q) = %v, want request source", "user_activity_stream_source", s)
	}
	if s := reg.GetDataSource("missing"); s != nil {
		t.Errorf("GetDataSource(%q) = %v, want nil", "missing", s)
	}

	if v := reg.GetFeatureView("user_engagement_features"); v == nil {
		t.Errorf("GetFeatureView(%q) = nil, want view", "user_engagement_features")
	}
	if svc := reg.GetFeatureService("recommendation_v1"); svc == nil {
		t.Errorf("GetFeatureService(%q) = nil, want service", "recommendation_v1")
	}

	if f := reg.GetFeature("user_engagement_features", "total_sessions_7d"); f == nil {
		t.Errorf("GetFeature(%q, %q) = nil, want feature", "user_engagement_features", "total_sessions_7d")
	}
	if f := reg.GetFeature("user_engagement_features", "missing"); f != nil {
		t.Errorf("GetFeature(%q, %q) = %v, want nil", "user_engagement_features", "missing", f)
	}
	if f := reg.GetFeature("missing_view", "total_sessions_7d"); f != nil {
		t.Errorf("GetFeature(%q, %q) = %v, want nil", "missing_view", "total_sessions_7d", f)
	}
}

func TestRegistry_GetObject(t *testing.T) {
	reg := testRegistry()

	tests := []struct {
		name     string
		kind     ObjectKind
		objName  string
		wantNil  bool
		wantKind ObjectKind
	}{
		{
			name:     "entity",
			kind:     KindEntity,
			objName:  "user_id",
			wantKind: KindEntity,
		},
		{
			name:     "data source",
			kind:     KindDataSource,
			objName:  "user_activity_source",
			wantKind: KindDataSource,
		},
		{
			name:     "feature view",
			kind:     KindFeatureView,
			objName:  "user_engagement_features",
			wantKind: KindFeatureView,
		},
		{
			name:     "feature service",
			kind:     KindFeatureService,
			objName:  "recommendation_v1",
			wantKind: KindFeatureService,
		},
		{
			name:    "missing object",
			kind:    KindEntity,
			objName: "missing",
			wantNil: true,
		},
		{
			name:    "unknown kind",
			kind:    ObjectKind("widget"),
			objName: "user_id",
			wantNil: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			obj := reg.GetObject(tt.kind, tt.objName)
			if tt.wantNil {
				if obj != nil {
					t.Errorf("GetObject(%q, %q) = %v, want nil", tt.kind, tt.objName, obj)
				}
				return
			}
			if obj == nil {
				t.Fatalf("GetObject(%q, %q) = nil, want object", tt.kind, tt.objName)
			}
			if obj.ObjectKind() != tt.wantKind || obj.ObjectName() != tt.objName {
				t.Errorf("GetObject(%q, %q) = %s %s, want %s %s",
					tt.kind, tt.objName, obj.ObjectKind(), obj.ObjectName(), tt.wantKind, tt.objName)
			}
		})
	}
}

func TestRegistry_Objects(t *testing.T) {
	reg := testRegistry()

	objs := reg.Objects()
	if len(objs) != 6 {
		t.Fatalf("len(Objects()) = %d, want 6", len(objs))
	}

	// Registration order: entities, data sources, feature views, services.
	wantKinds := []ObjectKind{
		KindEntity, KindEntity,
		KindDataSource, KindDataSource,
		KindFeatureView,
		KindFeatureService,
	}
	for i, obj := range objs {
		if obj.ObjectKind() != wantKinds[i] {
			t.Errorf("Objects()[%d].ObjectKind() = %s, want %s", i, obj.ObjectKind(), wantKinds[i])
		}
	}
}

func TestRegistry_Counts(t *testing.T) {
	entities, sources, views, services := testRegistry().Counts()
	if entities != 2 || sources != 2 || views != 1 || services != 1 {
		t.Errorf("Counts() = %d, %d, %d, %d, want 2, 2, 1, 1", entities, sources, views, services)
	}
}

func TestRegistry_IsEmpty(t *testing.T) {
	if (&Registry{Project: "p"}).IsEmpty() != true {
		t.Error("IsEmpty() = false for registry with no objects, want true")
	}
	if testRegistry().IsEmpty() {
		t.Error("IsEmpty() = true for populated registry, want false")
	}
}
