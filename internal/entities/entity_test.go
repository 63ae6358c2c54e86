package entities

import "testing"

func TestEntity_Validate(t *testing.T) {
	tests := []struct {
		name    string
		entity  *Entity
		wantErr bool
	}{
		{
			name: "valid entity",
			entity: &Entity{
				Name:        "user_id",
				ValueType:   ValueTypeInt64,
				Description: "Unique identifier for users",
				Tags:        map[string]string{"team": "customer_analytics"},
			},
			wantErr: false,
		},
		{
			name:    "missing name",
			entity:  &Entity{ValueType: ValueTypeInt64},
			wantErr: true,
		},
		{
			name:    "missing value type",
			entity:  &Entity{Name: "user_id"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.entity.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestEntity_Equal(t *testing.T) {
	base := func() *Entity {
		return &Entity{
			Name:        "driver_id",
			ValueType:   ValueTypeInt64,
			Description: "Unique identifier for drivers",
			Tags:        map[string]string{"team": "driver_ops", "domain": "driver"},
		}
	}

	tests := []struct {
		name   string
		mutate func(*Entity)
		want   bool
	}{
		{
			name:   "identical",
			mutate: func(e *Entity) {},
			want:   true,
		},
		{
			name:   "different value type",
			mutate: func(e *Entity) { e.ValueType = ValueTypeString },
			want:   false,
		},
		{
			name:   "different description",
			mutate: func(e *Entity) { e.Description = "changed" },
			want:   false,
		},
		{
			name:   "different tag value",
			mutate: func(e *Entity) { e.Tags["team"] = "growth" },
			want:   false,
		},
		{
			name:   "extra tag",
			mutate: func(e *Entity) { e.Tags["extra"] = "x" },
			want:   false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			other := base()
			tt.mutate(other)
			if got := base().Equal(other); got != tt.want {
				t.Errorf("Equal() = %v, want %v", got, tt.want)
			}
		})
	}
}
