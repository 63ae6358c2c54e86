package duration

import (
	"encoding/json"
	"testing"
	"time"

	"gopkg.in/yaml.v3"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    time.Duration
		wantErr bool
	}{
		{
			name:  "go syntax hours",
			input: "168h",
			want:  168 * time.Hour,
		},
		{
			name:  "go syntax mixed",
			input: "1h30m",
			want:  90 * time.Minute,
		},
		{
			name:  "day suffix",
			input: "7d",
			want:  7 * 24 * time.Hour,
		},
		{
			name:  "day with remainder",
			input: "1d12h",
			want:  36 * time.Hour,
		},
		{
			name:  "bare seconds",
			input: "604800",
			want:  7 * 24 * time.Hour,
		},
		{
			name:  "zero",
			input: "0s",
			want:  0,
		},
		{
			name:    "empty",
			input:   "",
			wantErr: true,
		},
		{
			name:    "garbage",
			input:   "7x",
			wantErr: true,
		},
		{
			name:    "day without count",
			input:   "d",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Errorf("Parse(%q) expected error, got nil", tt.input)
				}
				return
			}
			if err != nil {
				t.Fatalf("Parse(%q) unexpected error: %v", tt.input, err)
			}
			if got.Std() != tt.want {
				t.Errorf("Parse(%q) = %v, want %v", tt.input, got.Std(), tt.want)
			}
		})
	}
}

func TestString(t *testing.T) {
	tests := []struct {
		name string
		d    Duration
		want string
	}{
		{
			name: "days as hours",
			d:    Days(7),
			want: "168h",
		},
		{
			name: "single hour",
			d:    Hours(1),
			want: "1h",
		},
		{
			name: "mixed units",
			d:    Duration(90 * time.Minute),
			want: "1h30m",
		},
		{
			name: "seconds only",
			d:    Duration(45 * time.Second),
			want: "45s",
		},
		{
			name: "zero",
			d:    0,
			want: "0s",
		},
		{
			name: "minutes without seconds",
			d:    Duration(10 * time.Minute),
			want: "10m",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.d.String(); got != tt.want {
				t.Errorf("String() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestJSONRoundTrip(t *testing.T) {
	original := Days(7)

	data, err := json.Marshal(original)
	if err != nil {
		t.Fatalf("Marshal() unexpected error: %v", err)
	}
	if string(data) != `"168h"` {
		t.Errorf("Marshal() = %s, want %q", data, `"168h"`)
	}

	var decoded Duration
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("Unmarshal() unexpected error: %v", err)
	}
	if decoded != original {
		t.Errorf("round trip = %v, want %v", decoded, original)
	}
}

func TestUnmarshalJSONSeconds(t *testing.T) {
	var d Duration
	if err := json.Unmarshal([]byte("3600"), &d); err != nil {
		t.Fatalf("Unmarshal() unexpected error: %v", err)
	}
	if d.Std() != time.Hour {
		t.Errorf("Unmarshal(3600) = %v, want %v", d.Std(), time.Hour)
	}
}

func TestYAMLRoundTrip(t *testing.T) {
	original := Hours(1)

	data, err := yaml.Marshal(original)
	if err != nil {
		t.Fatalf("Marshal() unexpected error: %v", err)
	}

	var decoded Duration
	if err := yaml.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("Unmarshal() unexpected error: %v", err)
	}
	if decoded != original {
		t.Errorf("round trip = %v, want %v", decoded, original)
	}
}
