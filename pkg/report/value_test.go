package report

import (
	"encoding/json"
	"testing"

	"gopkg.in/yaml.v3"
)

func TestValue_JSON(t *testing.T) {
	tests := []struct {
		name  string
		value json.Marshaler
		want  string
	}{
		{"known string", Known("AMD Ryzen 9"), `"AMD Ryzen 9"`},
		{"known int", Known(16), "16"},
		{"known float", Known(2494.14), "2494.14"},
		{"known uint64", Known(uint64(67108864)), "67108864"},
		{"known slice", Known([]string{"fpu", "sse2"}), `["fpu","sse2"]`},
		{"unknown string", Unknown[string](), `"N/A"`},
		{"unknown int", Unknown[int](), `"N/A"`},
		{"unknown slice", Unknown[[]string](), `"N/A"`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := json.Marshal(tt.value)
			if err != nil {
				t.Fatalf("Marshal() error = %v", err)
			}
			if string(got) != tt.want {
				t.Errorf("Marshal() = %s, want %s", got, tt.want)
			}
		})
	}
}

func TestValue_JSONRoundTrip(t *testing.T) {
	in := Known(3200.0)
	data, err := json.Marshal(in)
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}
	var out Value[float64]
	if err := json.Unmarshal(data, &out); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}
	got, ok := out.Get()
	if !ok || got != 3200.0 {
		t.Errorf("round trip = (%v, %v), want (3200, true)", got, ok)
	}
}

func TestValue_UnmarshalSentinel(t *testing.T) {
	var v Value[int]
	if err := json.Unmarshal([]byte(`"N/A"`), &v); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}
	if v.IsKnown() {
		t.Error("sentinel decoded as known")
	}

	var s Value[string]
	if err := json.Unmarshal([]byte(`"N/A"`), &s); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}
	if s.IsKnown() {
		t.Error("sentinel string decoded as known")
	}

	var n Value[float64]
	if err := json.Unmarshal([]byte("null"), &n); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}
	if n.IsKnown() {
		t.Error("null decoded as known")
	}
}

func TestValue_YAML(t *testing.T) {
	type doc struct {
		Brand Value[string] `yaml:"brand"`
		Cores Value[int]    `yaml:"cores"`
	}
	out, err := yaml.Marshal(doc{Brand: Unknown[string](), Cores: Known(8)})
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}
	want := "brand: N/A\ncores: 8\n"
	if string(out) != want {
		t.Errorf("Marshal() = %q, want %q", out, want)
	}

	var back doc
	if err := yaml.Unmarshal(out, &back); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}
	if back.Brand.IsKnown() {
		t.Error("sentinel decoded as known")
	}
	if got, _ := back.Cores.Get(); got != 8 {
		t.Errorf("cores = %d, want 8", got)
	}
}

func TestValue_String(t *testing.T) {
	tests := []struct {
		name string
		got  string
		want string
	}{
		{"known string", Known("x86_64").String(), "x86_64"},
		{"known int", Known(12).String(), "12"},
		{"unknown", Unknown[float64]().String(), "N/A"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.want {
				t.Errorf("String() = %q, want %q", tt.got, tt.want)
			}
		})
	}
}

func TestValue_Or(t *testing.T) {
	if got := Known("host-1").Or("fallback"); got != "host-1" {
		t.Errorf("Or() = %q, want host-1", got)
	}
	if got := Unknown[string]().Or("fallback"); got != "fallback" {
		t.Errorf("Or() = %q, want fallback", got)
	}
}

func TestKnownIf(t *testing.T) {
	if v := KnownIf(4, true); !v.IsKnown() {
		t.Error("KnownIf(_, true) not known")
	}
	if v := KnownIf(4, false); v.IsKnown() {
		t.Error("KnownIf(_, false) known")
	}
}
