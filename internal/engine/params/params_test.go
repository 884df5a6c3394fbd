package params

import (
	"errors"
	"testing"
)

func TestDefaultsMatchSpecs(t *testing.T) {
	for _, schema := range []*Schema{VaseSchema(), TableSchema()} {
		set := schema.Defaults()
		for _, spec := range schema.Specs() {
			got, ok := set.Value(spec.Name)
			if !ok {
				t.Errorf("%s: missing default for %q", schema.Family(), spec.Name)
				continue
			}
			if got != spec.Default {
				t.Errorf("%s: default %q = %v, want %v", schema.Family(), spec.Name, got, spec.Default)
			}
		}
	}
}

func TestWithClampsToRange(t *testing.T) {
	set := VaseSchema().Defaults()

	tests := []struct {
		name  string
		value float32
		want  float32
	}{
		{Height, 100, 20},    // above max
		{Height, -3, 0},      // below min
		{Height, 12.5, 12.5}, // in range
		{RadialSegs, 16.4, 16},
		{RadialSegs, 1, 3}, // integer clamped to min
	}

	for _, tt := range tests {
		got, err := set.With(tt.name, tt.value)
		if err != nil {
			t.Fatalf("With(%q, %v): %v", tt.name, tt.value, err)
		}
		if v := got.Get(tt.name); v != tt.want {
			t.Errorf("With(%q, %v) = %v, want %v", tt.name, tt.value, v, tt.want)
		}
	}
}

func TestWithUnknownName(t *testing.T) {
	set := TableSchema().Defaults()
	_, err := set.With("spoutLength", 1)
	if !errors.Is(err, ErrUnknownParameter) {
		t.Errorf("err = %v, want ErrUnknownParameter", err)
	}
}

func TestWithDoesNotMutateReceiver(t *testing.T) {
	base := VaseSchema().Defaults()
	before := base.Get(Height)

	changed, err := base.With(Height, before+3)
	if err != nil {
		t.Fatal(err)
	}
	if base.Get(Height) != before {
		t.Error("With mutated the original snapshot")
	}
	if changed.Get(Height) != before+3 {
		t.Errorf("new snapshot height = %v, want %v", changed.Get(Height), before+3)
	}
}

func TestSchemaFor(t *testing.T) {
	if SchemaFor(FamilyVase) == nil || SchemaFor(FamilyTable) == nil {
		t.Error("built-in families must have schemas")
	}
	if SchemaFor(Family("chair")) != nil {
		t.Error("unknown family should have no schema")
	}
}
