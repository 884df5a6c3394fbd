package scene

import (
	"errors"
	"testing"

	"github.com/Faultbox/formforge/internal/engine/camera"
	"github.com/Faultbox/formforge/internal/engine/geometry"
	"github.com/Faultbox/formforge/internal/engine/params"
)

func newTestScene(t *testing.T, family params.Family) *Scene {
	t.Helper()
	s, err := New(geometry.DefaultRegistry(), camera.New(camera.DefaultConfig()), family, nil)
	if err != nil {
		t.Fatal(err)
	}
	return s
}

func TestNewGeneratesInitialMesh(t *testing.T) {
	s := newTestScene(t, params.FamilyVase)

	if s.Mesh() == nil || s.Mesh().VertexCount() == 0 {
		t.Fatal("initial mesh missing")
	}
	if s.Family() != params.FamilyVase {
		t.Errorf("family = %s, want vase", s.Family())
	}
}

func TestSetParamSwapsMeshAndReframes(t *testing.T) {
	s := newTestScene(t, params.FamilyVase)

	before := s.Mesh()
	if err := s.SetParam(params.Height, 12); err != nil {
		t.Fatal(err)
	}

	if s.Mesh() == before {
		t.Error("mesh was not replaced")
	}
	if got := s.Params().Get(params.Height); got != 12 {
		t.Errorf("height = %v, want 12", got)
	}
	if s.Camera().Target != s.Mesh().Bounds.Center() {
		t.Error("camera target not reframed to new bounds")
	}
}

// Shrinking the vase must pull the camera in without touching the
// viewing angles the user chose.
func TestShrinkReducesDistanceKeepsAngles(t *testing.T) {
	s := newTestScene(t, params.FamilyVase)

	if err := s.SetParam(params.Height, 10); err != nil {
		t.Fatal(err)
	}
	s.Camera().Orbit(0.9, -0.3) // user orbits away from canonical
	azimuth, elevation := s.Camera().Azimuth, s.Camera().Elevation
	distBefore := s.Camera().Distance

	if err := s.SetParam(params.Height, 5); err != nil {
		t.Fatal(err)
	}

	if s.Camera().Distance >= distBefore {
		t.Errorf("distance %v did not shrink from %v", s.Camera().Distance, distBefore)
	}
	if s.Camera().Azimuth != azimuth || s.Camera().Elevation != elevation {
		t.Error("reframe changed the viewing angles")
	}
}

func TestGeneratorFailureLeavesStateUntouched(t *testing.T) {
	s := newTestScene(t, params.FamilyTable)

	mesh := s.Mesh()
	set := s.Params()
	pose := *s.Camera()

	err := s.SetParam(params.LegCount, 0)
	if !errors.Is(err, params.ErrInvalidParameter) {
		t.Fatalf("err = %v, want ErrInvalidParameter", err)
	}

	if s.Mesh() != mesh {
		t.Error("failed cycle replaced the mesh")
	}
	if s.Params().Get(params.LegCount) != set.Get(params.LegCount) {
		t.Error("failed cycle changed the snapshot")
	}
	if *s.Camera() != pose {
		t.Error("failed cycle moved the camera")
	}
}

func TestSetParamUnknownName(t *testing.T) {
	s := newTestScene(t, params.FamilyVase)

	err := s.SetParam("legCount", 4) // table parameter, not a vase one
	if !errors.Is(err, params.ErrUnknownParameter) {
		t.Errorf("err = %v, want ErrUnknownParameter", err)
	}
}

func TestSelectFamilySwitchesSchema(t *testing.T) {
	s := newTestScene(t, params.FamilyVase)

	if err := s.SelectFamily(params.FamilyTable); err != nil {
		t.Fatal(err)
	}
	if s.Family() != params.FamilyTable {
		t.Errorf("family = %s, want table", s.Family())
	}
	if _, ok := s.Params().Value(params.LegCount); !ok {
		t.Error("table snapshot missing legCount")
	}

	if err := s.SelectFamily(params.Family("chair")); err == nil {
		t.Error("expected error for unknown family")
	}
	if s.Family() != params.FamilyTable {
		t.Error("failed switch changed the active family")
	}
}

func TestStatsMatchMesh(t *testing.T) {
	s := newTestScene(t, params.FamilyVase)

	stats := s.Stats()
	if stats.VertexCount != s.Mesh().VertexCount() {
		t.Errorf("stats vertices = %d, want %d", stats.VertexCount, s.Mesh().VertexCount())
	}
	if stats.FaceCount != s.Mesh().FaceCount() {
		t.Errorf("stats faces = %d, want %d", stats.FaceCount, s.Mesh().FaceCount())
	}
	if stats.Height != s.Mesh().Bounds.Size().Y {
		t.Errorf("stats height = %v, want %v", stats.Height, s.Mesh().Bounds.Size().Y)
	}
}
