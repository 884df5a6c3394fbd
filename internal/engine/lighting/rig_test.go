package lighting

import (
	"testing"

	"github.com/chewxy/math32"
)

func TestFromAnglesNormalized(t *testing.T) {
	for _, angles := range [][2]float32{{0, 0}, {-30, 60}, {180, 45}, {90, 90}} {
		rig := FromAngles(angles[0], angles[1], [3]float32{}, [3]float32{})
		l := rig.KeyDirection.Length()
		if math32.Abs(l-1) > 1e-5 {
			t.Errorf("FromAngles(%v): |direction| = %v, want 1", angles, l)
		}
	}
}

func TestFromAnglesStraightUp(t *testing.T) {
	rig := FromAngles(0, 90, [3]float32{}, [3]float32{})
	if math32.Abs(rig.KeyDirection.Y-1) > 1e-5 {
		t.Errorf("latitude 90 should point straight up, got %v", rig.KeyDirection)
	}
}
