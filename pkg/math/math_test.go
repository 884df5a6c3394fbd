package math

import "testing"

func TestVec3Add(t *testing.T) {
	a := Vec3{1, 2, 3}
	b := Vec3{4, 5, 6}
	got := a.Add(b)
	want := Vec3{5, 7, 9}
	if got != want {
		t.Errorf("Vec3.Add() = %v, want %v", got, want)
	}
}

func TestVec3Cross(t *testing.T) {
	x := Vec3{1, 0, 0}
	y := Vec3{0, 1, 0}
	got := x.Cross(y)
	want := Vec3{0, 0, 1}
	if got != want {
		t.Errorf("Vec3.Cross() = %v, want %v", got, want)
	}
}

func TestVec3Normalize(t *testing.T) {
	v := Vec3{3, 4, 0}
	n := v.Normalize()
	l := n.Length()
	if l < 0.999 || l > 1.001 {
		t.Errorf("Vec3.Normalize().Length() = %v, want ~1", l)
	}
}

func TestVec3NormalizeZero(t *testing.T) {
	got := (Vec3{}).Normalize()
	if got != (Vec3{}) {
		t.Errorf("zero vector normalize = %v, want zero", got)
	}
}

func TestVec2Length(t *testing.T) {
	v := Vec2{3, 4}
	if got := v.Length(); got != 5 {
		t.Errorf("Vec2.Length() = %v, want 5", got)
	}
}

func TestMat4MulIdentity(t *testing.T) {
	m := Perspective(1.0, 1.5, 0.1, 100)
	got := m.Mul(Identity())
	if got != m {
		t.Errorf("m * I = %v, want %v", got, m)
	}
}

func TestLookAtOrigin(t *testing.T) {
	eye := Vec3{0, 0, 10}
	m := LookAt(eye, Vec3{}, Vec3{0, 1, 0})
	// Eye transforms to origin-relative -Z depth of 10.
	if got := m[14]; got < -10.001 || got > -9.999 {
		t.Errorf("LookAt translation z = %v, want -10", got)
	}
}

func TestBox3ExpandByPoint(t *testing.T) {
	b := EmptyBox3()
	if !b.IsEmpty() {
		t.Fatal("EmptyBox3 should report empty")
	}

	b.ExpandByPoint(Vec3{1, -2, 3})
	b.ExpandByPoint(Vec3{-1, 2, 0})

	if b.IsEmpty() {
		t.Fatal("box with points should not be empty")
	}
	if b.Min != (Vec3{-1, -2, 0}) {
		t.Errorf("Min = %v, want {-1 -2 0}", b.Min)
	}
	if b.Max != (Vec3{1, 2, 3}) {
		t.Errorf("Max = %v, want {1 2 3}", b.Max)
	}
}

func TestBox3CenterSize(t *testing.T) {
	b := Box3{Min: Vec3{-1, -2, -3}, Max: Vec3{1, 2, 3}}
	if got := b.Center(); got != (Vec3{0, 0, 0}) {
		t.Errorf("Center() = %v, want origin", got)
	}
	if got := b.Size(); got != (Vec3{2, 4, 6}) {
		t.Errorf("Size() = %v, want {2 4 6}", got)
	}
}

func TestBox3Contains(t *testing.T) {
	b := Box3{Min: Vec3{0, 0, 0}, Max: Vec3{1, 1, 1}}
	tests := []struct {
		p    Vec3
		want bool
	}{
		{Vec3{0.5, 0.5, 0.5}, true},
		{Vec3{0, 0, 0}, true},
		{Vec3{1, 1, 1}, true},
		{Vec3{1.5, 0.5, 0.5}, false},
		{Vec3{0.5, -0.1, 0.5}, false},
	}
	for _, tt := range tests {
		if got := b.Contains(tt.p); got != tt.want {
			t.Errorf("Contains(%v) = %v, want %v", tt.p, got, tt.want)
		}
	}
}
