package game

import (
	"testing"

	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

func TestWrapYawDelta(t *testing.T) {
	tests := []struct {
		in, want float32
	}{
		{0, 0},
		{90, 90},
		{190, -170},
		{-190, 170},
		{-358, 2},
		{720, 0},
	}
	for _, tt := range tests {
		if got := WrapYawDelta(tt.in); math32.Abs(got-tt.want) > 1e-4 {
			t.Errorf("WrapYawDelta(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestLookAtInvertsDirectionVector(t *testing.T) {
	for _, look := range []mgl32.Vec2{{30, 20}, {-120, -45}, {179, 0}} {
		dir := DirectionVector(look.X(), look.Y())
		got := LookAt(mgl32.Vec3{}, dir)
		if math32.Abs(WrapYawDelta(got.Y()-look.X())) > 1e-3 || math32.Abs(got.X()-look.Y()) > 1e-3 {
			t.Errorf("LookAt(DirectionVector(%v)) = %v", look, got)
		}
	}
	if LookAt(mgl32.Vec3{1, 1, 1}, mgl32.Vec3{1, 1, 1}) != (mgl32.Vec3{}) {
		t.Errorf("expected a zero look rotation for coincident points")
	}
}

func TestLerpLookTakesShortestPath(t *testing.T) {
	got := LerpLook(mgl32.Vec3{0, 170, 0}, mgl32.Vec3{0, -170, 0}, 0.5)
	if math32.Abs(got.Y()-180) > 1e-4 {
		t.Fatalf("expected to pass through 180, got %v", got.Y())
	}
}

func TestQuadraticBezierEndpoints(t *testing.T) {
	a, b, c := mgl32.Vec3{0, 0, 0}, mgl32.Vec3{0, 2, 0}, mgl32.Vec3{2, 0, 0}
	if QuadraticBezier(a, b, c, 0) != a || QuadraticBezier(a, b, c, 1) != c {
		t.Fatalf("curve must start at a and end at c")
	}
	if mid := QuadraticBezier(a, b, c, 0.5); !mid.ApproxEqual(mgl32.Vec3{0.5, 1, 0}) {
		t.Fatalf("unexpected midpoint %v", mid)
	}
}

func TestClampVec3(t *testing.T) {
	got := ClampVec3(mgl32.Vec3{-5, 0.5, 9}, 1)
	if got != (mgl32.Vec3{-1, 0.5, 1}) {
		t.Fatalf("unexpected clamp %v", got)
	}
}
