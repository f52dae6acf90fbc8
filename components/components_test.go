package components

import (
	"testing"

	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi/features/math"
)

func TestDirectionHas(t *testing.T) {
	d := DirUp | DirRight
	if !d.Has(DirUp) || !d.Has(DirRight) || !d.Has(DirUp|DirRight) {
		t.Fatalf("%b is missing a set direction", d)
	}
	if d.Has(DirDown) || d.Has(DirUp|DirLeft) {
		t.Fatalf("%b reports a direction that is not held", d)
	}
}

func TestZoneContainsBoundary(t *testing.T) {
	z := ZoneData{Center: math.Vec2{X: 100, Y: 100}, Radius: 50, InitialRadius: 200}

	tests := []struct {
		p    math.Vec2
		want bool
	}{
		{math.Vec2{X: 100, Y: 100}, true},
		{math.Vec2{X: 150, Y: 100}, true},
		{math.Vec2{X: 100, Y: 49.9}, false},
		{math.Vec2{X: 140, Y: 140}, false},
	}
	for _, tt := range tests {
		if got := z.Contains(tt.p); got != tt.want {
			t.Errorf("Contains(%v) = %v, want %v", tt.p, got, tt.want)
		}
	}

	if got := z.Percent(); got != 25 {
		t.Fatalf("Percent = %v, want 25", got)
	}
}

func TestHealthFraction(t *testing.T) {
	tests := []struct {
		h    HealthData
		want float64
	}{
		{HealthData{Current: 50, Max: 100}, 0.5},
		{HealthData{Current: -4, Max: 100}, 0},
		{HealthData{Current: 120, Max: 100}, 1},
		{HealthData{Current: 10, Max: 0}, 0},
	}
	for _, tt := range tests {
		if got := tt.h.Fraction(); got != tt.want {
			t.Errorf("Fraction(%+v) = %v, want %v", tt.h, got, tt.want)
		}
	}
}

func TestSessionIdle(t *testing.T) {
	if s := (SessionData{}); !s.Idle() {
		t.Fatal("fresh session is not idle")
	}
	if s := (SessionData{Over: true}); s.Idle() {
		t.Fatal("finished session reports idle")
	}
}

func TestCenterOnAppliesMargin(t *testing.T) {
	o := &ObjectData{Object: resolv.NewObject(0, 0, 20, 20)}
	o.CenterOn(math.Vec2{X: 50, Y: 60}, 128)

	if o.X != 168 || o.Y != 178 {
		t.Fatalf("body at (%v, %v), want (168, 178)", o.X, o.Y)
	}
}
