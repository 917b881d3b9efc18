package object

import (
	"testing"

	"github.com/tomz197/circles/internal/draw"
)

func TestTracker_FollowsPointer(t *testing.T) {
	tr := NewTracker(3, white)

	tr.Update(UpdateContext{})
	if tr.Visible {
		t.Fatal("tracker should stay hidden before the first pointer report")
	}

	tr.Update(UpdateContext{Pointer: Pointer{X: 12, Y: 7, Valid: true}})
	if !tr.Visible || tr.X != 12 || tr.Y != 7 {
		t.Errorf("tracker = %+v, expected visible at (12,7)", tr)
	}
}

func TestTarget_Highlight(t *testing.T) {
	idle := draw.Color{B: 255}
	hit := draw.Color{R: 255}

	tests := []struct {
		name     string
		pointer  Pointer
		expected bool
	}{
		{name: "no_pointer", pointer: Pointer{}, expected: false},
		{name: "far_away", pointer: Pointer{X: 100, Y: 100, Valid: true}, expected: false},
		{name: "overlapping", pointer: Pointer{X: 38, Y: 26, Valid: true}, expected: true},
		{name: "exactly_touching", pointer: Pointer{X: 43, Y: 20, Valid: true}, expected: false},
		{name: "just_inside", pointer: Pointer{X: 42.9, Y: 20, Valid: true}, expected: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tr := NewTracker(3, white)
			target := NewTarget(30, 20, 10, idle, hit)
			objects := []Object{tr, target}
			ctx := UpdateContext{Pointer: tt.pointer, Objects: objects}

			for _, obj := range objects {
				obj.Update(ctx)
			}

			if target.Touching != tt.expected {
				t.Errorf("Touching = %v, expected %v", target.Touching, tt.expected)
			}
			expectedColor := idle
			if tt.expected {
				expectedColor = hit
			}
			if target.Color() != expectedColor {
				t.Errorf("Color() = %+v, expected %+v", target.Color(), expectedColor)
			}
		})
	}
}

func TestTarget_Contains(t *testing.T) {
	target := NewTarget(30, 20, 10, draw.Color{B: 255}, draw.Color{R: 255})

	tests := []struct {
		name     string
		x, y     float64
		expected bool
	}{
		{name: "center", x: 30, y: 20, expected: true},
		{name: "on_edge", x: 40, y: 20, expected: true},
		{name: "outside", x: 41, y: 20, expected: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := target.Contains(tt.x, tt.y); got != tt.expected {
				t.Errorf("Contains(%v,%v) = %v, expected %v", tt.x, tt.y, got, tt.expected)
			}
		})
	}
}

func TestTarget_ReturnsToIdle(t *testing.T) {
	tr := NewTracker(3, white)
	target := NewTarget(30, 20, 10, draw.Color{B: 255}, draw.Color{R: 255})
	objects := []Object{tr, target}

	for _, p := range []Pointer{{X: 30, Y: 20, Valid: true}, {X: 90, Y: 90, Valid: true}} {
		ctx := UpdateContext{Pointer: p, Objects: objects}
		for _, obj := range objects {
			obj.Update(ctx)
		}
	}

	if target.Touching {
		t.Error("expected target to return to idle once the tracker moves away")
	}
}

func TestProximity_Draw(t *testing.T) {
	c := draw.NewCanvas(40, 20)
	ctx := DrawContext{Canvas: c}

	tr := NewTracker(3, white)
	if err := tr.Draw(ctx); err != nil {
		t.Fatalf("hidden tracker Draw() error = %v", err)
	}
	tr.Visible = true
	if err := tr.Draw(ctx); err != nil {
		t.Fatalf("Draw() error = %v", err)
	}
	if err := NewTarget(20, 20, 8, white, white).Draw(ctx); err != nil {
		t.Fatalf("Draw() error = %v", err)
	}
}
