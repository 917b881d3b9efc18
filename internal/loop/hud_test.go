package loop

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/muesli/termenv"
	"github.com/tomz197/circles/internal/config"
)

func TestHUDLine_Position(t *testing.T) {
	tests := []struct {
		name      string
		line      hudLine
		expectCol int
		expectRow int
	}{
		{name: "top_left", line: hudLine{Text: "abc", Row: 1, Align: alignLeft}, expectCol: 2, expectRow: 1},
		{name: "top_right", line: hudLine{Text: "frame 1", Row: 1, Align: alignRight}, expectCol: 33, expectRow: 1},
		{name: "bottom", line: hudLine{Text: "x", Row: -1, Align: alignLeft}, expectCol: 2, expectRow: 20},
		{name: "center", line: hudLine{Text: "0123456789", Row: 0, Align: alignCenter}, expectCol: 16, expectRow: 10},
		{name: "too_wide", line: hudLine{Text: strings.Repeat("x", 60), Row: 0, Align: alignCenter}, expectCol: 1, expectRow: 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			col, row := tt.line.position(40, 20)
			if col != tt.expectCol || row != tt.expectRow {
				t.Errorf("position() = (%d,%d), expected (%d,%d)", col, row, tt.expectCol, tt.expectRow)
			}
		})
	}
}

func TestHUDLines(t *testing.T) {
	s := newTestState(t, config.SceneElastic)
	s.Resize(80, 48)
	s.Collisions = 3
	s.Paused = true

	lines := hudLines(s)
	if len(lines) != 3 {
		t.Fatalf("got %d lines, expected 3", len(lines))
	}
	if lines[0].Text != "elastic  circles 4  collisions 3" {
		t.Errorf("status = %q", lines[0].Text)
	}
	if !strings.HasPrefix(lines[1].Text, "PAUSED") {
		t.Errorf("frame line = %q", lines[1].Text)
	}

	s.Err = errors.New("boom")
	if lines := hudLines(s); len(lines) != 4 || lines[3].Kind != hudError {
		t.Errorf("error line missing: %+v", lines)
	}
}

func TestHUDLines_Proximity(t *testing.T) {
	s := newTestState(t, config.SceneProximity)
	s.Resize(100, 80)

	if got := hudLines(s)[0].Text; got != "proximity  move the mouse" {
		t.Errorf("status = %q", got)
	}

	tests := []struct {
		name     string
		x, y     float64
		expected string
	}{
		{name: "apart", x: 90, y: 10, expected: "proximity  apart"},
		{name: "edges_touching", x: 72, y: 40, expected: "proximity  touching"},
		{name: "pointer_inside", x: 50, y: 40, expected: "proximity  inside"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s.Pointer.X, s.Pointer.Y, s.Pointer.Valid = tt.x, tt.y, true
			s.Step(Hooks{})
			if got := hudLines(s)[0].Text; got != tt.expected {
				t.Errorf("status = %q, expected %q", got, tt.expected)
			}
		})
	}
}

func TestANSIHUD_Draw(t *testing.T) {
	var buf bytes.Buffer
	s := newTestState(t, config.SceneOverlap)
	s.Resize(80, 48)

	hud := newANSIHUD(&buf, termenv.Ascii)
	if err := hud.draw(&buf, s, 40, 20); err != nil {
		t.Fatalf("draw() error = %v", err)
	}

	got := buf.String()
	for _, expected := range []string{"\033[1;2H", "overlap  circles 4  overlaps 0", "\033[20;2H", keyHints} {
		if !strings.Contains(got, expected) {
			t.Errorf("output missing %q: %q", expected, got)
		}
	}
}
