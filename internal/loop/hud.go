package loop

import (
	"fmt"
	"io"
	"unicode/utf8"

	"github.com/charmbracelet/lipgloss"
	"github.com/gdamore/tcell/v2"
	"github.com/muesli/termenv"
	"github.com/tomz197/circles/internal/config"
	"github.com/tomz197/circles/internal/draw"
	"github.com/tomz197/circles/internal/object"
)

const keyHints = "q quit  r reset  s scene  p pause  1-9 circles"

type hudKind int

const (
	hudInfo hudKind = iota
	hudHint
	hudError
)

type hudAlign int

const (
	alignLeft hudAlign = iota
	alignRight
	alignCenter
)

// hudLine is one piece of overlay text.
type hudLine struct {
	Text  string
	Row   int // 1-based from the top, or counted from the bottom when negative
	Align hudAlign
	Kind  hudKind
}

// hudLines returns the overlay text for the current state.
func hudLines(s *State) []hudLine {
	var status string
	switch s.Scene {
	case config.SceneProximity:
		status = "proximity  move the mouse"
		if s.Pointer.Valid {
			status = "proximity  apart"
		}
		for _, obj := range s.Objects {
			t, ok := obj.(*object.Target)
			if !ok || !t.Touching {
				continue
			}
			status = "proximity  touching"
			if t.Contains(s.Pointer.X, s.Pointer.Y) {
				status = "proximity  inside"
			}
		}
	case config.SceneOverlap:
		status = fmt.Sprintf("overlap  circles %d  overlaps %d", len(s.particles), s.Collisions)
	default:
		status = fmt.Sprintf("elastic  circles %d  collisions %d", len(s.particles), s.Collisions)
	}

	frame := fmt.Sprintf("frame %d", s.Frame)
	if s.Paused {
		frame = "PAUSED  " + frame
	}

	lines := []hudLine{
		{Text: status, Row: 1, Align: alignLeft, Kind: hudInfo},
		{Text: frame, Row: 1, Align: alignRight, Kind: hudInfo},
		{Text: keyHints, Row: -1, Align: alignLeft, Kind: hudHint},
	}
	if s.Err != nil {
		lines = append(lines, hudLine{Text: s.Err.Error(), Row: 0, Align: alignCenter, Kind: hudError})
	}
	return lines
}

// position returns the 1-based terminal cell where the line starts.
// Row 0 means the middle row.
func (l hudLine) position(width, height int) (col, row int) {
	n := utf8.RuneCountInString(l.Text)
	switch l.Align {
	case alignRight:
		col = width - n
	case alignCenter:
		col = (width-n)/2 + 1
	default:
		col = 2
	}

	switch {
	case l.Row > 0:
		row = l.Row
	case l.Row < 0:
		row = height + l.Row + 1
	default:
		row = height / 2
	}
	return max(col, 1), max(row, 1)
}

// ansiHUD draws the overlay as styled text through ANSI cursor moves.
type ansiHUD struct {
	styles map[hudKind]lipgloss.Style
}

func newANSIHUD(w io.Writer, profile termenv.Profile) *ansiHUD {
	r := lipgloss.NewRenderer(w)
	r.SetColorProfile(profile)
	return &ansiHUD{
		styles: map[hudKind]lipgloss.Style{
			hudInfo:  r.NewStyle().Foreground(lipgloss.Color(config.HUDColor)).Bold(true),
			hudHint:  r.NewStyle().Foreground(lipgloss.Color(config.HUDColor)).Faint(true),
			hudError: r.NewStyle().Foreground(lipgloss.Color(config.ErrorColor)).Bold(true),
		},
	}
}

func (h *ansiHUD) draw(w io.Writer, s *State, width, height int) error {
	for _, line := range hudLines(s) {
		col, row := line.position(width, height)
		text := object.Text{X: col, Y: row, Value: line.Text, Style: h.styles[line.Kind]}
		if err := text.Draw(w); err != nil {
			return err
		}
	}
	return nil
}

// screenHUD draws the overlay onto a tcell screen.
type screenHUD struct {
	styles map[hudKind]tcell.Style
}

func newScreenHUD() *screenHUD {
	hud := draw.MustColor(config.HUDColor).Tcell()
	errColor := draw.MustColor(config.ErrorColor).Tcell()
	return &screenHUD{
		styles: map[hudKind]tcell.Style{
			hudInfo:  tcell.StyleDefault.Foreground(hud).Bold(true),
			hudHint:  tcell.StyleDefault.Foreground(hud).Dim(true),
			hudError: tcell.StyleDefault.Foreground(errColor).Bold(true),
		},
	}
}

func (h *screenHUD) draw(screen tcell.Screen, s *State, width, height int) {
	for _, line := range hudLines(s) {
		col, row := line.position(width, height)
		x := col - 1
		for _, r := range line.Text {
			if x >= width {
				break
			}
			screen.SetContent(x, row-1, r, nil, h.styles[line.Kind])
			x++
		}
	}
}
