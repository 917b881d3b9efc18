package loop

import (
	"context"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/tomz197/circles/internal/config"
	"github.com/tomz197/circles/internal/draw"
	"github.com/tomz197/circles/internal/input"
	"github.com/tomz197/circles/internal/object"
)

// RunScreen drives a session on an initialized tcell screen. Events are handled
// as they arrive and the simulation steps on a fixed ticker. The caller owns
// the screen and calls Fini.
func RunScreen(ctx context.Context, screen tcell.Screen, opts Options) error {
	opts = opts.withDefaults()
	state, err := NewState(opts.Settings, opts.Rand)
	if err != nil {
		return err
	}

	hud := newScreenHUD()
	hooks := opts.hooks()
	canvas := draw.NewCanvas(0, 0)

	screen.EnableMouse(tcell.MouseMotionEvents)
	defer screen.DisableMouse()
	screen.HideCursor()
	screen.Clear()

	events := make(chan tcell.Event, 100)
	done := make(chan struct{})
	defer close(done)
	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-done:
				return
			}
		}
	}()

	ticker := time.NewTicker(config.FrameTime(opts.Settings.FPS))
	defer ticker.Stop()

	resizeScreen(state, screen, canvas, opts)
	opts.Logger.Info("session started", "scene", state.Scene, "fps", opts.Settings.FPS)

	for state.Running {
		select {
		case <-ctx.Done():
			return nil

		case ev := <-events:
			switch ev := ev.(type) {
			case *tcell.EventResize:
				screen.Sync()
				resizeScreen(state, screen, canvas, opts)
			case *tcell.EventMouse:
				col, row := ev.Position()
				inp := input.Input{Number: -1, Pointer: input.Pointer{Col: col, Row: row, Moved: true}}
				handleInput(state, inp, canvas.TerminalToLogical, opts.Logger)
			case *tcell.EventKey:
				handleInput(state, keyInput(ev), canvas.TerminalToLogical, opts.Logger)
			}

		case <-ticker.C:
			if err := state.Step(hooks); err != nil {
				return err
			}
			if err := drawScreen(state, screen, canvas, hud); err != nil {
				return err
			}
		}
	}

	opts.Logger.Info("session ended", "frames", state.Frame, "collisions", state.Collisions)
	return nil
}

// keyInput translates a tcell key event into the same input the raw terminal
// parser produces for those bytes.
func keyInput(ev *tcell.EventKey) input.Input {
	switch ev.Key() {
	case tcell.KeyRune:
		return input.Parse([]byte(string(ev.Rune())))
	case tcell.KeyCtrlC:
		return input.Parse([]byte{'\x03'})
	case tcell.KeyEscape:
		return input.Parse([]byte{'\x1b'})
	case tcell.KeyTab:
		return input.Parse([]byte{'\t'})
	}
	return input.Input{Number: -1}
}

// resizeScreen matches the canvas and scene bounds to the screen size.
func resizeScreen(state *State, screen tcell.Screen, canvas *draw.Canvas, opts Options) {
	width, height := screen.Size()
	canvas.ResizeLogical(width, height)
	resize(state, width, height*2, opts.Logger)
}

// drawScreen renders objects and the HUD, then shows the frame.
func drawScreen(state *State, screen tcell.Screen, canvas *draw.Canvas, hud *screenHUD) error {
	canvas.Clear()

	ctx := object.DrawContext{Canvas: canvas}
	for _, obj := range state.Objects {
		if err := obj.Draw(ctx); err != nil {
			return err
		}
	}

	canvas.RenderScreen(screen)
	hud.draw(screen, state, canvas.TerminalWidth(), canvas.TerminalHeight())
	screen.Show()
	return nil
}
