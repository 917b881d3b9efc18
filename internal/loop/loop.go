// Package loop runs circle simulations frame by frame and drives the terminal frontends.
package loop

import (
	"bufio"
	"context"
	"io"
	"time"

	"github.com/tomz197/circles/internal/config"
	"github.com/tomz197/circles/internal/draw"
	"github.com/tomz197/circles/internal/input"
	"github.com/tomz197/circles/internal/object"
)

// Run drives a session on a raw ANSI terminal with the Input → Update → Draw
// cycle. It returns when the user quits, the input ends or ctx is canceled.
func Run(ctx context.Context, r *bufio.Reader, w io.Writer, opts Options) error {
	opts = opts.withDefaults()
	state, err := NewState(opts.Settings, opts.Rand)
	if err != nil {
		return err
	}

	stream := input.StartStream(r)
	out := draw.NewChunkWriter(w)
	profile := colorProfile(opts.Settings.ColorProfile)
	hud := newANSIHUD(w, profile)
	hooks := opts.hooks()
	frameTime := config.FrameTime(opts.Settings.FPS)

	canvas := draw.NewCanvas(0, 0)
	canvas.SetProfile(profile)

	draw.HideCursor(out)
	draw.EnableMouse(out)
	draw.ClearScreen(out)
	if err := out.Flush(); err != nil {
		return err
	}
	defer func() {
		draw.DisableMouse(out)
		draw.ClearScreen(out)
		draw.ShowCursor(out)
		_ = out.Flush()
	}()

	opts.Logger.Info("session started", "scene", state.Scene, "fps", opts.Settings.FPS)
	defer func() {
		opts.Logger.Info("session ended", "frames", state.Frame, "collisions", state.Collisions)
	}()

	for state.Running {
		frameStart := time.Now()

		// ===== INPUT PHASE =====
		inp := input.ReadInput(stream)
		handleInput(state, inp, canvas.TerminalToLogical, opts.Logger)
		if stream.Closed() {
			state.Running = false
		}

		// ===== UPDATE PHASE =====
		updateScreen(state, canvas, opts)
		if err := state.Step(hooks); err != nil {
			return err
		}

		// ===== DRAW PHASE =====
		if err := drawFrame(state, out, canvas, hud); err != nil {
			return err
		}

		// ===== FRAME TIMING =====
		wait := frameTime - time.Since(frameStart)
		if wait <= 0 {
			wait = 0
		}
		select {
		case <-ctx.Done():
			return nil
		case <-time.After(wait):
		}
	}

	return nil
}

// updateScreen follows terminal resizes. The logical area maps 1:1 onto the
// canvas sub-pixels, so a resize rebuilds the scene for the new bounds.
func updateScreen(state *State, canvas *draw.Canvas, opts Options) {
	termWidth, termHeight, err := draw.TerminalSizeRawWith(opts.TermSizeFunc)
	if err != nil {
		return
	}
	if state.built && termWidth == canvas.TerminalWidth() && termHeight == canvas.TerminalHeight() {
		return
	}

	canvas.ResizeLogical(termWidth, termHeight)
	resize(state, termWidth, termHeight*2, opts.Logger)
}

// drawFrame clears the screen and draws all objects and the HUD.
func drawFrame(state *State, out *draw.ChunkWriter, canvas *draw.Canvas, hud *ansiHUD) error {
	draw.ClearScreen(out)
	canvas.Clear()

	ctx := object.DrawContext{
		Canvas: canvas,
		Writer: out,
	}
	for _, obj := range state.Objects {
		if err := obj.Draw(ctx); err != nil {
			return err
		}
	}

	canvas.Render(out)

	// HUD after the canvas so it stays on top
	if err := hud.draw(out, state, canvas.TerminalWidth(), canvas.TerminalHeight()); err != nil {
		return err
	}

	return out.Flush()
}
