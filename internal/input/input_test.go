package input

import (
	"bufio"
	"strings"
	"testing"
	"time"
)

func TestParse_Keys(t *testing.T) {
	tests := []struct {
		name  string
		input string
		check func(Input) bool
	}{
		{name: "quit_lower", input: "q", check: func(in Input) bool { return in.Quit }},
		{name: "quit_ctrl_c", input: "\x03", check: func(in Input) bool { return in.Quit }},
		{name: "escape", input: "\x1b", check: func(in Input) bool { return in.Escape && !in.Quit }},
		{name: "reset", input: "R", check: func(in Input) bool { return in.Reset }},
		{name: "pause_space", input: " ", check: func(in Input) bool { return in.Pause }},
		{name: "next_scene", input: "s", check: func(in Input) bool { return in.NextScene }},
		{name: "number", input: "7", check: func(in Input) bool { return in.Number == 7 }},
		{name: "zero_ignored", input: "0", check: func(in Input) bool { return in.Number == -1 }},
		{name: "arrow_ignored", input: "\x1b[A", check: func(in Input) bool { return !in.Escape && !in.Quit }},
		{name: "ctrl_arrow_ignored", input: "\x1b[1;5A", check: func(in Input) bool { return !in.Escape && in.Number == -1 }},
		{name: "function_key_ignored", input: "\x1b[15~", check: func(in Input) bool { return !in.Escape && in.Number == -1 }},
		{name: "ss3_f1_ignored", input: "\x1bOP", check: func(in Input) bool { return !in.Escape && !in.Pause && !in.Quit }},
		{name: "ss3_arrow_ignored", input: "\x1bOA", check: func(in Input) bool { return !in.Escape && !in.Reset }},
		{name: "escape_then_key", input: "\x1bq", check: func(in Input) bool { return in.Escape && in.Quit }},
		{name: "nothing", input: "", check: func(in Input) bool { return !in.Quit && in.Number == -1 && !in.Pointer.Moved }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := Parse([]byte(tt.input))
			if !tt.check(in) {
				t.Errorf("Parse(%q) = %+v", tt.input, in)
			}
		})
	}
}

func TestParse_Mouse(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected Pointer
	}{
		{name: "motion", input: "\x1b[<35;10;5M", expected: Pointer{Col: 9, Row: 4, Moved: true}},
		{name: "press", input: "\x1b[<0;1;1M", expected: Pointer{Col: 0, Row: 0, Moved: true}},
		{name: "release", input: "\x1b[<0;3;4m", expected: Pointer{Col: 2, Row: 3, Moved: true}},
		{name: "last_report_wins", input: "\x1b[<35;2;2M\x1b[<35;80;24M", expected: Pointer{Col: 79, Row: 23, Moved: true}},
		{name: "malformed", input: "\x1b[<35;x;5M", expected: Pointer{}},
		{name: "missing_field", input: "\x1b[<35;5M", expected: Pointer{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := Parse([]byte(tt.input))
			if in.Pointer != tt.expected {
				t.Errorf("Parse(%q).Pointer = %+v, expected %+v", tt.input, in.Pointer, tt.expected)
			}
		})
	}
}

func TestParse_MouseAndKeysTogether(t *testing.T) {
	in := Parse([]byte("r\x1b[<35;4;6Mq"))
	if !in.Reset || !in.Quit {
		t.Errorf("expected reset and quit, got %+v", in)
	}
	if in.Pointer != (Pointer{Col: 3, Row: 5, Moved: true}) {
		t.Errorf("Pointer = %+v", in.Pointer)
	}
}

func TestParse_KeepsPartialSequence(t *testing.T) {
	buf := []byte("r\x1b[<35;12")

	in, consumed := parse(buf, true)
	if consumed != 1 {
		t.Fatalf("consumed = %d, expected 1", consumed)
	}
	if !in.Reset || in.Pointer.Moved {
		t.Errorf("unexpected input %+v", in)
	}

	// The remainder completes on the next batch
	rest := append(buf[consumed:], []byte(";3M")...)
	in, consumed = parse(rest, true)
	if consumed != len(rest) {
		t.Errorf("consumed = %d, expected %d", consumed, len(rest))
	}
	if in.Pointer != (Pointer{Col: 11, Row: 2, Moved: true}) {
		t.Errorf("Pointer = %+v", in.Pointer)
	}
}

func TestParse_KeepsPartialKeySequence(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		consumed int
	}{
		{name: "lone_escape", input: "s\x1b", consumed: 1},
		{name: "ss3_prefix", input: "s\x1bO", consumed: 1},
		{name: "csi_params", input: "s\x1b[1;5", consumed: 1},
		{name: "complete", input: "s\x1b[1;5A", consumed: 7},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in, consumed := parse([]byte(tt.input), true)
			if consumed != tt.consumed {
				t.Errorf("consumed = %d, expected %d", consumed, tt.consumed)
			}
			if !in.NextScene || in.Escape || in.Number != -1 {
				t.Errorf("unexpected input %+v", in)
			}
		})
	}
}

func TestStream(t *testing.T) {
	s := StartStream(bufio.NewReader(strings.NewReader("s\x1b[<35;5;5Mq")))

	deadline := time.Now().Add(2 * time.Second)
	var seenQuit, seenScene, seenPointer bool
	for time.Now().Before(deadline) && !(seenQuit && seenScene && seenPointer && s.Closed()) {
		in := ReadInput(s)
		seenQuit = seenQuit || in.Quit
		seenScene = seenScene || in.NextScene
		seenPointer = seenPointer || in.Pointer.Moved
		time.Sleep(time.Millisecond)
	}

	if !seenQuit || !seenScene || !seenPointer {
		t.Errorf("quit=%v scene=%v pointer=%v", seenQuit, seenScene, seenPointer)
	}
	if !s.Closed() {
		t.Error("expected stream to report closed after EOF")
	}
}
