// Package input turns raw terminal bytes into per-frame key and pointer state.
package input

import (
	"bufio"
)

// Pointer is the last pointer position reported by the terminal.
// Col and Row are 0-based terminal cells.
type Pointer struct {
	Col, Row int
	Moved    bool // A pointer report was seen this frame
}

// Input represents the current frame's input state.
// Key flags are edge-triggered: they are set only for the frame in which the
// key arrived, so toggles such as pause fire once per key press.
type Input struct {
	Quit      bool
	Escape    bool
	Reset     bool
	Pause     bool
	NextScene bool
	Number    int // 1-9 when a digit was pressed, -1 otherwise
	Pointer   Pointer
}

// maxSequenceLen bounds how far an unterminated escape sequence is scanned.
const maxSequenceLen = 32

// Stream delivers input bytes via a channel.
type Stream struct {
	ch      chan byte
	pending []byte // Incomplete escape sequence carried to the next frame
	closed  bool
}

// StartStream spawns a goroutine that reads from r and sends bytes to the stream.
func StartStream(r *bufio.Reader) *Stream {
	s := &Stream{
		ch: make(chan byte, 256),
	}
	go func() {
		for {
			b, err := r.ReadByte()
			if err != nil {
				close(s.ch)
				return
			}
			s.ch <- b
		}
	}()
	return s
}

// Closed reports whether the underlying reader has ended.
func (s *Stream) Closed() bool {
	return s.closed
}

// ReadInput drains all available bytes from the stream (non-blocking) and parses them.
// An escape sequence cut off at the end of the batch is kept for the next call,
// unless no new bytes arrived since, in which case it is parsed as-is.
func ReadInput(s *Stream) Input {
	buf := s.pending
	carried := len(buf)
	s.pending = nil

	// Drain all available bytes
drain:
	for {
		select {
		case b, ok := <-s.ch:
			if !ok {
				s.closed = true
				break drain
			}
			buf = append(buf, b)
		default:
			break drain
		}
	}

	in, consumed := parse(buf, !s.closed && len(buf) > carried)
	if consumed < len(buf) {
		s.pending = append([]byte(nil), buf[consumed:]...)
	}
	return in
}

// Parse parses a complete batch of input bytes.
func Parse(buf []byte) Input {
	in, _ := parse(buf, false)
	return in
}

// parse decodes keys and SGR mouse reports from buf. When keepPartial is true an
// unterminated escape sequence at the end of buf is left unconsumed.
func parse(buf []byte, keepPartial bool) (Input, int) {
	in := Input{Number: -1}

	for i := 0; i < len(buf); {
		if buf[i] != '\x1b' {
			applyByte(&in, buf[i])
			i++
			continue
		}

		n, complete := sequenceLen(buf[i:])
		if !complete {
			if keepPartial {
				// Possibly a sequence still in flight
				return in, i
			}
			if n == 1 {
				in.Escape = true
			}
			// Cut-off sequences are dropped
			break
		}

		switch {
		case n == 1:
			in.Escape = true
		case n > 3 && buf[i+1] == '[' && buf[i+2] == '<':
			// SGR mouse: ESC [ < Btn ; X ; Y M/m
			if col, row, ok := parseSGRMouse(buf[i : i+n]); ok {
				in.Pointer = Pointer{Col: col, Row: row, Moved: true}
			}
		}
		// Other CSI and SS3 sequences (arrows, function keys) are ignored
		i += n
	}

	return in, len(buf)
}

// sequenceLen returns the length of the escape sequence at the start of data.
// A lone ESC, or ESC followed by a byte that cannot start a sequence, is the
// Escape key and has length 1. complete is false when data ends before the
// sequence does.
func sequenceLen(data []byte) (n int, complete bool) {
	if len(data) < 2 {
		return 1, false
	}

	switch data[1] {
	case '[':
		mouse := len(data) > 2 && data[2] == '<'
		for j := 2; j < len(data) && j < maxSequenceLen; j++ {
			b := data[j]
			if b < 0x20 || b > 0x7e {
				// Malformed, drop what was read so far
				return j, true
			}
			if mouse {
				// SGR mouse reports end in M or m
				if b == 'M' || b == 'm' {
					return j + 1, true
				}
				continue
			}
			// CSI: parameter and intermediate bytes, then a final byte in 0x40-0x7E
			if b >= 0x40 {
				return j + 1, true
			}
		}
		if len(data) >= maxSequenceLen {
			return maxSequenceLen, true
		}
		return len(data), false
	case 'O':
		// SS3: ESC O <final>
		if len(data) < 3 {
			return len(data), false
		}
		return 3, true
	default:
		return 1, true
	}
}

// applyByte updates the input state for a single key byte.
func applyByte(in *Input, b byte) {
	switch b {
	case 'q', 'Q', '\x03':
		in.Quit = true
	case '\x1b':
		in.Escape = true
	case 'r', 'R':
		in.Reset = true
	case ' ', 'p', 'P':
		in.Pause = true
	case 's', 'S', '\t':
		in.NextScene = true
	case '1', '2', '3', '4', '5', '6', '7', '8', '9':
		in.Number = int(b - '0')
	}
}

// parseSGRMouse parses a complete mouse report "ESC [ < Btn ; X ; Y M/m".
// ok is false for malformed reports.
func parseSGRMouse(seq []byte) (col, row int, ok bool) {
	last := seq[len(seq)-1]
	if len(seq) < 4 || (last != 'M' && last != 'm') {
		return 0, 0, false
	}

	_, x, y, valid := parseSGRParams(seq[3 : len(seq)-1])
	if !valid || x < 1 || y < 1 {
		return 0, 0, false
	}
	return x - 1, y - 1, true // Convert to 0-indexed
}

// parseSGRParams extracts btn, x, y from "Btn;X;Y" format
func parseSGRParams(data []byte) (btn, x, y int, ok bool) {
	state := 0 // 0=btn, 1=x, 2=y
	val := 0
	digits := 0

	for _, b := range data {
		switch {
		case b == ';':
			if digits == 0 {
				return 0, 0, 0, false
			}
			switch state {
			case 0:
				btn = val
			case 1:
				x = val
			}
			state++
			val = 0
			digits = 0
			if state > 2 {
				return 0, 0, 0, false
			}
		case b >= '0' && b <= '9':
			val = val*10 + int(b-'0')
			digits++
			if val > 9999 { // Sanity limit
				return 0, 0, 0, false
			}
		default:
			return 0, 0, 0, false
		}
	}

	if state != 2 || digits == 0 {
		return 0, 0, 0, false
	}
	return btn, x, val, true
}
