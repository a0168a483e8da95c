package vectorpath

import (
	"fmt"
	"strconv"

	figskema "github.com/reoring/figskema"
)

// SyntaxError describes where and why a path string is malformed. It is the
// Cause of the malformed_path Issue returned by Parse.
type SyntaxError struct {
	Reason string
	Offset int // byte offset into the path string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("malformed path at offset %d: %s", e.Offset, e.Reason)
}

var arity = map[byte]struct {
	op Op
	n  int
}{
	'M': {MoveTo, 2},
	'L': {LineTo, 2},
	'C': {CubicTo, 6},
	'Z': {Close, 0},
}

// Parse structures a path string into commands. An empty string yields no
// commands. A line back to the subpath start that is immediately closed is
// folded into the Close command.
//
// Failures are figskema.Issues with code malformed_path; the Issue carries the
// byte offset and a *SyntaxError cause.
func Parse(s string) (Commands, error) {
	sc := scanner{s: s}
	var (
		out   Commands
		start Point // current subpath start
		mIdx  = -1  // index of the current subpath's MoveTo
	)
	for {
		sc.skipSeparators()
		if sc.done() {
			return out, nil
		}
		at := sc.pos
		c := s[at]
		if isNumberStart(c) {
			return nil, malformed(at, "unexpected number without a command")
		}
		spec, ok := arity[c]
		if !ok {
			return nil, malformed(at, fmt.Sprintf("unsupported command %q", c))
		}
		sc.pos++

		var nums [6]float64
		for i := 0; i < spec.n; i++ {
			sc.skipSeparators()
			if sc.done() || !isNumberStart(s[sc.pos]) {
				return nil, malformed(sc.pos, fmt.Sprintf("command %c needs %d operands, got %d", c, spec.n, i))
			}
			f, err := sc.number()
			if err != nil {
				return nil, err
			}
			nums[i] = f
		}

		cmd := Command{Op: spec.op}
		switch spec.op {
		case MoveTo:
			cmd.To = Point{nums[0], nums[1]}
			start, mIdx = cmd.To, len(out)
		case LineTo:
			cmd.To = Point{nums[0], nums[1]}
		case CubicTo:
			cmd.Ctrl1 = Point{nums[0], nums[1]}
			cmd.Ctrl2 = Point{nums[2], nums[3]}
			cmd.To = Point{nums[4], nums[5]}
		case Close:
			if n := len(out); n > 0 && n-1 > mIdx && out[n-1].Op == LineTo && out[n-1].To == start {
				out = out[:n-1]
			}
		}
		out = append(out, cmd)
	}
}

func malformed(offset int, reason string) error {
	return figskema.Issues{{
		Path:    "/",
		Code:    figskema.CodeMalformedPath,
		Message: figskema.Message(figskema.CodeMalformedPath, map[string]any{"reason": reason}),
		Offset:  int64(offset),
		Params:  map[string]any{"reason": reason, "offset": offset},
		Cause:   &SyntaxError{Reason: reason, Offset: offset},
	}}
}

type scanner struct {
	s   string
	pos int
}

func (sc *scanner) done() bool { return sc.pos >= len(sc.s) }

func (sc *scanner) skipSeparators() {
	for !sc.done() {
		switch sc.s[sc.pos] {
		case ' ', '\t', '\n', '\r', ',':
			sc.pos++
		default:
			return
		}
	}
}

// number scans [sign] digits [. digits] [e [sign] digits].
func (sc *scanner) number() (float64, error) {
	begin := sc.pos
	if c := sc.s[sc.pos]; c == '+' || c == '-' {
		sc.pos++
	}
	digits := sc.digits()
	if !sc.done() && sc.s[sc.pos] == '.' {
		sc.pos++
		digits += sc.digits()
	}
	if digits == 0 {
		return 0, malformed(begin, "invalid number")
	}
	if !sc.done() && (sc.s[sc.pos] == 'e' || sc.s[sc.pos] == 'E') {
		mark := sc.pos
		sc.pos++
		if !sc.done() && (sc.s[sc.pos] == '+' || sc.s[sc.pos] == '-') {
			sc.pos++
		}
		if sc.digits() == 0 {
			return 0, malformed(mark, "invalid exponent")
		}
	}
	f, err := strconv.ParseFloat(sc.s[begin:sc.pos], 64)
	if err != nil {
		return 0, malformed(begin, "invalid number")
	}
	return f, nil
}

func (sc *scanner) digits() int {
	n := 0
	for !sc.done() && sc.s[sc.pos] >= '0' && sc.s[sc.pos] <= '9' {
		sc.pos++
		n++
	}
	return n
}

func isNumberStart(c byte) bool {
	return (c >= '0' && c <= '9') || c == '-' || c == '+' || c == '.'
}
