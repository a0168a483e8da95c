package vectorpath

import (
	"math"
	"strconv"
	"strings"
)

// Op identifies a drawing command.
type Op uint8

const (
	MoveTo Op = iota + 1
	LineTo
	CubicTo
	Close
)

func (o Op) String() string {
	switch o {
	case MoveTo:
		return "M"
	case LineTo:
		return "L"
	case CubicTo:
		return "C"
	case Close:
		return "Z"
	}
	return "Op(" + strconv.Itoa(int(o)) + ")"
}

// Point is an absolute coordinate pair.
type Point struct {
	X, Y float64
}

// Command is one drawing command. Ctrl1 and Ctrl2 are set for CubicTo only;
// To is unset for Close.
type Command struct {
	Op    Op
	Ctrl1 Point
	Ctrl2 Point
	To    Point
}

// Points returns the coordinate pairs carried by the command in wire order.
func (c Command) Points() []Point {
	switch c.Op {
	case MoveTo, LineTo:
		return []Point{c.To}
	case CubicTo:
		return []Point{c.Ctrl1, c.Ctrl2, c.To}
	}
	return nil
}

func (c Command) String() string {
	b := &strings.Builder{}
	b.WriteString(c.Op.String())
	for _, p := range c.Points() {
		b.WriteByte(' ')
		b.WriteString(strconv.FormatFloat(p.X, 'g', -1, 64))
		b.WriteByte(' ')
		b.WriteString(strconv.FormatFloat(p.Y, 'g', -1, 64))
	}
	return b.String()
}

// Commands is an ordered sequence of drawing commands.
type Commands []Command

// Offset returns a copy with every coordinate pair, control points included,
// translated by (dx, dy). The receiver is not modified.
func (cs Commands) Offset(dx, dy float64) Commands {
	out := make(Commands, len(cs))
	for i, c := range cs {
		if c.Op != Close {
			c.To = Point{c.To.X + dx, c.To.Y + dy}
		}
		if c.Op == CubicTo {
			c.Ctrl1 = Point{c.Ctrl1.X + dx, c.Ctrl1.Y + dy}
			c.Ctrl2 = Point{c.Ctrl2.X + dx, c.Ctrl2.Y + dy}
		}
		out[i] = c
	}
	return out
}

// Bounds returns the axis-aligned box over every coordinate pair. Spline
// control points count. ok is false when no command carries coordinates.
func (cs Commands) Bounds() (r Rect, ok bool) {
	r = Rect{MinX: math.Inf(1), MinY: math.Inf(1), MaxX: math.Inf(-1), MaxY: math.Inf(-1)}
	for _, c := range cs {
		for _, p := range c.Points() {
			r.MinX = math.Min(r.MinX, p.X)
			r.MinY = math.Min(r.MinY, p.Y)
			r.MaxX = math.Max(r.MaxX, p.X)
			r.MaxY = math.Max(r.MaxY, p.Y)
			ok = true
		}
	}
	if !ok {
		return Rect{}, false
	}
	return r, true
}

// String renders the commands in the canonical single-space form.
func (cs Commands) String() string {
	parts := make([]string, len(cs))
	for i, c := range cs {
		parts[i] = c.String()
	}
	return strings.Join(parts, " ")
}

// Rect is an axis-aligned bounding box.
type Rect struct {
	MinX float64 `json:"minX"`
	MinY float64 `json:"minY"`
	MaxX float64 `json:"maxX"`
	MaxY float64 `json:"maxY"`
}

func (r Rect) Width() float64  { return r.MaxX - r.MinX }
func (r Rect) Height() float64 { return r.MaxY - r.MinY }

// Union returns the smallest Rect covering both.
func (r Rect) Union(o Rect) Rect {
	return Rect{
		MinX: math.Min(r.MinX, o.MinX),
		MinY: math.Min(r.MinY, o.MinY),
		MaxX: math.Max(r.MaxX, o.MaxX),
		MaxY: math.Max(r.MaxY, o.MaxY),
	}
}

// Translate shifts the box by (dx, dy).
func (r Rect) Translate(dx, dy float64) Rect {
	return Rect{MinX: r.MinX + dx, MinY: r.MinY + dy, MaxX: r.MaxX + dx, MaxY: r.MaxY + dy}
}
