package figma

import (
	figskema "github.com/reoring/figskema"
	"github.com/reoring/figskema/vectorpath"
)

func decodeColor(f *fields) Color {
	return Color{
		R: f.Float("r"),
		G: f.Float("g"),
		B: f.Float("b"),
		A: f.Float("a"),
	}
}

func decodeVectorValue(f *fields) Vector {
	return Vector{X: f.FloatOr("x", 0), Y: f.FloatOr("y", 0)}
}

func decodeRectangle(f *fields) Rectangle {
	return Rectangle{
		X:      f.Float("x"),
		Y:      f.Float("y"),
		Width:  f.Float("width"),
		Height: f.Float("height"),
	}
}

func decodeArcData(f *fields) ArcData {
	return ArcData{
		StartingAngle: f.Float("startingAngle"),
		EndingAngle:   f.Float("endingAngle"),
		InnerRadius:   f.Float("innerRadius"),
	}
}

func decodeLayoutConstraint(f *fields) LayoutConstraint {
	return LayoutConstraint{
		Vertical:   VerticalConstraint(f.String("vertical")),
		Horizontal: HorizontalConstraint(f.String("horizontal")),
	}
}

func decodeExportSetting(f *fields) ExportSetting {
	c := f.Object("constraint")
	return ExportSetting{
		Suffix: f.String("suffix"),
		Format: ExportFormat(f.String("format")),
		Constraint: ExportConstraint{
			Type:  ExportConstraintType(c.String("type")),
			Value: c.Float("value"),
		},
	}
}

func decodeFlowStartingPoint(f *fields) FlowStartingPoint {
	return FlowStartingPoint{NodeID: f.String("nodeId"), Name: f.String("name")}
}

func decodeDocumentationLink(f *fields) DocumentationLink {
	return DocumentationLink{URI: f.String("uri")}
}

func decodePath(f *fields) vectorpath.Path {
	return vectorpath.Path{
		Data:        f.String("path"),
		WindingRule: vectorpath.WindingRule(f.String("windingRule")),
	}
}

// objects decodes the optional array name with fn applied to each element.
// Absent arrays yield an empty, non-nil slice.
func objects[T any](f *fields, name string, fn func(*fields) T) []T {
	raw, at := f.OptList(name)
	out := make([]T, 0, len(raw))
	for i, v := range raw {
		x := fn(f.d.object(v, at.Index(i)))
		if f.d.failed() {
			return nil
		}
		out = append(out, x)
	}
	return out
}

// numbers decodes the optional numeric array name.
func (f *fields) numbers(name string) []float64 {
	raw, at := f.OptList(name)
	return f.d.numbers(raw, at)
}

func (d *decoder) numbers(raw []any, at figskema.PathRef) []float64 {
	out := make([]float64, 0, len(raw))
	for i, v := range raw {
		x, ok := toFloat(v)
		if !ok {
			d.fail(at.Index(i).Issue(figskema.CodeShapeMismatch, "", "expected", "number", "got", kindOf(v)))
			return nil
		}
		out = append(out, x)
	}
	return out
}

// Transform decodes the required positional matrix name.
func (f *fields) Transform(name string) Transform {
	v, ok := f.lookup(name)
	if !ok {
		f.missing(name)
		return Transform{}
	}
	return f.d.transform(v, f.at.Field(name))
}

// OptTransform decodes the positional matrix name when present.
func (f *fields) OptTransform(name string) *Transform {
	v, ok := f.lookup(name)
	if !ok {
		return nil
	}
	t := f.d.transform(v, f.at.Field(name))
	return &t
}

// transform reads [[a, b, tx], [c, d, ty]].
func (d *decoder) transform(raw any, at figskema.PathRef) Transform {
	var t Transform
	rows, ok := raw.([]any)
	if !ok || len(rows) != 2 {
		d.fail(at.Issue(figskema.CodeShapeMismatch, "", "expected", "2x3 matrix", "got", kindOf(raw)))
		return t
	}
	for i, row := range rows {
		cells, ok := row.([]any)
		if !ok || len(cells) != 3 {
			d.fail(at.Index(i).Issue(figskema.CodeShapeMismatch, "", "expected", "3-element row", "got", kindOf(row)))
			return t
		}
		nums := d.numbers(cells, at.Index(i))
		if d.failed() {
			return t
		}
		copy(t[i][:], nums)
	}
	return t
}

// OptCornerRadii decodes the positional radii name, clockwise from top-left,
// when present.
func (f *fields) OptCornerRadii(name string) *CornerRadii {
	v, ok := f.lookup(name)
	if !ok {
		return nil
	}
	at := f.at.Field(name)
	raw, ok := v.([]any)
	if !ok || len(raw) != 4 {
		f.d.fail(at.Issue(figskema.CodeShapeMismatch, "", "expected", "4-element array", "got", kindOf(v)))
		return nil
	}
	n := f.d.numbers(raw, at)
	if f.d.failed() {
		return nil
	}
	return &CornerRadii{TopLeft: n[0], TopRight: n[1], BottomRight: n[2], BottomLeft: n[3]}
}
