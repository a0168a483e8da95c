package figma

import (
	"encoding/json"
	"maps"
	"math"
	"slices"

	figskema "github.com/reoring/figskema"
)

// decoder carries the options of one decode call and its first failure. Every
// helper becomes a no-op once err is set, so decode routines read straight
// through and the caller checks err once.
type decoder struct {
	opts  figskema.Options
	err   error
	nodes int
}

func newDecoder(opts figskema.Options) *decoder {
	return &decoder{opts: opts}
}

func (d *decoder) fail(is figskema.Issue) {
	if d.err == nil {
		d.err = figskema.Issues{is}
	}
}

func (d *decoder) failed() bool { return d.err != nil }

// object views raw as a JSON object located at at. A non-object fails with
// shape_mismatch and yields an empty view.
func (d *decoder) object(raw any, at figskema.PathRef) *fields {
	m, ok := raw.(map[string]any)
	if !ok {
		d.fail(at.Issue(figskema.CodeShapeMismatch, "", "expected", "object", "got", kindOf(raw)))
	}
	return &fields{d: d, m: m, at: at}
}

// list views raw as a JSON array located at at.
func (d *decoder) list(raw any, at figskema.PathRef) []any {
	a, ok := raw.([]any)
	if !ok {
		d.fail(at.Issue(figskema.CodeShapeMismatch, "", "expected", "array", "got", kindOf(raw)))
		return nil
	}
	return a
}

// fields reads the members of one JSON object. Absent and null members are
// treated alike.
type fields struct {
	d  *decoder
	m  map[string]any
	at figskema.PathRef
}

func (f *fields) lookup(name string) (any, bool) {
	if f.d.failed() {
		return nil, false
	}
	v, ok := f.m[name]
	if !ok || v == nil {
		return nil, false
	}
	return v, true
}

func (f *fields) has(name string) bool {
	_, ok := f.lookup(name)
	return ok
}

// firstOf returns the first of names present in the object.
func (f *fields) firstOf(names []string) (string, bool) {
	for _, n := range names {
		if f.has(n) {
			return n, true
		}
	}
	return "", false
}

func (f *fields) missing(name string) {
	f.d.fail(f.at.Field(name).Issue(figskema.CodeRequired, "", "field", name))
}

func (f *fields) mismatch(name, expected string, got any) {
	f.d.fail(f.at.Field(name).Issue(figskema.CodeShapeMismatch, "", "expected", expected, "got", kindOf(got)))
}

func (f *fields) String(name string) string {
	v, ok := f.lookup(name)
	if !ok {
		f.missing(name)
		return ""
	}
	return f.asString(name, v)
}

func (f *fields) StringOr(name, def string) string {
	v, ok := f.lookup(name)
	if !ok {
		return def
	}
	return f.asString(name, v)
}

func (f *fields) OptString(name string) *string {
	v, ok := f.lookup(name)
	if !ok {
		return nil
	}
	s := f.asString(name, v)
	return &s
}

func (f *fields) asString(name string, v any) string {
	s, ok := v.(string)
	if !ok {
		f.mismatch(name, "string", v)
	}
	return s
}

func (f *fields) Float(name string) float64 {
	v, ok := f.lookup(name)
	if !ok {
		f.missing(name)
		return 0
	}
	return f.asFloat(name, v)
}

func (f *fields) FloatOr(name string, def float64) float64 {
	v, ok := f.lookup(name)
	if !ok {
		return def
	}
	return f.asFloat(name, v)
}

func (f *fields) OptFloat(name string) *float64 {
	v, ok := f.lookup(name)
	if !ok {
		return nil
	}
	x := f.asFloat(name, v)
	return &x
}

func (f *fields) asFloat(name string, v any) float64 {
	x, ok := toFloat(v)
	if !ok {
		f.mismatch(name, "number", v)
	}
	return x
}

func (f *fields) Int(name string) int {
	v, ok := f.lookup(name)
	if !ok {
		f.missing(name)
		return 0
	}
	x, ok := toInt(v)
	if !ok {
		f.mismatch(name, "integer", v)
	}
	return x
}

func (f *fields) Bool(name string) bool {
	v, ok := f.lookup(name)
	if !ok {
		f.missing(name)
		return false
	}
	return f.asBool(name, v)
}

func (f *fields) BoolOr(name string, def bool) bool {
	v, ok := f.lookup(name)
	if !ok {
		return def
	}
	return f.asBool(name, v)
}

func (f *fields) OptBool(name string) *bool {
	v, ok := f.lookup(name)
	if !ok {
		return nil
	}
	b := f.asBool(name, v)
	return &b
}

func (f *fields) asBool(name string, v any) bool {
	b, ok := v.(bool)
	if !ok {
		f.mismatch(name, "boolean", v)
	}
	return b
}

// Object returns the required nested object name.
func (f *fields) Object(name string) *fields {
	v, ok := f.lookup(name)
	if !ok {
		f.missing(name)
		return &fields{d: f.d, at: f.at.Field(name)}
	}
	return f.d.object(v, f.at.Field(name))
}

// OptObject returns the nested object name when present.
func (f *fields) OptObject(name string) (*fields, bool) {
	v, ok := f.lookup(name)
	if !ok {
		return nil, false
	}
	return f.d.object(v, f.at.Field(name)), true
}

// List returns the required nested array name and its location.
func (f *fields) List(name string) ([]any, figskema.PathRef) {
	at := f.at.Field(name)
	v, ok := f.lookup(name)
	if !ok {
		f.missing(name)
		return nil, at
	}
	return f.d.list(v, at), at
}

// OptList returns the nested array name when present and nil otherwise.
func (f *fields) OptList(name string) ([]any, figskema.PathRef) {
	at := f.at.Field(name)
	v, ok := f.lookup(name)
	if !ok {
		return nil, at
	}
	return f.d.list(v, at), at
}

// Each calls fn for every member of the nested object name in key order.
// Absent objects have no members.
func (f *fields) Each(name string, fn func(key string, v any, at figskema.PathRef)) {
	obj, ok := f.OptObject(name)
	if !ok {
		return
	}
	for _, k := range slices.Sorted(maps.Keys(obj.m)) {
		if f.d.failed() {
			return
		}
		fn(k, obj.m[k], obj.at.Field(k))
	}
}

func toFloat(v any) (float64, bool) {
	switch x := v.(type) {
	case json.Number:
		fl, err := x.Float64()
		return fl, err == nil
	case float64:
		return x, true
	case int:
		return float64(x), true
	case int64:
		return float64(x), true
	}
	return 0, false
}

func toInt(v any) (int, bool) {
	if n, ok := v.(json.Number); ok {
		if i, err := n.Int64(); err == nil {
			return int(i), true
		}
	}
	fl, ok := toFloat(v)
	if !ok || fl != math.Trunc(fl) || math.IsInf(fl, 0) {
		return 0, false
	}
	// 2^63 is exact as a float64; anything at or past it overflows int64.
	if fl < math.MinInt64 || fl >= -math.MinInt64 {
		return 0, false
	}
	return int(fl), true
}

func kindOf(v any) string {
	switch v.(type) {
	case nil:
		return "null"
	case map[string]any:
		return "object"
	case []any:
		return "array"
	case string:
		return "string"
	case bool:
		return "boolean"
	case json.Number, float64, int, int64:
		return "number"
	}
	return "unknown"
}
