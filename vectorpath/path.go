// Package vectorpath parses the path mini-language used by vector geometry
// (fillGeometry, strokeGeometry): absolute M, L, C and Z commands separated by
// whitespace. Quadratic segments are expected to be normalized to cubic by
// the producer and are rejected.
package vectorpath

// WindingRule determines whether a point is inside a closed path.
type WindingRule string

const (
	NonZero WindingRule = "NONZERO"
	EvenOdd WindingRule = "EVENODD"
	// None marks an open path without fill.
	None WindingRule = "NONE"
)

// Path holds the raw command string and its winding rule. Commands are parsed
// on demand; a malformed string fails only the call that parses it.
type Path struct {
	Data        string      `json:"path"`
	WindingRule WindingRule `json:"windingRule"`
}

// Commands parses Data. Each call parses afresh and returns an independent
// slice.
func (p Path) Commands() (Commands, error) { return Parse(p.Data) }

// Bounds parses Data and returns the bounding box of its coordinates.
func (p Path) Bounds() (Rect, bool, error) {
	cs, err := p.Commands()
	if err != nil {
		return Rect{}, false, err
	}
	r, ok := cs.Bounds()
	return r, ok, nil
}
