package figma

import (
	"fmt"

	figskema "github.com/reoring/figskema"
)

// discriminatorField names the member carrying the variant tag in every tag
// space.
const discriminatorField = "type"

// variantTable maps the tags of one tag space to the routines decoding the
// matching concrete variant. Tables are static and never mutated after init.
type variantTable[K ~string, T any] struct {
	space    string
	routines map[K]func(*fields) T
}

// tag reads the discriminator of f. A missing tag fails with
// discriminator_missing.
func (t *variantTable[K, T]) tag(f *fields) (K, bool) {
	v, ok := f.lookup(discriminatorField)
	if !ok {
		f.d.fail(f.at.Field(discriminatorField).Issue(figskema.CodeDiscriminatorMissing, "",
			"field", discriminatorField, "space", t.space))
		return "", false
	}
	s, ok := v.(string)
	if !ok {
		f.mismatch(discriminatorField, "string", v)
		return "", false
	}
	return K(s), true
}

// decodeOne decodes a single tagged object. An unregistered tag fails with
// unknown_variant carrying the tag.
func (t *variantTable[K, T]) decodeOne(f *fields) T {
	var zero T
	if f.d.failed() {
		return zero
	}
	tag, ok := t.tag(f)
	if !ok {
		return zero
	}
	routine, ok := t.routines[tag]
	if !ok {
		f.d.fail(f.at.Field(discriminatorField).Issue(figskema.CodeUnknownVariant, "",
			"tag", string(tag), "space", t.space))
		return zero
	}
	return routine(f)
}

// decodeList decodes a tagged array in input order. Any failure discards the
// whole list.
func (t *variantTable[K, T]) decodeList(d *decoder, raw []any, at figskema.PathRef) []T {
	out := make([]T, 0, len(raw))
	for i, v := range raw {
		x := t.decodeOne(d.object(v, at.Index(i)))
		if d.failed() {
			return nil
		}
		out = append(out, x)
	}
	return out
}

// decodeField decodes the optional tagged array name of f. Absent arrays
// yield an empty, non-nil slice.
func (t *variantTable[K, T]) decodeField(f *fields, name string) []T {
	raw, at := f.OptList(name)
	if f.d.failed() {
		return nil
	}
	return t.decodeList(f.d, raw, at)
}

// mustCover panics when a declared tag has no routine.
func (t *variantTable[K, T]) mustCover(tags []K) {
	for _, tag := range tags {
		if _, ok := t.routines[tag]; !ok {
			panic(fmt.Sprintf("figma: %s tag %q has no decode routine", t.space, tag))
		}
	}
}

var (
	nodeTable   *variantTable[NodeType, Node]
	paintTable  *variantTable[PaintType, Paint]
	effectTable *variantTable[EffectType, Effect]
)

func init() {
	nodeTable = &variantTable[NodeType, Node]{space: "node", routines: nodeRoutines()}
	paintTable = &variantTable[PaintType, Paint]{space: "paint", routines: paintRoutines()}
	effectTable = &variantTable[EffectType, Effect]{space: "effect", routines: effectRoutines()}

	nodeTable.mustCover(NodeTypes())
	paintTable.mustCover(PaintTypes())
	effectTable.mustCover(EffectTypes())
}
