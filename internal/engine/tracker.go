package engine

// KeyTracker follows container nesting for decoders that report object keys
// and string values through the same token type (encoding/json, go-json).
type KeyTracker struct {
	stack []trackFrame
}

type trackFrame struct {
	object       bool
	expectingKey bool
}

// Delim converts an opening or closing delimiter into its token kind and
// updates the nesting state.
func (t *KeyTracker) Delim(d rune) Kind {
	switch d {
	case '{':
		t.stack = append(t.stack, trackFrame{object: true, expectingKey: true})
		return KindBeginObject
	case '[':
		t.stack = append(t.stack, trackFrame{})
		return KindBeginArray
	case '}':
		t.pop()
		return KindEndObject
	default:
		t.pop()
		return KindEndArray
	}
}

// String classifies a string token as a key or a string value.
func (t *KeyTracker) String() Kind {
	if n := len(t.stack); n > 0 {
		top := &t.stack[n-1]
		if top.object && top.expectingKey {
			top.expectingKey = false
			return KindKey
		}
	}
	t.Scalar()
	return KindString
}

// Scalar records that a non-string scalar value completed a member.
func (t *KeyTracker) Scalar() {
	if n := len(t.stack); n > 0 {
		top := &t.stack[n-1]
		if top.object && !top.expectingKey {
			top.expectingKey = true
		}
	}
}

func (t *KeyTracker) pop() {
	if n := len(t.stack); n > 0 {
		t.stack = t.stack[:n-1]
	}
	// a closed container is itself a completed member value
	t.Scalar()
}
