package engine

import (
	"encoding/json"
	"fmt"
	"io"
)

// Kind represents token kinds from a generic source.
type Kind int

const (
	KindBeginObject Kind = iota
	KindEndObject
	KindBeginArray
	KindEndArray
	KindKey
	KindString
	KindNumber
	KindBool
	KindNull
)

func (k Kind) String() string {
	switch k {
	case KindBeginObject:
		return "{"
	case KindEndObject:
		return "}"
	case KindBeginArray:
		return "["
	case KindEndArray:
		return "]"
	case KindKey:
		return "key"
	case KindString:
		return "string"
	case KindNumber:
		return "number"
	case KindBool:
		return "bool"
	case KindNull:
		return "null"
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Token represents a streaming token with approximate input offset.
type Token struct {
	Kind   Kind
	String string
	Number string
	Bool   bool
	Offset int64
}

// TokenSource is a minimal interface required by the engine.
type TokenSource interface {
	NextToken() (Token, error)
	Location() int64
}

// SyntaxError reports a token that cannot appear at its position.
type SyntaxError struct {
	Got    Kind
	Offset int64
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("unexpected token %s", e.Got)
}

// InvalidInputError reports input a driver rejected before producing any
// token. Offset is -1 when the driver cannot locate the failure.
type InvalidInputError struct {
	Offset int64
	Err    error
}

func (e *InvalidInputError) Error() string { return "invalid JSON: " + e.Err.Error() }
func (e *InvalidInputError) Unwrap() error { return e.Err }

// container is one open object or array on the builder stack.
type container struct {
	obj map[string]any
	arr []any
	key string // pending key when obj != nil
}

// DecodeAnyFromSource builds an "any" value from the streaming token source.
// Objects become map[string]any, arrays []any and numbers json.Number. Nesting
// is tracked on an explicit stack so input depth never grows the call stack.
func DecodeAnyFromSource(src TokenSource) (any, error) {
	var stack []*container
	for {
		tok, err := src.NextToken()
		if err != nil {
			if err == io.EOF {
				return nil, io.ErrUnexpectedEOF
			}
			return nil, err
		}

		var (
			v    any
			done bool // v is a complete value ready to be attached
		)
		switch tok.Kind {
		case KindBeginObject:
			stack = append(stack, &container{obj: make(map[string]any)})
		case KindBeginArray:
			stack = append(stack, &container{arr: []any{}})
		case KindEndObject, KindEndArray:
			n := len(stack)
			if n == 0 {
				return nil, &SyntaxError{Got: tok.Kind, Offset: tok.Offset}
			}
			top := stack[n-1]
			stack = stack[:n-1]
			if top.obj != nil {
				v = top.obj
			} else {
				v = top.arr
			}
			done = true
		case KindKey:
			n := len(stack)
			if n == 0 || stack[n-1].obj == nil {
				return nil, &SyntaxError{Got: tok.Kind, Offset: tok.Offset}
			}
			stack[n-1].key = tok.String
		case KindString:
			v, done = tok.String, true
		case KindNumber:
			v, done = json.Number(tok.Number), true
		case KindBool:
			v, done = tok.Bool, true
		case KindNull:
			v, done = nil, true
		default:
			return nil, &SyntaxError{Got: tok.Kind, Offset: tok.Offset}
		}
		if !done {
			continue
		}
		if len(stack) == 0 {
			return v, nil
		}
		top := stack[len(stack)-1]
		if top.obj != nil {
			top.obj[top.key] = v
			top.key = ""
		} else {
			top.arr = append(top.arr, v)
		}
	}
}

// Skip consumes the value whose first token is first, discarding it.
func Skip(src TokenSource, first Token) error {
	depth := 0
	tok := first
	for {
		switch tok.Kind {
		case KindBeginObject, KindBeginArray:
			depth++
		case KindEndObject, KindEndArray:
			depth--
		}
		if depth <= 0 && tok.Kind != KindKey {
			return nil
		}
		var err error
		tok, err = src.NextToken()
		if err != nil {
			if err == io.EOF {
				return io.ErrUnexpectedEOF
			}
			return err
		}
	}
}
