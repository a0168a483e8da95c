// Package stream walks a token stream one value at a time so large documents
// can be decoded member by member instead of as one raw tree.
package stream

import (
	"fmt"
	"io"

	eng "github.com/reoring/figskema/internal/engine"
)

// PreloadedSource is a subtree source that first returns a preloaded token
// (the first token of a value) and then streams the remaining tokens of the
// same value from the underlying source. It returns io.EOF once the value is
// complete.
type PreloadedSource struct {
	inner  eng.TokenSource
	first  eng.Token
	depth  int
	served bool
	done   bool
}

// NewPreloadedSource constructs a subtree source that returns first before
// consuming further tokens from inner.
func NewPreloadedSource(inner eng.TokenSource, first eng.Token) *PreloadedSource {
	return &PreloadedSource{inner: inner, first: first}
}

func (p *PreloadedSource) NextToken() (eng.Token, error) {
	if p.done {
		return eng.Token{}, io.EOF
	}
	tok := p.first
	if p.served {
		var err error
		tok, err = p.inner.NextToken()
		if err != nil {
			if err == io.EOF {
				return eng.Token{}, io.ErrUnexpectedEOF
			}
			return eng.Token{}, err
		}
	}
	p.served = true
	switch tok.Kind {
	case eng.KindBeginObject, eng.KindBeginArray:
		p.depth++
	case eng.KindEndObject, eng.KindEndArray:
		p.depth--
	}
	if p.depth <= 0 && tok.Kind != eng.KindKey {
		p.done = true
	}
	return tok, nil
}

func (p *PreloadedSource) Location() int64 { return p.inner.Location() }

// Members iterates the members of the object that starts at the next token
// of src. For each member fn receives the key and the first token of its
// value and must consume the rest of the value, either through a
// PreloadedSource or with engine.Skip. A value that is not an object yields
// a *NotObjectError.
func Members(src eng.TokenSource, fn func(key string, first eng.Token) error) error {
	tok, err := next(src)
	if err != nil {
		return err
	}
	if tok.Kind != eng.KindBeginObject {
		return &NotObjectError{Got: tok.Kind, Offset: tok.Offset}
	}
	for {
		tok, err = next(src)
		if err != nil {
			return err
		}
		switch tok.Kind {
		case eng.KindEndObject:
			return nil
		case eng.KindKey:
		default:
			return &eng.SyntaxError{Got: tok.Kind, Offset: tok.Offset}
		}
		key := tok.String
		first, err := next(src)
		if err != nil {
			return err
		}
		if err := fn(key, first); err != nil {
			return err
		}
	}
}

// End requires src to be exhausted after the top-level value. A further token
// is reported as a *engine.SyntaxError at its offset.
func End(src eng.TokenSource) error {
	tok, err := src.NextToken()
	switch {
	case err == io.EOF:
		return nil
	case err != nil:
		return err
	}
	return &eng.SyntaxError{Got: tok.Kind, Offset: tok.Offset}
}

// NotObjectError reports that Members was given a value other than an object.
type NotObjectError struct {
	Got    eng.Kind
	Offset int64
}

func (e *NotObjectError) Error() string {
	return fmt.Sprintf("expected object, got %s", e.Got)
}

func next(src eng.TokenSource) (eng.Token, error) {
	tok, err := src.NextToken()
	if err == io.EOF {
		return eng.Token{}, io.ErrUnexpectedEOF
	}
	return tok, err
}
