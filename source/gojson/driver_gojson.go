//go:build gojson

// Package gojson provides a figskema.JSONDriver backed by goccy/go-json. The
// go-json driver is compiled in with the gojson build tag; without it Driver
// falls back to encoding/json.
package gojson

import (
	"bytes"
	"errors"
	"io"
	"strconv"

	j "github.com/goccy/go-json"

	figskema "github.com/reoring/figskema"
	eng "github.com/reoring/figskema/internal/engine"
)

// Driver returns a figskema.JSONDriver backed by goccy/go-json.
func Driver() figskema.JSONDriver { return driverGoJSON{} }

type driverGoJSON struct{}

func (driverGoJSON) NewReader(r io.Reader) figskema.Source {
	return figskema.SourceFromEngine(NewReader(r))
}
func (driverGoJSON) NewBytes(b []byte) figskema.Source {
	return figskema.SourceFromEngine(NewBytes(b))
}
func (driverGoJSON) Name() string { return "go-json" }

// ---- engine.TokenSource implementation using go-json Decoder ----

type source struct {
	dec  *j.Decoder
	keys eng.KeyTracker
	err  error
}

// NewReader buffers r and tokenizes it with go-json. The buffered input is
// validated first since Decoder.Token does not check separators.
func NewReader(r io.Reader) eng.TokenSource {
	b, err := io.ReadAll(r)
	if err != nil {
		return &source{err: err}
	}
	return NewBytes(b)
}

// NewBytes validates b and wraps it into an engine.TokenSource using go-json.
// Malformed input, trailing data included, fails on the first NextToken with
// an *engine.InvalidInputError. Validation is bounded by go-json's own nesting
// limit of 10000 containers.
func NewBytes(b []byte) eng.TokenSource {
	if !j.Valid(b) {
		return &source{err: invalid(b)}
	}
	dec := j.NewDecoder(bytes.NewReader(b))
	dec.UseNumber()
	return &source{dec: dec}
}

// invalid describes why b failed validation. Unmarshal is only run on this
// path to recover a message and offset.
func invalid(b []byte) error {
	var v any
	err := j.Unmarshal(b, &v)
	var se *j.SyntaxError
	switch {
	case errors.As(err, &se):
		return &eng.InvalidInputError{Offset: se.Offset, Err: err}
	case err != nil:
		return &eng.InvalidInputError{Offset: -1, Err: err}
	}
	return &eng.InvalidInputError{Offset: -1, Err: errMalformed}
}

var errMalformed = errors.New("malformed input")

func (s *source) NextToken() (eng.Token, error) {
	if s.err != nil {
		return eng.Token{}, s.err
	}
	tok, err := s.dec.Token()
	if err != nil {
		return eng.Token{}, err
	}
	switch v := tok.(type) {
	case j.Delim:
		return eng.Token{Kind: s.keys.Delim(rune(v)), Offset: -1}, nil
	case string:
		return eng.Token{Kind: s.keys.String(), String: v, Offset: -1}, nil
	case bool:
		s.keys.Scalar()
		return eng.Token{Kind: eng.KindBool, Bool: v, Offset: -1}, nil
	case j.Number:
		s.keys.Scalar()
		return eng.Token{Kind: eng.KindNumber, Number: string(v), Offset: -1}, nil
	case float64:
		s.keys.Scalar()
		return eng.Token{Kind: eng.KindNumber, Number: strconv.FormatFloat(v, 'g', -1, 64), Offset: -1}, nil
	}
	s.keys.Scalar()
	return eng.Token{Kind: eng.KindNull, Offset: -1}, nil
}

// Location is unknown; go-json does not expose a stable input offset.
func (s *source) Location() int64 { return -1 }
