//go:build !gojson

package gojson

import (
	"io"

	figskema "github.com/reoring/figskema"
	jsonsrc "github.com/reoring/figskema/source/json"
)

// Driver returns the encoding/json driver when the gojson tag is not set.
func Driver() figskema.JSONDriver { return stub{} }

type stub struct{}

func (stub) NewReader(r io.Reader) figskema.Source {
	return figskema.SourceFromEngine(jsonsrc.NewReader(r))
}
func (stub) NewBytes(b []byte) figskema.Source {
	return figskema.SourceFromEngine(jsonsrc.NewBytes(b))
}
func (stub) Name() string { return "encoding/json (gojson stub)" }
