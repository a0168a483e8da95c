// Package source selects the process-wide JSON driver. Importing it (usually
// blank) installs gojson.Driver: go-json under the gojson build tag,
// encoding/json otherwise.
package source

import (
	figskema "github.com/reoring/figskema"
	drvgojson "github.com/reoring/figskema/source/gojson"
)

// init in a separate package to avoid import cycle in root.
func init() { figskema.SetJSONDriver(drvgojson.Driver()) }
