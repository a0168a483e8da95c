package figskema

import (
	"fmt"
	"strings"

	"github.com/reoring/figskema/i18n"
)

// Severity expresses the severity level for issues.
type Severity int

const (
	Ignore Severity = iota
	Warn
	Error
)

func (s Severity) String() string {
	switch s {
	case Warn:
		return "warn"
	case Error:
		return "error"
	default:
		return "ignore"
	}
}

// MarshalText implements encoding.TextMarshaler.
func (s Severity) MarshalText() ([]byte, error) { return []byte(s.String()), nil }

// UnmarshalText accepts "ignore", "warn" and "error" (case-insensitive).
func (s *Severity) UnmarshalText(b []byte) error {
	switch strings.ToLower(strings.TrimSpace(string(b))) {
	case "ignore", "":
		*s = Ignore
	case "warn", "warning":
		*s = Warn
	case "error":
		*s = Error
	default:
		return fmt.Errorf("unknown severity %q", string(b))
	}
	return nil
}

// Strictness configures enforcement for duplicate keys.
type Strictness struct {
	OnDuplicateKey Severity `yaml:"onDuplicateKey" validate:"gte=0,lte=2"`
}

// Options bundles decode options.
type Options struct {
	Strictness Strictness `yaml:"strictness"`
	// MaxDepth bounds container nesting (0 disables the check).
	MaxDepth int `yaml:"maxDepth" validate:"gte=0"`
	// MaxBytes bounds input size (0 disables the check). Sources without byte
	// offsets, such as the go-json driver, are only bounded where the input is
	// read through ReadAllLimited: DecodeFileReader and the figskema CLI.
	MaxBytes int64 `yaml:"maxBytes" validate:"gte=0"`
	// JSONC makes BytesSource, and so DecodeFileReader and the CLI, accept
	// comments and trailing commas.
	JSONC bool `yaml:"jsonc"`
	// HyperlinkNodeFields lists, in order of preference, the member names that
	// may carry a NODE hyperlink's target id.
	HyperlinkNodeFields []string `yaml:"hyperlinkNodeFields" validate:"omitempty,dive,required"`
	// BooleanOperationFields lists, in order of preference, the member names
	// that may carry a BOOLEAN_OPERATION node's operation.
	BooleanOperationFields []string `yaml:"booleanOperationFields" validate:"omitempty,dive,required"`
	// Language names the built-in message dictionary. Messages come from the
	// process-wide translator, so decode calls do not switch it; ApplyLanguage
	// does, and the CLI calls it once at startup.
	Language string `yaml:"language" validate:"omitempty,oneof=en ja"`
}

// ApplyLanguage switches the process-wide message dictionary to o.Language.
// An empty Language leaves the current translator in place.
func (o Options) ApplyLanguage() {
	if o.Language != "" {
		i18n.SetLanguage(o.Language)
	}
}

// DefaultHyperlinkNodeFields and DefaultBooleanOperationFields cover both
// historical schemas.
var (
	DefaultHyperlinkNodeFields    = []string{"nodeID", "node"}
	DefaultBooleanOperationFields = []string{"booleanOperation", "operation"}
)

// DefaultOptions returns options suitable for untrusted input.
func DefaultOptions() Options {
	return Options{
		Strictness:             Strictness{OnDuplicateKey: Warn},
		MaxDepth:               512,
		HyperlinkNodeFields:    append([]string(nil), DefaultHyperlinkNodeFields...),
		BooleanOperationFields: append([]string(nil), DefaultBooleanOperationFields...),
		Language:               "en",
	}
}

// WithDefaults fills unset field-name lists.
func (o Options) WithDefaults() Options {
	if len(o.HyperlinkNodeFields) == 0 {
		o.HyperlinkNodeFields = append([]string(nil), DefaultHyperlinkNodeFields...)
	}
	if len(o.BooleanOperationFields) == 0 {
		o.BooleanOperationFields = append([]string(nil), DefaultBooleanOperationFields...)
	}
	return o
}

// LastOptions picks the last element of opts (DefaultOptions when empty) and
// fills defaults, mirroring variadic option handling in the decode entry
// points.
func LastOptions(opts []Options) Options {
	if len(opts) == 0 {
		return DefaultOptions()
	}
	return opts[len(opts)-1].WithDefaults()
}
