package figskema

import (
	"errors"
	"fmt"
	"os"
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

var (
	validateOnce sync.Once
	validate     *validator.Validate
)

func optionsValidator() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())
		// report yaml member names so issue paths match the config file
		validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("yaml"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			return name
		})
	})
	return validate
}

// Validate checks option ranges. Failures are Issues with code invalid_config
// and a JSON Pointer into the YAML document.
func (o Options) Validate() error {
	err := optionsValidator().Struct(o)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("validate options: %w", err)
	}
	var iss Issues
	for _, fe := range verrs {
		iss = AppendIssues(iss, Issue{
			Path:    namespacePointer(fe.Namespace()),
			Code:    CodeInvalidConfig,
			Message: Message(CodeInvalidConfig, nil),
			Hint:    fe.Tag(),
			Offset:  -1,
			Params:  map[string]any{"rule": fe.Tag(), "param": fe.Param(), "value": fe.Value()},
		})
	}
	return iss
}

// namespacePointer turns "Options.strictness.onDuplicateKey" or
// "Options.hyperlinkNodeFields[1]" into a JSON Pointer.
func namespacePointer(ns string) string {
	parts := strings.Split(ns, ".")
	if len(parts) > 0 {
		parts = parts[1:]
	}
	p := Root()
	for _, part := range parts {
		name, idx, hasIdx := strings.Cut(part, "[")
		p = p.Field(name)
		if hasIdx {
			var i int
			if _, err := fmt.Sscanf(strings.TrimSuffix(idx, "]"), "%d", &i); err == nil {
				p = p.Index(i)
			}
		}
	}
	return p.Pointer()
}

// ParseOptions decodes YAML options on top of DefaultOptions and validates
// the result.
func ParseOptions(data []byte) (Options, error) {
	opt := DefaultOptions()
	if err := yaml.Unmarshal(data, &opt); err != nil {
		return Options{}, fmt.Errorf("parse options: %w", err)
	}
	opt = opt.WithDefaults()
	if err := opt.Validate(); err != nil {
		return Options{}, err
	}
	return opt, nil
}

// LoadOptions reads and parses a YAML options file.
func LoadOptions(path string) (Options, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Options{}, fmt.Errorf("read options %s: %w", path, err)
	}
	return ParseOptions(data)
}
