package figskema

import (
	"fmt"

	"github.com/reoring/figskema/i18n"
)

// Message renders the localized message for code using the current i18n
// translator. Params are stringified for template substitution.
func Message(code string, params map[string]any) string {
	if len(params) == 0 {
		return i18n.T(code, nil)
	}
	data := make(map[string]string, len(params))
	for k, v := range params {
		data[k] = fmt.Sprint(v)
	}
	return i18n.T(code, data)
}
