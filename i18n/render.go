package i18n

import (
	treedec "github.com/reoring/treedec"
	"github.com/reoring/treedec/tree"
)

// Render flattens a failure report into one line per validation error,
// "path: message", using the current Translator.
func Render(el treedec.ErrorList) []string {
	var out []string
	for _, pe := range el {
		for _, ve := range pe.Errors {
			args := make([]string, len(ve.Args))
			for i, a := range ve.Args {
				args[i] = renderArg(a)
			}
			out = append(out, pe.Path.String()+": "+T(ve.Key, args))
		}
	}
	return out
}

// renderArg favors the unquoted text of string arguments; other kinds render
// as compact JSON.
func renderArg(v tree.Value) string {
	if s, ok := v.StringVal(); ok {
		return s
	}
	return v.String()
}
