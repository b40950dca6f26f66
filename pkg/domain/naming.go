package domain

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// Stringify renders a value for use in a filename. Floats are rendered
// with up to 10 significant digits and any trailing decimal point is
// trimmed, so 3.0 and 3 produce the same token.
func Stringify(value any) string {
	switch v := value.(type) {
	case float64:
		return strings.TrimRight(fmt.Sprintf("%.10g", v), ".")
	case string:
		return v
	default:
		return fmt.Sprintf("%v", v)
	}
}

// sanitizeReplacer maps the characters that break filenames or lookup
// tooling to underscores.
var sanitizeReplacer = strings.NewReplacer(
	" ", "_",
	"/", "_",
	"\\", "_",
	":", "_",
	",", "_",
	";", "_",
	`"`, "_",
	"'", "_",
)

// Sanitize converts a value into a filename-safe token.
func Sanitize(value any) string {
	return sanitizeReplacer.Replace(Stringify(value))
}

// BuildFilename produces the artifact name stem encoding every value of
// a combination. Tokens are ordered by node then param lexicographically,
// never by declaration order, so the same combination always yields the
// same name no matter how the axes were declared. Lookup tooling relies
// on reproducing this exact string.
func BuildFilename(prefix string, combo Combination) string {
	parts := []string{prefix}
	for _, node := range sortedKeys(combo) {
		params := combo[node]
		for _, param := range sortedParamKeys(params) {
			parts = append(parts, fmt.Sprintf("%s-%s-%s", node, param, Sanitize(params[param])))
		}
	}
	return strings.Join(parts, "__")
}

// FormatCombination renders a combination for logs, node/param sorted.
func FormatCombination(combo Combination) string {
	if len(combo) == 0 {
		return "<no wedges>"
	}
	var parts []string
	for _, node := range sortedKeys(combo) {
		params := combo[node]
		for _, param := range sortedParamKeys(params) {
			parts = append(parts, fmt.Sprintf("%s.%s=%v", node, param, Stringify(params[param])))
		}
	}
	return strings.Join(parts, ", ")
}

// LocateArtifact resolves an artifact file produced for a name stem. The
// execution side appends a 5-digit sequence, so the first probe is
// _00001_; when that file is missing the suffixes _00002_ through _00099_
// are scanned. Returns the full path and whether a file was found.
func LocateArtifact(dir, stem, ext string) (string, bool) {
	candidate := filepath.Join(dir, fmt.Sprintf("%s_00001_.%s", stem, ext))
	if _, err := os.Stat(candidate); err == nil {
		return candidate, true
	}
	for i := 2; i < 100; i++ {
		alt := filepath.Join(dir, fmt.Sprintf("%s_%05d_.%s", stem, i, ext))
		if _, err := os.Stat(alt); err == nil {
			return alt, true
		}
	}
	return "", false
}

func sortedKeys(combo Combination) []string {
	keys := make([]string, 0, len(combo))
	for k := range combo {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func sortedParamKeys(params map[string]any) []string {
	keys := make([]string, 0, len(params))
	for k := range params {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
