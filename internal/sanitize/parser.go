package sanitize

import (
	"encoding/json"
	"strconv"
	"strings"
)

// MaxParseDepth bounds recursion while resolving foreign-serialized strings.
// Upstream data is not adversarial but can nest serialized objects inside
// serialized objects; beyond this depth values are returned unparsed rather
// than erroring, which guarantees termination without a timeout mechanism.
const MaxParseDepth = 3

// Parse recursively resolves a raw payload value.
//
// Strings that encode structured data (JSON literals or the upstream
// runtime's @{key=value; key2=value2} serialized-object notation) are decoded
// into maps, numeric strings are coerced to numbers, and sentinel strings
// ("", "null", "None", "undefined", "NaN") become nil, the explicit absent
// marker. Arrays and objects are walked recursively. All other JSON-native
// types pass through unchanged.
//
// Parse never fails: malformed fragments are returned as the original string
// so upstream garbage degrades gracefully instead of crashing the render
// path.
func Parse(v any) any {
	return parseValue(v, 0)
}

// parseValue dispatches on the dynamic type with depth accounting.
func parseValue(v any, depth int) any {
	if depth > MaxParseDepth {
		return v
	}

	switch t := v.(type) {
	case string:
		return parseString(t, depth)
	case map[string]any:
		out := make(map[string]any, len(t))
		for k, val := range t {
			out[k] = parseValue(val, depth+1)
		}
		return out
	case []any:
		out := make([]any, len(t))
		for i, val := range t {
			out[i] = parseValue(val, depth+1)
		}
		return out
	default:
		return v
	}
}

// parseString resolves a single string value.
func parseString(s string, depth int) any {
	trimmed := strings.TrimSpace(s)

	if isAbsentSentinel(trimmed) {
		return nil
	}

	// PowerShell-style array marker: the upstream serializer flattens
	// arrays it cannot render into this literal.
	if trimmed == "System.Object[]" {
		return []any{}
	}

	if strings.HasPrefix(trimmed, "@{") && strings.HasSuffix(trimmed, "}") {
		return parseObjectNotation(trimmed, depth)
	}

	if isJSONLiteral(trimmed) {
		var decoded any
		if err := json.Unmarshal([]byte(trimmed), &decoded); err == nil {
			return parseValue(decoded, depth+1)
		}
		// Malformed JSON: retain the original string unmodified.
		return s
	}

	if n, err := strconv.ParseFloat(trimmed, 64); err == nil {
		return n
	}

	return s
}

// isAbsentSentinel reports whether the string is one of the upstream
// sentinels meaning "no value".
func isAbsentSentinel(s string) bool {
	switch strings.ToLower(s) {
	case "", "null", "none", "undefined", "nan":
		return true
	}
	return false
}

// isJSONLiteral reports whether the string looks like a complete JSON
// object or array literal.
func isJSONLiteral(s string) bool {
	return (strings.HasPrefix(s, "{") && strings.HasSuffix(s, "}")) ||
		(strings.HasPrefix(s, "[") && strings.HasSuffix(s, "]"))
}

// parseObjectNotation decodes the @{key=value; key2=value2} serialized-object
// notation into a map. Values are parsed recursively, so a value that is
// itself @{...} notation resolves before assignment.
func parseObjectNotation(s string, depth int) any {
	if depth >= MaxParseDepth {
		return s
	}

	body := strings.TrimSuffix(strings.TrimPrefix(s, "@{"), "}")
	out := make(map[string]any)

	for _, pair := range splitTopLevel(body, ';') {
		pair = strings.TrimSpace(pair)
		if pair == "" {
			continue
		}

		// Split on the first '=' only, to tolerate values containing '='.
		key, value, found := strings.Cut(pair, "=")
		if !found {
			continue
		}
		key = strings.TrimSpace(key)
		if key == "" {
			continue
		}

		out[key] = parseString(strings.TrimSpace(value), depth+1)
	}

	return out
}

// splitTopLevel splits s on sep, ignoring separators nested inside brace or
// bracket pairs so nested @{...} values survive intact.
func splitTopLevel(s string, sep byte) []string {
	var parts []string
	level := 0
	start := 0

	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '{', '[':
			level++
		case '}', ']':
			if level > 0 {
				level--
			}
		case sep:
			if level == 0 {
				parts = append(parts, s[start:i])
				start = i + 1
			}
		}
	}
	parts = append(parts, s[start:])
	return parts
}
