package sanitize

import (
	"reflect"
	"testing"
)

// TestParseObjectNotation tests decoding of the @{key=value; ...} notation.
func TestParseObjectNotation(t *testing.T) {
	t.Parallel()

	got := Parse("@{real=40; ghost=15; bot=5}")

	expected := map[string]any{
		"real":  40.0,
		"ghost": 15.0,
		"bot":   5.0,
	}
	if !reflect.DeepEqual(got, expected) {
		t.Errorf("Parse() = %#v, expected %#v", got, expected)
	}
}

// TestParseNestedObjectNotation tests that nested @{...} values survive the
// top-level split and resolve recursively.
func TestParseNestedObjectNotation(t *testing.T) {
	t.Parallel()

	got := Parse("@{audience=@{real=78; ghost=12}; label=ok}")

	m, ok := got.(map[string]any)
	if !ok {
		t.Fatalf("Parse() = %T, expected map", got)
	}

	audience, ok := m["audience"].(map[string]any)
	if !ok {
		t.Fatalf("audience = %T, expected nested map", m["audience"])
	}
	if audience["real"] != 78.0 {
		t.Errorf("audience.real = %v, expected 78", audience["real"])
	}
	if m["label"] != "ok" {
		t.Errorf("label = %v, expected %q", m["label"], "ok")
	}
}

// TestParseAbsentSentinels tests that sentinel strings resolve to nil.
func TestParseAbsentSentinels(t *testing.T) {
	t.Parallel()

	testCases := []string{"", "null", "None", "undefined", "NaN", "  null  "}

	for _, input := range testCases {
		t.Run("sentinel_"+input, func(t *testing.T) {
			t.Parallel()
			if got := Parse(input); got != nil {
				t.Errorf("Parse(%q) = %v, expected nil", input, got)
			}
		})
	}
}

// TestParseScalars tests numeric coercion and pass-through behavior.
func TestParseScalars(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name     string
		input    any
		expected any
	}{
		{"numeric string", "42.5", 42.5},
		{"integer string", "7", 7.0},
		{"plain prose", "Reach is above average", "Reach is above average"},
		{"native number", 3.14, 3.14},
		{"native bool", true, true},
		{"empty array marker", "System.Object[]", []any{}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			got := Parse(tc.input)
			if !reflect.DeepEqual(got, tc.expected) {
				t.Errorf("Parse(%v) = %#v, expected %#v", tc.input, got, tc.expected)
			}
		})
	}
}

// TestParseJSONLiteral tests decoding of embedded JSON strings.
func TestParseJSONLiteral(t *testing.T) {
	t.Parallel()

	got := Parse(`{"score": 82, "items": ["a", "2"]}`)

	m, ok := got.(map[string]any)
	if !ok {
		t.Fatalf("Parse() = %T, expected map", got)
	}
	if m["score"] != 82.0 {
		t.Errorf("score = %v, expected 82", m["score"])
	}

	items, ok := m["items"].([]any)
	if !ok {
		t.Fatalf("items = %T, expected array", m["items"])
	}
	// Numeric strings inside decoded JSON are coerced recursively.
	if items[1] != 2.0 {
		t.Errorf("items[1] = %v, expected 2", items[1])
	}
}

// TestParseMalformedJSON tests that malformed fragments are returned
// unchanged instead of erroring.
func TestParseMalformedJSON(t *testing.T) {
	t.Parallel()

	input := `{"broken": `

	if got := Parse(input); got != input {
		t.Errorf("Parse(%q) = %v, expected the original string", input, got)
	}
}

// TestParseDepthBound tests that recursion stops at MaxParseDepth.
func TestParseDepthBound(t *testing.T) {
	t.Parallel()

	input := map[string]any{
		"a": map[string]any{
			"b": map[string]any{
				"c": map[string]any{
					"d": "7",
				},
			},
		},
	}

	got := Parse(input)

	inner := got.(map[string]any)["a"].(map[string]any)["b"].(map[string]any)["c"].(map[string]any)["d"]
	if inner != "7" {
		t.Errorf("value beyond MaxParseDepth = %v, expected the raw string %q", inner, "7")
	}
}

// TestParseObjectNotationEdgeCases tests malformed pair handling.
func TestParseObjectNotationEdgeCases(t *testing.T) {
	t.Parallel()

	got := Parse("@{valid=1; ; noequals; =orphan; msg=a=b}")

	m, ok := got.(map[string]any)
	if !ok {
		t.Fatalf("Parse() = %T, expected map", got)
	}
	if len(m) != 2 {
		t.Fatalf("expected 2 surviving pairs, got %d: %#v", len(m), m)
	}
	if m["valid"] != 1.0 {
		t.Errorf("valid = %v, expected 1", m["valid"])
	}
	// Split is on the first '=' only.
	if m["msg"] != "a=b" {
		t.Errorf("msg = %v, expected %q", m["msg"], "a=b")
	}
}
