package assertion

import (
	"fmt"
	"reflect"
	"strings"
)

// evaluateEquals checks that a value deeply equals the expected
// value.
func evaluateEquals(
	assertion Definition,
	value any,
) (bool, string) {
	if reflect.DeepEqual(value, assertion.Value) {
		return true, fmt.Sprintf(
			"equals %v", assertion.Value,
		)
	}

	return false, fmt.Sprintf(
		"got %v, want %v", value, assertion.Value,
	)
}

// evaluateLength checks that a string, slice, array, or map has
// exactly the expected length.
func evaluateLength(
	assertion Definition,
	value any,
) (bool, string) {
	actual, ok := lengthOf(value)
	if !ok {
		return false, "value has no length"
	}

	expected, ok := toInt(assertion.Value)
	if !ok {
		return false, "expected value is not a number"
	}

	if actual == expected {
		return true, fmt.Sprintf("length is %d", actual)
	}

	return false, fmt.Sprintf(
		"length %d, want %d", actual, expected,
	)
}

// evaluateContains checks that a string value contains the
// expected substring. Matching is case-sensitive.
func evaluateContains(
	assertion Definition,
	value any,
) (bool, string) {
	str, ok := value.(string)
	if !ok {
		return false, "value is not a string"
	}

	expected, ok := assertion.Value.(string)
	if !ok {
		return false, "expected value is not a string"
	}

	if strings.Contains(str, expected) {
		return true, fmt.Sprintf(
			"contains '%s'", expected,
		)
	}

	return false, fmt.Sprintf(
		"does not contain '%s'", expected,
	)
}

// evaluateHasKey checks that a string-keyed map contains the
// expected key.
func evaluateHasKey(
	assertion Definition,
	value any,
) (bool, string) {
	key, ok := assertion.Value.(string)
	if !ok {
		return false, "expected value is not a string"
	}

	switch m := value.(type) {
	case map[string]string:
		if _, exists := m[key]; exists {
			return true, fmt.Sprintf("has key '%s'", key)
		}
	case map[string]any:
		if _, exists := m[key]; exists {
			return true, fmt.Sprintf("has key '%s'", key)
		}
	default:
		rv := reflect.ValueOf(value)
		if rv.Kind() == reflect.Map &&
			rv.Type().Key().Kind() == reflect.String {
			if rv.MapIndex(reflect.ValueOf(key)).IsValid() {
				return true, fmt.Sprintf(
					"has key '%s'", key,
				)
			}
		} else {
			return false, "value is not a string-keyed map"
		}
	}

	return false, fmt.Sprintf("missing key '%s'", key)
}

// evaluateNotEmpty checks that a value is non-nil and
// non-empty.
func evaluateNotEmpty(
	_ Definition,
	value any,
) (bool, string) {
	if value == nil {
		return false, "value is nil"
	}

	switch v := value.(type) {
	case string:
		if strings.TrimSpace(v) == "" {
			return false, "string is empty"
		}
	default:
		if n, ok := lengthOf(value); ok && n == 0 {
			return false, "value is empty"
		}
	}

	return true, "value is not empty"
}

// lengthOf returns the length of a string, slice, array, or
// map value.
func lengthOf(value any) (int, bool) {
	rv := reflect.ValueOf(value)
	switch rv.Kind() {
	case reflect.String, reflect.Slice,
		reflect.Array, reflect.Map:
		return rv.Len(), true
	}
	return 0, false
}

// toInt converts common numeric types to int.
func toInt(value any) (int, bool) {
	switch v := value.(type) {
	case int:
		return v, true
	case int64:
		return int(v), true
	case float64:
		return int(v), true
	}
	return 0, false
}
