package coerce

import (
	"math"
	"strconv"
	"strings"
)

// ToInt handles config decoded numbers (float64), decimal strings and every
// Go integer width. Unsigned values above math.MaxInt are rejected.
func ToInt(value any) (int, bool) {
	switch v := value.(type) {
	case int:
		return v, true
	case int8:
		return int(v), true
	case int16:
		return int(v), true
	case int32:
		return int(v), true
	case int64:
		if v >= math.MinInt && v <= math.MaxInt {
			return int(v), true
		}
	case uint8:
		return int(v), true
	case uint16:
		return int(v), true
	case uint32:
		if uint64(v) <= math.MaxInt {
			return int(v), true
		}
	case uint:
		if v <= math.MaxInt {
			return int(v), true
		}
	case uint64:
		if v <= math.MaxInt {
			return int(v), true
		}
	case float64:
		if v >= math.MinInt && v < math.MaxInt && v == math.Trunc(v) {
			return int(v), true
		}
	case float32:
		f := float64(v)
		if f >= math.MinInt && f < math.MaxInt && f == math.Trunc(f) {
			return int(f), true
		}
	case string:
		n, err := strconv.ParseInt(strings.TrimSpace(v), 10, 0)
		if err == nil {
			return int(n), true
		}
	}
	return 0, false
}

// ToIndex is ToInt restricted to non-negative results.
func ToIndex(value any) (int, bool) {
	n, ok := ToInt(value)
	if !ok || n < 0 {
		return 0, false
	}
	return n, true
}

// ToFloat64 accepts any Go number or a decimal string.
func ToFloat64(value any) (float64, bool) {
	switch v := value.(type) {
	case float64:
		return v, true
	case float32:
		return float64(v), true
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		if err == nil {
			return f, true
		}
		return 0, false
	}
	if n, ok := ToInt(value); ok {
		return float64(n), true
	}
	return 0, false
}

// ToBool accepts booleans, the strings "true"/"false"/"1"/"0" and the
// integers 0 and 1.
func ToBool(value any) (bool, bool) {
	switch v := value.(type) {
	case bool:
		return v, true
	case string:
		b, err := strconv.ParseBool(strings.TrimSpace(v))
		if err == nil {
			return b, true
		}
		return false, false
	}
	if n, ok := ToInt(value); ok && (n == 0 || n == 1) {
		return n == 1, true
	}
	return false, false
}

// ToInts coerces a list of values. Lists arrive as []any from YAML, as []int
// from flags, or as a comma separated string from the environment.
func ToInts(value any) ([]int, bool) {
	switch v := value.(type) {
	case []int:
		return v, true
	case []any:
		out := make([]int, len(v))
		for i, item := range v {
			n, ok := ToInt(item)
			if !ok {
				return nil, false
			}
			out[i] = n
		}
		return out, true
	case []string:
		out := make([]int, len(v))
		for i, item := range v {
			n, ok := ToInt(item)
			if !ok {
				return nil, false
			}
			out[i] = n
		}
		return out, true
	case string:
		if strings.TrimSpace(v) == "" {
			return nil, true
		}
		return ToInts(strings.Split(v, ","))
	}
	return nil, false
}
