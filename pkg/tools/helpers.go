// Copyright (C) 2025-2026 Kraklabs. All rights reserved.
// Use of this source code is governed by the AGPL-3.0
// license that can be found in the LICENSE file.

package tools

import (
	"fmt"
	"strconv"
)

// Argument maps arrive from JSON decoding, so numbers are float64 and
// everything else may be missing or mistyped. These helpers apply the
// tolerant coercions the protocol needs.

// GetStringArg extracts a string argument from the args map, returning defaultVal if missing.
func GetStringArg(args map[string]any, key, defaultVal string) string {
	v, ok := args[key]
	if !ok || v == nil {
		return defaultVal
	}
	s, ok := v.(string)
	if !ok {
		return defaultVal
	}
	return s
}

// GetFloat64Arg extracts a numeric argument, accepting strings that parse
// as numbers. ok is false when the key is missing or not numeric.
func GetFloat64Arg(args map[string]any, key string) (float64, bool) {
	v, present := args[key]
	if !present || v == nil {
		return 0, false
	}
	switch val := v.(type) {
	case float64:
		return val, true
	case int:
		return float64(val), true
	case int64:
		return float64(val), true
	case string:
		f, err := strconv.ParseFloat(val, 64)
		if err != nil {
			return 0, false
		}
		return f, true
	default:
		return 0, false
	}
}

// GetIntArg extracts an int argument from the args map, returning defaultVal if missing.
func GetIntArg(args map[string]any, key string, defaultVal int) int {
	v, ok := args[key]
	if !ok || v == nil {
		return defaultVal
	}
	switch val := v.(type) {
	case float64:
		return int(val)
	case int:
		return val
	case int64:
		return int(val)
	default:
		return defaultVal
	}
}

// GetInt64Arg extracts an int64 argument, accepting JSON numbers and
// numeric strings. ok is false when the key is missing or not integral.
func GetInt64Arg(args map[string]any, key string) (int64, bool) {
	v, present := args[key]
	if !present || v == nil {
		return 0, false
	}
	switch val := v.(type) {
	case float64:
		return int64(val), true
	case int:
		return int64(val), true
	case int64:
		return val, true
	case string:
		n, err := strconv.ParseInt(val, 10, 64)
		if err != nil {
			return 0, false
		}
		return n, true
	default:
		return 0, false
	}
}

// AnyToString renders an argument value as the text bound into a
// statement parameter. Integral floats print without a decimal point so
// an id sent as a JSON number matches the INTEGER column.
func AnyToString(v any) string {
	switch val := v.(type) {
	case string:
		return val
	case float64:
		if val == float64(int64(val)) {
			return strconv.FormatInt(int64(val), 10)
		}
		return strconv.FormatFloat(val, 'f', -1, 64)
	case int:
		return strconv.Itoa(val)
	case int64:
		return strconv.FormatInt(val, 10)
	case bool:
		return strconv.FormatBool(val)
	case nil:
		return ""
	default:
		return fmt.Sprintf("%v", v)
	}
}
