package utils

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"
)

// ParseFloatParam retrieves a float64 value from the provided URL query parameters.
// If the key is not present or the value is invalid, it returns 0 and updates the fieldErrors map.
func ParseFloatParam(params url.Values, key string, fieldErrors map[string][]string) (float64, map[string][]string) {
	if fieldErrors == nil {
		fieldErrors = make(map[string][]string)
	}

	val := params.Get(key)
	if val == "" {
		return 0, fieldErrors
	}

	f, err := strconv.ParseFloat(val, 64)
	if err != nil {
		fieldErrors[key] = append(fieldErrors[key], fmt.Sprintf("Invalid field value for field %q.", key))
	}
	return f, fieldErrors
}

// ParseIntParam retrieves an int value from the provided URL query parameters,
// falling back to the given default when the key is absent.
func ParseIntParam(params url.Values, key string, fallback int, fieldErrors map[string][]string) (int, map[string][]string) {
	if fieldErrors == nil {
		fieldErrors = make(map[string][]string)
	}

	val := params.Get(key)
	if val == "" {
		return fallback, fieldErrors
	}

	n, err := strconv.Atoi(val)
	if err != nil {
		fieldErrors[key] = append(fieldErrors[key], fmt.Sprintf("Invalid field value for field %q.", key))
		return fallback, fieldErrors
	}
	return n, fieldErrors
}

// ParseTimeParam parses a time parameter from the URL query. It supports both
// epoch timestamps in milliseconds and RFC 3339 strings. An empty parameter
// defaults to the current time.
func ParseTimeParam(params url.Values, key string, fieldErrors map[string][]string) (time.Time, map[string][]string) {
	if fieldErrors == nil {
		fieldErrors = make(map[string][]string)
	}

	val := params.Get(key)
	if val == "" {
		return time.Now(), fieldErrors
	}

	if epochMillis, err := strconv.ParseInt(val, 10, 64); err == nil {
		return time.UnixMilli(epochMillis), fieldErrors
	}

	if parsed, err := time.Parse(time.RFC3339, val); err == nil {
		return parsed, fieldErrors
	}

	fieldErrors[key] = append(fieldErrors[key], fmt.Sprintf("Invalid field value for field %q.", key))
	return time.Time{}, fieldErrors
}

// ParseDateParam parses a YYYY-MM-DD date from the URL query. An empty
// parameter defaults to today's date.
func ParseDateParam(params url.Values, key string, fieldErrors map[string][]string) (time.Time, map[string][]string) {
	if fieldErrors == nil {
		fieldErrors = make(map[string][]string)
	}

	val := params.Get(key)
	if val == "" {
		now := time.Now()
		return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC), fieldErrors
	}

	parsed, err := time.Parse("2006-01-02", val)
	if err != nil {
		fieldErrors[key] = append(fieldErrors[key], fmt.Sprintf("Invalid field value for field %q.", key))
		return time.Time{}, fieldErrors
	}
	return parsed, fieldErrors
}

// TrimJSONSuffix removes a trailing ".json" from a path segment.
func TrimJSONSuffix(segment string) string {
	return strings.Split(segment, ".json")[0]
}
