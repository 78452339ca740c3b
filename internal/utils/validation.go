package utils

import (
	"errors"
	"regexp"
	"strings"
	"time"
)

// Compiled regular expressions for validation
var (
	// Allow alphanumeric, underscore, hyphen, dot - common in location IDs
	validIDPattern = regexp.MustCompile(`^[a-zA-Z0-9_.-]+$`)

	// Detect HTML/script tags
	htmlTagPattern = regexp.MustCompile(`<[^>]*>`)
)

// ValidateID validates that a location ID is safe and within reasonable limits
func ValidateID(id string) error {
	if id == "" {
		return errors.New("id cannot be empty")
	}

	if len(id) > 100 {
		return errors.New("id too long (max 100 characters)")
	}

	if !validIDPattern.MatchString(id) {
		return errors.New("id contains invalid characters")
	}

	return nil
}

// ValidateLatitude validates latitude values
func ValidateLatitude(lat float64) error {
	if lat < -90.0 || lat > 90.0 {
		return errors.New("latitude must be between -90 and 90")
	}
	return nil
}

// ValidateLongitude validates longitude values
func ValidateLongitude(lon float64) error {
	if lon < -180.0 || lon > 180.0 {
		return errors.New("longitude must be between -180 and 180")
	}
	return nil
}

// ValidateDistance validates road distances in kilometers
func ValidateDistance(distanceKm float64) error {
	if distanceKm <= 0 {
		return errors.New("distance must be positive")
	}

	// Longest plausible single road segment
	if distanceKm > 1000 {
		return errors.New("distance too large (max 1000 km)")
	}

	return nil
}

// ValidateMultiplier validates traffic, construction and weather multipliers
func ValidateMultiplier(multiplier float64) error {
	if multiplier <= 0 {
		return errors.New("multiplier must be positive")
	}

	if multiplier > 10.0 {
		return errors.New("multiplier too large (max 10.0)")
	}

	return nil
}

// ValidateHour validates an hour-of-day boundary. The end of a window may be
// 24, so both 0-23 and 0-24 ranges are accepted via the inclusive flag.
func ValidateHour(hour int, allowEndOfDay bool) error {
	max := 23
	if allowEndOfDay {
		max = 24
	}
	if hour < 0 || hour > max {
		return errors.New("hour out of range")
	}
	return nil
}

// ValidateDate validates date strings in YYYY-MM-DD format
func ValidateDate(date string) error {
	// Empty dates are allowed (will default to current date)
	if date == "" {
		return nil
	}

	_, err := time.Parse("2006-01-02", date)
	if err != nil {
		return errors.New("invalid date format, use YYYY-MM-DD")
	}

	return nil
}

// SanitizeInput removes HTML tags and other potentially dangerous content
func SanitizeInput(input string) string {
	sanitized := htmlTagPattern.ReplaceAllString(input, "")
	return strings.TrimSpace(sanitized)
}

// ValidateLocationParams validates a complete set of location ingest parameters
func ValidateLocationParams(id string, lat, lon float64) map[string][]string {
	fieldErrors := make(map[string][]string)

	if err := ValidateID(id); err != nil {
		fieldErrors["id"] = append(fieldErrors["id"], err.Error())
	}

	if err := ValidateLatitude(lat); err != nil {
		fieldErrors["lat"] = append(fieldErrors["lat"], err.Error())
	}

	if err := ValidateLongitude(lon); err != nil {
		fieldErrors["lon"] = append(fieldErrors["lon"], err.Error())
	}

	if len(fieldErrors) == 0 {
		return nil
	}
	return fieldErrors
}
