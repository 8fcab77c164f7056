package utils

import (
	"fmt"
	"regexp"
	"time"
)

const (
	MaxNameLength = 255
	MaxUnitLength = 50
	MaxCalories   = 100000
	MaxQuantity   = 10000

	DefaultPageLimit = 50
	MaxPageLimit     = 100
)

var uuidPattern = regexp.MustCompile(`^[0-9a-f]{8}-[0-9a-f]{4}-[0-9a-f]{4}-[0-9a-f]{4}-[0-9a-f]{12}$`)

func IsValidUUID(value string) bool {
	return uuidPattern.MatchString(value)
}

// ParseDate accepts strict YYYY-MM-DD and returns the date at midnight UTC.
func ParseDate(value string) (time.Time, error) {
	t, err := time.Parse("2006-01-02", value)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date format: %q", value)
	}
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC), nil
}

// ValidateStringLength rejects empty values and values over max runes.
func ValidateStringLength(value string, max int, field string) error {
	if value == "" {
		return fmt.Errorf("%s is required", field)
	}
	if len([]rune(value)) > max {
		return fmt.Errorf("%s must be at most %d characters", field, max)
	}
	return nil
}

func ValidateCalories(value float64) error {
	if value < 0 || value > MaxCalories {
		return fmt.Errorf("calories_per_unit must be between 0 and %d", MaxCalories)
	}
	return nil
}

func ValidateQuantity(value float64, field string) error {
	if value <= 0 || value > MaxQuantity {
		return fmt.Errorf("%s must be greater than 0 and at most %d", field, MaxQuantity)
	}
	return nil
}

func ValidateIntQuantity(value int) error {
	if value <= 0 || value > MaxQuantity {
		return fmt.Errorf("quantity must be greater than 0 and at most %d", MaxQuantity)
	}
	return nil
}

// ClampPagination rejects non-positive limits and negative offsets and
// caps the limit at MaxPageLimit.
func ClampPagination(limit, offset int) (int, int, error) {
	if limit <= 0 || offset < 0 {
		return 0, 0, fmt.Errorf("invalid pagination parameters")
	}
	if limit > MaxPageLimit {
		limit = MaxPageLimit
	}
	return limit, offset, nil
}
