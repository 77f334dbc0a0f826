package utils

import "strconv"

// ConvertToInt converts a string to an int, returning 0 when the value
// cannot be parsed.
func ConvertToInt(value string) int {
	n, err := strconv.Atoi(value)
	if err != nil {
		return 0
	}
	return n
}

// ConvertToInt64 converts a string to an int64, returning 0 when the value
// cannot be parsed.
func ConvertToInt64(value string) int64 {
	n, err := strconv.ParseInt(value, 10, 64)
	if err != nil {
		return 0
	}
	return n
}

// ConvertToBool converts a string to a bool, returning false when the value
// cannot be parsed.
func ConvertToBool(value string) bool {
	b, err := strconv.ParseBool(value)
	if err != nil {
		return false
	}
	return b
}
