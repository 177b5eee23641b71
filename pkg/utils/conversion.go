package utils

import "strconv"

// StringToUint64 parses a numeric string, e.g. an ID from a URL parameter.
// Returns 0 when the string is not a number.
func StringToUint64(str string) uint64 {
	val, err := strconv.ParseUint(str, 10, 64)
	if err != nil {
		return 0
	}
	return val
}
