package util

import (
	"strconv"
)

// ParseUintOrZero converts a string to an unsigned integer, returning 0 on
// parse failure.
func ParseUintOrZero(s string) uint {
	id, _ := strconv.ParseUint(s, 10, 32)
	return uint(id)
}
