package converter

import (
	"strconv"

	"github.com/google/uuid"
)

// StrToUUID parses s, returning uuid.Nil when it is not a UUID
func StrToUUID(s string) uuid.UUID {
	id, err := uuid.Parse(s)
	if err != nil {
		return uuid.Nil
	}
	return id
}

// StrToFloat parses s, returning def when s is empty or malformed
func StrToFloat(s string, def float64) float64 {
	if s == "" {
		return def
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return def
	}
	return v
}

// StrToInt parses s, returning def when s is empty or malformed
func StrToInt(s string, def int) int {
	if s == "" {
		return def
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return def
	}
	return v
}
