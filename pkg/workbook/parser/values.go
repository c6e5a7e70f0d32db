// Package parser provides low-level grid reading and writing on excelize files.
package parser

import (
	"errors"
	"fmt"
	"strconv"
	"time"
)

// ErrUnsupportedValue indicates a cell value whose type cannot be stored in a workbook.
var ErrUnsupportedValue = errors.New("unsupported cell value")

// NormalizeValue checks that v is a storable cell value and returns it unchanged.
// Text, integer, float, bool, time.Time and nil (empty cell) are accepted.
func NormalizeValue(v any) (any, error) {
	switch v.(type) {
	case nil, string, bool, time.Time,
		int, int8, int16, int32, int64,
		uint, uint8, uint16, uint32, uint64,
		float32, float64:
		return v, nil
	default:
		return nil, fmt.Errorf("%w: %T", ErrUnsupportedValue, v)
	}
}

// parseValue attempts to parse a string value as a number.
// Returns int64 for integers, float64 for decimals, or the original string.
// Integral decimals ("25") are indistinguishable from integers and yield int64.
func parseValue(s string) any {
	if i, err := strconv.ParseInt(s, 10, 64); err == nil {
		return i
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return f
	}
	return s
}

// parseBool reads a boolean cell value in either raw ("1") or formatted ("TRUE") form.
func parseBool(s string) any {
	switch s {
	case "1", "TRUE", "true":
		return true
	case "0", "FALSE", "false":
		return false
	}
	return s
}
