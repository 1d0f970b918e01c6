package core

import (
	"strconv"
	"strings"
)

// GoldenPrecision is the number of fractional digits used when rendering
// reference vectors.
const GoldenPrecision = 9

// FormatVector renders v as "[v0, v1, ..., vk]" with every value in
// fixed-point notation with GoldenPrecision fractional digits.
func FormatVector(v []float64) string {
	var sb strings.Builder
	sb.Grow(2 + len(v)*(GoldenPrecision+6))
	sb.WriteByte('[')
	for i, x := range v {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(strconv.FormatFloat(x, 'f', GoldenPrecision, 64))
	}
	sb.WriteByte(']')
	return sb.String()
}

// FormatPairs renders a list of (a, b) pairs as "[(a0, b0), (a1, b1)]"
// using the same fixed-point precision as FormatVector.
func FormatPairs(pairs [][2]float64) string {
	var sb strings.Builder
	sb.WriteByte('[')
	for i, p := range pairs {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteByte('(')
		sb.WriteString(strconv.FormatFloat(p[0], 'f', GoldenPrecision, 64))
		sb.WriteString(", ")
		sb.WriteString(strconv.FormatFloat(p[1], 'f', GoldenPrecision, 64))
		sb.WriteByte(')')
	}
	sb.WriteByte(']')
	return sb.String()
}
