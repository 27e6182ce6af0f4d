// Package coercer classifies raw text fields and coerces cell values to numbers.
package coercer

import (
	"math"
	"regexp"
	"strconv"
	"strings"

	"tokpee/domain/dataset"
)

// decimalPattern accepts an optionally signed decimal with optional fraction
// and exponent. Grouping separators, currency symbols and hex are rejected.
var decimalPattern = regexp.MustCompile(`^[+-]?(\d+\.?\d*|\.\d+)([eE][+-]?\d+)?$`)

// Infer classifies a single delimited-text field. The trimmed field becomes a
// Number when it is a finite decimal, and Text otherwise (including "").
func Infer(raw string) dataset.Value {
	trimmed := strings.TrimSpace(raw)
	if n, ok := parseDecimal(trimmed); ok {
		return dataset.Number(n)
	}
	return dataset.Text(trimmed)
}

// ToNumber coerces a cell for summation. Anything that is not numeric, or
// numeric-looking text, counts as zero.
func ToNumber(v dataset.Value) float64 {
	switch v.Kind {
	case dataset.KindNumber:
		return v.Num
	case dataset.KindText:
		if n, ok := parseDecimal(strings.TrimSpace(v.Str)); ok {
			return n
		}
		return 0
	case dataset.KindBool:
		if v.Bool {
			return 1
		}
		return 0
	default:
		return 0
	}
}

func parseDecimal(s string) (float64, bool) {
	if s == "" || !decimalPattern.MatchString(s) {
		return 0, false
	}
	n, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsInf(n, 0) || math.IsNaN(n) {
		return 0, false
	}
	return n, true
}
