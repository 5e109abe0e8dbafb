// Package entities contains core business entities.
package entities

import (
	"encoding/json"
	"fmt"
	"math"
	"math/big"
	"strings"

	"github.com/shopspring/decimal"
)

// Record is a raw untyped key/value record as produced by a record source.
type Record map[string]any

// missing reports the fields absent from r, or present as nil or an empty string.
func (r Record) missing(fields ...string) []string {
	var out []string
	for _, f := range fields {
		v, ok := r[f]
		if !ok || v == nil {
			out = append(out, f)
			continue
		}
		if s, isStr := v.(string); isStr && s == "" {
			out = append(out, f)
		}
	}
	return out
}

func (r Record) checkPresent(kind string, fields ...string) error {
	if m := r.missing(fields...); len(m) > 0 {
		return fmt.Errorf("%w: %s record is missing required fields: %s", ErrValidation, kind, strings.Join(m, ", "))
	}
	return nil
}

func (r Record) boolean(kind, field string) (bool, error) {
	b, ok := r[field].(bool)
	if !ok {
		return false, fmt.Errorf("%w: %s field %q must be true or false, got %v", ErrValidation, kind, field, r[field])
	}
	return b, nil
}

func (r Record) number(kind, field string) (decimal.Decimal, error) {
	d, ok := toDecimal(r[field])
	if !ok {
		return decimal.Zero, fmt.Errorf("%w: %s field %q must be numeric, got %v", ErrValidation, kind, field, r[field])
	}
	return d, nil
}

func (r Record) text(kind, field string) (string, error) {
	s, ok := r[field].(string)
	if !ok {
		return "", fmt.Errorf("%w: %s field %q must be a string, got %v", ErrValidation, kind, field, r[field])
	}
	return s, nil
}

var (
	minInt = decimal.NewFromInt(math.MinInt)
	maxInt = decimal.NewFromInt(math.MaxInt)
)

// IntValue converts a numeric record value into an int.
// It reports false for non-numeric, fractional or out-of-range values.
func IntValue(v any) (int, bool) {
	d, ok := toDecimal(v)
	if !ok {
		return 0, false
	}
	return toInt(d)
}

func toInt(d decimal.Decimal) (int, bool) {
	if !d.IsInteger() || d.LessThan(minInt) || d.GreaterThan(maxInt) {
		return 0, false
	}
	return int(d.IntPart()), true
}

func toDecimal(v any) (decimal.Decimal, bool) {
	switch n := v.(type) {
	case decimal.Decimal:
		return n, true
	case json.Number:
		d, err := decimal.NewFromString(n.String())
		return d, err == nil
	case int:
		return decimal.NewFromInt(int64(n)), true
	case int8:
		return decimal.NewFromInt(int64(n)), true
	case int16:
		return decimal.NewFromInt(int64(n)), true
	case int32:
		return decimal.NewFromInt32(n), true
	case int64:
		return decimal.NewFromInt(n), true
	case uint:
		return fromUint(uint64(n)), true
	case uint8:
		return fromUint(uint64(n)), true
	case uint16:
		return fromUint(uint64(n)), true
	case uint32:
		return fromUint(uint64(n)), true
	case uint64:
		return fromUint(n), true
	case float32:
		if math.IsNaN(float64(n)) || math.IsInf(float64(n), 0) {
			return decimal.Zero, false
		}
		return decimal.NewFromFloat32(n), true
	case float64:
		if math.IsNaN(n) || math.IsInf(n, 0) {
			return decimal.Zero, false
		}
		return decimal.NewFromFloat(n), true
	default:
		return decimal.Zero, false
	}
}

func fromUint(n uint64) decimal.Decimal {
	return decimal.NewFromBigInt(new(big.Int).SetUint64(n), 0)
}
