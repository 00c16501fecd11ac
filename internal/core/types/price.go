// Package types provides common value types shared across packages.
package types

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// Price is an optional monetary value with full precision.
// Uses decimal.Decimal to avoid floating-point errors.
// A Price without a value encodes as JSON null.
type Price struct {
	decimal.NullDecimal
}

// NewPrice creates a Price from a float.
// WARNING: Use NewPriceFromString for precise values.
func NewPrice(f float64) Price {
	return Price{decimal.NewNullDecimal(decimal.NewFromFloat(f))}
}

// NewPriceFromString creates a Price from a decimal string.
func NewPriceFromString(s string) (Price, error) {
	d, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil {
		return Price{}, fmt.Errorf("invalid price %q: %w", s, err)
	}
	return Price{decimal.NewNullDecimal(d)}, nil
}

// MustPrice creates a Price from a string, panics on error.
// Use only for constants and tests.
func MustPrice(s string) Price {
	p, err := NewPriceFromString(s)
	if err != nil {
		panic(err)
	}
	return p
}

// NoPrice returns a Price without a value.
func NoPrice() Price {
	return Price{}
}

// IsSet reports whether the price carries a value.
func (p Price) IsSet() bool { return p.Valid }

// MarshalJSON encodes Price as JSON number (not string), or null when unset.
func (p Price) MarshalJSON() ([]byte, error) {
	if !p.Valid {
		return []byte("null"), nil
	}
	return []byte(p.Decimal.String()), nil
}

// ParsePrice decodes a raw JSON price: a number, a numeric string or null.
// Empty strings decode as an unset price.
func ParsePrice(data []byte) (Price, error) {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		return Price{}, nil
	}

	raw := string(data)
	if len(data) >= 2 && data[0] == '"' && data[len(data)-1] == '"' {
		if err := json.Unmarshal(data, &raw); err != nil {
			return Price{}, err
		}
		if strings.TrimSpace(raw) == "" {
			return Price{}, nil
		}
	}

	return NewPriceFromString(raw)
}

// UnmarshalJSON decodes like ParsePrice, except that a value which is not a
// price ("N/A", objects, ...) decodes as an unset price instead of failing
// the enclosing document.
func (p *Price) UnmarshalJSON(data []byte) error {
	parsed, err := ParsePrice(data)
	if err != nil {
		*p = Price{}
		return nil
	}
	*p = parsed
	return nil
}

// String returns the decimal representation, or an empty string when unset.
func (p Price) String() string {
	if !p.Valid {
		return ""
	}
	return p.Decimal.String()
}
