package system

import (
	"errors"
	"fmt"

	"github.com/MattSimmons1/unit/parser"
)

// Converter maps a numeric value in one unit to the equivalent value in
// another.
type Converter func(float64) float64

// GetConverter returns a converter between two convertible units. Product
// and offset units convert linearly; logarithmic and timestamp units are
// not supported.
func GetConverter(from, to parser.Unit) (Converter, error) {
	f, t := toUnit(from), toUnit(to)
	if f == nil || t == nil {
		return nil, errors.New("nil unit")
	}
	if f.kind == kindLog || t.kind == kindLog ||
		f.kind == kindTimestamp || t.kind == kindTimestamp {
		return nil, errors.New("can't convert logarithmic or timestamp units")
	}
	if !sameDims(f.dims, t.dims) {
		return nil, fmt.Errorf("units %q and %q are not convertible", Format(from), Format(to))
	}
	fScale, fOrigin := f.scale, f.origin
	tScale, tOrigin := t.scale, t.origin
	return func(x float64) float64 {
		return (x*fScale + fOrigin - tOrigin) / tScale
	}, nil
}

// Convert is a one-shot GetConverter.
func Convert(value float64, from, to parser.Unit) (float64, error) {
	c, err := GetConverter(from, to)
	if err != nil {
		return 0, err
	}
	return c(value), nil
}
