// Unit representation and the algebraic primitives the parser composes
// with. A unit is a scale over a vector of base-dimension powers, possibly
// carrying an origin (Celsius, time-since) or a logarithmic reference.

package system

import (
	"math"

	"github.com/MattSimmons1/unit/parser"
)

type kind int

const (
	kindProduct   kind = iota // scale · ∏ baseᵖ
	kindOffset                // product with a shifted origin
	kindTimestamp             // time product with an epoch-second origin
	kindLog                   // logarithm over a reference unit
)

// maxPower bounds the exponent of any base factor, matching the packed
// signed-byte powers of the original data model.
const maxPower = 127

// Unit is a unit expression over a System's base dimensions. Units are
// immutable: every operation returns a fresh value.
type Unit struct {
	sys    *System
	kind   kind
	scale  float64
	dims   map[string]int // base key → power
	origin float64        // kindOffset: origin in base units; kindTimestamp: encoded seconds
	base   float64        // kindLog: logarithm base
	ref    *Unit          // kindLog: reference unit
}

func (u *Unit) clone() *Unit {
	v := *u
	v.dims = make(map[string]int, len(u.dims))
	for k, p := range u.dims {
		v.dims[k] = p
	}
	return &v
}

// underlying strips the origin off an offset unit so it can enter a
// product. Log and timestamp units have no underlying product.
func (u *Unit) underlying() *Unit {
	switch u.kind {
	case kindProduct:
		return u
	case kindOffset:
		v := u.clone()
		v.kind = kindProduct
		v.origin = 0
		return v
	}
	return nil
}

// toUnit recovers the concrete unit behind the parser's opaque handle.
func toUnit(u parser.Unit) *Unit {
	un, _ := u.(*Unit)
	return un
}

func sameDims(a, b map[string]int) bool {
	if len(a) != len(b) {
		return false
	}
	for k, p := range a {
		if b[k] != p {
			return false
		}
	}
	return true
}

// DimensionlessOne returns the dimensionless unit one.
func (s *System) DimensionlessOne() parser.Unit {
	return s.one.clone()
}

// Scale returns a unit equal to factor of the given unit.
func (s *System) Scale(factor float64, u parser.Unit) parser.Unit {
	un := toUnit(u)
	if un == nil {
		return nil
	}
	v := un.clone()
	v.scale *= factor
	return v
}

// Multiply returns the product of two units. Offsets are dropped from the
// operands; logarithmic and timestamp operands have no meaning in a
// product.
func (s *System) Multiply(a, b parser.Unit) parser.Unit {
	ua, ub := toUnit(a), toUnit(b)
	if ua == nil || ub == nil {
		return nil
	}
	x, y := ua.underlying(), ub.underlying()
	if x == nil || y == nil {
		return nil
	}
	v := x.clone()
	v.scale *= y.scale
	for d, p := range y.dims {
		q := v.dims[d] + p
		switch {
		case q == 0:
			delete(v.dims, d)
		case q > maxPower || q < -maxPower:
			return nil
		default:
			v.dims[d] = q
		}
	}
	return v
}

// Divide returns the quotient of two units.
func (s *System) Divide(a, b parser.Unit) parser.Unit {
	ua, ub := toUnit(a), toUnit(b)
	if ua == nil || ub == nil {
		return nil
	}
	x, y := ua.underlying(), ub.underlying()
	if x == nil || y == nil {
		return nil
	}
	v := x.clone()
	v.scale /= y.scale
	for d, p := range y.dims {
		q := v.dims[d] - p
		switch {
		case q == 0:
			delete(v.dims, d)
		case q > maxPower || q < -maxPower:
			return nil
		default:
			v.dims[d] = q
		}
	}
	return v
}

// Raise returns a unit raised to an integral power.
func (s *System) Raise(u parser.Unit, power int) parser.Unit {
	un := toUnit(u)
	if un == nil {
		return nil
	}
	x := un.underlying()
	if x == nil || power > maxPower || power < -maxPower {
		return nil
	}
	v := x.clone()
	v.scale = math.Pow(x.scale, float64(power))
	v.dims = make(map[string]int, len(x.dims))
	for d, p := range x.dims {
		q := p * power
		if q > maxPower || q < -maxPower {
			return nil
		}
		if q != 0 {
			v.dims[d] = q
		}
	}
	return v
}

// Offset returns a unit whose origin is shifted by the given amount,
// expressed in the unit itself: Celsius is Offset(kelvin, 273.15).
func (s *System) Offset(u parser.Unit, origin float64) parser.Unit {
	un := toUnit(u)
	if un == nil {
		return nil
	}
	switch un.kind {
	case kindProduct, kindOffset:
		v := un.clone()
		if origin == 0 {
			return v
		}
		v.kind = kindOffset
		v.origin += origin * v.scale
		return v
	}
	return nil
}

// OffsetByTime attaches a time origin, in encoded seconds, to a unit that
// is convertible to the system's second.
func (s *System) OffsetByTime(u parser.Unit, seconds float64) parser.Unit {
	un := toUnit(u)
	if un == nil || s.second == nil {
		return nil
	}
	x := un.underlying()
	if x == nil || !sameDims(x.dims, s.second.dims) {
		return nil
	}
	v := x.clone()
	v.kind = kindTimestamp
	v.origin = seconds
	return v
}

// Log returns a logarithmic unit with the given base over a reference.
func (s *System) Log(base float64, reference parser.Unit) parser.Unit {
	ref := toUnit(reference)
	if ref == nil || base <= 1 {
		return nil
	}
	r := ref.underlying()
	if r == nil {
		return nil
	}
	return &Unit{sys: s, kind: kindLog, scale: 1, dims: map[string]int{}, base: base, ref: r.clone()}
}

// Second returns the system's second, or nil if none was registered.
func (s *System) Second() parser.Unit {
	if s.second == nil {
		return nil
	}
	return s.second.clone()
}

// AreConvertible reports whether values in one unit can be expressed in
// the other. Timestamp units convert to nothing — a time-since unit is an
// instant scale, not a duration — and logarithmic units only to
// logarithmic units over a convertible reference with the same base.
func (s *System) AreConvertible(a, b parser.Unit) bool {
	ua, ub := toUnit(a), toUnit(b)
	if ua == nil || ub == nil {
		return false
	}
	if ua.kind == kindTimestamp || ub.kind == kindTimestamp {
		return false
	}
	if ua.kind == kindLog || ub.kind == kindLog {
		return ua.kind == kindLog && ub.kind == kindLog &&
			ua.base == ub.base && sameDims(ua.ref.dims, ub.ref.dims)
	}
	return sameDims(ua.dims, ub.dims)
}

// Equivalent reports whether two units denote the same thing: same kind
// and dimensions, and scale and origin equal to within one part in 1e12.
func Equivalent(a, b parser.Unit) bool {
	ua, ub := toUnit(a), toUnit(b)
	if ua == nil || ub == nil {
		return ua == ub
	}
	if ua.kind != ub.kind || !sameDims(ua.dims, ub.dims) {
		return false
	}
	if !near(ua.scale, ub.scale) || !near(ua.origin, ub.origin) {
		return false
	}
	if ua.kind == kindLog {
		return near(ua.base, ub.base) && Equivalent(ua.ref, ub.ref)
	}
	return true
}

func near(a, b float64) bool {
	if a == b {
		return true
	}
	diff := math.Abs(a - b)
	return diff <= 1e-12*math.Max(math.Abs(a), math.Abs(b))
}
