package parser

// Unit is an opaque unit expression. Units are created and combined by a
// System; the parser never looks inside one.
type Unit interface{}

// System is the unit-system collaborator a specification is parsed
// against: the tables identifiers resolve in, and the algebraic
// primitives the grammar composes with. Lookups return nil for unknown
// names; the primitives return fresh units, or nil when the operation is
// meaningless (raising past the representable power range, multiplying a
// logarithmic unit, attaching a time origin to a non-time). Lookups and
// primitives must not mutate the system: a parse only reads it.
type System interface {
	// DimensionlessOne returns the dimensionless unit one.
	DimensionlessOne() Unit

	// UnitByName returns the unit a name maps to, or nil.
	UnitByName(name string) Unit

	// UnitBySymbol returns the unit a symbol maps to, or nil.
	UnitBySymbol(symbol string) Unit

	// PrefixByName reports the value of the longest prefix name at the
	// start of s and how many bytes it spans.
	PrefixByName(s string) (value float64, n int, ok bool)

	// PrefixBySymbol is PrefixByName over the prefix symbols.
	PrefixBySymbol(s string) (value float64, n int, ok bool)

	Scale(factor float64, u Unit) Unit
	Multiply(a, b Unit) Unit
	Divide(a, b Unit) Unit
	Raise(u Unit, power int) Unit

	// Offset shifts the origin of a unit, e.g. Celsius from Kelvin.
	Offset(u Unit, origin float64) Unit

	// OffsetByTime attaches a time origin, given as encoded seconds, to a
	// unit that is convertible to the system's second.
	OffsetByTime(u Unit, seconds float64) Unit

	// Log returns a logarithmic unit with the given base over a reference.
	Log(base float64, reference Unit) Unit

	// Second returns the system's second, or nil if it has none — in
	// which case nothing is a time and timestamps are never recognized.
	Second() Unit

	AreConvertible(a, b Unit) bool
}
