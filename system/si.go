// The built-in unit system: SI base units, the SI prefixes in name and
// symbol form, the derived units, and the customary units scientific data
// conventions lean on. Derived units are defined by unit expressions and
// bootstrapped through the parser, the same way a database <def> is.

package system

import "github.com/MattSimmons1/unit/parser"

type siPrefix struct {
	name    string
	value   float64
	symbols []string
}

var siPrefixes = []siPrefix{
	{"yotta", 1e24, []string{"Y"}},
	{"zetta", 1e21, []string{"Z"}},
	{"exa", 1e18, []string{"E"}},
	{"peta", 1e15, []string{"P"}},
	{"tera", 1e12, []string{"T"}},
	{"giga", 1e9, []string{"G"}},
	{"mega", 1e6, []string{"M"}},
	{"kilo", 1e3, []string{"k"}},
	{"hecto", 1e2, []string{"h"}},
	{"deka", 1e1, []string{"da"}},
	{"deca", 1e1, nil},
	{"deci", 1e-1, []string{"d"}},
	{"centi", 1e-2, []string{"c"}},
	{"milli", 1e-3, []string{"m"}},
	{"micro", 1e-6, []string{"µ", "u"}},
	{"nano", 1e-9, []string{"n"}},
	{"pico", 1e-12, []string{"p"}},
	{"femto", 1e-15, []string{"f"}},
	{"atto", 1e-18, []string{"a"}},
	{"zepto", 1e-21, []string{"z"}},
	{"yocto", 1e-24, []string{"y"}},
}

type siUnit struct {
	name   string
	plural string
	symbol string
	def    string
}

// Definition order matters: each def may only use what came before it.
var siUnits = []siUnit{
	{"gram", "grams", "g", "1e-3 kg"},
	{"radian", "radians", "rad", "1"},
	{"steradian", "steradians", "sr", "1"},
	{"hertz", "", "Hz", "s-1"},
	{"newton", "newtons", "N", "kg.m.s-2"},
	{"pascal", "pascals", "Pa", "N/m2"},
	{"joule", "joules", "J", "N.m"},
	{"watt", "watts", "W", "J/s"},
	{"coulomb", "coulombs", "C", "A.s"},
	{"volt", "volts", "V", "W/A"},
	{"farad", "farads", "F", "C/V"},
	{"ohm", "ohms", "", "V/A"},
	{"siemens", "", "S", "A/V"},
	{"weber", "webers", "Wb", "V.s"},
	{"tesla", "teslas", "T", "Wb/m2"},
	{"henry", "henries", "H", "Wb/A"},
	{"lumen", "lumens", "lm", "cd.sr"},
	{"lux", "", "lx", "lm/m2"},
	{"becquerel", "becquerels", "Bq", "s-1"},
	{"gray", "grays", "Gy", "J/kg"},
	{"sievert", "sieverts", "Sv", "J/kg"},
	{"katal", "katals", "kat", "mol/s"},
	{"celsius", "", "°C", "K @ 273.15"},
	{"minute", "minutes", "min", "60 s"},
	{"hour", "hours", "h", "3600 s"},
	{"day", "days", "d", "86400 s"},
	{"liter", "liters", "L", "1e-3 m3"},
	{"tonne", "tonnes", "t", "1000 kg"},
	{"bar", "bars", "", "1e5 Pa"},
	{"electronvolt", "electronvolts", "eV", "1.602176634e-19 J"},
	{"astronomical_unit", "astronomical_units", "au", "1.495978707e11 m"},
	{"degree", "degrees", "°", "0.017453292519943295 rad"},
	{"arc_minute", "arc_minutes", "'", "0.016666666666666666 °"},
	{"arc_second", "arc_seconds", "\"", "0.016666666666666666 '"},
	{"percent", "", "%", "0.01"},
	{"perch", "perches", "", "5.0292 m"},
	{"pound", "pounds", "lb", "0.45359237 kg"},
}

var siAliases = [][2]string{
	{"metre", "meter"},
	{"metres", "meter"},
	{"litre", "liter"},
	{"litres", "liter"},
	{"sec", "second"},
	{"amp", "ampere"},
	{"amps", "ampere"},
	{"degree_Celsius", "celsius"},
	{"degC", "celsius"},
}

// Default returns a unit system loaded with the SI units and prefixes and
// the customary companions above.
func Default() *System {
	s := New()

	bases := [][3]string{
		{"second", "seconds", "s"},
		{"meter", "meters", "m"},
		{"kilogram", "kilograms", "kg"},
		{"ampere", "amperes", "A"},
		{"kelvin", "kelvins", "K"},
		{"mole", "moles", "mol"},
		{"candela", "candelas", "cd"},
	}
	for _, b := range bases {
		if _, err := s.AddBase(b[0], b[1], b[2]); err != nil {
			panic("unit system: " + err.Error())
		}
	}
	for _, p := range siPrefixes {
		s.AddPrefix(p.value, p.name, p.symbols...)
	}
	for _, d := range siUnits {
		u, err := parser.Parse(s, d.def, parser.UTF8)
		if err != nil {
			panic("unit system: bad definition for " + d.name + ": " + err.Error())
		}
		if err := s.register(d.name, d.plural, d.symbol, toUnit(u)); err != nil {
			panic("unit system: " + err.Error())
		}
	}
	for _, a := range siAliases {
		u := s.UnitByName(a[1])
		if u == nil {
			panic("unit system: alias target " + a[1] + " is missing")
		}
		if err := s.MapNameToUnit(a[0], u); err != nil {
			panic("unit system: " + err.Error())
		}
	}
	return s
}
