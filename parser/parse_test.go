package parser

import (
	"fmt"
	"strings"
	"testing"
)

// testSystem is a System whose units are strings recording how they were
// built, so tests can assert the exact shape of a parse: which primitives
// ran, in which order, on which operands.
type testSystem struct {
	noSecond bool
}

var testNames = map[string]string{
	"meter": "m", "meters": "m",
	"second": "s", "seconds": "s",
	"gram": "g", "grams": "g",
	"watt": "W", "watts": "W",
	"kelvin":  "K",
	"celsius": "degC",
	"day":     "d", "days": "d",
	"perch": "perch", "perches": "perch",
}

var testSymbols = map[string]string{
	"m": "m", "s": "s", "g": "g", "W": "W", "K": "K", "kg": "kg",
}

var testPrefixNames = map[string]float64{
	"kilo": 1e3, "milli": 1e-3, "micro": 1e-6, "nano": 1e-9, "pico": 1e-12,
}

var testPrefixSymbols = map[string]float64{
	"k": 1e3, "m": 1e-3, "n": 1e-9, "µ": 1e-6, "u": 1e-6,
}

func (ts *testSystem) DimensionlessOne() Unit { return "1" }

func (ts *testSystem) UnitByName(name string) Unit {
	if u, ok := testNames[name]; ok {
		return u
	}
	return nil
}

func (ts *testSystem) UnitBySymbol(symbol string) Unit {
	if u, ok := testSymbols[symbol]; ok {
		return u
	}
	return nil
}

func (ts *testSystem) PrefixByName(s string) (float64, int, bool) {
	return longestIn(testPrefixNames, s)
}

func (ts *testSystem) PrefixBySymbol(s string) (float64, int, bool) {
	return longestIn(testPrefixSymbols, s)
}

func longestIn(prefixes map[string]float64, s string) (float64, int, bool) {
	best := 0
	var value float64
	for p, v := range prefixes {
		if len(p) > best && strings.HasPrefix(s, p) {
			best, value = len(p), v
		}
	}
	return value, best, best > 0
}

func (ts *testSystem) Scale(f float64, u Unit) Unit {
	if f == 1 {
		return u
	}
	if u == "1" {
		return fmt.Sprintf("%g", f)
	}
	return fmt.Sprintf("%g %s", f, u)
}

func (ts *testSystem) Multiply(a, b Unit) Unit { return fmt.Sprintf("(%s·%s)", a, b) }
func (ts *testSystem) Divide(a, b Unit) Unit   { return fmt.Sprintf("(%s/%s)", a, b) }

func (ts *testSystem) Raise(u Unit, power int) Unit {
	if power > 127 || power < -127 {
		return nil
	}
	return fmt.Sprintf("%s^%d", u, power)
}

func (ts *testSystem) Offset(u Unit, origin float64) Unit {
	return fmt.Sprintf("(%s @ %g)", u, origin)
}

func (ts *testSystem) OffsetByTime(u Unit, seconds float64) Unit {
	if !timeish(u) {
		return nil
	}
	return fmt.Sprintf("(%s since %.10g)", u, seconds)
}

func (ts *testSystem) Log(base float64, reference Unit) Unit {
	return fmt.Sprintf("log%g(re %s)", base, reference)
}

func (ts *testSystem) Second() Unit {
	if ts.noSecond {
		return nil
	}
	return "s"
}

func (ts *testSystem) AreConvertible(a, b Unit) bool {
	return timeish(a) && timeish(b)
}

func timeish(u Unit) bool {
	s, _ := u.(string)
	return s == "s" || s == "d" || strings.HasSuffix(s, " s") || strings.HasSuffix(s, " d")
}

func since(u string, seconds float64) string {
	return fmt.Sprintf("(%s since %.10g)", u, seconds)
}

type parseCase struct {
	name string
	spec string
	want string
}

var parseCases = []parseCase{
	{"empty", "", "1"},
	{"symbol", "m", "m"},
	{"name", "meter", "m"},
	{"plural name", "meters", "m"},
	{"trimmed", "  m\t", "m"},
	{"integer", "5", "5"},
	{"negative integer", "-5", "-5"},
	{"real", "3.14159", "3.14159"},
	{"real with exponent", "1e-2", "0.01"},
	{"space multiply", "m s", "(m·s)"},
	{"star multiply", "m*s", "(m·s)"},
	{"dot multiply", "m.s", "(m·s)"},
	{"middle dot multiply", "m·s", "(m·s)"},
	{"hyphen multiply", "m-s", "(m·s)"},
	{"slash divide", "m/s", "(m/s)"},
	{"word divide", "m per s", "(m/s)"},
	{"word divide case", "m PER s", "(m/s)"},
	{"perch is a unit", "3 perch m", "((3·perch)·m)"},
	{"newton shape", "kg m s-2", "((kg·m)·s^-2)"},
	{"juxtaposed exponent", "m2", "m^2"},
	{"caret exponent", "m^2", "m^2"},
	{"double star exponent", "m**2", "m^2"},
	{"signed exponent", "m^+3", "m^3"},
	{"negative exponent", "m^-1", "m^-1"},
	{"superscript exponent", "m²", "m^2"},
	{"signed superscript", "m⁻²", "m^-2"},
	{"quantity times unit", "2nanosecond", "(2·1e-09 s)"},
	{"quantity with space", "2 nanosecond", "(2·1e-09 s)"},
	{"prefixed plural", "1000 millimeters", "(1000·0.001 m)"},
	{"symbol prefixes", "kg km", "(kg·1000 m)"},
	{"number group", "(1/3) s", "((1/3)·s)"},
	{"nested parens", "((m))", "m"},
	{"stray close paren", "kg)", "kg"},
	{"log base ten", "lg(re 1 mW)", "log10(re (1·0.001 W))"},
	{"log spelled out", "log(re 1)", "log10(re 1)"},
	{"log base two", "lb(re 1 s)", "log2(re (1·s))"},
	{"log with colon", "lg(re: 1)", "log10(re 1)"},
	{"celsius offset", "celsius @ 273.15", "(degC @ 273.15)"},
	{"offset with after", "celsius after 20", "(degC @ 20)"},
	{"offset with from", "celsius from 0", "(degC @ 0)"},
	{"kelvin offset", "K @ 273.15", "(K @ 273.15)"},
	{"numeric offset on a length", "m since 2000", "(m @ 2000)"},
	{"numbers multiply", "2 2", "(2·2)"},
}

func Test_Parse(t *testing.T) {
	sys := &testSystem{}
	for _, c := range parseCases {
		u, err := Parse(sys, c.spec, UTF8)
		if err != nil {
			t.Fatalf("%s: Parse(%q) failed: %v", c.name, c.spec, err)
		}
		if u != c.want {
			t.Fatalf("%s: Parse(%q) = %v, want %v", c.name, c.spec, u, c.want)
		}
	}
}

func Test_Parse_timestamps(t *testing.T) {
	cases := []parseCase{
		{"date only", "seconds since 2000-01-01", since("s", EncodeDate(2000, 1, 1))},
		{"short date", "days since 1990-1-1", since("d", EncodeDate(1990, 1, 1))},
		{"packed date", "days since 20231225", since("d", EncodeDate(2023, 12, 25))},
		{"iso timestamp", "seconds since 2000-01-01T12:00:00Z",
			since("s", EncodeTime(2000, 1, 1, 12, 0, 0))},
		{"spaced timestamp", "seconds since 2000-01-01 12:00:00",
			since("s", EncodeTime(2000, 1, 1, 12, 0, 0))},
		{"timezone west", "seconds since 2000-01-01 12:00:00 -6:30",
			since("s", EncodeTime(2000, 1, 1, 12, 0, 0)+23400)},
		{"timezone east packed", "seconds since 2000-01-01 12:00:00 +0530",
			since("s", EncodeTime(2000, 1, 1, 12, 0, 0)-19800)},
		{"utc marker", "seconds since 2000-01-01 12:00 UTC",
			since("s", EncodeTime(2000, 1, 1, 12, 0, 0))},
		{"date then zulu", "seconds since 2000-01-01 Z", since("s", EncodeDate(2000, 1, 1))},
		{"day overflow", "days since 1999-02-29", since("d", EncodeDate(1999, 3, 1))},
		{"leap year keeps february", "days since 2000-02-29", since("d", EncodeDate(2000, 2, 29))},
		{"leap second", "seconds since 2000-01-01 23:59:60",
			since("s", EncodeDate(2000, 1, 1)+86400)},
		{"year after shift", "s @ 100", since("s", EncodeDate(100, 1, 1))},
		{"packed clock", "seconds since 2000-01-01 1230",
			since("s", EncodeTime(2000, 1, 1, 12, 30, 0))},
		{"real after shift is no date", "s @ 100.5", "(s @ 100.5)"},
	}
	sys := &testSystem{}
	for _, c := range cases {
		u, err := Parse(sys, c.spec, UTF8)
		if err != nil {
			t.Fatalf("%s: Parse(%q) failed: %v", c.name, c.spec, err)
		}
		if u != c.want {
			t.Fatalf("%s: Parse(%q) = %v, want %v", c.name, c.spec, u, c.want)
		}
	}
}

type errorCase struct {
	name     string
	spec     string
	status   Status
	contains string
}

var errorCases = []errorCase{
	{"nan", "nan", Syntax, "not allowed"},
	{"positive inf", "+inf", Syntax, "not allowed"},
	{"negative inf", "-INF", Syntax, "not allowed"},
	{"infinity", "Infinity", Syntax, "not allowed"},
	{"nan in product", "nan m", Syntax, "not allowed"},
	{"nan after unit", "m nan", Syntax, "not allowed"},
	{"unknown word", "foobar", Unknown, "Don't recognize"},
	{"detached prefix", "pico second", Unknown, "Don't recognize"},
	{"per needs spaces", "mPer", Unknown, "Don't recognize"},
	{"stacked symbol prefixes", "kks", Unknown, "Don't recognize"},
	{"whitespace only", " ", Syntax, ""},
	{"unclosed paren", "(kg", Syntax, ""},
	{"text after close paren", "kg)m", Syntax, "Unexpected text"},
	{"huge power", "m^999", Syntax, "out of range"},
	{"missing exponent", "kg**", Syntax, "missing integer"},
	{"missing caret exponent", "m^", Syntax, "missing integer"},
	{"doubled operators", "kg*/m", Syntax, ""},
	{"doubled shift", "kg @ @ 20", Syntax, ""},
	{"bare shift word", "since", Syntax, ""},
	{"log without reference", "lg(re)", Syntax, ""},
	{"log unclosed", "lg(re 1", Syntax, ""},
	{"date origin on a length", "m since 2000-01-01", Syntax, "Unexpected text"},
	{"leap second off the hour", "seconds since 2000-01-01 12:00:60", Syntax, "out of range"},
	{"negative zero timezone", "seconds since 2000-01-01 12:00 -0:00", Syntax, "-00:00"},
	{"month out of range", "seconds since 2000-13-01", Syntax, "out of range"},
	{"day out of range", "seconds since 2000-01-32", Syntax, "out of range"},
	{"embedded newline", "m\nm", Syntax, "newline"},
}

func Test_Parse_errors(t *testing.T) {
	sys := &testSystem{}
	for _, c := range errorCases {
		u, err := Parse(sys, c.spec, UTF8)
		if err == nil {
			t.Fatalf("%s: Parse(%q) = %v, want failure", c.name, c.spec, u)
		}
		if got := StatusOf(err); got != c.status {
			t.Fatalf("%s: Parse(%q) status = %v, want %v", c.name, c.spec, got, c.status)
		}
		if c.contains != "" && !strings.Contains(err.Error(), c.contains) {
			t.Fatalf("%s: Parse(%q) error %q does not mention %q", c.name, c.spec, err, c.contains)
		}
	}
}

func Test_Parse_nilSystem(t *testing.T) {
	_, err := Parse(nil, "m", UTF8)
	if StatusOf(err) != BadArg {
		t.Fatalf("Parse(nil, ...) status = %v, want BadArg", StatusOf(err))
	}
}

// Without a second in the system nothing is a time, so a date after a
// shift scans as a plain number and the rest of it trips the residue
// check instead of crashing.
func Test_Parse_noSecond(t *testing.T) {
	sys := &testSystem{noSecond: true}
	_, err := Parse(sys, "seconds since 2000-01-01", UTF8)
	if StatusOf(err) != Syntax {
		t.Fatalf("status = %v, want Syntax", StatusOf(err))
	}
}

// All spellings of multiplication are the same multiplication.
func Test_Parse_multiplySpellings(t *testing.T) {
	sys := &testSystem{}
	want, err := Parse(sys, "m s", UTF8)
	if err != nil {
		t.Fatal(err)
	}
	for _, spec := range []string{"m*s", "m·s", "m.s", "m-s"} {
		u, err := Parse(sys, spec, UTF8)
		if err != nil {
			t.Fatalf("Parse(%q) failed: %v", spec, err)
		}
		if u != want {
			t.Fatalf("Parse(%q) = %v, want %v", spec, u, want)
		}
	}
}

func Test_Parse_latin1(t *testing.T) {
	sys := &testSystem{}
	u, err := Parse(sys, "\xb5W", Latin1)
	if err != nil {
		t.Fatalf("Parse latin1 µW failed: %v", err)
	}
	if u != "1e-06 W" {
		t.Fatalf("Parse latin1 µW = %v, want 1e-06 W", u)
	}

	// a Latin-1 input and its UTF-8 transcoding parse identically
	utf8U, err := Parse(sys, latin1ToUTF8("\xb5W"), UTF8)
	if err != nil {
		t.Fatal(err)
	}
	if u != utf8U {
		t.Fatalf("latin1 %v != utf8 %v", u, utf8U)
	}

	// NBSP is trimmed from Latin-1 input but is a letter inside one
	if _, err := Parse(sys, "\xa0m\xa0", Latin1); err != nil {
		t.Fatalf("NBSP-padded latin1 input failed: %v", err)
	}
}

func Test_SetErrorHandler(t *testing.T) {
	var got string
	previous := SetErrorHandler(func(format string, args ...interface{}) {
		got = fmt.Sprintf(format, args...)
	})
	defer SetErrorHandler(previous)

	sys := &testSystem{}
	_, err := Parse(sys, "foobar", UTF8)
	if err == nil {
		t.Fatal("expected failure")
	}
	if !strings.Contains(got, "Don't recognize") {
		t.Fatalf("handler saw %q, want the unknown-identifier message", got)
	}
}
