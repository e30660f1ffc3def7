package system

import (
	"math"
	"testing"

	"github.com/MattSimmons1/unit/parser"
)

func Test_GetConverter(t *testing.T) {
	sys := Default()

	third, err := parser.Parse(sys, "(1/3) s", parser.UTF8)
	if err != nil {
		t.Fatal(err)
	}
	ms, err := parser.Parse(sys, "ms", parser.UTF8)
	if err != nil {
		t.Fatal(err)
	}
	c, err := GetConverter(third, ms)
	if err != nil {
		t.Fatal(err)
	}
	if got := c(1); math.Abs(got-333.3333333) > 1e-4 {
		t.Fatalf("(1/3) s = %g ms, want ≈333.333", got)
	}

	celsius, _ := parser.Parse(sys, "celsius", parser.UTF8)
	kelvin, _ := parser.Parse(sys, "K", parser.UTF8)
	c, err = GetConverter(celsius, kelvin)
	if err != nil {
		t.Fatal(err)
	}
	if got := c(25); math.Abs(got-298.15) > 1e-9 {
		t.Fatalf("25 °C = %g K, want 298.15", got)
	}
	back, err := GetConverter(kelvin, celsius)
	if err != nil {
		t.Fatal(err)
	}
	if got := back(273.15); math.Abs(got) > 1e-9 {
		t.Fatalf("273.15 K = %g °C, want 0", got)
	}

	perch, _ := parser.Parse(sys, "perch", parser.UTF8)
	meter, _ := parser.Parse(sys, "m", parser.UTF8)
	if got, err := Convert(1, perch, meter); err != nil || math.Abs(got-5.0292) > 1e-9 {
		t.Fatalf("1 perch = %g m (%v), want 5.0292", got, err)
	}
}

func Test_GetConverter_errors(t *testing.T) {
	sys := Default()
	m, _ := parser.Parse(sys, "m", parser.UTF8)
	s, _ := parser.Parse(sys, "s", parser.UTF8)

	if _, err := GetConverter(m, s); err == nil {
		t.Fatal("meters to seconds should not convert")
	}
	if _, err := GetConverter(nil, m); err == nil {
		t.Fatal("nil unit should not convert")
	}

	lg, _ := parser.Parse(sys, "lg(re 1 mW)", parser.UTF8)
	if _, err := GetConverter(lg, m); err == nil {
		t.Fatal("log units should not convert here")
	}

	since, _ := parser.Parse(sys, "seconds since 2000-01-01", parser.UTF8)
	if _, err := GetConverter(since, s); err == nil {
		t.Fatal("timestamp units should not convert here")
	}
}
