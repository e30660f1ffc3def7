package system

import (
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/klauspost/compress/gzip"

	"github.com/MattSimmons1/unit/parser"
)

// The foot is defined before the inch on purpose: definitions may refer
// forward and the loader resolves them to a fix-point.
const xmlFixture = `<?xml version="1.0" encoding="UTF-8"?>
<unit-system>
  <prefix><value>1000</value><name>kilo</name><symbol>k</symbol></prefix>
  <prefix><value>1e-3</value><name>milli</name><symbol>m</symbol></prefix>
  <unit><base/><name><singular>meter</singular><plural>meters</plural></name><symbol>m</symbol></unit>
  <unit><base/><name><singular>second</singular><plural>seconds</plural></name><symbol>s</symbol></unit>
  <unit><dimensionless/><name><singular>radian</singular><plural>radians</plural></name><symbol>rad</symbol></unit>
  <unit><def>12 in</def><name><singular>foot</singular><plural>feet</plural></name><symbol>ft</symbol></unit>
  <unit><def>0.0254 meter</def><name><singular>inch</singular><plural>inches</plural></name><aliases><name><singular>in</singular></name></aliases></unit>
  <unit><def>1.702 m</def><name><singular>smoot</singular><plural>smoots</plural></name></unit>
</unit-system>
`

func checkLoaded(t *testing.T, sys *System) {
	t.Helper()

	u, err := parser.Parse(sys, "2 smoots", parser.UTF8)
	if err != nil {
		t.Fatalf("2 smoots: %v", err)
	}
	if !Equivalent(u, sys.Scale(2*1.702, sys.UnitBySymbol("m"))) {
		t.Fatalf("2 smoots = %s", Format(u))
	}

	foot, err := parser.Parse(sys, "ft", parser.UTF8)
	if err != nil {
		t.Fatalf("ft: %v", err)
	}
	if got, err := Convert(1, foot, sys.UnitBySymbol("m")); err != nil || math.Abs(got-0.3048) > 1e-9 {
		t.Fatalf("1 ft = %g m (%v), want 0.3048", got, err)
	}

	if _, err := parser.Parse(sys, "km", parser.UTF8); err != nil {
		t.Fatalf("km: %v", err)
	}
	if _, err := parser.Parse(sys, "seconds since 2000-01-01", parser.UTF8); err != nil {
		t.Fatalf("timestamp in loaded system: %v", err)
	}
	if !Equivalent(sys.UnitByName("radian"), sys.DimensionlessOne()) {
		t.Fatal("radian should load as the dimensionless one")
	}
}

func Test_LoadXML(t *testing.T) {
	sys, err := LoadXML(strings.NewReader(xmlFixture))
	if err != nil {
		t.Fatal(err)
	}
	checkLoaded(t, sys)
}

func Test_ReadXML_gzip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "units.xml.gz")
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	zw := gzip.NewWriter(f)
	if _, err := zw.Write([]byte(xmlFixture)); err != nil {
		t.Fatal(err)
	}
	if err := zw.Close(); err != nil {
		t.Fatal(err)
	}
	if err := f.Close(); err != nil {
		t.Fatal(err)
	}

	sys, err := ReadXML(path)
	if err != nil {
		t.Fatal(err)
	}
	checkLoaded(t, sys)
}

func Test_LoadXML_unresolvable(t *testing.T) {
	const bad = `<unit-system>
  <unit><def>2 nothing</def><name><singular>broken</singular></name></unit>
</unit-system>`
	if _, err := LoadXML(strings.NewReader(bad)); err == nil {
		t.Fatal("an unresolvable definition should fail the load")
	}
}

const yamlFixture = `prefixes:
  - name: kilo
    value: 1000
    symbol: k
  - name: milli
    value: 0.001
    symbol: m
units:
  - name: meter
    plural: meters
    symbol: m
    base: true
  - name: second
    plural: seconds
    symbol: s
    base: true
  - name: radian
    plural: radians
    symbol: rad
    dimensionless: true
  - name: foot
    plural: feet
    symbol: ft
    definition: 12 in
  - name: inch
    plural: inches
    aliases: [in]
    definition: 0.0254 meter
  - name: smoot
    plural: smoots
    definition: 1.702 m
`

func Test_LoadYAML(t *testing.T) {
	sys, err := LoadYAML(strings.NewReader(yamlFixture))
	if err != nil {
		t.Fatal(err)
	}
	checkLoaded(t, sys)
}

func Test_ReadYAML_file(t *testing.T) {
	path := filepath.Join(t.TempDir(), "units.yaml")
	if err := os.WriteFile(path, []byte(yamlFixture), 0o644); err != nil {
		t.Fatal(err)
	}
	sys, err := ReadYAML(path)
	if err != nil {
		t.Fatal(err)
	}
	checkLoaded(t, sys)
}
