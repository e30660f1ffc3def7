// Loader for XML unit databases in the conventional layout:
//
//	<unit-system>
//	  <prefix><value>1e-3</value><name>milli</name><symbol>m</symbol></prefix>
//	  <unit><base/><name><singular>meter</singular><plural>meters</plural></name><symbol>m</symbol></unit>
//	  <unit><def>1.702 m</def><name><singular>smoot</singular></name></unit>
//	</unit-system>
//
// Databases ending in .gz are decompressed transparently.

package system

import (
	"encoding/xml"
	"io"
	"os"
	"strings"

	"github.com/klauspost/compress/gzip"
)

type xmlDatabase struct {
	XMLName  xml.Name    `xml:"unit-system"`
	Prefixes []xmlPrefix `xml:"prefix"`
	Units    []xmlUnit   `xml:"unit"`
}

type xmlPrefix struct {
	Value   float64  `xml:"value"`
	Name    string   `xml:"name"`
	Symbols []string `xml:"symbol"`
}

type xmlUnit struct {
	Base          *struct{}   `xml:"base"`
	Dimensionless *struct{}   `xml:"dimensionless"`
	Name          *xmlName    `xml:"name"`
	Symbols       []string    `xml:"symbol"`
	Def           string      `xml:"def"`
	Aliases       *xmlAliases `xml:"aliases"`
}

type xmlName struct {
	Singular string `xml:"singular"`
	Plural   string `xml:"plural"`
}

type xmlAliases struct {
	Names   []xmlName `xml:"name"`
	Symbols []string  `xml:"symbol"`
}

// ReadXML loads a unit system from an XML database file.
func ReadXML(path string) (*System, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	var r io.Reader = f
	if strings.HasSuffix(path, ".gz") {
		zr, err := gzip.NewReader(f)
		if err != nil {
			return nil, err
		}
		defer zr.Close()
		r = zr
	}
	return LoadXML(r)
}

// LoadXML loads a unit system from XML.
func LoadXML(r io.Reader) (*System, error) {
	var db xmlDatabase
	if err := xml.NewDecoder(r).Decode(&db); err != nil {
		return nil, err
	}

	prefixes := make([]prefixDef, 0, len(db.Prefixes))
	for _, p := range db.Prefixes {
		prefixes = append(prefixes, prefixDef{name: p.Name, value: p.Value, symbols: p.Symbols})
	}

	var units []unitDef
	for _, u := range db.Units {
		d := unitDef{
			base:    u.Base != nil,
			dimless: u.Dimensionless != nil,
			def:     strings.TrimSpace(u.Def),
			symbols: u.Symbols,
		}
		if u.Name != nil {
			d.name = u.Name.Singular
			d.plural = u.Name.Plural
		}
		if u.Aliases != nil {
			for _, a := range u.Aliases.Names {
				d.aliases = append(d.aliases, alias{name: a.Singular, plural: a.Plural})
			}
			d.symbols = append(append([]string{}, d.symbols...), u.Aliases.Symbols...)
		}
		units = append(units, d)
	}
	return build(prefixes, units)
}
