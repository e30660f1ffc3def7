// Loader for YAML unit databases carrying the same content as the XML
// form:
//
//	prefixes:
//	  - name: milli
//	    value: 1e-3
//	    symbols: [m]
//	units:
//	  - name: meter
//	    plural: meters
//	    symbol: m
//	    base: true
//	  - name: smoot
//	    definition: 1.702 m

package system

import (
	"io"
	"os"

	"gopkg.in/yaml.v2"
)

type yamlDatabase struct {
	Prefixes []yamlPrefix `yaml:"prefixes"`
	Units    []yamlUnit   `yaml:"units"`
}

type yamlPrefix struct {
	Name    string   `yaml:"name"`
	Value   float64  `yaml:"value"`
	Symbol  string   `yaml:"symbol"`
	Symbols []string `yaml:"symbols"`
}

type yamlUnit struct {
	Name          string   `yaml:"name"`
	Plural        string   `yaml:"plural"`
	Symbol        string   `yaml:"symbol"`
	Symbols       []string `yaml:"symbols"`
	Aliases       []string `yaml:"aliases"`
	Base          bool     `yaml:"base"`
	Dimensionless bool     `yaml:"dimensionless"`
	Definition    string   `yaml:"definition"`
}

// ReadYAML loads a unit system from a YAML database file.
func ReadYAML(path string) (*System, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return LoadYAML(f)
}

// LoadYAML loads a unit system from YAML.
func LoadYAML(r io.Reader) (*System, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	var db yamlDatabase
	if err := yaml.Unmarshal(raw, &db); err != nil {
		return nil, err
	}

	prefixes := make([]prefixDef, 0, len(db.Prefixes))
	for _, p := range db.Prefixes {
		symbols := p.Symbols
		if p.Symbol != "" {
			symbols = append([]string{p.Symbol}, symbols...)
		}
		prefixes = append(prefixes, prefixDef{name: p.Name, value: p.Value, symbols: symbols})
	}

	units := make([]unitDef, 0, len(db.Units))
	for _, u := range db.Units {
		symbols := u.Symbols
		if u.Symbol != "" {
			symbols = append([]string{u.Symbol}, symbols...)
		}
		d := unitDef{
			name:    u.Name,
			plural:  u.Plural,
			symbols: symbols,
			base:    u.Base,
			dimless: u.Dimensionless,
			def:     u.Definition,
		}
		for _, a := range u.Aliases {
			d.aliases = append(d.aliases, alias{name: a})
		}
		units = append(units, d)
	}
	return build(prefixes, units)
}
