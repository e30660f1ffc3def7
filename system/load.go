// Shared machinery for the database loaders. A database is a list of
// prefixes and units; derived units are defined by unit expressions that
// may refer to each other, so definitions are resolved to a fix-point.

package system

import (
	"fmt"

	"github.com/MattSimmons1/unit/parser"
)

type alias struct {
	name   string
	plural string
}

type unitDef struct {
	name    string
	plural  string
	symbols []string
	aliases []alias
	base    bool
	dimless bool
	def     string
}

type prefixDef struct {
	name    string
	value   float64
	symbols []string
}

func build(prefixes []prefixDef, units []unitDef) (*System, error) {
	s := New()
	for _, p := range prefixes {
		s.AddPrefix(p.value, p.name, p.symbols...)
	}

	var pending []unitDef
	for _, u := range units {
		switch {
		case u.base:
			bu, err := s.AddBase(u.name, u.plural, firstSymbol(u))
			if err != nil {
				return nil, err
			}
			if err := registerExtras(s, u, bu); err != nil {
				return nil, err
			}
		case u.dimless && u.def == "":
			if err := registerDef(s, u, s.one); err != nil {
				return nil, err
			}
		default:
			pending = append(pending, u)
		}
	}

	// definitions may refer forward; keep resolving until nothing new does
	for len(pending) > 0 {
		var unresolved []unitDef
		for _, u := range pending {
			pu, err := parser.Parse(s, u.def, parser.UTF8)
			if err != nil {
				unresolved = append(unresolved, u)
				continue
			}
			if err := registerDef(s, u, toUnit(pu)); err != nil {
				return nil, err
			}
		}
		if len(unresolved) == len(pending) {
			return nil, fmt.Errorf("can't resolve unit definition %q for %q",
				unresolved[0].def, unresolved[0].name)
		}
		pending = unresolved
	}
	return s, nil
}

func firstSymbol(u unitDef) string {
	if len(u.symbols) > 0 {
		return u.symbols[0]
	}
	return ""
}

func registerDef(s *System, u unitDef, un *Unit) error {
	if err := s.register(u.name, u.plural, firstSymbol(u), un); err != nil {
		return err
	}
	return registerExtras(s, u, un)
}

// registerExtras maps the secondary symbols and alias names of a unit.
func registerExtras(s *System, u unitDef, un *Unit) error {
	for i := 1; i < len(u.symbols); i++ {
		if err := s.MapSymbolToUnit(u.symbols[i], un); err != nil {
			return err
		}
	}
	for _, a := range u.aliases {
		if err := s.register(a.name, a.plural, "", un); err != nil {
			return err
		}
	}
	return nil
}
