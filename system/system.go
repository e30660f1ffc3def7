// The unit-system tables: names, symbols, and prefixes, with the lookup
// rules identifier resolution needs.

package system

import (
	"fmt"
	"strings"

	"github.com/MattSimmons1/unit/parser"
)

type prefixEntry struct {
	text  string
	value float64
}

// System is a catalog of base units, named units, symbols, and prefixes.
// It satisfies parser.System. A System is safe to share between parses as
// long as nobody is adding units at the same time.
type System struct {
	names         map[string]*Unit
	symbols       map[string]*Unit
	prefixNames   []prefixEntry
	prefixSymbols []prefixEntry
	one           *Unit
	second        *Unit
}

// New returns an empty unit system containing only the dimensionless one.
func New() *System {
	s := &System{
		names:   make(map[string]*Unit),
		symbols: make(map[string]*Unit),
	}
	s.one = &Unit{sys: s, kind: kindProduct, scale: 1, dims: map[string]int{}}
	return s
}

// AddBase registers a new base unit under its name, plural, and symbol.
// The base named "second" becomes the system's time dimension.
func (s *System) AddBase(name, plural, symbol string) (*Unit, error) {
	key := symbol
	if key == "" {
		key = name
	}
	u := &Unit{sys: s, kind: kindProduct, scale: 1, dims: map[string]int{key: 1}}
	if err := s.register(name, plural, symbol, u); err != nil {
		return nil, err
	}
	if name == "second" {
		s.second = u
	}
	return u, nil
}

func (s *System) register(name, plural, symbol string, u *Unit) error {
	if name != "" {
		if err := s.MapNameToUnit(name, u); err != nil {
			return err
		}
	}
	if plural != "" {
		if err := s.MapNameToUnit(plural, u); err != nil {
			return err
		}
	}
	if symbol != "" {
		if err := s.MapSymbolToUnit(symbol, u); err != nil {
			return err
		}
	}
	return nil
}

// MapNameToUnit maps a name to a unit. Names are unique.
func (s *System) MapNameToUnit(name string, u parser.Unit) error {
	un := toUnit(u)
	if un == nil || name == "" {
		return fmt.Errorf("can't map %q: bad unit or name", name)
	}
	if _, ok := s.names[name]; ok {
		return fmt.Errorf("name %q is already mapped", name)
	}
	s.names[name] = un.clone()
	return nil
}

// MapSymbolToUnit maps a symbol to a unit. Symbols are unique.
func (s *System) MapSymbolToUnit(symbol string, u parser.Unit) error {
	un := toUnit(u)
	if un == nil || symbol == "" {
		return fmt.Errorf("can't map %q: bad unit or symbol", symbol)
	}
	if _, ok := s.symbols[symbol]; ok {
		return fmt.Errorf("symbol %q is already mapped", symbol)
	}
	s.symbols[symbol] = un.clone()
	return nil
}

// AddPrefix registers a prefix under its name and any symbol spellings.
func (s *System) AddPrefix(value float64, name string, symbols ...string) {
	if name != "" {
		s.prefixNames = append(s.prefixNames, prefixEntry{name, value})
	}
	for _, sym := range symbols {
		if sym != "" {
			s.prefixSymbols = append(s.prefixSymbols, prefixEntry{sym, value})
		}
	}
}

// UnitByName returns the unit a name maps to, or nil.
func (s *System) UnitByName(name string) parser.Unit {
	u, ok := s.names[name]
	if !ok {
		return nil
	}
	return u.clone()
}

// UnitBySymbol returns the unit a symbol maps to, or nil.
func (s *System) UnitBySymbol(symbol string) parser.Unit {
	u, ok := s.symbols[symbol]
	if !ok {
		return nil
	}
	return u.clone()
}

// PrefixByName reports the longest prefix name starting str.
func (s *System) PrefixByName(str string) (float64, int, bool) {
	return longestPrefix(s.prefixNames, str)
}

// PrefixBySymbol reports the longest prefix symbol starting str.
func (s *System) PrefixBySymbol(str string) (float64, int, bool) {
	return longestPrefix(s.prefixSymbols, str)
}

func longestPrefix(entries []prefixEntry, str string) (float64, int, bool) {
	best := 0
	var value float64
	for _, e := range entries {
		if len(e.text) > best && strings.HasPrefix(str, e.text) {
			best = len(e.text)
			value = e.value
		}
	}
	if best == 0 {
		return 0, 0, false
	}
	return value, best, true
}
