package parser

// resolve looks an identifier up in the unit system, peeling prefixes off
// the front until the remainder is a known name or symbol. Any number of
// prefix names may be peeled but at most one prefix symbol, so symbol
// prefixes cannot stack ("kks" is not kilo-kilo-second). The result is
// the matched unit scaled by the product of the peeled prefixes, or nil
// if the identifier never resolves.
func resolve(sys System, id string) Unit {
	factor := 1.0
	symbolPrefixSeen := false
	rest := id
	for rest != "" {
		if u := sys.UnitByName(rest); u != nil {
			return sys.Scale(factor, u)
		}
		if u := sys.UnitBySymbol(rest); u != nil {
			return sys.Scale(factor, u)
		}
		if value, n, ok := sys.PrefixByName(rest); ok {
			factor *= value
			rest = rest[n:]
			continue
		}
		if !symbolPrefixSeen {
			if value, n, ok := sys.PrefixBySymbol(rest); ok {
				symbolPrefixSeen = true
				factor *= value
				rest = rest[n:]
				continue
			}
		}
		break
	}
	return nil
}
