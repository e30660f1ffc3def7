// Extraction of unit specifications embedded in foreign files: CDL text
// of the kind ncdump prints carries them as attributes,
//
//	temperature:units = "K" ;
//
// so tooling can validate every units attribute in a dump.

package parser

import "strings"

// Extract returns the values of all units attributes in CDL-style text,
// in order of appearance.
func Extract(input string) []string {
	var specs []string
	rest := input
	for {
		i := strings.Index(rest, "units")
		if i < 0 {
			return specs
		}
		if spec, after, ok := scanAttribute(rest, i); ok {
			specs = append(specs, spec)
			rest = after
		} else {
			rest = rest[i+len("units"):]
		}
	}
}

// scanAttribute checks that "units" at offset i is a whole attribute name
// followed by = "value", and returns the value and the remaining text.
func scanAttribute(text string, i int) (string, string, bool) {
	if i > 0 {
		switch text[i-1] {
		case ':', ' ', '\t', '\n':
		default:
			return "", "", false
		}
	}
	j := i + len("units")
	for j < len(text) && (text[j] == ' ' || text[j] == '\t') {
		j++
	}
	if j >= len(text) || text[j] != '=' {
		return "", "", false
	}
	j++
	for j < len(text) && (text[j] == ' ' || text[j] == '\t') {
		j++
	}
	if j >= len(text) || text[j] != '"' {
		return "", "", false
	}
	j++
	end := strings.IndexByte(text[j:], '"')
	if end < 0 {
		return "", "", false
	}
	return text[j : j+end], text[j+end+1:], true
}
