// Canonical rendering of unit expressions.

package system

import (
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"

	"github.com/MattSimmons1/unit/parser"
)

// Format renders a unit in its canonical UTF-8 form: base symbols joined
// with a middle dot and superscript powers, "@" for shifted origins, a UTC
// timestamp for time origins, and "lg(re ...)" for logarithmic units.
func Format(u parser.Unit) string {
	un := toUnit(u)
	if un == nil {
		return ""
	}
	switch un.kind {
	case kindLog:
		return fmt.Sprintf("%s(re %s)", logName(un.base), Format(un.ref))
	case kindTimestamp:
		year, month, day, hour, minute, second := parser.DecodeTime(un.origin)
		return fmt.Sprintf("%s since %04d-%02d-%02d %02d:%02d:%s UTC",
			formatProduct(un), year, month, day, hour, minute, formatSeconds(second))
	case kindOffset:
		return fmt.Sprintf("%s @ %s", formatProduct(un), formatNumber(un.origin/un.scale))
	default:
		return formatProduct(un)
	}
}

func formatProduct(un *Unit) string {
	keys := make([]string, 0, len(un.dims))
	for k := range un.dims {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var b strings.Builder
	if un.scale != 1 || len(keys) == 0 {
		b.WriteString(formatNumber(un.scale))
	}
	for _, k := range keys {
		if b.Len() > 0 {
			b.WriteString("·")
		}
		b.WriteString(k)
		if p := un.dims[k]; p != 1 {
			b.WriteString(superscript(p))
		}
	}
	return b.String()
}

func formatNumber(f float64) string {
	return strconv.FormatFloat(f, 'g', -1, 64)
}

func formatSeconds(s float64) string {
	if s == math.Trunc(s) {
		return fmt.Sprintf("%02.0f", s)
	}
	text := strconv.FormatFloat(s, 'f', -1, 64)
	if s < 10 {
		text = "0" + text
	}
	return text
}

func logName(base float64) string {
	switch {
	case base == 2:
		return "lb"
	case base == 10:
		return "lg"
	case math.Abs(base-math.E) < 1e-12:
		return "ln"
	}
	return fmt.Sprintf("log%s", formatNumber(base))
}

var superDigits = map[rune]string{
	'0': "⁰", '1': "¹", '2': "²", '3': "³", '4': "⁴",
	'5': "⁵", '6': "⁶", '7': "⁷", '8': "⁸", '9': "⁹",
	'-': "⁻",
}

func superscript(power int) string {
	var b strings.Builder
	for _, r := range strconv.Itoa(power) {
		b.WriteString(superDigits[r])
	}
	return b.String()
}
