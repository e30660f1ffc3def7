// unit expression lexer
// Heavily based on https://github.com/golang/go/tree/master/src/text/template/parse
// See this talk for a great explanation of how it works: https://www.youtube.com/watch?v=HxaD_trXwRE

package parser

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"unicode/utf8"
)

// Pos represents a byte position in the original input text from which
// this specification was parsed.
type Pos int

// item represents a token or text string returned from the scanner.
type item struct {
	typ     itemType // The type of this item.
	pos     Pos      // The starting position, in bytes, of this item in the input string.
	val     string   // The lexeme.
	ival    int64    // Value of itemInt and itemExponent.
	fval    float64  // Value of itemReal, itemDate, itemClock, itemTZClock, itemLogRef.
	message string   // User-facing explanation for itemError.
}

func (i item) String() string {
	switch {
	case i.typ == itemEOF:
		return "EOF"
	case i.typ == itemError:
		return i.message
	case len(i.val) > 10:
		return fmt.Sprintf("%.10q...", i.val)
	}
	return fmt.Sprintf("%q", i.val)
}

// itemType identifies the type of lex items.
type itemType int

const (
	itemError itemType = iota // error occurred; message is the explanation
	itemEOF
	itemInt        // signed integer
	itemReal       // signed real; NaN and the infinities are rejected during the scan
	itemID         // identifier, exactly as written
	itemShift      // @, after, from, since, ref
	itemMultiply   // -, ., *, ·, or a run of spaces between operands
	itemDivide     // /, or per with space on both sides
	itemExponent   // ^N, **N, or superscript digits
	itemDate       // seconds from the epoch to midnight of the date, UTC
	itemClock      // seconds since midnight
	itemTZClock    // signed timezone offset in seconds, East positive
	itemUTC        // Z, GMT, or UTC
	itemLogRef     // <log>(re — the opening of a logarithmic reference
	itemLeftParen
	itemRightParen
)

const eof = -1

// Space characters inside a specification. Newline is deliberately not one
// of them: an embedded newline is a syntax error.
const (
	spaceChars = " \t\r\f\v"
	digits     = "0123456789"
)

// tsContext tracks where the scanner is inside a timestamp, so that digit
// runs after a shift lex as dates, clocks, and timezones instead of numbers.
type tsContext int

const (
	ctxNone  tsContext = iota
	ctxShift           // a shift operator was just emitted
	ctxDate            // a date was just emitted; a clock may follow
	ctxClock           // a clock was just emitted; a timezone may follow
)

// stateFn represents the state of the scanner as a function that returns the next state.
type stateFn func(*lexer) stateFn

// lexer holds the state of the scanner.
type lexer struct {
	input       string    // the string being scanned
	pos         Pos       // current position in the input
	start       Pos       // start position of this item
	width       Pos       // width of last rune read from input
	state       stateFn   // next state to run
	pending     []item    // scanned items not yet handed to the parser
	lastTyp     itemType  // type of the most recently emitted item
	delimited   bool      // a word operator may start here (start of input, after '(' or spaces)
	ctx         tsContext // timestamp sub-lexer context
	timeContext bool      // set by the parser: the current product converts to seconds
}

var verbose = false

func SetVerbose() {
	verbose = true
}

func log(message string) {
	if verbose {
		if message == "lexSpec" {
			fmt.Print("\n", "\033[92m", message, "\033[0m")
		} else if strings.HasPrefix(message, "lex") {
			fmt.Print("/", "\033[92m", message, "\033[0m")
		} else {
			fmt.Print("/", message)
		}
	}
}

// next returns the next rune in the input.
func (l *lexer) next() rune {
	if int(l.pos) >= len(l.input) {
		l.width = 0
		return eof
	}
	r, w := utf8.DecodeRuneInString(l.input[l.pos:])
	l.width = Pos(w)
	l.pos += l.width
	return r
}

// peek returns but does not consume the next rune in the input.
func (l *lexer) peek() rune {
	r := l.next()
	l.backup()
	return r
}

// backup steps back one rune. Can only be called once per call of next.
func (l *lexer) backup() {
	l.pos -= l.width
}

// digitAt reports whether the byte at the given offset from the current
// position is an ASCII digit.
func (l *lexer) digitAt(offset int) bool {
	i := int(l.pos) + offset
	return i < len(l.input) && isDigitByte(l.input[i])
}

// byteAt returns the byte at the given offset from the current position,
// or 0 past the end of the input.
func (l *lexer) byteAt(offset int) byte {
	i := int(l.pos) + offset
	if i >= len(l.input) {
		return 0
	}
	return l.input[i]
}

// emit passes an item back to the client.
func (l *lexer) emit(t itemType) {
	l.emitItem(item{typ: t, pos: l.start, val: l.input[l.start:l.pos]})
}

func (l *lexer) emitItem(it item) {
	l.pending = append(l.pending, it)
	l.lastTyp = it.typ
	switch it.typ {
	case itemShift:
		l.ctx = ctxShift
	case itemDate:
		l.ctx = ctxDate
	case itemClock:
		l.ctx = ctxClock
	default:
		l.ctx = ctxNone
	}
	l.delimited = it.typ == itemLeftParen
	l.start = l.pos
}

// ignore skips over the pending input before this point.
func (l *lexer) ignore() {
	l.start = l.pos
}

// accept consumes the next rune if it's from the valid set.
func (l *lexer) accept(valid string) bool {
	if strings.ContainsRune(valid, l.next()) {
		return true
	}
	l.backup()
	return false
}

// acceptRun consumes a run of runes from the valid set.
func (l *lexer) acceptRun(valid string) {
	for strings.ContainsRune(valid, l.next()) {
	}
	l.backup()
}

// errorf emits an error item and terminates the scan by returning a nil
// state. The message is the user-facing explanation the parser hands to
// the error reporter.
func (l *lexer) errorf(format string, args ...interface{}) stateFn {
	l.emitItem(item{typ: itemError, pos: l.start, val: l.input[l.start:l.pos], message: fmt.Sprintf(format, args...)})
	return nil
}

// nextItem returns the next item from the input. Items are produced on
// demand rather than through a channel: the parser feeds the time-context
// flag back into the scanner between tokens, so the scanner must not run
// ahead of the parser.
func (l *lexer) nextItem() item {
	for len(l.pending) == 0 {
		if l.state == nil {
			return item{typ: itemEOF, pos: l.pos}
		}
		l.state = l.state(l)
	}
	it := l.pending[0]
	l.pending = l.pending[1:]
	return it
}

// lex creates a new scanner for the input string.
func lex(input string) *lexer {
	return &lexer{
		input:     input,
		state:     lexSpec,
		delimited: true,
	}
}

// state functions

// lexSpec scans a unit specification.
func lexSpec(l *lexer) stateFn {
	log("lexSpec")

	switch r := l.next(); {
	case r == eof:
		l.emit(itemEOF)
		return nil
	case r == '\n':
		return l.errorf("unexpected newline in unit specification")
	case isSpace(r):
		l.backup()
		return lexSpace
	case r == '(':
		l.emit(itemLeftParen)
	case r == ')':
		l.emit(itemRightParen)
	case r == '*':
		if l.accept("*") {
			return lexExponent // '**N'
		}
		l.emit(itemMultiply)
	case r == '·':
		l.emit(itemMultiply)
	case r == '/':
		l.emit(itemDivide)
	case r == '^':
		return lexExponent
	case r == '@':
		l.emit(itemShift)
	case r == '+' || r == '-':
		return lexSigned
	case isDigit(r):
		l.backup()
		switch {
		case l.ctx == ctxShift && l.timeContext:
			return lexDate
		case l.ctx == ctxDate:
			return lexClock
		}
		return lexNumber
	case r == '.':
		if isDigit(l.peek()) {
			l.backup()
			return lexNumber
		}
		l.emit(itemMultiply)
	case r == '%' || r == '\'' || r == '"':
		l.emit(itemID)
	case isSuperscript(r):
		l.backup()
		return lexSuperscript
	case isLetter(r):
		l.backup()
		return lexIdentifier
	default:
		return l.errorf("unexpected character %q in unit specification", r)
	}
	return lexSpec
}

// lexSpace scans a run of space characters. A run between two operands is
// an implied multiplication; before an operator, a closing parenthesis, or
// the end of the input it is mere separation. The word operators are
// picked out here because they need whitespace on their left.
func lexSpace(l *lexer) stateFn {
	log("lexSpace")
	l.acceptRun(spaceChars)
	spaces := l.input[l.start:l.pos]
	spacesAt := l.start
	l.ignore()
	l.delimited = true

	if l.ctx != ctxNone {
		// inside a shift or timestamp, spaces only separate
		return lexSpec
	}
	if !isOperand(l.lastTyp) {
		return lexSpec
	}

	switch r := l.peek(); {
	case r == eof, r == ')', r == '*', r == '/', r == '^', r == '·', r == '@', r == '.', isSuperscript(r):
		return lexSpec
	case isLetter(r):
		mark := l.pos
		word := l.scanWord()
		if strings.EqualFold(word, "per") && strings.HasSuffix(spaces, " ") && l.peek() == ' ' {
			l.emit(itemDivide)
			return lexSpec
		}
		if isShiftWord(word) {
			l.emit(itemShift)
			return lexSpec
		}
		l.pos = mark
		l.start = mark
		l.emitItem(item{typ: itemMultiply, pos: spacesAt, val: spaces})
		return lexSpec
	default:
		l.emitItem(item{typ: itemMultiply, pos: spacesAt, val: spaces})
		return lexSpec
	}
}

// lexSigned scans whatever follows a leading '+' or '-': a signed number,
// a signed date or timezone in time context, a forbidden NaN/Inf literal,
// or — for '-' alone — a multiplication.
func lexSigned(l *lexer) stateFn {
	log("lexSigned")
	sign := l.input[l.start]

	switch r := l.peek(); {
	case isDigit(r):
		switch {
		case l.ctx == ctxShift && l.timeContext:
			return lexDate
		case l.ctx == ctxDate || l.ctx == ctxClock:
			return lexTZ
		}
		return lexNumber
	case r == '.' && l.digitAt(1):
		return lexNumber
	case isLetter(r):
		mark := l.pos
		word := l.scanWord()
		if isForbiddenNumber(word) {
			return l.errorf("NaN, Inf, and Infinity are not allowed: %q", l.input[l.start:l.pos])
		}
		l.pos = mark
	}
	if sign == '-' {
		l.emit(itemMultiply)
		return lexSpec
	}
	return l.errorf("unexpected character %q in unit specification", '+')
}

// lexNumber scans an integer or a real. An optional sign may already have
// been consumed. Integers that overflow int64 are re-read as reals.
func lexNumber(l *lexer) stateFn {
	log("lexNumber")
	l.accept("+-")
	l.acceptRun(digits)
	isReal := false
	if l.accept(".") {
		isReal = true
		l.acceptRun(digits)
	}
	if r := l.peek(); r == 'e' || r == 'E' {
		mark := l.pos
		l.next()
		l.accept("+-")
		expStart := l.pos
		l.acceptRun(digits)
		if l.pos == expStart {
			l.pos = mark // not an exponent after all
		} else {
			isReal = true
		}
	}
	text := l.input[l.start:l.pos]
	if !isReal {
		n, err := strconv.ParseInt(text, 10, 64)
		if err == nil {
			l.emitItem(item{typ: itemInt, pos: l.start, val: text, ival: n})
			return lexSpec
		}
	}
	f, err := strconv.ParseFloat(text, 64)
	if err != nil || math.IsInf(f, 0) {
		return l.errorf("bad number syntax: %q", text)
	}
	l.emitItem(item{typ: itemReal, pos: l.start, val: text, fval: f})
	return lexSpec
}

// lexExponent scans the integer of a '^N' or '**N' exponent. The operator
// has already been consumed.
func lexExponent(l *lexer) stateFn {
	log("lexExponent")
	opEnd := l.pos
	l.accept("+-")
	digStart := l.pos
	l.acceptRun(digits)
	if l.pos == digStart {
		return l.errorf("missing integer after %q", l.input[l.start:opEnd])
	}
	n, err := strconv.ParseInt(l.input[opEnd:l.pos], 10, 32)
	if err != nil {
		return l.errorf("exponent %q is out of range", l.input[opEnd:l.pos])
	}
	l.emitItem(item{typ: itemExponent, pos: l.start, val: l.input[l.start:l.pos], ival: n})
	return lexSpec
}

// lexSuperscript scans a run of superscript digits with an optional
// superscript sign.
func lexSuperscript(l *lexer) stateFn {
	log("lexSuperscript")
	sign := int64(1)
	switch l.peek() {
	case '⁻':
		sign = -1
		l.next()
	case '⁺':
		l.next()
	}
	var n int64
	seen := false
	for {
		d, ok := superValue(l.peek())
		if !ok {
			break
		}
		l.next()
		seen = true
		n = n*10 + int64(d)
		if n > math.MaxInt32 {
			return l.errorf("exponent %q is out of range", l.input[l.start:l.pos])
		}
	}
	if !seen {
		return l.errorf("missing digits after superscript sign")
	}
	l.emitItem(item{typ: itemExponent, pos: l.start, val: l.input[l.start:l.pos], ival: sign * n})
	return lexSpec
}

// lexIdentifier scans an identifier: a letter, or a letter followed by
// letters and digits and ending in a letter. Trailing digits belong to an
// exponent. Word operators, UTC markers, forbidden numeric literals, and
// logarithmic-reference openings are picked out of the scanned word.
func lexIdentifier(l *lexer) stateFn {
	log("lexIdentifier")
	for {
		r := l.next()
		if isLetter(r) || isDigit(r) {
			continue // absorb
		}
		l.backup()
		break
	}
	// a multicharacter identifier cannot end in a digit
	for l.pos > l.start && isDigitByte(l.input[l.pos-1]) {
		l.pos--
	}
	word := l.input[l.start:l.pos]
	log("word is " + word)

	switch {
	case (l.ctx == ctxDate || l.ctx == ctxClock) && isUTCWord(word):
		l.emit(itemUTC)
	case l.delimited && isShiftWord(word):
		l.emit(itemShift)
	case isForbiddenNumber(word):
		return l.errorf("NaN, Inf, and Infinity are not allowed: %q", word)
	case logBase(word) != 0 && l.scanLogRef():
		l.emitItem(item{typ: itemLogRef, pos: l.start, val: l.input[l.start:l.pos], fval: logBase(word)})
	default:
		l.emit(itemID)
	}
	return lexSpec
}

// scanLogRef tries to consume the rest of a logarithmic-reference opening,
// `<sp>* ( <sp>* re [:]? <sp>*`, after a log word. The position is
// restored when it does not match and the word is an ordinary identifier.
func (l *lexer) scanLogRef() bool {
	mark := l.pos
	l.acceptRun(spaceChars)
	if !l.accept("(") {
		l.pos = mark
		return false
	}
	l.acceptRun(spaceChars)
	if !l.accept("rR") || !l.accept("eE") {
		l.pos = mark
		return false
	}
	l.accept(":")
	l.acceptRun(spaceChars)
	return true
}

// lexDate scans a broken (Y[-M[-D]]) or packed (length-interpreted) date
// and the separator before an optional clock. An optional sign has already
// been consumed. Only entered after a shift when the product is a time.
func lexDate(l *lexer) stateFn {
	log("lexDate")
	negative := l.input[l.start] == '-'
	yearStart := l.pos
	l.acceptRun(digits)
	yearText := l.input[yearStart:l.pos]

	// a packed digit string with a decimal point or exponent is a real
	// number, not a date
	if r := l.peek(); r == '.' {
		return lexNumber
	} else if (r == 'e' || r == 'E') &&
		(l.digitAt(1) || ((l.byteAt(1) == '+' || l.byteAt(1) == '-') && l.digitAt(2))) {
		return lexNumber
	}

	year := 0
	month, day := 1, 1
	if l.peek() == '-' && l.digitAt(1) {
		// broken date
		if len(yearText) > 4 {
			return l.errorf("year in date %q has too many digits", l.input[l.start:l.pos])
		}
		year = atoi(yearText)
		l.next() // '-'
		mStart := l.pos
		l.acceptRun(digits)
		mText := l.input[mStart:l.pos]
		if len(mText) > 2 {
			return l.errorf("month in date %q has too many digits", l.input[l.start:l.pos])
		}
		month = atoi(mText)
		if l.peek() == '-' && l.digitAt(1) {
			l.next()
			dStart := l.pos
			l.acceptRun(digits)
			dText := l.input[dStart:l.pos]
			if len(dText) > 2 {
				return l.errorf("day in date %q has too many digits", l.input[l.start:l.pos])
			}
			day = atoi(dText)
		}
	} else {
		switch n := len(yearText); {
		case n <= 4:
			year = atoi(yearText)
		case n == 5, n == 6:
			year, month = atoi(yearText[:4]), atoi(yearText[4:])
		case n == 7, n == 8:
			year, month, day = atoi(yearText[:4]), atoi(yearText[4:6]), atoi(yearText[6:])
		default:
			return l.errorf("too many digits in date %q", yearText)
		}
	}
	if negative {
		year = -year
	}
	if month < 1 || month > 12 {
		return l.errorf("month in date %q is out of range", l.input[l.start:l.pos])
	}
	if day < 1 || day > 31 {
		return l.errorf("day in date %q is out of range", l.input[l.start:l.pos])
	}
	seconds := EncodeDate(year, month, day)

	// swallow the separator before an optional clock: 'T' directly against
	// the clock, or any number of spaces
	if l.peek() == 'T' && l.digitAt(1) {
		l.next()
	} else {
		l.acceptRun(spaceChars)
	}
	l.emitItem(item{typ: itemDate, pos: l.start, val: l.input[l.start:l.pos], fval: seconds})
	return lexSpec
}

// lexClock scans a broken (HH[:MM[:SS[.fff]]]) or packed clock. Field
// ranges are checked here; a leap second is only allowed at 23:59.
func lexClock(l *lexer) stateFn {
	log("lexClock")
	hStart := l.pos
	l.acceptRun(digits)
	first := l.input[hStart:l.pos]
	var hour, minute int
	var second float64

	if l.peek() == ':' {
		if len(first) > 2 {
			return l.errorf("hour in time %q has too many digits", l.input[l.start:l.pos])
		}
		hour = atoi(first)
		l.next() // ':'
		mStart := l.pos
		l.acceptRun(digits)
		mText := l.input[mStart:l.pos]
		if len(mText) == 0 || len(mText) > 2 {
			return l.errorf("bad minute in time %q", l.input[l.start:l.pos])
		}
		minute = atoi(mText)
		if l.peek() == ':' {
			l.next()
			sStart := l.pos
			l.acceptRun(digits)
			if l.pos == sStart {
				return l.errorf("bad second in time %q", l.input[l.start:l.pos])
			}
			if int(l.pos-sStart) > 2 {
				return l.errorf("second in time %q has too many digits", l.input[l.start:l.pos])
			}
			if l.accept(".") {
				l.acceptRun(digits)
			}
			second, _ = strconv.ParseFloat(l.input[sStart:l.pos], 64)
		}
	} else {
		n := len(first)
		switch n {
		case 1, 2:
			hour = atoi(first)
		case 3, 4:
			hour, minute = atoi(first[:2]), atoi(first[2:])
		case 5, 6:
			hour, minute = atoi(first[:2]), atoi(first[2:4])
			second = float64(atoi(first[4:]))
		default:
			return l.errorf("too many digits in time %q", first)
		}
		if l.peek() == '.' && l.digitAt(1) {
			if n < 5 {
				return l.errorf("fractional seconds in %q need a seconds field", l.input[l.start:l.pos])
			}
			fStart := l.pos
			l.next()
			l.acceptRun(digits)
			frac, _ := strconv.ParseFloat("0"+l.input[fStart:l.pos], 64)
			second += frac
		}
	}
	if hour > 23 {
		return l.errorf("hour in time %q is out of range", l.input[l.start:l.pos])
	}
	if minute > 59 {
		return l.errorf("minute in time %q is out of range", l.input[l.start:l.pos])
	}
	if second >= 61 || (second >= 60 && !(hour == 23 && minute == 59)) {
		return l.errorf("second in time %q is out of range", l.input[l.start:l.pos])
	}
	l.emitItem(item{
		typ: itemClock, pos: l.start, val: l.input[l.start:l.pos],
		fval: EncodeClock(hour, minute, second),
	})
	return lexSpec
}

// lexTZ scans a broken (±HH:MM) or packed timezone offset. The sign has
// already been consumed. East is positive; -00:00 is forbidden.
func lexTZ(l *lexer) stateFn {
	log("lexTZ")
	negative := l.input[l.start] == '-'
	dStart := l.pos
	l.acceptRun(digits)
	first := l.input[dStart:l.pos]
	var hour, minute int

	if l.peek() == ':' {
		if len(first) == 0 || len(first) > 2 {
			return l.errorf("bad hour in timezone %q", l.input[l.start:l.pos])
		}
		hour = atoi(first)
		l.next()
		mStart := l.pos
		l.acceptRun(digits)
		mText := l.input[mStart:l.pos]
		if len(mText) == 0 || len(mText) > 2 {
			return l.errorf("bad minute in timezone %q", l.input[l.start:l.pos])
		}
		minute = atoi(mText)
	} else {
		switch len(first) {
		case 1, 2:
			hour = atoi(first)
		case 3, 4:
			hour, minute = atoi(first[:2]), atoi(first[2:])
		default:
			return l.errorf("too many digits in timezone %q", l.input[l.start:l.pos])
		}
	}
	if minute > 59 || hour > 14 || (hour == 14 && minute > 0) {
		return l.errorf("timezone %q is out of range", l.input[l.start:l.pos])
	}
	if negative && hour == 0 && minute == 0 {
		return l.errorf("timezone -00:00 is not allowed")
	}
	offset := float64(hour*3600 + minute*60)
	if negative {
		offset = -offset
	}
	l.emitItem(item{typ: itemTZClock, pos: l.start, val: l.input[l.start:l.pos], fval: offset})
	return lexSpec
}

// scanWord consumes a word the way lexIdentifier would: letters and
// digits, never ending in a digit.
func (l *lexer) scanWord() string {
	start := l.pos
	for {
		r := l.next()
		if isLetter(r) || isDigit(r) {
			continue
		}
		l.backup()
		break
	}
	for l.pos > start && isDigitByte(l.input[l.pos-1]) {
		l.pos--
	}
	return l.input[start:l.pos]
}

// character classes and word tables

// isSpace reports whether r separates tokens. Newline is excluded on
// purpose; NBSP is a letter, not a space.
func isSpace(r rune) bool {
	return r == ' ' || r == '\t' || r == '\r' || r == '\f' || r == '\v'
}

// isLetter reports whether r can appear in an identifier: ASCII letters,
// underscore, and the Latin-1 letter-like set (NBSP, soft hyphen, °, µ,
// and the accented ranges; × and ÷ are excluded).
func isLetter(r rune) bool {
	switch {
	case r == '_', 'A' <= r && r <= 'Z', 'a' <= r && r <= 'z':
		return true
	case r == 0x00A0, r == 0x00AD, r == 0x00B0, r == 0x00B5:
		return true
	case 0x00C0 <= r && r <= 0x00D6, 0x00D8 <= r && r <= 0x00F6, 0x00F8 <= r && r <= 0x00FF:
		return true
	}
	return false
}

func isDigit(r rune) bool {
	return '0' <= r && r <= '9'
}

func isDigitByte(b byte) bool {
	return '0' <= b && b <= '9'
}

// isOperand reports whether an implied multiplication may follow t.
func isOperand(t itemType) bool {
	switch t {
	case itemID, itemInt, itemReal, itemExponent, itemRightParen:
		return true
	}
	return false
}

func isShiftWord(word string) bool {
	return strings.EqualFold(word, "after") || strings.EqualFold(word, "from") ||
		strings.EqualFold(word, "since") || strings.EqualFold(word, "ref")
}

func isUTCWord(word string) bool {
	return strings.EqualFold(word, "Z") || strings.EqualFold(word, "GMT") ||
		strings.EqualFold(word, "UTC")
}

func isForbiddenNumber(word string) bool {
	return strings.EqualFold(word, "nan") || strings.EqualFold(word, "inf") ||
		strings.EqualFold(word, "infinity")
}

// logBase returns the base a log word denotes, or 0 for other words.
func logBase(word string) float64 {
	switch word {
	case "log", "lg":
		return 10
	case "ln":
		return math.E
	case "lb":
		return 2
	}
	return 0
}

// superValue returns the value of a superscript digit.
func superValue(r rune) (int, bool) {
	switch r {
	case '⁰':
		return 0, true
	case '¹':
		return 1, true
	case '²':
		return 2, true
	case '³':
		return 3, true
	case '⁴':
		return 4, true
	case '⁵':
		return 5, true
	case '⁶':
		return 6, true
	case '⁷':
		return 7, true
	case '⁸':
		return 8, true
	case '⁹':
		return 9, true
	}
	return 0, false
}

func isSuperscript(r rune) bool {
	if r == '⁺' || r == '⁻' {
		return true
	}
	_, ok := superValue(r)
	return ok
}

// atoi converts a short digit string; the scanner has already vetted it.
func atoi(s string) int {
	n, _ := strconv.Atoi(s)
	return n
}
