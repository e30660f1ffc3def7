// Timestamp encoding. Values are seconds since 2001-01-01 00:00:00 UTC,
// the origin the binary time encoding of unit systems uses. Dates are
// proleptic Gregorian and handled with Julian-day arithmetic: the grammar
// admits years far outside the range a time.Duration can span.

package parser

import "math"

const secondsPerDay = 86400

var epochDay = julianDay(2001, 1, 1)

// julianDay returns the Julian Day Number of a proleptic Gregorian date.
// Day values past the end of the month roll over into the following month,
// because the day enters the count linearly.
func julianDay(year, month, day int) int64 {
	a := int64((14 - month) / 12)
	y := int64(year) + 4800 - a
	m := int64(month) + 12*a - 3
	return int64(day) + (153*m+2)/5 + 365*y + floorDiv(y, 4) - floorDiv(y, 100) + floorDiv(y, 400) - 32045
}

func floorDiv(a, b int64) int64 {
	q := a / b
	if a%b != 0 && (a < 0) != (b < 0) {
		q--
	}
	return q
}

// EncodeDate returns the encoding of midnight UTC of the given date, in
// seconds. Year 0 does not exist and is taken as year 1.
func EncodeDate(year, month, day int) float64 {
	if year == 0 {
		year = 1
	}
	days := julianDay(year, month, 1) + int64(day-1) - epochDay
	return float64(days) * secondsPerDay
}

// EncodeClock returns a time of day as seconds since midnight.
func EncodeClock(hour, minute int, second float64) float64 {
	return float64(hour*3600+minute*60) + second
}

// EncodeTime combines EncodeDate and EncodeClock.
func EncodeTime(year, month, day, hour, minute int, second float64) float64 {
	return EncodeDate(year, month, day) + EncodeClock(hour, minute, second)
}

// DecodeTime splits an encoded timestamp back into its UTC date and time
// of day.
func DecodeTime(value float64) (year, month, day, hour, minute int, second float64) {
	days := int64(math.Floor(value / secondsPerDay))
	rest := value - float64(days)*secondsPerDay

	// Julian Day Number back to the civil date
	j := days + epochDay + 32044
	b := floorDiv(4*j+3, 146097)
	c := j - floorDiv(146097*b, 4)
	d := floorDiv(4*c+3, 1461)
	e := c - floorDiv(1461*d, 4)
	m := floorDiv(5*e+2, 153)
	day = int(e - floorDiv(153*m+2, 5) + 1)
	month = int(m + 3 - 12*floorDiv(m, 10))
	year = int(100*b + d - 4800 + floorDiv(m, 10))

	hour = int(rest / 3600)
	rest -= float64(hour) * 3600
	minute = int(rest / 60)
	second = rest - float64(minute)*60
	return
}
