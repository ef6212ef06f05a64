package ticktime

/*
inst.go implements the Instant type: an absolute UTC point in time
counted in 100 nanosecond ticks from 0001-01-01T00:00:00, bounded
by [MinTicks] and [MaxTicks].
*/

import "time"

/*
Instant is an immutable point in time on the proleptic Gregorian
calendar, always UTC, stored as a tick count within [MinTicks]
through [MaxTicks]. The zero value is 0001-01-01T00:00:00.

Civil components (year, month, hour and so forth) are derived from
the tick count on every call and never cached.
*/
type Instant struct {
	ticks int64
}

/*
InstantFormat selects one of the textual renderings understood by
[Instant.Format] and [OffsetInstant.Format].
*/
type InstantFormat uint8

const (
	FormatBasic            InstantFormat = iota // 2024-01-01T12:00:00Z
	FormatExtended                              // 2024-01-01T12:00:00.1234567Z, trailing zeros stripped
	FormatWithOffset                            // 2024-01-01T12:00:00+02:00
	FormatDateOnly                              // 2024-01-01
	FormatTimeOnly                              // 12:00:00
	FormatUnixSeconds                           // 1704110400
	FormatUnixMilliseconds                      // 1704110400123
)

/*
NewInstant returns an instance of Instant alongside an error
following an attempt to marshal x.

Accepted x types are string and []byte (parsed per [ParseInstant]),
int and int64 (ticks, clamped to the representable range),
[time.Time] (converted and clamped) and Instant (copied).

Variadic [Constraint] instances are executed, in order, against the
marshaled value.
*/
func NewInstant(x any, constraints ...Constraint[Instant]) (Instant, error) {
	var r Instant
	var err error
	debugEnter(x)
	defer func() { debugExit(err) }()

	switch tv := x.(type) {
	case string:
		r, err = ParseInstant(tv)
	case []byte:
		r, err = ParseInstant(string(tv))
	case int64:
		r = Instant{clampTicks(tv)}
	case int:
		r = Instant{clampTicks(int64(tv))}
	case time.Time:
		r = InstantFromTime(tv)
	case Instant:
		r = tv
	default:
		err = errorBadTypeForConstructor("INSTANT", x)
	}

	if len(constraints) > 0 && err == nil {
		var group ConstraintGroup[Instant] = constraints
		err = group.Constrain(r)
	}

	if err != nil {
		r = Instant{}
	}

	return r, err
}

/*
NewInstantFromDate returns the Instant at midnight of the specified
civil date. An out-of-range date yields the minimum Instant rather
than an error; callers needing strict rejection should construct
through [NewInstant] with a [Constraint], or validate beforehand
via [IsValidDate].
*/
func NewInstantFromDate(year, month, day int) Instant {
	if !IsValidDate(year, month, day) {
		return Instant{}
	}
	return Instant{dateToTicks(year, month, day)}
}

/*
NewInstantFromDateTime returns the Instant at the specified civil
date and time of day. The optional final argument supplies
milliseconds. Out-of-range components yield the minimum Instant,
as with [NewInstantFromDate].
*/
func NewInstantFromDateTime(year, month, day, hour, minute, second int, millisecond ...int) Instant {
	var ms int
	if len(millisecond) > 0 {
		ms = millisecond[0]
	}
	if !IsValidDate(year, month, day) || !IsValidTime(hour, minute, second, ms) {
		return Instant{}
	}
	return Instant{dateToTicks(year, month, day) + timeToTicks(hour, minute, second, ms)}
}

/*
InstantMin returns the minimum representable Instant,
0001-01-01T00:00:00.
*/
func InstantMin() Instant { return Instant{MinTicks} }

/*
InstantMax returns the maximum representable Instant,
9999-12-31T23:59:59.9999999.
*/
func InstantMax() Instant { return Instant{MaxTicks} }

/*
InstantUnixEpoch returns 1970-01-01T00:00:00.
*/
func InstantUnixEpoch() Instant { return Instant{UnixEpochTicks} }

/*
InstantFromTicks returns the Instant at the specified tick count,
clamped to the representable range.
*/
func InstantFromTicks(ticks int64) Instant { return Instant{clampTicks(ticks)} }

/*
InstantFromUnixSeconds returns the Instant at the specified count
of seconds since 1970-01-01T00:00:00, clamped to the representable
range. InstantFromUnixMilliseconds is its millisecond counterpart.
*/
func InstantFromUnixSeconds(seconds int64) Instant {
	return Instant{clampTicks(UnixEpochTicks + seconds*TicksPerSecond)}
}

func InstantFromUnixMilliseconds(milliseconds int64) Instant {
	return Instant{clampTicks(UnixEpochTicks + milliseconds*TicksPerMillisecond)}
}

/*
InstantFromTime converts a [time.Time] to an Instant, clamping to
the representable range. Precision beyond one tick is discarded.
*/
func InstantFromTime(t time.Time) Instant {
	debugConvert(t.String())
	ticks := UnixEpochTicks + t.Unix()*TicksPerSecond + int64(t.Nanosecond())/100
	return Instant{clampTicks(ticks)}
}

/*
Now returns the current moment per the supplied [Clock], or per the
package default [SystemClock] when none is given. UTCNow is an
alias; an Instant is always UTC.
*/
func Now(clock ...Clock) Instant {
	return Instant{clampTicks(pickClock(clock).NowTicks())}
}

func UTCNow(clock ...Clock) Instant { return Now(clock...) }

/*
Today returns the current UTC date at midnight.
*/
func Today(clock ...Clock) Instant {
	return Now(clock...).Date()
}

/*
Ticks returns the receiver's tick count.
*/
func (r Instant) Ticks() int64 { return r.ticks }

/*
Year returns the receiver's civil year, 1 through 9999. The civil
accessors below follow the same pattern, each derived on demand.
*/
func (r Instant) Year() int {
	y, _, _ := ticksToDate(r.ticks)
	return y
}

func (r Instant) Month() int {
	_, m, _ := ticksToDate(r.ticks)
	return m
}

func (r Instant) Day() int {
	_, _, d := ticksToDate(r.ticks)
	return d
}

func (r Instant) Hour() int {
	h, _, _, _ := ticksToTime(r.ticks)
	return h
}

func (r Instant) Minute() int {
	_, m, _, _ := ticksToTime(r.ticks)
	return m
}

func (r Instant) Second() int {
	_, _, s, _ := ticksToTime(r.ticks)
	return s
}

func (r Instant) Millisecond() int {
	_, _, _, ms := ticksToTime(r.ticks)
	return ms
}

func (r Instant) Microsecond() int {
	return int(r.ticks%TicksPerMillisecond) / 10
}

func (r Instant) Nanosecond() int {
	return int(r.ticks%10) * 100
}

/*
DayOfWeek returns the receiver's day of week, 0 for Sunday through
6 for Saturday.
*/
func (r Instant) DayOfWeek() int { return dayOfWeekOf(r.ticks) }

/*
DayOfYear returns the receiver's ordinal day within its year, 1
through 365 or 366.
*/
func (r Instant) DayOfYear() int { return dayOfYearOf(r.ticks) }

/*
Date returns the receiver floored to midnight.
*/
func (r Instant) Date() Instant { return Instant{r.ticks - r.ticks%TicksPerDay} }

/*
TimeOfDay returns the span elapsed since the receiver's midnight.
*/
func (r Instant) TimeOfDay() Duration { return Duration{r.ticks % TicksPerDay} }

/*
ToUnixSeconds returns whole seconds since 1970-01-01T00:00:00,
truncated toward zero and negative before the epoch.
ToUnixMilliseconds is its millisecond counterpart.
*/
func (r Instant) ToUnixSeconds() int64 {
	return (r.ticks - UnixEpochTicks) / TicksPerSecond
}

func (r Instant) ToUnixMilliseconds() int64 {
	return (r.ticks - UnixEpochTicks) / TicksPerMillisecond
}

/*
AddDuration returns the receiver advanced by d, clamped to the
representable range. SubDuration is its inverse.
*/
func (r Instant) AddDuration(d Duration) Instant {
	return Instant{clampTicks(r.ticks + d.ticks)}
}

func (r Instant) SubDuration(d Duration) Instant {
	return Instant{clampTicks(r.ticks - d.ticks)}
}

/*
Sub returns the signed span from u to the receiver.
*/
func (r Instant) Sub(u Instant) Duration { return Duration{r.ticks - u.ticks} }

/*
AddTicks returns the receiver advanced by the specified tick count,
clamped to the representable range.
*/
func (r Instant) AddTicks(ticks int64) Instant {
	return Instant{clampTicks(r.ticks + ticks)}
}

/*
AddDays returns the receiver advanced by the specified fractional
day count. The unit helpers below follow the same pattern.
*/
func (r Instant) AddDays(days float64) Instant {
	return r.AddDuration(DurationFromDays(days))
}

func (r Instant) AddHours(hours float64) Instant {
	return r.AddDuration(DurationFromHours(hours))
}

func (r Instant) AddMinutes(minutes float64) Instant {
	return r.AddDuration(DurationFromMinutes(minutes))
}

func (r Instant) AddSeconds(seconds float64) Instant {
	return r.AddDuration(DurationFromSeconds(seconds))
}

func (r Instant) AddMilliseconds(milliseconds float64) Instant {
	return r.AddDuration(DurationFromMilliseconds(milliseconds))
}

/*
Compare returns -1, 0 or 1 as the receiver is earlier than, equal
to or later than u.
*/
func (r Instant) Compare(u Instant) int {
	switch {
	case r.ticks < u.ticks:
		return -1
	case r.ticks > u.ticks:
		return 1
	}
	return 0
}

func (r Instant) Equal(u Instant) bool  { return r.ticks == u.ticks }
func (r Instant) Before(u Instant) bool { return r.ticks < u.ticks }
func (r Instant) After(u Instant) bool  { return r.ticks > u.ticks }

/*
AsTime returns the receiver as a UTC [time.Time]. The conversion is
exact: every representable Instant falls within the range of
[time.Time].
*/
func (r Instant) AsTime() time.Time {
	debugConvert(r.ticks)
	sec := (r.ticks - UnixEpochTicks) / TicksPerSecond
	nsec := (r.ticks - UnixEpochTicks) % TicksPerSecond * 100
	return time.Unix(sec, nsec).UTC()
}

/*
String returns the receiver in basic ISO-8601 form, equivalent to
Format(FormatBasic).
*/
func (r Instant) String() string { return r.Format(FormatBasic) }

/*
Format returns the receiver rendered per the specified
[InstantFormat].
*/
func (r Instant) Format(f InstantFormat) string {
	debugFormat(int(f))
	switch f {
	case FormatExtended:
		b := appendCivil(make([]byte, 0, 28), r.ticks)
		b = appendFraction(b, r.ticks)
		b = append(b, 'Z')
		return string(b)
	case FormatWithOffset:
		b := appendCivil(make([]byte, 0, 25), r.ticks)
		return string(append(b, "+00:00"...))
	case FormatDateOnly:
		b := appendCivil(make([]byte, 0, 19), r.ticks)
		return string(b[:10])
	case FormatTimeOnly:
		b := appendCivil(make([]byte, 0, 19), r.ticks)
		return string(b[11:])
	case FormatUnixSeconds:
		return fmtInt(r.ToUnixSeconds(), 10)
	case FormatUnixMilliseconds:
		return fmtInt(r.ToUnixMilliseconds(), 10)
	}
	b := appendCivil(make([]byte, 0, 20), r.ticks)
	return string(append(b, 'Z'))
}

/*
appendCivil appends the nineteen byte civil form
"YYYY-MM-DDTHH:MM:SS" of ticks to b.
*/
func appendCivil(b []byte, ticks int64) []byte {
	year, month, day := ticksToDate(ticks)
	hour, minute, second, _ := ticksToTime(ticks)

	put2 := func(buf []byte, v int) {
		buf[0] = byte('0' + v/10)
		buf[1] = byte('0' + v%10)
	}

	var c [19]byte
	c[0] = byte('0' + year/1000)
	c[1] = byte('0' + year/100%10)
	c[2] = byte('0' + year/10%10)
	c[3] = byte('0' + year%10)
	c[4] = '-'
	put2(c[5:7], month)
	c[7] = '-'
	put2(c[8:10], day)
	c[10] = 'T'
	put2(c[11:13], hour)
	c[13] = ':'
	put2(c[14:16], minute)
	c[16] = ':'
	put2(c[17:19], second)

	return append(b, c[:]...)
}

/*
appendFraction appends the sub-second portion of ticks to b as '.'
plus up to seven digits, trailing zeros stripped, never fewer than
one digit.
*/
func appendFraction(b []byte, ticks int64) []byte {
	frac := ticks % TicksPerSecond

	var f [8]byte
	f[0] = '.'
	for i := 7; i >= 1; i-- {
		f[i] = byte('0' + frac%10)
		frac /= 10
	}
	n := 8
	for n > 2 && f[n-1] == '0' {
		n--
	}

	return append(b, f[:n]...)
}

/*
ParseInstant returns an instance of [Instant] alongside an error
following an attempt to parse s.

The grammar is "YYYY-MM-DD[THH:MM:SS[.fffffff]]" with an optional
trailing zone designator: "Z", "±HH:MM", "±HHMM" or "±HH". The year
requires exactly four digits; month, day, hour, minute and second
accept one or two. A zone designator is stripped and DISCARDED, not
applied: an Instant is an absolute UTC value, and this reader only
tolerates the suffix. Use [ParseOffsetInstant] to retain it.

Fraction digits beyond seven are truncated; fewer than seven are
right-padded. A date with no time part reads as midnight. Text
following a complete value is ignored. Out-of-range civil values
fail.
*/
func ParseInstant(s string) (Instant, error) {
	debugParse(s)
	ticks, err := parseInstantTicks(s)
	if err != nil {
		return Instant{}, err
	}
	return Instant{ticks}, nil
}

/*
TryParseInstant is the Boolean counterpart to [ParseInstant]. The
returned Instant is the minimum value whenever ok is false.
*/
func TryParseInstant(s string) (i Instant, ok bool) {
	i, err := ParseInstant(s)
	return i, err == nil
}

/*
MustParseInstant wraps [ParseInstant], panicking on error. Use in
variable initializers and tests, not on untrusted input.
*/
func MustParseInstant(s string) Instant {
	i, err := ParseInstant(s)
	if err != nil {
		panic(err)
	}
	return i
}

func parseInstantTicks(s string) (int64, error) {
	if len(s) < 4 {
		return 0, errorShortInstant
	}

	if s[len(s)-1] == 'Z' {
		s = s[:len(s)-1]
	}

	// drop a trailing zone designator; only the date part may keep its dashes
	for i := len(s) - 1; i > 10; i-- {
		if s[i] == '+' || s[i] == '-' {
			debugInfo("discarded zone designator " + s[i:])
			s = s[:i]
			break
		}
	}

	if len(s) < 4 {
		return 0, errorShortInstant
	}

	pos := 0

	var year int
	for i := 0; i < 4; i++ {
		c := s[pos]
		if !isDigit(c) {
			return 0, errorBadYearDigits
		}
		year = year*10 + int(c-'0')
		pos++
	}

	expect := func(sep byte) bool {
		if pos >= len(s) || s[pos] != sep {
			return false
		}
		pos++
		return true
	}

	digit2 := func() (int, bool) {
		if pos >= len(s) || !isDigit(s[pos]) {
			return 0, false
		}
		v := int(s[pos] - '0')
		pos++
		if pos < len(s) && isDigit(s[pos]) {
			v = v*10 + int(s[pos]-'0')
			pos++
		}
		return v, true
	}

	if !expect('-') {
		return 0, instantErrorf("missing date separator: ", s)
	}
	month, ok := digit2()
	if !ok {
		return 0, instantErrorf("malformed month: ", s)
	}
	if !expect('-') {
		return 0, instantErrorf("missing date separator: ", s)
	}
	day, ok := digit2()
	if !ok {
		return 0, instantErrorf("malformed day: ", s)
	}

	var hour, minute, second int
	var fracTicks int64

	if pos < len(s) && s[pos] == 'T' {
		pos++
		if hour, ok = digit2(); !ok {
			return 0, instantErrorf("malformed hour: ", s)
		}
		if !expect(':') {
			return 0, instantErrorf("missing time separator: ", s)
		}
		if minute, ok = digit2(); !ok {
			return 0, instantErrorf("malformed minute: ", s)
		}
		if !expect(':') {
			return 0, instantErrorf("missing time separator: ", s)
		}
		if second, ok = digit2(); !ok {
			return 0, instantErrorf("malformed second: ", s)
		}

		if pos < len(s) && s[pos] == '.' {
			pos++
			digits := 0
			for pos < len(s) && isDigit(s[pos]) && digits < 7 {
				fracTicks = fracTicks*10 + int64(s[pos]-'0')
				pos++
				digits++
			}
			for pos < len(s) && isDigit(s[pos]) {
				pos++ // beyond tick precision
			}
			for digits < 7 {
				fracTicks *= 10
				digits++
			}
		}
	}

	if !IsValidDate(year, month, day) {
		return 0, errorDateOutOfRange
	}
	if !IsValidTime(hour, minute, second, 0) {
		return 0, errorTimeOutOfRange
	}

	return dateToTicks(year, month, day) + timeToTicks(hour, minute, second, 0) + fracTicks, nil
}
