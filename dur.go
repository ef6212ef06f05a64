package ticktime

/*
dur.go implements the Duration type: a signed count of 100
nanosecond ticks, with ISO-8601 style parsing and formatting,
scalar arithmetic and time.Duration interop.
*/

import (
	"math"
	"time"
)

/*
Duration is an immutable signed span of time, counted in 100
nanosecond ticks. The zero value is a zero-length span.

Duration carries no calendar semantics: days are always exactly
twenty-four hours. Variable-length units (years, months, weeks)
are deliberately unsupported; see [ParseDuration].
*/
type Duration struct {
	ticks int64
}

/*
NewDuration returns an instance of Duration alongside an error
following an attempt to marshal x.

Accepted x types are string and []byte (parsed per [ParseDuration]),
int and int64 (ticks), float64 (seconds, truncated toward zero at
tick precision), [time.Duration] (sub-tick nanoseconds silently
dropped) and Duration (copied).

Variadic [Constraint] instances are executed, in order, against the
marshaled value.
*/
func NewDuration(x any, constraints ...Constraint[Duration]) (Duration, error) {
	var r Duration
	var err error
	debugEnter(x)
	defer func() { debugExit(err) }()

	switch tv := x.(type) {
	case string:
		r, err = ParseDuration(tv)
	case []byte:
		r, err = ParseDuration(string(tv))
	case int64:
		r = Duration{tv}
	case int:
		r = Duration{int64(tv)}
	case float64:
		r = DurationFromSeconds(tv)
	case time.Duration:
		r = Duration{tv.Nanoseconds() / 100}
	case Duration:
		r = tv
	default:
		err = errorBadTypeForConstructor("DURATION", x)
	}

	if len(constraints) > 0 && err == nil {
		var group ConstraintGroup[Duration] = constraints
		err = group.Constrain(r)
	}

	if err != nil {
		r = Duration{}
	}

	return r, err
}

/*
DurationFromTicks returns a Duration spanning the specified number
of 100 nanosecond ticks.
*/
func DurationFromTicks(ticks int64) Duration { return Duration{ticks} }

/*
DurationFromDays, and its unit siblings below, scale the input by
the respective tick-per-unit constant, truncating toward zero at
tick precision.
*/
func DurationFromDays(days float64) Duration {
	return Duration{int64(days * float64(TicksPerDay))}
}

func DurationFromHours(hours float64) Duration {
	return Duration{int64(hours * float64(TicksPerHour))}
}

func DurationFromMinutes(minutes float64) Duration {
	return Duration{int64(minutes * float64(TicksPerMinute))}
}

func DurationFromSeconds(seconds float64) Duration {
	return Duration{int64(seconds * float64(TicksPerSecond))}
}

func DurationFromMilliseconds(milliseconds float64) Duration {
	return Duration{int64(milliseconds * float64(TicksPerMillisecond))}
}

func DurationFromMicroseconds(microseconds float64) Duration {
	return Duration{int64(microseconds * float64(TicksPerMicrosecond))}
}

/*
Ticks returns the receiver's tick count.
*/
func (r Duration) Ticks() int64 { return r.ticks }

/*
Days returns the receiver's span expressed in fractional days.
The unit accessors below follow the same pattern.
*/
func (r Duration) Days() float64    { return float64(r.ticks) / float64(TicksPerDay) }
func (r Duration) Hours() float64   { return float64(r.ticks) / float64(TicksPerHour) }
func (r Duration) Minutes() float64 { return float64(r.ticks) / float64(TicksPerMinute) }
func (r Duration) Seconds() float64 { return float64(r.ticks) / float64(TicksPerSecond) }

func (r Duration) Milliseconds() float64 { return float64(r.ticks) / float64(TicksPerMillisecond) }
func (r Duration) Microseconds() float64 { return float64(r.ticks) / float64(TicksPerMicrosecond) }
func (r Duration) Nanoseconds() float64  { return float64(r.ticks) * 100 }

/*
Add returns the sum of the receiver and d as a new Duration.
*/
func (r Duration) Add(d Duration) Duration { return Duration{r.ticks + d.ticks} }

/*
Sub returns the difference of the receiver and d as a new Duration.
*/
func (r Duration) Sub(d Duration) Duration { return Duration{r.ticks - d.ticks} }

/*
Negate returns the receiver with its sign inverted.
*/
func (r Duration) Negate() Duration { return Duration{-r.ticks} }

/*
MulScalar returns the receiver scaled by f, rounded to the nearest
tick.
*/
func (r Duration) MulScalar(f float64) Duration {
	return Duration{int64(math.Round(float64(r.ticks) * f))}
}

/*
DivScalar returns the receiver divided by f, rounded to the nearest
tick.
*/
func (r Duration) DivScalar(f float64) Duration {
	return Duration{int64(math.Round(float64(r.ticks) / f))}
}

/*
Ratio returns the receiver divided by d as a floating point value.
IEEE semantics apply: a zero d yields ±Inf or NaN, never an error.
*/
func (r Duration) Ratio(d Duration) float64 {
	return float64(r.ticks) / float64(d.ticks)
}

/*
Compare returns -1, 0 or 1 as the receiver is less than, equal to
or greater than d.
*/
func (r Duration) Compare(d Duration) int {
	switch {
	case r.ticks < d.ticks:
		return -1
	case r.ticks > d.ticks:
		return 1
	}
	return 0
}

func (r Duration) Equal(d Duration) bool    { return r.ticks == d.ticks }
func (r Duration) LessThan(d Duration) bool { return r.ticks < d.ticks }

/*
IsZero returns a Boolean value indicative of the receiver spanning
zero ticks.
*/
func (r Duration) IsZero() bool { return r.ticks == 0 }

/*
AsTimeDuration returns the receiver as a [time.Duration] alongside
a Boolean value indicative of success. Spans beyond the nanosecond
range of [time.Duration] return false.
*/
func (r Duration) AsTimeDuration() (time.Duration, bool) {
	if r.ticks > math.MaxInt64/100 || r.ticks < math.MinInt64/100 {
		return 0, false
	}
	return time.Duration(r.ticks * 100), true
}

/*
String returns the ISO-8601 form of the receiver, e.g. "PT1H30M".
Only non-zero components are emitted; a zero Duration is "PT0S".
Fractional seconds carry up to seven digits with trailing zeros
stripped. Negative spans lead with '-'.
*/
func (r Duration) String() string {
	t := r.ticks
	if t == 0 {
		return "PT0S"
	}

	bld := newStrBuilder()
	mag := uint64(t)
	if t < 0 {
		bld.WriteByte('-')
		mag = ^mag + 1
	}
	bld.WriteByte('P')

	days := mag / uint64(TicksPerDay)
	rem := mag % uint64(TicksPerDay)
	if days > 0 {
		bld.WriteString(fmtUint(days, 10))
		bld.WriteByte('D')
	}

	if rem > 0 {
		bld.WriteByte('T')
		hours := rem / uint64(TicksPerHour)
		rem %= uint64(TicksPerHour)
		minutes := rem / uint64(TicksPerMinute)
		rem %= uint64(TicksPerMinute)
		seconds := rem / uint64(TicksPerSecond)
		frac := rem % uint64(TicksPerSecond)

		if hours > 0 {
			bld.WriteString(fmtUint(hours, 10))
			bld.WriteByte('H')
		}
		if minutes > 0 {
			bld.WriteString(fmtUint(minutes, 10))
			bld.WriteByte('M')
		}
		if seconds > 0 || frac > 0 {
			bld.WriteString(fmtUint(seconds, 10))
			if frac > 0 {
				var fb [8]byte
				fb[0] = '.'
				for i := 7; i >= 1; i-- {
					fb[i] = byte('0' + frac%10)
					frac /= 10
				}
				n := 8
				for fb[n-1] == '0' {
					n--
				}
				bld.Write(fb[:n])
			}
			bld.WriteByte('S')
		}
	}

	return bld.String()
}

/*
ParseDuration returns an instance of [Duration] alongside an error
following an attempt to parse s.

Two grammars are recognized. The ISO-8601 subset
"[-]P[nD][T[nH][nM][nS]]" requires designators in that order, each
at most once, with at least one component present; numbers may
carry a fraction. Year, month and week designators are rejected:
their length varies by calendar position, which a fixed tick span
cannot represent. Alternatively, a bare numeric literal such as
"123.45" or "-0.5" is interpreted as seconds.

Both grammars are exact: fractional digits are applied per digit
against the unit's tick count, truncating toward zero beyond tick
precision, so any value emitted by [Duration.String] parses back
to the identical tick count.
*/
func ParseDuration(s string) (Duration, error) {
	debugParse(s)
	ticks, err := parseDurationTicks(s)
	if err != nil {
		return Duration{}, err
	}
	return Duration{ticks}, nil
}

/*
TryParseDuration is the Boolean counterpart to [ParseDuration].
The returned Duration is zero whenever ok is false.
*/
func TryParseDuration(s string) (d Duration, ok bool) {
	d, err := ParseDuration(s)
	return d, err == nil
}

/*
MustParseDuration wraps [ParseDuration], panicking on error. Use in
variable initializers and tests, not on untrusted input.
*/
func MustParseDuration(s string) Duration {
	d, err := ParseDuration(s)
	if err != nil {
		panic(err)
	}
	return d
}

func parseDurationTicks(s string) (int64, error) {
	if len(s) == 0 {
		return 0, errorEmptyDuration
	}

	if numericSeconds(s) {
		return parseNumericSeconds(s)
	}

	neg := s[0] == '-'
	if neg {
		s = s[1:]
	}
	if len(s) == 0 || s[0] != 'P' {
		return 0, errorDurationNoDesignator
	}
	if len(s) == 1 {
		return 0, errorDurationNoComponents
	}
	s = s[1:]

	var datePart, timePart string
	var hasT bool
	if i := stridxb(s, 'T'); i >= 0 {
		datePart, timePart, hasT = s[:i], s[i+1:], true
	} else {
		datePart = s
	}

	// Components accumulate unsigned so the negated form can reach
	// one past the positive ceiling.
	var total uint64
	var found bool

	limit := uint64(math.MaxInt64)
	if neg {
		limit++
	}
	accumulate := func(t int64) error {
		if uint64(t) > limit-total {
			return durationErrorf("duration magnitude out of range")
		}
		total += uint64(t)
		found = true
		return nil
	}

	if datePart != "" {
		if stridxb(datePart, 'Y') >= 0 || stridxb(datePart, 'M') >= 0 || stridxb(datePart, 'W') >= 0 {
			return 0, errorDurationVariableUnits
		}
		i := stridxb(datePart, 'D')
		if i < 0 {
			return 0, durationErrorf("malformed date part: ", datePart)
		}
		if i != len(datePart)-1 {
			return 0, durationErrorf("unexpected text after day component: ", datePart[i+1:])
		}
		t, err := componentTicks(datePart[:i], TicksPerDay)
		if err != nil {
			return 0, err
		}
		if err = accumulate(t); err != nil {
			return 0, err
		}
	}

	if hasT {
		if timePart == "" {
			return 0, errorDurationEmptyTime
		}

		rest := timePart
		component := func(des byte, unit int64) (err error) {
			i := stridxb(rest, des)
			if i < 0 {
				return nil
			}
			var t int64
			if t, err = componentTicks(rest[:i], unit); err == nil {
				rest = rest[i+1:]
				err = accumulate(t)
			}
			return
		}

		if err := component('H', TicksPerHour); err != nil {
			return 0, err
		}
		if err := component('M', TicksPerMinute); err != nil {
			return 0, err
		}
		if err := component('S', TicksPerSecond); err != nil {
			return 0, err
		}

		if rest != "" {
			return 0, durationErrorf("unexpected trailing characters: ", rest)
		}
	}

	if !found {
		return 0, errorDurationNoComponents
	}

	ticks := int64(total)
	if neg {
		ticks = -ticks
	}
	return ticks, nil
}

/*
numericSeconds reports whether s consists solely of characters from
the bare seconds grammar. Anything else falls through to the
ISO-8601 grammar.
*/
func numericSeconds(s string) bool {
	for i := 0; i < len(s); i++ {
		c := s[i]
		if !isDigit(c) && c != '.' && c != '-' {
			return false
		}
	}
	return true
}

func parseNumericSeconds(s string) (int64, error) {
	num := s
	neg := num[0] == '-'
	if neg {
		num = num[1:]
	}

	ticks, err := componentTicks(num, TicksPerSecond)
	if err != nil {
		return 0, err
	}
	if neg {
		ticks = -ticks
	}
	return ticks, nil
}

/*
componentTicks converts one unsigned component number, "15", "0.5"
or ".25", to ticks of the specified unit. Fraction digits are
scaled individually so the result is exact up to tick precision;
digits finer than one tick truncate toward zero.
*/
func componentTicks(num string, unit int64) (int64, error) {
	if num == "" {
		return 0, durationErrorf("empty component number")
	}

	var whole int64
	var i int
	for ; i < len(num) && num[i] != '.'; i++ {
		c := num[i]
		if !isDigit(c) {
			return 0, durationErrorf("bad character ", string(c), " in component number ", num)
		}
		if whole > (math.MaxInt64-9)/10 {
			return 0, durationErrorf("component number out of range: ", num)
		}
		whole = whole*10 + int64(c-'0')
	}
	intDigits := i

	if whole > math.MaxInt64/unit {
		return 0, durationErrorf("component number out of range: ", num)
	}
	ticks := whole * unit

	if i < len(num) {
		i++ // consume '.'
		if intDigits == 0 && i >= len(num) {
			return 0, durationErrorf("malformed component number: ", num)
		}
		scale := unit
		for ; i < len(num); i++ {
			c := num[i]
			if !isDigit(c) {
				return 0, durationErrorf("bad character ", string(c), " in component number ", num)
			}
			scale /= 10
			if scale == 0 {
				continue
			}
			add := int64(c-'0') * scale
			if add > math.MaxInt64-ticks {
				return 0, durationErrorf("component number out of range: ", num)
			}
			ticks += add
		}
	}

	return ticks, nil
}
