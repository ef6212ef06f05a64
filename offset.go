package ticktime

/*
offset.go implements the OffsetInstant composite type, pairing a
local Instant with a fixed UTC offset.
*/

import "time"

/*
OffsetInstant couples a local civil reading with the fixed offset
from UTC at which that reading was taken. The UTC moment is never
stored; it is derived on demand as local minus offset, so the two
fields can never disagree with it.

Offsets are meaningful between -14:00 and +14:00 inclusive. The
parser and [OffsetLimitConstraint] enforce that window; instances
assembled directly through [MakeOffsetInstant] may hold anything,
and IsValid reports whether the window holds.

Instances of this type are immutable. The zero value is the minimum
[Instant] at offset zero.
*/
type OffsetInstant struct {
	local  Instant
	offset Duration
}

/*
NewOffsetInstant returns an instance of [OffsetInstant] alongside
an error following an attempt to marshal x.

The following input types are accepted for x:

  - string or []byte (parsed per [ParseOffsetInstant])
  - [Instant] (taken as UTC, offset zero)
  - [time.Time] (local reading and offset preserved)
  - [OffsetInstant] (remarshaled as-is)
*/
func NewOffsetInstant(x any, constraints ...Constraint[OffsetInstant]) (OffsetInstant, error) {
	var r OffsetInstant
	var err error
	debugEnter(x)
	defer func() { debugExit(err) }()

	switch tv := x.(type) {
	case string:
		r, err = ParseOffsetInstant(tv)
	case []byte:
		r, err = ParseOffsetInstant(string(tv))
	case Instant:
		r = OffsetInstant{local: tv}
	case time.Time:
		_, secs := tv.Zone()
		off := Duration{int64(secs) * TicksPerSecond}
		r = OffsetInstant{local: InstantFromTime(tv).AddDuration(off), offset: off}
	case OffsetInstant:
		r = tv
	default:
		err = errorBadTypeForConstructor("OFFSET INSTANT", x)
	}

	if err == nil && len(constraints) > 0 {
		var group ConstraintGroup[OffsetInstant] = constraints
		err = group.Constrain(r)
	}

	if err != nil {
		r = OffsetInstant{}
	}
	return r, err
}

/*
MakeOffsetInstant assembles an [OffsetInstant] from a local reading
and its offset without validation. Use IsValid, or pass
[OffsetLimitConstraint] to [NewOffsetInstant], when the offset is
untrusted.
*/
func MakeOffsetInstant(local Instant, offset Duration) OffsetInstant {
	return OffsetInstant{local: local, offset: offset}
}

/*
NewOffsetInstantFromDateTime returns the [OffsetInstant] holding
the specified local civil reading at the specified offset. The
civil fields follow [NewInstantFromDateTime]; the microsecond value
is added on unchecked.
*/
func NewOffsetInstantFromDateTime(year, month, day, hour, minute, second, millisecond, microsecond int, offset Duration) OffsetInstant {
	local := NewInstantFromDateTime(year, month, day, hour, minute, second, millisecond).
		AddTicks(int64(microsecond) * TicksPerMicrosecond)
	return OffsetInstant{local: local, offset: offset}
}

/*
OffsetInstantLocal returns the specified UTC moment restated in the
local zone reported by the supplied [Clock], or by the package
default [SystemClock] when none is given.
*/
func OffsetInstantLocal(i Instant, clock ...Clock) OffsetInstant {
	off := pickClock(clock).OffsetAt(i)
	return OffsetInstant{local: i.AddDuration(off), offset: off}
}

/*
OffsetNow returns the current moment in the local zone per the
supplied [Clock], or per the package default [SystemClock] when
none is given.
*/
func OffsetNow(clock ...Clock) OffsetInstant {
	return OffsetInstantLocal(Now(clock...), clock...)
}

/*
OffsetUTCNow returns the current moment at offset zero.
*/
func OffsetUTCNow(clock ...Clock) OffsetInstant {
	return OffsetInstant{local: Now(clock...)}
}

/*
OffsetToday returns the current local date at midnight, retaining
the local offset.
*/
func OffsetToday(clock ...Clock) OffsetInstant {
	now := OffsetNow(clock...)
	return OffsetInstant{local: now.local.Date(), offset: now.offset}
}

/*
OffsetInstantFromUnixSeconds returns the [OffsetInstant] at the
specified count of seconds since 1970-01-01T00:00:00 UTC, at offset
zero. OffsetInstantFromUnixMilliseconds is its millisecond
counterpart.
*/
func OffsetInstantFromUnixSeconds(seconds int64) OffsetInstant {
	return OffsetInstant{local: InstantFromUnixSeconds(seconds)}
}

func OffsetInstantFromUnixMilliseconds(milliseconds int64) OffsetInstant {
	return OffsetInstant{local: InstantFromUnixMilliseconds(milliseconds)}
}

/*
OffsetInstantFromFiletime returns the [OffsetInstant] at the
specified count of ticks since 1601-01-01T00:00:00 UTC, at offset
zero. ToFiletime is its inverse.
*/
func OffsetInstantFromFiletime(filetime int64) OffsetInstant {
	return OffsetInstant{local: InstantFromTicks(filetime + FiletimeEpochTicks)}
}

/*
Local returns the local reading. Offset returns the fixed offset
from UTC.
*/
func (r OffsetInstant) Local() Instant   { return r.local }
func (r OffsetInstant) Offset() Duration { return r.offset }

/*
UTC returns the moment the receiver denotes as a UTC [Instant],
derived as local minus offset and clamped to the representable
range. UTCTicks returns the same derivation as a raw tick count
without the clamp; comparisons and epoch conversions use it
directly.
*/
func (r OffsetInstant) UTC() Instant    { return Instant{clampTicks(r.UTCTicks())} }
func (r OffsetInstant) UTCTicks() int64 { return r.local.ticks - r.offset.ticks }

/*
TotalOffsetMinutes returns the offset as a whole minute count,
truncated toward zero.
*/
func (r OffsetInstant) TotalOffsetMinutes() int { return int(r.offset.ticks / TicksPerMinute) }

/*
IsValid reports whether the receiver's offset lies within the
accepted -14:00 through +14:00 window.
*/
func (r OffsetInstant) IsValid() bool { return IsValidOffset(r.offset) }

/*
IsValidOffset reports whether d is usable as a fixed UTC offset,
meaning its magnitude does not exceed fourteen hours.
*/
func IsValidOffset(d Duration) bool {
	return -maxOffsetTicks <= d.ticks && d.ticks <= maxOffsetTicks
}

/*
Year returns the local civil year. The civil accessors below
delegate to the local reading; none of them consult the offset.
*/
func (r OffsetInstant) Year() int        { return r.local.Year() }
func (r OffsetInstant) Month() int       { return r.local.Month() }
func (r OffsetInstant) Day() int         { return r.local.Day() }
func (r OffsetInstant) Hour() int        { return r.local.Hour() }
func (r OffsetInstant) Minute() int      { return r.local.Minute() }
func (r OffsetInstant) Second() int      { return r.local.Second() }
func (r OffsetInstant) Millisecond() int { return r.local.Millisecond() }
func (r OffsetInstant) Microsecond() int { return r.local.Microsecond() }
func (r OffsetInstant) Nanosecond() int  { return r.local.Nanosecond() }
func (r OffsetInstant) DayOfWeek() int   { return r.local.DayOfWeek() }
func (r OffsetInstant) DayOfYear() int   { return r.local.DayOfYear() }

/*
Date returns the local date at midnight, retaining the offset.
TimeOfDay returns the span since local midnight.
*/
func (r OffsetInstant) Date() OffsetInstant {
	return OffsetInstant{local: r.local.Date(), offset: r.offset}
}

func (r OffsetInstant) TimeOfDay() Duration { return r.local.TimeOfDay() }

/*
Compare returns an integer comparing the receiver to u by the UTC
moment each denotes: negative when the receiver is earlier, zero
when simultaneous, positive when later. Two values at different
offsets are equal whenever they name the same moment.
*/
func (r OffsetInstant) Compare(u OffsetInstant) int {
	rt, ut := r.UTCTicks(), u.UTCTicks()
	switch {
	case rt < ut:
		return -1
	case rt > ut:
		return 1
	}
	return 0
}

/*
Equal reports whether the receiver and u denote the same UTC
moment, regardless of offset. Before and After order by the same
rule.
*/
func (r OffsetInstant) Equal(u OffsetInstant) bool  { return r.UTCTicks() == u.UTCTicks() }
func (r OffsetInstant) Before(u OffsetInstant) bool { return r.UTCTicks() < u.UTCTicks() }
func (r OffsetInstant) After(u OffsetInstant) bool  { return r.UTCTicks() > u.UTCTicks() }

/*
EqualExact reports whether the receiver and u agree on both the
local reading and the offset, a stricter test than Equal.
*/
func (r OffsetInstant) EqualExact(u OffsetInstant) bool {
	return r.local.ticks == u.local.ticks && r.offset.ticks == u.offset.ticks
}

/*
ToOffset restates the receiver at the specified offset. The UTC
moment is preserved; only the local reading changes.
*/
func (r OffsetInstant) ToOffset(offset Duration) OffsetInstant {
	return OffsetInstant{local: r.UTC().AddDuration(offset), offset: offset}
}

/*
ToUniversalTime restates the receiver at offset zero. ToLocalTime
restates it at the zone offset reported by the supplied [Clock], or
by the package default [SystemClock] when none is given.
*/
func (r OffsetInstant) ToUniversalTime() OffsetInstant {
	return OffsetInstant{local: r.UTC()}
}

func (r OffsetInstant) ToLocalTime(clock ...Clock) OffsetInstant {
	return r.ToOffset(pickClock(clock).OffsetAt(r.UTC()))
}

/*
AddDuration returns the receiver advanced by d. The offset is
retained, so the local reading shifts with the moment. SubDuration
is its inverse.
*/
func (r OffsetInstant) AddDuration(d Duration) OffsetInstant {
	return OffsetInstant{local: r.local.AddDuration(d), offset: r.offset}
}

func (r OffsetInstant) SubDuration(d Duration) OffsetInstant {
	return OffsetInstant{local: r.local.SubDuration(d), offset: r.offset}
}

/*
Sub returns the signed span from u to the receiver, measured
between the UTC moments the two denote.
*/
func (r OffsetInstant) Sub(u OffsetInstant) Duration {
	return Duration{r.UTCTicks() - u.UTCTicks()}
}

/*
AddDays returns the receiver advanced by the specified fractional
day count. The unit helpers below follow the same pattern.
*/
func (r OffsetInstant) AddDays(days float64) OffsetInstant {
	return r.AddDuration(DurationFromDays(days))
}

func (r OffsetInstant) AddHours(hours float64) OffsetInstant {
	return r.AddDuration(DurationFromHours(hours))
}

func (r OffsetInstant) AddMinutes(minutes float64) OffsetInstant {
	return r.AddDuration(DurationFromMinutes(minutes))
}

func (r OffsetInstant) AddSeconds(seconds float64) OffsetInstant {
	return r.AddDuration(DurationFromSeconds(seconds))
}

func (r OffsetInstant) AddMilliseconds(milliseconds float64) OffsetInstant {
	return r.AddDuration(DurationFromMilliseconds(milliseconds))
}

/*
AddTicks returns the receiver advanced by the specified tick count,
retaining the offset.
*/
func (r OffsetInstant) AddTicks(ticks int64) OffsetInstant {
	return OffsetInstant{local: r.local.AddTicks(ticks), offset: r.offset}
}

/*
AddMonths returns the receiver with the local calendar month
advanced by months, which may be negative. The day is pulled back
to the last day of the landing month when the original day does not
exist there; the time of day and the offset are retained.
*/
func (r OffsetInstant) AddMonths(months int) OffsetInstant {
	year, month, day := ticksToDate(r.local.ticks)
	tod := r.local.ticks % TicksPerDay

	month += months
	for month > 12 {
		month -= 12
		year++
	}
	for month < 1 {
		month += 12
		year--
	}

	if dim := DaysInMonth(year, month); day > dim {
		day = dim
	}

	local := NewInstantFromDate(year, month, day).AddTicks(tod)
	return OffsetInstant{local: local, offset: r.offset}
}

/*
AddYears returns the receiver with the local calendar year advanced
by years, which may be negative. Feb 29 pulls back to Feb 28 when
the landing year is not a leap year.
*/
func (r OffsetInstant) AddYears(years int) OffsetInstant {
	return r.AddMonths(years * 12)
}

/*
ToUnixSeconds returns whole seconds between 1970-01-01T00:00:00 UTC
and the UTC moment the receiver denotes, truncated toward the
epoch. ToUnixMilliseconds is its millisecond counterpart.
*/
func (r OffsetInstant) ToUnixSeconds() int64 {
	return (r.UTCTicks() - UnixEpochTicks) / TicksPerSecond
}

func (r OffsetInstant) ToUnixMilliseconds() int64 {
	return (r.UTCTicks() - UnixEpochTicks) / TicksPerMillisecond
}

/*
ToFiletime returns the tick count between 1601-01-01T00:00:00 UTC
and the UTC moment the receiver denotes, or zero when the receiver
predates 1601.
*/
func (r OffsetInstant) ToFiletime() int64 {
	utc := r.UTCTicks()
	if utc < FiletimeEpochTicks {
		return 0
	}
	return utc - FiletimeEpochTicks
}

/*
AsTime converts the receiver to a [time.Time] in a fixed zone
matching the receiver's offset.
*/
func (r OffsetInstant) AsTime() time.Time {
	zone := time.FixedZone("", int(r.offset.ticks/TicksPerSecond))
	return r.UTC().AsTime().In(zone)
}

/*
String returns the receiver in basic ISO-8601 form with the offset
appended, equivalent to Format(FormatBasic).
*/
func (r OffsetInstant) String() string { return r.Format(FormatBasic) }

/*
Format returns the receiver rendered per the specified
[InstantFormat]. The civil fields are the local reading; the offset
designator is "Z" at offset zero, "±HH:MM" otherwise. FormatBasic
and FormatWithOffset coincide for this type, FormatTimeOnly keeps
the designator and FormatDateOnly omits it.
*/
func (r OffsetInstant) Format(f InstantFormat) string {
	debugFormat(int(f))
	switch f {
	case FormatExtended:
		b := appendCivil(make([]byte, 0, 34), r.local.ticks)
		b = appendFraction(b, r.local.ticks)
		return string(appendOffset(b, r.offset.ticks))
	case FormatDateOnly:
		b := appendCivil(make([]byte, 0, 19), r.local.ticks)
		return string(b[:10])
	case FormatTimeOnly:
		b := appendCivil(make([]byte, 0, 25), r.local.ticks)
		return string(appendOffset(b, r.offset.ticks)[11:])
	case FormatUnixSeconds:
		return fmtInt(r.ToUnixSeconds(), 10)
	case FormatUnixMilliseconds:
		return fmtInt(r.ToUnixMilliseconds(), 10)
	}
	b := appendCivil(make([]byte, 0, 26), r.local.ticks)
	return string(appendOffset(b, r.offset.ticks))
}

/*
appendOffset appends the zone designator for offsetTicks to b: the
byte 'Z' at zero, "±HH:MM" otherwise.
*/
func appendOffset(b []byte, offsetTicks int64) []byte {
	if offsetTicks == 0 {
		return append(b, 'Z')
	}

	sign := byte('+')
	if offsetTicks < 0 {
		sign = '-'
		offsetTicks = -offsetTicks
	}
	hours := offsetTicks / TicksPerHour
	minutes := offsetTicks % TicksPerHour / TicksPerMinute

	return append(b,
		sign,
		byte('0'+hours/10), byte('0'+hours%10),
		':',
		byte('0'+minutes/10), byte('0'+minutes%10))
}

/*
ParseOffsetInstant returns an instance of [OffsetInstant] alongside
an error following an attempt to parse s.

The civil portion follows [ParseInstant]. It may be followed by a
zone designator: "Z" for offset zero, or a sign plus "HH:MM",
"HHMM", "HH" or "H". Designator minutes must not exceed 59 and the
offset magnitude must not exceed fourteen hours. Text with no
designator at all parses at offset zero.
*/
func ParseOffsetInstant(s string) (OffsetInstant, error) {
	debugParse(s)

	var offset int64
	var found bool

	// Scan right to left for the last designator; anything earlier
	// belongs to the civil portion.
	for i := len(s) - 1; i >= 10 && !found; i-- {
		switch s[i] {
		case 'Z':
			s, found = s[:i], true
		case '+', '-':
			if s[i-1] == '+' || s[i-1] == '-' {
				return OffsetInstant{}, errorOffsetSign
			}
			var err error
			if offset, err = parseOffsetTicks(s[i:]); err != nil {
				return OffsetInstant{}, err
			}
			s, found = s[:i], true
		}
	}

	ticks, err := parseInstantTicks(s)
	if err != nil {
		return OffsetInstant{}, err
	}

	return OffsetInstant{local: Instant{ticks}, offset: Duration{offset}}, nil
}

/*
TryParseOffsetInstant is the Boolean counterpart to
[ParseOffsetInstant]. The returned OffsetInstant is the zero value
whenever ok is false.
*/
func TryParseOffsetInstant(s string) (o OffsetInstant, ok bool) {
	o, err := ParseOffsetInstant(s)
	return o, err == nil
}

/*
MustParseOffsetInstant wraps [ParseOffsetInstant], panicking on
error. Use in variable initializers and tests, not on untrusted
input.
*/
func MustParseOffsetInstant(s string) OffsetInstant {
	o, err := ParseOffsetInstant(s)
	if err != nil {
		panic(err)
	}
	return o
}

/*
parseOffsetTicks reads a signed zone designator, sign included, and
returns its tick value. Accepted shapes are sign plus "HH:MM",
"HHMM", "HH" or "H".
*/
func parseOffsetTicks(s string) (int64, error) {
	negative := s[0] == '-'
	s = s[1:]

	digits := func(seg string) (int, bool) {
		if len(seg) == 0 || len(seg) > 2 {
			return 0, false
		}
		v := 0
		for i := 0; i < len(seg); i++ {
			if !isDigit(seg[i]) {
				return 0, false
			}
			v = v*10 + int(seg[i]-'0')
		}
		return v, true
	}

	var hours, minutes int
	var ok bool

	switch colon := stridxb(s, ':'); {
	case colon >= 0:
		var mok bool
		hours, ok = digits(s[:colon])
		minutes, mok = digits(s[colon+1:])
		ok = ok && mok && len(s[colon+1:]) == 2
	case len(s) == 4:
		hours, ok = digits(s[:2])
		if ok {
			minutes, ok = digits(s[2:])
		}
	case len(s) >= 1 && len(s) <= 2:
		hours, ok = digits(s)
	}
	if !ok {
		return 0, errorOffsetShape
	}

	if minutes > 59 {
		return 0, errorOffsetMinutes
	}
	total := int64(hours)*60 + int64(minutes)
	if total > 14*60 {
		return 0, errorOffsetRange
	}

	ticks := total * TicksPerMinute
	if negative {
		ticks = -ticks
	}
	return ticks, nil
}
