package ticktime

/*
ticks.go implements the Gregorian tick engine: unit and epoch
constants, the leap year rule, and the O(1) conversions between
tick counts and civil date/time components.
*/

/*
Tick units. One tick is 100 nanoseconds; tick zero is
0001-01-01T00:00:00 on the proleptic Gregorian calendar.
*/
const (
	TicksPerMicrosecond int64 = 10
	TicksPerMillisecond int64 = 10_000
	TicksPerSecond      int64 = 10_000_000
	TicksPerMinute      int64 = 600_000_000
	TicksPerHour        int64 = 36_000_000_000
	TicksPerDay         int64 = 864_000_000_000
)

/*
MinTicks and MaxTicks bound every [Instant]: 0001-01-01T00:00:00
through 9999-12-31T23:59:59.9999999 inclusive.
*/
const (
	MinTicks int64 = 0
	MaxTicks int64 = 3155378975999999999
)

/*
UnixEpochTicks is the tick count of 1970-01-01T00:00:00.
FiletimeEpochTicks is the tick count of 1601-01-01T00:00:00,
the Windows FILETIME epoch.
*/
const (
	UnixEpochTicks     int64 = 621355968000000000
	FiletimeEpochTicks int64 = 504911232000000000
)

const (
	daysPerYear     = 365
	daysPer4Years   = daysPerYear*4 + 1     // 1461
	daysPer100Years = daysPer4Years*25 - 1  // 36524
	daysPer400Years = daysPer100Years*4 + 1 // 146097
)

const (
	minYear = 1
	maxYear = 9999
)

const maxOffsetTicks = 14 * TicksPerHour

/*
daysBefore[m] counts the number of days in a common year preceding
the first of month m+1.
*/
var daysBefore = [13]int32{
	0,
	31,
	31 + 28,
	31 + 28 + 31,
	31 + 28 + 31 + 30,
	31 + 28 + 31 + 30 + 31,
	31 + 28 + 31 + 30 + 31 + 30,
	31 + 28 + 31 + 30 + 31 + 30 + 31,
	31 + 28 + 31 + 30 + 31 + 30 + 31 + 31,
	31 + 28 + 31 + 30 + 31 + 30 + 31 + 31 + 30,
	31 + 28 + 31 + 30 + 31 + 30 + 31 + 31 + 30 + 31,
	31 + 28 + 31 + 30 + 31 + 30 + 31 + 31 + 30 + 31 + 30,
	31 + 28 + 31 + 30 + 31 + 30 + 31 + 31 + 30 + 31 + 30 + 31,
}

var monthDays = [13]int{0, 31, 28, 31, 30, 31, 30, 31, 31, 30, 31, 30, 31}

/*
IsLeapYear returns a Boolean value indicative of year being a leap
year under the Gregorian rule: divisible by four, except centuries
not divisible by four hundred.
*/
func IsLeapYear(year int) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}

/*
DaysInMonth returns the number of days in the specified month of the
specified year, honoring leap years. A month outside 1 through 12
returns zero rather than an error.
*/
func DaysInMonth(year, month int) int {
	if month < 1 || 12 < month {
		return 0
	}
	if month == 2 && IsLeapYear(year) {
		return 29
	}
	return monthDays[month]
}

/*
IsValidDate returns a Boolean value indicative of the specified
civil date falling within year 1 through 9999 with a real month
and day combination.
*/
func IsValidDate(year, month, day int) bool {
	return minYear <= year && year <= maxYear &&
		1 <= month && month <= 12 &&
		1 <= day && day <= DaysInMonth(year, month)
}

/*
IsValidTime returns a Boolean value indicative of the specified
time-of-day components being in range.
*/
func IsValidTime(hour, minute, second, millisecond int) bool {
	return 0 <= hour && hour < 24 &&
		0 <= minute && minute < 60 &&
		0 <= second && second < 60 &&
		0 <= millisecond && millisecond < 1000
}

/*
dateToTicks converts a valid civil date to the tick count of its
midnight. The year is decomposed into 400, 100, 4 and 1 year spans,
each contributing its whole day count.
*/
func dateToTicks(year, month, day int) int64 {
	y := year - 1

	n := y / 400
	days := n * daysPer400Years
	y -= n * 400

	n = y / 100
	days += n * daysPer100Years
	y -= n * 100

	n = y / 4
	days += n * daysPer4Years
	y -= n * 4

	days += y * daysPerYear

	days += int(daysBefore[month-1])
	if month > 2 && IsLeapYear(year) {
		days++
	}
	days += day - 1

	return int64(days) * TicksPerDay
}

/*
ticksToDate is the inverse of dateToTicks. Each quotient below is
the number of completed spans at that granularity; the 100 and 1
year quotients are capped at three, as the final year of a 400 or
4 year span is a leap year whose last day would otherwise register
as a completed span.
*/
func ticksToDate(ticks int64) (year, month, day int) {
	d := int(ticks / TicksPerDay)

	n400 := d / daysPer400Years
	d -= n400 * daysPer400Years

	n100 := d / daysPer100Years
	if n100 > 3 {
		n100 = 3
	}
	d -= n100 * daysPer100Years

	n4 := d / daysPer4Years
	d -= n4 * daysPer4Years

	n1 := d / daysPerYear
	if n1 > 3 {
		n1 = 3
	}
	d -= n1 * daysPerYear

	year = n400*400 + n100*100 + n4*4 + n1 + 1

	month = 1
	for {
		dim := DaysInMonth(year, month)
		if d < dim {
			break
		}
		d -= dim
		month++
	}
	day = d + 1

	return
}

func ticksToTime(ticks int64) (hour, minute, second, millisecond int) {
	rem := ticks % TicksPerDay
	hour = int(rem / TicksPerHour)
	rem %= TicksPerHour
	minute = int(rem / TicksPerMinute)
	rem %= TicksPerMinute
	second = int(rem / TicksPerSecond)
	rem %= TicksPerSecond
	millisecond = int(rem / TicksPerMillisecond)
	return
}

func timeToTicks(hour, minute, second, millisecond int) int64 {
	return int64(hour)*TicksPerHour +
		int64(minute)*TicksPerMinute +
		int64(second)*TicksPerSecond +
		int64(millisecond)*TicksPerMillisecond
}

// Tick zero is a Monday.
func dayOfWeekOf(ticks int64) int {
	return int((ticks/TicksPerDay + 1) % 7)
}

func dayOfYearOf(ticks int64) int {
	year, month, day := ticksToDate(ticks)
	doy := int(daysBefore[month-1]) + day
	if month > 2 && IsLeapYear(year) {
		doy++
	}
	return doy
}

func clampTicks(ticks int64) int64 {
	if ticks < MinTicks {
		return MinTicks
	}
	if ticks > MaxTicks {
		return MaxTicks
	}
	return ticks
}
