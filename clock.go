package ticktime

/*
clock.go defines the Clock source behind the now and today
factories, plus the SystemClock package default.
*/

import (
	"sync/atomic"
	"time"
)

/*
Clock supplies the current moment and the local zone offset to the
factories that need either, such as [Now], [OffsetNow] and
[OffsetInstantLocal]. Supply a custom implementation in tests to
pin one or both values.
*/
type Clock interface {
	// NowTicks returns the current moment as the tick count since
	// 0001-01-01T00:00:00 UTC.
	NowTicks() int64

	// OffsetAt returns the local zone offset in effect at the
	// specified UTC moment.
	OffsetAt(Instant) Duration
}

/*
SystemClock reads the wall clock through [time.Now] and the zone
offset through [time.Local]. The offset is cached per civil hour:
lookups within the same hour stay lock-free, and DST transitions,
which land on hour boundaries, still invalidate the cache.
*/
type SystemClock struct {
	cachedHour    atomic.Int64 // year*1000000 + month*10000 + day*100 + hour
	offsetSeconds atomic.Int64
}

/*
NewSystemClock returns a freshly initialized instance of
*[SystemClock].
*/
func NewSystemClock() *SystemClock { return &SystemClock{} }

/*
NowTicks returns the current moment per [time.Now] as the tick
count since 0001-01-01T00:00:00 UTC.
*/
func (r *SystemClock) NowTicks() int64 {
	now := time.Now()
	return UnixEpochTicks + now.Unix()*TicksPerSecond + int64(now.Nanosecond())/100
}

/*
OffsetAt returns the local zone offset in effect at the specified
UTC moment, consulting the hour cache first.
*/
func (r *SystemClock) OffsetAt(i Instant) Duration {
	year, month, day := ticksToDate(i.ticks)
	hour, _, _, _ := ticksToTime(i.ticks)
	key := int64(year)*1000000 + int64(month)*10000 + int64(day)*100 + int64(hour)

	if r.cachedHour.Load() == key {
		return Duration{r.offsetSeconds.Load() * TicksPerSecond}
	}

	_, secs := i.AsTime().In(time.Local).Zone()
	debugClock(key, secs)

	// Offset lands before the key so a concurrent reader never
	// pairs the new key with a stale offset.
	r.offsetSeconds.Store(int64(secs))
	r.cachedHour.Store(key)

	return Duration{int64(secs) * TicksPerSecond}
}

var defaultClock Clock = NewSystemClock()

/*
pickClock resolves the optional trailing clock parameter accepted
by the now and today factories.
*/
func pickClock(clock []Clock) Clock {
	if len(clock) > 0 && clock[0] != nil {
		return clock[0]
	}
	return defaultClock
}
