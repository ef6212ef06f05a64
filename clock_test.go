package ticktime

import (
	"testing"
)

// fakeClock pins both the wall reading and the zone offset.
type fakeClock struct {
	ticks  int64
	offset Duration
}

func (r fakeClock) NowTicks() int64           { return r.ticks }
func (r fakeClock) OffsetAt(Instant) Duration { return r.offset }

func TestNow_withClock(t *testing.T) {
	fc := fakeClock{
		ticks:  MustParseInstant("2024-01-05T10:00:00Z").Ticks(),
		offset: DurationFromHours(5),
	}

	if got := Now(fc).String(); got != "2024-01-05T10:00:00Z" {
		t.Fatalf("%s failed [Now]: got %s", t.Name(), got)
	}
	if !UTCNow(fc).Equal(Now(fc)) {
		t.Fatalf("%s failed [UTCNow alias]", t.Name())
	}
	if got := Today(fc).String(); got != "2024-01-05T00:00:00Z" {
		t.Fatalf("%s failed [Today]: got %s", t.Name(), got)
	}
}

func TestOffsetNow_withClock(t *testing.T) {
	fc := fakeClock{
		ticks:  MustParseInstant("2024-01-05T10:00:00Z").Ticks(),
		offset: DurationFromHours(5),
	}

	now := OffsetNow(fc)
	if got := now.String(); got != "2024-01-05T15:00:00+05:00" {
		t.Fatalf("%s failed [OffsetNow]: got %s", t.Name(), got)
	}
	if !now.UTC().Equal(Now(fc)) {
		t.Fatalf("%s failed [UTC agreement]", t.Name())
	}

	utc := OffsetUTCNow(fc)
	if got := utc.String(); got != "2024-01-05T10:00:00Z" {
		t.Fatalf("%s failed [OffsetUTCNow]: got %s", t.Name(), got)
	}
	if utc.TotalOffsetMinutes() != 0 {
		t.Fatalf("%s failed [zero offset]", t.Name())
	}
}

func TestOffsetToday_withClock(t *testing.T) {
	fc := fakeClock{
		ticks:  MustParseInstant("2024-01-05T10:00:00Z").Ticks(),
		offset: DurationFromHours(5),
	}
	if got := OffsetToday(fc).String(); got != "2024-01-05T00:00:00+05:00" {
		t.Fatalf("%s failed [OffsetToday]: got %s", t.Name(), got)
	}

	// A large positive offset can put the local date one day ahead
	// of the UTC date.
	late := fakeClock{
		ticks:  MustParseInstant("2024-01-05T22:00:00Z").Ticks(),
		offset: DurationFromHours(5),
	}
	if got := OffsetToday(late).String(); got != "2024-01-06T00:00:00+05:00" {
		t.Fatalf("%s failed [date roll]: got %s", t.Name(), got)
	}
}

func TestOffsetInstantLocal_withClock(t *testing.T) {
	fc := fakeClock{offset: DurationFromHours(-8)}
	utc := MustParseInstant("2024-01-05T10:00:00Z")

	local := OffsetInstantLocal(utc, fc)
	if got := local.String(); got != "2024-01-05T02:00:00-08:00" {
		t.Fatalf("%s failed [OffsetInstantLocal]: got %s", t.Name(), got)
	}
	if !local.UTC().Equal(utc) {
		t.Fatalf("%s failed [moment retention]", t.Name())
	}

	z := MustParseOffsetInstant("2024-01-05T10:00:00Z")
	if got := z.ToLocalTime(fc).String(); got != "2024-01-05T02:00:00-08:00" {
		t.Fatalf("%s failed [ToLocalTime]: got %s", t.Name(), got)
	}
}

func TestSystemClock(t *testing.T) {
	sc := NewSystemClock()

	lo := NewInstantFromDate(2020, 1, 1).Ticks()
	hi := NewInstantFromDate(2100, 1, 1).Ticks()
	now := sc.NowTicks()
	if now < lo || now >= hi {
		t.Fatalf("%s failed [wall range]: got %d", t.Name(), now)
	}

	// Repeated lookups for the same hour must agree, cached or not.
	i := InstantFromTicks(now)
	first := sc.OffsetAt(i)
	second := sc.OffsetAt(i)
	if !first.Equal(second) {
		t.Fatalf("%s failed [cache coherence]: %s vs %s", t.Name(), first, second)
	}

	day := DurationFromDays(1)
	if !first.LessThan(day) || !day.Negate().LessThan(first) {
		t.Fatalf("%s failed [offset sanity]: got %s", t.Name(), first)
	}
}

func TestPickClock_defaults(t *testing.T) {
	lo := NewInstantFromDate(2020, 1, 1)
	hi := NewInstantFromDate(2100, 1, 1)

	for _, i := range []Instant{Now(), Now(nil)} {
		if i.Before(lo) || !i.Before(hi) {
			t.Fatalf("%s failed [default clock range]: got %s", t.Name(), i)
		}
	}
}
