package ticktime

import (
	"fmt"
	"testing"
	"time"
)

// Two values at different offsets are equal whenever they denote
// the same UTC moment.
func ExampleOffsetInstant_Equal() {
	a := MustParseOffsetInstant("2024-01-05T15:00:00+05:00")
	b := MustParseOffsetInstant("2024-01-05T10:00:00Z")
	fmt.Println(a.Equal(b), a.EqualExact(b))
	// Output: true false
}

func ExampleOffsetInstant_String() {
	fmt.Println(MustParseOffsetInstant("2024-01-05T15:00:00+05:00"))
	fmt.Println(MustParseOffsetInstant("2024-01-05T10:00:00Z"))
	// Output:
	// 2024-01-05T15:00:00+05:00
	// 2024-01-05T10:00:00Z
}

func ExampleOffsetInstant_ToFiletime() {
	fmt.Println(OffsetInstantFromUnixSeconds(0).ToFiletime())
	// Output: 116444736000000000
}

func TestNewOffsetInstant_validInputs(t *testing.T) {
	for _, in := range []any{
		"2024-01-05T15:00:00+05:00", // string
		[]byte("2024-01-05T10:00:00Z"),
		InstantUnixEpoch(), // Instant, offset zero
		time.Now(),         // time.Time, zone preserved
		MustParseOffsetInstant("2024-01-05T10:00:00Z"),
	} {
		if _, err := NewOffsetInstant(in); err != nil {
			t.Errorf("NewOffsetInstant(%#v) returned error: %v", in, err)
		}
	}
}

func TestNewOffsetInstant_invalidInputs(t *testing.T) {
	for _, in := range []any{
		"2024-01-05T15:00:00+15:00", // offset beyond fourteen hours
		"2024-13-01T00:00:00Z",      // bad civil portion
		struct{}{},                  // unsupported type
	} {
		if _, err := NewOffsetInstant(in); err == nil {
			t.Errorf("expected error for input %#v; got nil", in)
		}
	}
}

func TestParseOffsetInstant_designators(t *testing.T) {
	for _, iter := range []struct {
		input   string
		minutes int
	}{
		{"2024-01-05T10:30:45Z", 0},
		{"2024-01-05T10:30:45", 0}, // absent designator reads as zero
		{"2024-01-05T10:30:45+05:00", 300},
		{"2024-01-05T10:30:45-05:00", -300},
		{"2024-01-05T10:30:45+0530", 330},
		{"2024-01-05T10:30:45-0530", -330},
		{"2024-01-05T10:30:45+5", 300},
		{"2024-01-05T10:30:45+05", 300},
		{"2024-01-05T10:30:45+5:30", 330},
		{"2024-01-05T10:30:45+14:00", 840}, // the limit itself
		{"2024-01-05T10:30:45-14:00", -840},
		{"2024-01-05+05:00", 300},      // date-only prefix
		{"2024-01-05T10:30:45Zabc", 0}, // text after Z is cut with it
	} {
		o, err := ParseOffsetInstant(iter.input)
		if err != nil {
			t.Errorf("ParseOffsetInstant(%q) returned error: %v", iter.input, err)
			continue
		}
		if got := o.TotalOffsetMinutes(); got != iter.minutes {
			t.Errorf("ParseOffsetInstant(%q) offset = %d minutes; want %d",
				iter.input, got, iter.minutes)
		}
	}
}

func TestParseOffsetInstant_invalidInputs(t *testing.T) {
	for _, in := range []string{
		"2024-01-05T10:30:45+15:00",  // beyond fourteen hours
		"2024-01-05T10:30:45+14:01",  // one minute beyond
		"2024-01-05T10:30:45+05:60",  // minutes out of range
		"2024-01-05T10:30:45+-01:00", // stacked signs
		"2024-01-05T10:30:45+",       // bare sign
		"2024-01-05T10:30:45+001:00", // three digit hours
		"2024-01-05T10:30:45+05:0",   // one digit minutes with colon
		"2024-01-05T10:30:45+053",    // three digit block
		"2024-01-05T10:30:45+05:0x",  // non-digit minutes
		"2024-13-01T00:00:00+05:00",  // bad civil portion
	} {
		if _, err := ParseOffsetInstant(in); err == nil {
			t.Errorf("expected error for input %q; got nil", in)
		}
	}
}

func TestOffsetInstant_utcDerivation(t *testing.T) {
	o := MustParseOffsetInstant("2024-01-05T15:00:00+05:00")

	if got := o.UTC().Format(FormatBasic); got != "2024-01-05T10:00:00Z" {
		t.Fatalf("%s failed [UTC]:\n\twant: %s\n\tgot:  %s",
			t.Name(), "2024-01-05T10:00:00Z", got)
	}
	if got := o.Local().Format(FormatBasic); got != "2024-01-05T15:00:00Z" {
		t.Fatalf("%s failed [Local]: got %s", t.Name(), got)
	}
	if o.Hour() != 15 {
		t.Fatalf("%s failed [civil accessor]: got %d, want 15", t.Name(), o.Hour())
	}
	if !o.UTC().Equal(MustParseInstant("2024-01-05T10:00:00Z")) {
		t.Fatalf("%s failed [UTC equality]", t.Name())
	}
	if o.UTCTicks() != o.UTC().Ticks() {
		t.Fatalf("%s failed [UTCTicks]: got %d, want %d",
			t.Name(), o.UTCTicks(), o.UTC().Ticks())
	}

	neg := MakeOffsetInstant(InstantFromTicks(0), DurationFromHours(5))
	if neg.UTCTicks() != -5*TicksPerHour {
		t.Fatalf("%s failed [raw UTCTicks]: got %d", t.Name(), neg.UTCTicks())
	}
	if !neg.UTC().Equal(InstantMin()) {
		t.Fatalf("%s failed [clamped UTC]: got %s", t.Name(), neg.UTC())
	}
}

func TestOffsetInstant_comparison(t *testing.T) {
	a := MustParseOffsetInstant("2024-01-05T15:00:00+05:00")
	b := MustParseOffsetInstant("2024-01-05T10:00:00Z")
	c := MustParseOffsetInstant("2024-01-05T02:00:00-08:00")

	if !a.Equal(b) || !b.Equal(c) {
		t.Fatalf("%s failed [cross offset equality]", t.Name())
	}
	if a.EqualExact(b) || !a.EqualExact(a) {
		t.Fatalf("%s failed [EqualExact]", t.Name())
	}
	if a.Compare(b) != 0 {
		t.Fatalf("%s failed [Compare zero]", t.Name())
	}

	later := a.AddDuration(DurationFromSeconds(1))
	if !a.Before(later) || !later.After(a) || a.Compare(later) != -1 {
		t.Fatalf("%s failed [ordering]", t.Name())
	}
}

func TestOffsetInstant_toOffset(t *testing.T) {
	a := MustParseOffsetInstant("2024-01-05T10:00:00Z")
	b := a.ToOffset(DurationFromHours(-8))

	if got := b.String(); got != "2024-01-05T02:00:00-08:00" {
		t.Fatalf("%s failed [ToOffset]:\n\twant: %s\n\tgot:  %s",
			t.Name(), "2024-01-05T02:00:00-08:00", got)
	}
	if !a.Equal(b) {
		t.Fatalf("%s failed [moment invariance]", t.Name())
	}
	if !b.ToUniversalTime().EqualExact(a) {
		t.Fatalf("%s failed [ToUniversalTime]", t.Name())
	}
}

func TestOffsetInstant_validity(t *testing.T) {
	if !IsValidOffset(DurationFromHours(14)) || !IsValidOffset(DurationFromHours(-14)) {
		t.Fatalf("%s failed [limit offsets are valid]", t.Name())
	}
	if IsValidOffset(DurationFromTicks(14*TicksPerHour + 1)) {
		t.Fatalf("%s failed [one tick beyond]", t.Name())
	}

	wild := MakeOffsetInstant(InstantUnixEpoch(), DurationFromHours(20))
	if wild.IsValid() {
		t.Fatalf("%s failed [IsValid on wild offset]", t.Name())
	}
	if _, err := NewOffsetInstant(wild, OffsetLimitConstraint()); err == nil {
		t.Fatalf("%s failed [constraint]: expected error, got nil", t.Name())
	}
}

func TestOffsetInstant_civilFactory(t *testing.T) {
	off := DurationFromHours(2)
	o := NewOffsetInstantFromDateTime(2024, 1, 5, 10, 30, 45, 123, 456, off)

	if o.Millisecond() != 123 || o.Microsecond() != 456 {
		t.Fatalf("%s failed [subsecond fields]: got %d ms %d us",
			t.Name(), o.Millisecond(), o.Microsecond())
	}
	if !o.Offset().Equal(off) {
		t.Fatalf("%s failed [offset retention]", t.Name())
	}
}

func TestOffsetInstant_epochFactories(t *testing.T) {
	o := OffsetInstantFromUnixSeconds(0)
	if !o.Local().Equal(InstantUnixEpoch()) || o.TotalOffsetMinutes() != 0 {
		t.Fatalf("%s failed [unix seconds]", t.Name())
	}
	if got := OffsetInstantFromUnixMilliseconds(1700000000123).ToUnixMilliseconds(); got != 1700000000123 {
		t.Fatalf("%s failed [unix milliseconds]: got %d", t.Name(), got)
	}

	ft := OffsetInstantFromFiletime(116444736000000000)
	if !ft.Local().Equal(InstantUnixEpoch()) {
		t.Fatalf("%s failed [filetime inverse]", t.Name())
	}
}

func TestOffsetInstant_toFiletime(t *testing.T) {
	if got := OffsetInstantFromUnixSeconds(0).ToFiletime(); got != 116444736000000000 {
		t.Fatalf("%s failed [epoch]: got %d", t.Name(), got)
	}

	// The offset participates through the UTC moment.
	a := MustParseOffsetInstant("1970-01-01T05:00:00+05:00")
	if got := a.ToFiletime(); got != 116444736000000000 {
		t.Fatalf("%s failed [offset aware]: got %d", t.Name(), got)
	}

	pre := MustParseOffsetInstant("1500-01-01T00:00:00Z")
	if got := pre.ToFiletime(); got != 0 {
		t.Fatalf("%s failed [before 1601]: got %d", t.Name(), got)
	}
}

func TestOffsetInstant_addMonths(t *testing.T) {
	for _, iter := range []struct {
		start  string
		months int
		want   string
	}{
		{"2024-01-31T10:30:45+02:00", 1, "2024-02-29T10:30:45+02:00"}, // leap pullback
		{"2023-01-31T10:30:45+02:00", 1, "2023-02-28T10:30:45+02:00"}, // common pullback
		{"2024-03-31T10:30:45+02:00", -1, "2024-02-29T10:30:45+02:00"},
		{"2024-11-15T10:30:45+02:00", 3, "2025-02-15T10:30:45+02:00"},  // year rollover
		{"2024-02-15T10:30:45+02:00", -3, "2023-11-15T10:30:45+02:00"}, // year rollback
		{"2024-01-15T10:30:45+02:00", 12, "2025-01-15T10:30:45+02:00"},
		{"2024-01-15T10:30:45-05:00", 0, "2024-01-15T10:30:45-05:00"},
	} {
		got := MustParseOffsetInstant(iter.start).AddMonths(iter.months)
		if got.String() != iter.want {
			t.Errorf("AddMonths(%d) on %s = %s; want %s",
				iter.months, iter.start, got, iter.want)
		}
	}
}

func TestOffsetInstant_addYears(t *testing.T) {
	leap := MustParseOffsetInstant("2024-02-29T12:00:00+01:00")

	if got := leap.AddYears(1).String(); got != "2025-02-28T12:00:00+01:00" {
		t.Fatalf("%s failed [common landing]: got %s", t.Name(), got)
	}
	if got := leap.AddYears(4).String(); got != "2028-02-29T12:00:00+01:00" {
		t.Fatalf("%s failed [leap landing]: got %s", t.Name(), got)
	}
	if got := leap.AddYears(-1).String(); got != "2023-02-28T12:00:00+01:00" {
		t.Fatalf("%s failed [backward]: got %s", t.Name(), got)
	}
}

func TestOffsetInstant_arithmetic(t *testing.T) {
	a := MustParseOffsetInstant("2024-01-05T15:00:00+05:00")
	b := a.AddDuration(DurationFromMinutes(90))

	if got := b.String(); got != "2024-01-05T16:30:00+05:00" {
		t.Fatalf("%s failed [AddDuration]: got %s", t.Name(), got)
	}
	if !b.Sub(a).Equal(DurationFromMinutes(90)) {
		t.Fatalf("%s failed [Sub]: got %s", t.Name(), b.Sub(a))
	}
	if !b.SubDuration(DurationFromMinutes(90)).EqualExact(a) {
		t.Fatalf("%s failed [SubDuration]", t.Name())
	}

	// Deltas measure UTC moments, so mixed offsets are fine.
	z := MustParseOffsetInstant("2024-01-05T10:00:00Z")
	if !a.AddHours(1).Sub(z).Equal(DurationFromHours(1)) {
		t.Fatalf("%s failed [cross offset delta]", t.Name())
	}

	if !a.Date().EqualExact(MustParseOffsetInstant("2024-01-05T00:00:00+05:00")) {
		t.Fatalf("%s failed [Date]", t.Name())
	}
	if !a.TimeOfDay().Equal(DurationFromHours(15)) {
		t.Fatalf("%s failed [TimeOfDay]", t.Name())
	}
}

func TestOffsetInstant_formats(t *testing.T) {
	o := MustParseOffsetInstant("2024-01-05T15:00:00+05:00")

	for _, iter := range []struct {
		format InstantFormat
		want   string
	}{
		{FormatBasic, "2024-01-05T15:00:00+05:00"},
		{FormatWithOffset, "2024-01-05T15:00:00+05:00"},
		{FormatExtended, "2024-01-05T15:00:00.0+05:00"},
		{FormatDateOnly, "2024-01-05"},
		{FormatTimeOnly, "15:00:00+05:00"},
	} {
		if got := o.Format(iter.format); got != iter.want {
			t.Errorf("Format(%d) = %q; want %q", iter.format, got, iter.want)
		}
	}

	z := MustParseOffsetInstant("2024-01-05T10:00:00Z")
	if got := z.Format(FormatTimeOnly); got != "10:00:00Z" {
		t.Errorf("zero offset time only = %q; want \"10:00:00Z\"", got)
	}

	if got := o.Format(FormatUnixSeconds); got != z.Format(FormatUnixSeconds) {
		t.Errorf("unix seconds differ across equal moments: %s vs %s", got, z.Format(FormatUnixSeconds))
	}
}

func TestOffsetInstant_asTime(t *testing.T) {
	o := MustParseOffsetInstant("2024-01-05T15:00:00+05:00")

	got := o.AsTime()
	if got.Format("2006-01-02T15:04:05-07:00") != "2024-01-05T15:00:00+05:00" {
		t.Fatalf("%s failed [zone render]: got %s", t.Name(), got)
	}
	if !got.Equal(time.Date(2024, 1, 5, 10, 0, 0, 0, time.UTC)) {
		t.Fatalf("%s failed [moment]: got %s", t.Name(), got)
	}
}

func TestOffsetInstant_stringRoundTrip(t *testing.T) {
	for _, s := range []string{
		"2024-01-05T15:00:00+05:00",
		"2024-01-05T10:00:00Z",
		"2024-01-05T02:15:30-08:00",
		"0001-01-01T00:00:00Z",
		"9999-12-31T23:59:59+14:00",
	} {
		o := MustParseOffsetInstant(s)
		if got := o.String(); got != s {
			t.Errorf("round trip of %q returned %q", s, got)
		}
	}
}
