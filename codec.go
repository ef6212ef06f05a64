package ticktime

/*
codec.go implements the text, binary and YAML encoding interfaces
for the Duration, Instant and OffsetInstant types.
*/

import (
	"encoding/binary"

	"gopkg.in/yaml.v3"
)

/*
MarshalText implements the [encoding.TextMarshaler] interface. The
duration is rendered in ISO-8601 form per String. JSON and TOML
encoders pick this up automatically.
*/
func (r Duration) MarshalText() ([]byte, error) {
	return []byte(r.String()), nil
}

/*
UnmarshalText implements the [encoding.TextUnmarshaler] interface.
The input must satisfy [ParseDuration]; on error the receiver is
left unmodified.
*/
func (r *Duration) UnmarshalText(b []byte) error {
	v, err := ParseDuration(string(b))
	if err == nil {
		*r = v
	}
	return err
}

/*
MarshalBinary implements the [encoding.BinaryMarshaler] interface.
The duration is represented as a [binary.Varint] of its tick count.
*/
func (r Duration) MarshalBinary() ([]byte, error) {
	b := make([]byte, binary.MaxVarintLen64)
	return b[:binary.PutVarint(b, r.ticks)], nil
}

/*
UnmarshalBinary implements the [encoding.BinaryUnmarshaler]
interface.
*/
func (r *Duration) UnmarshalBinary(b []byte) error {
	v, n := binary.Varint(b)
	switch {
	case n <= 0:
		return generalErrorf("encoded duration truncated")
	case n != len(b):
		return generalErrorf("trailing bytes after encoded duration")
	}
	*r = Duration{v}
	return nil
}

/*
MarshalYAML implements the [yaml.Marshaler] interface. yaml.v3 does
not consult [encoding.TextMarshaler], so the ISO string form is
produced here explicitly.
*/
func (r Duration) MarshalYAML() (any, error) {
	return r.String(), nil
}

/*
UnmarshalYAML implements the [yaml.Unmarshaler] interface.
*/
func (r *Duration) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return err
	}
	return r.UnmarshalText([]byte(s))
}

/*
MarshalText implements the [encoding.TextMarshaler] interface. The
instant is rendered in extended form when a sub-second fraction is
present, basic form otherwise, so the encoded text always reads
back to the identical tick count.
*/
func (r Instant) MarshalText() ([]byte, error) {
	f := FormatBasic
	if r.ticks%TicksPerSecond != 0 {
		f = FormatExtended
	}
	return []byte(r.Format(f)), nil
}

/*
UnmarshalText implements the [encoding.TextUnmarshaler] interface.
The input must satisfy [ParseInstant]; on error the receiver is
left unmodified.
*/
func (r *Instant) UnmarshalText(b []byte) error {
	v, err := ParseInstant(string(b))
	if err == nil {
		*r = v
	}
	return err
}

/*
MarshalBinary implements the [encoding.BinaryMarshaler] interface.
The instant is represented as a [binary.Varint] of its tick count.
*/
func (r Instant) MarshalBinary() ([]byte, error) {
	b := make([]byte, binary.MaxVarintLen64)
	return b[:binary.PutVarint(b, r.ticks)], nil
}

/*
UnmarshalBinary implements the [encoding.BinaryUnmarshaler]
interface. Out-of-range tick counts clamp to the representable
range.
*/
func (r *Instant) UnmarshalBinary(b []byte) error {
	v, n := binary.Varint(b)
	switch {
	case n <= 0:
		return generalErrorf("encoded instant truncated")
	case n != len(b):
		return generalErrorf("trailing bytes after encoded instant")
	}
	*r = Instant{clampTicks(v)}
	return nil
}

/*
MarshalYAML implements the [yaml.Marshaler] interface.
*/
func (r Instant) MarshalYAML() (any, error) {
	b, _ := r.MarshalText()
	return string(b), nil
}

/*
UnmarshalYAML implements the [yaml.Unmarshaler] interface.
*/
func (r *Instant) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return err
	}
	return r.UnmarshalText([]byte(s))
}

/*
MarshalText implements the [encoding.TextMarshaler] interface. The
local reading is rendered in extended form when a sub-second
fraction is present, basic form otherwise, with the offset
designator appended either way.
*/
func (r OffsetInstant) MarshalText() ([]byte, error) {
	f := FormatBasic
	if r.local.ticks%TicksPerSecond != 0 {
		f = FormatExtended
	}
	return []byte(r.Format(f)), nil
}

/*
UnmarshalText implements the [encoding.TextUnmarshaler] interface.
The input must satisfy [ParseOffsetInstant]; on error the receiver
is left unmodified.
*/
func (r *OffsetInstant) UnmarshalText(b []byte) error {
	v, err := ParseOffsetInstant(string(b))
	if err == nil {
		*r = v
	}
	return err
}

/*
MarshalBinary implements the [encoding.BinaryMarshaler] interface.
The value is represented as two consecutive [binary.Varint]
counts, the local ticks followed by the offset ticks.
*/
func (r OffsetInstant) MarshalBinary() ([]byte, error) {
	b := make([]byte, 2*binary.MaxVarintLen64)
	n := binary.PutVarint(b, r.local.ticks)
	n += binary.PutVarint(b[n:], r.offset.ticks)
	return b[:n], nil
}

/*
UnmarshalBinary implements the [encoding.BinaryUnmarshaler]
interface.
*/
func (r *OffsetInstant) UnmarshalBinary(b []byte) error {
	local, n := binary.Varint(b)
	if n <= 0 {
		return generalErrorf("encoded offset instant truncated")
	}
	offset, m := binary.Varint(b[n:])
	switch {
	case m <= 0:
		return generalErrorf("encoded offset instant truncated")
	case n+m != len(b):
		return generalErrorf("trailing bytes after encoded offset instant")
	}
	*r = OffsetInstant{local: Instant{clampTicks(local)}, offset: Duration{offset}}
	return nil
}

/*
MarshalYAML implements the [yaml.Marshaler] interface.
*/
func (r OffsetInstant) MarshalYAML() (any, error) {
	b, _ := r.MarshalText()
	return string(b), nil
}

/*
UnmarshalYAML implements the [yaml.Unmarshaler] interface.
*/
func (r *OffsetInstant) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return err
	}
	return r.UnmarshalText([]byte(s))
}
