package ticktime

/*
err.go contains error constructors and literals used frequently
throughout this package.
*/

import (
	"errors"
	"sync"
)

var mkerr func(string) error = errors.New

/*
duration errors.
*/
var (
	errorEmptyDuration         = durationErr{mkerr("empty duration string")}
	errorDurationNoDesignator  = durationErr{mkerr("missing P designator")}
	errorDurationNoComponents  = durationErr{mkerr("at least one component is required")}
	errorDurationEmptyTime     = durationErr{mkerr("T present without time components")}
	errorDurationVariableUnits = durationErr{mkerr("year, month and week designators are not supported")}
)

/*
instant errors.
*/
var (
	errorShortInstant   = instantErr{mkerr("value too short")}
	errorBadYearDigits  = instantErr{mkerr("year must be exactly four digits")}
	errorDateOutOfRange = instantErr{mkerr("date component out of range")}
	errorTimeOutOfRange = instantErr{mkerr("time component out of range")}
)

/*
offset errors.
*/
var (
	errorOffsetRange   = offsetErr{mkerr("offset exceeds fourteen hours")}
	errorOffsetMinutes = offsetErr{mkerr("offset minutes exceed 59")}
	errorOffsetShape   = offsetErr{mkerr("malformed offset designator")}
	errorOffsetSign    = offsetErr{mkerr("offset sign preceded by another sign")}
)

/*
types which implement the error interface.
*/
type (
	constraintErr struct{ e error }
	durationErr   struct{ e error }
	generalErr    struct{ e error }
	instantErr    struct{ e error }
	offsetErr     struct{ e error }
)

func constraintViolationf(m ...any) error { return constraintErr{mkerrf(m...)} }
func durationErrorf(m ...any) error       { return durationErr{mkerrf(m...)} }
func generalErrorf(m ...any) error        { return generalErr{mkerrf(m...)} }
func instantErrorf(m ...any) error        { return instantErr{mkerrf(m...)} }
func offsetErrorf(m ...any) error         { return offsetErr{mkerrf(m...)} }

func (r constraintErr) Error() string { return `CONSTRAINT VIOLATION: ` + r.e.Error() }
func (r durationErr) Error() string   { return `DURATION ERROR: ` + r.e.Error() }
func (r generalErr) Error() string    { return `GENERAL ERROR: ` + r.e.Error() }
func (r instantErr) Error() string    { return `INSTANT ERROR: ` + r.e.Error() }
func (r offsetErr) Error() string     { return `OFFSET ERROR: ` + r.e.Error() }

func errorBadTypeForConstructor(valueType string, inputType any) (err error) {
	var inName string = "<nil>" // sensible default
	if inputType != nil {
		inName = refTypeOf(inputType).String()
	}
	return generalErrorf("Invalid input type for ",
		valueType, " constructor: ", inName)
}

var errCache sync.Map

func mkerrf(parts ...any) error {
	if len(parts) == 0 {
		return nil
	}

	if len(parts) == 1 {
		if s, ok := parts[0].(string); ok {
			if v, hit := errCache.Load(s); hit {
				return v.(error)
			}
		} else if parts[0] == nil {
			return nil
		}
	}

	b := newStrBuilder()
	for _, p := range parts {
		switch v := p.(type) {
		case Duration:
			b.WriteString(v.String())
		case Instant:
			b.WriteString(v.String())
		case error:
			b.WriteString(v.Error())
		case string:
			b.WriteString(v)
		case int:
			b.WriteString(itoa(v))
		case int64:
			b.WriteString(fmtInt(v, 10))
		default:
			b.WriteString("<not supported>")
		}
	}
	msg := b.String()

	if v, hit := errCache.Load(msg); hit {
		return v.(error)
	}
	e := mkerr(msg)
	errCache.Store(msg, e)
	return e
}
