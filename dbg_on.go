//go:build ticktime_debug

package ticktime

import (
	"io"
	"os"
	"runtime"
	"sync"
	"time"
)

/*
EnvDebugVar defines the environment variable name which can
be leveraged to invoke or disable use of the [DefaultTracer]
[Tracer] qualifier.

Use sparingly in high-volume/performance-sensitive scenarios.
*/
const EnvDebugVar = "TICKTIME_DEBUG"

/*
TraceRecord encapsulates metadata pertaining to a particular event
observed by a [Tracer]. This includes a [time.Time] timestamp, an
[EventType] as well as any arguments.
*/
type TraceRecord struct {
	Time time.Time // timestamp, i.e.: time.Now()
	Type EventType // Enter, Info, Exit or a domain event
	Func string    // FuncName -or- TypeName.MethodName
	Args []any
}

/*
Tracer implements an interface tracer type, which is implemented
by [DefaultTracer].
*/
type Tracer interface {
	Trace(TraceRecord)
}

type levelTracer interface {
	Tracer
	Enabled(EventType) bool
}

/*
DefaultTracer is the package-level [Tracer] implementation.
*/
type DefaultTracer struct {
	mu   sync.Mutex
	w    io.Writer
	mask EventType
}

/*
NewDefaultTracer returns an instance of *[DefaultTracer]. The
input [io.Writer] value represents the writer interface type
to which debug data shall be written.
*/
func NewDefaultTracer(writer io.Writer) *DefaultTracer {
	return &DefaultTracer{
		mu:   sync.Mutex{},
		w:    writer,
		mask: EventEnter | EventInfo | EventExit,
	}
}

/*
EnableLevel adds [EventType] ev to the collection of events
to be traced during debugging.
*/
func (r *DefaultTracer) EnableLevel(ev EventType) { r.mask |= ev }

/*
DisableLevel removes [EventType] ev from the collection of events
to be traced during debugging.
*/
func (r *DefaultTracer) DisableLevel(ev EventType) { r.mask &^= ev }

/*
Enabled returns a Boolean value indicative of the specified
[EventType] being enabled within the receiver instance.
*/
func (r *DefaultTracer) Enabled(e EventType) bool {
	return e == EventNone || r.mask&e != 0 || r.mask == EventAll
}

/*
Trace writes [TraceRecord] rec to the [io.Writer] handled by the
receiver instance. This method need not be executed by the end
user directly.
*/
func (r *DefaultTracer) Trace(rec TraceRecord) {
	if !r.Enabled(rec.Type) {
		return
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	ts := rec.Time.Format("15:04:05.000")
	marker := " • "
	switch rec.Type {
	case EventEnter:
		marker = " → "
	case EventExit:
		marker = " ← "
	}

	r.w.Write([]byte(ts + marker + rec.Func))
	for i, a := range rec.Args {
		if i == 0 {
			r.w.Write([]byte(": "))
		} else {
			r.w.Write([]byte(", "))
		}
		r.w.Write([]byte(fmtArg(a)))
	}
	r.w.Write([]byte("\n"))
}

/*
EnableDebug registers and activates [Tracer] for debugging.

This function need not be called if an environment variable of
[EnvDebugVar] was read and successfully parsed at runtime.
*/
func EnableDebug(t Tracer) {
	tmu.Lock()
	defer tmu.Unlock()
	tracer = t
}

/*
DisableDebug disables [Tracer] debugging.
*/
func DisableDebug() {
	tmu.Lock()
	defer tmu.Unlock()
	tracer = &discardTracer{}
}

var (
	tmu    sync.RWMutex
	tracer Tracer = &discardTracer{} // default
)

type discardTracer struct{}

func (*discardTracer) Trace(_ TraceRecord)      {}
func (*discardTracer) Enabled(_ EventType) bool { return false }

func debugEvent(level EventType, args ...any) {
	tmu.RLock()
	t := tracer
	tmu.RUnlock()

	if lt, ok := t.(levelTracer); ok {
		if !(lt.Enabled(level) || lt.Enabled(EventAll)) {
			return
		}
	}

	fn := "unknown"
	if pc, _, _, ok := runtime.Caller(2); ok {
		fn = runtime.FuncForPC(pc).Name()
	}
	fn = replaceAll(fn, "go-ticktime.", "")

	t.Trace(TraceRecord{
		Time: time.Now(),
		Type: level,
		Func: fn,
		Args: args,
	})
}

func debugEnter(args ...any)   { debugEvent(EventEnter, args...) }
func debugExit(args ...any)    { debugEvent(EventExit, args...) }
func debugInfo(args ...any)    { debugEvent(EventInfo, args...) }
func debugParse(args ...any)   { debugEvent(EventParse, args...) }
func debugFormat(args ...any)  { debugEvent(EventFormat, args...) }
func debugConvert(args ...any) { debugEvent(EventConvert, args...) }
func debugClock(args ...any)   { debugEvent(EventClock, args...) }

func fmtArg(x any) (s string) {
	switch v := x.(type) {
	case int:
		s = itoa(v)
	case int64:
		s = fmtInt(v, 10)
	case float64:
		s = fmtFloat(v, 'g', -1, 64)
	case string:
		s = v
	case bool:
		s = bool2str(v)
	case error:
		s = v.Error()
	case Duration:
		s = v.String()
	case Instant:
		s = v.String()
	case OffsetInstant:
		s = v.String()
	default:
		if x == nil {
			s = "<nil>"
		} else {
			s = refTypeOf(x).String()
		}
	}

	return
}

var debugEventNames = map[string]EventType{
	"all":     EventAll,
	"none":    EventNone,
	"enter":   EventEnter,
	"info":    EventInfo,
	"exit":    EventExit,
	"parse":   EventParse,
	"format":  EventFormat,
	"convert": EventConvert,
	"clock":   EventClock,
}

func init() {
	if evar := os.Getenv(EnvDebugVar); evar != "" {
		dt := NewDefaultTracer(os.Stderr)
		for _, part := range split(evar, ",") {
			if n, err := atoi(part); err == nil {
				if n < 0 {
					dt.mask = EventAll
					break
				}
				dt.EnableLevel(EventType(n))
			} else if ev, found := debugEventNames[lc(part)]; found {
				if ev == EventAll {
					dt.mask = EventAll
					break
				}
				dt.EnableLevel(ev)
			}
		}
		EnableDebug(dt)
	}
}
