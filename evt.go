package ticktime

/*
evt.go contains EventType constants which are (only) used
for debugging when this package was built or run with the
"-tags ticktime_debug" flag.
*/

/*
EventType describes a specific kind of [Tracer] event. See the
[EventType] constants for a full list and descriptions.

Note that this type and all of its constants are only meaningful
if/when this package was run or built with the "-tags ticktime_debug"
flag. Otherwise, they can be ignored entirely.
*/
type EventType int

const (
	EventNone EventType = 0     // NO events
	EventAll  EventType = 65535 // ALL events (use with extreme caution)
)

const (
	EventEnter   EventType = 1 << iota //  1: Called-function begin
	EventInfo                          //  2: Interim function event
	EventExit                          //  4: Called function exit
	EventParse                         //  8: Text parsing ops
	EventFormat                        // 16: Text formatting ops
	EventConvert                       // 32: Tick/civil conversions
	EventClock                         // 64: Clock and zone offset ops
)
