//go:build !ticktime_debug

package ticktime

type DefaultTracer struct{}

func debugEnter(_ ...any)              {}
func debugExit(_ ...any)               {}
func debugEvent(_ EventType, _ ...any) {}
func debugInfo(_ ...any)               {}
func debugParse(_ ...any)              {}
func debugFormat(_ ...any)             {}
func debugConvert(_ ...any)            {}
func debugClock(_ ...any)              {}
