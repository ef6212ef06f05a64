package ticktime

/*
common.go contains elements, types and functions used by myriad
components throughout this package.
*/

import (
	"reflect"
	"strconv"
	"strings"
)

/*
official import aliases.
*/
var (
	itoa       func(int) string                     = strconv.Itoa
	atoi       func(string) (int, error)            = strconv.Atoi
	fmtUint    func(uint64, int) string             = strconv.FormatUint
	fmtInt     func(int64, int) string              = strconv.FormatInt
	fmtFloat   func(float64, byte, int, int) string = strconv.FormatFloat
	lc         func(string) string                  = strings.ToLower
	split      func(string, string) []string        = strings.Split
	stridxb    func(string, byte) int               = strings.IndexByte
	replaceAll func(string, string, string) string  = strings.ReplaceAll
	refTypeOf  func(any) reflect.Type               = reflect.TypeOf
)

func newStrBuilder() strings.Builder { return strings.Builder{} }

func bool2str(b bool) (s string) {
	if s = `false`; b {
		s = `true`
	}
	return
}

func isDigit(c byte) bool { return '0' <= c && c <= '9' }
