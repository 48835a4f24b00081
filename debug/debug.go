// Package debug provides env-var gated diagnostics for the classifiers.
// Flags are read once at startup: XMLP_DEBUG_CLASSIFY, XMLP_DEBUG_STREAM,
// XMLP_DEBUG_RPC.
package debug

import (
	"fmt"
	"os"
	"strconv"
)

type debug struct {
	Classify bool
	Stream   bool
	RPC      bool
}

var d *debug

func init() {
	d = &debug{}
	d.Classify = boolEnv("XMLP_DEBUG_CLASSIFY")
	d.Stream = boolEnv("XMLP_DEBUG_STREAM")
	d.RPC = boolEnv("XMLP_DEBUG_RPC")
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

func Classify() bool {
	return d.Classify
}
func Stream() bool {
	return d.Stream
}
func RPC() bool {
	return d.RPC
}

func Logf(msg string, args ...any) {
	fmt.Fprintf(os.Stderr, msg, args...)
}
