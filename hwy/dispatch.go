package hwy

import (
	"os"
	"strconv"
)

// DispatchLevel represents the instruction set available to this package.
type DispatchLevel int

const (
	// DispatchScalar indicates no usable SIMD: a non-amd64 target, a noasm
	// build, or HWY_NO_SIMD set.
	DispatchScalar DispatchLevel = iota

	// DispatchSSE2 indicates an amd64 CPU without SSSE3 (SSE2 baseline only).
	DispatchSSE2

	// DispatchSSSE3 indicates SSSE3 (PABSB, PSHUFB) is available.
	DispatchSSSE3
)

// String returns a human-readable name for the dispatch level.
func (d DispatchLevel) String() string {
	switch d {
	case DispatchScalar:
		return "scalar"
	case DispatchSSE2:
		return "sse2"
	case DispatchSSSE3:
		return "ssse3"
	default:
		return "unknown"
	}
}

// currentLevel is the detected SIMD level for this runtime.
// Set by init() in dispatch_*.go files and never changed afterwards.
var currentLevel DispatchLevel

// CurrentLevel returns the detected instruction set.
func CurrentLevel() DispatchLevel {
	return currentLevel
}

// CurrentName returns a human-readable name for the current SIMD target.
// For example: "ssse3", "sse2", "scalar".
func CurrentName() string {
	return currentLevel.String()
}

// CurrentWidth returns the vector width in bytes. Every level in this
// package works on 128-bit vectors.
func CurrentWidth() int {
	return 16
}

// HasSSSE3 reports whether AbsPackedBytes, ShuffleBytes and the helpers
// built on them may be called. It is true only for amd64 builds with
// assembly enabled, running on a CPU with SSSE3, and with HWY_NO_SIMD unset.
func HasSSSE3() bool {
	return currentLevel == DispatchSSSE3
}

// NoSimdEnv checks if the HWY_NO_SIMD environment variable is set.
// When set, HasSSSE3 reports false regardless of CPU capabilities.
// This is useful for testing and debugging.
func NoSimdEnv() bool {
	val := os.Getenv("HWY_NO_SIMD")
	if val == "" {
		return false
	}
	// Any non-empty value is considered true, but also parse as bool
	if b, err := strconv.ParseBool(val); err == nil {
		return b
	}
	return true
}
