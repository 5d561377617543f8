package kernel

import (
	"os"
	"strings"
)

// Mode selects the population count implementation.
type Mode uint8

const (
	// Kernighan clears one set bit per iteration.
	Kernighan Mode = iota
	// Hardware uses the CPU population count instruction.
	Hardware
)

// String returns the string representation of a Mode.
func (m Mode) String() string {
	switch m {
	case Kernighan:
		return "kernighan"
	case Hardware:
		return "hardware"
	default:
		return "unknown"
	}
}

// ParseMode parses a string into a Mode value.
func ParseMode(s string) (Mode, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "kernighan":
		return Kernighan, true
	case "hardware":
		return Hardware, true
	default:
		return Kernighan, false
	}
}

// EnvPopcount is the environment variable that overrides mode detection.
const EnvPopcount = "BITVEC_POPCOUNT"

// Package-level state, set once by the platform init.
var (
	activeMode  Mode
	hasOverride bool

	// hasPopcnt is set by the platform-specific init.
	hasPopcnt bool
)

func initCapabilities() {
	if override := os.Getenv(EnvPopcount); override != "" {
		if mode, ok := ParseMode(override); ok {
			hasOverride = true
			activeMode = mode
			return
		}
		// Unknown value: fall through to detection.
	}

	activeMode = selectBestMode()
}

func selectBestMode() Mode {
	if hasPopcnt {
		return Hardware
	}
	return Kernighan
}

// ActiveMode returns the popcount mode in use.
func ActiveMode() Mode {
	return activeMode
}

// IsOverridden reports whether BITVEC_POPCOUNT selected the mode.
func IsOverridden() bool {
	return hasOverride
}

// HasPopcnt reports whether the CPU has a population count instruction.
func HasPopcnt() bool {
	return hasPopcnt
}
