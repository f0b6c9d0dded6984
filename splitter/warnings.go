package splitter

import (
	"fmt"
	"strings"
)

// Warning reports a chunk that exceeded the configured ChunkSize. This is
// diagnostic, not fatal: the oversized chunk is still emitted, untruncated.
// It happens when no separator could reduce a fragment further, or when
// overlap retention pushed a window past the bound.
type Warning struct {
	// Size is the measured length of the oversized chunk, in LengthFunc
	// units.
	Size int

	// Limit is the ChunkSize that was in effect.
	Limit int
}

// String returns a human-readable description of the warning.
func (w Warning) String() string {
	return fmt.Sprintf("created a chunk of length %d, longer than the requested %d", w.Size, w.Limit)
}

// FormatWarnings formats a list of warnings as a single string, one
// warning per line. It returns the empty string for an empty list.
func FormatWarnings(warnings []Warning) string {
	if len(warnings) == 0 {
		return ""
	}
	lines := make([]string, len(warnings))
	for i, w := range warnings {
		lines[i] = w.String()
	}
	return strings.Join(lines, "\n")
}
