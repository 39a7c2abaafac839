// Package format provides small display helpers shared by the CLI output
// paths.
package format

import (
	"fmt"
	"time"
)

// Duration formats a time.Duration for display. It shows microseconds for
// durations below a millisecond and milliseconds below a second, which reads
// better for a scan that usually finishes in well under a second.
func Duration(d time.Duration) string {
	if d < time.Millisecond {
		return fmt.Sprintf("%dµs", d.Microseconds())
	} else if d < time.Second {
		return fmt.Sprintf("%dms", d.Milliseconds())
	}
	return d.String()
}
