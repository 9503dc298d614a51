//go:build !unix

package bench

import "time"

// cpuTimes has no getrusage equivalent wired up off unix; CPU-time derived
// metrics read as zero on such platforms.
func cpuTimes() (user, system time.Duration) {
	return 0, 0
}
