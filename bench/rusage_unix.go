//go:build unix

package bench

import (
	"time"

	"golang.org/x/sys/unix"
)

// cpuTimes returns the accumulated user and system CPU time of the whole
// process, the accounting getrusage reports for RUSAGE_SELF.
func cpuTimes() (user, system time.Duration) {
	var ru unix.Rusage
	if err := unix.Getrusage(unix.RUSAGE_SELF, &ru); err != nil {
		return 0, 0
	}
	return time.Duration(ru.Utime.Nano()), time.Duration(ru.Stime.Nano())
}
