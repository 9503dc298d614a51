package bench

import "time"

// cycleBase anchors the tick counter. Ticks advance at one per nanosecond
// of monotonic time, which tracks elapsed time on one core the way a raw
// hardware counter does, independent of how many cores are busy.
var cycleBase = time.Now()

// Sample is one observation of every clock the harness cares about. The
// harness records one immediately before the first image and another right
// after the last save and the final merge; a metrics record is built from
// the pair.
type Sample struct {
	Wall      time.Time
	CPUUser   time.Duration
	CPUSystem time.Duration
	Cycles    uint64
}

// ReadSample captures the wall clock, the accumulated process CPU times,
// and the tick counter in one call.
func ReadSample() Sample {
	user, system := cpuTimes()
	return Sample{
		Wall:      time.Now(),
		CPUUser:   user,
		CPUSystem: system,
		Cycles:    uint64(time.Since(cycleBase)),
	}
}
