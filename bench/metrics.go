package bench

import "math"

// Tally accumulates the per-image counters of a run. Workers in a parallel
// run each keep their own Tally and the partials are folded together with
// Merge once the pool drains.
type Tally struct {
	Images    int
	Pixels    int64
	MaxWidth  int
	MaxHeight int
}

// Add records one processed image.
func (t *Tally) Add(width, height int) {
	t.Images++
	t.Pixels += int64(width) * int64(height)
	if width > t.MaxWidth {
		t.MaxWidth = width
	}
	if height > t.MaxHeight {
		t.MaxHeight = height
	}
}

// Merge combines two partial tallies: counts sum, dimensions take the
// elementwise maximum. The operation is associative and commutative, so
// per-worker partials fold to the same result in any order.
func (t Tally) Merge(o Tally) Tally {
	merged := Tally{
		Images:    t.Images + o.Images,
		Pixels:    t.Pixels + o.Pixels,
		MaxWidth:  t.MaxWidth,
		MaxHeight: t.MaxHeight,
	}
	if o.MaxWidth > merged.MaxWidth {
		merged.MaxWidth = o.MaxWidth
	}
	if o.MaxHeight > merged.MaxHeight {
		merged.MaxHeight = o.MaxHeight
	}
	return merged
}

// RunMetrics captures the counters, raw timings, and derived rates of one
// complete pass over an input directory. In serialized form cpu_cycles is
// the single canonical name for the tick-counter delta.
type RunMetrics struct {
	ImagesProcessed         int     `json:"images_processed"`
	TotalPixels             int64   `json:"total_pixels"`
	WallTimeSec             float64 `json:"wall_time_sec"`
	CPUUserTimeSec          float64 `json:"cpu_user_time_sec"`
	CPUSystemTimeSec        float64 `json:"cpu_system_time_sec"`
	AvgTimePerImageMS       float64 `json:"avg_time_per_image_ms"`
	AvgTimePerPixelNS       float64 `json:"avg_time_per_pixel_ns"`
	CPUCycles               uint64  `json:"cpu_cycles"`
	CyclesPerImage          float64 `json:"cycles_per_image"`
	CyclesPerPixel          float64 `json:"cycles_per_pixel"`
	EstimatedTotalCycles    uint64  `json:"estimated_total_cycles_all_threads"`
	EstimatedCyclesPerImage float64 `json:"estimated_cycles_per_image_all_threads"`
	EstimatedCyclesPerPixel float64 `json:"estimated_cycles_per_pixel_all_threads"`
	MaxWidth                int     `json:"max_width"`
	MaxHeight               int     `json:"max_height"`
	ThreadsUsed             int     `json:"threads_used"`
}

// NewRunMetrics derives the full metrics record from a finished tally and
// the samples captured around the run. Every rate whose denominator is zero
// comes out as exactly 0; a degenerate run is a valid result, not an error.
//
// Arguments:
// - tally: Merged per-image counters.
// - start: Sample taken immediately before the first image.
// - end: Sample taken after the last save and the final merge.
// - threads: Worker count the run executed with (1 for sequential runs).
func NewRunMetrics(tally Tally, start, end Sample, threads int) RunMetrics {
	wall := end.Wall.Sub(start.Wall).Seconds()

	m := RunMetrics{
		ImagesProcessed:  tally.Images,
		TotalPixels:      tally.Pixels,
		WallTimeSec:      wall,
		CPUUserTimeSec:   (end.CPUUser - start.CPUUser).Seconds(),
		CPUSystemTimeSec: (end.CPUSystem - start.CPUSystem).Seconds(),
		CPUCycles:        end.Cycles - start.Cycles,
		MaxWidth:         tally.MaxWidth,
		MaxHeight:        tally.MaxHeight,
		ThreadsUsed:      threads,
	}

	m.EstimatedTotalCycles = estimatedTotalCycles(m.CPUCycles, m.CPUUserTimeSec, m.CPUSystemTimeSec, wall)

	if tally.Images > 0 {
		images := float64(tally.Images)
		m.AvgTimePerImageMS = wall * 1000 / images
		m.CyclesPerImage = float64(m.CPUCycles) / images
		m.EstimatedCyclesPerImage = float64(m.EstimatedTotalCycles) / images
	}
	if tally.Pixels > 0 {
		pixels := float64(tally.Pixels)
		m.AvgTimePerPixelNS = wall * 1e9 / pixels
		m.CyclesPerPixel = float64(m.CPUCycles) / pixels
		m.EstimatedCyclesPerPixel = float64(m.EstimatedTotalCycles) / pixels
	}

	return m
}

// estimatedTotalCycles approximates the ticks consumed by all threads
// together. The raw counter advances with wall time on a single core, so
// it is scaled by cpu_total/wall, which exceeds 1 exactly when the run kept
// more than one core busy. Result is clamped to be non-negative and is 0
// whenever wall time is not positive.
func estimatedTotalCycles(cycles uint64, user, system, wall float64) uint64 {
	if wall <= 0 {
		return 0
	}
	factor := (user + system) / wall
	est := math.Round(float64(cycles) * factor)
	if est < 0 {
		return 0
	}
	return uint64(est)
}
