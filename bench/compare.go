package bench

// Comparison holds the cross-run ratios derived from a baseline run and a
// candidate run. Every ratio is defined as exactly 0 when its denominator
// is not positive, so degenerate runs compare without error.
type Comparison struct {
	SpeedupWallTime               float64 `json:"speedup_wall_time"`
	SpeedupCPUUser                float64 `json:"speedup_cpu_user"`
	SpeedupCPUSystem              float64 `json:"speedup_cpu_system"`
	SpeedupPixelsPerSec           float64 `json:"speedup_pixels_per_sec"`
	ParallelEfficiency            float64 `json:"parallel_efficiency"`
	BaselinePixelsPerSec          float64 `json:"baseline_pixels_per_sec"`
	CandidatePixelsPerSec         float64 `json:"candidate_pixels_per_sec"`
	BaselineCPUUtilization        float64 `json:"baseline_cpu_utilization"`
	CandidateCPUUtilization       float64 `json:"candidate_cpu_utilization"`
	BaselineEstimatedTotalCycles  uint64  `json:"baseline_estimated_total_cycles_all_threads"`
	CandidateEstimatedTotalCycles uint64  `json:"candidate_estimated_total_cycles_all_threads"`
}

// Compare derives speedup and efficiency figures from two runs. The
// baseline is the reference, typically a sequential run, and the candidate
// is the run judged against it; any two runs are comparable. CPU
// utilization above 1.0 on the candidate side is the expected signature of
// real multi-core execution, not an error.
func Compare(baseline, candidate RunMetrics) Comparison {
	cmp := Comparison{
		SpeedupWallTime:  ratio(baseline.WallTimeSec, candidate.WallTimeSec),
		SpeedupCPUUser:   ratio(baseline.CPUUserTimeSec, candidate.CPUUserTimeSec),
		SpeedupCPUSystem: ratio(baseline.CPUSystemTimeSec, candidate.CPUSystemTimeSec),

		BaselinePixelsPerSec:  ratio(float64(baseline.TotalPixels), baseline.WallTimeSec),
		CandidatePixelsPerSec: ratio(float64(candidate.TotalPixels), candidate.WallTimeSec),

		BaselineCPUUtilization: ratio(
			baseline.CPUUserTimeSec+baseline.CPUSystemTimeSec, baseline.WallTimeSec),
		CandidateCPUUtilization: ratio(
			candidate.CPUUserTimeSec+candidate.CPUSystemTimeSec, candidate.WallTimeSec),

		BaselineEstimatedTotalCycles: estimatedTotalCycles(
			baseline.CPUCycles, baseline.CPUUserTimeSec, baseline.CPUSystemTimeSec, baseline.WallTimeSec),
		CandidateEstimatedTotalCycles: estimatedTotalCycles(
			candidate.CPUCycles, candidate.CPUUserTimeSec, candidate.CPUSystemTimeSec, candidate.WallTimeSec),
	}

	cmp.SpeedupPixelsPerSec = ratio(cmp.CandidatePixelsPerSec, cmp.BaselinePixelsPerSec)
	cmp.ParallelEfficiency = ratio(cmp.SpeedupWallTime, float64(candidate.ThreadsUsed))

	return cmp
}

// ratio divides num by den, defined as exactly 0 whenever either side is
// not positive.
func ratio(num, den float64) float64 {
	if num <= 0 || den <= 0 {
		return 0
	}
	return num / den
}
