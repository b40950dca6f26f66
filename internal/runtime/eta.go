package runtime

import "time"

// EstimateETA projects the remaining wall-clock time from the durations
// recorded so far: mean duration times remaining runs. Returns zero when
// nothing has been recorded or nothing remains.
func EstimateETA(seconds []float64, remaining int) time.Duration {
	if len(seconds) == 0 || remaining <= 0 {
		return 0
	}
	var sum float64
	for _, s := range seconds {
		sum += s
	}
	mean := sum / float64(len(seconds))
	return time.Duration(mean * float64(remaining) * float64(time.Second))
}
