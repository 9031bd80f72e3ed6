package fixture

import "math"

// SeededRand maps an integer seed to a value in [0, 1). The same seed always
// yields the same value, which keeps generated data stable across runs.
func SeededRand(seed int) float64 {
	x := math.Sin(float64(seed)*9301+49297) * 233280
	return x - math.Floor(x)
}

func pick(values []string, seed int) string {
	return values[int(SeededRand(seed)*float64(len(values)))]
}

// randInt returns an integer in [lo, hi].
func randInt(lo, hi, seed int) int {
	return lo + int(math.Floor(SeededRand(seed)*float64(hi-lo+1)))
}

func randBool(probability float64, seed int) bool {
	return SeededRand(seed) < probability
}
