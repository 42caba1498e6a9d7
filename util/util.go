package util

func BoolToU8(b bool) uint8 {
	if b {
		return 1
	}
	return 0
}

// Clamp limits v to [lo, hi].
func Clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
