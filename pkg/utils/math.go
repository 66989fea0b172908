package utils

// Abs returns the absolute value of x.
func Abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// Max3 returns the largest of a, b and c.
func Max3(a, b, c int) int {
	return max(a, b, c)
}
