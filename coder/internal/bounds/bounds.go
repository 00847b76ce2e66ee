package bounds

import "math"

const WordSize = 32

// Safety limits to prevent DoS attacks and memory exhaustion.
const (
	DefaultMaxInputSize       = 16 << 20 // 16 MB max decoded input
	DefaultReadBudgetMultiple = 4        // bytes read per input byte
)

// SafeMul multiplies two non-negative ints, reporting overflow.
func SafeMul(a, b int) (int, bool) {
	if a < 0 || b < 0 {
		return 0, false
	}
	if b != 0 && a > math.MaxInt/b {
		return 0, false
	}
	return a * b, true
}

// SafeAdd adds two non-negative ints, reporting overflow.
func SafeAdd(a, b int) (int, bool) {
	if a < 0 || b < 0 {
		return 0, false
	}
	if a > math.MaxInt-b {
		return 0, false
	}
	return a + b, true
}

// WordsFor returns the number of words needed to hold n bytes.
func WordsFor(n int) int {
	return (n + WordSize - 1) / WordSize
}

// PaddedLen rounds n up to the next word boundary.
func PaddedLen(n int) int {
	return WordsFor(n) * WordSize
}
