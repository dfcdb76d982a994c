package question

import (
	"math/rand"
	"time"
)

// RandomSource returns numbers in [0, 1). *rand.Rand satisfies it.
type RandomSource interface {
	Float64() float64
}

// NewRandomSource returns a source seeded with seed, or with the current time when seed is 0
func NewRandomSource(seed int64) RandomSource {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed))
}

func intn(r RandomSource, n int) int {
	i := int(r.Float64() * float64(n))
	if i >= n {
		return n - 1
	}
	if i < 0 {
		return 0
	}
	return i
}

// shuffle is a Fisher-Yates shuffle driven by r
func shuffle[T any](r RandomSource, s []T) {
	for i := len(s) - 1; i > 0; i-- {
		j := intn(r, i+1)
		s[i], s[j] = s[j], s[i]
	}
}
