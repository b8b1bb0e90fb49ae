package usecase

import (
	"fmt"
	"math/rand/v2"
)

// maxIDAttempts bounds collision retries so a nearly full id space fails
// instead of spinning.
const maxIDAttempts = 1000

// numberSource yields the four-digit suffix of generated ids.
type numberSource func() int

func randomFourDigits() int {
	return rand.IntN(9000) + 1000
}

// newShortID returns prefix-#### with a number not reported as taken.
func newShortID(prefix string, next numberSource, taken func(string) bool) (string, error) {
	for i := 0; i < maxIDAttempts; i++ {
		id := fmt.Sprintf("%s-%04d", prefix, next())
		if !taken(id) {
			return id, nil
		}
	}
	return "", fmt.Errorf("%w: prefix=%s", ErrIDSpaceExhausted, prefix)
}
