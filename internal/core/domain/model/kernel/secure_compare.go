package kernel

import "crypto/subtle"

// SecureCompare reports whether two secret codes match, taking time
// independent of the position of the first differing character. Pickup and
// dropoff codes gate a financial handoff, so the comparison must not leak
// how much of a guessed code was correct.
//
// Matching is exact: no trimming, no case folding. Inputs of different
// lengths never match.
func SecureCompare(expected, supplied string) bool {
	return subtle.ConstantTimeCompare([]byte(expected), []byte(supplied)) == 1
}
