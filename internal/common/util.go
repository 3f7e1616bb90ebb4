package common

import (
	"crypto/rand"
	"math/big"
)

const lowercaseLetters = "abcdefghijklmnopqrstuvwxyz"

// MakeRandLowerString returns a string of length characters drawn uniformly
// from the lowercase latin alphabet. It is used to make object-storage keys
// collision-resistant while keeping them human-readable.
//
// It returns an error if the random number generator fails.
func MakeRandLowerString(length int) (string, error) {
	b := make([]byte, length)
	max := big.NewInt(int64(len(lowercaseLetters)))
	for i := range b {
		n, err := rand.Int(rand.Reader, max)
		if err != nil {
			return "", err
		}
		b[i] = lowercaseLetters[n.Int64()]
	}
	return string(b), nil
}
