package utils

import (
	"crypto/rand"
	"fmt"
	"math/big"
)

// accountNumberDigits is the number of random digits after the "AC" prefix.
const accountNumberDigits = 13

// GenerateAccountNumber produces a candidate account number of the form
// "AC" + 13 decimal digits. Digits come from crypto/rand rather than the
// wall clock, so bursty creation does not bias toward collisions. Uniqueness
// is still only enforced by the accounts table; callers must treat a
// duplicate as a retryable condition and regenerate.
func GenerateAccountNumber() (string, error) {
	max := new(big.Int).Exp(big.NewInt(10), big.NewInt(accountNumberDigits), nil)
	n, err := rand.Int(rand.Reader, max)
	if err != nil {
		return "", fmt.Errorf("failed to generate account number: %w", err)
	}
	return fmt.Sprintf("AC%0*d", accountNumberDigits, n), nil
}
