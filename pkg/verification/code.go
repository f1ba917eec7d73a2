package verification

import (
	"crypto/rand"
	"fmt"
	"math/big"
)

// codeMax bounds the one-time code range [0, 1_000_000).
var codeMax = big.NewInt(1_000_000)

// GenerateCode returns a uniformly random 6-digit zero-padded decimal code.
func GenerateCode() (string, error) {
	n, err := rand.Int(rand.Reader, codeMax)
	if err != nil {
		return "", fmt.Errorf("failed to generate code: %w", err)
	}
	return fmt.Sprintf("%06d", n.Int64()), nil
}
