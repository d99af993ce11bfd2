// Package credentials implements the password rules for doctor provisioning:
// generated passwords are a fixed length drawn from a fixed character set,
// operator-supplied passwords only have to meet a minimum length.
package credentials

import (
	"crypto/rand"
	"fmt"
	"math/big"
)

const (
	// GeneratedLength is the length of auto-generated passwords.
	GeneratedLength = 12
	// MinSuppliedLength is the minimum length for operator-chosen passwords.
	MinSuppliedLength = 8

	// Charset is the alphabet generated passwords are drawn from.
	Charset = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789!@#$%^&*"
)

// Generate returns a random password of GeneratedLength characters drawn
// uniformly from Charset.
func Generate() (string, error) {
	out := make([]byte, GeneratedLength)
	max := big.NewInt(int64(len(Charset)))
	for i := range out {
		n, err := rand.Int(rand.Reader, max)
		if err != nil {
			return "", fmt.Errorf("generate password: %w", err)
		}
		out[i] = Charset[n.Int64()]
	}
	return string(out), nil
}

// ValidateSupplied checks an operator-chosen password.
func ValidateSupplied(password string) error {
	if len(password) < MinSuppliedLength {
		return fmt.Errorf("password must be at least %d characters", MinSuppliedLength)
	}
	return nil
}
