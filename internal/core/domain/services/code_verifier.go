package services

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"math/big"

	"settlement/internal/core/domain/model/kernel"
)

const (
	// pickupCodeBytes sizes the pickup token: 16 random bytes, hex-encoded to
	// a 32-character opaque string meant for scanning, not manual entry.
	pickupCodeBytes = 16

	// dropoffCodeDigits sizes the dropoff code: a short numeric code the buyer
	// reads out for the courier to type in at the door.
	dropoffCodeDigits = 6
)

// CodeVerifier is a domain service that generates and checks the secret codes
// gating physical-custody transitions.
//
// Key responsibilities:
//   - Generating collision-resistant pickup tokens (long, opaque, scannable)
//   - Generating short numeric dropoff codes (human-transcribable)
//   - Verifying supplied codes without leaking timing information
//
// Business rules:
//   - A code matches only exactly: no trimming, no case folding
//   - Comparison time is independent of how much of the code was guessed
//     correctly, since codes gate a financial handoff
//
// The service is stateless; all randomness comes from crypto/rand.
//
// Example usage:
//
//	verifier := services.NewCodeVerifier()
//	pickup, _ := verifier.GeneratePickupCode()
//	dropoff, _ := verifier.GenerateDropoffCode()
//
//	if !verifier.Verify(pickup, suppliedCode) {
//	    // reject the handoff, courier may retry
//	}
type CodeVerifier struct{}

// NewCodeVerifier creates a new CodeVerifier instance.
func NewCodeVerifier() CodeVerifier {
	return CodeVerifier{}
}

// GeneratePickupCode produces the opaque token the courier presents to collect
// the goods from the seller. 32 hex characters from a cryptographic source.
func (v CodeVerifier) GeneratePickupCode() (string, error) {
	buf := make([]byte, pickupCodeBytes)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("generate pickup code: %w", err)
	}
	return hex.EncodeToString(buf), nil
}

// GenerateDropoffCode produces the short numeric code the buyer hands the
// courier at delivery. Always exactly dropoffCodeDigits digits, zero-padded.
func (v CodeVerifier) GenerateDropoffCode() (string, error) {
	limit := big.NewInt(1)
	for range dropoffCodeDigits {
		limit.Mul(limit, big.NewInt(10))
	}

	n, err := rand.Int(rand.Reader, limit)
	if err != nil {
		return "", fmt.Errorf("generate dropoff code: %w", err)
	}
	return fmt.Sprintf("%0*d", dropoffCodeDigits, n), nil
}

// Verify reports whether the supplied code matches the expected one.
// Exact match only, compared in constant time.
func (v CodeVerifier) Verify(expected, supplied string) bool {
	return kernel.SecureCompare(expected, supplied)
}
