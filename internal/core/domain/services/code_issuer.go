package services

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"io"
	"math/big"

	"fooddelivery/internal/core/domain/model/order"
)

const (
	pickupTokenBytes       = 16
	confirmationCodeDigits = 6
)

var confirmationCodeSpace = big.NewInt(1_000_000)

// CodeIssuer issues single-use hand-off codes from a cryptographically secure source.
//
// Codes are unpredictable but not globally unique: they are only ever checked together
// with the order id and the claiming agent.
type CodeIssuer struct {
	random io.Reader
}

// NewCodeIssuer uses crypto/rand.
func NewCodeIssuer() *CodeIssuer {
	return &CodeIssuer{random: rand.Reader}
}

// NewCodeIssuerWithSource is meant for tests that need deterministic codes.
func NewCodeIssuerWithSource(random io.Reader) *CodeIssuer {
	return &CodeIssuer{random: random}
}

// IssuePickupToken returns 16 random bytes as 32 lowercase hex characters.
func (i *CodeIssuer) IssuePickupToken() (string, error) {
	buf := make([]byte, pickupTokenBytes)
	if _, err := io.ReadFull(i.random, buf); err != nil {
		return "", fmt.Errorf("read random pickup token: %w", err)
	}
	return hex.EncodeToString(buf), nil
}

// IssueConfirmationCode returns a uniformly random 6-digit code, zero-padded.
func (i *CodeIssuer) IssueConfirmationCode() (string, error) {
	n, err := rand.Int(i.random, confirmationCodeSpace)
	if err != nil {
		return "", fmt.Errorf("read random confirmation code: %w", err)
	}
	return fmt.Sprintf("%0*d", confirmationCodeDigits, n.Int64()), nil
}

// Issue returns a fresh pair of hand-off codes.
func (i *CodeIssuer) Issue() (order.HandoffCodes, error) {
	token, err := i.IssuePickupToken()
	if err != nil {
		return order.HandoffCodes{}, err
	}
	code, err := i.IssueConfirmationCode()
	if err != nil {
		return order.HandoffCodes{}, err
	}
	return order.NewHandoffCodes(token, code)
}
