package order

import (
	"crypto/subtle"
	"errors"
	"fmt"
	"regexp"

	"fooddelivery/internal/pkg/errs"
	"fooddelivery/internal/pkg/guard"
)

var (
	ErrHandoffCodesAreNotConstructed = errors.New("HandoffCodes must be created via NewHandoffCodes constructor")

	pickupTokenPattern      = regexp.MustCompile(`^[0-9a-f]{32}$`)
	confirmationCodePattern = regexp.MustCompile(`^[0-9]{6}$`)
)

// HandoffCodes holds the secrets bound to one claim of an order:
// the pickup token shown by the restaurant (as a QR code) and the six digit code
// the customer gives to the agent on arrival.
type HandoffCodes struct {
	pickupToken      string
	confirmationCode string
	guard            guard.ConstructorGuard
}

// NewHandoffCodes checks the wire formats: 32 lowercase hex characters and 6 digits.
func NewHandoffCodes(pickupToken, confirmationCode string) (HandoffCodes, error) {
	var problems []error
	if !pickupTokenPattern.MatchString(pickupToken) {
		problems = append(problems, errs.NewValueIsInvalidErrorWithCause(
			"pickupToken", fmt.Errorf("expected 32 hex characters, got %d characters", len(pickupToken))))
	}
	if !confirmationCodePattern.MatchString(confirmationCode) {
		problems = append(problems, errs.NewValueIsInvalidErrorWithCause(
			"confirmationCode", errors.New("expected 6 digits")))
	}
	if err := errors.Join(problems...); err != nil {
		return HandoffCodes{}, err
	}

	return HandoffCodes{
		pickupToken:      pickupToken,
		confirmationCode: confirmationCode,
		guard:            guard.NewConstructorGuard(),
	}, nil
}

func (c HandoffCodes) Validate() error {
	return c.guard.Validate(ErrHandoffCodesAreNotConstructed)
}

func (c HandoffCodes) PickupToken() string {
	return c.pickupToken
}

func (c HandoffCodes) ConfirmationCode() string {
	return c.confirmationCode
}

// MatchesPickupToken compares in constant time.
func (c HandoffCodes) MatchesPickupToken(candidate string) bool {
	return constantTimeEqual(c.pickupToken, candidate)
}

// MatchesConfirmationCode compares in constant time.
func (c HandoffCodes) MatchesConfirmationCode(candidate string) bool {
	return constantTimeEqual(c.confirmationCode, candidate)
}

func constantTimeEqual(expected, candidate string) bool {
	if expected == "" {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(expected), []byte(candidate)) == 1
}
