package models

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// DisplayID derives the short human-facing pharmacy identifier used in
// reference numbers, e.g. "PH-3F2A1B".
func DisplayID(pharmacyID uuid.UUID) string {
	hex := strings.ReplaceAll(pharmacyID.String(), "-", "")
	return "PH-" + strings.ToUpper(hex[:6])
}

// FundReferenceNumber builds a fund-request reference number in the stable
// external format "{display_id}-FUND-{6-char-suffix}".
func FundReferenceNumber(pharmacyID uuid.UUID) string {
	return fmt.Sprintf("%s-FUND-%s", DisplayID(pharmacyID), referenceSuffix())
}

// WithdrawalReferenceNumber builds a withdrawal reference number in the
// stable external format "WD-{display_id}-{6-char-suffix}".
func WithdrawalReferenceNumber(pharmacyID uuid.UUID) string {
	return fmt.Sprintf("WD-%s-%s", DisplayID(pharmacyID), referenceSuffix())
}

func referenceSuffix() string {
	hex := strings.ReplaceAll(uuid.NewString(), "-", "")
	return strings.ToUpper(hex[:6])
}
