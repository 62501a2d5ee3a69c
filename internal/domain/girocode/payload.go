package girocode

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

const (
	serviceTag    = "BCD"
	formatVersion = "002"
	schemeSCT     = "SCT"
	currencyEUR   = "EUR"
	purposeCode   = "CHAR"

	lineTerminator = "\n"

	// maxAmountDigits is the number of integer digits of MaxAmount.
	maxAmountDigits = 9
)

// MaxAmount is the largest transfer amount EPC069-12 allows.
var MaxAmount = decimal.RequireFromString("999999999.99")

// PaymentRequest holds the fields of a single SEPA credit transfer.
type PaymentRequest struct {
	Beneficiary  string
	IBAN         string
	Remittance   string
	Amount       decimal.Decimal
	BIC          string
	Reference    string
	CharacterSet CharacterSet
}

// Charset returns the selected character set, UTF-8 when none was chosen.
func (r PaymentRequest) Charset() CharacterSet {
	if r.CharacterSet == 0 {
		return UTF8
	}
	return r.CharacterSet
}

// FormatAmount renders amount as EUR with two decimals, rounding half away from zero.
// Callers outside BuildPayload are expected to pass amounts within [0, MaxAmount].
func FormatAmount(amount decimal.Decimal) string {
	return currencyEUR + amount.StringFixed(2)
}

// BuildPayload assembles the EPC QR text record for req.
func BuildPayload(req PaymentRequest) (string, error) {
	iban := strings.TrimSpace(req.IBAN)
	if iban == "" {
		return "", fmt.Errorf("%w: IBAN is empty", ErrInvalidArgument)
	}
	amount, err := checkAmount(req.Amount)
	if err != nil {
		return "", err
	}

	lines := []string{
		serviceTag,
		formatVersion,
		strconv.Itoa(req.Charset().Code()),
		schemeSCT,
		req.BIC,
		req.Beneficiary,
		iban,
		FormatAmount(amount),
		purposeCode,
		req.Reference,
		req.Remittance,
	}

	var b strings.Builder
	for _, line := range lines {
		b.WriteString(line)
		b.WriteString(lineTerminator)
	}
	return b.String(), nil
}

// checkAmount bounds amount to [0, MaxAmount]. The magnitude is judged from the
// exponent first so that values such as 1e20000000 are never expanded.
func checkAmount(amount decimal.Decimal) (decimal.Decimal, error) {
	switch {
	case amount.IsNegative():
		return decimal.Decimal{}, fmt.Errorf("%w: amount is negative", ErrInvalidArgument)
	case amount.IsZero():
		return decimal.Zero, nil
	}

	magnitude := amount.NumDigits() + int(amount.Exponent())
	switch {
	case magnitude > maxAmountDigits:
		return decimal.Decimal{}, fmt.Errorf("%w: amount exceeds %s", ErrInvalidArgument, MaxAmount)
	case magnitude < -2:
		// Below 0.001, rounds to 0.00.
		return decimal.Zero, nil
	}

	rounded := amount.Round(2)
	if rounded.GreaterThan(MaxAmount) {
		return decimal.Decimal{}, fmt.Errorf("%w: amount exceeds %s", ErrInvalidArgument, MaxAmount)
	}
	return rounded, nil
}
