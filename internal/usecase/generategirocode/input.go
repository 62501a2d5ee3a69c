package generategirocode

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/Xausdorf/girocode/internal/domain/girocode"
)

// Input is the string form of a payment request as received by the transports.
type Input struct {
	Beneficiary string
	IBAN        string
	Remittance  string
	Amount      string
	BIC         string
	Reference   string
	Charset     string
}

func (in Input) PaymentRequest() (girocode.PaymentRequest, error) {
	amount, err := decimal.NewFromString(strings.TrimSpace(in.Amount))
	if err != nil {
		return girocode.PaymentRequest{}, fmt.Errorf("%w: invalid amount %q", girocode.ErrInvalidArgument, in.Amount)
	}

	cs, err := girocode.ParseCharacterSet(in.Charset)
	if err != nil {
		return girocode.PaymentRequest{}, err
	}

	return girocode.PaymentRequest{
		Beneficiary:  in.Beneficiary,
		IBAN:         in.IBAN,
		Remittance:   in.Remittance,
		Amount:       amount,
		BIC:          in.BIC,
		Reference:    in.Reference,
		CharacterSet: cs,
	}, nil
}
