package girocode_test

import (
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Xausdorf/girocode/internal/domain/girocode"
)

func sampleRequest() girocode.PaymentRequest {
	return girocode.PaymentRequest{
		Beneficiary: "Kenan",
		IBAN:        "DE74500105176879856947",
		Remittance:  "Test subject",
		Amount:      decimal.RequireFromString("1.44"),
		BIC:         "INGDDEFFXXX",
	}
}

func TestBuildPayload_FieldOrder(t *testing.T) {
	payload, err := girocode.BuildPayload(sampleRequest())
	require.NoError(t, err)

	want := "BCD\n002\n1\nSCT\nINGDDEFFXXX\nKenan\nDE74500105176879856947\nEUR1.44\nCHAR\n\nTest subject\n"
	assert.Equal(t, want, payload)

	lines := strings.Split(payload, "\n")
	require.Len(t, lines, 12)
	assert.Empty(t, lines[11])
}

func TestBuildPayload_CharacterSetLine(t *testing.T) {
	tests := []struct {
		cs   girocode.CharacterSet
		want string
	}{
		{0, "1"},
		{girocode.UTF8, "1"},
		{girocode.ISO8859_1, "2"},
		{girocode.ISO8859_2, "3"},
		{girocode.ISO8859_4, "4"},
		{girocode.ISO8859_5, "5"},
		{girocode.ISO8859_7, "6"},
		{girocode.ISO8859_10, "7"},
		{girocode.ISO8859_15, "8"},
	}
	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			req := sampleRequest()
			req.CharacterSet = tt.cs

			payload, err := girocode.BuildPayload(req)
			require.NoError(t, err)
			assert.Equal(t, tt.want, strings.Split(payload, "\n")[2])
		})
	}
}

func TestBuildPayload_TrimsIBAN(t *testing.T) {
	req := sampleRequest()
	req.IBAN = "  DE74500105176879856947 "

	payload, err := girocode.BuildPayload(req)
	require.NoError(t, err)
	assert.Equal(t, "DE74500105176879856947", strings.Split(payload, "\n")[6])
}

func TestBuildPayload_BlankIBAN(t *testing.T) {
	for _, iban := range []string{"", "   ", "\t\n"} {
		req := sampleRequest()
		req.IBAN = iban

		_, err := girocode.BuildPayload(req)
		require.ErrorIs(t, err, girocode.ErrInvalidArgument)
		assert.Contains(t, err.Error(), "IBAN is empty")
	}
}

func TestBuildPayload_NegativeAmount(t *testing.T) {
	req := sampleRequest()
	req.Amount = decimal.RequireFromString("-0.01")

	_, err := girocode.BuildPayload(req)
	require.ErrorIs(t, err, girocode.ErrInvalidArgument)
}

func TestBuildPayload_OptionalFieldsRenderEmpty(t *testing.T) {
	req := girocode.PaymentRequest{IBAN: "DE74500105176879856947"}

	payload, err := girocode.BuildPayload(req)
	require.NoError(t, err)
	assert.Equal(t, "BCD\n002\n1\nSCT\n\n\nDE74500105176879856947\nEUR0.00\nCHAR\n\n\n", payload)
}

func TestBuildPayload_Reference(t *testing.T) {
	req := sampleRequest()
	req.Reference = "RF18539007547034"

	payload, err := girocode.BuildPayload(req)
	require.NoError(t, err)

	lines := strings.Split(payload, "\n")
	assert.Equal(t, "CHAR", lines[8])
	assert.Equal(t, "RF18539007547034", lines[9])
	assert.Equal(t, "Test subject", lines[10])
}

func TestFormatAmount(t *testing.T) {
	tests := []struct {
		amount string
		want   string
	}{
		{"1.44", "EUR1.44"},
		{"1.4", "EUR1.40"},
		{"1.449", "EUR1.45"},
		{"1.445", "EUR1.45"},
		{"1.444", "EUR1.44"},
		{"0", "EUR0.00"},
		{"12345.6", "EUR12345.60"},
	}
	for _, tt := range tests {
		t.Run(tt.amount, func(t *testing.T) {
			assert.Equal(t, tt.want, girocode.FormatAmount(decimal.RequireFromString(tt.amount)))
		})
	}
}

func TestBuildPayload_AmountTooLarge(t *testing.T) {
	for _, amount := range []string{"1000000000", "999999999.995", "1e20000000", "12345678901234567890"} {
		t.Run(amount, func(t *testing.T) {
			req := sampleRequest()
			req.Amount = decimal.RequireFromString(amount)

			_, err := girocode.BuildPayload(req)
			require.ErrorIs(t, err, girocode.ErrInvalidArgument)
		})
	}
}

func TestBuildPayload_AmountBounds(t *testing.T) {
	tests := []struct {
		amount string
		want   string
	}{
		{"999999999.99", "EUR999999999.99"},
		{"999999999.994", "EUR999999999.99"},
		{"0e20000000", "EUR0.00"},
		{"1e-20000000", "EUR0.00"},
		{"0.005", "EUR0.01"},
		{"0.0049", "EUR0.00"},
		{"5e2", "EUR500.00"},
	}
	for _, tt := range tests {
		t.Run(tt.amount, func(t *testing.T) {
			req := sampleRequest()
			req.Amount = decimal.RequireFromString(tt.amount)

			payload, err := girocode.BuildPayload(req)
			require.NoError(t, err)
			assert.Equal(t, tt.want, strings.Split(payload, "\n")[7])
		})
	}
}
