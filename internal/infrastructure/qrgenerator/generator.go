package qrgenerator

import (
	qr "github.com/skip2/go-qrcode"

	"github.com/Xausdorf/girocode/internal/domain/girocode"
)

// Generator encodes payload text into a QR module grid at error correction level M,
// the only level EPC069-12 allows.
type Generator struct{}

func NewGenerator() *Generator {
	return &Generator{}
}

// Encode returns the module grid including the quiet zone.
func (g *Generator) Encode(text string) (girocode.Matrix, error) {
	code, err := qr.New(text, qr.Medium)
	if err != nil {
		return nil, err
	}
	return girocode.Matrix(code.Bitmap()), nil
}
