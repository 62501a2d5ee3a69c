package girocode

// Matrix is a square QR module grid; true marks a dark module.
type Matrix [][]bool

// TextEncoder converts UTF-8 text into the named 8-bit character set and fails on
// runes the set cannot represent.
type TextEncoder interface {
	Encode(text, encodingName string) ([]byte, error)
}

// MatrixEncoder turns a validated payload into a QR module grid at error correction level M.
type MatrixEncoder interface {
	Encode(text string) (Matrix, error)
}

// Renderer produces the final PNG image of a module grid.
type Renderer interface {
	Render(m Matrix) ([]byte, error)
}
