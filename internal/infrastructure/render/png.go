package render

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"image/png"
	"math"

	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/Xausdorf/girocode/internal/domain/girocode"
)

const (
	DefaultCaptionText = "Giro-Code"
	DefaultCaptionSize = 20
	DefaultModuleSize  = 5

	frameWidth    = 5
	captionOffset = 15
	cornerRadius  = 20
)

var ErrEmptyMatrix = errors.New("empty qr matrix")

// Caption is the label printed into the top edge of the frame.
// Zero fields fall back to DefaultCaptionText and DefaultCaptionSize.
type Caption struct {
	Text string
	Size int
}

// PNGRenderer draws a QR matrix inside a rounded frame with a caption and encodes it as PNG.
type PNGRenderer struct {
	caption    Caption
	moduleSize int
}

func NewPNGRenderer(caption Caption, moduleSize int) *PNGRenderer {
	if caption.Text == "" {
		caption.Text = DefaultCaptionText
	}
	if caption.Size <= 0 {
		caption.Size = DefaultCaptionSize
	}
	if moduleSize <= 0 {
		moduleSize = DefaultModuleSize
	}
	return &PNGRenderer{caption: caption, moduleSize: moduleSize}
}

func (r *PNGRenderer) Render(m girocode.Matrix) ([]byte, error) {
	if len(m) == 0 {
		return nil, ErrEmptyMatrix
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, r.draw(m)); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (r *PNGRenderer) draw(m girocode.Matrix) *image.RGBA {
	side := len(m) * r.moduleSize
	canvas := image.NewRGBA(image.Rect(0, 0, side, side+captionOffset))
	draw.Draw(canvas, canvas.Bounds(), image.White, image.Point{}, draw.Src)

	for y, row := range m {
		for x, dark := range row {
			if !dark {
				continue
			}
			cell := image.Rect(
				x*r.moduleSize, captionOffset+y*r.moduleSize,
				(x+1)*r.moduleSize, captionOffset+(y+1)*r.moduleSize,
			)
			draw.Draw(canvas, cell, image.Black, image.Point{}, draw.Src)
		}
	}

	drawFrame(canvas, side)
	r.drawCaption(canvas, side)
	return canvas
}

func drawFrame(canvas *image.RGBA, side int) {
	outer := image.Rect(0, captionOffset-frameWidth, side, side+captionOffset)
	inner := outer.Inset(frameWidth)
	outerRadius := cornerRadius + frameWidth/2
	innerRadius := cornerRadius - frameWidth/2

	for y := outer.Min.Y; y < outer.Max.Y; y++ {
		for x := outer.Min.X; x < outer.Max.X; x++ {
			if insideRounded(x, y, outer, outerRadius) && !insideRounded(x, y, inner, innerRadius) {
				canvas.Set(x, y, color.Black)
			}
		}
	}
}

func insideRounded(x, y int, rect image.Rectangle, radius int) bool {
	if !image.Pt(x, y).In(rect) {
		return false
	}
	px, py := float64(x)+0.5, float64(y)+0.5
	cx := math.Max(float64(rect.Min.X+radius), math.Min(px, float64(rect.Max.X-radius)))
	cy := math.Max(float64(rect.Min.Y+radius), math.Min(py, float64(rect.Max.Y-radius)))
	dx, dy := px-cx, py-cy
	return dx*dx+dy*dy <= float64(radius*radius)
}

// drawCaption rasterizes the caption with a fixed bitmap face and scales it to the
// configured size, centred on the top edge of the frame.
func (r *PNGRenderer) drawCaption(canvas *image.RGBA, side int) {
	face := basicfont.Face7x13
	metrics := face.Metrics()
	textHeight := metrics.Height.Ceil()
	ascent := metrics.Ascent.Ceil()

	d := &font.Drawer{Face: face}
	textWidth := d.MeasureString(r.caption.Text).Ceil()
	if textWidth == 0 {
		return
	}

	glyphs := image.NewRGBA(image.Rect(0, 0, textWidth, textHeight))
	d.Dst = glyphs
	d.Src = image.Black
	d.Dot = fixed.P(0, ascent)
	d.DrawString(r.caption.Text)

	scale := float64(r.caption.Size) / float64(textHeight)
	w := int(math.Round(float64(textWidth) * scale))
	h := int(math.Round(float64(textHeight) * scale))
	baseline := captionOffset - frameWidth + r.caption.Size/2
	top := baseline - int(math.Round(float64(ascent)*scale))
	left := (side - w) / 2
	dst := image.Rect(left, top, left+w, top+h)

	band := image.Rect(dst.Min.X-frameWidth, dst.Min.Y, dst.Max.X+frameWidth, dst.Max.Y)
	draw.Draw(canvas, band, image.White, image.Point{}, draw.Src)
	draw.NearestNeighbor.Scale(canvas, dst, glyphs, glyphs.Bounds(), draw.Over, nil)
}
