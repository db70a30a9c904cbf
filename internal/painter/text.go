package painter

import (
	"image"
	"image/draw"

	"github.com/shopspring/decimal"
	"github.com/wcharczuk/go-chart/v2/drawing"
	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
)

type align int

const (
	alignLeft align = iota
	alignCenter
)

// FormatPrice renders a price with two decimals, as used on the price axis.
func FormatPrice(v float64) string {
	return decimal.NewFromFloat(v).StringFixed(2)
}

// MeasureText returns the advance width of s in pixels.
func (p *Painter) MeasureText(s string) float64 {
	return float64(font.MeasureString(p.face, s).Ceil())
}

// drawText draws s with its vertical center on y.
func (p *Painter) drawText(dst draw.Image, s string, x, y int, c drawing.Color, a align) {
	if a == alignCenter {
		x -= font.MeasureString(p.face, s).Ceil() / 2
	}
	m := p.face.Metrics()
	baseline := y + (m.Ascent.Ceil()-m.Descent.Ceil())/2
	d := &font.Drawer{
		Dst:  dst,
		Src:  image.NewUniform(c),
		Face: p.face,
		Dot:  fixed.P(x, baseline),
	}
	d.DrawString(s)
}
