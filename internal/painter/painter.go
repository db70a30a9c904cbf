// Package painter rasterizes a geometry.Frame into a PNG.
//
// Each decoration is drawn on its own transparent go-chart layer and
// composited onto the destination; the clip polygons of the frame become
// alpha masks so the dashed gridlines only show above the price line and the
// fill pattern only below it.
package painter

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"
	"math"

	chart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"

	"StockChart/internal/geometry"
	"StockChart/internal/model"
)

// Header is the text shown in the top margin.
type Header struct {
	Title    string
	Subtitle string
}

// Painter paints frames with a fixed theme. It is safe for concurrent use.
type Painter struct {
	theme Theme
	face  font.Face
}

// New creates a Painter.
func New(theme Theme) *Painter {
	return &Painter{theme: theme, face: basicfont.Face7x13}
}

// WritePNG paints frame and encodes it as PNG to w.
func (p *Painter) WritePNG(w io.Writer, frame *geometry.Frame, header Header) error {
	img, err := p.Paint(frame, header)
	if err != nil {
		return err
	}
	if err := png.Encode(w, img); err != nil {
		return fmt.Errorf("encode png: %w", err)
	}
	return nil
}

// Paint rasterizes frame onto a new image the size of its surface.
func (p *Painter) Paint(frame *geometry.Frame, header Header) (*image.RGBA, error) {
	w := int(math.Round(frame.Layout.Surface.Width))
	h := int(math.Round(frame.Layout.Surface.Height))
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("invalid surface %dx%d", w, h)
	}
	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	p.paintBackground(dst)

	grid, err := layer(w, h, func(r chart.Renderer) { p.drawDashedGrid(r, frame) })
	if err != nil {
		return nil, err
	}
	if err := composite(dst, grid, frame.AboveClip); err != nil {
		return nil, err
	}

	if len(frame.BelowClip) > 0 {
		fill, err := layer(w, h, func(r chart.Renderer) { p.drawFill(r, frame) })
		if err != nil {
			return nil, err
		}
		if err := composite(dst, fill, frame.BelowClip); err != nil {
			return nil, err
		}
	}

	fg, err := layer(w, h, func(r chart.Renderer) {
		p.drawMonthGrid(r, frame)
		p.drawPriceLine(r, frame)
		p.drawVolume(r, frame)
	})
	if err != nil {
		return nil, err
	}
	draw.Draw(dst, dst.Bounds(), fg, image.Point{}, draw.Over)

	p.drawLabels(dst, frame, header)
	return dst, nil
}

// layer runs paint on a fresh transparent go-chart raster and returns the result.
func layer(w, h int, paint func(chart.Renderer)) (image.Image, error) {
	r, err := chart.PNG(w, h)
	if err != nil {
		return nil, fmt.Errorf("create layer: %w", err)
	}
	paint(r)

	var buf bytes.Buffer
	if err := r.Save(&buf); err != nil {
		return nil, fmt.Errorf("save layer: %w", err)
	}
	img, err := png.Decode(&buf)
	if err != nil {
		return nil, fmt.Errorf("decode layer: %w", err)
	}
	return img, nil
}

// composite draws src over dst, restricted to clip when it is non-empty.
func composite(dst *image.RGBA, src image.Image, clip model.Polygon) error {
	if len(clip) == 0 {
		draw.Draw(dst, dst.Bounds(), src, image.Point{}, draw.Over)
		return nil
	}
	b := dst.Bounds()
	mask, err := layer(b.Dx(), b.Dy(), func(r chart.Renderer) {
		fillPolygon(r, clip, drawing.ColorBlack)
	})
	if err != nil {
		return err
	}
	draw.DrawMask(dst, b, src, image.Point{}, mask, image.Point{}, draw.Over)
	return nil
}

func (p *Painter) paintBackground(dst *image.RGBA) {
	b := dst.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		c := p.gradientAt(y, b.Dy())
		draw.Draw(dst, image.Rect(b.Min.X, y, b.Max.X, y+1), image.NewUniform(c), image.Point{}, draw.Src)
	}
}

// gradientAt interpolates the background color for row y of an h-row surface.
func (p *Painter) gradientAt(y, h int) color.RGBA {
	t := 0.0
	if h > 1 {
		t = float64(y) / float64(h-1)
	}
	top, bottom := p.theme.BackgroundTop, p.theme.BackgroundBottom
	lerp := func(a, b uint8) uint8 {
		return uint8(math.Round(float64(a) + (float64(b)-float64(a))*t))
	}
	return color.RGBA{
		R: lerp(top.R, bottom.R),
		G: lerp(top.G, bottom.G),
		B: lerp(top.B, bottom.B),
		A: 255,
	}
}

func (p *Painter) drawDashedGrid(r chart.Renderer, frame *geometry.Frame) {
	price := frame.Layout.Price
	if price.Width <= 0 {
		return
	}
	r.SetStrokeColor(p.theme.DashedGrid)
	r.SetStrokeWidth(1)
	r.SetStrokeDashArray(p.theme.Dash)
	for _, y := range frame.HorizontalGrid {
		r.MoveTo(px(price.MinX()), px(y))
		r.LineTo(px(price.MaxX()), px(y))
		r.Stroke()
	}
	r.SetStrokeDashArray(nil)
}

func (p *Painter) drawFill(r chart.Renderer, frame *geometry.Frame) {
	fillPolygon(r, frame.BelowClip, p.theme.Fill)

	price := frame.Layout.Price
	if p.theme.PatternSpacing <= 0 {
		return
	}
	r.SetStrokeColor(p.theme.Pattern)
	r.SetStrokeWidth(1)
	for x := px(price.MinX()); x <= px(price.MaxX()); x += p.theme.PatternSpacing {
		r.MoveTo(x, px(price.MinY()))
		r.LineTo(x, px(price.MaxY()))
		r.Stroke()
	}
}

func (p *Painter) drawMonthGrid(r chart.Renderer, frame *geometry.Frame) {
	price := frame.Layout.Price
	top, bottom := px(price.MinY()), px(frame.Layout.Volume.MaxY())

	r.SetStrokeColor(p.theme.Grid)
	r.SetStrokeWidth(p.theme.GridWidth)

	left := px(math.RoundToEven(price.MinX()))
	r.MoveTo(left, top)
	r.LineTo(left, bottom)
	r.Stroke()

	for _, offset := range frame.VerticalGrid {
		x := px(price.X + offset)
		r.MoveTo(x, top)
		r.LineTo(x, bottom)
		r.Stroke()
	}
}

func (p *Painter) drawPriceLine(r chart.Renderer, frame *geometry.Frame) {
	path := frame.PricePath
	if len(path) < 2 {
		return
	}
	r.SetStrokeColor(p.theme.PriceLine)
	r.SetStrokeWidth(math.Max(frame.StrokeWidth, 1))
	r.MoveTo(px(path[0].X), px(path[0].Y))
	for _, pt := range path[1:] {
		r.LineTo(px(pt.X), px(pt.Y))
	}
	r.Stroke()
}

func (p *Painter) drawVolume(r chart.Renderer, frame *geometry.Frame) {
	bars := frame.VolumeBars
	if len(bars) == 0 {
		return
	}
	spacing := frame.Layout.Volume.Width
	if len(bars) > 1 {
		spacing = bars[1].From.X - bars[0].From.X
	}
	r.SetStrokeColor(p.theme.Volume)
	r.SetStrokeWidth(math.Max(1, math.Floor(spacing*0.6)))
	for _, b := range bars {
		if b.From.Y == b.To.Y {
			continue
		}
		r.MoveTo(px(b.From.X), px(b.From.Y))
		r.LineTo(px(b.To.X), px(b.To.Y))
		r.Stroke()
	}
}

func (p *Painter) drawLabels(dst *image.RGBA, frame *geometry.Frame, header Header) {
	if header.Title != "" {
		p.drawText(dst, header.Title, 8, 18, p.theme.Text, alignLeft)
	}
	if header.Subtitle != "" {
		p.drawText(dst, header.Subtitle, 8, 38, p.theme.MutedText, alignLeft)
	}
	for _, l := range frame.PriceLabels {
		p.drawText(dst, FormatPrice(l.Value), px(l.Anchor.X), px(l.Anchor.Y), p.theme.MutedText, alignLeft)
	}
	for _, l := range frame.MonthLabels {
		p.drawText(dst, l.Text, px(l.Anchor.X), px(l.Anchor.Y), p.theme.MutedText, alignCenter)
	}
}

func fillPolygon(r chart.Renderer, poly model.Polygon, c drawing.Color) {
	if len(poly) == 0 {
		return
	}
	r.SetFillColor(c)
	r.MoveTo(px(poly[0].X), px(poly[0].Y))
	for _, pt := range poly[1:] {
		r.LineTo(px(pt.X), px(pt.Y))
	}
	r.Close()
	r.Fill()
}

func px(v float64) int { return int(math.Round(v)) }
