package painter

import "github.com/wcharczuk/go-chart/v2/drawing"

// Theme holds every color and stroke the painter uses.
type Theme struct {
	BackgroundTop    drawing.Color
	BackgroundBottom drawing.Color

	Grid      drawing.Color
	GridWidth float64

	DashedGrid drawing.Color
	Dash       []float64

	Fill           drawing.Color
	Pattern        drawing.Color
	PatternSpacing int

	PriceLine drawing.Color
	Volume    drawing.Color

	Text      drawing.Color
	MutedText drawing.Color
}

// DefaultTheme is the dark blue stock view look.
func DefaultTheme() Theme {
	return Theme{
		BackgroundTop:    drawing.Color{R: 48, G: 61, B: 114, A: 255},
		BackgroundBottom: drawing.Color{R: 33, G: 47, B: 113, A: 255},
		Grid:             drawing.Color{R: 74, G: 86, B: 126, A: 255},
		GridWidth:        2,
		DashedGrid:       drawing.Color{R: 255, G: 255, B: 255, A: 90},
		Dash:             []float64{4, 4},
		Fill:             drawing.Color{R: 100, G: 140, B: 255, A: 80},
		Pattern:          drawing.Color{R: 255, G: 255, B: 255, A: 40},
		PatternSpacing:   4,
		PriceLine:        drawing.Color{R: 255, G: 255, B: 255, A: 255},
		Volume:           drawing.Color{R: 255, G: 255, B: 255, A: 150},
		Text:             drawing.Color{R: 255, G: 255, B: 255, A: 255},
		MutedText:        drawing.Color{R: 190, G: 200, B: 230, A: 255},
	}
}
