package geometry

import "StockChart/internal/model"

// LabelPadding separates price labels from the right edge of the price region.
const LabelPadding = 4.0

// PriceLabel anchors a price value on the right-hand axis.
type PriceLabel struct {
	Value  float64     `json:"value"`
	Anchor model.Point `json:"anchor"`
}

// ComputeMonthLabels centers a short month name under each bucket's span,
// vertically centered in the text strip below the volume region.
func ComputeMonthLabels(layout Layout, positions []float64, buckets []model.MonthBucket) []model.Label {
	if len(positions) == 0 || len(positions) != len(buckets) {
		return nil
	}
	y := layout.Volume.MaxY() + TextStripHeight/2
	labels := make([]model.Label, len(buckets))
	start := 0.0
	for i, b := range buckets {
		end := positions[i]
		labels[i] = model.Label{
			Text:   b.Key.Month.String()[:3],
			Anchor: model.Point{X: layout.Price.X + (start+end)/2, Y: y},
		}
		start = end
	}
	return labels
}

// ComputePriceLabels places the max and min close labels level with the top
// and bottom of the inset price area. An empty summary yields no labels.
func ComputePriceLabels(layout Layout, s model.Summary, strokeWidth float64) []PriceLabel {
	if s.Count == 0 {
		return nil
	}
	x := layout.Price.MaxX() + LabelPadding
	top := layout.Price.MinY() + strokeWidth
	bottom := layout.Price.MaxY() - strokeWidth
	if s.MaxClose == s.MinClose {
		mid := layout.Price.MinY() + layout.Price.Height/2
		return []PriceLabel{{Value: s.MaxClose, Anchor: model.Point{X: x, Y: mid}}}
	}
	return []PriceLabel{
		{Value: s.MaxClose, Anchor: model.Point{X: x, Y: top}},
		{Value: s.MinClose, Anchor: model.Point{X: x, Y: bottom}},
	}
}
