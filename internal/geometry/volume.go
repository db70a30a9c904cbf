package geometry

import (
	"math"

	"StockChart/internal/model"
)

// ComputeVolumeBars returns one vertical segment per volume, rising from the
// bottom of region. Bars share the rounded day spacing of the gridlines. A
// constant series yields zero-height bars.
func ComputeVolumeBars(region model.Rect, volumes []float64, maxVolume, minVolume float64) []model.Segment {
	n := len(volumes)
	if n == 0 {
		return nil
	}
	spacing := DayLineSpacing(region.Width, n)
	volumeRange := maxVolume - minVolume
	bottom := region.MaxY()

	scale := 0.0
	if volumeRange != 0 {
		scale = region.Height / volumeRange
	}

	bars := make([]model.Segment, n)
	for i, v := range volumes {
		x := math.Min(region.X+spacing*float64(i)+spacing/2, region.MaxX())
		bars[i] = model.Segment{
			From: model.Point{X: x, Y: bottom},
			To:   model.Point{X: x, Y: bottom - (v-minVolume)*scale},
		}
	}
	return bars
}
