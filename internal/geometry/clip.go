package geometry

import (
	"fmt"

	"StockChart/internal/model"
)

// Side selects which half of the region a clip polygon covers.
type Side int

const (
	// Below covers everything under the price line.
	Below Side = iota
	// Above covers everything over the price line.
	Above
)

func (s Side) String() string {
	switch s {
	case Below:
		return "below"
	case Above:
		return "above"
	default:
		return fmt.Sprintf("Side(%d)", int(s))
	}
}

// DeriveClipRegion closes path against the bottom (Below) or top (Above) edge
// of region. The result has len(path)+4 vertices and ends on path[0].
func DeriveClipRegion(path []model.Point, region model.Rect, side Side) model.Polygon {
	if len(path) == 0 {
		return nil
	}
	edge := region.MaxY()
	if side == Above {
		edge = region.MinY()
	}
	initial := path[0]

	poly := make(model.Polygon, 0, len(path)+4)
	poly = append(poly, path...)
	poly = append(poly,
		model.Point{X: region.MaxX(), Y: edge},
		model.Point{X: region.MinX(), Y: edge},
		model.Point{X: region.MinX(), Y: initial.Y},
		initial,
	)
	return poly
}
