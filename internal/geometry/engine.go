package geometry

import "StockChart/internal/model"

// Options tune the engine. They are fixed for the engine's lifetime.
type Options struct {
	StrokeWidth     float64
	HorizontalLines int
}

// DefaultOptions matches the stock view's look: a 2pt price line and four dashed gridlines.
func DefaultOptions() Options {
	return Options{StrokeWidth: 2, HorizontalLines: 4}
}

// Frame is every primitive needed to paint one chart.
type Frame struct {
	Layout         Layout              `json:"layout"`
	Summary        model.Summary       `json:"summary"`
	StrokeWidth    float64             `json:"stroke_width"`
	Buckets        []model.MonthBucket `json:"buckets"`
	VerticalGrid   []float64           `json:"vertical_grid"`
	HorizontalGrid []float64           `json:"horizontal_grid"`
	PricePath      []model.Point       `json:"price_path"`
	BelowClip      model.Polygon       `json:"below_clip"`
	AboveClip      model.Polygon       `json:"above_clip"`
	VolumeBars     []model.Segment     `json:"volume_bars"`
	MonthLabels    []model.Label       `json:"month_labels"`
	PriceLabels    []PriceLabel        `json:"price_labels"`
}

// Engine computes Frames. It holds no per-render state, so one Engine may be
// shared by concurrent callers.
type Engine struct {
	opts Options
}

// NewEngine creates an Engine with the given options.
func NewEngine(opts Options) *Engine {
	if opts.StrokeWidth < 0 {
		opts.StrokeWidth = 0
	}
	return &Engine{opts: opts}
}

// Options returns the engine's options.
func (e *Engine) Options() Options { return e.opts }

// Compute lays out records on a surface of the given size. The summary must
// come from the same records; labelWidth is the measured width of the
// formatted max close and is clamped before use.
func (e *Engine) Compute(records []model.TradeRecord, summary model.Summary, surface model.Size, labelWidth float64) *Frame {
	layout := ComputeLayout(surface, labelWidth)
	buckets := ComputeMonthBuckets(records)
	vertical := ComputeVerticalGridPositions(layout.Price, len(records), buckets)
	path := ComputeClosingPricePath(layout.Price, model.Closes(records), summary.MaxClose, summary.MinClose, e.opts.StrokeWidth)

	return &Frame{
		Layout:         layout,
		Summary:        summary,
		StrokeWidth:    e.opts.StrokeWidth,
		Buckets:        buckets,
		VerticalGrid:   vertical,
		HorizontalGrid: ComputeHorizontalGridPositions(layout.Price, e.opts.HorizontalLines),
		PricePath:      path,
		BelowClip:      DeriveClipRegion(path, layout.Price, Below),
		AboveClip:      DeriveClipRegion(path, layout.Price, Above),
		VolumeBars:     ComputeVolumeBars(layout.Volume, model.Volumes(records), summary.MaxVolume, summary.MinVolume),
		MonthLabels:    ComputeMonthLabels(layout, vertical, buckets),
		PriceLabels:    ComputePriceLabels(layout, summary, e.opts.StrokeWidth),
	}
}
