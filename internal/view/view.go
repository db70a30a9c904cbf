// Package view ties a data source to the geometry engine and the painter.
package view

import (
	"fmt"
	"io"
	"strings"
	"time"

	"StockChart/internal/calculator"
	"StockChart/internal/collector"
	"StockChart/internal/geometry"
	"StockChart/internal/logger"
	"StockChart/internal/metrics"
	"StockChart/internal/model"
	"StockChart/internal/painter"
)

// Snapshot is one computed frame plus the header drawn above it.
type Snapshot struct {
	Symbol string          `json:"symbol"`
	Header painter.Header  `json:"header"`
	Frame  *geometry.Frame `json:"frame"`
}

// View renders the chart of one symbol. Each call refetches the series, so
// concurrent callers never share per-render state.
type View struct {
	symbol   string
	source   collector.DataSource
	engine   *geometry.Engine
	painter  *painter.Painter
	maPeriod int
	log      *logger.Logger
	metrics  *metrics.Recorder
}

// Option configures a View.
type Option func(*View)

// WithLogger sets the logger. The default discards everything.
func WithLogger(l *logger.Logger) Option {
	return func(v *View) { v.log = l }
}

// WithMetrics sets the metrics recorder.
func WithMetrics(m *metrics.Recorder) Option {
	return func(v *View) { v.metrics = m }
}

// WithMAPeriod shows a simple moving average of the given period in the header. Zero hides it.
func WithMAPeriod(period int) Option {
	return func(v *View) { v.maPeriod = period }
}

// New creates a View.
func New(symbol string, source collector.DataSource, engine *geometry.Engine, p *painter.Painter, opts ...Option) *View {
	v := &View{
		symbol:  symbol,
		source:  source,
		engine:  engine,
		painter: p,
		log:     logger.Nop(),
	}
	for _, opt := range opts {
		opt(v)
	}
	v.log = v.log.With(logger.String("symbol", symbol), logger.String("source", source.Name()))
	return v
}

// Symbol returns the instrument this view charts.
func (v *View) Symbol() string { return v.symbol }

// Snapshot fetches the series and computes its geometry for a surface of the given size.
func (v *View) Snapshot(size model.Size) (*Snapshot, error) {
	records, err := v.source.FetchRecords()
	if err != nil {
		return nil, fmt.Errorf("fetch records from %s: %w", v.source.Name(), err)
	}
	if len(records) == 0 {
		v.log.Warn("empty series, drawing blank chart")
	}

	summary := calculator.Summarize(records)
	labelWidth := v.painter.MeasureText(painter.FormatPrice(summary.MaxClose))
	frame := v.engine.Compute(records, summary, size, labelWidth)

	v.metrics.RecordSeries(v.symbol, summary.Count, summary.LastClose)
	return &Snapshot{
		Symbol: v.symbol,
		Header: v.header(records, summary),
		Frame:  frame,
	}, nil
}

// RenderPNG paints the chart for a surface of the given size and writes it to w.
func (v *View) RenderPNG(w io.Writer, size model.Size) (err error) {
	start := time.Now()
	defer func() {
		d := time.Since(start)
		v.metrics.RecordRender(v.source.Name(), d, err)
		if err != nil {
			v.log.Error("render failed", logger.Err(err))
			return
		}
		v.log.Debug("rendered chart", logger.Duration("took", d),
			logger.Float("width", size.Width), logger.Float("height", size.Height))
	}()

	snap, err := v.Snapshot(size)
	if err != nil {
		return err
	}
	return v.painter.WritePNG(w, snap.Frame, snap.Header)
}

func (v *View) header(records []model.TradeRecord, s model.Summary) painter.Header {
	if s.Count == 0 {
		return painter.Header{Title: v.symbol}
	}
	h := painter.Header{
		Title: fmt.Sprintf("%s  %s", v.symbol, painter.FormatPrice(s.LastClose)),
	}

	abs, pct := calculator.Change(s)
	parts := []string{fmt.Sprintf("%s (%s%%)", signed(abs), signed(pct))}
	if v.maPeriod > 0 {
		if ma, ok := calculator.MovingAverage(records, v.maPeriod); ok {
			parts = append(parts, fmt.Sprintf("MA%d %s", v.maPeriod, painter.FormatPrice(ma)))
		}
	}
	parts = append(parts, s.LastDate.Format("Jan 2, 2006"))
	h.Subtitle = strings.Join(parts, "  ")
	return h
}

func signed(v float64) string {
	s := painter.FormatPrice(v)
	if v >= 0 {
		return "+" + s
	}
	return s
}
