package view

import (
	"bytes"
	"errors"
	"image/png"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"StockChart/internal/collector"
	"StockChart/internal/geometry"
	"StockChart/internal/metrics"
	"StockChart/internal/model"
	"StockChart/internal/painter"
)

type failingSource struct{}

func (failingSource) Name() string { return "failing" }
func (failingSource) FetchRecords() ([]model.TradeRecord, error) {
	return nil, errors.New("upstream down")
}

func fixedSource() *collector.MockSource {
	day := func(d int) time.Time { return time.Date(2016, 1, d, 0, 0, 0, 0, time.UTC) }
	return &collector.MockSource{Records: []model.TradeRecord{
		{Date: day(4), Close: 100, Volume: 10},
		{Date: day(5), Close: 110, Volume: 20},
		{Date: day(6), Close: 99, Volume: 30},
	}}
}

func newView(src collector.DataSource, opts ...Option) *View {
	return New("AAPL", src, geometry.NewEngine(geometry.DefaultOptions()), painter.New(painter.DefaultTheme()), opts...)
}

func TestView_Snapshot(t *testing.T) {
	v := newView(fixedSource(), WithMAPeriod(2))
	snap, err := v.Snapshot(model.Size{Width: 320, Height: 240})
	require.NoError(t, err)

	assert.Equal(t, "AAPL", snap.Symbol)
	assert.Equal(t, "AAPL  99.00", snap.Header.Title)
	assert.Equal(t, "-11.00 (-10.00%)  MA2 104.50  Jan 6, 2016", snap.Header.Subtitle)

	f := snap.Frame
	assert.Len(t, f.PricePath, 3)
	assert.Len(t, f.BelowClip, 7)
	assert.Len(t, f.VolumeBars, 3)
	// "110.00" is 42px wide, so the label column is 42px.
	assert.Equal(t, 278.0, f.Layout.Price.Width)
}

func TestView_SnapshotHidesMAWhenSeriesTooShort(t *testing.T) {
	v := newView(fixedSource(), WithMAPeriod(20))
	snap, err := v.Snapshot(model.Size{Width: 320, Height: 240})
	require.NoError(t, err)
	assert.NotContains(t, snap.Header.Subtitle, "MA")
}

func TestView_RenderPNG(t *testing.T) {
	rec := metrics.New()
	v := newView(&collector.MockSource{Price: 100, Days: 60, Start: time.Date(2016, 1, 4, 0, 0, 0, 0, time.UTC)},
		WithMetrics(rec))

	var buf bytes.Buffer
	require.NoError(t, v.RenderPNG(&buf, model.Size{Width: 400, Height: 300}))

	img, err := png.Decode(&buf)
	require.NoError(t, err)
	assert.Equal(t, 400, img.Bounds().Dx())
	assert.Equal(t, 300, img.Bounds().Dy())
	n, err := testutil.GatherAndCount(rec.Registry(), "stockchart_renders_total")
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}

func TestView_RenderPNG_SourceError(t *testing.T) {
	v := newView(failingSource{})
	err := v.RenderPNG(&bytes.Buffer{}, model.Size{Width: 400, Height: 300})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "upstream down")
}

func TestView_EmptySeries(t *testing.T) {
	v := newView(&collector.MockSource{Records: []model.TradeRecord{}})
	snap, err := v.Snapshot(model.Size{Width: 320, Height: 240})
	require.NoError(t, err)
	assert.Equal(t, "AAPL", snap.Header.Title)
	assert.Empty(t, snap.Frame.PricePath)
}
