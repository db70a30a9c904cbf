package collector

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"StockChart/internal/model"
)

func TestMockSource_GeneratesWeekdays(t *testing.T) {
	m := &MockSource{Price: 100, Days: 30, Start: time.Date(2016, 1, 1, 0, 0, 0, 0, time.UTC)}
	records, err := m.FetchRecords()
	require.NoError(t, err)

	require.Len(t, records, 30)
	for i, r := range records {
		wd := r.Date.Weekday()
		assert.NotEqual(t, time.Saturday, wd)
		assert.NotEqual(t, time.Sunday, wd)
		assert.Positive(t, r.Close)
		assert.Positive(t, r.Volume)
		if i > 0 {
			assert.True(t, records[i-1].Before(r))
		}
	}
}

func TestMockSource_Deterministic(t *testing.T) {
	m := &MockSource{Price: 50, Days: 10, Start: time.Date(2016, 3, 1, 0, 0, 0, 0, time.UTC)}
	a, _ := m.FetchRecords()
	b, _ := m.FetchRecords()
	assert.Equal(t, a, b)
}

func TestMockSource_FixedRecordsAreCopied(t *testing.T) {
	fixed := []model.TradeRecord{{Date: time.Date(2016, 1, 4, 0, 0, 0, 0, time.UTC), Close: 10}}
	m := &MockSource{Records: fixed}

	got, err := m.FetchRecords()
	require.NoError(t, err)
	got[0].Close = 99
	assert.Equal(t, 10.0, fixed[0].Close)
}
