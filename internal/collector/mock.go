package collector

import (
	"math"
	"time"

	"StockChart/internal/model"
)

// MockSource returns deterministic generated trading days for development and testing.
type MockSource struct {
	Price   float64
	Days    int
	Start   time.Time
	Records []model.TradeRecord
}

func (m *MockSource) Name() string { return "mock" }

func (m *MockSource) FetchRecords() ([]model.TradeRecord, error) {
	if m.Records != nil {
		out := make([]model.TradeRecord, len(m.Records))
		copy(out, m.Records)
		return out, nil
	}
	return generateMockRecords(m.Price, m.Days, m.Start), nil
}

// generateMockRecords walks weekdays from start, drifting the close along a slow sine wave.
func generateMockRecords(basePrice float64, count int, start time.Time) []model.TradeRecord {
	records := make([]model.TradeRecord, 0, count)
	d := time.Date(start.Year(), start.Month(), start.Day(), 0, 0, 0, 0, time.UTC)
	for i := 0; len(records) < count; d = d.AddDate(0, 0, 1) {
		if wd := d.Weekday(); wd == time.Saturday || wd == time.Sunday {
			continue
		}
		p := basePrice * (1 + 0.08*math.Sin(float64(i)/9) + float64(i-count/2)*0.001)
		records = append(records, model.TradeRecord{
			Date:   d,
			Open:   p * 0.999,
			High:   p * 1.005,
			Low:    p * 0.995,
			Close:  p,
			Volume: 1000000 * (1.5 + math.Cos(float64(i)/4)),
		})
		i++
	}
	return records
}
