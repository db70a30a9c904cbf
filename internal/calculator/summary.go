package calculator

import (
	"math"

	"StockChart/internal/model"
)

// Summarize scans the records once and returns the aggregates every layout call needs.
// An empty series yields a zero Summary.
func Summarize(records []model.TradeRecord) model.Summary {
	n := len(records)
	if n == 0 {
		return model.Summary{}
	}

	s := model.Summary{
		Count:     n,
		MaxClose:  math.Inf(-1),
		MinClose:  math.Inf(1),
		MaxVolume: math.Inf(-1),
		MinVolume: math.Inf(1),
		FirstDate: records[0].Day(),
		LastDate:  records[n-1].Day(),
		LastClose: records[n-1].Close,
	}
	for _, r := range records {
		s.MaxClose = math.Max(s.MaxClose, r.Close)
		s.MinClose = math.Min(s.MinClose, r.Close)
		s.MaxVolume = math.Max(s.MaxVolume, r.Volume)
		s.MinVolume = math.Min(s.MinVolume, r.Volume)
	}
	if n > 1 {
		s.PrevClose = records[n-2].Close
	} else {
		s.PrevClose = s.LastClose
	}
	return s
}

// Change returns the absolute and relative move from the previous close to the last one.
func Change(s model.Summary) (abs, pct float64) {
	abs = s.LastClose - s.PrevClose
	if s.PrevClose == 0 {
		return abs, 0
	}
	return abs, abs / s.PrevClose * 100
}
