package calculator

import "StockChart/internal/model"

// MovingAverage returns the simple moving average of the closes of the last
// period records. ok is false when period is not positive or the series is
// shorter than period.
func MovingAverage(records []model.TradeRecord, period int) (avg float64, ok bool) {
	n := len(records)
	if period <= 0 || n < period {
		return 0, false
	}
	var sum float64
	for _, r := range records[n-period:] {
		sum += r.Close
	}
	return sum / float64(period), true
}
