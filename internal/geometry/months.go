package geometry

import "StockChart/internal/model"

// ComputeMonthBuckets groups records by calendar month in first-occurrence order.
func ComputeMonthBuckets(records []model.TradeRecord) []model.MonthBucket {
	if len(records) == 0 {
		return nil
	}
	index := make(map[model.MonthKey]int)
	var buckets []model.MonthBucket
	for _, r := range records {
		key := model.MonthKeyOf(r.Date)
		i, ok := index[key]
		if !ok {
			i = len(buckets)
			index[key] = i
			buckets = append(buckets, model.MonthBucket{Key: key})
		}
		buckets[i].Count++
	}
	return buckets
}
