package model

import (
	"sort"
	"time"
)

// TradeRecord represents a single trading day.
type TradeRecord struct {
	Date   time.Time `json:"date"`
	Open   float64   `json:"open"`
	High   float64   `json:"high"`
	Low    float64   `json:"low"`
	Close  float64   `json:"close"`
	Volume float64   `json:"volume"`
}

// Day returns the record's calendar day at midnight UTC.
func (r TradeRecord) Day() time.Time {
	y, m, d := r.Date.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// Equal reports whether both records fall on the same calendar day.
// Prices are not compared.
func (r TradeRecord) Equal(o TradeRecord) bool {
	return r.Day().Equal(o.Day())
}

// Before reports whether r trades on an earlier calendar day than o.
func (r TradeRecord) Before(o TradeRecord) bool {
	return r.Day().Before(o.Day())
}

// SortRecords orders records chronologically in place.
func SortRecords(records []TradeRecord) {
	sort.SliceStable(records, func(i, j int) bool { return records[i].Before(records[j]) })
}

// DedupeRecords collapses same-day records of a sorted slice, keeping the last one seen.
func DedupeRecords(records []TradeRecord) []TradeRecord {
	if len(records) < 2 {
		return records
	}
	out := make([]TradeRecord, 0, len(records))
	for _, r := range records {
		if n := len(out); n > 0 && out[n-1].Equal(r) {
			out[n-1] = r
			continue
		}
		out = append(out, r)
	}
	return out
}

// Closes extracts closing prices in record order.
func Closes(records []TradeRecord) []float64 {
	closes := make([]float64, len(records))
	for i, r := range records {
		closes[i] = r.Close
	}
	return closes
}

// Volumes extracts traded volumes in record order.
func Volumes(records []TradeRecord) []float64 {
	volumes := make([]float64, len(records))
	for i, r := range records {
		volumes[i] = r.Volume
	}
	return volumes
}

// Summary is the result of the single statistics pass over a record series.
type Summary struct {
	Count     int       `json:"count"`
	MaxClose  float64   `json:"max_close"`
	MinClose  float64   `json:"min_close"`
	MaxVolume float64   `json:"max_volume"`
	MinVolume float64   `json:"min_volume"`
	FirstDate time.Time `json:"first_date"`
	LastDate  time.Time `json:"last_date"`
	LastClose float64   `json:"last_close"`
	PrevClose float64   `json:"prev_close"`
}
