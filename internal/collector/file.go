package collector

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"StockChart/internal/model"
)

// FileSource reads a local JSON or CSV export of daily bars.
type FileSource struct {
	Path string
}

// NewFileSource creates a FileSource for path; the format follows the extension.
func NewFileSource(path string) *FileSource {
	return &FileSource{Path: path}
}

func (f *FileSource) Name() string { return "file" }

// fileRecord is the expected JSON shape of one bar.
type fileRecord struct {
	Date   string  `json:"date"`
	Open   float64 `json:"open"`
	High   float64 `json:"high"`
	Low    float64 `json:"low"`
	Close  float64 `json:"close"`
	Volume float64 `json:"volume"`
}

func (f *FileSource) FetchRecords() ([]model.TradeRecord, error) {
	file, err := os.Open(f.Path)
	if err != nil {
		return nil, fmt.Errorf("open records: %w", err)
	}
	defer file.Close()

	var records []model.TradeRecord
	switch strings.ToLower(filepath.Ext(f.Path)) {
	case ".json":
		records, err = decodeJSON(file)
	case ".csv":
		records, err = decodeCSV(file)
	default:
		return nil, fmt.Errorf("%s: %w", f.Path, ErrUnsupportedFormat)
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", f.Path, err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("%s: %w", f.Path, ErrNoRecords)
	}

	// Ensure chronological order, one record per day
	model.SortRecords(records)
	return model.DedupeRecords(records), nil
}

func decodeJSON(r io.Reader) ([]model.TradeRecord, error) {
	var rows []fileRecord
	if err := json.NewDecoder(r).Decode(&rows); err != nil {
		return nil, fmt.Errorf("decode json: %w", err)
	}
	records := make([]model.TradeRecord, 0, len(rows))
	for i, row := range rows {
		d, err := parseDate(row.Date)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i, err)
		}
		rec := model.TradeRecord{Date: d, Open: row.Open, High: row.High, Low: row.Low, Close: row.Close, Volume: row.Volume}
		if err := checkRecord(rec); err != nil {
			return nil, fmt.Errorf("row %d: %w", i, err)
		}
		records = append(records, rec)
	}
	return records, nil
}

var csvColumns = []string{"date", "open", "high", "low", "close", "volume"}

func decodeCSV(r io.Reader) ([]model.TradeRecord, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("read csv header: %w", err)
	}
	index := make(map[string]int, len(header))
	for i, h := range header {
		index[strings.ToLower(strings.TrimSpace(h))] = i
	}
	cols := make([]int, len(csvColumns))
	for i, name := range csvColumns {
		c, ok := index[name]
		if !ok {
			return nil, fmt.Errorf("csv header missing %q column", name)
		}
		cols[i] = c
	}

	var records []model.TradeRecord
	for line := 2; ; line++ {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read csv: %w", err)
		}
		d, err := parseDate(row[cols[0]])
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		var nums [5]float64
		for j := range nums {
			v, err := strconv.ParseFloat(strings.TrimSpace(row[cols[j+1]]), 64)
			if err != nil {
				return nil, fmt.Errorf("line %d %s: %w", line, csvColumns[j+1], err)
			}
			nums[j] = v
		}
		rec := model.TradeRecord{Date: d, Open: nums[0], High: nums[1], Low: nums[2], Close: nums[3], Volume: nums[4]}
		if err := checkRecord(rec); err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		records = append(records, rec)
	}
	return records, nil
}

func parseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if t, err := time.Parse("2006-01-02", s); err == nil {
		return t, nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse date %q: %w", s, err)
	}
	return t, nil
}

// checkRecord rejects values that are negative, NaN or infinite.
func checkRecord(r model.TradeRecord) error {
	fields := [...]struct {
		name  string
		value float64
	}{
		{"open", r.Open},
		{"high", r.High},
		{"low", r.Low},
		{"close", r.Close},
		{"volume", r.Volume},
	}
	day := r.Date.Format("2006-01-02")
	for _, f := range fields {
		if math.IsNaN(f.value) || math.IsInf(f.value, 0) {
			return fmt.Errorf("%s %s is not finite: %w", day, f.name, ErrInvalidRecord)
		}
		if f.value < 0 {
			return fmt.Errorf("%s %s is negative: %w", day, f.name, ErrInvalidRecord)
		}
	}
	return nil
}
