package collector

import (
	"errors"
	"fmt"

	"StockChart/internal/config"
	"StockChart/internal/model"
)

var (
	// ErrUnsupportedFormat is returned for files that are neither JSON nor CSV.
	ErrUnsupportedFormat = errors.New("unsupported record file format")
	// ErrNoRecords is returned when a source yields nothing to chart.
	ErrNoRecords = errors.New("no trade records")
	// ErrInvalidRecord is returned for a bar with a negative or non-finite value.
	ErrInvalidRecord = errors.New("invalid trade record")
)

// DataSource supplies the daily trade series for one instrument, sorted by date.
type DataSource interface {
	FetchRecords() ([]model.TradeRecord, error)
	Name() string
}

// NewSource builds the DataSource selected by cfg.Source.Type.
func NewSource(cfg *config.Config) (DataSource, error) {
	switch cfg.Source.Type {
	case "file":
		return NewFileSource(cfg.Source.Path), nil
	case "mock":
		start, err := cfg.MockStartDate()
		if err != nil {
			return nil, err
		}
		return &MockSource{Price: cfg.Source.MockPrice, Days: cfg.Source.MockDays, Start: start}, nil
	default:
		return nil, fmt.Errorf("unknown source type %q", cfg.Source.Type)
	}
}
