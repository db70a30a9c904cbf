package cli

import (
	"fmt"
	"os"

	"StockChart/internal/collector"
	"StockChart/internal/config"
	"StockChart/internal/geometry"
	"StockChart/internal/logger"
	"StockChart/internal/metrics"
	"StockChart/internal/model"
	"StockChart/internal/painter"
	"StockChart/internal/view"
)

// app is everything a command needs, built from one loaded config.
type app struct {
	cfg     *config.Config
	log     *logger.Logger
	metrics *metrics.Recorder
	view    *view.View
}

func loadConfig(path string) (*config.Config, error) {
	cfg, err := config.Load(path)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func newApp(cfg *config.Config, debug bool) (*app, error) {
	logCfg := logger.Config{Level: cfg.Log.Level, Format: cfg.Log.Format, Output: cfg.Log.Output}
	if debug {
		logCfg.Level = "debug"
	}
	log, err := logger.New(logCfg)
	if err != nil {
		return nil, fmt.Errorf("init logger: %w", err)
	}

	src, err := collector.NewSource(cfg)
	if err != nil {
		_ = log.Close()
		return nil, err
	}
	log.Info("data source ready", logger.String("source", src.Name()), logger.String("symbol", cfg.Chart.Symbol))

	var rec *metrics.Recorder
	if !cfg.Metrics.Disabled {
		rec = metrics.New()
	}

	engine := geometry.NewEngine(geometry.Options{
		StrokeWidth:     cfg.Chart.StrokeWidth,
		HorizontalLines: cfg.Chart.HorizontalLines,
	})
	v := view.New(cfg.Chart.Symbol, src, engine, painter.New(painter.DefaultTheme()),
		view.WithLogger(log),
		view.WithMetrics(rec),
		view.WithMAPeriod(cfg.Chart.MAPeriod),
	)
	return &app{cfg: cfg, log: log, metrics: rec, view: v}, nil
}

// close releases the log file, if any.
func (a *app) close() {
	if err := a.log.Close(); err != nil {
		fmt.Fprintf(os.Stderr, "close log: %v\n", err)
	}
}

func (a *app) size() model.Size {
	return model.Size{Width: float64(a.cfg.Chart.Width), Height: float64(a.cfg.Chart.Height)}
}
