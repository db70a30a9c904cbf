package scheduler

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/robfig/cron/v3"

	"StockChart/internal/logger"
	"StockChart/internal/model"
)

// Renderer paints one chart as PNG.
type Renderer interface {
	RenderPNG(w io.Writer, size model.Size) error
}

// Scheduler re-renders the chart to a file on a cron schedule.
type Scheduler struct {
	Cron   *cron.Cron
	View   Renderer
	Output string
	Size   model.Size

	log *logger.Logger

	mu      sync.Mutex
	lastRun time.Time
	lastErr error
}

// NewScheduler creates a new Scheduler. Overlapping runs are skipped.
func NewScheduler(view Renderer, output string, size model.Size, log *logger.Logger) *Scheduler {
	cl := cronLogger{log: log}
	return &Scheduler{
		Cron: cron.New(
			cron.WithSeconds(),
			cron.WithLogger(cl),
			cron.WithChain(cron.Recover(cl), cron.SkipIfStillRunning(cl)),
		),
		View:   view,
		Output: output,
		Size:   size,
		log:    log,
	}
}

// Register adds the render job.
func (s *Scheduler) Register(renderCron string) error {
	if _, err := s.Cron.AddFunc(renderCron, s.renderTask); err != nil {
		return fmt.Errorf("register render task: %w", err)
	}
	return nil
}

// Start starts the cron scheduler.
func (s *Scheduler) Start() {
	s.Cron.Start()
	s.log.Info("scheduler started", logger.String("output", s.Output))
}

// Stop stops the cron scheduler and waits for a running render to finish.
func (s *Scheduler) Stop() {
	<-s.Cron.Stop().Done()
	s.log.Info("scheduler stopped")
}

// RunNow renders immediately (for manual trigger / run on start).
func (s *Scheduler) RunNow() error {
	err := s.render()

	s.mu.Lock()
	s.lastRun = time.Now()
	s.lastErr = err
	s.mu.Unlock()
	return err
}

// LastRun reports when the last render finished and how it ended.
func (s *Scheduler) LastRun() (time.Time, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastRun, s.lastErr
}

func (s *Scheduler) renderTask() {
	if err := s.RunNow(); err != nil {
		s.log.Error("scheduled render", logger.Err(err))
		return
	}
	s.log.Info("chart written", logger.String("path", s.Output))
}

// render writes to a temp file next to Output and renames it into place, so
// readers never see a half-written image.
func (s *Scheduler) render() error {
	dir := filepath.Dir(s.Output)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}
	tmp, err := os.CreateTemp(dir, ".chart-*.png")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if err := s.View.RenderPNG(tmp, s.Size); err != nil {
		tmp.Close()
		return err
	}
	// CreateTemp opens with 0600; the chart is meant to be served.
	if err := tmp.Chmod(0o644); err != nil {
		tmp.Close()
		return fmt.Errorf("chmod temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close temp file: %w", err)
	}
	if err := os.Rename(tmp.Name(), s.Output); err != nil {
		return fmt.Errorf("move chart into place: %w", err)
	}
	return nil
}

// cronLogger routes cron's own messages into the application logger.
type cronLogger struct {
	log *logger.Logger
}

func (c cronLogger) Info(msg string, keysAndValues ...interface{}) {
	c.log.Debug("cron: "+msg, logger.String("details", fmt.Sprint(keysAndValues...)))
}

func (c cronLogger) Error(err error, msg string, keysAndValues ...interface{}) {
	c.log.Error("cron: "+msg, logger.Err(err), logger.String("details", fmt.Sprint(keysAndValues...)))
}
