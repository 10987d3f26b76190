package playerindex

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/dnzxvy/cf-ai-nba-ai-agent/internal/logging"
	"github.com/dnzxvy/cf-ai-nba-ai-agent/internal/metrics"
	"github.com/dnzxvy/cf-ai-nba-ai-agent/internal/providers"
)

const defaultRetryInterval = 30 * time.Second

// Loader fills an Index from a source, retrying on an interval until the
// first successful load. It never refreshes a loaded index.
type Loader struct {
	index      *Index
	source     providers.IndexProvider
	sourceName string
	logger     *slog.Logger
	metrics    *metrics.Recorder
	interval   time.Duration

	ticker   *time.Ticker
	done     chan struct{}
	loaded   chan struct{}
	stopOnce sync.Once
	loadOnce sync.Once
	startMu  sync.Mutex
	started  bool

	statusMu sync.RWMutex
	status   Status
}

// Status describes the loader's progress.
type Status struct {
	Attempts    int
	LastError   string
	LastAttempt time.Time
	LoadedAt    time.Time
	Players     int
}

// IsReady reports whether the index has been loaded.
func (s Status) IsReady() bool {
	return !s.LoadedAt.IsZero()
}

// NewLoader constructs a Loader. sourceName labels logs and metrics.
func NewLoader(index *Index, source providers.IndexProvider, sourceName string, logger *slog.Logger, recorder *metrics.Recorder, interval time.Duration) *Loader {
	if interval <= 0 {
		interval = defaultRetryInterval
	}
	return &Loader{
		index:      index,
		source:     source,
		sourceName: sourceName,
		logger:     logger,
		metrics:    recorder,
		interval:   interval,
		done:       make(chan struct{}),
		loaded:     make(chan struct{}),
	}
}

// Start loads the index in the background until it succeeds, the context is
// cancelled or Stop is called.
func (l *Loader) Start(ctx context.Context) {
	l.startMu.Lock()
	if l.started {
		l.startMu.Unlock()
		return
	}
	l.started = true
	l.startMu.Unlock()

	l.ticker = time.NewTicker(l.interval)

	go func() {
		defer l.stopTicker()
		if l.attempt(ctx) {
			return
		}
		for {
			select {
			case <-ctx.Done():
				logging.Info(l.logger, "player index loader stopped")
				return
			case <-l.done:
				logging.Info(l.logger, "player index loader stopped")
				return
			case <-l.ticker.C:
				if l.attempt(ctx) {
					return
				}
			}
		}
	}()
}

// Stop halts any pending retries.
func (l *Loader) Stop(ctx context.Context) error {
	_ = ctx
	l.stopOnce.Do(func() {
		close(l.done)
	})
	return nil
}

// Loaded is closed once the index has been populated.
func (l *Loader) Loaded() <-chan struct{} {
	return l.loaded
}

// Status returns a snapshot of the loader's progress.
func (l *Loader) Status() Status {
	l.statusMu.RLock()
	defer l.statusMu.RUnlock()
	return l.status
}

// attempt makes one load and reports whether the index is loaded.
func (l *Loader) attempt(ctx context.Context) bool {
	start := time.Now()
	l.recordAttempt(start)

	list, err := l.source.PlayerIndex(ctx)
	duration := time.Since(start)
	l.metrics.RecordIndexLoad(l.sourceName, duration, err)
	if err != nil {
		logging.Error(l.logger, "player index load failed", err,
			slog.String(logging.FieldSource, l.sourceName),
			slog.Int64(logging.FieldDurationMS, duration.Milliseconds()),
			slog.Int64("retry_in_ms", l.interval.Milliseconds()),
		)
		l.recordFailure(err)
		return false
	}

	l.index.Set(list)
	l.recordSuccess(start, l.index.Len())
	l.loadOnce.Do(func() { close(l.loaded) })
	logging.Info(l.logger, "player index loaded",
		slog.String(logging.FieldSource, l.sourceName),
		slog.Int(logging.FieldCount, len(list)),
		slog.Int64(logging.FieldDurationMS, duration.Milliseconds()),
	)
	return true
}

func (l *Loader) stopTicker() {
	if l.ticker != nil {
		l.ticker.Stop()
	}
}

func (l *Loader) recordAttempt(at time.Time) {
	l.statusMu.Lock()
	defer l.statusMu.Unlock()
	l.status.Attempts++
	l.status.LastAttempt = at
}

func (l *Loader) recordSuccess(at time.Time, count int) {
	l.statusMu.Lock()
	defer l.statusMu.Unlock()
	l.status.LastError = ""
	l.status.LoadedAt = at
	l.status.Players = count
}

func (l *Loader) recordFailure(err error) {
	l.statusMu.Lock()
	defer l.statusMu.Unlock()
	if err != nil {
		l.status.LastError = err.Error()
	}
}
