package providers

import (
	"context"
	"log/slog"
	"time"

	"github.com/dnzxvy/cf-ai-nba-ai-agent/internal/domain/players"
	"github.com/dnzxvy/cf-ai-nba-ai-agent/internal/domain/stats"
	"github.com/dnzxvy/cf-ai-nba-ai-agent/internal/logging"
	"github.com/dnzxvy/cf-ai-nba-ai-agent/internal/metrics"
)

// instrumentedProvider wraps a DataProvider with metrics and logging. Each
// call reaches the inner provider exactly once; failures are classified but
// never retried.
type instrumentedProvider struct {
	inner        DataProvider
	logger       *slog.Logger
	metrics      *metrics.Recorder
	providerName string
	now          func() time.Time
}

// NewInstrumentedProvider wraps inner so every call is timed, counted and logged under providerName.
func NewInstrumentedProvider(inner DataProvider, logger *slog.Logger, recorder *metrics.Recorder, providerName string) DataProvider {
	if inner == nil {
		return nil
	}
	return &instrumentedProvider{
		inner:        inner,
		logger:       logger,
		metrics:      recorder,
		providerName: providerName,
		now:          time.Now,
	}
}

func (p *instrumentedProvider) PlayerIndex(ctx context.Context) ([]players.Player, error) {
	start := p.now()
	items, err := p.inner.PlayerIndex(ctx)
	err = p.observe(ctx, OpPlayerIndex, start, len(items), err)
	if err != nil {
		return nil, err
	}
	return items, nil
}

func (p *instrumentedProvider) PlayerGameLog(ctx context.Context, playerID int, season string, segment stats.SeasonSegment) ([]stats.GameLogEntry, error) {
	start := p.now()
	rows, err := p.inner.PlayerGameLog(ctx, playerID, season, segment)
	err = p.observe(ctx, OpGameLog, start, len(rows), err,
		slog.Int(logging.FieldPlayerID, playerID),
		slog.String(logging.FieldSeason, season),
	)
	if err != nil {
		return nil, err
	}
	return rows, nil
}

func (p *instrumentedProvider) PlayerCareerTotals(ctx context.Context, playerID int) ([]stats.SeasonTotals, error) {
	start := p.now()
	rows, err := p.inner.PlayerCareerTotals(ctx, playerID)
	err = p.observe(ctx, OpCareerTotals, start, len(rows), err,
		slog.Int(logging.FieldPlayerID, playerID),
	)
	if err != nil {
		return nil, err
	}
	return rows, nil
}

func (p *instrumentedProvider) observe(ctx context.Context, op string, start time.Time, count int, err error, attrs ...any) error {
	duration := p.now().Sub(start)
	err = Classify(p.providerName, op, KindTransport, err)
	p.metrics.RecordProviderAttempt(p.providerName, op, duration, err)

	logger := logging.FromContext(ctx, p.logger)
	attrs = append(attrs,
		slog.String(logging.FieldOperation, op),
		slog.Int64(logging.FieldDurationMS, duration.Milliseconds()),
	)
	if err != nil {
		if IsRateLimited(err) {
			p.metrics.RecordRateLimit(p.providerName)
		}
		if pErr, ok := AsProviderError(err); ok {
			attrs = append(attrs, slog.String("kind", string(pErr.Kind)))
		}
		logWithProvider(ctx, logger, slog.LevelWarn, p.providerName, "provider call failed", append(attrs, "error", err)...)
		return err
	}
	logWithProvider(ctx, logger, slog.LevelDebug, p.providerName, "provider call succeeded", append(attrs, slog.Int(logging.FieldCount, count))...)
	return nil
}
