package poller

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"scoreboard-service/internal/logging"
	"scoreboard-service/internal/scoreboard"
)

const defaultInterval = 30 * time.Second

// Refresher performs one joint load of games, teams, and leagues.
type Refresher interface {
	Load(ctx context.Context) error
}

// ScoreboardSource produces the current partitioned scoreboard.
type ScoreboardSource interface {
	Scoreboard(f scoreboard.Filter) scoreboard.Scoreboard
}

// Broadcaster pushes a refreshed scoreboard to live subscribers.
type Broadcaster interface {
	BroadcastScoreboard(sb scoreboard.Scoreboard)
}

// Poller refreshes the in-memory data on an interval and notifies the
// broadcaster after each successful refresh.
type Poller struct {
	refresher   Refresher
	source      ScoreboardSource
	broadcaster Broadcaster
	logger      *slog.Logger
	interval    time.Duration

	ticker   *time.Ticker
	done     chan struct{}
	stopOnce sync.Once
	startMu  sync.Mutex
	started  bool

	statusMu sync.RWMutex
	status   Status
}

// Status describes the recent health of the poller loop.
type Status struct {
	ConsecutiveFailures int
	LastError           string
	LastAttempt         time.Time
	LastSuccess         time.Time
}

// IsReady reports whether the poller has had a recent success and is not failing repeatedly.
func (s Status) IsReady() bool {
	if s.LastSuccess.IsZero() {
		return false
	}
	return s.ConsecutiveFailures < 3
}

// New constructs a Poller with sane defaults.
func New(refresher Refresher, source ScoreboardSource, broadcaster Broadcaster, logger *slog.Logger, interval time.Duration) *Poller {
	if interval <= 0 {
		interval = defaultInterval
	}
	return &Poller{
		refresher:   refresher,
		source:      source,
		broadcaster: broadcaster,
		logger:      logger,
		interval:    interval,
		done:        make(chan struct{}),
	}
}

// Start begins polling until the context is cancelled or Stop is called.
func (p *Poller) Start(ctx context.Context) {
	p.startMu.Lock()
	if p.started {
		p.startMu.Unlock()
		return
	}
	p.started = true
	p.startMu.Unlock()

	p.ticker = time.NewTicker(p.interval)

	go func() {
		logging.Info(p.logger, "poller started", slog.Int64(logging.FieldDurationMS, p.interval.Milliseconds()))
		// Initial refresh to warm data on boot.
		p.refreshOnce(ctx)

		for {
			select {
			case <-ctx.Done():
				p.stopTicker()
				logging.Info(p.logger, "poller stopped")
				return
			case <-p.done:
				p.stopTicker()
				logging.Info(p.logger, "poller stopped")
				return
			case <-p.ticker.C:
				p.refreshOnce(ctx)
			}
		}
	}()
}

// Stop halts the polling loop.
func (p *Poller) Stop(ctx context.Context) error {
	_ = ctx
	p.stopOnce.Do(func() {
		close(p.done)
		p.stopTicker()
	})
	return nil
}

// RefreshNow triggers an immediate refresh outside the tick schedule.
func (p *Poller) RefreshNow(ctx context.Context) error {
	return p.refreshOnce(ctx)
}

func (p *Poller) refreshOnce(ctx context.Context) error {
	start := time.Now()
	p.recordAttempt(start)

	if err := p.refresher.Load(ctx); err != nil {
		logging.Error(p.logger, "poller refresh failed", err,
			slog.Int64(logging.FieldDurationMS, time.Since(start).Milliseconds()),
		)
		p.recordFailure(err, start)
		return err
	}
	p.recordSuccess(start)

	if p.broadcaster != nil && p.source != nil {
		p.broadcaster.BroadcastScoreboard(p.source.Scoreboard(scoreboard.Filter{}))
	}
	logging.Info(p.logger, "poller refreshed data",
		slog.Int64(logging.FieldDurationMS, time.Since(start).Milliseconds()),
	)
	return nil
}

func (p *Poller) stopTicker() {
	if p.ticker != nil {
		p.ticker.Stop()
	}
}

func (p *Poller) recordAttempt(at time.Time) {
	p.statusMu.Lock()
	defer p.statusMu.Unlock()
	p.status.LastAttempt = at
}

func (p *Poller) recordSuccess(at time.Time) {
	p.statusMu.Lock()
	defer p.statusMu.Unlock()
	p.status.ConsecutiveFailures = 0
	p.status.LastError = ""
	p.status.LastSuccess = at
}

func (p *Poller) recordFailure(err error, at time.Time) {
	p.statusMu.Lock()
	defer p.statusMu.Unlock()
	p.status.ConsecutiveFailures++
	if err != nil {
		p.status.LastError = err.Error()
	}
	p.status.LastAttempt = at
}

// Status returns a snapshot of the poller's recent health.
func (p *Poller) Status() Status {
	p.statusMu.RLock()
	defer p.statusMu.RUnlock()
	return p.status
}
