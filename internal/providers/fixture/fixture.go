package fixture

import (
	"context"
	"time"

	domaingames "scoreboard-service/internal/domain/games"
	"scoreboard-service/internal/domain/leagues"
	"scoreboard-service/internal/domain/teams"
)

// Name identifies the fixture provider in logs and metrics.
const Name = "fixture"

// DefaultDelay simulates fetch latency so consumers exercise their async paths.
const DefaultDelay = 300 * time.Millisecond

// Provider serves a static set of leagues, teams, and games useful for local
// development and tests. Every fetch waits the configured delay and then
// succeeds; the fixture models no failure of its own.
type Provider struct {
	delay time.Duration
	now   func() time.Time
}

// Option customizes a fixture Provider.
type Option func(*Provider)

// WithDelay overrides the simulated fetch latency. Zero disables the delay.
func WithDelay(d time.Duration) Option {
	return func(p *Provider) { p.delay = d }
}

// WithClock overrides the time source used to place game start times.
func WithClock(now func() time.Time) Option {
	return func(p *Provider) { p.now = now }
}

// New creates a fixture provider.
func New(opts ...Option) *Provider {
	p := &Provider{
		delay: DefaultDelay,
		now:   time.Now,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// FetchLeagues returns the fixture leagues.
func (p *Provider) FetchLeagues(ctx context.Context) ([]leagues.League, error) {
	if err := p.wait(ctx); err != nil {
		return nil, err
	}
	return Leagues(), nil
}

// FetchTeams returns the fixture teams.
func (p *Provider) FetchTeams(ctx context.Context) ([]teams.Team, error) {
	if err := p.wait(ctx); err != nil {
		return nil, err
	}
	return Teams(), nil
}

// FetchGames returns a deterministic set of games spread across lifecycle
// states, with start times anchored to the provider's clock.
func (p *Provider) FetchGames(ctx context.Context) ([]domaingames.Game, error) {
	if err := p.wait(ctx); err != nil {
		return nil, err
	}
	return Games(p.now().UTC()), nil
}

// wait blocks for the simulated latency, honoring context cancellation.
func (p *Provider) wait(ctx context.Context) error {
	if p.delay <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(p.delay)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
