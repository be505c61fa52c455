package server

import (
	"context"
	"testing"

	"scoreboard-service/internal/config"
	"scoreboard-service/internal/metrics"
)

func TestProviderFactoryBuildsRetryingFixture(t *testing.T) {
	rec := metrics.NewRecorder()
	factory := newProviderFactory(discardLogger(), rec)

	p := factory.build(config.Config{Provider: "fixture", FetchDelay: 0})
	if p == nil {
		t.Fatalf("expected provider")
	}

	leagues, err := p.FetchLeagues(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(leagues) == 0 {
		t.Fatalf("expected fixture leagues")
	}
	if rec.ProviderCalls("fixture") == 0 {
		t.Fatalf("expected provider attempts to be recorded")
	}
}

func TestNormalizeProviderName(t *testing.T) {
	if got := normalizeProviderName("Fixture", nil); got != "fixture" {
		t.Fatalf("expected lower-cased name, got %q", got)
	}
	if got := normalizeProviderName("", nil); got != "provider" {
		t.Fatalf("expected generic fallback, got %q", got)
	}
}
