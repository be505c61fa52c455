package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"scoreboard-service/internal/testutil"
)

func BenchmarkScoreboard(b *testing.B) {
	g, tm, l := fixtures()
	svcs := testutil.NewServices(g, tm, l)
	h := newHandler(svcs, nil)

	req := httptest.NewRequest(http.MethodGet, "/scoreboard", nil)

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		rr := httptest.NewRecorder()
		h.Scoreboard(rr, req)
	}
}

func BenchmarkGameByID(b *testing.B) {
	g, tm, l := fixtures()
	svcs := testutil.NewServices(g, tm, l)
	h := newHandler(svcs, nil)

	req := httptest.NewRequest(http.MethodGet, "/games/nfl-1", nil)

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		rr := httptest.NewRecorder()
		h.GameByID(rr, req)
	}
}
