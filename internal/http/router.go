package http

import (
	nethttp "net/http"

	"scoreboard-service/internal/http/handlers"
)

// NewRouter registers HTTP routes on a ServeMux. The websocket handler is
// optional; when nil the /ws route is not mounted.
func NewRouter(handler *handlers.Handler, wsHandler nethttp.Handler) *nethttp.ServeMux {
	mux := nethttp.NewServeMux()
	mux.HandleFunc("/health", handler.Health)
	mux.HandleFunc("/ready", handler.Ready)
	mux.HandleFunc("/leagues", handler.Leagues)
	mux.HandleFunc("/teams", handler.Teams)
	mux.HandleFunc("/teams/", handler.TeamRoutes)
	mux.HandleFunc("/games", handler.Games)
	mux.HandleFunc("/games/", handler.GameByID)
	mux.HandleFunc("/scoreboard", handler.Scoreboard)
	mux.HandleFunc("/favorites", handler.Favorites)
	if wsHandler != nil {
		mux.Handle("/ws", wsHandler)
	}
	return mux
}
