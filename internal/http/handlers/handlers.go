package handlers

import (
	"log/slog"
	nethttp "net/http"
	"net/url"
	"strings"

	appfavorites "scoreboard-service/internal/app/favorites"
	appgames "scoreboard-service/internal/app/games"
	appleagues "scoreboard-service/internal/app/leagues"
	appteams "scoreboard-service/internal/app/teams"
	domaingames "scoreboard-service/internal/domain/games"
	"scoreboard-service/internal/logging"
	"scoreboard-service/internal/poller"
	"scoreboard-service/internal/scoreboard"
)

// Handler wires HTTP routes to the app services.
type Handler struct {
	games     *appgames.Service
	teams     *appteams.Service
	leagues   *appleagues.Service
	favorites *appfavorites.Service
	logger    *slog.Logger
	statusFn  func() poller.Status
}

// NewHandler constructs a Handler.
func NewHandler(games *appgames.Service, teams *appteams.Service, leagues *appleagues.Service, favorites *appfavorites.Service, logger *slog.Logger, statusFn func() poller.Status) *Handler {
	return &Handler{
		games:     games,
		teams:     teams,
		leagues:   leagues,
		favorites: favorites,
		logger:    logger,
		statusFn:  statusFn,
	}
}

// Health reports the service health.
func (h *Handler) Health(w nethttp.ResponseWriter, r *nethttp.Request) {
	if !requireMethod(w, r, nethttp.MethodGet, h.logger) {
		return
	}
	if err := r.Context().Err(); err != nil {
		writeError(w, r, nethttp.StatusServiceUnavailable, "shutting down", h.logger)
		return
	}
	writeJSON(w, nethttp.StatusOK, map[string]string{"status": "ok"}, h.logger)
}

// Ready reports whether the service has loaded data and can serve traffic.
func (h *Handler) Ready(w nethttp.ResponseWriter, r *nethttp.Request) {
	if !requireMethod(w, r, nethttp.MethodGet, h.logger) {
		return
	}
	if h.statusFn == nil {
		writeJSON(w, nethttp.StatusOK, map[string]string{"status": "ready"}, h.logger)
		return
	}
	status := h.statusFn()
	if status.IsReady() {
		writeJSON(w, nethttp.StatusOK, map[string]string{"status": "ready"}, h.logger)
		return
	}
	msg := status.LastError
	if msg == "" {
		msg = "not ready"
	}
	writeError(w, r, nethttp.StatusServiceUnavailable, msg, h.logger)
}

// Leagues lists the known leagues.
func (h *Handler) Leagues(w nethttp.ResponseWriter, r *nethttp.Request) {
	if !requireMethod(w, r, nethttp.MethodGet, h.logger) {
		return
	}
	items := h.leagues.Leagues()
	writeJSON(w, nethttp.StatusOK, map[string]any{"leagues": items}, h.logger)
}

// Teams lists teams, optionally restricted to a league.
func (h *Handler) Teams(w nethttp.ResponseWriter, r *nethttp.Request) {
	if !requireMethod(w, r, nethttp.MethodGet, h.logger) {
		return
	}
	leagueID := strings.TrimSpace(r.URL.Query().Get("league"))
	items := h.teams.Teams(leagueID)
	writeJSON(w, nethttp.StatusOK, map[string]any{"teams": items}, h.logger)
}

// Games lists games matching the optional league and search filters.
func (h *Handler) Games(w nethttp.ResponseWriter, r *nethttp.Request) {
	if !requireMethod(w, r, nethttp.MethodGet, h.logger) {
		return
	}
	filter := filterFromQuery(r)
	items := h.games.Games(filter)
	logger := loggerFromContext(r, h.logger)
	logging.Info(logger, "served games", slog.Int(logging.FieldCount, len(items)))
	writeJSON(w, nethttp.StatusOK, domaingames.ListResponse{Games: items}, h.logger)
}

// GameByID returns a specific game if present.
func (h *Handler) GameByID(w nethttp.ResponseWriter, r *nethttp.Request) {
	if !requireMethod(w, r, nethttp.MethodGet, h.logger) {
		return
	}
	id, ok := pathSegment(r.URL.Path, "/games/")
	if !ok {
		writeError(w, r, nethttp.StatusBadRequest, "invalid game id", h.logger)
		return
	}

	game, found := h.games.GameByID(id)
	if !found {
		writeError(w, r, nethttp.StatusNotFound, "game not found", h.logger)
		return
	}
	writeJSON(w, nethttp.StatusOK, game, h.logger)
}

// Scoreboard returns games partitioned into live, upcoming, and final groups,
// after applying the optional league and search filters.
func (h *Handler) Scoreboard(w nethttp.ResponseWriter, r *nethttp.Request) {
	if !requireMethod(w, r, nethttp.MethodGet, h.logger) {
		return
	}
	filter := filterFromQuery(r)
	sb := h.games.Scoreboard(filter)
	logger := loggerFromContext(r, h.logger)
	logging.Info(logger, "served scoreboard",
		slog.Int("live", len(sb.Live)),
		slog.Int("upcoming", len(sb.Upcoming)),
		slog.Int("final", len(sb.Final)),
	)
	writeJSON(w, nethttp.StatusOK, sb, h.logger)
}

// Favorites lists the favorited teams resolved against the canonical store.
func (h *Handler) Favorites(w nethttp.ResponseWriter, r *nethttp.Request) {
	if !requireMethod(w, r, nethttp.MethodGet, h.logger) {
		return
	}
	items := h.favorites.Favorites()
	writeJSON(w, nethttp.StatusOK, map[string]any{"favorites": items}, h.logger)
}

// TeamRoutes dispatches /teams/{id}/favorite toggles; bare /teams/{id} returns
// the team record.
func (h *Handler) TeamRoutes(w nethttp.ResponseWriter, r *nethttp.Request) {
	rest, ok := pathSegments(r.URL.Path, "/teams/")
	if !ok || len(rest) == 0 {
		writeError(w, r, nethttp.StatusBadRequest, "invalid team id", h.logger)
		return
	}

	switch {
	case len(rest) == 1:
		h.teamByID(w, r, rest[0])
	case len(rest) == 2 && rest[1] == "favorite":
		h.toggleFavorite(w, r, rest[0])
	default:
		writeError(w, r, nethttp.StatusNotFound, "not found", h.logger)
	}
}

func (h *Handler) teamByID(w nethttp.ResponseWriter, r *nethttp.Request, id string) {
	if !requireMethod(w, r, nethttp.MethodGet, h.logger) {
		return
	}
	team, found := h.teams.TeamByID(id)
	if !found {
		writeError(w, r, nethttp.StatusNotFound, "team not found", h.logger)
		return
	}
	payload := map[string]any{
		"team":     team,
		"favorite": h.favorites.IsFavorite(id),
	}
	writeJSON(w, nethttp.StatusOK, payload, h.logger)
}

func (h *Handler) toggleFavorite(w nethttp.ResponseWriter, r *nethttp.Request, id string) {
	if !requireMethod(w, r, nethttp.MethodPost, h.logger) {
		return
	}
	nowFavorite, err := h.favorites.Toggle(id)
	if err != nil {
		writeError(w, r, nethttp.StatusNotFound, "team not found", h.logger)
		return
	}
	logger := loggerFromContext(r, h.logger)
	logging.Info(logger, "favorite toggled", slog.String("team", id), slog.Bool("favorite", nowFavorite))
	writeJSON(w, nethttp.StatusOK, map[string]any{"teamId": id, "favorite": nowFavorite}, h.logger)
}

func filterFromQuery(r *nethttp.Request) scoreboard.Filter {
	q := r.URL.Query()
	return scoreboard.Filter{
		LeagueID: strings.TrimSpace(q.Get("league")),
		Search:   q.Get("q"),
	}
}

// pathSegment extracts a single trailing path segment after the prefix.
func pathSegment(path, prefix string) (string, bool) {
	segs, ok := pathSegments(path, prefix)
	if !ok || len(segs) != 1 {
		return "", false
	}
	return segs[0], true
}

func pathSegments(path, prefix string) ([]string, bool) {
	if !strings.HasPrefix(path, prefix) {
		return nil, false
	}
	rest := strings.TrimPrefix(path, prefix)
	if rest == "" {
		return nil, false
	}
	parts := strings.Split(rest, "/")
	segs := make([]string, 0, len(parts))
	for _, p := range parts {
		unescaped, err := url.PathUnescape(p)
		if err != nil || unescaped == "" || strings.ContainsAny(unescaped, " \t") {
			return nil, false
		}
		segs = append(segs, unescaped)
	}
	return segs, true
}
