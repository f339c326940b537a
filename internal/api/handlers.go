package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"github.com/tahcohcat/puravida-web/internal/game"
	"github.com/tahcohcat/puravida-web/internal/logger"
	"github.com/tahcohcat/puravida-web/internal/models"
	"github.com/tahcohcat/puravida-web/internal/notify"
	"github.com/tahcohcat/puravida-web/internal/proximity"
)

const maxExplorers = 20

type Handler struct {
	engine    *game.Engine
	sim       *proximity.Simulator
	sink      notify.Sink
	explorers int
	now       func() time.Time
	log       *logger.Log
}

type Options struct {
	Simulator       *proximity.Simulator
	Sink            notify.Sink
	NearbyExplorers int
	Logger          *logger.Log
}

func NewHandler(engine *game.Engine, opts Options) *Handler {
	h := &Handler{
		engine:    engine,
		sim:       opts.Simulator,
		sink:      opts.Sink,
		explorers: opts.NearbyExplorers,
		now:       time.Now,
		log:       opts.Logger,
	}
	if h.sim == nil {
		h.sim = proximity.NewSimulator(nil, proximity.DefaultSuccessRate)
	}
	if h.sink == nil {
		h.sink = notify.Discard
	}
	if h.log == nil {
		h.log = logger.New()
	}
	return h
}

type onboardingRequest struct {
	Name      string   `json:"name" validate:"notblank,max=64"`
	Interests []string `json:"interests" validate:"max=20,dive,max=32"`
}

type filtersRequest struct {
	Regions []string `json:"regions" validate:"max=5,dive,region"`
	Types   []string `json:"types" validate:"max=5,dive,loctype"`
}

type checkInResponse struct {
	Success bool         `json:"success"`
	Result  *game.Result `json:"result,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, err error) {
	var reqErr *requestError
	if errors.As(err, &reqErr) {
		writeJSON(w, http.StatusBadRequest, reqErr)
		return
	}
	writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
}

func writeResult(w http.ResponseWriter, res game.Result) {
	if res.Outcome == game.OutcomeNotFound {
		writeJSON(w, http.StatusNotFound, res)
		return
	}
	writeJSON(w, http.StatusOK, res)
}

// GET /api/v1/user
func (h *Handler) GetUser(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.engine.User())
}

// GET /api/v1/locations - filtered by the current selection unless ?all=true
func (h *Handler) ListLocations(w http.ResponseWriter, r *http.Request) {
	if all, _ := strconv.ParseBool(r.URL.Query().Get("all")); all {
		writeJSON(w, http.StatusOK, h.engine.Locations())
		return
	}
	writeJSON(w, http.StatusOK, h.engine.FilteredLocations())
}

// GET /api/v1/locations/search?q=
func (h *Handler) SearchLocations(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.engine.SearchLocations(r.URL.Query().Get("q")))
}

// GET /api/v1/locations/{id}
func (h *Handler) GetLocation(w http.ResponseWriter, r *http.Request) {
	loc, ok := h.engine.Location(mux.Vars(r)["id"])
	if !ok {
		http.Error(w, "Location not found", http.StatusNotFound)
		return
	}
	writeJSON(w, http.StatusOK, loc)
}

// POST /api/v1/locations/{id}/checkin - simulated proximity check, then check-in on success
func (h *Handler) CheckIn(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	loc, ok := h.engine.Location(id)
	if !ok {
		http.Error(w, "Location not found", http.StatusNotFound)
		return
	}
	// already visited: no coin flip, no outcome event, just the engine's no_change
	if loc.Visited {
		res := h.engine.CheckIn(id)
		writeJSON(w, http.StatusOK, checkInResponse{Success: false, Result: &res})
		return
	}

	outcome := h.sim.AttemptCheckIn(id)
	h.sink.Notify(notify.NewEvent(outcome, h.now()))
	if !outcome.Success {
		writeJSON(w, http.StatusOK, checkInResponse{Success: false})
		return
	}

	res := h.engine.CheckIn(id)
	writeJSON(w, http.StatusOK, checkInResponse{Success: true, Result: &res})
}

// POST /api/v1/locations/{id}/visit
func (h *Handler) VisitLocation(w http.ResponseWriter, r *http.Request) {
	writeResult(w, h.engine.VisitLocation(mux.Vars(r)["id"]))
}

// POST /api/v1/locations/{id}/activities/{activityId}/complete
func (h *Handler) CompleteActivity(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	writeResult(w, h.engine.CompleteActivity(vars["id"], vars["activityId"]))
}

// GET /api/v1/badges
func (h *Handler) ListBadges(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.engine.Badges())
}

// POST /api/v1/achievements/check
func (h *Handler) CheckAchievements(w http.ResponseWriter, r *http.Request) {
	writeResult(w, h.engine.CheckForNewAchievements())
}

// GET /api/v1/progress
func (h *Handler) GetProgress(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.engine.Progress())
}

// GET /api/v1/filters
func (h *Handler) GetFilters(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.engine.Filters())
}

// PUT /api/v1/filters
func (h *Handler) SetFilters(w http.ResponseWriter, r *http.Request) {
	var req filtersRequest
	if err := decodeJSONBody(r, &req); err != nil {
		writeError(w, err)
		return
	}

	f := game.Filters{}
	for _, name := range req.Regions {
		f.Regions = append(f.Regions, models.Region(name))
	}
	for _, name := range req.Types {
		f.Types = append(f.Types, models.LocationType(name))
	}
	writeJSON(w, http.StatusOK, h.engine.SetFilters(f))
}

// GET /api/v1/onboarding
func (h *Handler) GetOnboarding(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]bool{"isOnboarded": h.engine.IsOnboarded()})
}

// POST /api/v1/onboarding
func (h *Handler) CompleteOnboarding(w http.ResponseWriter, r *http.Request) {
	var req onboardingRequest
	if err := decodeJSONBody(r, &req); err != nil {
		writeError(w, err)
		return
	}
	user := h.engine.CompleteOnboarding(req.Name, req.Interests)
	h.log.WithField("name", user.Name).Info("onboarding complete")
	writeJSON(w, http.StatusOK, user)
}

// POST /api/v1/reset
func (h *Handler) Reset(w http.ResponseWriter, r *http.Request) {
	h.engine.Reset()
	writeJSON(w, http.StatusOK, h.engine.User())
}

// GET /api/v1/position
func (h *Handler) GetPosition(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.sim.Position())
}

// GET /api/v1/explorers[?n=]
func (h *Handler) NearbyExplorers(w http.ResponseWriter, r *http.Request) {
	n := h.explorers
	if raw := r.URL.Query().Get("n"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 0 {
			writeError(w, &requestError{Message: "n must be a non-negative integer"})
			return
		}
		n = parsed
	}
	if n > maxExplorers {
		n = maxExplorers
	}
	writeJSON(w, http.StatusOK, h.sim.NearbyExplorers(n))
}

func RegisterRoutes(r *mux.Router, h *Handler) {
	r.HandleFunc("/user", h.GetUser).Methods("GET")
	r.HandleFunc("/locations", h.ListLocations).Methods("GET")
	r.HandleFunc("/locations/search", h.SearchLocations).Methods("GET")
	r.HandleFunc("/locations/{id}", h.GetLocation).Methods("GET")
	r.HandleFunc("/locations/{id}/checkin", h.CheckIn).Methods("POST")
	r.HandleFunc("/locations/{id}/visit", h.VisitLocation).Methods("POST")
	r.HandleFunc("/locations/{id}/activities/{activityId}/complete", h.CompleteActivity).Methods("POST")
	r.HandleFunc("/badges", h.ListBadges).Methods("GET")
	r.HandleFunc("/achievements/check", h.CheckAchievements).Methods("POST")
	r.HandleFunc("/progress", h.GetProgress).Methods("GET")
	r.HandleFunc("/filters", h.GetFilters).Methods("GET")
	r.HandleFunc("/filters", h.SetFilters).Methods("PUT")
	r.HandleFunc("/onboarding", h.GetOnboarding).Methods("GET")
	r.HandleFunc("/onboarding", h.CompleteOnboarding).Methods("POST")
	r.HandleFunc("/reset", h.Reset).Methods("POST")
	r.HandleFunc("/position", h.GetPosition).Methods("GET")
	r.HandleFunc("/explorers", h.NearbyExplorers).Methods("GET")
}
