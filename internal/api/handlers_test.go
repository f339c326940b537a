package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tahcohcat/puravida-web/internal/game"
	"github.com/tahcohcat/puravida-web/internal/models"
	"github.com/tahcohcat/puravida-web/internal/notify"
	"github.com/tahcohcat/puravida-web/internal/proximity"
	"github.com/tahcohcat/puravida-web/internal/store"
)

type fixedRoll float64

func (f fixedRoll) Float64() float64 { return float64(f) }

type testServer struct {
	router *mux.Router
	engine *game.Engine
	events *notify.Recorder
}

func newTestServer(t *testing.T, roll float64) *testServer {
	t.Helper()
	rec := &notify.Recorder{}
	engine := game.NewEngine(store.NewMemoryStore(), game.WithSink(rec))
	h := NewHandler(engine, Options{
		Simulator:       proximity.NewSimulator(fixedRoll(roll), proximity.DefaultSuccessRate),
		Sink:            rec,
		NearbyExplorers: 3,
	})
	r := mux.NewRouter()
	RegisterRoutes(r.PathPrefix("/api/v1").Subrouter(), h)
	return &testServer{router: r, engine: engine, events: rec}
}

func (s *testServer) do(t *testing.T, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	s.router.ServeHTTP(rec, req)
	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &v), rec.Body.String())
	return v
}

func TestGetUser(t *testing.T) {
	s := newTestServer(t, 0.5)

	rec := s.do(t, http.MethodGet, "/api/v1/user", "")

	require.Equal(t, http.StatusOK, rec.Code)
	u := decode[models.User](t, rec)
	assert.Equal(t, "Explorer", u.Name)
	assert.Equal(t, 1, u.Level)
}

func TestCheckIn_SuccessfulRoll(t *testing.T) {
	s := newTestServer(t, 0.9)

	rec := s.do(t, http.MethodPost, "/api/v1/locations/1/checkin", "")

	require.Equal(t, http.StatusOK, rec.Code)
	resp := decode[checkInResponse](t, rec)
	assert.True(t, resp.Success)
	require.NotNil(t, resp.Result)
	assert.Equal(t, game.OutcomeApplied, resp.Result.Outcome)
	assert.Equal(t, 200, resp.Result.User.Points)
	assert.Equal(t, []notify.Kind{
		notify.KindCheckInOutcome,
		notify.KindPointsAwarded,
		notify.KindAchievementUnlocked,
	}, s.events.Kinds())
}

func TestCheckIn_FailedRollLeavesEngineAlone(t *testing.T) {
	s := newTestServer(t, 0.1)

	rec := s.do(t, http.MethodPost, "/api/v1/locations/1/checkin", "")

	require.Equal(t, http.StatusOK, rec.Code)
	resp := decode[checkInResponse](t, rec)
	assert.False(t, resp.Success)
	assert.Nil(t, resp.Result)
	assert.Equal(t, 0, s.engine.User().Points)
	assert.Equal(t, []notify.Kind{notify.KindCheckInOutcome}, s.events.Kinds())
}

func TestCheckIn_AlreadyVisitedSkipsCoinFlip(t *testing.T) {
	s := newTestServer(t, 0.9)
	s.do(t, http.MethodPost, "/api/v1/locations/1/checkin", "")
	s.events.Reset()

	rec := s.do(t, http.MethodPost, "/api/v1/locations/1/checkin", "")

	require.Equal(t, http.StatusOK, rec.Code)
	resp := decode[checkInResponse](t, rec)
	assert.False(t, resp.Success)
	require.NotNil(t, resp.Result)
	assert.Equal(t, game.OutcomeNoChange, resp.Result.Outcome)
	assert.Equal(t, 200, s.engine.User().Points)
	assert.Empty(t, s.events.Events())
}

func TestCheckIn_UnknownLocation(t *testing.T) {
	s := newTestServer(t, 0.9)

	rec := s.do(t, http.MethodPost, "/api/v1/locations/99/checkin", "")

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Empty(t, s.events.Events())
}

func TestVisitAndCompleteActivity(t *testing.T) {
	s := newTestServer(t, 0.5)

	rec := s.do(t, http.MethodPost, "/api/v1/locations/2/visit", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, game.OutcomeApplied, decode[game.Result](t, rec).Outcome)

	rec = s.do(t, http.MethodPost, "/api/v1/locations/2/visit", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, game.OutcomeNoChange, decode[game.Result](t, rec).Outcome)

	rec = s.do(t, http.MethodPost, "/api/v1/locations/2/activities/2-2/complete", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 60, decode[game.Result](t, rec).PointsAwarded)

	rec = s.do(t, http.MethodPost, "/api/v1/locations/2/activities/nope/complete", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestGetLocation(t *testing.T) {
	s := newTestServer(t, 0.5)

	rec := s.do(t, http.MethodGet, "/api/v1/locations/6", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Tortuguero National Park", decode[models.Location](t, rec).Name)

	assert.Equal(t, http.StatusNotFound, s.do(t, http.MethodGet, "/api/v1/locations/99", "").Code)
}

func TestSearchLocations(t *testing.T) {
	s := newTestServer(t, 0.5)

	rec := s.do(t, http.MethodGet, "/api/v1/locations/search?q=tortuguero", "")

	require.Equal(t, http.StatusOK, rec.Code)
	locs := decode[[]models.Location](t, rec)
	require.NotEmpty(t, locs)
	assert.Equal(t, "6", locs[0].ID)
}

func TestFilters(t *testing.T) {
	s := newTestServer(t, 0.5)

	rec := s.do(t, http.MethodPut, "/api/v1/filters", `{"regions":["Caribbean Coast"],"types":[]}`)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = s.do(t, http.MethodGet, "/api/v1/locations", "")
	assert.Len(t, decode[[]models.Location](t, rec), 2)

	rec = s.do(t, http.MethodGet, "/api/v1/locations?all=true", "")
	assert.Len(t, decode[[]models.Location](t, rec), 10)

	rec = s.do(t, http.MethodGet, "/api/v1/filters", "")
	f := decode[game.Filters](t, rec)
	assert.Equal(t, []models.Region{models.RegionCaribbeanCoast}, f.Regions)
}

func TestFilters_RejectsUnknownValues(t *testing.T) {
	s := newTestServer(t, 0.5)

	rec := s.do(t, http.MethodPut, "/api/v1/filters", `{"regions":["Atlantis"]}`)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	resp := decode[requestError](t, rec)
	assert.Equal(t, "validation failed", resp.Message)
	assert.Contains(t, resp.Details, "regions[0]")
}

func TestOnboarding(t *testing.T) {
	s := newTestServer(t, 0.5)

	rec := s.do(t, http.MethodGet, "/api/v1/onboarding", "")
	assert.JSONEq(t, `{"isOnboarded":false}`, rec.Body.String())

	rec = s.do(t, http.MethodPost, "/api/v1/onboarding", `{"name":"Ana","interests":["surf","food"]}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Ana", decode[models.User](t, rec).Name)

	rec = s.do(t, http.MethodGet, "/api/v1/onboarding", "")
	assert.JSONEq(t, `{"isOnboarded":true}`, rec.Body.String())
}

func TestOnboarding_Validation(t *testing.T) {
	s := newTestServer(t, 0.5)

	assert.Equal(t, http.StatusBadRequest, s.do(t, http.MethodPost, "/api/v1/onboarding", `{"name":""}`).Code)
	assert.Equal(t, http.StatusBadRequest, s.do(t, http.MethodPost, "/api/v1/onboarding", `{"name":"   "}`).Code)
	assert.Equal(t, http.StatusBadRequest, s.do(t, http.MethodPost, "/api/v1/onboarding", `{"name":"Ana","extra":1}`).Code)
	assert.Equal(t, http.StatusBadRequest, s.do(t, http.MethodPost, "/api/v1/onboarding", `not json`).Code)
	assert.False(t, s.engine.IsOnboarded())

	rec := s.do(t, http.MethodPost, "/api/v1/onboarding", `{"name":"   "}`)
	resp := decode[requestError](t, rec)
	assert.Equal(t, "validation failed", resp.Message)
	assert.Equal(t, map[string]string{"name": "is required"}, resp.Details)
}

func TestProgressAndReset(t *testing.T) {
	s := newTestServer(t, 0.5)
	s.do(t, http.MethodPost, "/api/v1/locations/1/visit", "")

	rec := s.do(t, http.MethodGet, "/api/v1/progress", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 200, decode[game.Progress](t, rec).Points)

	rec = s.do(t, http.MethodPost, "/api/v1/reset", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 0, decode[models.User](t, rec).Points)
}

func TestCheckAchievementsAndBadges(t *testing.T) {
	s := newTestServer(t, 0.5)

	rec := s.do(t, http.MethodPost, "/api/v1/achievements/check", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, game.OutcomeNoChange, decode[game.Result](t, rec).Outcome)

	rec = s.do(t, http.MethodGet, "/api/v1/badges", "")
	assert.Len(t, decode[[]models.Badge](t, rec), 8)
}

func TestPositionAndExplorers(t *testing.T) {
	s := newTestServer(t, 0.5)

	rec := s.do(t, http.MethodGet, "/api/v1/position", "")
	require.Equal(t, http.StatusOK, rec.Code)
	p := decode[models.Coordinates](t, rec)
	assert.InDelta(t, 10.2, p.Lat, 1e-9)
	assert.InDelta(t, -84.5, p.Lng, 1e-9)

	rec = s.do(t, http.MethodGet, "/api/v1/explorers", "")
	assert.Len(t, decode[[]proximity.Explorer](t, rec), 3)

	rec = s.do(t, http.MethodGet, "/api/v1/explorers?n=500", "")
	assert.Len(t, decode[[]proximity.Explorer](t, rec), maxExplorers)

	assert.Equal(t, http.StatusBadRequest, s.do(t, http.MethodGet, "/api/v1/explorers?n=abc", "").Code)
}
