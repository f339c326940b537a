package game

import (
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/schollz/closestmatch"

	"github.com/tahcohcat/puravida-web/internal/logger"
	"github.com/tahcohcat/puravida-web/internal/models"
	"github.com/tahcohcat/puravida-web/internal/notify"
	"github.com/tahcohcat/puravida-web/internal/store"
)

type Outcome string

const (
	// OutcomeApplied means state changed.
	OutcomeApplied Outcome = "applied"
	// OutcomeNoChange is a repeated transition, e.g. checking in twice.
	OutcomeNoChange Outcome = "no_change"
	// OutcomeNotFound means the location or activity id is not in the catalog.
	OutcomeNotFound Outcome = "not_found"
)

// Result describes what a single engine operation did.
type Result struct {
	Outcome       Outcome        `json:"outcome"`
	PointsAwarded int            `json:"pointsAwarded"`
	Unlocked      []models.Badge `json:"unlocked"`
	LeveledUp     bool           `json:"leveledUp"`
	User          models.User    `json:"user"`
	Events        []notify.Event `json:"events"`
}

// Engine owns the explorer's progression state. Every operation runs under a
// single mutex: the award, badge evaluation, level update and store write of
// one operation complete before the next one starts.
type Engine struct {
	mu    sync.Mutex
	store store.Store
	sink  notify.Sink
	now   func() time.Time
	log   *logger.Log

	user      models.User
	locations []models.Location
	badges    []models.Badge
	onboarded bool
	filters   Filters

	matcher     *closestmatch.ClosestMatch
	matchByName map[string]int
}

type Option func(*Engine)

func WithClock(now func() time.Time) Option {
	return func(e *Engine) { e.now = now }
}

func WithSink(s notify.Sink) Option {
	return func(e *Engine) { e.sink = s }
}

func WithLogger(l *logger.Log) Option {
	return func(e *Engine) { e.log = l }
}

// NewEngine loads state from s, falling back to the default catalogs for any
// key that is absent or unreadable.
func NewEngine(s store.Store, opts ...Option) *Engine {
	e := &Engine{
		store: s,
		sink:  notify.Discard,
		now:   time.Now,
		log:   logger.New(),
	}
	for _, opt := range opts {
		opt(e)
	}
	if e.store == nil {
		e.store = store.NewMemoryStore()
	}
	e.load()
	return e
}

func (e *Engine) load() {
	now := e.now()

	var user models.User
	if e.loadKey(store.KeyUser, &user) {
		e.user = user
		if e.user.Achievements == nil {
			e.user.Achievements = []models.Badge{}
		}
		if e.user.Interests == nil {
			e.user.Interests = []string{}
		}
	} else {
		e.user = DefaultUser(now)
	}

	var locations []models.Location
	if e.loadKey(store.KeyLocations, &locations) && len(locations) > 0 {
		e.locations = locations
	} else {
		e.locations = DefaultLocations()
	}

	var badges []models.Badge
	if e.loadKey(store.KeyBadges, &badges) && len(badges) > 0 {
		e.badges = badges
	} else {
		e.badges = DefaultBadges()
	}

	var onboarded bool
	if e.loadKey(store.KeyOnboarded, &onboarded) {
		e.onboarded = onboarded
	}

	// a stale level from disk is corrected here, without a notification
	e.user.Level = LevelForPoints(e.user.Points)

	e.buildMatcher()
	e.persist(store.KeyUser, store.KeyLocations, store.KeyBadges, store.KeyOnboarded)
}

func (e *Engine) loadKey(key string, dst any) bool {
	err := store.LoadJSON(e.store, key, dst)
	if err == nil {
		return true
	}
	if errors.Is(err, store.ErrNotFound) {
		e.log.Debug(fmt.Sprintf("no saved %s, using defaults", key))
	} else {
		e.log.WithError(err).Warn(fmt.Sprintf("could not read saved %s, using defaults", key))
	}
	return false
}

// persist writes the named keys. Failures are logged and otherwise ignored.
func (e *Engine) persist(keys ...string) {
	for _, key := range keys {
		var value any
		switch key {
		case store.KeyUser:
			value = e.user
		case store.KeyLocations:
			value = e.locations
		case store.KeyBadges:
			value = e.badges
		case store.KeyOnboarded:
			value = e.onboarded
		default:
			continue
		}
		if err := store.SaveJSON(e.store, key, value); err != nil {
			e.log.WithError(err).WithField("key", key).Warn("failed to save state")
		}
	}
}

func (e *Engine) publish(events []notify.Event) {
	for _, ev := range events {
		e.sink.Notify(ev)
	}
}

func (e *Engine) locationIndex(id string) int {
	for i := range e.locations {
		if e.locations[i].ID == id {
			return i
		}
	}
	return -1
}

// CheckIn marks a location visited and awards its points the first time.
// Unknown ids and repeat check-ins change nothing and emit nothing.
func (e *Engine) CheckIn(locationID string) Result {
	e.mu.Lock()
	res := e.checkIn(locationID)
	e.mu.Unlock()

	e.publish(res.Events)
	return res
}

// VisitLocation is an alias for CheckIn.
func (e *Engine) VisitLocation(locationID string) Result {
	return e.CheckIn(locationID)
}

func (e *Engine) checkIn(locationID string) Result {
	idx := e.locationIndex(locationID)
	if idx < 0 {
		return e.result(OutcomeNotFound)
	}
	loc := &e.locations[idx]
	if loc.Visited {
		return e.result(OutcomeNoChange)
	}

	now := e.now()
	visited := now
	loc.Visited = true
	loc.VisitDate = &visited
	e.user.Points += loc.PointValue
	e.user.VisitedLocations++

	res := e.result(OutcomeApplied)
	res.PointsAwarded = loc.PointValue
	res.Events = append(res.Events, notify.NewEvent(notify.PointsAwarded{
		Amount: loc.PointValue,
		Reason: fmt.Sprintf("You checked in at %s", loc.Name),
	}, now))

	e.afterAward(&res, now)
	e.persist(store.KeyLocations, store.KeyUser, store.KeyBadges)
	res.User = e.user.Clone()
	return res
}

// CompleteActivity marks one activity completed and awards its points the
// first time. It never checks in the parent location.
func (e *Engine) CompleteActivity(locationID, activityID string) Result {
	e.mu.Lock()
	res := e.completeActivity(locationID, activityID)
	e.mu.Unlock()

	e.publish(res.Events)
	return res
}

func (e *Engine) completeActivity(locationID, activityID string) Result {
	idx := e.locationIndex(locationID)
	if idx < 0 {
		return e.result(OutcomeNotFound)
	}
	loc := &e.locations[idx]
	ai := loc.ActivityIndex(activityID)
	if ai < 0 {
		return e.result(OutcomeNotFound)
	}
	act := &loc.Activities[ai]
	if act.Completed {
		return e.result(OutcomeNoChange)
	}

	now := e.now()
	act.Completed = true
	e.user.Points += act.PointValue
	e.user.CompletedActivities++

	res := e.result(OutcomeApplied)
	res.PointsAwarded = act.PointValue
	res.Events = append(res.Events, notify.NewEvent(notify.PointsAwarded{
		Amount: act.PointValue,
		Reason: fmt.Sprintf("Activity completed: %s", act.Name),
	}, now))

	e.afterAward(&res, now)
	e.persist(store.KeyLocations, store.KeyUser, store.KeyBadges)
	res.User = e.user.Clone()
	return res
}

// CheckForNewAchievements unlocks every badge whose rule now holds.
func (e *Engine) CheckForNewAchievements() Result {
	e.mu.Lock()
	now := e.now()
	res := e.result(OutcomeNoChange)
	e.afterAward(&res, now)
	if len(res.Unlocked) > 0 || res.LeveledUp {
		res.Outcome = OutcomeApplied
		e.persist(store.KeyUser, store.KeyBadges)
	}
	res.User = e.user.Clone()
	e.mu.Unlock()

	e.publish(res.Events)
	return res
}

// afterAward runs badge evaluation then the level recomputation that must
// follow any change to points.
func (e *Engine) afterAward(res *Result, now time.Time) {
	e.evaluateAchievements(res, now)
	e.recomputeLevel(res, now)
}

func (e *Engine) evaluateAchievements(res *Result, now time.Time) {
	stats := models.ComputeStats(e.locations)

	for i := range e.badges {
		b := &e.badges[i]
		if b.IsUnlocked {
			continue
		}
		rule, ok := RuleFor(b.ID)
		if !ok || !rule(stats) {
			continue
		}

		unlocked := now
		b.IsUnlocked = true
		b.UnlockDate = &unlocked
		e.user.Points += AchievementBonus
		e.user.Achievements = append(e.user.Achievements, b.Clone())

		res.PointsAwarded += AchievementBonus
		res.Unlocked = append(res.Unlocked, b.Clone())
		res.Events = append(res.Events, notify.NewEvent(notify.AchievementUnlocked{
			BadgeID:     b.ID,
			Name:        b.Name,
			Description: b.Description,
		}, now))

		e.log.WithField("badge", b.ID).Info(fmt.Sprintf("achievement unlocked: %s", b.Name))
	}
}

func (e *Engine) recomputeLevel(res *Result, now time.Time) {
	prev := e.user.Level
	e.user.Level = LevelForPoints(e.user.Points)
	if e.user.Level > prev {
		res.LeveledUp = true
		res.Events = append(res.Events, notify.NewEvent(notify.LevelUp{NewLevel: e.user.Level}, now))
		e.log.Info(fmt.Sprintf("level up: %d -> %d", prev, e.user.Level))
	}
}

func (e *Engine) result(o Outcome) Result {
	return Result{Outcome: o, Unlocked: []models.Badge{}, Events: []notify.Event{}, User: e.user.Clone()}
}

// User returns a copy of the current profile.
func (e *Engine) User() models.User {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.user.Clone()
}

func (e *Engine) Locations() []models.Location {
	e.mu.Lock()
	defer e.mu.Unlock()
	return models.CloneLocations(e.locations)
}

func (e *Engine) Badges() []models.Badge {
	e.mu.Lock()
	defer e.mu.Unlock()
	return models.CloneBadges(e.badges)
}

// Location looks up one catalog entry by id.
func (e *Engine) Location(id string) (models.Location, bool) {
	e.mu.Lock()
	defer e.mu.Unlock()
	idx := e.locationIndex(id)
	if idx < 0 {
		return models.Location{}, false
	}
	return e.locations[idx].Clone(), true
}

func (e *Engine) IsOnboarded() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.onboarded
}

// CompleteOnboarding records the explorer's name and interests. A blank name
// keeps the current one. Interests are trimmed and de-duplicated in order.
func (e *Engine) CompleteOnboarding(name string, interests []string) models.User {
	e.mu.Lock()
	defer e.mu.Unlock()

	if n := strings.TrimSpace(name); n != "" {
		e.user.Name = n
	}
	e.user.Interests = uniqueTrimmed(interests)
	e.onboarded = true
	e.persist(store.KeyUser, store.KeyOnboarded)
	return e.user.Clone()
}

// Reset discards every persisted key and starts over from the default catalogs.
func (e *Engine) Reset() {
	e.mu.Lock()
	defer e.mu.Unlock()

	if err := e.store.Clear(); err != nil {
		e.log.WithError(err).Warn("failed to clear saved state")
	}
	e.user = DefaultUser(e.now())
	e.locations = DefaultLocations()
	e.badges = DefaultBadges()
	e.onboarded = false
	e.filters = Filters{}
	e.buildMatcher()
	e.log.Info("adventure reset")
}

func uniqueTrimmed(values []string) []string {
	out := make([]string, 0, len(values))
	seen := make(map[string]struct{}, len(values))
	for _, v := range values {
		v = strings.TrimSpace(v)
		if v == "" {
			continue
		}
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	return out
}
