package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/ivaldes/gaffer/internal/cache"
	"github.com/ivaldes/gaffer/internal/league"
	"github.com/ivaldes/gaffer/internal/publisher"
	"github.com/ivaldes/gaffer/internal/store"
)

// SnapshotStore persists the four state snapshots. The manager never
// knows how or where they are stored.
type SnapshotStore interface {
	LoadSnapshot(ctx context.Context, name string, v any) error
	SaveSnapshot(ctx context.Context, name string, v any) error
}

// RosterCache memoizes the derived final roster. Optional; the manager
// recomputes from snapshots when the cache is cold or absent.
type RosterCache interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error
	Delete(ctx context.Context, keys ...string) error
}

// EventPublisher emits roster lifecycle events after mutations. Optional.
type EventPublisher interface {
	Publish(ctx context.Context, event string, payload interface{}) error
}

// Manager is the single logical owner of team state. Mutations are
// serialized; each one persists its snapshot, recomputes the base roster
// and hands the new final roster to the change listener. All derivations
// go through the pure functions in the league package, so state can
// always be rebuilt from the four snapshots alone.
type Manager struct {
	mu       sync.Mutex
	store    SnapshotStore
	cache    RosterCache
	pub      EventPublisher
	onChange func([]league.Player)

	initial []league.Player
	config  league.TeamConfig
	history []league.MatchRecord
	edits   league.EditSet
	custom  []league.Player

	base []league.Player // derived from (initial ∪ custom) + history
}

// NewManager creates a manager over the given snapshot store. cacheLayer
// and pub may be nil.
func NewManager(snapshots SnapshotStore, cacheLayer RosterCache, pub EventPublisher, initial []league.Player) *Manager {
	return &Manager{
		store:   snapshots,
		cache:   cacheLayer,
		pub:     pub,
		initial: initial,
		config:  league.DefaultTeamConfig(),
		edits:   league.EditSet{},
	}
}

// OnChange registers a listener invoked with the new final roster after
// every mutation.
func (m *Manager) OnChange(fn func(roster []league.Player)) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.onChange = fn
}

// Load reads all snapshots. Snapshots that were never saved fall back to
// defaults: the compiled roster, empty history and edits, default config.
func (m *Manager) Load(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if err := m.loadSnapshot(ctx, store.SnapshotTeamConfig, &m.config); err != nil {
		return err
	}
	if err := m.loadSnapshot(ctx, store.SnapshotMatchHistory, &m.history); err != nil {
		return err
	}
	if err := m.loadSnapshot(ctx, store.SnapshotPlayerEdits, &m.edits); err != nil {
		return err
	}
	if err := m.loadSnapshot(ctx, store.SnapshotCustomPlayers, &m.custom); err != nil {
		return err
	}
	if m.edits == nil {
		m.edits = league.EditSet{}
	}

	m.recomputeLocked()
	return nil
}

func (m *Manager) loadSnapshot(ctx context.Context, name string, v any) error {
	err := m.store.LoadSnapshot(ctx, name, v)
	if errors.Is(err, store.ErrNoSnapshot) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("loading %s: %w", name, err)
	}
	return nil
}

// TeamConfig returns the current team identity.
func (m *Manager) TeamConfig() league.TeamConfig {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.config
}

// SetTeamConfig replaces and persists the team identity.
func (m *Manager) SetTeamConfig(ctx context.Context, cfg league.TeamConfig) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.config = cfg
	if err := m.store.SaveSnapshot(ctx, store.SnapshotTeamConfig, cfg); err != nil {
		return err
	}
	m.publish(ctx, publisher.EventConfigUpdated, map[string]string{"name": cfg.Name})
	return nil
}

// Matches returns the match history.
func (m *Manager) Matches() []league.MatchRecord {
	m.mu.Lock()
	defer m.mu.Unlock()

	matches := make([]league.MatchRecord, len(m.history))
	copy(matches, m.history)
	return matches
}

// MatchByID returns one match from history.
func (m *Manager) MatchByID(id string) (league.MatchRecord, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, match := range m.history {
		if match.ID == id {
			return match, true
		}
	}
	return league.MatchRecord{}, false
}

// AddMatch appends a match to history and recomputes the roster.
// Performances with zero minutes are dropped before saving: a player who
// did not play leaves no record. Matches are immutable once saved.
func (m *Manager) AddMatch(ctx context.Context, match league.MatchRecord) (league.MatchRecord, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if match.ID == "" {
		match.ID = fmt.Sprintf("%d", time.Now().UnixMilli())
	}
	if match.Date.IsZero() {
		match.Date = time.Now()
	}

	kept := match.Performances[:0:0]
	for _, perf := range match.Performances {
		if perf.Minutes > 0 {
			kept = append(kept, perf)
		}
	}
	match.Performances = kept

	history := append(append([]league.MatchRecord{}, m.history...), match)
	if err := m.store.SaveSnapshot(ctx, store.SnapshotMatchHistory, history); err != nil {
		return league.MatchRecord{}, err
	}
	m.history = history
	m.recomputeLocked()

	m.publish(ctx, publisher.EventMatchAdded, map[string]interface{}{
		"match_id":       match.ID,
		"opponent":       match.Opponent,
		"my_score":       match.MyScore,
		"opponent_score": match.OpponentScore,
	})
	m.notifyLocked()
	return match, nil
}

// AddPlayer appends a custom player to the roster. The new entry starts
// with zeroed statistics regardless of what the caller sent.
func (m *Manager) AddPlayer(ctx context.Context, p league.Player) (league.Player, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if p.ID == "" {
		p.ID = fmt.Sprintf("%d", time.Now().UnixMilli())
	}
	if !p.Position.Valid() {
		return league.Player{}, fmt.Errorf("invalid position %q", p.Position)
	}
	p.MatchesPlayed, p.Goals, p.Assists, p.CleanSheets, p.TotalPoints = 0, 0, 0, 0, 0
	p.AverageRating = 0
	p.Form = nil

	custom := append(append([]league.Player{}, m.custom...), p)
	if err := m.store.SaveSnapshot(ctx, store.SnapshotCustomPlayers, custom); err != nil {
		return league.Player{}, err
	}
	m.custom = custom
	m.recomputeLocked()

	m.publish(ctx, publisher.EventPlayerAdded, map[string]string{"player_id": p.ID, "name": p.Name})
	m.notifyLocked()
	return p, nil
}

// UpdatePlayer records a manual correction for one player. Statistical
// fields in upd are converted to offsets against the current base roster,
// so the correction keeps its intended effect as later matches change the
// computed base. An unknown player id is a silent no-op.
func (m *Manager) UpdatePlayer(ctx context.Context, playerID string, upd league.PlayerUpdate) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	edits := league.RecordEdit(m.edits, playerID, upd, m.base)
	if err := m.store.SaveSnapshot(ctx, store.SnapshotPlayerEdits, edits); err != nil {
		return err
	}
	m.edits = edits
	m.invalidateCache(ctx)

	m.publish(ctx, publisher.EventPlayerEdited, map[string]string{"player_id": playerID})
	m.notifyLocked()
	return nil
}

// BaseRoster returns the roster computed purely from match history,
// before manual edits.
func (m *Manager) BaseRoster() []league.Player {
	m.mu.Lock()
	defer m.mu.Unlock()

	base := make([]league.Player, len(m.base))
	copy(base, m.base)
	return base
}

// Roster returns the final roster: base plus the edit overlay. Served
// from cache when warm; recomputing always yields the same result.
func (m *Manager) Roster(ctx context.Context) []league.Player {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.cache != nil {
		if raw, err := m.cache.Get(ctx, cache.KeyFinalRoster); err == nil {
			var roster []league.Player
			if err := json.Unmarshal([]byte(raw), &roster); err == nil {
				return roster
			}
		} else if !cache.IsMiss(err) {
			log.Printf("roster cache read: %v", err)
		}
	}

	roster := m.finalLocked()

	if m.cache != nil {
		if data, err := json.Marshal(roster); err == nil {
			if err := m.cache.Set(ctx, cache.KeyFinalRoster, data, cache.RosterTTL); err != nil {
				log.Printf("roster cache write: %v", err)
			}
		}
	}
	return roster
}

// LeagueStats returns the season record derived from match history.
func (m *Manager) LeagueStats() league.LeagueStats {
	m.mu.Lock()
	defer m.mu.Unlock()
	return league.ComputeLeagueStats(m.history)
}

// TeamBalance returns fantasy points grouped by position over the final
// roster.
func (m *Manager) TeamBalance() league.TeamBalance {
	m.mu.Lock()
	defer m.mu.Unlock()
	return league.ComputeTeamBalance(m.finalLocked())
}

// recomputeLocked rebuilds the base roster after history or roster
// membership changed. Caller holds the lock.
func (m *Manager) recomputeLocked() {
	m.base = league.BuildBaseRoster(m.initial, m.custom, m.history)
	m.invalidateCache(context.Background())
}

func (m *Manager) finalLocked() []league.Player {
	return league.ApplyEdits(m.base, m.edits)
}

func (m *Manager) invalidateCache(ctx context.Context) {
	if m.cache == nil {
		return
	}
	if err := m.cache.Delete(ctx, cache.KeyFinalRoster); err != nil {
		log.Printf("roster cache invalidate: %v", err)
	}
}

// publish is best effort: a dead stream must not fail a mutation.
func (m *Manager) publish(ctx context.Context, event string, payload interface{}) {
	if m.pub == nil {
		return
	}
	if err := m.pub.Publish(ctx, event, payload); err != nil {
		log.Printf("publish %s: %v", event, err)
	}
}

func (m *Manager) notifyLocked() {
	if m.onChange != nil {
		m.onChange(m.finalLocked())
	}
}
