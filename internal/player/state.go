package player

import (
	"encoding/json"
	"errors"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-overworld/internal/core"
)

var errMissingField = errors.New("player: stored position is missing x or y")

// DefaultKey is the storage key for a local session's position.
const DefaultKey = "player.position"

// Position is the entity's top-left corner in world pixel-space.
type Position = core.Point

// Store is the persistence the player state needs.
// storage.KV satisfies it.
type Store interface {
	Get(key string) (string, bool, error)
	Set(key, value string) error
}

// Bounds describes the space the entity moves in, in pixels.
type Bounds struct {
	MapW, MapH       int // Map extent
	EntityW, EntityH int // Entity footprint
	Step             int // Distance of one move, normally the tile size
}

// Config configures a new State.
type Config struct {
	Bounds Bounds
	Start  Position // Used when nothing valid is stored
	Logger *log.Logger
}

// State owns the player's position.
// Its only state is idle; every recognized move resolves immediately.
type State struct {
	pos    Position
	bounds Bounds
	store  Store
	key    string
	logger *log.Logger
}

type storedPosition struct {
	X *int `json:"x"`
	Y *int `json:"y"`
}

// Load restores the position stored under key, falling back to cfg.Start
// when the key is absent or its value is malformed. The result is clamped
// to the bounds. A nil store disables persistence.
func Load(store Store, key string, cfg Config) *State {
	s := &State{
		bounds: cfg.Bounds,
		store:  store,
		key:    key,
		logger: cfg.Logger,
	}

	pos, ok := s.restore()
	if !ok {
		pos = cfg.Start
	}
	s.pos = s.clamp(pos)
	return s
}

func (s *State) restore() (Position, bool) {
	if s.store == nil {
		return Position{}, false
	}

	raw, ok, err := s.store.Get(s.key)
	if err != nil {
		s.warn("could not read stored position", "key", s.key, "error", err)
		return Position{}, false
	}
	if !ok {
		return Position{}, false
	}

	pos, err := DecodePosition(raw)
	if err != nil {
		s.warn("ignoring malformed stored position", "key", s.key, "value", raw)
		return Position{}, false
	}
	return pos, true
}

// Position returns the current position.
func (s *State) Position() Position {
	return s.pos
}

// Bounds returns the movement bounds.
func (s *State) Bounds() Bounds {
	return s.bounds
}

// Tile returns the map cell under the entity's top-left corner.
func (s *State) Tile() (col, row int) {
	if s.bounds.Step <= 0 {
		return 0, 0
	}
	return s.pos.X / s.bounds.Step, s.pos.Y / s.bounds.Step
}

// AttemptMove moves one step in dir, clamped to the map edges, and persists
// the result. Moving into an edge stops at the boundary; the position is
// still written so storage always matches the last rendered frame.
func (s *State) AttemptMove(dir Direction) Position {
	if dir == DirNone {
		return s.pos
	}

	u := dir.Unit()
	next := s.pos.Add(core.Pt(u.X*s.bounds.Step, u.Y*s.bounds.Step))
	s.pos = s.clamp(next)
	s.persist()
	return s.pos
}

// Reset moves the entity to pos (clamped) and persists it.
func (s *State) Reset(pos Position) Position {
	s.pos = s.clamp(pos)
	s.persist()
	return s.pos
}

func (s *State) clamp(p Position) Position {
	maxX := s.bounds.MapW - s.bounds.EntityW
	maxY := s.bounds.MapH - s.bounds.EntityH
	return Position{
		X: core.Clamp(p.X, 0, core.Max(maxX, 0)),
		Y: core.Clamp(p.Y, 0, core.Max(maxY, 0)),
	}
}

func (s *State) persist() {
	if s.store == nil {
		return
	}
	if err := s.store.Set(s.key, EncodePosition(s.pos)); err != nil {
		s.warn("could not persist position", "key", s.key, "error", err)
	}
}

func (s *State) warn(msg string, keyvals ...any) {
	if s.logger != nil {
		s.logger.Warn(msg, keyvals...)
	}
}

// EncodePosition serializes a position as {"x":..,"y":..}.
func EncodePosition(p Position) string {
	data, _ := json.Marshal(struct {
		X int `json:"x"`
		Y int `json:"y"`
	}{p.X, p.Y})
	return string(data)
}

// DecodePosition parses the EncodePosition format. Both fields are required.
func DecodePosition(raw string) (Position, error) {
	var sp storedPosition
	if err := json.Unmarshal([]byte(raw), &sp); err != nil {
		return Position{}, err
	}
	if sp.X == nil || sp.Y == nil {
		return Position{}, errMissingField
	}
	return Position{X: *sp.X, Y: *sp.Y}, nil
}
