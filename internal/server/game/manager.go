package game

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"smartchess/internal/chess"
)

var (
	ErrGameNotFound = errors.New("game not found")
	ErrIllegalMove  = errors.New("illegal move")
	ErrGameOver     = errors.New("game is over")
	ErrGameChanged  = errors.New("game changed during search")
)

type Manager struct {
	mu    sync.RWMutex
	games map[string]*GameState
}

func NewManager() *Manager {
	return &Manager{games: make(map[string]*GameState)}
}

// NewGame starts from the standard position with White to move.
func (m *Manager) NewGame() GameState {
	return m.NewGameFrom(chess.NewInitialPosition(), chess.White)
}

// NewGameFrom registers a game starting at pos. pos is copied.
func (m *Manager) NewGameFrom(pos *chess.Position, side chess.Side) GameState {
	m.mu.Lock()
	defer m.mu.Unlock()

	start := *pos
	now := time.Now()
	g := &GameState{
		ID:        uuid.NewString(),
		Pos:       &start,
		ToMove:    side,
		Status:    statusOf(&start, side),
		CreatedAt: now,
		UpdatedAt: now,
	}
	m.games[g.ID] = g
	return g.snapshot()
}

// Get returns a copy of the game; the caller may keep it without locking.
func (m *Manager) Get(id string) (GameState, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	g, ok := m.games[id]
	if !ok {
		return GameState{}, fmt.Errorf("%w: %s", ErrGameNotFound, id)
	}
	return g.snapshot(), nil
}

// Play applies mv for the side to move. mv must be one of chess.Generate's moves;
// a missing promotion on a pawn reaching the last rank is filled in.
func (m *Manager) Play(id string, mv chess.Move) (GameState, error) {
	return m.play(id, mv, -1)
}

// play is Play that, for ply >= 0, also requires the game to still be at ply.
func (m *Manager) play(id string, mv chess.Move, ply int) (GameState, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	g, ok := m.games[id]
	if !ok {
		return GameState{}, fmt.Errorf("%w: %s", ErrGameNotFound, id)
	}
	if ply >= 0 && len(g.History) != ply {
		return GameState{}, fmt.Errorf("%w: searched ply %d, game is at ply %d", ErrGameChanged, ply, len(g.History))
	}
	if g.Status != StatusOngoing {
		return GameState{}, fmt.Errorf("%w: %s", ErrGameOver, g.Status)
	}

	var found *chess.Move
	legal := chess.Generate(g.Pos, g.ToMove)
	for i := range legal {
		l := legal[i]
		if l.FromRank == mv.FromRank && l.FromFile == mv.FromFile &&
			l.ToRank == mv.ToRank && l.ToFile == mv.ToFile {
			found = &legal[i]
			break
		}
	}
	if found == nil {
		return GameState{}, fmt.Errorf("%w: %s", ErrIllegalMove, mv)
	}

	g.Pos = chess.Apply(g.Pos, *found)
	g.ToMove = g.ToMove.Opposite()
	g.History = append(g.History, *found)
	g.Status = statusOf(g.Pos, g.ToMove)
	g.UpdatedAt = time.Now()
	return g.snapshot(), nil
}

func (g *GameState) snapshot() GameState {
	c := *g
	pos := *g.Pos
	c.Pos = &pos
	c.History = append([]chess.Move(nil), g.History...)
	return c
}
