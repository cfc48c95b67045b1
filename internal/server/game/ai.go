package game

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sync"

	"smartchess/internal/chess"
	"smartchess/internal/engine"
)

var ErrDepthTooLarge = errors.New("search depth too large")

// ResolveDepth picks the depth for a client request: requested <= 0 means def,
// anything above limit is rejected.
func ResolveDepth(requested, def, limit int) (int, error) {
	if requested <= 0 {
		return def, nil
	}
	if requested > limit {
		return 0, fmt.Errorf("%w: %d > %d", ErrDepthTooLarge, requested, limit)
	}
	return requested, nil
}

// AI serialises searches on one engine; the evaluator's random source is not
// safe for concurrent use.
type AI struct {
	mu  sync.Mutex
	eng *engine.Engine
}

func NewAI(eng *engine.Engine) *AI {
	return &AI{eng: eng}
}

func (a *AI) Search(pos *chess.Position, side chess.Side, depth int) engine.SearchResult {
	a.mu.Lock()
	defer a.mu.Unlock()
	res := a.eng.Search(pos, side, engine.SearchConfig{MaxDepth: depth})
	log.Printf("search side=%v depth=%d best=%v score=%d nodes=%d time=%v",
		side, res.Depth, res.BestMove, res.Score, res.Nodes, res.TimeUsed)
	return res
}

// Analyze scores every root move in parallel. Forking the workers' evaluators
// reads the shared source, so it runs under the same lock as Search.
func (a *AI) Analyze(ctx context.Context, pos *chess.Position, side chess.Side, depth, workers int) (engine.Analysis, error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	res, err := a.eng.Analyze(ctx, pos, side, depth, workers)
	if err != nil {
		return res, err
	}
	log.Printf("analyze side=%v depth=%d lines=%d best=%v score=%d nodes=%d time=%v",
		side, res.Depth, len(res.Lines), res.BestMove, res.Score, res.Nodes, res.TimeUsed)
	return res, nil
}

// PlayAI lets the engine choose and play the move for the side to move.
// When the side has no move the game is returned unchanged with res.HasMove false.
// A move played on the game while searching fails the call with ErrGameChanged.
func (m *Manager) PlayAI(id string, ai *AI, depth int) (GameState, engine.SearchResult, error) {
	g, err := m.Get(id)
	if err != nil {
		return GameState{}, engine.SearchResult{}, err
	}
	if g.Status != StatusOngoing {
		return g, engine.SearchResult{Score: engine.Evaluate(g.Pos)}, nil
	}
	res := ai.Search(g.Pos, g.ToMove, depth)
	if !res.HasMove {
		return g, res, nil
	}
	after, err := m.play(id, res.BestMove, len(g.History))
	if err != nil {
		return GameState{}, res, err
	}
	return after, res, nil
}
