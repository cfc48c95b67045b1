package engine

import (
	"math"
	"sync/atomic"
	"time"

	"smartchess/internal/chess"
)

const (
	// wider than any evaluation
	ScoreInf = 1_000_000_000

	DefaultDepth = 3
	// deepest search a server client may ask for; there is no time control
	MaxDepth = 5
)

type SearchConfig struct {
	MaxDepth int // plies; <= 0 means DefaultDepth
}

type SearchResult struct {
	BestMove chess.Move
	HasMove  bool // false when the side had no moves
	Score    int  // White's point of view
	Depth    int
	Nodes    int64
	TimeUsed time.Duration
}

// Search is the application entry point: a full-window alpha-beta from pos.
func (e *Engine) Search(pos *chess.Position, side chess.Side, cfg SearchConfig) SearchResult {
	depth := cfg.MaxDepth
	if depth <= 0 {
		depth = DefaultDepth
	}
	start := time.Now()
	atomic.StoreInt64(&e.nodes, 0)

	score, move, ok := e.AlphaBeta(pos, side, depth, -ScoreInf, ScoreInf)

	return SearchResult{
		BestMove: move,
		HasMove:  ok,
		Score:    score,
		Depth:    depth,
		Nodes:    atomic.LoadInt64(&e.nodes),
		TimeUsed: time.Since(start),
	}
}

// AlphaBeta returns the minimax score of pos (White maximises, Black minimises)
// and the first move reaching it. ok is false at depth 0 and when side has no
// moves; a side without moves is scored statically like any leaf, whether or
// not its king is attacked.
func (e *Engine) AlphaBeta(pos *chess.Position, side chess.Side, depth, alpha, beta int) (score int, best chess.Move, ok bool) {
	atomic.AddInt64(&e.nodes, 1)

	if depth <= 0 {
		return e.leaf(pos), chess.Move{}, false
	}
	moves := chess.Generate(pos, side)
	if len(moves) == 0 {
		return e.leaf(pos), chess.Move{}, false
	}

	if side == chess.White {
		bestScore := math.MinInt
		for _, m := range moves {
			s, _, _ := e.AlphaBeta(chess.Apply(pos, m), chess.Black, depth-1, alpha, beta)
			if s > bestScore {
				bestScore, best, ok = s, m, true
			}
			if s > alpha {
				alpha = s
			}
			if beta <= alpha {
				break
			}
		}
		return bestScore, best, ok
	}

	bestScore := math.MaxInt
	for _, m := range moves {
		s, _, _ := e.AlphaBeta(chess.Apply(pos, m), chess.White, depth-1, alpha, beta)
		if s < bestScore {
			bestScore, best, ok = s, m, true
		}
		if s < beta {
			beta = s
		}
		if beta <= alpha {
			break
		}
	}
	return bestScore, best, ok
}

// Minimax is the same search without pruning. Much slower; kept as the
// reference AlphaBeta must agree with.
func (e *Engine) Minimax(pos *chess.Position, side chess.Side, depth int) (score int, best chess.Move, ok bool) {
	atomic.AddInt64(&e.nodes, 1)

	if depth <= 0 {
		return e.leaf(pos), chess.Move{}, false
	}
	moves := chess.Generate(pos, side)
	if len(moves) == 0 {
		return e.leaf(pos), chess.Move{}, false
	}

	bestScore := math.MaxInt
	if side == chess.White {
		bestScore = math.MinInt
	}
	for _, m := range moves {
		s, _, _ := e.Minimax(chess.Apply(pos, m), side.Opposite(), depth-1)
		if (side == chess.White && s > bestScore) || (side == chess.Black && s < bestScore) {
			bestScore, best, ok = s, m, true
		}
	}
	return bestScore, best, ok
}
