package engine

import (
	"context"
	"runtime"
	"sync/atomic"
	"time"

	"golang.org/x/sync/errgroup"

	"smartchess/internal/chess"
)

// RootScore is the full-window score of one root move.
type RootScore struct {
	Move  chess.Move
	Score int
}

type Analysis struct {
	SearchResult
	Lines []RootScore // in generation order
}

// Analyze searches every root move concurrently, each with a full window and
// its own forked evaluator. Results are folded in generation order with strict
// improvement, so with noise disabled the best move and score equal Search.
// Cancelling ctx stops workers that have not started yet.
func (e *Engine) Analyze(ctx context.Context, pos *chess.Position, side chess.Side, depth, workers int) (Analysis, error) {
	if depth <= 0 {
		depth = DefaultDepth
	}
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	start := time.Now()
	atomic.StoreInt64(&e.nodes, 1)

	moves := chess.Generate(pos, side)
	if len(moves) == 0 {
		return Analysis{SearchResult: SearchResult{
			Score:    e.leaf(pos),
			Depth:    depth,
			Nodes:    1,
			TimeUsed: time.Since(start),
		}}, nil
	}

	lines := make([]RootScore, len(moves))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i, m := range moves {
		i, m := i, m
		child := chess.Apply(pos, m)
		local := e.fork()
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			s, _, _ := local.AlphaBeta(child, side.Opposite(), depth-1, -ScoreInf, ScoreInf)
			lines[i] = RootScore{Move: m, Score: s}
			atomic.AddInt64(&e.nodes, local.Nodes())
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return Analysis{}, err
	}

	res := SearchResult{Depth: depth}
	for _, l := range lines {
		if !res.HasMove ||
			(side == chess.White && l.Score > res.Score) ||
			(side == chess.Black && l.Score < res.Score) {
			res.BestMove, res.Score, res.HasMove = l.Move, l.Score, true
		}
	}
	res.Nodes = atomic.LoadInt64(&e.nodes)
	res.TimeUsed = time.Since(start)
	return Analysis{SearchResult: res, Lines: lines}, nil
}
