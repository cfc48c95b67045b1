package engine

import (
	"sync/atomic"

	"smartchess/internal/chess"
)

// Engine runs depth-limited alpha-beta over chess.Generate / chess.Apply.
// It keeps no state between searches apart from the node counter.
type Engine struct {
	eval  *Evaluator
	nodes int64
}

// NewEngine uses eval for leaf scores; nil means no noise.
func NewEngine(eval *Evaluator) *Engine {
	if eval == nil {
		eval = DeterministicEvaluator()
	}
	return &Engine{eval: eval}
}

// fork returns an Engine for one worker goroutine with its own evaluator source.
func (e *Engine) fork() *Engine {
	return &Engine{eval: e.eval.Fork()}
}

func (e *Engine) Nodes() int64 {
	return atomic.LoadInt64(&e.nodes)
}

func (e *Engine) leaf(pos *chess.Position) int {
	return e.eval.Evaluate(pos)
}
