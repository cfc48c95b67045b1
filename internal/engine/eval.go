package engine

import (
	"math/rand"

	"smartchess/internal/chess"
)

var pieceValue = map[chess.PieceKind]int{
	chess.Pawn:   100,
	chess.Knight: 320,
	chess.Bishop: 330,
	chess.Rook:   500,
	chess.Queen:  900,
	chess.King:   20000,
}

// Piece-square tables from White's point of view, indexed [rank][file] with
// rank 0 being White's promotion rank. Black looks up rank 7-r.
var pawnTable = [8][8]int{
	{0, 0, 0, 0, 0, 0, 0, 0},
	{50, 50, 50, 50, 50, 50, 50, 50},
	{10, 10, 20, 30, 30, 20, 10, 10},
	{5, 5, 10, 25, 25, 10, 5, 5},
	{0, 0, 0, 20, 20, 0, 0, 0},
	{5, -5, -10, 0, 0, -10, -5, 5},
	{5, 10, 10, -20, -20, 10, 10, 5},
	{0, 0, 0, 0, 0, 0, 0, 0},
}

var knightTable = [8][8]int{
	{-50, -40, -30, -30, -30, -30, -40, -50},
	{-40, -20, 0, 5, 5, 0, -20, -40},
	{-30, 5, 10, 15, 15, 10, 5, -30},
	{-30, 0, 15, 20, 20, 15, 0, -30},
	{-30, 5, 15, 20, 20, 15, 5, -30},
	{-30, 0, 10, 15, 15, 10, 0, -30},
	{-40, -20, 0, 0, 0, 0, -20, -40},
	{-50, -40, -30, -30, -30, -30, -40, -50},
}

// bishop, rook, queen and king have no table and score material only
var pieceSquareTables = map[chess.PieceKind]*[8][8]int{
	chess.Pawn:   &pawnTable,
	chess.Knight: &knightTable,
}

const DefaultNoise = 5

// Evaluate is the static score from White's point of view: positive favours White.
// Material plus piece-square bonus, no noise.
func Evaluate(pos *chess.Position) int {
	score := 0
	for r := 0; r < chess.Ranks; r++ {
		for f := 0; f < chess.Files; f++ {
			pc := pos[r][f]
			if pc.IsEmpty() {
				continue
			}
			val := pieceValue[pc.Kind] + positionalBonus(pc, r, f)
			if pc.Side == chess.White {
				score += val
			} else {
				score -= val
			}
		}
	}
	return score
}

func positionalBonus(pc chess.Piece, rank, file int) int {
	table, ok := pieceSquareTables[pc.Kind]
	if !ok {
		return 0
	}
	if pc.Side == chess.Black {
		rank = chess.Ranks - 1 - rank
	}
	return table[rank][file]
}

// Evaluator adds uniform noise in [-Noise, Noise] to Evaluate so that equal
// positions do not always resolve the same way. Noise is drawn from Rand only;
// a nil Rand or zero Noise gives the plain static score.
// An Evaluator is not safe for concurrent use; see Fork.
type Evaluator struct {
	Noise int
	Rand  *rand.Rand
}

func NewEvaluator(seed int64) *Evaluator {
	return &Evaluator{
		Noise: DefaultNoise,
		Rand:  rand.New(rand.NewSource(seed)),
	}
}

// DeterministicEvaluator scores without noise.
func DeterministicEvaluator() *Evaluator {
	return &Evaluator{}
}

func (e *Evaluator) Evaluate(pos *chess.Position) int {
	return Evaluate(pos) + e.noise()
}

func (e *Evaluator) noise() int {
	if e == nil || e.Noise <= 0 || e.Rand == nil {
		return 0
	}
	return e.Rand.Intn(2*e.Noise+1) - e.Noise
}

// Fork returns an Evaluator with the same noise range and its own source,
// seeded from e. Forks taken in the same order from the same seed are identical.
func (e *Evaluator) Fork() *Evaluator {
	if e == nil || e.Rand == nil {
		return &Evaluator{}
	}
	return &Evaluator{
		Noise: e.Noise,
		Rand:  rand.New(rand.NewSource(e.Rand.Int63())),
	}
}
