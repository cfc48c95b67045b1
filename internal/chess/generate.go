package chess

// Generate returns the pseudo-legal moves for side (own king safety is not checked).
// Order: board scan rank-major then file, then the per-piece direction order.
// An empty result means the side has no moves.
func Generate(p *Position, side Side) []Move {
	var moves []Move
	for r := 0; r < Ranks; r++ {
		for f := 0; f < Files; f++ {
			pc := p[r][f]
			if pc.IsEmpty() || pc.Side != side {
				continue
			}
			switch pc.Kind {
			case Pawn:
				genPawnMoves(p, r, f, side, &moves)
			case Knight:
				genStepMoves(p, r, f, side, knightOffsets[:], &moves)
			case Bishop:
				genSlideMoves(p, r, f, side, bishopDirs[:], &moves)
			case Rook:
				genSlideMoves(p, r, f, side, rookDirs[:], &moves)
			case Queen:
				genSlideMoves(p, r, f, side, queenDirs[:], &moves)
			case King:
				genStepMoves(p, r, f, side, kingOffsets[:], &moves)
			}
		}
	}
	return moves
}

// Apply returns a new position with m played. p is left untouched.
// m is assumed to come from Generate for p.
func Apply(p *Position, m Move) *Position {
	np := *p
	pc := np[m.FromRank][m.FromFile]
	if m.Promotion != NoKind {
		pc = MakePiece(pc.Side, m.Promotion)
	}
	np[m.ToRank][m.ToFile] = pc
	np[m.FromRank][m.FromFile] = Piece{}
	return &np
}

// Perft counts the leaves of the pseudo-legal move tree to depth plies.
func Perft(p *Position, side Side, depth int) int {
	if depth <= 0 {
		return 1
	}
	moves := Generate(p, side)
	if depth == 1 {
		return len(moves)
	}
	total := 0
	for _, m := range moves {
		total += Perft(Apply(p, m), side.Opposite(), depth-1)
	}
	return total
}
