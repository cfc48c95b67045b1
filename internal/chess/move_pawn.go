package chess

// Single push onto an empty square, then diagonal captures (file-1, file+1).
// No double step, no en passant. Reaching the far rank always promotes to a queen.
func genPawnMoves(p *Position, rank, file int, side Side, moves *[]Move) {
	r := rank + pawnDir(side)
	if !onBoard(r, file) {
		return
	}
	promo := NoKind
	if r == farRank(side) {
		promo = Queen
	}

	if p[r][file].IsEmpty() {
		*moves = append(*moves, Move{FromRank: rank, FromFile: file, ToRank: r, ToFile: file, Promotion: promo})
	}

	for _, df := range []int{-1, +1} {
		f := file + df
		if !onBoard(r, f) {
			continue
		}
		dst := p[r][f]
		if !dst.IsEmpty() && dst.Side != side {
			*moves = append(*moves, Move{FromRank: rank, FromFile: file, ToRank: r, ToFile: f, Promotion: promo})
		}
	}
}
