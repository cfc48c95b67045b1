package chess

var knightOffsets = [8][2]int{
	{-2, -1}, {-2, +1},
	{-1, -2}, {-1, +2},
	{+1, -2}, {+1, +2},
	{+2, -1}, {+2, +1},
}

var kingOffsets = [8][2]int{
	{-1, -1}, {-1, 0}, {-1, +1},
	{0, -1}, {0, +1},
	{+1, -1}, {+1, 0}, {+1, +1},
}

var bishopDirs = [4][2]int{{-1, -1}, {+1, +1}, {-1, +1}, {+1, -1}}

var rookDirs = [4][2]int{{-1, 0}, {+1, 0}, {0, -1}, {0, +1}}

// bishop directions first, then rook
var queenDirs = [8][2]int{
	{-1, -1}, {+1, +1}, {-1, +1}, {+1, -1},
	{-1, 0}, {+1, 0}, {0, -1}, {0, +1},
}

// knight and king: one step per offset, empty or enemy target
func genStepMoves(p *Position, rank, file int, side Side, offsets [][2]int, moves *[]Move) {
	for _, d := range offsets {
		r, f := rank+d[0], file+d[1]
		if !onBoard(r, f) {
			continue
		}
		dst := p[r][f]
		if dst.IsEmpty() || dst.Side != side {
			*moves = append(*moves, Move{FromRank: rank, FromFile: file, ToRank: r, ToFile: f})
		}
	}
}

// bishop, rook, queen: slide until blocked; enemy square included, friendly excluded
func genSlideMoves(p *Position, rank, file int, side Side, dirs [][2]int, moves *[]Move) {
	for _, d := range dirs {
		r, f := rank+d[0], file+d[1]
		for onBoard(r, f) {
			dst := p[r][f]
			if dst.IsEmpty() {
				*moves = append(*moves, Move{FromRank: rank, FromFile: file, ToRank: r, ToFile: f})
			} else {
				if dst.Side != side {
					*moves = append(*moves, Move{FromRank: rank, FromFile: file, ToRank: r, ToFile: f})
				}
				break
			}
			r += d[0]
			f += d[1]
		}
	}
}
