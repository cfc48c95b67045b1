package chess

import (
	"errors"
	"fmt"
	"strings"

	nchess "github.com/notnil/chess"
)

var ErrInvalidFEN = errors.New("invalid FEN")

const InitialFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w - - 0 1"

var toLibKind = map[PieceKind]nchess.PieceType{
	Pawn:   nchess.Pawn,
	Knight: nchess.Knight,
	Bishop: nchess.Bishop,
	Rook:   nchess.Rook,
	Queen:  nchess.Queen,
	King:   nchess.King,
}

var libPieces = map[Piece]nchess.Piece{
	{White, Pawn}:   nchess.WhitePawn,
	{White, Knight}: nchess.WhiteKnight,
	{White, Bishop}: nchess.WhiteBishop,
	{White, Rook}:   nchess.WhiteRook,
	{White, Queen}:  nchess.WhiteQueen,
	{White, King}:   nchess.WhiteKing,
	{Black, Pawn}:   nchess.BlackPawn,
	{Black, Knight}: nchess.BlackKnight,
	{Black, Bishop}: nchess.BlackBishop,
	{Black, Rook}:   nchess.BlackRook,
	{Black, Queen}:  nchess.BlackQueen,
	{Black, King}:   nchess.BlackKing,
}

// library squares run a1=0 .. h8=63; our rank 0 is the 8th rank
func libSquare(rank, file int) nchess.Square {
	return nchess.Square((Ranks-1-rank)*Files + file)
}

// FEN encodes the board and side to move. Castling and en passant are never available.
func (p *Position) FEN(side Side) string {
	m := make(map[nchess.Square]nchess.Piece)
	for r := 0; r < Ranks; r++ {
		for f := 0; f < Files; f++ {
			pc := p[r][f]
			if pc.IsEmpty() {
				continue
			}
			m[libSquare(r, f)] = libPieces[pc]
		}
	}
	stm := "w"
	if side == Black {
		stm = "b"
	}
	return nchess.NewBoard(m).String() + " " + stm + " - - 0 1"
}

// ParseFEN decodes a FEN string. Only the board and side-to-move fields matter;
// short forms with just those two fields are accepted. The result is validated.
func ParseFEN(fen string) (*Position, Side, error) {
	fields := strings.Fields(fen)
	switch len(fields) {
	case 2:
		fields = append(fields, "-", "-", "0", "1")
	case 4:
		fields = append(fields, "0", "1")
	case 6:
	default:
		return nil, NoSide, fmt.Errorf("%w: %q", ErrInvalidFEN, fen)
	}
	// decode only; a Game would also compute move status, which assumes both kings
	var lib nchess.Position
	if err := lib.UnmarshalText([]byte(strings.Join(fields, " "))); err != nil {
		return nil, NoSide, fmt.Errorf("%w: %v", ErrInvalidFEN, err)
	}

	var pos Position
	for sq, pc := range lib.Board().SquareMap() {
		kind, ok := fromLibKind(pc.Type())
		if !ok {
			continue
		}
		side := White
		if pc.Color() == nchess.Black {
			side = Black
		}
		r := Ranks - 1 - int(sq.Rank())
		f := int(sq.File())
		pos[r][f] = MakePiece(side, kind)
	}
	if err := pos.Validate(); err != nil {
		return nil, NoSide, fmt.Errorf("%w: %w", ErrInvalidFEN, err)
	}

	side := White
	if lib.Turn() == nchess.Black {
		side = Black
	}
	return &pos, side, nil
}

func fromLibKind(t nchess.PieceType) (PieceKind, bool) {
	for k, v := range toLibKind {
		if v == t {
			return k, true
		}
	}
	return NoKind, false
}
