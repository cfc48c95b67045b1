package chess

type Side int8

const (
	NoSide Side = -1
	White  Side = 0
	Black  Side = 1
)

func (s Side) Opposite() Side {
	switch s {
	case White:
		return Black
	case Black:
		return White
	}
	return NoSide
}

func (s Side) String() string {
	switch s {
	case White:
		return "white"
	case Black:
		return "black"
	}
	return "none"
}

type PieceKind int8

const (
	NoKind PieceKind = iota
	Pawn
	Knight
	Bishop
	Rook
	Queen
	King
)

// Piece is a (side, kind) pair. The zero Piece is an empty cell.
type Piece struct {
	Side Side
	Kind PieceKind
}

func MakePiece(side Side, kind PieceKind) Piece {
	if kind == NoKind || side == NoSide {
		return Piece{}
	}
	return Piece{Side: side, Kind: kind}
}

func (p Piece) IsEmpty() bool { return p.Kind == NoKind }

// Position = 8x8 board indexed [rank][file]; rank 0 is Black's home row.
// Copying a Position copies every cell.
type Position [Ranks][Files]Piece

type Move struct {
	FromRank  int       `json:"from_rank"`
	FromFile  int       `json:"from_file"`
	ToRank    int       `json:"to_rank"`
	ToFile    int       `json:"to_file"`
	Promotion PieceKind `json:"promotion,omitempty"`
}
