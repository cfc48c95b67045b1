package chess

import (
	"errors"
	"testing"
)

func TestInitialFENRoundTrip(t *testing.T) {
	pos, side, err := ParseFEN(InitialFEN)
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if side != White {
		t.Fatalf("side: got=%v want=white", side)
	}
	if *pos != *NewInitialPosition() {
		t.Fatalf("board mismatch:\n%s", pos)
	}
	if got := NewInitialPosition().FEN(White); got != InitialFEN {
		t.Fatalf("encode: got=%q want=%q", got, InitialFEN)
	}
}

func TestParseFENShortForm(t *testing.T) {
	pos, side, err := ParseFEN("4k3/P7/8/8/8/8/8/4K3 b")
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if side != Black {
		t.Fatalf("side: got=%v want=black", side)
	}
	if got := pos[1][0]; got != MakePiece(White, Pawn) {
		t.Fatalf("a7: got=%v want=P", got)
	}
	if got := pos[0][4]; got != MakePiece(Black, King) {
		t.Fatalf("e8: got=%v want=k", got)
	}
	if got := pos[7][4]; got != MakePiece(White, King) {
		t.Fatalf("e1: got=%v want=K", got)
	}
	if got := pos.FEN(Black); got != "4k3/P7/8/8/8/8/8/4K3 b - - 0 1" {
		t.Fatalf("encode: got=%q", got)
	}
}

func TestParseFENErrors(t *testing.T) {
	tests := []string{
		"",
		"hello",
		"8/8/8/8/8/8/8/8 w",
		"4k3/8/8/8/8/8/8/4K3 w KQ",
		"4k3/8/8/8/8/8/8/4K3 4K3 w - - 0 1 extra",
	}
	for _, fen := range tests {
		if _, _, err := ParseFEN(fen); !errors.Is(err, ErrInvalidFEN) {
			t.Errorf("ParseFEN(%q): got err=%v want ErrInvalidFEN", fen, err)
		}
	}
}

func TestValidate(t *testing.T) {
	if err := NewInitialPosition().Validate(); err != nil {
		t.Fatalf("initial position: %v", err)
	}

	tests := []struct {
		name string
		mod  func(p *Position)
	}{
		{"missing king", func(p *Position) { p[7][4] = Piece{} }},
		{"two kings", func(p *Position) { p[4][4] = MakePiece(Black, King) }},
		{"pawn on back rank", func(p *Position) { p[0][0] = MakePiece(White, Pawn) }},
		{"bad kind", func(p *Position) { p[4][4] = Piece{Side: White, Kind: 9} }},
		{"bad side", func(p *Position) { p[4][4] = Piece{Side: 3, Kind: Rook} }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pos := NewInitialPosition()
			tt.mod(pos)
			if err := pos.Validate(); !errors.Is(err, ErrInvalidPosition) {
				t.Fatalf("got err=%v want ErrInvalidPosition", err)
			}
		})
	}
}

func TestParseMove(t *testing.T) {
	tests := []struct {
		in   string
		want Move
	}{
		{"e2e4", Move{FromRank: 6, FromFile: 4, ToRank: 4, ToFile: 4}},
		{"a7a8q", Move{FromRank: 1, FromFile: 0, ToRank: 0, ToFile: 0, Promotion: Queen}},
		{" H1G3 ", Move{FromRank: 7, FromFile: 7, ToRank: 5, ToFile: 6}},
	}
	for _, tt := range tests {
		got, err := ParseMove(tt.in)
		if err != nil {
			t.Fatalf("ParseMove(%q): %v", tt.in, err)
		}
		if got != tt.want {
			t.Fatalf("ParseMove(%q): got=%+v want=%+v", tt.in, got, tt.want)
		}
	}

	for _, bad := range []string{"", "e2", "e9e4", "i2i4", "a7a8n", "e2e4e5"} {
		if _, err := ParseMove(bad); !errors.Is(err, ErrInvalidMove) {
			t.Errorf("ParseMove(%q): got err=%v want ErrInvalidMove", bad, err)
		}
	}
}

func TestHasKing(t *testing.T) {
	pos := NewInitialPosition()
	if !pos.HasKing(White) || !pos.HasKing(Black) {
		t.Fatalf("initial position lacks a king")
	}
	pos[0][4] = Piece{}
	if pos.HasKing(Black) {
		t.Fatalf("black king removed but still found")
	}
	if !pos.HasKing(White) {
		t.Fatalf("white king lost")
	}
}
