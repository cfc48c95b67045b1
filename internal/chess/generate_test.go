package chess

import (
	"math/rand"
	"testing"
)

func mustBoard(t *testing.T, s string) *Position {
	t.Helper()
	pos := parseBoard(s)
	return &pos
}

func TestGenerateInitialPosition(t *testing.T) {
	pos := NewInitialPosition()
	for _, side := range []Side{White, Black} {
		moves := Generate(pos, side)
		// single-step pawns: 8 pushes + 4 knight moves
		if len(moves) != 12 {
			t.Fatalf("%v: got=%d moves want=12", side, len(moves))
		}
	}

	moves := Generate(pos, White)
	want := map[int]string{0: "a2a3", 7: "h2h3", 8: "b1a3", 9: "b1c3", 10: "g1f3", 11: "g1h3"}
	for i, s := range want {
		if got := moves[i].String(); got != s {
			t.Fatalf("move %d: got=%s want=%s", i, got, s)
		}
	}
}

func TestPerft(t *testing.T) {
	tests := []struct {
		depth int
		nodes int
	}{
		{1, 12},
		{2, 144},
	}
	for _, test := range tests {
		if got := Perft(NewInitialPosition(), White, test.depth); got != test.nodes {
			t.Errorf("perft(%d): got=%d want=%d", test.depth, got, test.nodes)
		}
	}
}

func TestPawnPromotion(t *testing.T) {
	pos := mustBoard(t, `
..n.....
...P....
........
........
........
........
p.......
........`)

	white := Generate(pos, White)
	if len(white) != 2 {
		t.Fatalf("white: got=%d moves want=2: %v", len(white), white)
	}
	if white[0].String() != "d7d8q" || white[1].String() != "d7c8q" {
		t.Fatalf("white: got=%v want=[d7d8q d7c8q]", white)
	}
	for _, m := range white {
		if m.Promotion != Queen {
			t.Fatalf("move %v: promotion=%v want=queen", m, m.Promotion)
		}
		next := Apply(pos, m)
		if got := next[m.ToRank][m.ToFile]; got != MakePiece(White, Queen) {
			t.Fatalf("after %v: got=%v want=Q", m, got)
		}
		if !next[m.FromRank][m.FromFile].IsEmpty() {
			t.Fatalf("after %v: source square not empty", m)
		}
	}

	black := Generate(pos, Black)
	var promo *Move
	for i := range black {
		if black[i].FromRank == 6 {
			promo = &black[i]
		}
	}
	if promo == nil || promo.String() != "a2a1q" {
		t.Fatalf("black promotion missing: %v", black)
	}
	if got := Apply(pos, *promo)[7][0]; got != MakePiece(Black, Queen) {
		t.Fatalf("black promotion: got=%v want=q", got)
	}
}

func TestPawnBlocked(t *testing.T) {
	pos := mustBoard(t, `
........
........
........
....p...
....P...
........
........
........`)
	if moves := Generate(pos, White); len(moves) != 0 {
		t.Fatalf("blocked pawn: got=%v want none", moves)
	}
	if moves := Generate(pos, Black); len(moves) != 0 {
		t.Fatalf("blocked pawn: got=%v want none", moves)
	}
}

func TestSlidingStopsAtPieces(t *testing.T) {
	pos := mustBoard(t, `
........
........
........
........
.p..R.P.
........
........
........`)
	var rook []Move
	for _, m := range Generate(pos, White) {
		if m.FromRank == 4 && m.FromFile == 4 {
			rook = append(rook, m)
		}
	}
	if len(rook) != 11 {
		t.Fatalf("rook: got=%d moves want=11: %v", len(rook), rook)
	}
	captures := 0
	for _, m := range rook {
		if m.ToRank == 4 && m.ToFile == 6 {
			t.Fatalf("rook moved onto own pawn: %v", m)
		}
		if m.ToRank == 4 && m.ToFile < 1 {
			t.Fatalf("rook slid through enemy pawn: %v", m)
		}
		if m.ToRank == 4 && m.ToFile == 1 {
			captures++
		}
	}
	if captures != 1 {
		t.Fatalf("rook captures: got=%d want=1", captures)
	}
}

func TestKingAndKnightOrder(t *testing.T) {
	pos := mustBoard(t, `
........
........
........
...N....
........
........
........
K.......`)
	moves := Generate(pos, White)
	got := make([]string, len(moves))
	for i, m := range moves {
		got[i] = m.String()
	}
	want := []string{
		"d5c7", "d5e7", "d5b6", "d5f6", "d5b4", "d5f4", "d5c3", "d5e3",
		"a1a2", "a1b2", "a1b1",
	}
	if len(got) != len(want) {
		t.Fatalf("got=%v want=%v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("move %d: got=%s want=%s (all %v)", i, got[i], want[i], got)
		}
	}
}

// Random pseudo-legal playouts: no move lands on a friendly piece, coordinates stay
// on the board, promotion is set exactly when a pawn reaches its far rank, and
// Apply never touches its input.
func TestGenerateInvariantsOnPlayouts(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for game := 0; game < 20; game++ {
		pos := NewInitialPosition()
		side := White
		for ply := 0; ply < 120; ply++ {
			moves := Generate(pos, side)
			if len(moves) == 0 {
				break
			}
			for _, m := range moves {
				if !onBoard(m.FromRank, m.FromFile) || !onBoard(m.ToRank, m.ToFile) {
					t.Fatalf("off-board move %+v", m)
				}
				mover := pos[m.FromRank][m.FromFile]
				if mover.Side != side || mover.IsEmpty() {
					t.Fatalf("move %v does not start on own piece", m)
				}
				dst := pos[m.ToRank][m.ToFile]
				if !dst.IsEmpty() && dst.Side == side {
					t.Fatalf("move %v captures own piece %v", m, dst)
				}
				wantPromo := mover.Kind == Pawn && m.ToRank == farRank(side)
				if (m.Promotion == Queen) != wantPromo {
					t.Fatalf("move %v: promotion=%v want promotion=%v", m, m.Promotion, wantPromo)
				}
			}

			snapshot := *pos
			next := Apply(pos, moves[rng.Intn(len(moves))])
			if *pos != snapshot {
				t.Fatalf("Apply modified its input at ply %d", ply)
			}
			pos = next
			side = side.Opposite()
		}
	}
}
