package game

import (
	"errors"
	"testing"

	"github.com/google/uuid"

	"smartchess/internal/chess"
)

func mustMove(t *testing.T, s string) chess.Move {
	t.Helper()
	mv, err := chess.ParseMove(s)
	if err != nil {
		t.Fatalf("ParseMove(%q): %v", s, err)
	}
	return mv
}

func TestNewGameAndPlay(t *testing.T) {
	m := NewManager()
	g := m.NewGame()
	if _, err := uuid.Parse(g.ID); err != nil {
		t.Fatalf("id %q is not a uuid: %v", g.ID, err)
	}
	if g.ToMove != chess.White || g.Status != StatusOngoing {
		t.Fatalf("new game: to_move=%v status=%s", g.ToMove, g.Status)
	}

	after, err := m.Play(g.ID, mustMove(t, "e2e3"))
	if err != nil {
		t.Fatalf("play: %v", err)
	}
	if after.ToMove != chess.Black || len(after.History) != 1 {
		t.Fatalf("after e2e3: to_move=%v history=%v", after.ToMove, after.History)
	}
	if got := after.Pos[5][4]; got != chess.MakePiece(chess.White, chess.Pawn) {
		t.Fatalf("e3: got=%v want=P", got)
	}

	// snapshots are independent of the stored game
	after.Pos[5][4] = chess.Piece{}
	stored, err := m.Get(g.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if stored.Pos[5][4].IsEmpty() {
		t.Fatalf("snapshot aliases stored position")
	}
}

func TestPlayErrors(t *testing.T) {
	m := NewManager()
	g := m.NewGame()

	if _, err := m.Play("nope", mustMove(t, "e2e3")); !errors.Is(err, ErrGameNotFound) {
		t.Fatalf("unknown game: got err=%v", err)
	}
	// double step is not a move here
	if _, err := m.Play(g.ID, mustMove(t, "e2e4")); !errors.Is(err, ErrIllegalMove) {
		t.Fatalf("e2e4: got err=%v want ErrIllegalMove", err)
	}
	// black piece on white's turn
	if _, err := m.Play(g.ID, mustMove(t, "e7e6")); !errors.Is(err, ErrIllegalMove) {
		t.Fatalf("e7e6: got err=%v want ErrIllegalMove", err)
	}
}

func TestPromotionFilledIn(t *testing.T) {
	pos, side, err := chess.ParseFEN("k7/3P4/8/8/8/8/8/7K w")
	if err != nil {
		t.Fatal(err)
	}
	m := NewManager()
	g := m.NewGameFrom(pos, side)
	after, err := m.Play(g.ID, mustMove(t, "d7d8"))
	if err != nil {
		t.Fatalf("play: %v", err)
	}
	if got := after.Pos[0][3]; got != chess.MakePiece(chess.White, chess.Queen) {
		t.Fatalf("d8: got=%v want=Q", got)
	}
	if after.History[0].Promotion != chess.Queen {
		t.Fatalf("history move lacks promotion: %v", after.History[0])
	}
}

func TestNoMovesEndsGame(t *testing.T) {
	pos, _, err := chess.ParseFEN("4k3/8/8/4p3/4P3/8/8/4K3 w")
	if err != nil {
		t.Fatal(err)
	}
	pos[7][4] = chess.Piece{}
	m := NewManager()
	g := m.NewGameFrom(pos, chess.White)
	if g.Status != StatusCheckmate {
		t.Fatalf("status: got=%s want=%s", g.Status, StatusCheckmate)
	}
	if _, err := m.Play(g.ID, mustMove(t, "e4e5")); !errors.Is(err, ErrGameOver) {
		t.Fatalf("got err=%v want ErrGameOver", err)
	}
}

func TestKingCaptureEndsGame(t *testing.T) {
	pos, side, err := chess.ParseFEN("4k2R/8/8/8/8/8/8/4K3 w")
	if err != nil {
		t.Fatal(err)
	}
	m := NewManager()
	g := m.NewGameFrom(pos, side)

	after, err := m.Play(g.ID, mustMove(t, "h8e8"))
	if err != nil {
		t.Fatalf("play: %v", err)
	}
	if after.Status != StatusKingCaptured {
		t.Fatalf("status: got=%s want=%s", after.Status, StatusKingCaptured)
	}
	// black still has king moves on paper, but the game is over
	if _, err := m.Play(g.ID, mustMove(t, "e1e2")); !errors.Is(err, ErrGameOver) {
		t.Fatalf("got err=%v want ErrGameOver", err)
	}
}

func TestStaleSearchIsRejected(t *testing.T) {
	m := NewManager()
	g := m.NewGame()
	if _, err := m.Play(g.ID, mustMove(t, "e2e3")); err != nil {
		t.Fatal(err)
	}

	// a search started at ply 0 finishes after e2e3 was played
	_, err := m.play(g.ID, mustMove(t, "e7e6"), 0)
	if !errors.Is(err, ErrGameChanged) {
		t.Fatalf("got err=%v want ErrGameChanged", err)
	}
	if _, err := m.play(g.ID, mustMove(t, "e7e6"), 1); err != nil {
		t.Fatalf("current ply: %v", err)
	}
}

func TestResolveDepth(t *testing.T) {
	tests := []struct {
		requested, def, limit int
		want                  int
		wantErr               bool
	}{
		{0, 3, 5, 3, false},
		{-1, 3, 5, 3, false},
		{4, 3, 5, 4, false},
		{5, 3, 5, 5, false},
		{6, 3, 5, 0, true},
	}
	for _, tt := range tests {
		got, err := ResolveDepth(tt.requested, tt.def, tt.limit)
		if tt.wantErr {
			if !errors.Is(err, ErrDepthTooLarge) {
				t.Fatalf("ResolveDepth(%d): got err=%v want ErrDepthTooLarge", tt.requested, err)
			}
			continue
		}
		if err != nil || got != tt.want {
			t.Fatalf("ResolveDepth(%d): got=%d err=%v want=%d", tt.requested, got, err, tt.want)
		}
	}
}
