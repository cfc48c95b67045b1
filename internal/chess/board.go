package chess

import (
	"errors"
	"fmt"
	"strings"
	"unicode"
)

const (
	Ranks = 8
	Files = 8
)

func onBoard(rank, file int) bool {
	return rank >= 0 && rank < Ranks && file >= 0 && file < Files
}

// pawn direction: White moves toward rank 0, Black toward rank 7
func pawnDir(side Side) int {
	if side == White {
		return -1
	}
	if side == Black {
		return +1
	}
	return 0
}

// promotion rank for side
func farRank(side Side) int {
	if side == White {
		return 0
	}
	return Ranks - 1
}

var letterToKind = map[rune]PieceKind{
	'p': Pawn,
	'n': Knight,
	'b': Bishop,
	'r': Rook,
	'q': Queen,
	'k': King,
}

func kindLetter(kind PieceKind) rune {
	for k, v := range letterToKind {
		if v == kind {
			return k
		}
	}
	return 0
}

// String returns the FEN letter: upper case for White, lower case for Black, "." for empty.
func (p Piece) String() string {
	base := kindLetter(p.Kind)
	if base == 0 {
		return "."
	}
	if p.Side == White {
		return string(unicode.ToUpper(base))
	}
	return string(base)
}

func (k PieceKind) String() string {
	switch k {
	case Pawn:
		return "pawn"
	case Knight:
		return "knight"
	case Bishop:
		return "bishop"
	case Rook:
		return "rook"
	case Queen:
		return "queen"
	case King:
		return "king"
	}
	return "none"
}

const initialBoardString = `rnbqkbnr
pppppppp
........
........
........
........
PPPPPPPP
RNBQKBNR`

func parseBoard(s string) Position {
	var pos Position
	lines := make([]string, 0, Ranks)
	for _, line := range strings.Split(s, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		lines = append(lines, line)
	}
	if len(lines) != Ranks {
		panic("board string must have 8 ranks")
	}
	for r := 0; r < Ranks; r++ {
		if len(lines[r]) != Files {
			panic("board string rank must have 8 files")
		}
		for f, ch := range lines[r] {
			if ch == '.' {
				continue
			}
			kind, ok := letterToKind[unicode.ToLower(ch)]
			if !ok {
				panic("unknown piece letter: " + string(ch))
			}
			side := Black
			if unicode.IsUpper(ch) {
				side = White
			}
			pos[r][f] = MakePiece(side, kind)
		}
	}
	return pos
}

func NewInitialPosition() *Position {
	pos := parseBoard(initialBoardString)
	return &pos
}

// String renders the board one rank per line, rank 0 first.
func (p *Position) String() string {
	var sb strings.Builder
	for r := 0; r < Ranks; r++ {
		for f := 0; f < Files; f++ {
			sb.WriteString(p[r][f].String())
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

// Square notation: file a..h, rank index 0 is "8".
func squareName(rank, file int) string {
	return fmt.Sprintf("%c%d", 'a'+file, Ranks-rank)
}

func (m Move) String() string {
	s := squareName(m.FromRank, m.FromFile) + squareName(m.ToRank, m.ToFile)
	if m.Promotion != NoKind {
		s += string(kindLetter(m.Promotion))
	}
	return s
}

var ErrInvalidMove = errors.New("invalid move notation")

// ParseMove parses coordinate notation such as "e2e4" or "a7a8q".
func ParseMove(s string) (Move, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if len(s) != 4 && len(s) != 5 {
		return Move{}, fmt.Errorf("%w: %q", ErrInvalidMove, s)
	}
	parse := func(f, r byte) (int, int, bool) {
		if f < 'a' || f > 'h' || r < '1' || r > '8' {
			return 0, 0, false
		}
		return Ranks - int(r-'0'), int(f - 'a'), true
	}
	fr, ff, ok1 := parse(s[0], s[1])
	tr, tf, ok2 := parse(s[2], s[3])
	if !ok1 || !ok2 {
		return Move{}, fmt.Errorf("%w: %q", ErrInvalidMove, s)
	}
	m := Move{FromRank: fr, FromFile: ff, ToRank: tr, ToFile: tf}
	if len(s) == 5 {
		kind, ok := letterToKind[rune(s[4])]
		if !ok || kind != Queen {
			return Move{}, fmt.Errorf("%w: only queen promotion is supported: %q", ErrInvalidMove, s)
		}
		m.Promotion = Queen
	}
	return m, nil
}

var ErrInvalidPosition = errors.New("invalid position")

// Validate checks the invariants the move generator and evaluator rely on.
// It is meant for the boundary where positions enter the engine.
func (p *Position) Validate() error {
	kings := [2]int{}
	for r := 0; r < Ranks; r++ {
		for f := 0; f < Files; f++ {
			pc := p[r][f]
			if pc.IsEmpty() {
				if pc.Side != White && pc.Side != NoSide {
					return fmt.Errorf("%w: %s: empty cell with side %d", ErrInvalidPosition, squareName(r, f), pc.Side)
				}
				continue
			}
			if pc.Kind < Pawn || pc.Kind > King {
				return fmt.Errorf("%w: %s: unknown piece kind %d", ErrInvalidPosition, squareName(r, f), pc.Kind)
			}
			if pc.Side != White && pc.Side != Black {
				return fmt.Errorf("%w: %s: unknown side %d", ErrInvalidPosition, squareName(r, f), pc.Side)
			}
			if pc.Kind == King {
				kings[pc.Side]++
			}
			if pc.Kind == Pawn && (r == 0 || r == Ranks-1) {
				return fmt.Errorf("%w: %s: pawn on back rank", ErrInvalidPosition, squareName(r, f))
			}
		}
	}
	for side, n := range kings {
		if n != 1 {
			return fmt.Errorf("%w: %s has %d kings", ErrInvalidPosition, Side(side), n)
		}
	}
	return nil
}

// HasKing reports whether side still has its king on the board.
func (p *Position) HasKing(side Side) bool {
	king := MakePiece(side, King)
	for r := 0; r < Ranks; r++ {
		for f := 0; f < Files; f++ {
			if p[r][f] == king {
				return true
			}
		}
	}
	return false
}
