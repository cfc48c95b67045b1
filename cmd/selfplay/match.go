package main

import (
	"fmt"

	"smartchess/internal/chess"
	"smartchess/internal/engine"
)

type Player struct {
	Name  string
	Depth int
}

type Result struct {
	Game   int
	Winner chess.Side // NoSide for a draw
	Reason string
	Plies  int
	Moves  []chess.Move
}

// playGame runs one game from start. A side with no moves loses, as does a side
// whose king has been captured.
func playGame(id int, eng *engine.Engine, white, black Player, start *chess.Position, maxPlies int) Result {
	pos := start
	side := chess.White
	res := Result{Game: id, Winner: chess.NoSide, Reason: "move limit"}

	for ply := 0; ply < maxPlies; ply++ {
		p := white
		if side == chess.Black {
			p = black
		}
		sr := eng.Search(pos, side, engine.SearchConfig{MaxDepth: p.Depth})
		if !sr.HasMove {
			res.Winner = side.Opposite()
			res.Reason = fmt.Sprintf("%v has no moves", side)
			return res
		}
		pos = chess.Apply(pos, sr.BestMove)
		res.Moves = append(res.Moves, sr.BestMove)
		res.Plies++

		if !pos.HasKing(side.Opposite()) {
			res.Winner = side
			res.Reason = "king captured"
			return res
		}
		side = side.Opposite()
	}
	return res
}
