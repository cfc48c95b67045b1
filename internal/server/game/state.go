package game

import (
	"time"

	"smartchess/internal/chess"
)

type Status string

const (
	StatusOngoing Status = "ongoing"
	// side to move has no pseudo-legal move; treated as mate whether or not in check
	StatusCheckmate Status = "checkmate"
	// kings can be left en prise; losing one ends the game
	StatusKingCaptured Status = "king_captured"
)

type GameState struct {
	ID        string
	Pos       *chess.Position
	ToMove    chess.Side
	History   []chess.Move
	Status    Status
	CreatedAt time.Time
	UpdatedAt time.Time
}

func statusOf(pos *chess.Position, side chess.Side) Status {
	if !pos.HasKing(side) {
		return StatusKingCaptured
	}
	if len(chess.Generate(pos, side)) == 0 {
		return StatusCheckmate
	}
	return StatusOngoing
}
