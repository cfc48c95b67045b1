package httpserver

import (
	"smartchess/internal/chess"
	"smartchess/internal/engine"
	"smartchess/internal/server/game"
)

type MoveDTO struct {
	UCI       string `json:"uci"` // e2e3, d7d8q
	FromRank  int    `json:"from_rank"`
	FromFile  int    `json:"from_file"`
	ToRank    int    `json:"to_rank"`
	ToFile    int    `json:"to_file"`
	Promotion bool   `json:"promotion,omitempty"`
}

func moveToDTO(m chess.Move) MoveDTO {
	return MoveDTO{
		UCI:       m.String(),
		FromRank:  m.FromRank,
		FromFile:  m.FromFile,
		ToRank:    m.ToRank,
		ToFile:    m.ToFile,
		Promotion: m.Promotion == chess.Queen,
	}
}

func movesToDTO(ms []chess.Move) []MoveDTO {
	out := make([]MoveDTO, len(ms))
	for i, m := range ms {
		out[i] = moveToDTO(m)
	}
	return out
}

// NewGameRequest: empty FEN means the standard start position.
type NewGameRequest struct {
	FEN string `json:"fen"`
}

type GameIDRequest struct {
	GameID string `json:"game_id"`
}

type PlayRequest struct {
	GameID string `json:"game_id"`
	Move   string `json:"move"` // coordinate notation
}

// AiMoveRequest searches either a stored game (played on success) or a bare FEN.
type AiMoveRequest struct {
	GameID   string `json:"game_id"`
	FEN      string `json:"fen"`
	MaxDepth int    `json:"max_depth"`
}

type MovesRequest struct {
	FEN string `json:"fen"`
}

type AnalyzeRequest struct {
	FEN      string `json:"fen"`
	MaxDepth int    `json:"max_depth"`
	Workers  int    `json:"workers"` // <= 0: one per CPU
}

type LineDTO struct {
	Move  MoveDTO `json:"move"`
	Score int     `json:"score"`
}

type AnalyzeResponse struct {
	AiMoveResponse
	Lines []LineDTO `json:"lines"`
}

type StateResponse struct {
	GameID     string    `json:"game_id"`
	FEN        string    `json:"fen"`
	ToMove     string    `json:"to_move"`
	LegalMoves []MoveDTO `json:"legal_moves"`
	History    []string  `json:"history"`
	Status     string    `json:"status"`
}

type AiMoveResponse struct {
	BestMove *MoveDTO       `json:"best_move"`
	Score    int            `json:"score"`
	Depth    int            `json:"depth"`
	Nodes    int64          `json:"nodes"`
	TimeMs   int64          `json:"time_ms"`
	Status   string         `json:"status"` // "ok" / "no_moves"
	Game     *StateResponse `json:"game,omitempty"`
}

type MovesResponse struct {
	ToMove string    `json:"to_move"`
	Moves  []MoveDTO `json:"moves"`
	Count  int       `json:"count"`
}

func stateToResponse(g game.GameState) StateResponse {
	history := make([]string, len(g.History))
	for i, m := range g.History {
		history[i] = m.String()
	}
	return StateResponse{
		GameID:     g.ID,
		FEN:        g.Pos.FEN(g.ToMove),
		ToMove:     g.ToMove.String(),
		LegalMoves: movesToDTO(chess.Generate(g.Pos, g.ToMove)),
		History:    history,
		Status:     string(g.Status),
	}
}

func searchToResponse(res engine.SearchResult) AiMoveResponse {
	resp := AiMoveResponse{
		Score:  res.Score,
		Depth:  res.Depth,
		Nodes:  res.Nodes,
		TimeMs: res.TimeUsed.Milliseconds(),
		Status: "no_moves",
	}
	if res.HasMove {
		mv := moveToDTO(res.BestMove)
		resp.BestMove = &mv
		resp.Status = "ok"
	}
	return resp
}

func analysisToResponse(a engine.Analysis) AnalyzeResponse {
	lines := make([]LineDTO, len(a.Lines))
	for i, l := range a.Lines {
		lines[i] = LineDTO{Move: moveToDTO(l.Move), Score: l.Score}
	}
	return AnalyzeResponse{
		AiMoveResponse: searchToResponse(a.SearchResult),
		Lines:          lines,
	}
}
