package ws

import (
	"encoding/json"
)

// MessageType names the kind of a websocket message.
type MessageType string

const (
	// client -> server
	MessageTypeMove   MessageType = "move"
	MessageTypeAIMove MessageType = "ai_move"
	MessageTypeState  MessageType = "state"

	// server -> client
	MessageTypeGameState    MessageType = "gameState"
	MessageTypeSearchResult MessageType = "searchResult"
	MessageTypeError        MessageType = "error"
)

type Message struct {
	Type    MessageType     `json:"type"`
	Payload json.RawMessage `json:"payload,omitempty"`
}

type MovePayload struct {
	Move string `json:"move"`
}

type AIMovePayload struct {
	MaxDepth int `json:"max_depth"`
}

type GameStatePayload struct {
	GameID  string   `json:"game_id"`
	FEN     string   `json:"fen"`
	ToMove  string   `json:"to_move"`
	History []string `json:"history"`
	Status  string   `json:"status"`
}

type SearchResultPayload struct {
	BestMove string           `json:"best_move,omitempty"`
	Score    int              `json:"score"`
	Depth    int              `json:"depth"`
	Nodes    int64            `json:"nodes"`
	TimeMs   int64            `json:"time_ms"`
	Game     GameStatePayload `json:"game"`
}

type ErrorPayload struct {
	Error string `json:"error"`
}
