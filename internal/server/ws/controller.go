package ws

import (
	"encoding/json"
	"fmt"
	"log"

	"github.com/gofiber/websocket/v2"

	"smartchess/internal/chess"
	"smartchess/internal/engine"
	"smartchess/internal/server/game"
)

// Conn is the part of *websocket.Conn the controller needs.
type Conn interface {
	ReadMessage() (int, []byte, error)
	WriteJSON(v interface{}) error
}

type Controller struct {
	games    *game.Manager
	ai       *game.AI
	depth    int
	maxDepth int
}

func NewController(games *game.Manager, ai *game.AI, depth, maxDepth int) *Controller {
	if maxDepth <= 0 {
		maxDepth = engine.MaxDepth
	}
	if depth <= 0 {
		depth = engine.DefaultDepth
	}
	depth = min(depth, maxDepth)
	return &Controller{games: games, ai: ai, depth: depth, maxDepth: maxDepth}
}

// HandleConnection serves one client of game gameID until the socket closes.
// The current state is sent first.
func (wsc *Controller) HandleConnection(c *websocket.Conn) {
	gameID := c.Params("gameId")
	wsc.Serve(gameID, c)
	c.Close()
}

func (wsc *Controller) Serve(gameID string, c Conn) {
	g, err := wsc.games.Get(gameID)
	if err != nil {
		wsc.sendError(c, err)
		return
	}
	wsc.send(c, MessageTypeGameState, statePayload(g))

	for {
		messageType, message, err := c.ReadMessage()
		if err != nil {
			log.Printf("ws read game=%s: %v", gameID, err)
			return
		}
		if messageType != websocket.TextMessage {
			continue
		}

		var msg Message
		if err := json.Unmarshal(message, &msg); err != nil {
			log.Printf("ws parse error: %v", err)
			wsc.sendError(c, fmt.Errorf("bad message: %w", err))
			continue
		}
		if err := wsc.handleMessage(gameID, c, msg); err != nil {
			log.Printf("ws handle %s: %v", msg.Type, err)
			wsc.sendError(c, err)
		}
	}
}

func (wsc *Controller) handleMessage(gameID string, c Conn, msg Message) error {
	switch msg.Type {
	case MessageTypeMove:
		var p MovePayload
		if err := json.Unmarshal(msg.Payload, &p); err != nil {
			return err
		}
		mv, err := chess.ParseMove(p.Move)
		if err != nil {
			return err
		}
		g, err := wsc.games.Play(gameID, mv)
		if err != nil {
			return err
		}
		return wsc.send(c, MessageTypeGameState, statePayload(g))

	case MessageTypeAIMove:
		var p AIMovePayload
		if len(msg.Payload) > 0 {
			if err := json.Unmarshal(msg.Payload, &p); err != nil {
				return err
			}
		}
		depth, err := game.ResolveDepth(p.MaxDepth, wsc.depth, wsc.maxDepth)
		if err != nil {
			return err
		}
		g, res, err := wsc.games.PlayAI(gameID, wsc.ai, depth)
		if err != nil {
			return err
		}
		out := SearchResultPayload{
			Score:  res.Score,
			Depth:  res.Depth,
			Nodes:  res.Nodes,
			TimeMs: res.TimeUsed.Milliseconds(),
			Game:   statePayload(g),
		}
		if res.HasMove {
			out.BestMove = res.BestMove.String()
		}
		return wsc.send(c, MessageTypeSearchResult, out)

	case MessageTypeState:
		g, err := wsc.games.Get(gameID)
		if err != nil {
			return err
		}
		return wsc.send(c, MessageTypeGameState, statePayload(g))

	default:
		return fmt.Errorf("unknown message type: %s", msg.Type)
	}
}

func (wsc *Controller) send(c Conn, t MessageType, payload any) error {
	raw, err := json.Marshal(payload)
	if err != nil {
		return err
	}
	return c.WriteJSON(Message{Type: t, Payload: raw})
}

func (wsc *Controller) sendError(c Conn, err error) {
	if werr := wsc.send(c, MessageTypeError, ErrorPayload{Error: err.Error()}); werr != nil {
		log.Printf("ws write error: %v", werr)
	}
}

func statePayload(g game.GameState) GameStatePayload {
	history := make([]string, len(g.History))
	for i, m := range g.History {
		history[i] = m.String()
	}
	return GameStatePayload{
		GameID:  g.ID,
		FEN:     g.Pos.FEN(g.ToMove),
		ToMove:  g.ToMove.String(),
		History: history,
		Status:  string(g.Status),
	}
}
