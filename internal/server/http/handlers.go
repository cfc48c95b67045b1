package httpserver

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"

	"smartchess/internal/chess"
	"smartchess/internal/engine"
	"smartchess/internal/server/game"
)

type Handler struct {
	games    *game.Manager
	ai       *game.AI
	depth    int // used when a request does not set max_depth
	maxDepth int
}

func NewHandler(games *game.Manager, ai *game.AI, depth, maxDepth int) *Handler {
	if maxDepth <= 0 {
		maxDepth = engine.MaxDepth
	}
	if depth <= 0 {
		depth = engine.DefaultDepth
	}
	depth = min(depth, maxDepth)
	return &Handler{games: games, ai: ai, depth: depth, maxDepth: maxDepth}
}

func (h *Handler) handleNewGame(c *fiber.Ctx) error {
	var req NewGameRequest
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&req); err != nil {
			return badJSON(c, err)
		}
	}

	var g game.GameState
	if req.FEN == "" {
		g = h.games.NewGame()
	} else {
		pos, side, err := chess.ParseFEN(req.FEN)
		if err != nil {
			return writeError(c, err)
		}
		g = h.games.NewGameFrom(pos, side)
	}
	log.Printf("new game %s", g.ID)
	return c.JSON(stateToResponse(g))
}

func (h *Handler) handleState(c *fiber.Ctx) error {
	var req GameIDRequest
	if err := c.BodyParser(&req); err != nil {
		return badJSON(c, err)
	}
	g, err := h.games.Get(req.GameID)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(stateToResponse(g))
}

func (h *Handler) handlePlay(c *fiber.Ctx) error {
	var req PlayRequest
	if err := c.BodyParser(&req); err != nil {
		return badJSON(c, err)
	}
	mv, err := chess.ParseMove(req.Move)
	if err != nil {
		return writeError(c, err)
	}
	g, err := h.games.Play(req.GameID, mv)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(stateToResponse(g))
}

func (h *Handler) handleAiMove(c *fiber.Ctx) error {
	var req AiMoveRequest
	if err := c.BodyParser(&req); err != nil {
		return badJSON(c, err)
	}
	depth, err := game.ResolveDepth(req.MaxDepth, h.depth, h.maxDepth)
	if err != nil {
		return writeError(c, err)
	}

	if req.GameID != "" {
		g, res, err := h.games.PlayAI(req.GameID, h.ai, depth)
		if err != nil {
			return writeError(c, err)
		}
		resp := searchToResponse(res)
		state := stateToResponse(g)
		resp.Game = &state
		return c.JSON(resp)
	}

	if req.FEN == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "game_id or fen is required",
		})
	}
	pos, side, err := chess.ParseFEN(req.FEN)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(searchToResponse(h.ai.Search(pos, side, depth)))
}

func (h *Handler) handleMoves(c *fiber.Ctx) error {
	var req MovesRequest
	if err := c.BodyParser(&req); err != nil {
		return badJSON(c, err)
	}
	pos, side, err := chess.ParseFEN(req.FEN)
	if err != nil {
		return writeError(c, err)
	}
	moves := chess.Generate(pos, side)
	return c.JSON(MovesResponse{
		ToMove: side.String(),
		Moves:  movesToDTO(moves),
		Count:  len(moves),
	})
}

func (h *Handler) handleAnalyze(c *fiber.Ctx) error {
	var req AnalyzeRequest
	if err := c.BodyParser(&req); err != nil {
		return badJSON(c, err)
	}
	pos, side, err := chess.ParseFEN(req.FEN)
	if err != nil {
		return writeError(c, err)
	}
	depth, err := game.ResolveDepth(req.MaxDepth, h.depth, h.maxDepth)
	if err != nil {
		return writeError(c, err)
	}
	res, err := h.ai.Analyze(c.UserContext(), pos, side, depth, req.Workers)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(analysisToResponse(res))
}

func badJSON(c *fiber.Ctx, err error) error {
	log.Println("bad json:", err)
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
		"error": "bad json",
	})
}

func writeError(c *fiber.Ctx, err error) error {
	status := fiber.StatusInternalServerError
	switch {
	case errors.Is(err, game.ErrGameNotFound):
		status = fiber.StatusNotFound
	case errors.Is(err, game.ErrIllegalMove),
		errors.Is(err, game.ErrGameOver),
		errors.Is(err, chess.ErrInvalidFEN),
		errors.Is(err, chess.ErrInvalidMove),
		errors.Is(err, game.ErrDepthTooLarge):
		status = fiber.StatusBadRequest
	case errors.Is(err, game.ErrGameChanged):
		status = fiber.StatusConflict
	default:
		log.Println("internal error:", err)
	}
	return c.Status(status).JSON(fiber.Map{
		"error": err.Error(),
	})
}
