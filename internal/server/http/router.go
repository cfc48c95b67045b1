package httpserver

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/websocket/v2"

	"smartchess/internal/server/game"
	"smartchess/internal/server/ws"
)

type Config struct {
	Depth        int    // default search depth
	MaxDepth     int    // deepest depth a request may ask for; 0 means engine.MaxDepth
	AllowOrigins string // CORS; empty means "*"
	Quiet        bool   // no request log
	WebDir       string // static files served at /; empty disables
}

// NewApp wires the JSON API under /api and the game socket under /ws.
func NewApp(games *game.Manager, ai *game.AI, cfg Config) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName: "smartchess",
	})

	origins := cfg.AllowOrigins
	if origins == "" {
		origins = "*"
	}
	app.Use(cors.New(cors.Config{
		AllowOrigins: origins,
		AllowHeaders: "Origin, Content-Type, Accept",
		AllowMethods: "GET, POST, OPTIONS",
	}))
	if !cfg.Quiet {
		app.Use(logger.New())
	}

	h := NewHandler(games, ai, cfg.Depth, cfg.MaxDepth)
	api := app.Group("/api")
	api.Post("/new_game", h.handleNewGame)
	api.Post("/state", h.handleState)
	api.Post("/play", h.handlePlay)
	api.Post("/ai_move", h.handleAiMove)
	api.Post("/moves", h.handleMoves)
	api.Post("/analyze", h.handleAnalyze)

	wsc := ws.NewController(games, ai, cfg.Depth, cfg.MaxDepth)
	app.Use("/ws", wsUpgrade)
	app.Get("/ws/game/:gameId", websocket.New(wsc.HandleConnection, websocket.Config{
		ReadBufferSize:  1024,
		WriteBufferSize: 1024,
	}))

	if cfg.WebDir != "" {
		app.Static("/", cfg.WebDir)
	}

	return app
}

func wsUpgrade(c *fiber.Ctx) error {
	if !websocket.IsWebSocketUpgrade(c) {
		return fiber.ErrUpgradeRequired
	}
	return c.Next()
}
