package mobile

import (
	"log"
	"time"

	"smartchess/internal/engine"
	"smartchess/internal/server/game"
	httpserver "smartchess/internal/server/http"
)

// StartServer starts the local HTTP server in the background.
// webDir: physical path to the extracted web assets
// port: port to listen on, e.g. "2888"
// depth: default search depth, <= 0 for the engine default
func StartServer(webDir string, port string, depth int) {
	eval := engine.NewEvaluator(time.Now().UnixNano())
	app := httpserver.NewApp(game.NewManager(), game.NewAI(engine.NewEngine(eval)), httpserver.Config{
		Depth:  depth,
		Quiet:  true,
		WebDir: webDir,
	})

	// must not block the caller's UI thread
	go func() {
		if err := app.Listen("127.0.0.1:" + port); err != nil {
			log.Printf("Server Error: %v", err)
		}
	}()
}
