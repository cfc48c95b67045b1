package main

import (
	"flag"
	"log"
	"os/exec"
	"runtime"
	"strings"
	"time"

	"smartchess/internal/engine"
	"smartchess/internal/server/game"
	httpserver "smartchess/internal/server/http"
)

// browserCommand returns the platform command that opens url in the default browser.
func browserCommand(url string) (string, []string) {
	switch runtime.GOOS {
	case "windows":
		return "rundll32", []string{"url.dll,FileProtocolHandler", url}
	case "darwin":
		return "open", []string{url}
	}
	return "xdg-open", []string{url}
}

func openBrowser(url string) {
	name, args := browserCommand(url)
	if err := exec.Command(name, args...).Start(); err != nil {
		log.Printf("open browser %s: %v", url, err)
	}
}

func main() {
	addr := flag.String("addr", ":2888", "listen address")
	webDir := flag.String("web", "", "directory with index.html / js; empty serves the API only")
	depth := flag.Int("depth", engine.DefaultDepth, "default search depth in plies")
	maxDepth := flag.Int("max-depth", engine.MaxDepth, "deepest search a client may request")
	seed := flag.Int64("seed", time.Now().UnixNano(), "evaluation noise seed")
	noise := flag.Int("noise", engine.DefaultNoise, "evaluation noise amplitude; 0 disables")
	origins := flag.String("origins", "*", "CORS allowed origins")
	quiet := flag.Bool("quiet", false, "disable request logging")
	open := flag.Bool("open", false, "open a browser once listening")
	flag.Parse()

	log.SetFlags(log.LstdFlags | log.Lshortfile)

	eval := engine.NewEvaluator(*seed)
	eval.Noise = *noise
	ai := game.NewAI(engine.NewEngine(eval))

	app := httpserver.NewApp(game.NewManager(), ai, httpserver.Config{
		Depth:        *depth,
		MaxDepth:     *maxDepth,
		AllowOrigins: *origins,
		Quiet:        *quiet,
		WebDir:       *webDir,
	})

	log.Printf("listening on %s depth=%d noise=%d seed=%d", *addr, *depth, *noise, *seed)

	if *open && *webDir != "" {
		go func() {
			time.Sleep(100 * time.Millisecond)
			host := *addr
			if strings.HasPrefix(host, ":") {
				host = "127.0.0.1" + host
			}
			openBrowser("http://" + host)
		}()
	}

	log.Fatal(app.Listen(*addr))
}
