package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"strings"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"smartchess/internal/chess"
	"smartchess/internal/engine"
)

func main() {
	games := flag.Int("games", 10, "number of games to play")
	concurrency := flag.Int("concurrency", 4, "games played at once")
	depth := flag.Int("depth", 2, "search depth of the first player")
	opponent := flag.Int("opponent-depth", 0, "search depth of the second player; 0 means -depth")
	maxPlies := flag.Int("maxplies", 200, "plies before a game is called a draw")
	seed := flag.Int64("seed", time.Now().UnixNano(), "evaluation noise seed; game i uses seed+i")
	noise := flag.Int("noise", engine.DefaultNoise, "evaluation noise amplitude")
	fen := flag.String("fen", chess.InitialFEN, "start position")
	verbose := flag.Bool("v", false, "print every game's moves")
	flag.Parse()

	log.SetFlags(log.LstdFlags | log.Lshortfile)

	start, side, err := chess.ParseFEN(*fen)
	if err != nil {
		log.Fatal(err)
	}
	if side != chess.White {
		log.Fatalf("start position must have white to move")
	}
	if *opponent <= 0 {
		*opponent = *depth
	}
	a := Player{Name: fmt.Sprintf("depth %d", *depth), Depth: *depth}
	b := Player{Name: fmt.Sprintf("depth %d", *opponent), Depth: *opponent}
	if a.Name == b.Name {
		a.Name += " (A)"
		b.Name += " (B)"
	}

	var (
		mu      sync.Mutex
		results []Result
	)
	began := time.Now()
	g, ctx := errgroup.WithContext(context.Background())
	g.SetLimit(*concurrency)
	for i := 0; i < *games; i++ {
		i := i
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			eval := engine.NewEvaluator(*seed + int64(i))
			eval.Noise = *noise
			white, black := a, b
			if i%2 == 1 {
				white, black = b, a
			}
			r := playGame(i, engine.NewEngine(eval), white, black, start, *maxPlies)
			log.Printf("game %d: white=[%s] black=[%s] winner=%v plies=%d (%s)",
				i+1, white.Name, black.Name, r.Winner, r.Plies, r.Reason)

			mu.Lock()
			results = append(results, r)
			mu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		log.Fatal(err)
	}

	aWins, bWins, draws := 0, 0, 0
	for _, r := range results {
		switch {
		case r.Winner == chess.NoSide:
			draws++
		case (r.Winner == chess.White) == (r.Game%2 == 0):
			aWins++
		default:
			bWins++
		}
		if *verbose {
			mv := make([]string, len(r.Moves))
			for i, m := range r.Moves {
				mv[i] = m.String()
			}
			fmt.Printf("game %d: %s\n", r.Game+1, strings.Join(mv, " "))
		}
	}

	fmt.Printf("\n=== Final Score (%d games, %v) ===\n", len(results), time.Since(began).Round(time.Millisecond))
	fmt.Printf("%s: %d\n", a.Name, aWins)
	fmt.Printf("%s: %d\n", b.Name, bWins)
	fmt.Printf("Draws: %d\n", draws)
}
