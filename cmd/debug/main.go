package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"time"

	"smartchess/internal/chess"
	"smartchess/internal/engine"
)

func main() {
	fen := flag.String("fen", chess.InitialFEN, "position to inspect")
	perft := flag.Int("perft", 2, "perft depth; 0 skips")
	depth := flag.Int("depth", 0, "also analyze the root moves to this depth")
	flag.Parse()

	log.SetFlags(log.LstdFlags | log.Lshortfile)

	pos, side, err := chess.ParseFEN(*fen)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println(pos)
	fmt.Println("FEN:", pos.FEN(side))
	fmt.Println("Static eval:", engine.Evaluate(pos))

	moves := chess.Generate(pos, side)
	fmt.Println("Pseudo legal moves:", len(moves))
	for d := 1; d <= *perft; d++ {
		start := time.Now()
		n := chess.Perft(pos, side, d)
		fmt.Printf("perft(%d) = %d (%v)\n", d, n, time.Since(start))
	}

	if *depth > 0 {
		e := engine.NewEngine(nil)
		an, err := e.Analyze(context.Background(), pos, side, *depth, 0)
		if err != nil {
			log.Fatal(err)
		}
		for _, l := range an.Lines {
			fmt.Printf("%-6s %d\n", l.Move, l.Score)
		}
		fmt.Printf("best %v score %d nodes %d time %v\n", an.BestMove, an.Score, an.Nodes, an.TimeUsed)
	}
}
