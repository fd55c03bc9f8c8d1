// Command klondike-shuffle emits a stream of pseudo-random 52-card decks,
// one 104-character line per shuffle, to feed klondike-solver.
package main

import (
	"bufio"
	"crypto/rand"
	"encoding/binary"
	"fmt"
	mrand "math/rand/v2"
	"os"

	"github.com/alecthomas/kong"

	"github.com/kflex/klondike-solver/internal/card"
)

type cli struct {
	Count int `arg:"" optional:"" default:"1" help:"Number of shuffled decks to emit."`
}

func main() {
	var c cli
	kong.Parse(&c, kong.Description("Emit streams of pseudo-random Klondike deals."))

	rng := mrand.New(newPCG())
	w := bufio.NewWriter(os.Stdout)
	defer w.Flush()

	for i := 0; i < c.Count; i++ {
		deck := card.New()
		deck.Shuffle(func(cards []card.Card) {
			rng.Shuffle(len(cards), func(a, b int) { cards[a], cards[b] = cards[b], cards[a] })
		})
		if _, err := fmt.Fprintln(w, deck.String()); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
	}
}

// newPCG seeds a math/rand/v2 PCG source from crypto/rand, so independent
// process runs never collide on the default time-based seed.
func newPCG() *mrand.PCG {
	var seed [16]byte
	if _, err := rand.Read(seed[:]); err != nil {
		fmt.Fprintln(os.Stderr, "klondike-shuffle: reading random seed:", err)
		os.Exit(1)
	}
	return mrand.NewPCG(
		binary.LittleEndian.Uint64(seed[0:8]),
		binary.LittleEndian.Uint64(seed[8:16]),
	)
}
