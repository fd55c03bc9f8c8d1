// Command klondike-solver reads shuffled decks from standard input, one
// 104-character line per deck, and solves each by exhaustive depth-first
// search with pruning. For each deck it prints an optional stream of
// per-move textual snapshots followed by a single JSON result envelope.
package main

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/alecthomas/kong"
	"github.com/rs/zerolog"

	"github.com/kflex/klondike-solver/internal/card"
	"github.com/kflex/klondike-solver/internal/config"
	"github.com/kflex/klondike-solver/internal/envelope"
	"github.com/kflex/klondike-solver/internal/klondike"
	"github.com/kflex/klondike-solver/internal/render"
	"github.com/kflex/klondike-solver/internal/solver"
	"github.com/kflex/klondike-solver/internal/stats"
)

// version is the implementation tag reported in every result envelope.
const version = "klondike-solver/1.0"

// cli is the flag/argument surface. TimeoutSeconds is the one optional
// positional (default 30); everything else enriches it for a real driver.
type cli struct {
	TimeoutSeconds float64 `arg:"" optional:"" default:"30" help:"Per-deck search budget, in seconds."`

	DrawSize    int    `help:"Override the configured draw size (0 keeps the config/default)." default:"0"`
	TableauSize int    `help:"Override the configured tableau column count (0 keeps the config/default)." default:"0"`
	CacheSize   int    `help:"Transposition cache capacity (0 uses the built-in default)." default:"0"`
	Snapshots   bool   `help:"Emit a textual snapshot after every applied move, before the envelope."`
	ConfigPath  string `help:"Override the config file path (default ~/.klondike-solver/config.json)."`
	StatsPath   string `help:"Override the stats file path (default ~/.klondike-solver/stats.json)."`
	Debug       bool   `help:"Log search progress at debug level."`
}

func main() {
	var c cli
	kong.Parse(&c, kong.Description("Exhaustive Klondike solitaire solver."))

	level := zerolog.InfoLevel
	if c.Debug {
		level = zerolog.DebugLevel
	}
	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).Level(level).With().Timestamp().Logger()

	cfgStore, err := config.LoadFrom(c.ConfigPath)
	if err != nil {
		logger.Error().Err(err).Msg("loading config")
	}
	rules := cfgStore.Config.Rules()
	if c.DrawSize > 0 {
		rules.DrawSize = c.DrawSize
	}
	if c.TableauSize > 0 {
		rules.TableauSize = c.TableauSize
	}
	rules = rules.Normalize()

	statsStore, err := stats.LoadFrom(c.StatsPath)
	if err != nil {
		logger.Error().Err(err).Msg("loading stats")
	}

	timeout := time.Duration(c.TimeoutSeconds * float64(time.Second))

	scanner := bufio.NewScanner(os.Stdin)

	exitCode := 0
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := scanner.Text()
		if line == "" {
			continue
		}

		deck, err := card.ParseDeck(line)
		if err != nil {
			logger.Error().Err(err).Int("line", lineNo).Msg("parsing deck")
			exitCode = 1
			continue
		}

		result, winningMoves := solveOne(deck, rules, c, timeout, logger)
		statsStore.Record(result.Status)

		if c.Snapshots && result.Status == envelope.StatusWin {
			if err := emitSnapshots(deck, rules, winningMoves); err != nil {
				logger.Error().Err(err).Msg("writing snapshots")
			}
		}
		if err := writeEnvelope(result); err != nil {
			logger.Error().Err(err).Msg("writing envelope")
			exitCode = 1
		}
	}
	if err := scanner.Err(); err != nil {
		logger.Error().Err(err).Msg("reading stdin")
		exitCode = 1
	}

	if err := statsStore.Save(); err != nil {
		logger.Error().Err(err).Msg("saving stats")
	}

	os.Exit(exitCode)
}

// solveOne runs one solve and returns both the result envelope and the
// raw winning move list (nil unless the status is "win"), so the caller
// can render snapshots without round-tripping back through the envelope's
// string move-kind tags.
func solveOne(deck card.Deck, rules klondike.Rules, c cli, timeout time.Duration, logger zerolog.Logger) (envelope.Result, []klondike.Move) {
	game := klondike.NewGame(rules, deck)
	s := solver.New(game, c.CacheSize, solver.ZerologDiagnostics{Logger: logger})
	res := s.Solve(timeout)

	out := envelope.Result{
		Deck:            deckStrings(deck),
		MovesConsidered: res.Calls,
		ElapsedSeconds:  res.Elapsed.Seconds(),
		TimeoutSeconds:  c.TimeoutSeconds,
		Version:         version,
	}

	switch {
	case res.TimedOut:
		out.Status = envelope.StatusTimeout
	case res.Won():
		if verifyReplay(rules, deck, res.Moves) {
			out.Status = envelope.StatusWin
			out.WinningMoves = envelope.FromMoves(res.Moves)
			return out, res.Moves
		}
		logger.Error().Msg("winning move sequence failed replay verification")
		out.Status = envelope.StatusLose
	default:
		out.Status = envelope.StatusLose
	}

	return out, nil
}

// verifyReplay replays moves against a fresh game built from deck,
// confirming every move is legal at the time it's applied and that the
// replayed game ends won. This guards against a solver bug producing a
// move list that looks winning but isn't actually legal.
func verifyReplay(rules klondike.Rules, deck card.Deck, moves []klondike.Move) bool {
	g := klondike.NewGame(rules, deck)
	for _, m := range moves {
		if !g.IsValid(m) {
			return false
		}
		g.Apply(m)
	}
	return g.IsWon()
}

func deckStrings(deck card.Deck) []string {
	out := make([]string, len(deck))
	for i, c := range deck {
		out[i] = c.String()
	}
	return out
}

func emitSnapshots(deck card.Deck, rules klondike.Rules, moves []klondike.Move) error {
	g := klondike.NewGame(rules, deck)
	w := bufio.NewWriter(os.Stdout)
	defer w.Flush()

	if _, err := fmt.Fprintln(w, render.Snapshot(g, "deal")); err != nil {
		return err
	}
	for i, m := range moves {
		g.Apply(m)
		if _, err := fmt.Fprintln(w, render.Snapshot(g, render.MoveLabel(i+1, m))); err != nil {
			return err
		}
	}
	return nil
}

func writeEnvelope(result envelope.Result) error {
	enc := json.NewEncoder(os.Stdout)
	return enc.Encode(result)
}
