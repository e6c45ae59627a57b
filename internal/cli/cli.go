// internal/cli/cli.go
//
// Interactive terminal front end for the guessing game.
// Responsibilities:
//   - Drive the session loop: present pairs, read picks, report outcomes.
//   - Reprompt on unrecognized input instead of ending the session.
//   - At session end: collect a player tag, record the score, show the
//     leaderboard.
//
// A nil or failing score store degrades the session: the score is
// announced but not persisted, with a warning. The game never crashes
// because the database is missing.

package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/rs/zerolog/log"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/robalobadob/popguess/internal/country"
	"github.com/robalobadob/popguess/internal/game"
	"github.com/robalobadob/popguess/internal/scores"
)

// tagLength is the required player-tag length, arcade style.
const tagLength = 3

// ScoreStore is the slice of the score store the CLI needs.
type ScoreStore interface {
	Record(ctx context.Context, name string, value int) error
	Top(ctx context.Context, k int) ([]scores.Entry, error)
}

// Provider supplies the country pool for a session.
type Provider interface {
	Countries(ctx context.Context) ([]country.Country, error)
}

// Game wires the engine, provider, and store to a terminal.
type Game struct {
	in       *bufio.Scanner
	out      io.Writer
	printer  *message.Printer
	provider Provider
	store    ScoreStore // may be nil when storage is unavailable
	topK     int
}

// New constructs a Game reading from in and writing to out.
func New(in io.Reader, out io.Writer, provider Provider, store ScoreStore, topK int) *Game {
	if topK <= 0 {
		topK = 5
	}
	return &Game{
		in:       bufio.NewScanner(in),
		out:      out,
		printer:  message.NewPrinter(language.English),
		provider: provider,
		store:    store,
		topK:     topK,
	}
}

// Run plays one full session: fetch countries, loop until the player
// stops or misses, then persist and display the leaderboard.
func (g *Game) Run(ctx context.Context) error {
	pool, err := g.provider.Countries(ctx)
	if err != nil {
		fmt.Fprintln(g.out, "Sorry, country data is unavailable right now. Try again later.")
		return err
	}

	session, err := game.NewSession(pool)
	if err != nil {
		return err
	}

	for session.State() != game.StateStopped {
		round, err := session.NextRound()
		if err != nil {
			return err
		}

		pick, stopped := g.promptPick(round)
		if stopped {
			session.Stop()
			break
		}

		result, err := session.Guess(pick)
		if err != nil {
			return err
		}
		g.showOutcome(result)

		if result.Correct && !g.promptContinue() {
			session.Stop()
			break
		}
		if result.Correct {
			fmt.Fprintf(g.out, "Your current score is %d.\n", result.Score)
		}
	}

	fmt.Fprintf(g.out, "Your score was %d.\n", session.Score())
	g.finish(ctx, session.Score())
	return nil
}

// promptPick asks for 1, 2, or q until it gets one.
// Returns the pick, or stopped=true when the player quits (including EOF).
func (g *Game) promptPick(round game.Round) (pick int, stopped bool) {
	for {
		fmt.Fprintf(g.out, "Which country has the larger population?\n  1. %s\n  2. %s\n(1/2, or q to quit): ",
			round.First.Name, round.Second.Name)
		line, ok := g.readLine()
		if !ok {
			return 0, true
		}
		switch strings.ToLower(line) {
		case "1":
			return game.PickFirst, false
		case "2":
			return game.PickSecond, false
		case "q", "quit":
			return 0, true
		default:
			fmt.Fprintln(g.out, "Please answer 1, 2, or q.")
		}
	}
}

// showOutcome prints both populations and the verdict.
func (g *Game) showOutcome(r game.Result) {
	g.printer.Fprintf(g.out, "%s has a population of %d\n", r.Round.First.Name, r.Round.First.Population)
	g.printer.Fprintf(g.out, "%s has a population of %d\n", r.Round.Second.Name, r.Round.Second.Population)
	if r.Correct {
		fmt.Fprintln(g.out, "Correct!")
	} else {
		fmt.Fprintln(g.out, "Incorrect!")
	}
}

// promptContinue asks whether to keep playing. EOF counts as no.
func (g *Game) promptContinue() bool {
	for {
		fmt.Fprint(g.out, "Continue? (y/n): ")
		line, ok := g.readLine()
		if !ok {
			return false
		}
		switch strings.ToLower(line) {
		case "y", "yes":
			return true
		case "n", "no":
			return false
		default:
			fmt.Fprintln(g.out, "Please answer y or n.")
		}
	}
}

// promptTag collects an uppercased 3-character player tag. EOF yields "".
func (g *Game) promptTag() string {
	for {
		fmt.Fprintf(g.out, "Enter your name (%d characters): ", tagLength)
		line, ok := g.readLine()
		if !ok {
			return ""
		}
		tag := strings.ToUpper(line)
		if len(tag) == tagLength {
			return tag
		}
		fmt.Fprintf(g.out, "Name must be exactly %d characters.\n", tagLength)
	}
}

// finish records the score and shows the leaderboard, degrading with a
// warning when storage is unavailable.
func (g *Game) finish(ctx context.Context, score int) {
	if g.store == nil {
		fmt.Fprintln(g.out, "Warning: score storage is unavailable, your score was not saved.")
		return
	}

	tag := g.promptTag()
	if tag == "" {
		fmt.Fprintln(g.out, "No name entered, score not saved.")
		return
	}

	if err := g.store.Record(ctx, tag, score); err != nil {
		log.Warn().Err(err).Msg("record score")
		fmt.Fprintln(g.out, "Warning: your score could not be saved.")
		return
	}

	top, err := g.store.Top(ctx, g.topK)
	if err != nil {
		log.Warn().Err(err).Msg("load leaderboard")
		fmt.Fprintln(g.out, "Warning: the leaderboard could not be loaded.")
		return
	}

	fmt.Fprintln(g.out, "High scores:")
	for i, e := range top {
		fmt.Fprintf(g.out, "%2d. %s scored %d\n", i+1, e.Name, e.Value)
	}
}

// readLine reads one trimmed line. ok is false on EOF or read error.
func (g *Game) readLine() (line string, ok bool) {
	if !g.in.Scan() {
		return "", false
	}
	return strings.TrimSpace(g.in.Text()), true
}
