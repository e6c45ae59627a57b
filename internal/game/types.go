// internal/game/types.go
//
// Core type definitions for the guessing game.
// Defines:
//   - State: coarse session state (selecting/awaiting/stopped).
//   - Round: the two countries currently on offer.
//   - Result: outcome of a single guess.

package game

import "github.com/robalobadob/popguess/internal/country"

// State represents where a session is in its lifecycle.
// Possible values:
//   - "selecting": a new pair is about to be drawn.
//   - "awaiting":  a pair is on offer, waiting for the player's pick.
//   - "stopped":   terminal; the score is final.
type State string

const (
	StateSelecting State = "selecting"
	StateAwaiting  State = "awaiting"
	StateStopped   State = "stopped"
)

// Round holds the two distinct countries offered to the player.
type Round struct {
	First  country.Country
	Second country.Country
}

// Result is the outcome of one guess.
type Result struct {
	Round   Round // The pair that was judged, populations included.
	Correct bool  // Whether the pick had the larger (or equal) population.
	Score   int   // Running score after the guess.
}
