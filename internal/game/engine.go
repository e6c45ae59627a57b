// internal/game/engine.go
//
// Core engine for a single guessing session.
// Responsibilities:
//   - Draw two distinct countries uniformly at random per round.
//   - Judge guesses by comparing population figures.
//   - Track state transitions: selecting → awaiting → (selecting | stopped).
//
// Notes:
//   - The country pool is provided at construction and never mutated.
//   - Equal populations count as a correct guess for either pick; the
//     player is never punished for a coin-flip the data cannot decide.
//   - Random draws use crypto/rand for uniformity without seeding.
package game

import (
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"

	"github.com/robalobadob/popguess/internal/country"
)

// Picks accepted by Guess.
const (
	PickFirst  = 1
	PickSecond = 2
)

// ErrTooFewCountries is returned when the pool cannot form a pair.
var ErrTooFewCountries = errors.New("need at least 2 countries to play")

// ErrStopped is returned by NextRound and Guess once the session is over.
var ErrStopped = errors.New("session stopped")

// Session holds the state of one run of the game.
type Session struct {
	pool  []country.Country
	round Round
	score int
	state State
}

// NewSession constructs a session over the given pool.
// Fails with ErrTooFewCountries unless the pool holds two or more entries.
func NewSession(pool []country.Country) (*Session, error) {
	if len(pool) < 2 {
		return nil, ErrTooFewCountries
	}
	return &Session{pool: pool, state: StateSelecting}, nil
}

// NextRound draws two distinct countries and moves to the awaiting state.
func (s *Session) NextRound() (Round, error) {
	if s.state == StateStopped {
		return Round{}, ErrStopped
	}
	i := randIndex(len(s.pool))
	j := randIndex(len(s.pool) - 1)
	if j >= i {
		j++
	}
	s.round = Round{First: s.pool[i], Second: s.pool[j]}
	s.state = StateAwaiting
	return s.round, nil
}

// Guess judges the player's pick against the current round.
// A correct guess increments the score and returns to the selecting
// state; an incorrect guess stops the session.
func (s *Session) Guess(pick int) (Result, error) {
	if s.state == StateStopped {
		return Result{}, ErrStopped
	}
	if s.state != StateAwaiting {
		return Result{}, errors.New("no round in progress")
	}
	if pick != PickFirst && pick != PickSecond {
		return Result{}, fmt.Errorf("invalid pick %d", pick)
	}

	first, second := s.round.First.Population, s.round.Second.Population
	correct := (pick == PickFirst && first >= second) ||
		(pick == PickSecond && second >= first)

	if correct {
		s.score++
		s.state = StateSelecting
	} else {
		s.state = StateStopped
	}
	return Result{Round: s.round, Correct: correct, Score: s.score}, nil
}

// Stop ends the session. Safe to call in any state.
func (s *Session) Stop() {
	s.state = StateStopped
}

// Score reports the running tally. Never decreases within a session.
func (s *Session) Score() int { return s.score }

// State reports the current session state.
func (s *Session) State() State { return s.state }

// randIndex returns a uniform random index in [0, n).
func randIndex(n int) int {
	nBig, _ := rand.Int(rand.Reader, big.NewInt(int64(n)))
	return int(nBig.Int64())
}
