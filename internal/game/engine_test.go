package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/robalobadob/popguess/internal/country"
)

func pool(cs ...country.Country) []country.Country { return cs }

func TestNewSessionRejectsSmallPool(t *testing.T) {
	_, err := NewSession(nil)
	require.ErrorIs(t, err, ErrTooFewCountries)

	_, err = NewSession(pool(country.Country{Name: "A", Population: 1}))
	require.ErrorIs(t, err, ErrTooFewCountries)
}

func TestNextRoundNeverRepeatsAName(t *testing.T) {
	s, err := NewSession(pool(
		country.Country{Name: "A", Population: 1},
		country.Country{Name: "B", Population: 2},
		country.Country{Name: "C", Population: 3},
		country.Country{Name: "D", Population: 4},
		country.Country{Name: "E", Population: 5},
	))
	require.NoError(t, err)

	for i := 0; i < 1000; i++ {
		r, err := s.NextRound()
		require.NoError(t, err)
		assert.NotEqual(t, r.First.Name, r.Second.Name)
	}
}

// Correct guess, then incorrect guess: score sticks at 1 and the
// session stops.
func TestScenarioCorrectThenIncorrect(t *testing.T) {
	s, err := NewSession(pool(
		country.Country{Name: "A", Population: 10},
		country.Country{Name: "B", Population: 20},
	))
	require.NoError(t, err)

	r, err := s.NextRound()
	require.NoError(t, err)
	res, err := s.Guess(largerPick(r))
	require.NoError(t, err)
	assert.True(t, res.Correct)
	assert.Equal(t, 1, res.Score)
	assert.Equal(t, StateSelecting, s.State())

	r, err = s.NextRound()
	require.NoError(t, err)
	res, err = s.Guess(smallerPick(r))
	require.NoError(t, err)
	assert.False(t, res.Correct)
	assert.Equal(t, 1, res.Score)
	assert.Equal(t, StateStopped, s.State())
	assert.Equal(t, 1, s.Score())
}

// Equal populations: either pick is correct.
func TestEqualPopulationsAcceptEitherPick(t *testing.T) {
	for _, pick := range []int{PickFirst, PickSecond} {
		s, err := NewSession(pool(
			country.Country{Name: "A", Population: 7},
			country.Country{Name: "B", Population: 7},
		))
		require.NoError(t, err)

		_, err = s.NextRound()
		require.NoError(t, err)
		res, err := s.Guess(pick)
		require.NoError(t, err)
		assert.True(t, res.Correct, "pick %d should be correct on a tie", pick)
	}
}

func TestScoreNeverDecreases(t *testing.T) {
	s, err := NewSession(pool(
		country.Country{Name: "A", Population: 10},
		country.Country{Name: "B", Population: 20},
	))
	require.NoError(t, err)

	prev := 0
	for i := 0; i < 50; i++ {
		r, err := s.NextRound()
		require.NoError(t, err)
		res, err := s.Guess(largerPick(r))
		require.NoError(t, err)
		require.True(t, res.Correct)
		assert.GreaterOrEqual(t, res.Score, prev)
		prev = res.Score
	}
	assert.Equal(t, 50, s.Score())
}

func TestGuessValidation(t *testing.T) {
	s, err := NewSession(pool(
		country.Country{Name: "A", Population: 10},
		country.Country{Name: "B", Population: 20},
	))
	require.NoError(t, err)

	// No round drawn yet.
	_, err = s.Guess(PickFirst)
	require.Error(t, err)

	_, err = s.NextRound()
	require.NoError(t, err)
	_, err = s.Guess(3)
	require.Error(t, err)
}

func TestStoppedSessionIsTerminal(t *testing.T) {
	s, err := NewSession(pool(
		country.Country{Name: "A", Population: 10},
		country.Country{Name: "B", Population: 20},
	))
	require.NoError(t, err)

	s.Stop()
	assert.Equal(t, StateStopped, s.State())

	_, err = s.NextRound()
	require.ErrorIs(t, err, ErrStopped)
	_, err = s.Guess(PickFirst)
	require.ErrorIs(t, err, ErrStopped)
}

// largerPick returns the pick for the country with the larger population.
func largerPick(r Round) int {
	if r.First.Population >= r.Second.Population {
		return PickFirst
	}
	return PickSecond
}

// smallerPick returns the pick for the country with the strictly smaller
// population.
func smallerPick(r Round) int {
	if r.First.Population < r.Second.Population {
		return PickFirst
	}
	return PickSecond
}
