package httpserver

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/robalobadob/popguess/internal/scores"
)

type fakeBoard struct {
	entries []scores.Entry
	err     error
	lastK   int
}

func (f *fakeBoard) Top(ctx context.Context, k int) ([]scores.Entry, error) {
	f.lastK = k
	if f.err != nil {
		return nil, f.err
	}
	return f.entries, nil
}

func get(t *testing.T, srv *Server, path string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, req)
	return rec
}

func TestHealth(t *testing.T) {
	rec := get(t, New(&fakeBoard{}, 5), "/health")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"ok":true}`, rec.Body.String())
}

func TestScoresReturnsLeaderboard(t *testing.T) {
	board := &fakeBoard{entries: []scores.Entry{
		{ID: 1, Name: "AAA", Value: 9},
		{ID: 2, Name: "BBB", Value: 4},
	}}
	rec := get(t, New(board, 5), "/scores")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 5, board.lastK)

	var body struct {
		Scores []scores.Entry `json:"scores"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Len(t, body.Scores, 2)
	assert.Equal(t, "AAA", body.Scores[0].Name)
	assert.Equal(t, 9, body.Scores[0].Value)
}

func TestScoresLimitParam(t *testing.T) {
	board := &fakeBoard{}

	rec := get(t, New(board, 5), "/scores?limit=2")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 2, board.lastK)

	// Oversized limits are clamped.
	rec = get(t, New(board, 5), "/scores?limit=9999")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, maxLimit, board.lastK)

	rec = get(t, New(board, 5), "/scores?limit=zero")
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = get(t, New(board, 5), "/scores?limit=-1")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestScoresStorageFailure(t *testing.T) {
	board := &fakeBoard{err: errors.New("db gone")}
	rec := get(t, New(board, 5), "/scores")
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.Contains(t, rec.Body.String(), "score storage unavailable")
}
