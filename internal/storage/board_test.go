package storage

import (
	"bytes"
	"sync"
	"testing"
	"time"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestBoard(t *testing.T, store *Store, logger *log.Logger) *Board {
	t.Helper()
	board, err := NewBoard(store, logger)
	require.NoError(t, err)
	t.Cleanup(board.Close)
	return board
}

func TestBoardLoadsExistingHighScore(t *testing.T) {
	store := openTestStore(t)
	_, err := store.SaveScore(420, 3)
	require.NoError(t, err)

	board := newTestBoard(t, store, nil)
	assert.Equal(t, 420, board.HighScore())
}

func TestBoardAddScore(t *testing.T) {
	store := openTestStore(t)
	var buf bytes.Buffer
	board := newTestBoard(t, store, log.New(&buf))

	board.AddScore(150, 2)
	board.AddScore(90, 1)
	assert.Equal(t, 150, board.HighScore())

	board.Close()

	entries, err := store.TopScores(0)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, 150, entries[0].Score)
	assert.Equal(t, 2, entries[0].Level)
	assert.Contains(t, buf.String(), "score recorded")
}

func TestBoardAddScoreDoesNotWaitForDatabase(t *testing.T) {
	store := openTestStore(t)
	board := newTestBoard(t, store, log.New(&bytes.Buffer{}))

	// Hold the store's only connection.
	tx, err := store.db.Begin()
	require.NoError(t, err)

	done := make(chan struct{})
	go func() {
		board.AddScore(300, 4)
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(200 * time.Millisecond):
		require.NoError(t, tx.Rollback())
		t.Fatal("AddScore blocked while the database was busy")
	}
	assert.Equal(t, 300, board.HighScore())

	require.NoError(t, tx.Rollback())
	board.Close()

	high, err := store.HighScore()
	require.NoError(t, err)
	assert.Equal(t, 300, high)
}

func TestBoardLogsWriteFailure(t *testing.T) {
	store := openTestStore(t)
	var buf bytes.Buffer
	board := newTestBoard(t, store, log.New(&buf))

	require.NoError(t, store.Close())
	board.AddScore(10, 1)
	board.Close()

	assert.Contains(t, buf.String(), "failed to record score")
	assert.Equal(t, 10, board.HighScore(), "cache still tracks the session best")
}

func TestBoardAddScoreAfterClose(t *testing.T) {
	store := openTestStore(t)
	var buf bytes.Buffer
	board := newTestBoard(t, store, log.New(&buf))

	board.Close()
	board.Close()
	board.AddScore(50, 1)

	assert.Equal(t, 50, board.HighScore())
	assert.Contains(t, buf.String(), "score board closed")

	entries, err := store.TopScores(0)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestBoardConcurrentUse(t *testing.T) {
	store := openTestStore(t)
	board := newTestBoard(t, store, log.New(&bytes.Buffer{}))

	var wg sync.WaitGroup
	for i := 1; i <= 8; i++ {
		wg.Add(1)
		go func(score int) {
			defer wg.Done()
			board.AddScore(score, 1)
			_ = board.HighScore()
		}(i * 100)
	}
	wg.Wait()
	board.Close()

	assert.Equal(t, 800, board.HighScore())
	high, err := store.HighScore()
	require.NoError(t, err)
	assert.Equal(t, 800, high)
}

func TestBoardReset(t *testing.T) {
	store := openTestStore(t)
	board := newTestBoard(t, store, log.New(&bytes.Buffer{}))

	board.AddScore(70, 1)
	board.Close()
	require.NoError(t, store.ClearScores())
	board.Reset()

	assert.Equal(t, 0, board.HighScore())
}
