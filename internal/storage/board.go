package storage

import (
	"sync"

	"github.com/charmbracelet/log"
)

// writeQueueSize bounds the scores waiting for the database writer.
const writeQueueSize = 64

type scoreWrite struct {
	score, level int
}

// Board adapts a Store to the game's score board. It caches the best score
// so reads never touch the database, and hands inserts to a single
// background writer so the game loop never waits on SQLite. Write failures
// are logged, not returned. Safe for concurrent use by several sessions.
//
// Close must be called before closing the Store.
type Board struct {
	store  *Store
	logger *log.Logger

	writes chan scoreWrite
	wg     sync.WaitGroup

	mu     sync.RWMutex
	best   int
	closed bool
}

// NewBoard loads the current high score, starts the writer and returns a
// ready Board. A nil logger uses the charmbracelet/log default logger.
func NewBoard(store *Store, logger *log.Logger) (*Board, error) {
	if logger == nil {
		logger = log.Default()
	}
	best, err := store.HighScore()
	if err != nil {
		return nil, err
	}
	b := &Board{
		store:  store,
		logger: logger,
		writes: make(chan scoreWrite, writeQueueSize),
		best:   best,
	}
	b.wg.Add(1)
	go b.run()
	return b, nil
}

func (b *Board) run() {
	defer b.wg.Done()
	for w := range b.writes {
		top, err := b.store.AddScore(w.score, w.level)
		if err != nil {
			b.logger.Error("failed to record score", "score", w.score, "level", w.level, "error", err)
			continue
		}
		b.logger.Info("score recorded", "score", w.score, "level", w.level, "top", top)
	}
}

// AddScore records a finished session. The cached best is updated at once;
// the insert is queued and never blocks the caller.
func (b *Board) AddScore(score, level int) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if score > b.best {
		b.best = score
	}
	if b.closed {
		b.logger.Warn("score board closed, score not recorded", "score", score, "level", level)
		return
	}
	select {
	case b.writes <- scoreWrite{score: score, level: level}:
	default:
		b.logger.Error("score queue full, score not recorded", "score", score, "level", level)
	}
}

// HighScore returns the best score seen so far.
func (b *Board) HighScore() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.best
}

// Reset clears the cached best score after the store was cleared.
func (b *Board) Reset() {
	b.mu.Lock()
	b.best = 0
	b.mu.Unlock()
}

// Close stops accepting scores and waits until queued ones are written.
// It is safe to call more than once.
func (b *Board) Close() {
	b.mu.Lock()
	if !b.closed {
		b.closed = true
		close(b.writes)
	}
	b.mu.Unlock()
	b.wg.Wait()
}
