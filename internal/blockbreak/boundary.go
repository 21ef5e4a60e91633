package blockbreak

// ScoreBoard persists finished sessions and reports the best score.
// Implementations must not block the simulation; failures are theirs to log.
type ScoreBoard interface {
	AddScore(score, level int)
	HighScore() int
}

type nopScoreBoard struct{}

func (nopScoreBoard) AddScore(int, int) {}
func (nopScoreBoard) HighScore() int    { return 0 }

// MemoryScoreBoard keeps scores in memory. Used in tests and when no
// database is available.
type MemoryScoreBoard struct {
	Entries []ScoreEntry
	best    int
}

// ScoreEntry is one recorded session.
type ScoreEntry struct {
	Score int
	Level int
}

// AddScore records a finished session.
func (m *MemoryScoreBoard) AddScore(score, level int) {
	m.Entries = append(m.Entries, ScoreEntry{Score: score, Level: level})
	if score > m.best {
		m.best = score
	}
}

// HighScore returns the best recorded score.
func (m *MemoryScoreBoard) HighScore() int {
	return m.best
}
