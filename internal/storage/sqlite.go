// Package storage keeps the catch journal: every finished fishing attempt of
// the current process, in an in-memory SQLite database. Nothing is written
// to disk; the journal can be exported as CSV.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"fmt"
	"io"
	"time"

	"github.com/gocarina/gocsv"
	"gonum.org/v1/gonum/stat"
	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

const timeLayout = "2006-01-02 15:04:05"

// Store is the catch journal.
type Store struct {
	db *sql.DB
}

// Catch is one finished attempt. Escaped fish have Caught false and score 0.
type Catch struct {
	ID           int64     `csv:"id"`
	Species      string    `csv:"species"`
	Difficulty   int       `csv:"difficulty"`
	Weight       float64   `csv:"weight_lbs"`
	Size         float64   `csv:"size_in"`
	Caught       bool      `csv:"caught"`
	Score        int       `csv:"score"`
	Ticks        int       `csv:"ticks"`
	FastCatch    bool      `csv:"fast_catch"`
	NewHighscore bool      `csv:"new_highscore"`
	CreatedAt    time.Time `csv:"created_at"`
}

// SpeciesBest is the best catch of one species.
type SpeciesBest struct {
	Species   string
	Catches   int
	BestScore int
	Heaviest  float64
}

// Summary aggregates the journal.
type Summary struct {
	Attempts    int
	Caught      int
	Escaped     int
	HighScore   int
	TotalScore  int64
	AvgScore    float64 // Over caught fish
	ScoreStdDev float64
	Heaviest    float64
	LastPlayed  time.Time
}

// CatchRate returns caught / attempts, or 0 with no attempts.
func (s Summary) CatchRate() float64 {
	if s.Attempts == 0 {
		return 0
	}
	return float64(s.Caught) / float64(s.Attempts)
}

// Open creates an empty in-memory journal and runs migrations.
func Open() (*Store, error) {
	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}
	// Every connection to :memory: is a separate database.
	db.SetMaxOpenConns(1)

	// Test connection
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	store := &Store{db: db}

	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}

	return store, nil
}

// migrate creates the database schema.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS catches (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			species TEXT NOT NULL,
			difficulty INTEGER NOT NULL,
			weight REAL NOT NULL,
			size REAL NOT NULL,
			caught INTEGER NOT NULL,
			score INTEGER NOT NULL DEFAULT 0,
			ticks INTEGER NOT NULL DEFAULT 0,
			fast_catch INTEGER NOT NULL DEFAULT 0,
			new_highscore INTEGER NOT NULL DEFAULT 0,
			created_at DATETIME NOT NULL
		);
		CREATE INDEX IF NOT EXISTS idx_catches_top ON catches(caught, score DESC);
		CREATE INDEX IF NOT EXISTS idx_catches_species ON catches(species);
	`

	_, err := s.db.Exec(schema)
	return err
}

// Close closes the database connection. The journal is gone afterwards.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// Record adds an attempt to the journal and returns its ID. A zero CreatedAt
// is stamped with the current time.
func (s *Store) Record(c Catch) (int64, error) {
	if c.CreatedAt.IsZero() {
		c.CreatedAt = time.Now()
	}
	result, err := s.db.Exec(
		`INSERT INTO catches
		 (species, difficulty, weight, size, caught, score, ticks, fast_catch, new_highscore, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		c.Species, c.Difficulty, c.Weight, c.Size, c.Caught, c.Score, c.Ticks,
		c.FastCatch, c.NewHighscore, c.CreatedAt.UTC().Format(timeLayout),
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot record catch: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	return id, nil
}

const catchColumns = `id, species, difficulty, weight, size, caught, score, ticks, fast_catch, new_highscore, created_at`

// Recent returns the last limit attempts, newest first.
func (s *Store) Recent(limit int) ([]Catch, error) {
	if limit <= 0 {
		limit = 10
	}
	return s.queryCatches(
		`SELECT `+catchColumns+` FROM catches ORDER BY id DESC LIMIT ?`,
		limit,
	)
}

// TopCatches returns the highest scoring caught fish. Ties go to the earlier
// catch.
func (s *Store) TopCatches(limit int) ([]Catch, error) {
	if limit <= 0 {
		limit = 10
	}
	return s.queryCatches(
		`SELECT `+catchColumns+`
		 FROM catches
		 WHERE caught = 1
		 ORDER BY score DESC, id ASC
		 LIMIT ?`,
		limit,
	)
}

// All returns every attempt in the order they happened.
func (s *Store) All() ([]Catch, error) {
	return s.queryCatches(`SELECT ` + catchColumns + ` FROM catches ORDER BY id ASC`)
}

func (s *Store) queryCatches(query string, args ...any) ([]Catch, error) {
	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query catches: %w", err)
	}
	defer rows.Close()

	var catches []Catch
	for rows.Next() {
		var c Catch
		var createdAt any
		if err := rows.Scan(&c.ID, &c.Species, &c.Difficulty, &c.Weight, &c.Size, &c.Caught,
			&c.Score, &c.Ticks, &c.FastCatch, &c.NewHighscore, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		c.CreatedAt = parseTime(createdAt)
		catches = append(catches, c)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return catches, nil
}

// BestBySpecies returns, per species caught at least once, the catch count,
// best score and heaviest weight. Ordered by best score.
func (s *Store) BestBySpecies() ([]SpeciesBest, error) {
	rows, err := s.db.Query(
		`SELECT species, COUNT(*), MAX(score), MAX(weight)
		 FROM catches
		 WHERE caught = 1
		 GROUP BY species
		 ORDER BY MAX(score) DESC, species ASC`,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get species stats: %w", err)
	}
	defer rows.Close()

	var out []SpeciesBest
	for rows.Next() {
		var b SpeciesBest
		if err := rows.Scan(&b.Species, &b.Catches, &b.BestScore, &b.Heaviest); err != nil {
			return nil, fmt.Errorf("storage: cannot scan species row: %w", err)
		}
		out = append(out, b)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return out, nil
}

// Summary aggregates the whole journal.
func (s *Store) Summary() (*Summary, error) {
	sum := &Summary{}

	var lastPlayed any
	err := s.db.QueryRow(
		`SELECT COUNT(*), COALESCE(SUM(caught), 0), COALESCE(MAX(score), 0),
		        COALESCE(SUM(score), 0), COALESCE(MAX(CASE WHEN caught = 1 THEN weight END), 0),
		        MAX(created_at)
		 FROM catches`,
	).Scan(&sum.Attempts, &sum.Caught, &sum.HighScore, &sum.TotalScore, &sum.Heaviest, &lastPlayed)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get summary: %w", err)
	}
	sum.Escaped = sum.Attempts - sum.Caught
	sum.LastPlayed = parseTime(lastPlayed)

	scores, err := s.caughtScores()
	if err != nil {
		return nil, err
	}
	if len(scores) > 0 {
		sum.AvgScore = stat.Mean(scores, nil)
	}
	if len(scores) > 1 {
		sum.ScoreStdDev = stat.StdDev(scores, nil)
	}

	return sum, nil
}

func (s *Store) caughtScores() ([]float64, error) {
	rows, err := s.db.Query(`SELECT score FROM catches WHERE caught = 1`)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query scores: %w", err)
	}
	defer rows.Close()

	var scores []float64
	for rows.Next() {
		var v int
		if err := rows.Scan(&v); err != nil {
			return nil, fmt.Errorf("storage: cannot scan score: %w", err)
		}
		scores = append(scores, float64(v))
	}
	return scores, rows.Err()
}

// ExportCSV writes the whole journal as CSV with a header row.
func (s *Store) ExportCSV(w io.Writer) error {
	catches, err := s.All()
	if err != nil {
		return err
	}
	if catches == nil {
		catches = []Catch{}
	}
	if err := gocsv.Marshal(catches, w); err != nil {
		return fmt.Errorf("storage: cannot export csv: %w", err)
	}
	return nil
}

// Clear deletes every entry.
func (s *Store) Clear() error {
	_, err := s.db.Exec("DELETE FROM catches")
	if err != nil {
		return fmt.Errorf("storage: cannot clear journal: %w", err)
	}
	return nil
}

// parseTime handles both time.Time and string datetimes from the driver.
func parseTime(v any) time.Time {
	switch t := v.(type) {
	case time.Time:
		return t
	case string:
		if parsed, err := time.Parse(timeLayout, t); err == nil {
			return parsed
		}
	}
	return time.Time{}
}
