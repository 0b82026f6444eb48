package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"time"
)

// ScoreEntry is one finished session.
type ScoreEntry struct {
	ID        int64
	GameID    string // maze id
	Score     int
	CreatedAt time.Time
}

// GameStats aggregates every finished session on one maze.
type GameStats struct {
	GameID     string
	GamesCount int
	HighScore  int
	AvgScore   float64
	TotalScore int64
	LastPlayed time.Time
}

const (
	defaultTopLimit    = 10
	defaultRecentLimit = 20

	scoreColumns = "id, game_id, score, created_at"
	statsColumns = "game_id, COUNT(*), MAX(score), AVG(score), SUM(score), MAX(created_at)"
)

// SaveScore records a finished session and returns its row id.
func (s *Store) SaveScore(gameID string, score int) (int64, error) {
	res, err := s.db.Exec("INSERT INTO scores (game_id, score) VALUES (?, ?)", gameID, score)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save score: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}
	return id, nil
}

// TopScores returns the best limit sessions on a maze. Equal scores keep
// the order they were set in.
func (s *Store) TopScores(gameID string, limit int) ([]ScoreEntry, error) {
	if limit <= 0 {
		limit = defaultTopLimit
	}
	return s.listScores("WHERE game_id = ? ORDER BY score DESC, id ASC LIMIT ?", gameID, limit)
}

// AllScores returns every session on a maze, best first.
func (s *Store) AllScores(gameID string) ([]ScoreEntry, error) {
	return s.listScores("WHERE game_id = ? ORDER BY score DESC, id ASC", gameID)
}

// RecentScores returns the latest sessions on any maze, newest first.
func (s *Store) RecentScores(limit int) ([]ScoreEntry, error) {
	if limit <= 0 {
		limit = defaultRecentLimit
	}
	return s.listScores("ORDER BY id DESC LIMIT ?", limit)
}

func (s *Store) listScores(clause string, args ...any) ([]ScoreEntry, error) {
	rows, err := s.db.Query("SELECT "+scoreColumns+" FROM scores "+clause, args...)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query scores: %w", err)
	}
	defer rows.Close()

	var out []ScoreEntry
	for rows.Next() {
		var (
			e  ScoreEntry
			at any
		)
		if err := rows.Scan(&e.ID, &e.GameID, &e.Score, &at); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		e.CreatedAt = sqliteTime(at)
		out = append(out, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return out, nil
}

// HighScore returns the best session on a maze, or 0 before the first one.
func (s *Store) HighScore(gameID string) (int, error) {
	var best sql.NullInt64
	if err := s.db.QueryRow("SELECT MAX(score) FROM scores WHERE game_id = ?", gameID).Scan(&best); err != nil {
		return 0, fmt.Errorf("storage: cannot query high score: %w", err)
	}
	return int(best.Int64), nil
}

// ClearScores forgets every session on a maze.
func (s *Store) ClearScores(gameID string) error {
	if _, err := s.db.Exec("DELETE FROM scores WHERE game_id = ?", gameID); err != nil {
		return fmt.Errorf("storage: cannot clear scores: %w", err)
	}
	return nil
}

// GetGameStats aggregates the sessions on one maze. A maze never played
// yields zero stats, not an error.
func (s *Store) GetGameStats(gameID string) (*GameStats, error) {
	row := s.db.QueryRow("SELECT "+statsColumns+" FROM scores WHERE game_id = ? GROUP BY game_id", gameID)
	gs, err := scanStats(row)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return &GameStats{GameID: gameID}, nil
	case err != nil:
		return nil, fmt.Errorf("storage: cannot get game stats: %w", err)
	}
	return gs, nil
}

// GetAllGamesStats aggregates every maze that has at least one session,
// keyed by maze id.
func (s *Store) GetAllGamesStats() (map[string]*GameStats, error) {
	rows, err := s.db.Query("SELECT " + statsColumns + " FROM scores GROUP BY game_id")
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get all games stats: %w", err)
	}
	defer rows.Close()

	stats := make(map[string]*GameStats)
	for rows.Next() {
		gs, err := scanStats(rows)
		if err != nil {
			return nil, fmt.Errorf("storage: cannot scan stats row: %w", err)
		}
		stats[gs.GameID] = gs
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return stats, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanStats(sc scanner) (*GameStats, error) {
	var (
		gs   GameStats
		last any
	)
	if err := sc.Scan(&gs.GameID, &gs.GamesCount, &gs.HighScore, &gs.AvgScore, &gs.TotalScore, &last); err != nil {
		return nil, err
	}
	gs.LastPlayed = sqliteTime(last)
	return &gs, nil
}
