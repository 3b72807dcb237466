package db

import (
	"database/sql"
	"fmt"

	"github.com/yludeuk/svoyak/models"
)

// Run describes one segmentation run to export.
type Run struct {
	Prefix    string
	Language  models.Language
	Source    string
	Blocks    []models.ThemeBlock
	Artifacts []ArtifactRecord
}

// ArtifactRecord points at a rendered file of one block.
type ArtifactRecord struct {
	BlockIndex int
	Format     string
	FilePath   string
	SizeBytes  int64
}

// RoundInfo is a summary row of the rounds table.
type RoundInfo struct {
	RoundID       int64
	BlockIndex    int
	ThemeCount    int
	QuestionCount int
}

// QuestionInfo is a question row joined with its theme.
type QuestionInfo struct {
	ThemeNumber     int
	ThemeName       string
	Price           int
	NormalizedPrice int
	Question        string
	Answer          string
}

type execer interface {
	Exec(query string, args ...any) (sql.Result, error)
}

// Export writes a fresh database at path holding run.
func Export(path string, run Run) error {
	database, err := Create(path)
	if err != nil {
		return err
	}
	defer database.Close()

	return database.InsertRun(run)
}

// InsertRun stores the run with its rounds, themes, questions and artifacts
// in a single transaction; nothing is stored when any insert fails.
func (db *DB) InsertRun(run Run) error {
	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin export: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	runID, err := insert(tx, `
		INSERT INTO runs (prefix, language, source)
		VALUES (?, ?, ?)
	`, run.Prefix, string(run.Language), NewNullString(run.Source))
	if err != nil {
		return fmt.Errorf("failed to insert run: %w", err)
	}

	roundIDs := make(map[int]int64, len(run.Blocks))
	for _, block := range run.Blocks {
		roundID, err := insertRound(tx, runID, block)
		if err != nil {
			return err
		}
		roundIDs[block.Index] = roundID
	}

	for _, a := range run.Artifacts {
		roundID, ok := roundIDs[a.BlockIndex]
		if !ok {
			return fmt.Errorf("artifact %s references unknown block %d", a.FilePath, a.BlockIndex)
		}
		if _, err := tx.Exec(`
			INSERT INTO artifacts (round_id, format, file_path, size_bytes)
			VALUES (?, ?, ?, ?)
		`, roundID, a.Format, a.FilePath, a.SizeBytes); err != nil {
			return fmt.Errorf("failed to insert artifact: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit export: %w", err)
	}
	return nil
}

func insertRound(tx execer, runID int64, block models.ThemeBlock) (int64, error) {
	roundID, err := insert(tx, `
		INSERT INTO rounds (run_id, block_index, theme_count, question_count)
		VALUES (?, ?, ?, ?)
	`, runID, block.Index, len(block.Themes), block.QuestionCount())
	if err != nil {
		return 0, fmt.Errorf("failed to insert round %d: %w", block.Index, err)
	}

	for _, t := range block.Themes {
		themeID, err := insert(tx, `
			INSERT INTO themes (round_id, number, name, start_line, end_line)
			VALUES (?, ?, ?, ?, ?)
		`, roundID, t.Number, t.Theme.Name, t.Theme.Start, t.Theme.End)
		if err != nil {
			return 0, fmt.Errorf("failed to insert theme %d: %w", t.Number, err)
		}

		for pos, r := range t.Records {
			if _, err := tx.Exec(`
				INSERT INTO questions (theme_id, position, price, normalized_price, question, answer)
				VALUES (?, ?, ?, ?, ?, ?)
			`, themeID, pos+1, r.Price, r.NormalizedPrice, r.Question, r.Answer); err != nil {
				return 0, fmt.Errorf("failed to insert question: %w", err)
			}
		}
	}
	return roundID, nil
}

func insert(tx execer, query string, args ...any) (int64, error) {
	result, err := tx.Exec(query, args...)
	if err != nil {
		return 0, err
	}
	return result.LastInsertId()
}

// ListRounds returns every round in block order.
func (db *DB) ListRounds() ([]RoundInfo, error) {
	rows, err := db.Query(`
		SELECT round_id, block_index, theme_count, question_count
		FROM rounds
		ORDER BY block_index
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query rounds: %w", err)
	}
	defer rows.Close()

	var rounds []RoundInfo
	for rows.Next() {
		var r RoundInfo
		if err := rows.Scan(&r.RoundID, &r.BlockIndex, &r.ThemeCount, &r.QuestionCount); err != nil {
			return nil, fmt.Errorf("failed to scan round: %w", err)
		}
		rounds = append(rounds, r)
	}
	return rounds, rows.Err()
}

// ListQuestions returns the questions of one round in output order.
func (db *DB) ListQuestions(blockIndex int) ([]QuestionInfo, error) {
	rows, err := db.Query(`
		SELECT t.number, t.name, q.price, q.normalized_price, q.question, q.answer
		FROM questions q
		JOIN themes t ON t.theme_id = q.theme_id
		JOIN rounds r ON r.round_id = t.round_id
		WHERE r.block_index = ?
		ORDER BY t.number, q.position
	`, blockIndex)
	if err != nil {
		return nil, fmt.Errorf("failed to query questions: %w", err)
	}
	defer rows.Close()

	var questions []QuestionInfo
	for rows.Next() {
		var q QuestionInfo
		if err := rows.Scan(&q.ThemeNumber, &q.ThemeName, &q.Price, &q.NormalizedPrice, &q.Question, &q.Answer); err != nil {
			return nil, fmt.Errorf("failed to scan question: %w", err)
		}
		questions = append(questions, q)
	}
	return questions, rows.Err()
}

// NewNullString converts a string to sql.NullString (empty string = NULL)
func NewNullString(s string) sql.NullString {
	if s == "" {
		return sql.NullString{Valid: false}
	}
	return sql.NullString{String: s, Valid: true}
}
