package database

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/intervu/intervu/pkg/models"
)

// Repository is the opaque load/save hook the engine persists through.
type Repository struct {
	db *sql.DB
}

// NewRepository wraps an open database handle.
func NewRepository(db *sql.DB) *Repository {
	return &Repository{db: db}
}

// SaveSnapshot upserts the single-row session snapshot.
func (r *Repository) SaveSnapshot(state *models.SessionState) error {
	data, err := json.Marshal(state)
	if err != nil {
		return fmt.Errorf("failed to encode session snapshot: %w", err)
	}
	query := `INSERT INTO session_state (id, data, updated_at) VALUES (1, ?, ?)
			  ON CONFLICT(id) DO UPDATE SET data=excluded.data, updated_at=excluded.updated_at`
	_, err = r.db.Exec(query, string(data), time.Now())
	return err
}

// LoadSnapshot reads the persisted session snapshot. Returns (nil, nil) when
// nothing has been saved yet.
func (r *Repository) LoadSnapshot() (*models.SessionState, error) {
	var data string
	err := r.db.QueryRow(`SELECT data FROM session_state WHERE id = 1`).Scan(&data)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	state := &models.SessionState{}
	if err := json.Unmarshal([]byte(data), state); err != nil {
		return nil, fmt.Errorf("failed to decode session snapshot: %w", err)
	}
	return state, nil
}

// SaveTranscript appends the finalized candidate's record to the transcript
// history.
func (r *Repository) SaveTranscript(rec *models.CandidateRecord) error {
	questions, err := json.Marshal(rec.Questions)
	if err != nil {
		return fmt.Errorf("failed to encode questions: %w", err)
	}
	chat, err := json.Marshal(rec.Chat)
	if err != nil {
		return fmt.Errorf("failed to encode chat: %w", err)
	}

	finalScore := 0
	if rec.FinalScore != nil {
		finalScore = *rec.FinalScore
	}
	query := `INSERT INTO transcripts (candidate_id, candidate_name, final_score, summary, questions, chat, completed_at)
			  VALUES (?, ?, ?, ?, ?, ?, ?)`
	_, err = r.db.Exec(query, rec.ID, rec.Profile.Name, finalScore, rec.Summary,
		string(questions), string(chat), time.Now())
	return err
}

// TranscriptRow is one entry of the finalized-interview history.
type TranscriptRow struct {
	ID            int
	CandidateID   string
	CandidateName string
	FinalScore    int
	Summary       string
	CompletedAt   time.Time
}

// ListTranscripts returns the finalized-interview history, newest first.
func (r *Repository) ListTranscripts() ([]TranscriptRow, error) {
	query := `SELECT id, candidate_id, candidate_name, final_score, summary, completed_at
			  FROM transcripts ORDER BY completed_at DESC`
	rows, err := r.db.Query(query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []TranscriptRow{}
	for rows.Next() {
		var t TranscriptRow
		if err := rows.Scan(&t.ID, &t.CandidateID, &t.CandidateName, &t.FinalScore, &t.Summary, &t.CompletedAt); err != nil {
			return nil, err
		}
		out = append(out, t)
	}
	return out, rows.Err()
}
