package database

import (
	"database/sql"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/intervu/intervu/pkg/models"
)

func openTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := Open(t.TempDir())
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db
}

func TestOpenRunsMigrations(t *testing.T) {
	db := openTestDB(t)

	for _, table := range []string{"session_state", "transcripts"} {
		var name string
		err := db.QueryRow(`SELECT name FROM sqlite_master WHERE type='table' AND name=?`, table).Scan(&name)
		require.NoError(t, err, "table %s should exist", table)
		assert.Equal(t, table, name)
	}

	// Migrations are idempotent.
	require.NoError(t, RunMigrations(db))
}

func TestSnapshotRoundTrip(t *testing.T) {
	repo := NewRepository(openTestDB(t))

	// Nothing saved yet.
	state, err := repo.LoadSnapshot()
	require.NoError(t, err)
	assert.Nil(t, state)

	score := 72
	deadline := time.Date(2025, 6, 1, 9, 0, 20, 0, time.UTC)
	saved := models.NewSessionState()
	saved.CandidateOrder = []string{"c1"}
	saved.ActiveCandidateID = "c1"
	saved.CurrentQuestionIndex = 3
	saved.QuestionDeadline = &deadline
	saved.Candidates["c1"] = &models.CandidateRecord{
		ID:         "c1",
		Profile:    models.CandidateProfile{Name: "Ana Silva", Email: "ana@example.com"},
		Status:     models.StatusCompleted,
		Summary:    "solid showing",
		FinalScore: &score,
		Chat: []models.ChatMessage{
			{ID: "m1", Role: models.RoleAI, Content: "hello", CreatedAt: deadline},
		},
	}

	require.NoError(t, repo.SaveSnapshot(saved))

	loaded, err := repo.LoadSnapshot()
	require.NoError(t, err)
	require.NotNil(t, loaded)
	assert.Equal(t, "c1", loaded.ActiveCandidateID)
	assert.Equal(t, 3, loaded.CurrentQuestionIndex)
	require.NotNil(t, loaded.QuestionDeadline)
	assert.True(t, loaded.QuestionDeadline.Equal(deadline))

	rec := loaded.Candidates["c1"]
	require.NotNil(t, rec)
	assert.Equal(t, "Ana Silva", rec.Profile.Name)
	assert.Equal(t, models.StatusCompleted, rec.Status)
	require.NotNil(t, rec.FinalScore)
	assert.Equal(t, 72, *rec.FinalScore)
	require.Len(t, rec.Chat, 1)
	assert.Equal(t, "hello", rec.Chat[0].Content)
}

func TestSaveSnapshotOverwritesSingleRow(t *testing.T) {
	db := openTestDB(t)
	repo := NewRepository(db)

	first := models.NewSessionState()
	first.ActiveCandidateID = "c1"
	require.NoError(t, repo.SaveSnapshot(first))

	second := models.NewSessionState()
	second.ActiveCandidateID = "c2"
	require.NoError(t, repo.SaveSnapshot(second))

	var count int
	require.NoError(t, db.QueryRow(`SELECT COUNT(*) FROM session_state`).Scan(&count))
	assert.Equal(t, 1, count)

	loaded, err := repo.LoadSnapshot()
	require.NoError(t, err)
	assert.Equal(t, "c2", loaded.ActiveCandidateID)
}

func TestSaveAndListTranscripts(t *testing.T) {
	repo := NewRepository(openTestDB(t))

	rows, err := repo.ListTranscripts()
	require.NoError(t, err)
	assert.Empty(t, rows)

	score := 85
	rec := &models.CandidateRecord{
		ID:         "c1",
		Profile:    models.CandidateProfile{Name: "Ana Silva"},
		Status:     models.StatusCompleted,
		Summary:    "strong candidate",
		FinalScore: &score,
		Questions:  []models.InterviewQuestion{{ID: "q1", Prompt: "Explain props"}},
		Chat:       []models.ChatMessage{{ID: "m1", Role: models.RoleAI, Content: "hi"}},
	}
	require.NoError(t, repo.SaveTranscript(rec))

	unscored := &models.CandidateRecord{
		ID:      "c2",
		Profile: models.CandidateProfile{Name: "Bob"},
		Status:  models.StatusCompleted,
	}
	require.NoError(t, repo.SaveTranscript(unscored))

	rows, err = repo.ListTranscripts()
	require.NoError(t, err)
	require.Len(t, rows, 2)

	byID := map[string]TranscriptRow{}
	for _, row := range rows {
		byID[row.CandidateID] = row
	}
	assert.Equal(t, "Ana Silva", byID["c1"].CandidateName)
	assert.Equal(t, 85, byID["c1"].FinalScore)
	assert.Equal(t, "strong candidate", byID["c1"].Summary)
	assert.Equal(t, 0, byID["c2"].FinalScore)
}
