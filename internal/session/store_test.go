package session

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/intervu/intervu/pkg/models"
)

var baseTime = time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC)

func newRecord(id string, createdAt time.Time) *models.CandidateRecord {
	return &models.CandidateRecord{
		ID:        id,
		Status:    models.StatusCollectingProfile,
		CreatedAt: createdAt,
		UpdatedAt: createdAt,
	}
}

func TestAddCandidatePrependsAndActivates(t *testing.T) {
	s := NewStore()
	s.AddCandidate(newRecord("a", baseTime))
	s.AddCandidate(newRecord("b", baseTime.Add(time.Minute)))

	assert.Equal(t, "b", s.ActiveCandidateID())

	ordered := s.CandidatesOrdered()
	require.Len(t, ordered, 2)
	assert.Equal(t, "b", ordered[0].ID)
	assert.Equal(t, "a", ordered[1].ID)
}

func TestSetActiveCandidateClearsTimerContext(t *testing.T) {
	s := NewStore()
	s.AddCandidate(newRecord("a", baseTime))
	s.AddCandidate(newRecord("b", baseTime))

	deadline := baseTime.Add(20 * time.Second)
	s.SetQuestionDeadline(3, &deadline)
	remaining := 12
	pausedAt := baseTime
	s.SetPaused(&pausedAt, &remaining)

	s.SetActiveCandidate("a")

	assert.Equal(t, "a", s.ActiveCandidateID())
	assert.Equal(t, 0, s.CurrentQuestionIndex())
	assert.Nil(t, s.QuestionDeadline())
	assert.Nil(t, s.PausedRemainingSeconds())
}

func TestSetQuestionDeadlineDropsPauseContext(t *testing.T) {
	s := NewStore()
	remaining := 30
	pausedAt := baseTime
	s.SetPaused(&pausedAt, &remaining)

	deadline := baseTime.Add(time.Minute)
	s.SetQuestionDeadline(1, &deadline)

	require.NotNil(t, s.QuestionDeadline())
	assert.Equal(t, 1, s.CurrentQuestionIndex())
	assert.Nil(t, s.PausedRemainingSeconds())
}

func TestRecordAnswerAccumulatesElapsedAndClearsDeadline(t *testing.T) {
	s := NewStore()
	rec := newRecord("a", baseTime)
	rec.Questions = []models.InterviewQuestion{
		{ID: "q1", Status: models.QuestionPending, TimeLimitSeconds: 20},
	}
	s.AddCandidate(rec)

	s.StampQuestionAsked("a", 0, baseTime)
	deadline := baseTime.Add(20 * time.Second)
	s.SetQuestionDeadline(0, &deadline)

	s.RecordAnswer("a", 0, "an answer", models.QuestionAnswered, 42, baseTime.Add(7*time.Second))

	got := s.CandidateByID("a")
	q := got.Questions[0]
	require.NotNil(t, q.Answer)
	assert.Equal(t, "an answer", *q.Answer)
	assert.Equal(t, models.QuestionAnswered, q.Status)
	require.NotNil(t, q.Score)
	assert.Equal(t, 42, *q.Score)
	assert.Equal(t, 7, got.TotalTimeSeconds)
	assert.Nil(t, s.QuestionDeadline())
}

func TestRecordAnswerIgnoresOutOfRangeIndex(t *testing.T) {
	s := NewStore()
	rec := newRecord("a", baseTime)
	rec.Questions = []models.InterviewQuestion{{ID: "q1", Status: models.QuestionPending}}
	s.AddCandidate(rec)

	s.RecordAnswer("a", 5, "ignored", models.QuestionAnswered, 10, baseTime)

	assert.Nil(t, s.CandidateByID("a").Questions[0].Answer)
}

func TestFinalizeCompletesAndKeepsCandidateActive(t *testing.T) {
	s := NewStore()
	s.AddCandidate(newRecord("a", baseTime))
	deadline := baseTime.Add(time.Minute)
	s.SetQuestionDeadline(2, &deadline)

	s.Finalize("a", "solid showing", 73, baseTime.Add(time.Hour))

	rec := s.CandidateByID("a")
	assert.Equal(t, models.StatusCompleted, rec.Status)
	assert.Equal(t, "solid showing", rec.Summary)
	require.NotNil(t, rec.FinalScore)
	assert.Equal(t, 73, *rec.FinalScore)
	assert.Equal(t, "a", s.ActiveCandidateID())
	assert.Nil(t, s.QuestionDeadline())
}

func TestSnapshotIsDeepCopy(t *testing.T) {
	s := NewStore()
	rec := newRecord("a", baseTime)
	rec.Profile = models.CandidateProfile{Name: "Ana Silva"}
	rec.Chat = []models.ChatMessage{{ID: "m1", Role: models.RoleAI, Content: "hi", CreatedAt: baseTime}}
	s.AddCandidate(rec)

	snap := s.Snapshot()

	// Mutating the live store must not leak into the snapshot.
	s.AddChatMessage("a", models.ChatMessage{ID: "m2", Role: models.RoleCandidate, Content: "hello", CreatedAt: baseTime})
	s.SetStatus("a", models.StatusReady, baseTime)

	snapRec := snap.Candidates["a"]
	require.NotNil(t, snapRec)
	assert.Len(t, snapRec.Chat, 1)
	assert.Equal(t, models.StatusCollectingProfile, snapRec.Status)
	assert.Equal(t, "Ana Silva", snapRec.Profile.Name)
}

func TestRestore(t *testing.T) {
	t.Run("nil snapshot yields empty store", func(t *testing.T) {
		s := Restore(nil)
		assert.Empty(t, s.CandidatesOrdered())
		assert.Equal(t, "", s.ActiveCandidateID())
	})

	t.Run("round-trips candidates and timer context", func(t *testing.T) {
		s := NewStore()
		s.AddCandidate(newRecord("a", baseTime))
		deadline := baseTime.Add(45 * time.Second)
		s.SetQuestionDeadline(1, &deadline)

		restored := Restore(s.Snapshot())
		assert.Equal(t, "a", restored.ActiveCandidateID())
		assert.Equal(t, 1, restored.CurrentQuestionIndex())
		require.NotNil(t, restored.QuestionDeadline())
		assert.True(t, restored.QuestionDeadline().Equal(deadline))
	})
}

func TestResetWithWipe(t *testing.T) {
	s := NewStore()
	s.AddCandidate(newRecord("a", baseTime))
	seen := baseTime
	s.SetWelcomeBackSeen(&seen)

	s.Reset(false)
	assert.Equal(t, "", s.ActiveCandidateID())
	assert.Len(t, s.CandidatesOrdered(), 1)

	s.Reset(true)
	assert.Empty(t, s.CandidatesOrdered())
}

func TestSecondsRemaining(t *testing.T) {
	s := NewStore()

	assert.Nil(t, s.SecondsRemaining(baseTime))

	deadline := baseTime.Add(20 * time.Second)
	s.SetQuestionDeadline(0, &deadline)

	got := s.SecondsRemaining(baseTime.Add(5 * time.Second))
	require.NotNil(t, got)
	assert.Equal(t, 15, *got)

	// Past the deadline the countdown floors at zero.
	got = s.SecondsRemaining(baseTime.Add(time.Minute))
	require.NotNil(t, got)
	assert.Equal(t, 0, *got)

	// While paused the frozen remainder is reported as-is.
	s.SetQuestionDeadline(0, nil)
	remaining := 12
	pausedAt := baseTime
	s.SetPaused(&pausedAt, &remaining)
	got = s.SecondsRemaining(baseTime.Add(time.Hour))
	require.NotNil(t, got)
	assert.Equal(t, 12, *got)
}

func TestCandidatesRanked(t *testing.T) {
	s := NewStore()

	mk := func(id string, score *int, updatedAt time.Time) {
		rec := newRecord(id, updatedAt)
		rec.FinalScore = score
		rec.UpdatedAt = updatedAt
		s.AddCandidate(rec)
	}
	hi, mid := 90, 60

	mk("unscored-old", nil, baseTime)
	mk("mid", &mid, baseTime.Add(time.Minute))
	mk("hi", &hi, baseTime.Add(2*time.Minute))
	mk("unscored-new", nil, baseTime.Add(3*time.Minute))

	ranked := s.CandidatesRanked()
	require.Len(t, ranked, 4)
	assert.Equal(t, "hi", ranked[0].ID)
	assert.Equal(t, "mid", ranked[1].ID)
	// Unscored candidates sort last, most recent activity first.
	assert.Equal(t, "unscored-new", ranked[2].ID)
	assert.Equal(t, "unscored-old", ranked[3].ID)
}

func TestSearchCandidates(t *testing.T) {
	ana := &models.CandidateRecord{ID: "1", Profile: models.CandidateProfile{Name: "Ana Silva", Email: "ana@x.com"}}
	bob := &models.CandidateRecord{ID: "2", Profile: models.CandidateProfile{Name: "Bob", ResumeFileName: "bob-resume.pdf"}}
	carl := &models.CandidateRecord{ID: "3", Profile: models.CandidateProfile{Name: "Carl"}, Summary: "Strong on react state"}
	all := []*models.CandidateRecord{ana, bob, carl}

	assert.Equal(t, all, SearchCandidates(all, ""))
	assert.Equal(t, []*models.CandidateRecord{ana}, SearchCandidates(all, "SILVA"))
	assert.Equal(t, []*models.CandidateRecord{ana}, SearchCandidates(all, "ana@x"))
	assert.Equal(t, []*models.CandidateRecord{bob}, SearchCandidates(all, "resume.pdf"))
	assert.Equal(t, []*models.CandidateRecord{carl}, SearchCandidates(all, "react"))
	assert.Empty(t, SearchCandidates(all, "zebra"))
}

func TestWelcomeBackCandidate(t *testing.T) {
	now := baseTime.Add(time.Hour)

	t.Run("skips fresh and finished candidates", func(t *testing.T) {
		s := NewStore()
		done := newRecord("done", baseTime)
		done.Status = models.StatusCompleted
		s.AddCandidate(done)
		fresh := newRecord("fresh", now)
		fresh.Status = models.StatusInProgress
		fresh.UpdatedAt = now.Add(-10 * time.Second)
		s.AddCandidate(fresh)

		assert.Nil(t, s.WelcomeBackCandidate(now))
	})

	t.Run("finds stale in-progress candidate", func(t *testing.T) {
		s := NewStore()
		rec := newRecord("a", baseTime)
		rec.Status = models.StatusInProgress
		rec.UpdatedAt = now.Add(-5 * time.Minute)
		s.AddCandidate(rec)

		got := s.WelcomeBackCandidate(now)
		require.NotNil(t, got)
		assert.Equal(t, "a", got.ID)
	})

	t.Run("acknowledgement suppresses the prompt", func(t *testing.T) {
		s := NewStore()
		rec := newRecord("a", baseTime)
		rec.Status = models.StatusPaused
		rec.UpdatedAt = now.Add(-5 * time.Minute)
		s.AddCandidate(rec)

		seen := now.Add(-time.Minute)
		s.SetWelcomeBackSeen(&seen)
		assert.Nil(t, s.WelcomeBackCandidate(now))
	})

	t.Run("ready without questions is not welcome-back worthy", func(t *testing.T) {
		s := NewStore()
		rec := newRecord("a", baseTime)
		rec.Status = models.StatusReady
		rec.UpdatedAt = now.Add(-5 * time.Minute)
		s.AddCandidate(rec)

		assert.Nil(t, s.WelcomeBackCandidate(now))
	})
}
