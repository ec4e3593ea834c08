// Package session owns the process-wide interview state: every candidate
// record plus the single globally-active timer context. The Store exposes
// fine-grained mutators used by the engine's transitions and read-only
// selectors consumed by the display layer. It carries no locking of its own;
// the engine serializes access.
package session

import (
	"time"

	"github.com/intervu/intervu/pkg/models"
)

// Store wraps the serializable session state with an explicit
// snapshot/restore contract for persistence.
type Store struct {
	state *models.SessionState
}

// NewStore returns an empty store.
func NewStore() *Store {
	return &Store{state: models.NewSessionState()}
}

// Restore rebuilds a store from a persisted snapshot. A nil snapshot yields
// an empty store.
func Restore(state *models.SessionState) *Store {
	if state == nil {
		return NewStore()
	}
	if state.Candidates == nil {
		state.Candidates = make(map[string]*models.CandidateRecord)
	}
	if state.CandidateOrder == nil {
		state.CandidateOrder = []string{}
	}
	return &Store{state: state}
}

// Snapshot returns a deep copy of the state suitable for external save.
func (s *Store) Snapshot() *models.SessionState {
	return s.state.Clone()
}

// --- mutators (engine-only) ---

// AddCandidate registers a new record, puts it first in the order, makes it
// active, and clears any in-flight timer context.
func (s *Store) AddCandidate(rec *models.CandidateRecord) {
	s.state.Candidates[rec.ID] = rec
	s.state.CandidateOrder = append([]string{rec.ID}, s.state.CandidateOrder...)
	s.state.ActiveCandidateID = rec.ID
	s.state.CurrentQuestionIndex = 0
	s.clearTimerContext()
}

// SetActiveCandidate switches the active candidate, resetting the question
// index and suspending whatever timer was running for the previous one.
func (s *Store) SetActiveCandidate(id string) {
	s.state.ActiveCandidateID = id
	s.state.CurrentQuestionIndex = 0
	s.clearTimerContext()
}

// AddChatMessage appends one transcript entry to a candidate.
func (s *Store) AddChatMessage(candidateID string, msg models.ChatMessage) {
	rec, ok := s.state.Candidates[candidateID]
	if !ok {
		return
	}
	rec.Chat = append(rec.Chat, msg)
	rec.UpdatedAt = msg.CreatedAt
}

// UpdateProfile replaces a candidate's profile and pending-fields set.
func (s *Store) UpdateProfile(candidateID string, p models.CandidateProfile, pending []models.ProfileField, now time.Time) {
	rec, ok := s.state.Candidates[candidateID]
	if !ok {
		return
	}
	rec.Profile = p
	rec.PendingProfileFields = pending
	rec.UpdatedAt = now
}

// SetQuestions installs the generated six-question set and marks the
// candidate ready.
func (s *Store) SetQuestions(candidateID string, questions []models.InterviewQuestion, now time.Time) {
	rec, ok := s.state.Candidates[candidateID]
	if !ok {
		return
	}
	rec.Questions = questions
	rec.Status = models.StatusReady
	rec.UpdatedAt = now
}

// SetStatus moves a candidate to a new lifecycle status.
func (s *Store) SetStatus(candidateID string, status models.CandidateStatus, now time.Time) {
	rec, ok := s.state.Candidates[candidateID]
	if !ok {
		return
	}
	rec.Status = status
	rec.UpdatedAt = now
}

// SetQuestionDeadline points the global timer context at a question slot.
// The pause context is dropped either way: deadline and frozen remainder are
// mutually exclusive.
func (s *Store) SetQuestionDeadline(questionIndex int, deadline *time.Time) {
	s.state.CurrentQuestionIndex = questionIndex
	s.state.QuestionDeadline = deadline
	s.state.PausedAt = nil
	s.state.PausedRemainingSeconds = nil
}

// SetPaused stores the frozen remainder while an interview is paused.
func (s *Store) SetPaused(pausedAt *time.Time, remainingSeconds *int) {
	s.state.PausedAt = pausedAt
	s.state.PausedRemainingSeconds = remainingSeconds
}

// StampQuestionAsked records the ask timestamp for a slot and flips the
// candidate to in-progress.
func (s *Store) StampQuestionAsked(candidateID string, questionIndex int, askedAt time.Time) {
	rec, ok := s.state.Candidates[candidateID]
	if !ok {
		return
	}
	if questionIndex < 0 || questionIndex >= len(rec.Questions) {
		return
	}
	at := askedAt
	rec.Questions[questionIndex].AskedAt = &at
	rec.Questions[questionIndex].Status = models.QuestionPending
	rec.Status = models.StatusInProgress
	rec.UpdatedAt = askedAt
}

// RecordAnswer writes an answer (user-submitted or auto-submitted) into a
// question slot, accumulates elapsed seconds into the candidate total, and
// clears the live deadline.
func (s *Store) RecordAnswer(candidateID string, questionIndex int, answer string, status models.QuestionStatus, score int, submittedAt time.Time) {
	rec, ok := s.state.Candidates[candidateID]
	if !ok {
		return
	}
	if questionIndex < 0 || questionIndex >= len(rec.Questions) {
		return
	}
	q := &rec.Questions[questionIndex]

	a := answer
	sc := score
	at := submittedAt
	q.Answer = &a
	q.Status = status
	q.Score = &sc
	q.AnsweredAt = &at

	askedAt := submittedAt
	if q.AskedAt != nil {
		askedAt = *q.AskedAt
	}
	elapsed := int(submittedAt.Sub(askedAt).Seconds())
	if elapsed > 0 {
		rec.TotalTimeSeconds += elapsed
	}
	rec.UpdatedAt = submittedAt
	s.state.QuestionDeadline = nil
}

// Finalize stamps the summary and final score, completes the candidate, and
// clears all timer context. The candidate stays active.
func (s *Store) Finalize(candidateID string, summary string, finalScore int, now time.Time) {
	rec, ok := s.state.Candidates[candidateID]
	if !ok {
		return
	}
	fs := finalScore
	rec.Summary = summary
	rec.FinalScore = &fs
	rec.Status = models.StatusCompleted
	rec.UpdatedAt = now
	s.clearTimerContext()
	s.state.ActiveCandidateID = candidateID
}

// SetWelcomeBackSeen stamps when the welcome-back prompt was acknowledged.
func (s *Store) SetWelcomeBackSeen(at *time.Time) {
	s.state.WelcomeBackSeenAt = at
}

// Reset clears the active pointer, index, and timer context. When wipe is
// set it also destroys every candidate record (whole-session reset).
func (s *Store) Reset(wipe bool) {
	s.state.ActiveCandidateID = ""
	s.state.CurrentQuestionIndex = 0
	s.clearTimerContext()
	if wipe {
		s.state.Candidates = make(map[string]*models.CandidateRecord)
		s.state.CandidateOrder = []string{}
		s.state.WelcomeBackSeenAt = nil
	}
}

func (s *Store) clearTimerContext() {
	s.state.QuestionDeadline = nil
	s.state.PausedAt = nil
	s.state.PausedRemainingSeconds = nil
}
