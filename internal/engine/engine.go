// Package engine is the per-candidate interview state machine. It owns the
// session store, routes every external input through the transition valid
// for the candidate's current status, and drives the question timer.
//
// All transitions are synchronous and serialized by one mutex: a transition
// completes, including its persistence hook, before the next may start.
package engine

import (
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/intervu/intervu/internal/profile"
	"github.com/intervu/intervu/internal/questionbank"
	"github.com/intervu/intervu/internal/scoring"
	"github.com/intervu/intervu/internal/session"
	"github.com/intervu/intervu/pkg/models"
)

// Persister receives the session snapshot after every mutation and the full
// candidate record once an interview is finalized.
type Persister interface {
	SaveSnapshot(state *models.SessionState) error
	SaveTranscript(rec *models.CandidateRecord) error
}

// Engine owns one session store and serializes every transition.
type Engine struct {
	mu      sync.Mutex
	store   *session.Store
	persist Persister
	now     func() time.Time
	newID   func() string
	log     *slog.Logger

	// deadline latch, see deadline.go
	deadlineGen uint64
	firedGen    uint64
}

// Option customizes an Engine.
type Option func(*Engine)

// WithClock injects the wall-clock sampling function.
func WithClock(now func() time.Time) Option {
	return func(e *Engine) { e.now = now }
}

// WithIDSource injects the identifier generator.
func WithIDSource(newID func() string) Option {
	return func(e *Engine) { e.newID = newID }
}

// WithLogger injects the structured logger.
func WithLogger(log *slog.Logger) Option {
	return func(e *Engine) { e.log = log }
}

// New builds an engine around a (possibly rehydrated) store. The persister
// may be nil, in which case mutations stay in memory.
func New(store *session.Store, persist Persister, opts ...Option) *Engine {
	e := &Engine{
		store:   store,
		persist: persist,
		now:     time.Now,
		newID:   models.NewID,
		log:     slog.Default(),
		// A rehydrated store may already carry a live deadline. The
		// generation starts ahead of firedGen so that deadline can still
		// fire once.
		deadlineGen: 1,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// StartCandidate creates a new candidate record in collecting-profile state,
// seeds the greeting message, and makes it the active candidate. Any
// in-flight timer context is cleared.
func (e *Engine) StartCandidate(p models.CandidateProfile, pending []models.ProfileField) string {
	e.mu.Lock()
	defer e.mu.Unlock()

	now := e.now()
	rec := &models.CandidateRecord{
		ID:                   e.newID(),
		Profile:              p,
		PendingProfileFields: pending,
		Chat: []models.ChatMessage{{
			ID:        e.newID(),
			Role:      models.RoleSystem,
			Content:   msgGreeting,
			CreatedAt: now,
		}},
		Questions: []models.InterviewQuestion{},
		Status:    models.StatusCollectingProfile,
		CreatedAt: now,
		UpdatedAt: now,
	}
	e.store.AddCandidate(rec)
	e.invalidateDeadline()
	e.log.Debug("candidate started", "candidate_id", rec.ID, "pending_fields", len(pending))
	e.saveLocked()
	return rec.ID
}

// SubmitMessage routes one candidate message through the transition valid
// for the active candidate's status. A message with no active candidate is
// silently dropped.
func (e *Engine) SubmitMessage(text string) {
	e.mu.Lock()
	defer e.mu.Unlock()

	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return
	}
	rec := e.store.ActiveCandidate()
	if rec == nil {
		return
	}

	now := e.now()
	e.appendMessage(rec.ID, models.RoleCandidate, trimmed)

	switch rec.Status {
	case models.StatusCollectingProfile:
		e.collectProfileLocked(rec, trimmed, now)
	case models.StatusReady:
		if _, ok := beginTriggers[strings.ToLower(trimmed)]; ok {
			e.beginLocked(rec, now)
		} else {
			e.appendMessage(rec.ID, models.RoleAI, msgBeginHint)
		}
	case models.StatusPaused:
		e.appendMessage(rec.ID, models.RoleAI, msgPausedReminder)
	case models.StatusCompleted:
		e.appendMessage(rec.ID, models.RoleAI, msgCompletedReminder)
	case models.StatusInProgress:
		e.answerLocked(rec, trimmed, now)
	}
	e.saveLocked()
}

// BeginInterview starts (or finalizes an already-exhausted) interview for
// the active candidate. Refused while profile fields are still pending.
func (e *Engine) BeginInterview() {
	e.mu.Lock()
	defer e.mu.Unlock()

	rec := e.store.ActiveCandidate()
	if rec == nil {
		return
	}
	e.beginLocked(rec, e.now())
	e.saveLocked()
}

// PauseInterview freezes the live countdown. No-op without one.
func (e *Engine) PauseInterview() {
	e.mu.Lock()
	defer e.mu.Unlock()

	rec := e.store.ActiveCandidate()
	if rec == nil {
		return
	}
	now := e.now()
	if !e.pauseLocked(rec, now) {
		return
	}
	e.appendMessage(rec.ID, models.RoleAI, msgPaused)
	e.log.Debug("interview paused", "candidate_id", rec.ID)
	e.saveLocked()
}

// ResumeInterview recomputes the deadline from the frozen remainder. No-op
// unless the active candidate is paused.
func (e *Engine) ResumeInterview() {
	e.mu.Lock()
	defer e.mu.Unlock()

	rec := e.store.ActiveCandidate()
	if rec == nil {
		return
	}
	now := e.now()
	if !e.resumeLocked(rec, now) {
		return
	}
	e.appendMessage(rec.ID, models.RoleAI, msgResumed)
	e.log.Debug("interview resumed", "candidate_id", rec.ID)
	e.saveLocked()
}

// AutoSubmitCurrentQuestion records an empty zero-scored answer for the
// current question. Idempotent: once the slot is no longer pending the call
// is a no-op.
func (e *Engine) AutoSubmitCurrentQuestion() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.autoSubmitLocked(e.now())
	e.saveLocked()
}

// SelectCandidate switches the active candidate. The question index resets
// and any timer context belonging to the previous candidate is suspended.
// Unknown ids are ignored.
func (e *Engine) SelectCandidate(id string) bool {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.store.CandidateByID(id) == nil {
		return false
	}
	e.store.SetActiveCandidate(id)
	e.invalidateDeadline()
	e.log.Debug("active candidate switched", "candidate_id", id)
	e.saveLocked()
	return true
}

// Reset clears the active pointer and timer context; wipe additionally
// destroys every candidate record.
func (e *Engine) Reset(wipe bool) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.store.Reset(wipe)
	e.invalidateDeadline()
	e.saveLocked()
}

// AcknowledgeWelcomeBack stamps the welcome-back prompt as seen.
func (e *Engine) AcknowledgeWelcomeBack() {
	e.mu.Lock()
	defer e.mu.Unlock()
	now := e.now()
	e.store.SetWelcomeBackSeen(&now)
	e.saveLocked()
}

// --- transitions (all called with the mutex held) ---

func (e *Engine) collectProfileLocked(rec *models.CandidateRecord, text string, now time.Time) {
	enriched := profile.EnrichFromMessage(text, rec.Profile)
	missing := profile.MissingFields(enriched)
	e.store.UpdateProfile(rec.ID, enriched, missing, now)

	if len(missing) == 0 {
		e.store.SetStatus(rec.ID, models.StatusReady, now)
		e.appendMessage(rec.ID, models.RoleAI, msgProfileComplete)
		return
	}
	e.appendMessage(rec.ID, models.RoleAI, fmt.Sprintf(msgStillMissing, profile.DescribeMissing(missing)))
}

func (e *Engine) beginLocked(rec *models.CandidateRecord, now time.Time) {
	if len(rec.PendingProfileFields) > 0 {
		e.appendMessage(rec.ID, models.RoleAI, fmt.Sprintf(msgBeginMissing, profile.DescribeMissing(rec.PendingProfileFields)))
		return
	}
	if len(rec.Questions) == 0 {
		e.store.SetQuestions(rec.ID, questionbank.Generate(), now)
	}
	idx := nextPendingIndex(rec.Questions)
	if idx == -1 {
		e.finalizeLocked(rec, now)
		return
	}
	e.appendMessage(rec.ID, models.RoleAI, msgIntro)
	e.askLocked(rec, idx, now)
}

// askLocked announces a question slot, stamps it asked, and arms its
// deadline. Asking is what flips the candidate to in-progress.
func (e *Engine) askLocked(rec *models.CandidateRecord, idx int, now time.Time) {
	q := rec.Questions[idx]
	e.appendMessage(rec.ID, models.RoleAI, fmt.Sprintf(msgQuestion,
		idx+1, q.Prompt, strings.ToUpper(string(q.Difficulty)), q.TimeLimitSeconds))
	e.store.StampQuestionAsked(rec.ID, idx, now)
	e.armDeadline(idx, q.TimeLimitSeconds, now)
	e.log.Debug("question asked", "candidate_id", rec.ID, "question_index", idx, "difficulty", q.Difficulty)
}

// answerLocked treats a message as the answer to the current question, but
// only while that slot is still pending — a deadline expiry racing the
// submission wins exactly once.
func (e *Engine) answerLocked(rec *models.CandidateRecord, text string, now time.Time) {
	idx := e.store.CurrentQuestionIndex()
	if idx < 0 || idx >= len(rec.Questions) {
		return
	}
	q := rec.Questions[idx]
	if q.Status != models.QuestionPending {
		return
	}

	score := scoring.ScoreAnswer(text, q.Difficulty)
	e.store.RecordAnswer(rec.ID, idx, text, models.QuestionAnswered, score, now)
	e.invalidateDeadline()

	feedback := msgFeedbackWeak
	switch {
	case score >= 75:
		feedback = msgFeedbackStrong
	case score >= 40:
		feedback = msgFeedbackGood
	}
	e.appendMessage(rec.ID, models.RoleAI, fmt.Sprintf(msgScored, feedback, score))
	e.log.Debug("answer recorded", "candidate_id", rec.ID, "question_index", idx, "score", score)

	e.advanceLocked(rec, now)
}

func (e *Engine) autoSubmitLocked(now time.Time) {
	rec := e.store.ActiveCandidate()
	if rec == nil {
		return
	}
	idx := e.store.CurrentQuestionIndex()
	if idx < 0 || idx >= len(rec.Questions) {
		return
	}
	if rec.Questions[idx].Status != models.QuestionPending {
		return
	}

	e.store.RecordAnswer(rec.ID, idx, "", models.QuestionAutoSubmitted, 0, now)
	e.invalidateDeadline()
	e.appendMessage(rec.ID, models.RoleAI, msgTimesUp)
	e.log.Debug("question auto-submitted", "candidate_id", rec.ID, "question_index", idx)

	e.advanceLocked(rec, now)
}

// advanceLocked asks the next pending-unanswered slot by array position, or
// finalizes when none remains.
func (e *Engine) advanceLocked(rec *models.CandidateRecord, now time.Time) {
	idx := nextPendingIndex(rec.Questions)
	if idx == -1 {
		e.finalizeLocked(rec, now)
		return
	}
	e.askLocked(rec, idx, now)
}

func (e *Engine) finalizeLocked(rec *models.CandidateRecord, now time.Time) {
	finalScore := scoring.ComputeFinalScore(rec.Questions)
	summary := scoring.BuildSummary(rec)

	e.appendMessage(rec.ID, models.RoleAI, fmt.Sprintf(msgWrap, finalScore, summary))
	e.store.Finalize(rec.ID, summary, finalScore, now)
	e.invalidateDeadline()
	e.log.Debug("interview finalized", "candidate_id", rec.ID, "final_score", finalScore)

	if e.persist != nil {
		if err := e.persist.SaveTranscript(rec.Clone()); err != nil {
			e.log.Warn("failed to persist transcript", "candidate_id", rec.ID, "error", err)
		}
	}
}

func (e *Engine) appendMessage(candidateID string, role models.ChatRole, content string) {
	e.store.AddChatMessage(candidateID, models.ChatMessage{
		ID:        e.newID(),
		Role:      role,
		Content:   content,
		CreatedAt: e.now(),
	})
}

// saveLocked pushes the post-transition snapshot through the persistence
// hook. Persistence failures are logged, never fatal.
func (e *Engine) saveLocked() {
	if e.persist == nil {
		return
	}
	if err := e.persist.SaveSnapshot(e.store.Snapshot()); err != nil {
		e.log.Warn("failed to persist session snapshot", "error", err)
	}
}

func nextPendingIndex(questions []models.InterviewQuestion) int {
	for i, q := range questions {
		if q.Status == models.QuestionPending && q.Answer == nil {
			return i
		}
	}
	return -1
}
