package engine

import (
	"time"

	"github.com/intervu/intervu/pkg/models"
)

// Deadline management. The store holds the persisted deadline/pause fields;
// the engine layers a generation counter on top so the periodic tick fires
// the auto-submit transition at most once per outstanding deadline. Every
// transition that sets, clears, or moves the deadline bumps the generation,
// which means a late tick can never act on a stale deadline belonging to a
// different question or candidate.

// armDeadline starts the countdown for a question slot.
func (e *Engine) armDeadline(questionIndex int, limitSeconds int, now time.Time) {
	deadline := now.Add(time.Duration(limitSeconds) * time.Second)
	e.store.SetQuestionDeadline(questionIndex, &deadline)
	e.deadlineGen++
}

// dropDeadline clears the countdown without recording an answer.
func (e *Engine) dropDeadline() {
	e.store.SetQuestionDeadline(e.store.CurrentQuestionIndex(), nil)
	e.deadlineGen++
}

// invalidateDeadline marks any outstanding deadline context stale after a
// store-level mutation already cleared or replaced it.
func (e *Engine) invalidateDeadline() {
	e.deadlineGen++
}

// pauseLocked freezes the remaining seconds of the live deadline. No-op
// without one.
func (e *Engine) pauseLocked(rec *models.CandidateRecord, now time.Time) bool {
	deadline := e.store.QuestionDeadline()
	if deadline == nil {
		return false
	}
	remaining := int(deadline.Sub(now).Seconds())
	if remaining < 0 {
		remaining = 0
	}
	e.dropDeadline()
	pausedAt := now
	e.store.SetPaused(&pausedAt, &remaining)
	e.store.SetStatus(rec.ID, models.StatusPaused, now)
	return true
}

// resumeLocked recomputes a fresh deadline from the frozen remainder. A
// non-positive remainder falls back to the question's full time limit so a
// resume can never expire instantly.
func (e *Engine) resumeLocked(rec *models.CandidateRecord, now time.Time) bool {
	if rec.Status != models.StatusPaused {
		return false
	}
	idx := e.store.CurrentQuestionIndex()
	if idx < 0 || idx >= len(rec.Questions) {
		return false
	}
	budget := 0
	if remaining := e.store.PausedRemainingSeconds(); remaining != nil {
		budget = *remaining
	}
	if budget <= 0 {
		budget = rec.Questions[idx].TimeLimitSeconds
	}
	e.armDeadline(idx, budget, now)
	e.store.SetStatus(rec.ID, models.StatusInProgress, now)
	return true
}

// Tick samples the countdown once. When the sample first reaches zero for
// the current deadline generation it fires the auto-submit transition;
// repeated polling of an already-expired deadline is latched out.
func (e *Engine) Tick() {
	e.mu.Lock()
	defer e.mu.Unlock()

	deadline := e.store.QuestionDeadline()
	if deadline == nil {
		return
	}
	now := e.now()
	if int(deadline.Sub(now).Seconds()) > 0 {
		return
	}
	if e.firedGen == e.deadlineGen {
		return
	}
	e.firedGen = e.deadlineGen

	e.autoSubmitLocked(now)
	e.saveLocked()
}

// SecondsRemaining samples the countdown: live deadline when running, frozen
// remainder while paused, nil when idle.
func (e *Engine) SecondsRemaining() *int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.store.SecondsRemaining(e.now())
}
