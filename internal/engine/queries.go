package engine

import (
	"github.com/intervu/intervu/pkg/models"
)

// Read-only queries for the display layer. Records are returned as deep
// copies so rendering can happen outside the engine's lock.

// ActiveCandidate returns a copy of the active candidate, nil when none.
func (e *Engine) ActiveCandidate() *models.CandidateRecord {
	e.mu.Lock()
	defer e.mu.Unlock()
	rec := e.store.ActiveCandidate()
	if rec == nil {
		return nil
	}
	return rec.Clone()
}

// CandidateByID returns a copy of one candidate, nil when unknown.
func (e *Engine) CandidateByID(id string) *models.CandidateRecord {
	e.mu.Lock()
	defer e.mu.Unlock()
	rec := e.store.CandidateByID(id)
	if rec == nil {
		return nil
	}
	return rec.Clone()
}

// CandidatesOrdered returns copies of all candidates, most recently started
// first.
func (e *Engine) CandidatesOrdered() []*models.CandidateRecord {
	e.mu.Lock()
	defer e.mu.Unlock()
	return cloneAll(e.store.CandidatesOrdered())
}

// CandidatesRanked returns copies of all candidates sorted by final score
// descending, unscored last, ties broken by recency.
func (e *Engine) CandidatesRanked() []*models.CandidateRecord {
	e.mu.Lock()
	defer e.mu.Unlock()
	return cloneAll(e.store.CandidatesRanked())
}

// CurrentQuestionIndex returns the slot the timer context points at.
func (e *Engine) CurrentQuestionIndex() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.store.CurrentQuestionIndex()
}

// IsPaused reports whether a frozen remainder is being held.
func (e *Engine) IsPaused() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.store.PausedRemainingSeconds() != nil
}

// WelcomeBackCandidate returns a copy of the unfinished candidate worth a
// welcome-back prompt, nil when there is none or it was already
// acknowledged.
func (e *Engine) WelcomeBackCandidate() *models.CandidateRecord {
	e.mu.Lock()
	defer e.mu.Unlock()
	rec := e.store.WelcomeBackCandidate(e.now())
	if rec == nil {
		return nil
	}
	return rec.Clone()
}

func cloneAll(recs []*models.CandidateRecord) []*models.CandidateRecord {
	out := make([]*models.CandidateRecord, len(recs))
	for i, rec := range recs {
		out[i] = rec.Clone()
	}
	return out
}
