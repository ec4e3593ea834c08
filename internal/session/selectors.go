package session

import (
	"sort"
	"strings"
	"time"

	"github.com/intervu/intervu/pkg/models"
)

// Read-only queries for the display layer. They return live records; callers
// inside the engine's lock may read freely, external callers should go
// through the engine's query surface.

// ActiveCandidateID returns the active candidate's id, empty when none.
func (s *Store) ActiveCandidateID() string {
	return s.state.ActiveCandidateID
}

// ActiveCandidate returns the active candidate record, nil when none.
func (s *Store) ActiveCandidate() *models.CandidateRecord {
	if s.state.ActiveCandidateID == "" {
		return nil
	}
	return s.state.Candidates[s.state.ActiveCandidateID]
}

// CandidateByID looks a candidate up, returning nil when unknown.
func (s *Store) CandidateByID(id string) *models.CandidateRecord {
	return s.state.Candidates[id]
}

// CandidatesOrdered returns candidates most-recently-started first.
func (s *Store) CandidatesOrdered() []*models.CandidateRecord {
	out := make([]*models.CandidateRecord, 0, len(s.state.CandidateOrder))
	for _, id := range s.state.CandidateOrder {
		if rec, ok := s.state.Candidates[id]; ok {
			out = append(out, rec)
		}
	}
	return out
}

// CandidatesRanked returns candidates sorted by final score descending, the
// unscored last, ties broken by most recent activity.
func (s *Store) CandidatesRanked() []*models.CandidateRecord {
	ranked := s.CandidatesOrdered()
	sort.SliceStable(ranked, func(i, j int) bool {
		si, sj := -1, -1
		if ranked[i].FinalScore != nil {
			si = *ranked[i].FinalScore
		}
		if ranked[j].FinalScore != nil {
			sj = *ranked[j].FinalScore
		}
		if si == sj {
			return ranked[i].UpdatedAt.After(ranked[j].UpdatedAt)
		}
		return si > sj
	})
	return ranked
}

// SearchCandidates filters a candidate list by case-insensitive substring
// match over name, email, resume filename, and summary.
func SearchCandidates(candidates []*models.CandidateRecord, term string) []*models.CandidateRecord {
	term = strings.ToLower(strings.TrimSpace(term))
	if term == "" {
		return candidates
	}
	out := make([]*models.CandidateRecord, 0, len(candidates))
	for _, rec := range candidates {
		if strings.Contains(strings.ToLower(rec.Profile.Name), term) ||
			strings.Contains(strings.ToLower(rec.Profile.Email), term) ||
			strings.Contains(strings.ToLower(rec.Profile.ResumeFileName), term) ||
			strings.Contains(strings.ToLower(rec.Summary), term) {
			out = append(out, rec)
		}
	}
	return out
}

// CurrentQuestionIndex returns the slot the global timer context refers to.
// It is meaningful only relative to the active candidate.
func (s *Store) CurrentQuestionIndex() int {
	return s.state.CurrentQuestionIndex
}

// QuestionDeadline returns the live deadline, nil when none.
func (s *Store) QuestionDeadline() *time.Time {
	return s.state.QuestionDeadline
}

// PausedRemainingSeconds returns the frozen remainder, nil when not paused.
func (s *Store) PausedRemainingSeconds() *int {
	return s.state.PausedRemainingSeconds
}

// SecondsRemaining samples the countdown at the given instant: the live
// deadline when one is set, the frozen remainder while paused, nil when the
// session is idle.
func (s *Store) SecondsRemaining(now time.Time) *int {
	if s.state.QuestionDeadline != nil {
		remaining := int(s.state.QuestionDeadline.Sub(now).Seconds())
		if remaining < 0 {
			remaining = 0
		}
		return &remaining
	}
	if s.state.PausedRemainingSeconds != nil {
		v := *s.state.PausedRemainingSeconds
		return &v
	}
	return nil
}

// WelcomeBackCandidate probes for an unfinished candidate worth a
// welcome-back prompt: in-progress, paused, or ready with questions already
// generated, whose last activity is older than a minute and has not been
// acknowledged since.
func (s *Store) WelcomeBackCandidate(now time.Time) *models.CandidateRecord {
	var unfinished *models.CandidateRecord
	for _, rec := range s.CandidatesOrdered() {
		switch rec.Status {
		case models.StatusInProgress, models.StatusPaused:
			unfinished = rec
		case models.StatusReady:
			if len(rec.Questions) > 0 {
				unfinished = rec
			}
		}
		if unfinished != nil {
			break
		}
	}
	if unfinished == nil {
		return nil
	}
	if now.Sub(unfinished.UpdatedAt) < time.Minute {
		return nil
	}
	if s.state.WelcomeBackSeenAt != nil && s.state.WelcomeBackSeenAt.After(unfinished.UpdatedAt) {
		return nil
	}
	return unfinished
}
