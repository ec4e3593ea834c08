package models

import "time"

// Difficulty of an interview question. The bank always deals questions in
// fixed easy → medium → hard order.
type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
)

// ChatRole identifies who produced a transcript entry.
type ChatRole string

const (
	RoleSystem    ChatRole = "system"
	RoleAI        ChatRole = "ai"
	RoleCandidate ChatRole = "candidate"
)

// ChatMessage is one immutable transcript entry. Messages are append-only and
// ordered by insertion.
type ChatMessage struct {
	ID        string    `json:"id"`
	Role      ChatRole  `json:"role"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
}

// QuestionStatus tracks the lifecycle of one question slot.
type QuestionStatus string

const (
	QuestionPending       QuestionStatus = "pending"
	QuestionAnswered      QuestionStatus = "answered"
	QuestionAutoSubmitted QuestionStatus = "auto-submitted"
)

// InterviewQuestion is one of the six fixed slots in a candidate's interview.
// Answer stays nil until the slot has been answered or auto-submitted; an
// auto-submitted slot carries an empty (non-nil) answer.
type InterviewQuestion struct {
	ID               string         `json:"id"`
	Prompt           string         `json:"prompt"`
	Difficulty       Difficulty     `json:"difficulty"`
	TimeLimitSeconds int            `json:"time_limit_seconds"`
	Status           QuestionStatus `json:"status"`
	AskedAt          *time.Time     `json:"asked_at,omitempty"`
	AnsweredAt       *time.Time     `json:"answered_at,omitempty"`
	Answer           *string        `json:"answer,omitempty"`
	Score            *int           `json:"score,omitempty"`
}

// ProfileField names one of the contact fields collected before an interview
// can begin.
type ProfileField string

const (
	FieldName  ProfileField = "name"
	FieldEmail ProfileField = "email"
	FieldPhone ProfileField = "phone"
)

// CandidateProfile holds progressively collected candidate details. An empty
// string means the field is not known yet; a field once set is never cleared.
type CandidateProfile struct {
	Name           string `json:"name,omitempty"`
	Email          string `json:"email,omitempty"`
	Phone          string `json:"phone,omitempty"`
	ResumeFileName string `json:"resume_file_name,omitempty"`
	ResumeText     string `json:"resume_text,omitempty"`
}

// CandidateStatus is the per-candidate interview lifecycle state.
type CandidateStatus string

const (
	StatusCollectingProfile CandidateStatus = "collecting-profile"
	StatusReady             CandidateStatus = "ready"
	StatusInProgress        CandidateStatus = "in-progress"
	StatusPaused            CandidateStatus = "paused"
	StatusCompleted         CandidateStatus = "completed"
)

// CandidateRecord is one interviewee session: profile, transcript, and the
// six question slots. Questions is empty until the candidate becomes ready,
// then exactly six entries and never resized.
type CandidateRecord struct {
	ID                   string              `json:"id"`
	Profile              CandidateProfile    `json:"profile"`
	PendingProfileFields []ProfileField      `json:"pending_profile_fields"`
	Chat                 []ChatMessage       `json:"chat"`
	Questions            []InterviewQuestion `json:"questions"`
	Status               CandidateStatus     `json:"status"`
	Summary              string              `json:"summary,omitempty"`
	FinalScore           *int                `json:"final_score,omitempty"`
	CreatedAt            time.Time           `json:"created_at"`
	UpdatedAt            time.Time           `json:"updated_at"`
	TotalTimeSeconds     int                 `json:"total_time_seconds"`
}

// SessionState is the process-wide interview state: every candidate record
// plus the single globally-active timer context. It is the unit of
// persistence — saved as a whole on every mutation and rehydrated at startup.
//
// QuestionDeadline and PausedRemainingSeconds are mutually exclusive: exactly
// one is set while a question is outstanding, neither while idle.
type SessionState struct {
	Candidates             map[string]*CandidateRecord `json:"candidates"`
	CandidateOrder         []string                    `json:"candidate_order"`
	ActiveCandidateID      string                      `json:"active_candidate_id,omitempty"`
	CurrentQuestionIndex   int                         `json:"current_question_index"`
	QuestionDeadline       *time.Time                  `json:"question_deadline,omitempty"`
	PausedAt               *time.Time                  `json:"paused_at,omitempty"`
	PausedRemainingSeconds *int                        `json:"paused_remaining_seconds,omitempty"`
	WelcomeBackSeenAt      *time.Time                  `json:"welcome_back_seen_at,omitempty"`
}

// NewSessionState returns an empty state ready for use.
func NewSessionState() *SessionState {
	return &SessionState{
		Candidates:     make(map[string]*CandidateRecord),
		CandidateOrder: []string{},
	}
}

// Clone returns a deep copy of the state, safe to hand to the persistence
// layer while transitions keep mutating the original.
func (s *SessionState) Clone() *SessionState {
	out := &SessionState{
		Candidates:           make(map[string]*CandidateRecord, len(s.Candidates)),
		CandidateOrder:       append([]string{}, s.CandidateOrder...),
		ActiveCandidateID:    s.ActiveCandidateID,
		CurrentQuestionIndex: s.CurrentQuestionIndex,
	}
	out.QuestionDeadline = copyTime(s.QuestionDeadline)
	out.PausedAt = copyTime(s.PausedAt)
	out.WelcomeBackSeenAt = copyTime(s.WelcomeBackSeenAt)
	if s.PausedRemainingSeconds != nil {
		v := *s.PausedRemainingSeconds
		out.PausedRemainingSeconds = &v
	}
	for id, rec := range s.Candidates {
		out.Candidates[id] = rec.Clone()
	}
	return out
}

// Clone returns a deep copy of the record.
func (c *CandidateRecord) Clone() *CandidateRecord {
	out := *c
	out.PendingProfileFields = append([]ProfileField{}, c.PendingProfileFields...)
	out.Chat = append([]ChatMessage{}, c.Chat...)
	out.Questions = make([]InterviewQuestion, len(c.Questions))
	for i, q := range c.Questions {
		cq := q
		cq.AskedAt = copyTime(q.AskedAt)
		cq.AnsweredAt = copyTime(q.AnsweredAt)
		if q.Answer != nil {
			a := *q.Answer
			cq.Answer = &a
		}
		if q.Score != nil {
			sc := *q.Score
			cq.Score = &sc
		}
		out.Questions[i] = cq
	}
	if c.FinalScore != nil {
		fs := *c.FinalScore
		out.FinalScore = &fs
	}
	return &out
}

func copyTime(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	v := *t
	return &v
}
