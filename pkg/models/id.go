package models

import "github.com/google/uuid"

// NewID produces a unique opaque identifier for messages, candidates, and
// questions.
func NewID() string {
	return uuid.NewString()
}
