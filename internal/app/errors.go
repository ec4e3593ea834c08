package app

import "errors"

// Sentinel errors for common application errors
var (
	ErrNoActiveCandidate = errors.New("no active candidate")
	ErrCandidateNotFound = errors.New("candidate not found")
	ErrInvalidArgument   = errors.New("invalid argument")
)
