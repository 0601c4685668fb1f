package model

import "errors"

// Common errors used across the application
var (
	// Game errors
	ErrGameNotFound      = errors.New("game not found")
	ErrCorruptGameRecord = errors.New("stored game record is corrupt")

	// Roster errors
	ErrNotEnoughParticipants = errors.New("at least two participants are required")
	ErrTooManyParticipants   = errors.New("too many participants")
	ErrRosterAtMinimum       = errors.New("roster cannot be empty")
	ErrDuplicateParticipant  = errors.New("participant name already in roster")
	ErrIncompleteParticipant = errors.New("participant is missing required fields")
	ErrParticipantNotFound   = errors.New("participant not found")

	// Assignment errors
	ErrSelfAssignment    = errors.New("participant assigned to themselves")
	ErrInvalidAssignment = errors.New("assignment is not a derangement of the roster")

	// Code generation errors
	ErrCodeSpaceExhausted = errors.New("could not generate a unique game code")
)
