package repository

import "errors"

var (
	// ErrNotFound is returned when a requested entity does not exist.
	ErrNotFound = errors.New("entity not found")

	// ErrDuplicateUse is returned when inserting a ticket use would violate
	// the one-use-per-one-time-ticket constraint. The insert is the
	// authoritative decision point for one-time consumption.
	ErrDuplicateUse = errors.New("ticket use already recorded")
)
