package game

import (
	"errors"

	"github.com/appengine-ltd/misplaced/internal/dialogue"
)

var (
	// ErrMissingAsset marks an unresolved text, image or audio reference.
	// Never fatal: callers substitute a placeholder and log.
	ErrMissingAsset = dialogue.ErrMissingAsset

	// ErrInvariantViolation is returned when an entry point is used after the
	// state it guards has become immutable. Panics in devassert builds.
	ErrInvariantViolation = errors.New("invariant violation")

	// ErrEmptyHistory is reported when a fall reaches the recovery threshold
	// with no stable ground sample to return to.
	ErrEmptyHistory = errors.New("empty stable ground history")

	ErrUnknownCollectible = errors.New("unknown collectible")
	ErrInvalidConfig      = errors.New("invalid config")
	ErrInvalidLevel       = errors.New("invalid level")
)
