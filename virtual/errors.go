package virtual

import "github.com/cockroachdb/errors"

var (
	// ErrInvalidSizing is returned when a height policy can not produce heights.
	ErrInvalidSizing = errors.New("invalid sizing policy")
	// ErrInvalidOverscan is returned for a negative overscan count.
	ErrInvalidOverscan = errors.New("invalid overscan")
	// ErrKeyFuncType is returned when WithKeyFunc was given a function for a
	// different item type than the engine's.
	ErrKeyFuncType = errors.New("key function does not match item type")
)
