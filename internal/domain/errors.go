package domain

import "errors"

// Sentinel errors used across layers. All of these are recoverable
// outcomes a session keeps running through; they travel inside Results,
// never as panics.
var (
	ErrNotFound          = errors.New("not found")
	ErrAmbiguousItem     = errors.New("item needs a variant choice")
	ErrInvalidSize       = errors.New("size missing or not offered for item")
	ErrInvalidIndex      = errors.New("line index out of range")
	ErrEmptyOrder        = errors.New("order has no items")
	ErrNoActiveOrder     = errors.New("no order in progress")
	ErrSourceUnavailable = errors.New("menu source unavailable")
)
