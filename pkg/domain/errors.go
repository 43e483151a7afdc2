package domain

import "errors"

// ErrUnknownState is returned when a string does not name one of the highlight states.
var ErrUnknownState = errors.New("unknown state")

// ErrRegionNotFound is returned when a region id is not present in the index.
var ErrRegionNotFound = errors.New("region not found")

// ErrSessionNotFound is returned when a session ID cannot be found in the store.
var ErrSessionNotFound = errors.New("session not found")

// ErrInconsistent is returned when the model and the region index disagree.
var ErrInconsistent = errors.New("model and region index are inconsistent")
