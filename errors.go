package floret

import "errors"

// Sentinel errors for programmatic handling. Callers can use errors.Is to
// distinguish configuration mistakes (ErrFilterSize, ErrProbeCount,
// ErrNoHasher, ErrEmptyCorpus) from persistence problems (ErrImageSize,
// ErrSnapshotHeader).
var (
	ErrFilterSize     = errors.New("filter size must be positive")
	ErrProbeCount     = errors.New("probe count must be positive")
	ErrNoHasher       = errors.New("two hash functions are required")
	ErrImageSize      = errors.New("image length does not match filter size")
	ErrSnapshotHeader = errors.New("corrupt snapshot header")
	ErrEmptyCorpus    = errors.New("corpus contains no words")
)
