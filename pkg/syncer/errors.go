package syncer

import "errors"

var (
	ErrNilProvider     = errors.New("syncer: translation provider cannot be nil")
	ErrNilReference    = errors.New("syncer: reference tree cannot be nil")
	ErrInvalidAttempts = errors.New("syncer: max attempts must be at least 1")
	ErrInvalidDepth    = errors.New("syncer: max depth must be at least 1")
)
