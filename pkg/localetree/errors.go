package localetree

import "errors"

var (
	ErrInvalidDocument = errors.New("localetree: invalid document")
	ErrDuplicateKey    = errors.New("localetree: duplicate mapping key")
	ErrMaxDepth        = errors.New("localetree: maximum tree depth exceeded")
	ErrNilNode         = errors.New("localetree: nil node")
)
