package translate

import "errors"

var (
	ErrEmptyEndpoint   = errors.New("translate: endpoint cannot be empty")
	ErrInvalidLanguage = errors.New("translate: invalid language tag")
	ErrRequestFailed   = errors.New("translate: provider request failed")
	ErrCacheMiss       = errors.New("translate: cache miss")
	ErrEmptyRedisURL   = errors.New("translate: redis url cannot be empty")
)
