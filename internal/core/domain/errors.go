package domain

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidInput  = errors.New("invalid input")
	ErrNotFound      = errors.New("not found")
	ErrBackend       = errors.New("scoring backend failure")
	ErrTemporary     = errors.New("temporary failure")
	ErrSuperseded    = errors.New("superseded by a newer fetch")
	ErrCacheNotReady = errors.New("working set not cached yet")
)

// WrapError preserves typed semantic errors with operation context.
func WrapError(kind error, operation string, err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w: %w", operation, kind, err)
}

func IsKind(err error, kind error) bool {
	return errors.Is(err, kind)
}
