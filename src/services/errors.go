package services

import (
	"errors"
	"studio/src/store"
	"studio/src/types"
)

// storeError converts a repository failure into the error taxonomy used by
// the handlers.
func storeError(err error, resource string, op string) error {
	if errors.Is(err, store.ErrNotFound) {
		return &types.NotFoundError{Resource: resource}
	}
	return &types.InternalError{Op: op, Err: err}
}
