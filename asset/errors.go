package asset

import (
	"errors"
	"fmt"
)

var (
	ErrEmptyID       = errors.New("asset does not have ID")
	ErrUnknownStatus = errors.New("unknown asset status")

	// ErrAllocationExhausted signals that the identifier space search
	// exceeded its attempt bound. It is fatal to the create operation
	// and retryable from the caller's side.
	ErrAllocationExhausted = errors.New("identifier allocation exhausted its attempt bound")
)

type NotFoundError struct {
	AssetID string
}

func (err NotFoundError) Error() string {
	if err.AssetID != "" {
		return fmt.Sprintf("no such record: %q", err.AssetID)
	}
	return "could not find asset"
}

type DuplicateIDError struct {
	AssetID string
}

func (err DuplicateIDError) Error() string {
	return fmt.Sprintf("identifier %q is already in use", err.AssetID)
}
