package skewheap

import (
	"errors"
	"fmt"

	"github.com/hupe1980/skewheap/internal/arena"
)

var (
	// ErrArenaExhausted is returned when no node slot can be addressed
	// (the configured WithMaxNodes limit or the uint32 handle space).
	ErrArenaExhausted = errors.New("arena exhausted")

	// ErrMemoryLimitExceeded is returned when the resource controller refuses
	// memory for new node slots.
	ErrMemoryLimitExceeded = errors.New("memory limit exceeded")
)

// OpError records a failed heap operation. The heap is unchanged.
//
// The underlying sentinel can be matched with errors.Is.
type OpError struct {
	Op   string // "put" or "adopt"
	Size int    // heap size when the operation failed
	Err  error
}

func (e *OpError) Error() string {
	return fmt.Sprintf("skewheap: %s at size %d: %v", e.Op, e.Size, e.Err)
}

func (e *OpError) Unwrap() error { return e.Err }

func translateError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, arena.ErrExhausted) {
		return fmt.Errorf("%w: %w", ErrArenaExhausted, err)
	}
	if errors.Is(err, arena.ErrMemoryLimit) {
		return fmt.Errorf("%w: %w", ErrMemoryLimitExceeded, err)
	}

	return err
}
