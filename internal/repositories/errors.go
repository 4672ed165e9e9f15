package repositories

import "errors"

var (
	// ErrNotFound means the backing store does not exist yet
	ErrNotFound = errors.New("store not found")
	// ErrCorrupt means the backing store exists but cannot be decoded
	ErrCorrupt = errors.New("store is malformed")
)

func IsNotFoundError(err error) bool {
	return errors.Is(err, ErrNotFound)
}

func IsCorruptError(err error) bool {
	return errors.Is(err, ErrCorrupt)
}
