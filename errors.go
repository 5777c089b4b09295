package filevault

import (
	"errors"
	"os"

	"github.com/hupe1980/filevault/adapter"
)

var (
	// ErrInvalidKey is returned when a key is empty after trimming
	// surrounding whitespace. It is raised before any adapter call.
	ErrInvalidKey = errors.New("invalid key")

	// ErrEmptyContent is returned by Save when the record carries no
	// content. Only Init's touch flow may persist an empty record.
	ErrEmptyContent = errors.New("empty content")

	// ErrNotFound is returned when no record maps to a key.
	//
	// It aliases adapter.ErrNotFound (which maps to os.ErrNotExist), so
	// `errors.Is(err, ErrNotFound)` holds for errors raised by any adapter.
	ErrNotFound = adapter.ErrNotFound

	// ErrAlreadyExists is returned by Init when a record already exists
	// for the requested key. Maps to os.ErrExist.
	ErrAlreadyExists = os.ErrExist
)
