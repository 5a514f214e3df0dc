package circular

import (
	"github.com/pkg/errors"
)

var (
	// ErrEmptyList is raised when erasing from an empty list.
	ErrEmptyList = errors.New("circular list is empty")

	// ErrNotInList is raised when a location does not belong to the list.
	ErrNotInList = errors.New("location is not in the circular list")

	// ErrNotEmptyLocation is raised when inserting into an empty list at a
	// location other than none.
	ErrNotEmptyLocation = errors.New("circular list is empty but location is not none")

	// ErrInvalidPosition is raised when reading or advancing a none iterator.
	ErrInvalidPosition = errors.New("iterator does not reference a node")

	ErrNilFunc = errors.New("nil function")
)
