package entry

import (
	"errors"
	"fmt"

	"github.com/mverbist/hourbook/internal/repository"
)

var (
	// ErrTaskRequired indicates a missing or blank task label.
	ErrTaskRequired = fmt.Errorf("task required: %w", repository.ErrInvalidInput)
	// ErrInvalidDate indicates an activity date not in YYYY-MM-DD form.
	ErrInvalidDate = fmt.Errorf("invalid date: %w", repository.ErrInvalidInput)
	// ErrTimeRequired indicates a missing or unparsable start or end time.
	ErrTimeRequired = fmt.Errorf("time required: %w", repository.ErrInvalidInput)
	// ErrEndBeforeStart indicates the interval end is not strictly after its start.
	ErrEndBeforeStart = fmt.Errorf("end before start: %w", repository.ErrInvalidInput)
	// ErrInvalidDuration indicates the interval rounds to zero minutes.
	ErrInvalidDuration = fmt.Errorf("invalid duration: %w", repository.ErrInvalidInput)
	// ErrEntryNotFound indicates the entry doesn't exist or belongs to another member.
	ErrEntryNotFound = errors.New("entry not found")
)
