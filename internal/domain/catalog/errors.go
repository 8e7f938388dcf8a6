package catalog

import (
	"fmt"

	"github.com/mverbist/hourbook/internal/repository"
)

var (
	// ErrLabelRequired indicates a missing rename label.
	ErrLabelRequired = fmt.Errorf("label required: %w", repository.ErrInvalidInput)
)
