package inventory

import (
	"errors"
	"fmt"

	"github.com/fairshare-aid/backend/internal/models"
)

var (
	ErrInvalidQuantity = errors.New("the quantity must be a positive number")
	ErrInvalidStrategy = errors.New("the strategy must be one of equal, priority")
	ErrNoFamilies      = fmt.Errorf("%w family registered", models.ErrResourceNotFound)
)

// wrap returns known errors unchanged and marks everything else as
// an internal error, keeping the cause.
func wrap(err error) error {
	if err == nil || models.IsKnown(err) || errors.Is(err, ErrInvalidQuantity) || errors.Is(err, ErrInvalidStrategy) {
		return err
	}

	return fmt.Errorf("%w: %w", models.ErrGeneral, err)
}
