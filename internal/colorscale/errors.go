package colorscale

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyRange matches every *EmptyRangeError.
	ErrEmptyRange = errors.New("no values to compute a range from")
	// ErrInvalidStepCount matches every *InvalidStepCountError.
	ErrInvalidStepCount = errors.New("invalid legend step count")
)

// EmptyRangeError is returned when no entity has a value for the indicator.
type EmptyRangeError struct {
	Indicator string
}

func (e *EmptyRangeError) Error() string {
	return fmt.Sprintf("indicator %q: %s", e.Indicator, ErrEmptyRange)
}

func (e *EmptyRangeError) Is(target error) bool {
	return target == ErrEmptyRange
}

// InvalidStepCountError is returned when a legend is requested with fewer than
// MinLegendSteps steps.
type InvalidStepCountError struct {
	Steps int
}

func (e *InvalidStepCountError) Error() string {
	return fmt.Sprintf("%s: %d (need at least %d)", ErrInvalidStepCount, e.Steps, MinLegendSteps)
}

func (e *InvalidStepCountError) Is(target error) bool {
	return target == ErrInvalidStepCount
}
