package dice

import (
	"errors"
	"fmt"
)

// ErrInvalidDieValue is returned when a die is not an integer from 1 to 6
var ErrInvalidDieValue = errors.New("die value must be an integer from 1 to 6")

// ErrInvalidDiceCount is returned when a hand does not contain exactly five dice
var ErrInvalidDiceCount = errors.New("a hand must contain exactly 5 dice")

// InvalidDieValueError describes which die failed validation
type InvalidDieValueError struct {
	// Position is the zero-based index of the die in the input
	Position int
	Value    interface{}
}

func (e *InvalidDieValueError) Error() string {
	return fmt.Sprintf("die %d: invalid value %v: %s", e.Position+1, e.Value, ErrInvalidDieValue)
}

// Is allows errors.Is(err, ErrInvalidDieValue)
func (e *InvalidDieValueError) Is(target error) bool {
	return target == ErrInvalidDieValue
}

// InvalidDiceCountError describes a hand with the wrong number of dice
type InvalidDiceCountError struct {
	Count int
}

func (e *InvalidDiceCountError) Error() string {
	return fmt.Sprintf("received %d dice: %s", e.Count, ErrInvalidDiceCount)
}

// Is allows errors.Is(err, ErrInvalidDiceCount)
func (e *InvalidDiceCountError) Is(target error) bool {
	return target == ErrInvalidDiceCount
}
