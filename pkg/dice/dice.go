package dice

import (
	"strconv"
	"strings"
)

// Die is the face value of a single six-sided die
type Die int

// die and hand limits
const (
	MinFace  = 1
	MaxFace  = 6
	Faces    = MaxFace - MinFace + 1
	HandSize = 5
)

// Valid returns true if the die shows a face from 1 to 6
func (d Die) Valid() bool {
	return d >= MinFace && d <= MaxFace
}

// Dice is an ordered collection of dice
// The order is kept for display only, hands are scored by value
type Dice []Die

// New returns a validated five-die hand
func New(values ...int) (Dice, error) {
	if len(values) != HandSize {
		return nil, &InvalidDiceCountError{Count: len(values)}
	}

	d := make(Dice, len(values))
	for i, v := range values {
		die := Die(v)
		if !die.Valid() {
			return nil, &InvalidDieValueError{Position: i, Value: v}
		}

		d[i] = die
	}

	return d, nil
}

// MustNew is like New, but panics on invalid input
// It is intended for tests and constants
func MustNew(values ...int) Dice {
	d, err := New(values...)
	if err != nil {
		panic(err)
	}

	return d
}

// Counts returns the number of dice showing each face
// The count for face f is at index f-1
func (d Dice) Counts() [Faces]int {
	var counts [Faces]int
	for _, die := range d {
		counts[die-MinFace]++
	}

	return counts
}

// Contains returns true if any die shows the value
func (d Dice) Contains(value Die) bool {
	for _, die := range d {
		if die == value {
			return true
		}
	}

	return false
}

// Without returns the dice whose value does not appear in exclude
// Matching is done by value, so every die of an excluded value is removed
func (d Dice) Without(exclude Dice) Dice {
	remaining := make(Dice, 0, len(d))
	for _, die := range d {
		if !exclude.Contains(die) {
			remaining = append(remaining, die)
		}
	}

	return remaining
}

// Concat returns a new slice containing d followed by other
func (d Dice) Concat(other Dice) Dice {
	combined := make(Dice, 0, len(d)+len(other))
	combined = append(combined, d...)
	return append(combined, other...)
}

// Ints returns the dice as plain integers
func (d Dice) Ints() []int {
	ints := make([]int, len(d))
	for i, die := range d {
		ints[i] = int(die)
	}

	return ints
}

// String returns the dice joined by commas, or "None" if there are no dice
func (d Dice) String() string {
	if len(d) == 0 {
		return "None"
	}

	parts := make([]string, len(d))
	for i, die := range d {
		parts[i] = strconv.Itoa(int(die))
	}

	return strings.Join(parts, ", ")
}
