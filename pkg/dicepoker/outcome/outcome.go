// Package outcome enumerates every way a set of dice can land
package outcome

import (
	"dicepoker-server/pkg/dice"
	"fmt"
)

// MaxRerolls is the most dice that can be rerolled at once
const MaxRerolls = dice.HandSize

// Count returns the number of outcomes when rolling n dice, 6^n
func Count(n int) int {
	checkRerolls(n)

	total := 1
	for i := 0; i < n; i++ {
		total *= dice.Faces
	}

	return total
}

// Enumerate returns all 6^n ordered outcomes of rolling n dice
// The outcomes are in lexicographic order: [1 1], [1 2], ..., [6 6]
// Rolling zero dice has exactly one outcome, the empty roll
func Enumerate(n int) []dice.Dice {
	total := Count(n)
	outcomes := make([]dice.Dice, 0, total)

	current := make(dice.Dice, n)
	for i := range current {
		current[i] = dice.MinFace
	}

	for {
		roll := make(dice.Dice, n)
		copy(roll, current)
		outcomes = append(outcomes, roll)

		if !next(current) {
			return outcomes
		}
	}
}

// next advances the roll like an odometer, with the last die turning fastest
// returns false once every outcome has been visited
func next(current dice.Dice) bool {
	for i := len(current) - 1; i >= 0; i-- {
		if current[i] < dice.MaxFace {
			current[i]++
			return true
		}

		current[i] = dice.MinFace
	}

	return false
}

func checkRerolls(n int) {
	if n < 0 || n > MaxRerolls {
		panic(fmt.Sprintf("cannot reroll %d dice, must be 0-%d", n, MaxRerolls))
	}
}
