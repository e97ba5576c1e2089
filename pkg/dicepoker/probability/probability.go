// Package probability calculates the exact odds of each hand after a reroll
package probability

import (
	"dicepoker-server/pkg/dice"
	"dicepoker-server/pkg/dicepoker/handanalyzer"
	"dicepoker-server/pkg/dicepoker/outcome"
	"math"
)

// Row is the chance of finishing with a hand
type Row struct {
	Hand handanalyzer.Hand `json:"hand"`
	// Count is the number of outcomes that make the hand
	Count int `json:"count"`
	// Percentage is rounded to two decimal places
	Percentage float64 `json:"chance"`
}

// Table holds one row per hand, in the order of handanalyzer.All()
type Table struct {
	Rows     []Row `json:"rows"`
	Outcomes int   `json:"outcomes"`
}

// Calculate rerolls every die in reroll, keeps the rest, and tallies the resulting hands
// All 6^n outcomes are evaluated, no sampling is done
func Calculate(keep, reroll dice.Dice) *Table {
	counts := make([]int, handanalyzer.NumHands)
	for _, o := range outcome.Enumerate(len(reroll)) {
		hand := handanalyzer.New(keep.Concat(o)).GetHand()
		counts[hand]++
	}

	total := outcome.Count(len(reroll))
	table := &Table{
		Rows:     make([]Row, 0, handanalyzer.NumHands),
		Outcomes: total,
	}

	for _, hand := range handanalyzer.All() {
		table.Rows = append(table.Rows, Row{
			Hand:       hand,
			Count:      counts[hand],
			Percentage: percentage(counts[hand], total),
		})
	}

	return table
}

func percentage(count, total int) float64 {
	return math.Round(float64(count)*10000/float64(total)) / 100
}

// Get returns the row for the hand
func (t *Table) Get(hand handanalyzer.Hand) Row {
	for _, row := range t.Rows {
		if row.Hand == hand {
			return row
		}
	}

	return Row{Hand: hand}
}

// Sum returns the total of all percentages
// Because of rounding, this can be slightly off of 100
func (t *Table) Sum() float64 {
	sum := 0.0
	for _, row := range t.Rows {
		sum += row.Percentage
	}

	return sum
}

// MostLikely returns the hand with the highest percentage
// Ties go to the row closest to the top of the table
func (t *Table) MostLikely() handanalyzer.Hand {
	best := Row{Percentage: -1}
	for _, row := range t.Rows {
		if row.Percentage > best.Percentage {
			best = row
		}
	}

	return best.Hand
}
