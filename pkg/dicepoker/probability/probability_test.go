package probability

import (
	"dicepoker-server/pkg/dice"
	"dicepoker-server/pkg/dicepoker/handanalyzer"
	"dicepoker-server/pkg/snapshot"
	"testing"

	"github.com/stretchr/testify/assert"
)

func calculate(values ...int) *Table {
	h := handanalyzer.New(dice.MustNew(values...))
	return Calculate(h.GetKeep(), h.GetReroll())
}

func percentages(t *Table) map[handanalyzer.Hand]float64 {
	m := make(map[handanalyzer.Hand]float64)
	for _, row := range t.Rows {
		if row.Count > 0 {
			m[row.Hand] = row.Percentage
		}
	}

	return m
}

func TestCalculate_threeOfAKind(t *testing.T) {
	a := assert.New(t)

	table := Calculate(dice.Dice{3, 3, 3}, dice.Dice{5, 2})
	a.Equal(36, table.Outcomes)
	a.Equal(map[handanalyzer.Hand]float64{
		handanalyzer.ThreeOfAKind: 55.56,
		handanalyzer.FullHouse:    13.89,
		handanalyzer.FourOfAKind:  27.78,
		handanalyzer.FiveOfAKind:  2.78,
	}, percentages(table))

	a.Equal(Row{Hand: handanalyzer.ThreeOfAKind, Count: 20, Percentage: 55.56}, table.Get(handanalyzer.ThreeOfAKind))
	a.Equal(Row{Hand: handanalyzer.FullHouse, Count: 5, Percentage: 13.89}, table.Get(handanalyzer.FullHouse))
	a.Equal(Row{Hand: handanalyzer.FourOfAKind, Count: 10, Percentage: 27.78}, table.Get(handanalyzer.FourOfAKind))
	a.Equal(Row{Hand: handanalyzer.FiveOfAKind, Count: 1, Percentage: 2.78}, table.Get(handanalyzer.FiveOfAKind))
	a.Equal(handanalyzer.ThreeOfAKind, table.MostLikely())
}

func TestCalculate_twoPairs(t *testing.T) {
	table := calculate(2, 2, 4, 4, 6)
	assert.Equal(t, 6, table.Outcomes)
	assert.Equal(t, map[handanalyzer.Hand]float64{
		handanalyzer.TwoPairs:  66.67,
		handanalyzer.FullHouse: 33.33,
	}, percentages(table))
}

func TestCalculate_fourOfAKind(t *testing.T) {
	table := calculate(6, 6, 6, 6, 1)
	assert.Equal(t, map[handanalyzer.Hand]float64{
		handanalyzer.FourOfAKind: 83.33,
		handanalyzer.FiveOfAKind: 16.67,
	}, percentages(table))
}

func TestCalculate_pair(t *testing.T) {
	a := assert.New(t)

	table := calculate(1, 1, 2, 3, 4)
	a.Equal(216, table.Outcomes)
	a.Equal(map[handanalyzer.Hand]float64{
		handanalyzer.Pair:         27.78,
		handanalyzer.TwoPairs:     27.78,
		handanalyzer.ThreeOfAKind: 27.78,
		handanalyzer.FullHouse:    9.26,
		handanalyzer.FourOfAKind:  6.94,
		handanalyzer.FiveOfAKind:  0.46,
	}, percentages(table))

	// three-way tie, the first row wins
	a.Equal(handanalyzer.Pair, table.MostLikely())
}

func TestCalculate_nothing(t *testing.T) {
	table := calculate(1, 2, 3, 4, 6)
	assert.Equal(t, 7776, table.Outcomes)
	assert.Equal(t, handanalyzer.Pair, table.MostLikely())
	snapshot.ValidateSnapshot(t, table, 0)
}

func TestCalculate_noReroll(t *testing.T) {
	a := assert.New(t)

	for _, values := range [][]int{
		{6, 6, 6, 6, 6},
		{3, 3, 3, 5, 5},
		{1, 2, 3, 4, 5},
		{2, 3, 4, 5, 6},
	} {
		h := handanalyzer.New(dice.MustNew(values...))
		if !a.Empty(h.GetReroll()) {
			continue
		}

		table := Calculate(h.GetKeep(), h.GetReroll())
		a.Equal(1, table.Outcomes)
		a.Equal(map[handanalyzer.Hand]float64{h.GetHand(): 100}, percentages(table))
		a.Equal(h.GetHand(), table.MostLikely())
	}

	snapshot.ValidateSnapshot(t, Calculate(dice.Dice{6, 6, 6, 6, 6}, dice.Dice{}), 0)
}

// every distinct roll produces nine rows that add up to 100
func TestCalculate_sumsTo100(t *testing.T) {
	var roll func(d dice.Dice, min dice.Die)
	roll = func(d dice.Dice, min dice.Die) {
		if len(d) == dice.HandSize {
			h := handanalyzer.New(d)
			table := Calculate(h.GetKeep(), h.GetReroll())

			assert.Len(t, table.Rows, handanalyzer.NumHands)
			for i, row := range table.Rows {
				assert.Equal(t, handanalyzer.Hand(i), row.Hand)
				assert.True(t, row.Percentage >= 0 && row.Percentage <= 100)
			}
			assert.InDelta(t, 100, table.Sum(), 0.05, "dice %v", d)

			total := 0
			for _, row := range table.Rows {
				total += row.Count
			}
			assert.Equal(t, table.Outcomes, total)
			return
		}

		for face := min; face <= dice.MaxFace; face++ {
			roll(append(d[:len(d):len(d)], face), face)
		}
	}

	roll(dice.Dice{}, dice.MinFace)
}

func TestTable_Get(t *testing.T) {
	table := &Table{}
	assert.Equal(t, Row{Hand: handanalyzer.Pair}, table.Get(handanalyzer.Pair))
}
