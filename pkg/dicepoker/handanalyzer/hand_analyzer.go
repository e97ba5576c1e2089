package handanalyzer

import (
	"dicepoker-server/pkg/dice"
	"sort"
)

// Classification is the hand made by five dice and the dice worth keeping
type Classification struct {
	Hand Hand      `json:"hand"`
	Keep dice.Dice `json:"keep"`
}

// HandAnalyzer can analyze a hand of dice
type HandAnalyzer struct {
	dice   dice.Dice
	counts [dice.Faces]int

	// face counts, largest first
	sortedCounts []int

	hand Hand
	keep dice.Dice
}

// New will return a new HandAnalyzer instance
// The dice must already be validated, see dice.New()
func New(d dice.Dice) *HandAnalyzer {
	newDice := make(dice.Dice, len(d))
	copy(newDice, d)

	h := &HandAnalyzer{
		dice:   newDice,
		counts: newDice.Counts(),
	}

	// the method order here is required
	h.analyzeHand()
	h.calculateHand()

	return h
}

// Classify is a shortcut for New(d) that returns the hand and the dice to keep
func Classify(d dice.Dice) Classification {
	h := New(d)
	return Classification{
		Hand: h.GetHand(),
		Keep: h.GetKeep(),
	}
}

func (h *HandAnalyzer) analyzeHand() {
	h.sortedCounts = make([]int, len(h.counts))
	copy(h.sortedCounts, h.counts[:])
	sort.Sort(sort.Reverse(sort.IntSlice(h.sortedCounts)))
}

// calculateHand will determine the hand and the dice to keep
// The first matching rule wins
func (h *HandAnalyzer) calculateHand() {
	c0, c1 := h.sortedCounts[0], h.sortedCounts[1]

	switch {
	case c0 == 5:
		h.hand, h.keep = FiveOfAKind, h.keepAll()
	case c0 == 4:
		h.hand, h.keep = FourOfAKind, h.keepAtLeast(4)
	case c0 == 3 && c1 == 2:
		h.hand, h.keep = FullHouse, h.keepAll()
	case c0 == 3:
		h.hand, h.keep = ThreeOfAKind, h.keepAtLeast(3)
	case c0 == 2 && c1 == 2:
		h.hand, h.keep = TwoPairs, h.keepAtLeast(2)
	case c0 == 2:
		h.hand, h.keep = Pair, h.keepAtLeast(2)
	default:
		if straight, ok := h.GetStraight(); ok {
			h.hand, h.keep = straight, h.keepAll()
		} else {
			h.hand, h.keep = Nothing, dice.Dice{}
		}
	}
}

func (h *HandAnalyzer) keepAll() dice.Dice {
	keep := make(dice.Dice, len(h.dice))
	copy(keep, h.dice)
	return keep
}

// keepAtLeast keeps every die whose value shows up at least n times
func (h *HandAnalyzer) keepAtLeast(n int) dice.Dice {
	keep := make(dice.Dice, 0, len(h.dice))
	for _, d := range h.dice {
		if h.GetCount(d) >= n {
			keep = append(keep, d)
		}
	}

	return keep
}

// GetHand will return the hand the dice make
func (h *HandAnalyzer) GetHand() Hand {
	return h.hand
}

// GetKeep will return the dice worth keeping, in their original order
func (h *HandAnalyzer) GetKeep() dice.Dice {
	keep := make(dice.Dice, len(h.keep))
	copy(keep, h.keep)
	return keep
}

// GetReroll will return the dice whose value is not kept
func (h *HandAnalyzer) GetReroll() dice.Dice {
	return h.dice.Without(h.keep)
}

// GetCount will return how many dice show the face
func (h *HandAnalyzer) GetCount(face dice.Die) int {
	if !face.Valid() {
		return 0
	}

	return h.counts[face-dice.MinFace]
}

// GetStraight will return the straight, if the five dice are all distinct and consecutive
func (h *HandAnalyzer) GetStraight() (Hand, bool) {
	if h.sortedCounts[0] != 1 || len(h.dice) != dice.HandSize {
		return Nothing, false
	}

	// with five distinct faces, exactly one face is missing
	switch {
	case h.counts[dice.MaxFace-dice.MinFace] == 0:
		return FiveHighStraight, true
	case h.counts[0] == 0:
		return SixHighStraight, true
	}

	return Nothing, false
}
