package handanalyzer

import (
	"encoding/json"
	"fmt"
)

// Hand is a dice poker hand, i.e., full house
type Hand int

// Constants for hand
// The order matches the rows of a probability table
const (
	Nothing Hand = iota
	Pair
	TwoPairs
	ThreeOfAKind
	FiveHighStraight
	SixHighStraight
	FullHouse
	FourOfAKind
	FiveOfAKind
)

// NumHands is the number of hands in the taxonomy
const NumHands = int(FiveOfAKind) + 1

// String returns the string representation of a hand
func (h Hand) String() string {
	switch h {
	case Nothing:
		return "Nothing"
	case Pair:
		return "Pair"
	case TwoPairs:
		return "Two Pairs"
	case ThreeOfAKind:
		return "Three of a Kind"
	case FiveHighStraight:
		return "Five High Straight"
	case SixHighStraight:
		return "Six High Straight"
	case FullHouse:
		return "Full House"
	case FourOfAKind:
		return "Four of a Kind"
	case FiveOfAKind:
		return "Five of a Kind"
	default:
		panic(fmt.Sprintf("unknown hand: %d", h))
	}
}

// All returns every hand in table order, starting with Nothing
func All() []Hand {
	hands := make([]Hand, NumHands)
	for i := range hands {
		hands[i] = Hand(i)
	}

	return hands
}

// ByPrecedence returns every hand in display order, best first
// Note: straights are displayed below a pair
func ByPrecedence() []Hand {
	return []Hand{
		FiveOfAKind,
		FourOfAKind,
		FullHouse,
		ThreeOfAKind,
		TwoPairs,
		Pair,
		SixHighStraight,
		FiveHighStraight,
		Nothing,
	}
}

// Parse returns the hand for a label, i.e., "Two Pairs"
func Parse(label string) (Hand, error) {
	for _, h := range All() {
		if h.String() == label {
			return h, nil
		}
	}

	return Nothing, fmt.Errorf("unknown hand: %q", label)
}

// MarshalJSON encodes the hand as its label
func (h Hand) MarshalJSON() ([]byte, error) {
	return json.Marshal(h.String())
}

// UnmarshalJSON decodes a hand label
func (h *Hand) UnmarshalJSON(b []byte) error {
	var label string
	if err := json.Unmarshal(b, &label); err != nil {
		return err
	}

	hand, err := Parse(label)
	if err != nil {
		return err
	}

	*h = hand
	return nil
}
