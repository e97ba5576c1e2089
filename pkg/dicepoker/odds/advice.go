package odds

import (
	"dicepoker-server/pkg/dicepoker/handanalyzer"
	"fmt"
)

// advice messages
const (
	AdviceTie            = "Re-roll to break the tie or raise the stakes."
	AdviceKeep           = "Keep current dice and raise."
	AdviceOpponentRaise  = "Opponent should raise stakes."
	AdviceOpponentReroll = "Opponent may re-roll to improve chances."
)

// PlayerAdvice suggests what the player should do
//
// Hands are compared by their names in alphabetical order, not by how
// strong they are. A "Pair" beats a "Full House" here, and "Five of a Kind"
// loses to "Four of a Kind".
// likely is the opponent's most probable hand after their reroll
func PlayerAdvice(player, opponent, likely handanalyzer.Hand) string {
	switch {
	case player == opponent:
		return AdviceTie
	case player.String() > opponent.String():
		return AdviceKeep
	default:
		return fmt.Sprintf("Re-roll to improve. Beware: opponent has a likely %s.", likely)
	}
}

// OpponentAdvice suggests what the opponent should do
// Uses the same alphabetical comparison as PlayerAdvice
func OpponentAdvice(player, opponent handanalyzer.Hand) string {
	if opponent.String() > player.String() {
		return AdviceOpponentRaise
	}

	return AdviceOpponentReroll
}
