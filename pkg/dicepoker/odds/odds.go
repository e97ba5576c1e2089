// Package odds compares two dice poker hands and the odds of improving them
package odds

import (
	"dicepoker-server/pkg/dice"
	"dicepoker-server/pkg/dicepoker/handanalyzer"
	"dicepoker-server/pkg/dicepoker/probability"
	"fmt"

	"github.com/sirupsen/logrus"
)

// Side identifies whose dice are being evaluated
type Side string

// side constants
const (
	Player   Side = "player"
	Opponent Side = "opponent"
)

// ClassifyResult is a single classified hand
type ClassifyResult struct {
	Hand   handanalyzer.Hand `json:"hand"`
	Keep   dice.Dice         `json:"keep"`
	Reroll dice.Dice         `json:"reroll"`
}

// Result compares the player's hand to the opponent's
type Result struct {
	PlayerHand   handanalyzer.Hand `json:"playerHand"`
	OpponentHand handanalyzer.Hand `json:"opponentHand"`

	PlayerKeep     dice.Dice `json:"playerKeep"`
	OpponentKeep   dice.Dice `json:"opponentKeep"`
	PlayerReroll   dice.Dice `json:"playerReroll"`
	OpponentReroll dice.Dice `json:"opponentReroll"`

	PlayerProbabilities   *probability.Table `json:"playerProbabilities"`
	OpponentProbabilities *probability.Table `json:"opponentProbabilities"`

	// OpponentLikelyHand is the opponent's most probable hand after a reroll
	OpponentLikelyHand handanalyzer.Hand `json:"opponentLikelyHand"`

	PlayerAdvice   string `json:"playerAdvice"`
	OpponentAdvice string `json:"opponentAdvice"`
}

// Classify validates five dice and returns the hand along with the dice to keep and reroll
func Classify(values []int) (*ClassifyResult, error) {
	d, err := dice.New(values...)
	if err != nil {
		return nil, err
	}

	return classify(d), nil
}

// ClassifyValues is like Classify, but for raw values such as those decoded from JSON
func ClassifyValues(values []interface{}) (*ClassifyResult, error) {
	d, err := dice.FromValues(values)
	if err != nil {
		return nil, err
	}

	return classify(d), nil
}

func classify(d dice.Dice) *ClassifyResult {
	h := handanalyzer.New(d)
	return &ClassifyResult{
		Hand:   h.GetHand(),
		Keep:   h.GetKeep(),
		Reroll: h.GetReroll(),
	}
}

// Compute validates both hands, then calculates each side's reroll odds and advice
// If either hand is invalid, nothing is calculated
func Compute(player, opponent []int) (*Result, error) {
	playerDice, err := validate(Player, player)
	if err != nil {
		return nil, err
	}

	opponentDice, err := validate(Opponent, opponent)
	if err != nil {
		return nil, err
	}

	return ComputeDice(playerDice, opponentDice), nil
}

// ComputeValues is like Compute, but for raw values such as those decoded from JSON
// See dice.FromValues() for the accepted formats
func ComputeValues(player, opponent []interface{}) (*Result, error) {
	playerDice, err := validateValues(Player, player)
	if err != nil {
		return nil, err
	}

	opponentDice, err := validateValues(Opponent, opponent)
	if err != nil {
		return nil, err
	}

	return ComputeDice(playerDice, opponentDice), nil
}

// ComputeDice is like Compute, but for dice that have already been validated
func ComputeDice(player, opponent dice.Dice) *Result {
	p := classify(player)
	o := classify(opponent)

	playerTable := probability.Calculate(p.Keep, p.Reroll)
	opponentTable := probability.Calculate(o.Keep, o.Reroll)
	likely := opponentTable.MostLikely()

	logrus.WithFields(logrus.Fields{
		"playerHand":     p.Hand.String(),
		"opponentHand":   o.Hand.String(),
		"playerReroll":   len(p.Reroll),
		"opponentReroll": len(o.Reroll),
	}).Debug("computed odds")

	return &Result{
		PlayerHand:            p.Hand,
		OpponentHand:          o.Hand,
		PlayerKeep:            p.Keep,
		OpponentKeep:          o.Keep,
		PlayerReroll:          p.Reroll,
		OpponentReroll:        o.Reroll,
		PlayerProbabilities:   playerTable,
		OpponentProbabilities: opponentTable,
		OpponentLikelyHand:    likely,
		PlayerAdvice:          PlayerAdvice(p.Hand, o.Hand, likely),
		OpponentAdvice:        OpponentAdvice(p.Hand, o.Hand),
	}
}

func validate(side Side, values []int) (dice.Dice, error) {
	d, err := dice.New(values...)
	if err != nil {
		return nil, fmt.Errorf("%s dice: %w", side, err)
	}

	return d, nil
}

func validateValues(side Side, values []interface{}) (dice.Dice, error) {
	d, err := dice.FromValues(values)
	if err != nil {
		return nil, fmt.Errorf("%s dice: %w", side, err)
	}

	return d, nil
}
