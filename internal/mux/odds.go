package mux

import (
	"dicepoker-server/pkg/dice"
	"dicepoker-server/pkg/dicepoker/odds"
	"errors"
	"net/http"
)

type postClassifyPayload struct {
	Dice []interface{} `json:"dice"`
}

func (m *Mux) postClassify() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var pp postClassifyPayload
		if !decodeRequest(w, r, &pp) {
			return
		}

		res, err := odds.ClassifyValues(pp.Dice)
		if err != nil {
			writeDiceError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, res)
	}
}

type postOddsPayload struct {
	Player   []interface{} `json:"player"`
	Opponent []interface{} `json:"opponent"`
}

func (m *Mux) postOdds() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var pp postOddsPayload
		if !decodeRequest(w, r, &pp) {
			return
		}

		res, err := odds.ComputeValues(pp.Player, pp.Opponent)
		if err != nil {
			writeDiceError(w, err)
			return
		}

		requestLogger(r).WithField("playerHand", res.PlayerHand.String()).
			WithField("opponentHand", res.OpponentHand.String()).
			Debug("odds calculated")

		writeJSON(w, http.StatusOK, res)
	}
}

// writeDiceError treats invalid dice as a 400, anything else as a 500
func writeDiceError(w http.ResponseWriter, err error) {
	if isDiceError(err) {
		writeJSONError(w, http.StatusBadRequest, err)
		return
	}

	writeJSONError(w, http.StatusInternalServerError, err)
}

func isDiceError(err error) bool {
	return errors.Is(err, dice.ErrInvalidDieValue) || errors.Is(err, dice.ErrInvalidDiceCount)
}
