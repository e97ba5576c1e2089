package mux

import (
	"dicepoker-server/pkg/dicepoker/handanalyzer"
	"net/http"
)

type handResponse struct {
	Hand       handanalyzer.Hand `json:"hand"`
	Precedence int               `json:"precedence"`
}

// getHand lists every hand, best first
func (m *Mux) getHand() http.HandlerFunc {
	hands := handanalyzer.ByPrecedence()
	payload := make([]handResponse, len(hands))
	for i, h := range hands {
		payload[i] = handResponse{
			Hand:       h,
			Precedence: i + 1,
		}
	}

	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, payload)
	}
}
