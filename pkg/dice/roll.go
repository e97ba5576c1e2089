package dice

import "dicepoker-server/internal/rng"

// Roll returns a hand of five random dice
func Roll(gen rng.Generator) Dice {
	d := make(Dice, HandSize)
	for i := range d {
		d[i] = Die(gen.Intn(Faces) + MinFace)
	}

	return d
}
