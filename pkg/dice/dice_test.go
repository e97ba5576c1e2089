package dice

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNew(t *testing.T) {
	a := assert.New(t)

	d, err := New(3, 3, 3, 5, 2)
	a.NoError(err)
	a.Equal(Dice{3, 3, 3, 5, 2}, d)

	d, err = New(1, 2, 3, 4, 7)
	a.Nil(d)
	a.True(errors.Is(err, ErrInvalidDieValue))
	a.False(errors.Is(err, ErrInvalidDiceCount))
	var dieErr *InvalidDieValueError
	if a.True(errors.As(err, &dieErr)) {
		a.Equal(4, dieErr.Position)
		a.Equal(7, dieErr.Value)
	}
	a.EqualError(err, "die 5: invalid value 7: die value must be an integer from 1 to 6")

	_, err = New(0, 1, 2, 3, 4)
	a.True(errors.Is(err, ErrInvalidDieValue))

	_, err = New(1, 2, 3, 4)
	a.True(errors.Is(err, ErrInvalidDiceCount))
	a.EqualError(err, "received 4 dice: a hand must contain exactly 5 dice")

	_, err = New(1, 2, 3, 4, 5, 6)
	a.True(errors.Is(err, ErrInvalidDiceCount))
}

func TestMustNew(t *testing.T) {
	assert.Equal(t, Dice{6, 6, 6, 6, 6}, MustNew(6, 6, 6, 6, 6))
	assert.Panics(t, func() {
		MustNew(6, 6, 6, 6)
	})
}

func TestDice_Counts(t *testing.T) {
	counts := MustNew(2, 2, 4, 4, 6).Counts()
	assert.Equal(t, [Faces]int{0, 2, 0, 2, 0, 1}, counts)
}

func TestDice_Without(t *testing.T) {
	a := assert.New(t)

	d := MustNew(3, 3, 3, 5, 2)
	a.Equal(Dice{5, 2}, d.Without(Dice{3, 3, 3}))
	a.Equal(Dice{}, d.Without(d))
	a.Equal(d, d.Without(Dice{}))

	// every die of a kept value is removed, even if only one was kept
	a.Equal(Dice{5, 2}, d.Without(Dice{3}))
}

func TestDice_Concat(t *testing.T) {
	keep := Dice{3, 3, 3}
	combined := keep.Concat(Dice{1, 6})
	assert.Equal(t, Dice{3, 3, 3, 1, 6}, combined)
	assert.Equal(t, Dice{3, 3, 3}, keep)
}

func TestDice_String(t *testing.T) {
	assert.Equal(t, "None", Dice{}.String())
	assert.Equal(t, "None", Dice(nil).String())
	assert.Equal(t, "5, 2", Dice{5, 2}.String())
	assert.Equal(t, []int{5, 2}, Dice{5, 2}.Ints())
}

type fixedGenerator []int

func (f *fixedGenerator) Intn(n int) int {
	v := (*f)[0]
	*f = (*f)[1:]
	return v % n
}

func TestRoll(t *testing.T) {
	gen := fixedGenerator{0, 5, 2, 2, 4}
	assert.Equal(t, Dice{1, 6, 3, 3, 5}, Roll(&gen))
}
