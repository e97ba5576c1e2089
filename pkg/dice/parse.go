package dice

import (
	"encoding/json"
	"math"
	"regexp"
	"strconv"
	"strings"
)

var separatorRx = regexp.MustCompile(`[\s,]+`)

// FromString parses a hand in the format of "3,3,3,5,2" or "3 3 3 5 2"
func FromString(s string) (Dice, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, &InvalidDiceCountError{Count: 0}
	}

	return FromStrings(separatorRx.Split(s, -1))
}

// FromStrings parses one die per string
func FromStrings(values []string) (Dice, error) {
	ints := make([]int, len(values))
	for i, s := range values {
		v, err := strconv.Atoi(strings.TrimSpace(s))
		if err != nil {
			return nil, &InvalidDieValueError{Position: i, Value: strconv.Quote(s)}
		}

		ints[i] = v
	}

	return New(ints...)
}

// FromValues parses dice decoded from a JSON payload
// Numbers must be whole and strings must hold an integer, i.e., [3, "3", 3.0, 5, 2]
func FromValues(values []interface{}) (Dice, error) {
	ints := make([]int, len(values))
	for i, val := range values {
		v, ok := intValue(val)
		if !ok {
			return nil, &InvalidDieValueError{Position: i, Value: val}
		}

		ints[i] = v
	}

	return New(ints...)
}

func intValue(val interface{}) (int, bool) {
	switch v := val.(type) {
	case int:
		return v, true
	case float64:
		return wholeValue(v)
	case json.Number:
		if i, err := v.Int64(); err == nil {
			return int(i), true
		}

		f, err := v.Float64()
		if err != nil {
			return 0, false
		}

		return wholeValue(f)
	case string:
		i, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			return 0, false
		}

		return i, true
	}

	return 0, false
}

// wholeValue accepts floats such as 6.0 that hold an integer
func wholeValue(f float64) (int, bool) {
	if f != math.Trunc(f) || math.Abs(f) > math.MaxInt32 {
		return 0, false
	}

	return int(f), true
}
