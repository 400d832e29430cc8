package selection

import (
	"strconv"
	"strings"
)

// SurpriseInput is the literal menu input that requests a random pick.
const SurpriseInput = "0"

// Choice is either an explicit 1-based menu number or a request for a surprise pick.
// The zero value carries no explicit tag and is therefore a surprise.
type Choice struct {
	n        int
	explicit bool
}

// Explicit returns a choice for the 1-based menu entry n. Values outside the
// menu are rejected by the picker, including 0.
func Explicit(n int) Choice {
	return Choice{n: n, explicit: true}
}

// Surprise returns a choice asking for a uniformly random entry.
func Surprise() Choice {
	return Choice{}
}

// IsSurprise reports whether the choice defers to the random picker.
func (c Choice) IsSurprise() bool {
	return !c.explicit
}

// Number returns the 1-based entry of an explicit choice, or 0 for a surprise.
func (c Choice) Number() int {
	return c.n
}

func (c Choice) String() string {
	if c.IsSurprise() {
		return "surprise"
	}
	return strconv.Itoa(c.n)
}

// ParseChoice converts raw menu input into a Choice. SurpriseInput selects a surprise.
func ParseChoice(input string, menuSize int) (Choice, error) {
	trimmed := strings.TrimSpace(input)
	if trimmed == SurpriseInput {
		return Surprise(), nil
	}
	n, err := strconv.Atoi(trimmed)
	if err != nil || n < 1 || n > menuSize {
		return Choice{}, &InvalidChoiceError{Input: trimmed, MenuSize: menuSize}
	}
	return Explicit(n), nil
}

// FromNumber maps the numeric form used by CLI flags (0 = surprise) to a Choice.
func FromNumber(n, menuSize int) (Choice, error) {
	return ParseChoice(strconv.Itoa(n), menuSize)
}
