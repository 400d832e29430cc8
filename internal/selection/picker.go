package selection

import (
	"math/rand/v2"
	"sync"
	"time"

	"github.com/jonathan/outfit-recommender/internal/types"
)

// Picker turns choices into menu indices. Surprise picks draw from a single
// generator seeded once when the Picker is built.
type Picker struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// NewPicker returns a Picker with a deterministic seed.
func NewPicker(seed uint64) *Picker {
	return &Picker{rng: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
}

// NewPickerFromTime seeds a Picker from the current clock.
func NewPickerFromTime() *Picker {
	return NewPicker(uint64(time.Now().UnixNano()))
}

// PickIndex returns the 0-based index for choice on a menu of menuSize entries.
func (p *Picker) PickIndex(menuSize int, choice Choice) (int, error) {
	if menuSize < 1 {
		return 0, &Error{Message: "menu is empty"}
	}
	if choice.IsSurprise() {
		p.mu.Lock()
		defer p.mu.Unlock()
		return p.rng.IntN(menuSize), nil
	}
	if choice.n < 1 || choice.n > menuSize {
		return 0, &InvalidChoiceError{Input: choice.String(), MenuSize: menuSize}
	}
	return choice.n - 1, nil
}

// Choices carries one choice per menu slot.
type Choices struct {
	Outfit    Choice
	Accessory Choice
	Shoe      Choice
	Jacket    Choice
}

// SurpriseAll returns choices that leave every slot to the picker.
func SurpriseAll() Choices {
	return Choices{Outfit: Surprise(), Accessory: Surprise(), Shoe: Surprise(), Jacket: Surprise()}
}

// Indices are resolved 0-based positions in each menu.
type Indices struct {
	Outfit    int
	Accessory int
	Shoe      int
	Jacket    int
}

// PickAll resolves every slot in the order outfit, accessory, shoe, jacket.
func (p *Picker) PickAll(choices Choices) (Indices, error) {
	var idx Indices
	var err error

	if idx.Outfit, err = p.pickSlot("outfit", choices.Outfit); err != nil {
		return Indices{}, err
	}
	if idx.Accessory, err = p.pickSlot("accessory", choices.Accessory); err != nil {
		return Indices{}, err
	}
	if idx.Shoe, err = p.pickSlot("shoe", choices.Shoe); err != nil {
		return Indices{}, err
	}
	if idx.Jacket, err = p.pickSlot("jacket", choices.Jacket); err != nil {
		return Indices{}, err
	}
	return idx, nil
}

func (p *Picker) pickSlot(name string, choice Choice) (int, error) {
	i, err := p.PickIndex(types.MenuSize, choice)
	if err != nil {
		return 0, &Error{Message: "failed to pick " + name, Cause: err}
	}
	return i, nil
}
