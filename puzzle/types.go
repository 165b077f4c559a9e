package puzzle

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for puzzle construction and parsing.
var (
	// ErrUnknownItem is returned by ParseItem for names outside the item set.
	ErrUnknownItem = errors.New("puzzle: unknown item")

	// ErrOptionViolation is returned by New when an Option is invalid.
	ErrOptionViolation = errors.New("puzzle: invalid option supplied")
)

// Bank is one side of the river.
type Bank uint8

const (
	Near Bank = iota // Near is the starting bank.
	Far              // Far is the goal bank.
)

// Opposite returns the other bank.
func (b Bank) Opposite() Bank {
	if b == Near {
		return Far
	}
	return Near
}

// String returns the lowercase bank name used in move descriptions.
func (b Bank) String() string {
	switch b {
	case Near:
		return "left"
	case Far:
		return "right"
	}
	return fmt.Sprintf("bank(%d)", uint8(b))
}

// Item is one of the things the farmer ferries across.
type Item uint8

const (
	Wolf    Item = iota // Wolf eats the goat.
	Goat                // Goat eats the cabbage.
	Cabbage             // Cabbage eats nothing.

	// NumItems is the size of the fixed item set.
	NumItems = 3
)

var itemNames = [NumItems]string{"wolf", "goat", "cabbage"}

// Items returns every item in canonical enumeration order.
func Items() []Item {
	return []Item{Wolf, Goat, Cabbage}
}

// valid reports whether it belongs to the item set.
func (it Item) valid() bool { return it < NumItems }

// String returns the lowercase item name.
func (it Item) String() string {
	if it.valid() {
		return itemNames[it]
	}
	return fmt.Sprintf("item(%d)", uint8(it))
}

// ParseItem maps a case-insensitive item name back to its Item.
func ParseItem(name string) (Item, error) {
	n := strings.ToLower(strings.TrimSpace(name))
	for i, s := range itemNames {
		if s == n {
			return Item(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownItem, name)
}

// State is a complete snapshot of the puzzle: where the farmer is and
// where each item is. It is a value type; Items is an array, not a slice.
type State struct {
	Farmer Bank
	Items  [NumItems]Bank
}

// Start returns the initial configuration with everyone on Near.
func Start() State {
	return State{}
}

// Bank returns the bank item it currently occupies.
func (s State) Bank(it Item) Bank {
	return s.Items[it]
}

// Move is the farmer crossing the river, alone or with one item.
// Item is meaningless when Alone is true.
type Move struct {
	Alone bool
	Item  Item
}

// CrossAlone returns the move in which the farmer crosses with no cargo.
func CrossAlone() Move {
	return Move{Alone: true}
}

// CrossWith returns the move in which the farmer escorts it.
func CrossWith(it Item) Move {
	return Move{Item: it}
}

// Cargo returns the escorted item and true, or false for a solo crossing.
func (m Move) Cargo() (Item, bool) {
	if m.Alone {
		return 0, false
	}
	return m.Item, true
}

// String returns "alone" or the escorted item's name.
func (m Move) String() string {
	if m.Alone {
		return "alone"
	}
	return m.Item.String()
}

// Rules is the edibility relation: eats[a][b] means a consumes b when
// the two are left together without the farmer.
type Rules struct {
	eats [NumItems][NumItems]bool
}

// ClassicRules returns the canonical relation: wolf eats goat, goat eats cabbage.
func ClassicRules() Rules {
	var r Rules
	r.eats[Wolf][Goat] = true
	r.eats[Goat][Cabbage] = true
	return r
}

// CanEat reports whether a consumes b.
func (r Rules) CanEat(a, b Item) bool {
	if !a.valid() || !b.valid() {
		return false
	}
	return r.eats[a][b]
}

// With returns a copy of r with pred→prey added.
// Items outside the item set leave the copy unchanged.
func (r Rules) With(pred, prey Item) Rules {
	if pred.valid() && prey.valid() {
		r.eats[pred][prey] = true
	}
	return r
}

// Option configures a Puzzle built by New.
// An invalid Option is recorded and surfaced as ErrOptionViolation by New.
type Option func(*Puzzle)

// WithEdible adds pred→prey to the edibility relation.
func WithEdible(pred, prey Item) Option {
	return func(p *Puzzle) {
		switch {
		case !pred.valid() || !prey.valid():
			p.err = fmt.Errorf("%w: unknown item in pair %s:%s", ErrOptionViolation, pred, prey)
		case pred == prey:
			p.err = fmt.Errorf("%w: %s cannot eat itself", ErrOptionViolation, pred)
		default:
			p.rules = p.rules.With(pred, prey)
		}
	}
}

// WithRules replaces the whole edibility relation.
func WithRules(r Rules) Option {
	return func(p *Puzzle) {
		for _, it := range Items() {
			if r.eats[it][it] {
				p.err = fmt.Errorf("%w: %s cannot eat itself", ErrOptionViolation, it)
				return
			}
		}
		p.rules = r
	}
}
