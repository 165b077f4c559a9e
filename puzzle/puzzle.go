package puzzle

// Puzzle binds an edibility relation to the fixed start state.
// A Puzzle is immutable after New returns and safe for concurrent use.
type Puzzle struct {
	rules Rules
	start State

	// internal error recorded during option parsing
	err error
}

// Classic returns the canonical wolf, goat and cabbage puzzle.
func Classic() *Puzzle {
	return &Puzzle{rules: ClassicRules(), start: Start()}
}

// New builds a Puzzle from ClassicRules, applying opts in order.
// Returns ErrOptionViolation if any option was invalid.
func New(opts ...Option) (*Puzzle, error) {
	p := Classic()
	for _, opt := range opts {
		opt(p)
	}
	if p.err != nil {
		return nil, p.err
	}
	return p, nil
}

// Rules returns the puzzle's edibility relation.
func (p *Puzzle) Rules() Rules { return p.rules }

// Start returns the initial state.
func (p *Puzzle) Start() State { return p.start }

// IsValid reports whether s is safe: no two items sharing a bank the
// farmer is not on may eat one another.
func (p *Puzzle) IsValid(s State) bool {
	items := Items()
	for i, a := range items {
		if s.Bank(a) == s.Farmer {
			continue
		}
		for _, b := range items[i+1:] {
			if s.Bank(b) != s.Bank(a) {
				continue
			}
			if p.rules.CanEat(a, b) || p.rules.CanEat(b, a) {
				return false
			}
		}
	}
	return true
}

// IsComplete reports whether every item has reached Far.
func (p *Puzzle) IsComplete(s State) bool { return IsComplete(s) }

// IsLegalMove reports whether m can be made from s, i.e. it is one of
// PossibleMoves(s). Safety of the result is a separate question (IsValid).
func (p *Puzzle) IsLegalMove(s State, m Move) bool {
	if m.Alone {
		return true
	}
	return m.Item.valid() && s.Bank(m.Item) == s.Farmer
}

// IsComplete reports whether every item has reached Far.
// The farmer's position is irrelevant.
func IsComplete(s State) bool {
	for _, b := range s.Items {
		if b != Far {
			return false
		}
	}
	return true
}
