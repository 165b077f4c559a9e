package puzzle

import "strings"

// Key is the canonical encoding of a State: bit 0 is the farmer's bank,
// bit i+1 is the bank of item i. Equal states always produce equal keys.
type Key uint8

// Key returns the canonical key of s.
func (s State) Key() Key {
	k := Key(s.Farmer & 1)
	for i, b := range s.Items {
		k |= Key(b&1) << (i + 1)
	}
	return k
}

// State decodes k back into the State it was built from.
func (k Key) State() State {
	s := State{Farmer: Bank(k & 1)}
	for i := range s.Items {
		s.Items[i] = Bank((k >> (i + 1)) & 1)
	}
	return s
}

// String renders k as "left|wolf:left|goat:left|cabbage:left".
func (k Key) String() string {
	s := k.State()
	var sb strings.Builder
	sb.WriteString(s.Farmer.String())
	for _, it := range Items() {
		sb.WriteByte('|')
		sb.WriteString(it.String())
		sb.WriteByte(':')
		sb.WriteString(s.Bank(it).String())
	}
	return sb.String()
}

// String implements fmt.Stringer via the canonical key.
func (s State) String() string { return s.Key().String() }

// PossibleMoves lists the moves available from s: crossing alone first,
// then escorting each item on the farmer's bank in Items() order.
func PossibleMoves(s State) []Move {
	moves := make([]Move, 0, NumItems+1)
	moves = append(moves, CrossAlone())
	for _, it := range Items() {
		if s.Bank(it) == s.Farmer {
			moves = append(moves, CrossWith(it))
		}
	}
	return moves
}

// Apply returns the state reached from s by m. The farmer always
// switches banks; an escorted item follows only if it shared the
// farmer's bank.
// s itself is never modified.
func (s State) Apply(m Move) State {
	next := s
	next.Farmer = s.Farmer.Opposite()
	if it, ok := m.Cargo(); ok && it.valid() && s.Bank(it) == s.Farmer {
		next.Items[it] = next.Farmer
	}
	return next
}

// Apply is the function form of State.Apply.
func Apply(s State, m Move) State { return s.Apply(m) }

// Describe renders m as the human-readable step text, dest being the
// bank the farmer lands on: "Move farmer with goat to right bank".
func Describe(m Move, dest Bank) string {
	var sb strings.Builder
	sb.WriteString("Move farmer")
	if it, ok := m.Cargo(); ok {
		sb.WriteString(" with ")
		sb.WriteString(it.String())
	}
	sb.WriteString(" to ")
	sb.WriteString(dest.String())
	sb.WriteString(" bank")
	return sb.String()
}
