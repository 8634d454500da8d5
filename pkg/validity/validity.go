package validity

// Kind identifies a single validity condition a validator governs.
// The set mirrors the native constraint-validation axes; validators that do
// not name a kind fall back to KindCustom.
type Kind string

const (
	KindValueMissing    Kind = "value-missing"
	KindTooShort        Kind = "too-short"
	KindTooLong         Kind = "too-long"
	KindPatternMismatch Kind = "pattern-mismatch"
	KindRangeUnderflow  Kind = "range-underflow"
	KindRangeOverflow   Kind = "range-overflow"
	KindBadInput        Kind = "bad-input"
	KindCustom          Kind = "custom"
)

// State maps a condition kind to whether it is currently violated.
// Absence of a kind means the condition holds (valid for that axis).
type State map[Kind]bool

// Valid reports whether no condition is violated.
func (s State) Valid() bool {
	for _, violated := range s {
		if violated {
			return false
		}
	}
	return true
}

// Violated reports whether the given condition is currently violated.
func (s State) Violated(k Kind) bool {
	return s[k]
}

// Mark records a violation verdict for a condition. A valid verdict removes
// the entry so that an empty map always means fully valid.
func (s State) Mark(k Kind, violated bool) {
	if violated {
		s[k] = true
		return
	}
	delete(s, k)
}

// Clone returns an independent copy of the state.
func (s State) Clone() State {
	out := make(State, len(s))
	for k, v := range s {
		if v {
			out[k] = true
		}
	}
	return out
}
