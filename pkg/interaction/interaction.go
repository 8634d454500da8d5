package interaction

// State names the observable interaction state of a control, derived from
// the underlying flags and the control's current validity. Useful for
// logging and tests; the show-error decision itself is ShowError.
type State string

const (
	StatePristine      State = "pristine"
	StateFocused       State = "focused"
	StateTouchedValid  State = "touched-valid"
	StateInvalidHidden State = "touched-invalid-hidden"
	StateInvalidShown  State = "touched-invalid-shown"
	StateDisabled      State = "disabled"
)

func (s State) String() string {
	return string(s)
}

// Flags tracks the interaction history of a single control: whether it has
// ever been focused, whether it is focused now, and whether an error has
// been forced visible. Flags are event-driven and carry no validity of
// their own; validity is supplied to the show-error decision by the caller.
//
// Flags is not safe for concurrent use; the engine serializes access.
type Flags struct {
	touched  bool
	focused  bool
	forced   bool
	disabled bool
}

// Focus records focus entering the control. The first focus marks the
// control as touched; touched only resets on form reset.
func (f *Flags) Focus() {
	f.touched = true
	f.focused = true
}

// Blur records focus leaving the control. A blur implies the control was
// interacted with, so it marks touched even without a prior focus.
func (f *Flags) Blur() {
	f.touched = true
	f.focused = false
}

// Invalid records an invalid submission signal: the control is touched and
// its error is forced visible regardless of focus.
func (f *Flags) Invalid() {
	f.touched = true
	f.forced = true
}

// ForceError keeps the error visible after blur even if focus is regained,
// until the value changes or validation clears.
func (f *Flags) ForceError() {
	f.forced = true
}

// ClearForced drops the sticky error, typically because the value changed.
func (f *Flags) ClearForced() {
	f.forced = false
}

// Reset reverts the control to its pristine interaction state. Focus is
// left as-is: resetting a form does not move the caret.
func (f *Flags) Reset() {
	f.touched = false
	f.forced = false
}

// SetDisabled records the control's disabled flag. Disabling suppresses the
// show-error decision without touching any other flag, so re-enabling
// restores the prior decision.
func (f *Flags) SetDisabled(disabled bool) {
	f.disabled = disabled
}

func (f *Flags) Touched() bool  { return f.touched }
func (f *Flags) Focused() bool  { return f.focused }
func (f *Flags) Forced() bool   { return f.forced }
func (f *Flags) Disabled() bool { return f.disabled }

// ShowError decides whether an error should currently be surfaced, given
// the control's validity. The decision is a pure function of the flags:
// a forced error always shows, otherwise the control must be touched,
// invalid and not focused. Disabled overrides everything.
func (f *Flags) ShowError(valid bool) bool {
	if f.disabled {
		return false
	}
	if f.forced {
		return true
	}
	return f.touched && !valid && !f.focused
}

// Current derives the named state for the given validity.
func (f *Flags) Current(valid bool) State {
	switch {
	case f.disabled:
		return StateDisabled
	case f.ShowError(valid):
		return StateInvalidShown
	case f.focused:
		return StateFocused
	case !f.touched:
		return StatePristine
	case valid:
		return StateTouchedValid
	default:
		return StateInvalidHidden
	}
}
