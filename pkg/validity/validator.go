package validity

import "context"

// Value is an opaque form value: text, a file handle, a multi-part payload,
// or nil for "no value".
type Value = any

// Element is the minimal view of a control that a validator may inspect.
// The second return value reports attribute presence, so boolean attributes
// such as "required" can be distinguished from empty string values.
type Element interface {
	Attribute(name string) (string, bool)
}

// Verdict is the outcome of an asynchronous check. NoOpinion leaves the
// previously committed state for the validator's kind untouched.
type Verdict int

const (
	NoOpinion Verdict = iota
	Valid
	Invalid
)

// Descriptor declares a single validator in a control type's ordered list.
//
// Exactly one of Check or CheckAsync must be set. Check runs inline on the
// event path; CheckAsync runs in its own goroutine and must observe ctx
// cancellation, which fires when a newer validation run supersedes this one.
type Descriptor struct {
	// Triggers lists attribute names whose change re-triggers this
	// validator. May be empty for value-only validators.
	Triggers []string

	// Key names the validity condition this validator governs.
	// Empty defaults to KindCustom.
	Key Kind

	// Message is the literal text surfaced when this validator is the one
	// selecting the control's error message. MessageFunc, when set, takes
	// precedence and is resolved against the element and current value.
	Message     string
	MessageFunc func(el Element, value Value) string

	// Check returns true when the value satisfies this validator.
	Check func(el Element, value Value) bool

	// CheckAsync returns a Verdict once the deferred check settles.
	CheckAsync func(ctx context.Context, el Element, value Value) Verdict
}

// Async reports whether this descriptor runs off the event path.
func (d Descriptor) Async() bool {
	return d.CheckAsync != nil
}

// Condition returns the condition this descriptor governs, defaulting to
// KindCustom when unset.
func (d Descriptor) Condition() Kind {
	if d.Key == "" {
		return KindCustom
	}
	return d.Key
}

// ResolveMessage returns the descriptor's error text for the given element
// and value.
func (d Descriptor) ResolveMessage(el Element, value Value) string {
	if d.MessageFunc != nil {
		return d.MessageFunc(el, value)
	}
	return d.Message
}

func (d Descriptor) validate() error {
	if d.Check == nil && d.CheckAsync == nil {
		return ErrMissingCheck
	}
	if d.Check != nil && d.CheckAsync != nil {
		return ErrConflictingChecks
	}
	return nil
}
