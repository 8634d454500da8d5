package formctl

import "github.com/formctl/formctl/pkg/validity"

// Value is an opaque form value: text, a file handle, a multi-part payload,
// or nil for "no value".
type Value = validity.Value

// FocusTarget is the focusable element keyboard focus is delegated to when
// an invalid submission must surface this control.
type FocusTarget interface {
	Focus()
}

// Host is the form-associated element the engine drives. The engine never
// renders anything itself; it reports values and validity through the host
// and reads attributes and the disabled flag from it.
//
// Host implementations must not call back into the Control from within
// these methods.
type Host interface {
	validity.Element

	// SetFormValue commits the value that reaches the owning form.
	// nil clears the control's contribution.
	SetFormValue(value Value)

	// SetValidity commits the reconciled validity snapshot together with
	// the selected error message. target is nil when no focusable
	// validation target is available yet.
	SetValidity(state validity.State, message string, target FocusTarget)

	// Disabled reports whether the control is currently disabled.
	Disabled() bool
}

// The engine discovers optional host capabilities via type assertion, so a
// concrete control implements exactly the override points it needs.

// CommitGate decides whether the control's current value actually reaches
// the form. The canonical non-default implementation is a checkbox-like
// control returning its checked state. When the gate is closed the form
// receives nil regardless of the value reported to SetValue.
type CommitGate interface {
	ShouldFormValueUpdate() bool
}

// FocusTargetProvider supplies the focusable element used for the invalid
// submission handshake. Returning nil means no target is available yet.
type FocusTargetProvider interface {
	ValidationTarget() FocusTarget
}

// ValidityMessenger lets the host override the error message for a violated
// condition. A non-empty return wins over the validator's own message.
type ValidityMessenger interface {
	ValidityCallback(kind validity.Kind) string
}

// MessageObserver is notified whenever the displayed message changes,
// including when it clears.
type MessageObserver interface {
	ValidationMessageCallback(message string)
}

// ValueObserver is notified after a value has been committed and validated.
// The engine does not wait for any work the hook starts.
type ValueObserver interface {
	ValueChangedCallback(value Value)
}

// Resetter is invoked when the owning form resets, after the engine has
// cleared its interaction state.
type Resetter interface {
	ResetFormControl()
}

// Grouped exposes the engine instances of same-name sibling controls for
// group validity clearing.
type Grouped interface {
	GroupPeers() []*Control
}

// ErrorMarker receives the externally observable show-error toggle, meant
// for styling hooks. It fires only on changes.
type ErrorMarker interface {
	SetShowError(show bool)
}
