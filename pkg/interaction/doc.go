// Package interaction tracks the focus/blur/touched history of a form
// control and derives whether a validation error should currently be shown.
//
// Raw validity and error display are deliberately separate concerns: a
// control can be invalid while the user is still typing in it, in which case
// surfacing the error would be noise. The Flags type records the interaction
// events (Focus, Blur, Invalid, Reset) and ShowError combines them with the
// control's validity into a single display decision:
//
//	show = forced || (touched && !valid && !focused)
//
// gated to false while the control is disabled. The forced flag is the
// sticky path: once an invalid blur or an invalid submission signal has
// forced the error visible, it stays visible across focus changes until the
// value changes.
package interaction
