// Package formctl lets a custom form control participate in its owning
// form's lifecycle: value submission, pluggable validation and reset.
//
// The engine is attached to a host element and drives four cooperating
// pieces: the control type's ordered validator list (pkg/validity), the
// value bridge that decides whether the reported value reaches the form,
// the validation runner that reconciles synchronous and asynchronous
// validator verdicts into one committed validity state and message, and the
// interaction policy (pkg/interaction) that decides when an error is
// actually shown.
//
// # Hosts
//
// The concrete control implements Host — attribute access, form value and
// validity commits, the disabled flag — plus whichever optional capability
// interfaces it needs: CommitGate for checked-style value gating,
// FocusTargetProvider for the invalid submission focus handshake,
// ValidityMessenger to override messages per condition, MessageObserver,
// ValueObserver, Resetter, Grouped and ErrorMarker. The engine discovers
// capabilities by type assertion, so a minimal host stays minimal.
//
// # Usage
//
//	var textType = formctl.Type{
//		Validators: validity.NewList(
//			validity.Required(),
//			validity.MinLength(),
//			validity.MaxLength(),
//			validity.Pattern(),
//		),
//	}
//
//	ctl, err := formctl.New(host, textType)
//	if err != nil {
//		return err
//	}
//	defer ctl.Close()
//
//	// Wire host events to the engine:
//	// focus/blur/invalid/reset signals, attribute changes, and
//	// ctl.SetValue(v) whenever the control's value changes.
//
// # Validation semantics
//
// Validators run in declaration order. Synchronous validators resolve
// before any commit; the first invalid one selects the surfaced message,
// and later validators can flip other conditions but never steal the
// message. Asynchronous validators run off the event path: their verdicts
// fold into the committed state as they settle, and a newer run supersedes
// older completions entirely — a validator resolving for a stale run has no
// observable effect. Done exposes settlement of the current run.
//
// Raw validity and error display are separate: ShowError combines validity
// with the touched/focused/forced interaction flags, so errors surface on
// blur and invalid submission rather than on every keystroke.
package formctl
