// Package validity defines the vocabulary of the validity engine: condition
// kinds, the per-control validity state, validator descriptors and the
// ordered lists a control type declares them in.
//
// A control type owns a List of Descriptors. Order is significant — when
// several validators are invalid at once, the first one in list order selects
// the error message surfaced to the user. Lists compose deterministically: a
// subtype either Extends its ancestor's list (appending its own validators
// after) or Replaces it wholesale; there is no automatic merging.
//
// Each descriptor may be bound to one or more trigger attributes. The union
// of all triggers (List.Triggers) is the set of attribute names the host must
// observe, and List.ForAttribute answers which validators a given attribute
// change re-triggers.
//
// # Usage
//
//	import "github.com/formctl/formctl/pkg/validity"
//
//	var textRules = validity.NewList(
//		validity.Required(),
//		validity.MinLength(),
//		validity.MaxLength(),
//		validity.Pattern(),
//	)
//
//	// A subtype appends its own rule after the inherited ones:
//	var zipRules = textRules.Extend(validity.Descriptor{
//		Key:     validity.KindCustom,
//		Message: "Please enter a valid postal code",
//		Check: func(el validity.Element, v validity.Value) bool {
//			s, _ := validity.Text(v)
//			return len(s) == 0 || len(s) == 5
//		},
//	})
//
// Validation outcomes are collected in a State, a map from Kind to a
// violated flag. An empty State means fully valid; State.Mark removes
// entries for valid verdicts so emptiness is always the validity test.
//
// Asynchronous validators implement CheckAsync instead of Check and must
// observe context cancellation: the engine cancels the context when a newer
// run supersedes the one they were started for.
package validity
