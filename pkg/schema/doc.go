// Package schema loads declarative control type definitions from YAML and
// materializes them into ordered validator lists.
//
// A definition names the control type, optionally enables group validation,
// and lists rules in the order they should run — which is also the order
// used for error message selection:
//
//	name: text-input
//	group_validation: false
//	rules:
//	  - kind: required
//	    message: "Please enter a value"
//	  - kind: minlength
//	  - kind: maxlength
//	  - kind: pattern
//
// Rule kinds map to the built-in rules in pkg/validity; per-rule constraints
// (the actual minlength number, the pattern text) still come from the host
// element's attributes at validation time, so the schema stays reusable
// across instances.
//
// # Usage
//
//	ct, err := schema.ParseFile("text-input.yaml")
//	if err != nil {
//		return err
//	}
//	validators, err := ct.Validators()
//	if err != nil {
//		return err
//	}
package schema
