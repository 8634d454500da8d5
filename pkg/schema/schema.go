package schema

import (
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/formctl/formctl/pkg/validity"
)

// Rule declares one validator in a control type schema. Kind selects a
// built-in rule; Message optionally overrides the rule's default error text.
type Rule struct {
	Kind    string `yaml:"kind"`
	Message string `yaml:"message,omitempty"`
}

// ControlType is the declarative description of a control type: a name, the
// group-validation flag and an ordered list of validation rules.
type ControlType struct {
	Name            string `yaml:"name"`
	GroupValidation bool   `yaml:"group_validation,omitempty"`
	Rules           []Rule `yaml:"rules,omitempty"`
}

// Parse reads a YAML control type definition.
func Parse(r io.Reader) (*ControlType, error) {
	var ct ControlType
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&ct); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidSchema, err)
	}
	if ct.Name == "" {
		return nil, fmt.Errorf("%w: name is required", ErrInvalidSchema)
	}
	return &ct, nil
}

// ParseFile reads a YAML control type definition from a file.
func ParseFile(path string) (*ControlType, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidSchema, err)
	}
	defer f.Close()
	return Parse(f)
}

// Validators materializes the declared rules into an ordered validator list,
// preserving declaration order. Unknown rule kinds fail with ErrUnknownRule.
func (ct *ControlType) Validators() (validity.List, error) {
	list := make(validity.List, 0, len(ct.Rules))
	for i, rule := range ct.Rules {
		d, err := build(rule)
		if err != nil {
			return nil, fmt.Errorf("%w (rule %d of %q)", err, i, ct.Name)
		}
		list = append(list, d)
	}
	return list, nil
}

func build(rule Rule) (validity.Descriptor, error) {
	var d validity.Descriptor
	switch rule.Kind {
	case "required":
		d = validity.Required()
	case "minlength":
		d = validity.MinLength()
	case "maxlength":
		d = validity.MaxLength()
	case "pattern":
		d = validity.Pattern()
	default:
		return validity.Descriptor{}, fmt.Errorf("%w: %q", ErrUnknownRule, rule.Kind)
	}
	if rule.Message != "" {
		d.Message = rule.Message
		d.MessageFunc = nil
	}
	return d, nil
}
