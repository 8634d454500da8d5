package validity

import (
	"fmt"
	"regexp"
	"strconv"
	"unicode/utf8"
)

// Built-in rules mirroring the native constraint-validation attributes.
// Each rule reads its constraint from the element's attributes, so an
// attribute change re-triggering the rule picks up the new constraint.
//
// Length conventions: an empty value satisfies MinLength and MaxLength
// (combine with Required to reject empty values), and boundary lengths are
// inclusive — a value of exactly minlength or maxlength runes is valid.

// Required is violated when the "required" attribute is present and the
// value is empty.
func Required() Descriptor {
	return Descriptor{
		Triggers: []string{"required"},
		Key:      KindValueMissing,
		Message:  "Please fill out this field",
		Check: func(el Element, value Value) bool {
			if _, ok := el.Attribute("required"); !ok {
				return true
			}
			return !IsEmpty(value)
		},
	}
}

// MinLength is violated when the value is shorter than the "minlength"
// attribute. Empty values and non-text values are valid.
func MinLength() Descriptor {
	return Descriptor{
		Triggers: []string{"minlength"},
		Key:      KindTooShort,
		MessageFunc: func(el Element, value Value) string {
			min, _ := intAttribute(el, "minlength")
			return fmt.Sprintf("Please use at least %d characters", min)
		},
		Check: func(el Element, value Value) bool {
			min, ok := intAttribute(el, "minlength")
			if !ok {
				return true
			}
			s, isText := Text(value)
			if !isText || s == "" {
				return true
			}
			return utf8.RuneCountInString(s) >= min
		},
	}
}

// MaxLength is violated when the value is longer than the "maxlength"
// attribute. Empty values and non-text values are valid.
func MaxLength() Descriptor {
	return Descriptor{
		Triggers: []string{"maxlength"},
		Key:      KindTooLong,
		MessageFunc: func(el Element, value Value) string {
			max, _ := intAttribute(el, "maxlength")
			return fmt.Sprintf("Please use no more than %d characters", max)
		},
		Check: func(el Element, value Value) bool {
			max, ok := intAttribute(el, "maxlength")
			if !ok {
				return true
			}
			s, isText := Text(value)
			if !isText || s == "" {
				return true
			}
			return utf8.RuneCountInString(s) <= max
		},
	}
}

// Pattern is violated when the value does not match the "pattern" attribute
// in full. Empty values, non-text values and unparsable patterns are valid.
func Pattern() Descriptor {
	return Descriptor{
		Triggers: []string{"pattern"},
		Key:      KindPatternMismatch,
		Message:  "Please match the requested format",
		Check: func(el Element, value Value) bool {
			raw, ok := el.Attribute("pattern")
			if !ok || raw == "" {
				return true
			}
			s, isText := Text(value)
			if !isText || s == "" {
				return true
			}
			re, err := regexp.Compile("^(?:" + raw + ")$")
			if err != nil {
				return true
			}
			return re.MatchString(s)
		},
	}
}

// IsEmpty reports whether a form value carries no content: nil, an empty
// string, or an empty slice of values or bytes.
func IsEmpty(value Value) bool {
	switch v := value.(type) {
	case nil:
		return true
	case string:
		return v == ""
	case []string:
		return len(v) == 0
	case []byte:
		return len(v) == 0
	default:
		return false
	}
}

// Text extracts a textual form value. The second return value is false for
// non-text payloads such as files, which length and pattern rules skip.
func Text(value Value) (string, bool) {
	switch v := value.(type) {
	case string:
		return v, true
	case []byte:
		return string(v), true
	default:
		return "", false
	}
}

func intAttribute(el Element, name string) (int, bool) {
	raw, ok := el.Attribute(name)
	if !ok {
		return 0, false
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 0 {
		return 0, false
	}
	return n, true
}
