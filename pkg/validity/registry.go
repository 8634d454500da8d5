package validity

import (
	"fmt"
	"slices"
)

// List is the ordered set of validators declared for a control type.
// Order is significant: the first validator whose synchronous verdict is
// invalid selects the surfaced error message.
type List []Descriptor

// NewList builds a list from the given descriptors, preserving order.
func NewList(descriptors ...Descriptor) List {
	return slices.Clone(descriptors)
}

// Extend returns a new list with the given descriptors appended after the
// receiver's. The receiver is not modified, so a subtype can derive its list
// from an ancestor's without affecting it.
func (l List) Extend(descriptors ...Descriptor) List {
	out := make(List, 0, len(l)+len(descriptors))
	out = append(out, l...)
	return append(out, descriptors...)
}

// Replace returns a list containing only the given descriptors, discarding
// the receiver's. This is the wholesale-substitution half of the composition
// contract: there is no automatic merging, a subtype either extends or
// replaces.
func (l List) Replace(descriptors ...Descriptor) List {
	return slices.Clone(descriptors)
}

// Triggers returns the sorted union of all attribute names that re-trigger
// any validator in the list. Hosts observe exactly this set.
func (l List) Triggers() []string {
	seen := make(map[string]struct{})
	var out []string
	for _, d := range l {
		for _, attr := range d.Triggers {
			if _, ok := seen[attr]; ok {
				continue
			}
			seen[attr] = struct{}{}
			out = append(out, attr)
		}
	}
	slices.Sort(out)
	return out
}

// ForAttribute returns, in registration order, every validator bound to the
// given attribute name. A validator bound to several attributes is returned
// for a change to any of them.
func (l List) ForAttribute(name string) []Descriptor {
	var out []Descriptor
	for _, d := range l {
		if slices.Contains(d.Triggers, name) {
			out = append(out, d)
		}
	}
	return out
}

// Validate checks every descriptor for configuration mistakes. An empty list
// is valid and means the control is always considered valid.
func (l List) Validate() error {
	for i, d := range l {
		if err := d.validate(); err != nil {
			return fmt.Errorf("%w: descriptor %d (%s)", err, i, d.Condition())
		}
	}
	return nil
}
