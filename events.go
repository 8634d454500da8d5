package formctl

// Focus records focus entering the control. The first focus marks the
// control as touched.
func (c *Control) Focus() {
	c.mu.Lock()
	c.flags.Focus()
	c.mu.Unlock()
	c.refreshDisplay()
}

// Blur records focus leaving the control and re-validates the committed
// value (or nil when the commit gate is closed). If the control remains
// invalid, its error becomes sticky: it stays visible across later focus
// changes until the value changes.
func (c *Control) Blur() {
	c.mu.Lock()
	c.flags.Blur()
	value := c.committedValue
	if gate, ok := c.host.(CommitGate); ok && !gate.ShouldFormValueUpdate() {
		value = nil
	}
	r := c.beginRunLocked(value)
	c.mu.Unlock()

	c.runValidators(r)

	c.mu.Lock()
	if !c.state.Valid() {
		c.flags.ForceError()
	}
	c.mu.Unlock()
	c.refreshDisplay()
}

// Invalid handles the host's invalid submission signal: the control becomes
// touched and its error forced visible regardless of focus. If an earlier
// commit went out without a validation target and one has since become
// available, the committed validity is re-sent with the target first.
func (c *Control) Invalid() {
	c.mu.Lock()
	c.flags.Invalid()

	var target FocusTarget
	recommit := false
	stateCopy := c.state.Clone()
	message := c.message
	if c.awaitingTarget {
		if p, ok := c.host.(FocusTargetProvider); ok {
			if t := p.ValidationTarget(); t != nil {
				target = t
				c.awaitingTarget = false
				recommit = true
			}
		}
	}
	c.mu.Unlock()

	if recommit {
		c.host.SetValidity(stateCopy, message, target)
	}
	c.refreshDisplay()
}

// FormReset reverts the interaction state to pristine, invokes the host's
// reset hook and recomputes the show-error decision, which is expected to
// be false immediately after a reset.
func (c *Control) FormReset() {
	c.mu.Lock()
	c.flags.Reset()
	c.mu.Unlock()

	if r, ok := c.host.(Resetter); ok {
		r.ResetFormControl()
	}
	c.refreshDisplay()
}

// DisabledChanged re-evaluates the show-error decision after the host's
// disabled flag toggled. Underlying validity is untouched: disabling only
// suppresses the display, re-enabling restores the prior decision.
func (c *Control) DisabledChanged() {
	c.refreshDisplay()
}

// AttributeChanged re-runs validation when the changed attribute triggers at
// least one of the control type's validators. By default the last committed
// value is re-validated; WithValueReader switches to a fresh read from the
// concrete control.
func (c *Control) AttributeChanged(name string) {
	if len(c.typ.Validators.ForAttribute(name)) == 0 {
		return
	}

	c.mu.Lock()
	value := c.committedValue
	if c.valueReader != nil {
		value = c.valueReader()
	}
	r := c.beginRunLocked(value)
	c.mu.Unlock()

	c.runValidators(r)
	c.refreshDisplay()
}

// CheckValidity re-runs validation against the committed value and reports
// whether the control is valid once the synchronous validators settled.
// Asynchronous validators keep running; observe Done for their completion.
func (c *Control) CheckValidity() bool {
	c.mu.Lock()
	r := c.beginRunLocked(c.committedValue)
	c.mu.Unlock()

	c.runValidators(r)

	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state.Valid()
}

// refreshDisplay recomputes the show-error decision from the interaction
// flags, the host's disabled flag and current validity, toggling the host's
// error marker when the decision changes.
func (c *Control) refreshDisplay() {
	c.mu.Lock()
	c.flags.SetDisabled(c.host.Disabled())
	show := c.flags.ShowError(c.state.Valid())
	changed := show != c.showingError
	c.showingError = show
	c.mu.Unlock()

	if changed {
		if m, ok := c.host.(ErrorMarker); ok {
			m.SetShowError(show)
		}
	}
}
