package formctl

// SetValue is the single entry point by which a control reports its current
// form value. Every call runs the full pipeline, in order: the sticky error
// flag is cleared, the previous message is cleared, the (possibly gated)
// value is committed to the host form, validation runs against it, the
// host's value hook fires, and the show-error decision is recomputed.
//
// Calls are not diffed: reporting the same value again still re-runs
// everything. When the host implements CommitGate and the gate is closed,
// the form receives nil regardless of the value passed here; the value is
// retained internally and contributes again once the gate reopens.
func (c *Control) SetValue(value Value) {
	c.mu.Lock()
	c.flags.ClearForced()
	messageCleared := c.message != ""
	c.message = ""
	c.value = value

	committed := value
	if gate, ok := c.host.(CommitGate); ok && !gate.ShouldFormValueUpdate() {
		committed = nil
	}
	c.committedValue = committed
	r := c.beginRunLocked(committed)
	c.mu.Unlock()

	if messageCleared {
		c.notifyMessage("")
	}
	c.host.SetFormValue(committed)

	c.runValidators(r)

	// Notified, not awaited: the hook may start its own asynchronous work.
	if o, ok := c.host.(ValueObserver); ok {
		o.ValueChangedCallback(committed)
	}

	c.refreshDisplay()
}

// GateChanged re-runs the value pipeline with the internally held value.
// A checked-like control calls this when its gate toggles, so reopening the
// gate re-contributes the last reported value to the form.
func (c *Control) GateChanged() {
	c.mu.Lock()
	value := c.value
	c.mu.Unlock()
	c.SetValue(value)
}

func (c *Control) notifyMessage(message string) {
	if m, ok := c.host.(MessageObserver); ok {
		m.ValidationMessageCallback(message)
	}
}
