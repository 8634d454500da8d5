package formctl

import (
	"context"
	"log/slog"
	"time"

	"github.com/formctl/formctl/pkg/validity"
)

// verdict is a validator's resolved outcome within one run.
type verdict int8

const (
	verdictUnknown verdict = iota // async validator not yet settled
	verdictValid
	verdictInvalid
	verdictNoOpinion // async validator declined to contribute
)

// run is one validation epoch. Superseding a run cancels its context; a
// superseded run's completions must not mutate committed state, which the
// epoch check enforces under the control mutex.
type run struct {
	epoch    uint64
	ctx      context.Context
	cancel   context.CancelFunc
	done     chan struct{}
	value    Value
	verdicts []verdict
	pending  int
}

// beginRunLocked supersedes the in-flight run, if any, and allocates the
// next epoch. Callers hold c.mu.
func (c *Control) beginRunLocked(value Value) *run {
	if c.current != nil {
		c.current.cancel()
	}
	c.epoch++
	ctx, cancel := context.WithCancel(c.baseCtx)
	r := &run{
		epoch:    c.epoch,
		ctx:      ctx,
		cancel:   cancel,
		done:     make(chan struct{}),
		value:    value,
		verdicts: make([]verdict, len(c.typ.Validators)),
	}
	c.current = r
	return r
}

// runValidators executes the run: synchronous validators resolve inline in
// registration order, then asynchronous ones are started. The synchronous
// snapshot commits immediately when no asynchronous validator participates,
// or when a synchronous validator flipped its violated status relative to
// the previous commit — otherwise the commit waits for the asynchronous
// completions.
func (c *Control) runValidators(r *run) {
	list := c.typ.Validators

	c.mu.Lock()
	if r.epoch != c.epoch {
		c.mu.Unlock()
		return
	}
	prev := c.state.Clone()
	c.mu.Unlock()

	pending := 0
	syncChanged := false
	for i, d := range list {
		if d.Async() {
			pending++
			continue
		}
		ok := d.Check(c.host, r.value)
		if ok {
			r.verdicts[i] = verdictValid
		} else {
			r.verdicts[i] = verdictInvalid
		}
		if prev.Violated(d.Condition()) != !ok {
			syncChanged = true
		}
	}

	c.mu.Lock()
	if r.epoch != c.epoch {
		c.mu.Unlock()
		return
	}
	r.pending = pending
	var fx *commitFx
	if pending == 0 || syncChanged {
		fx = c.commitLocked(r)
	}
	c.mu.Unlock()
	c.dispatch(fx)
	// done closes after dispatch so observers of Done see the commit.
	if pending == 0 {
		close(r.done)
	}

	for i, d := range list {
		if d.Async() {
			go c.runAsync(r, i, d)
		}
	}
}

// runAsync resolves one asynchronous validator and, when the run is still
// current, folds its verdict into the committed state. Late completions of
// superseded runs are discarded silently.
func (c *Control) runAsync(r *run, i int, d validity.Descriptor) {
	ctx := r.ctx
	if c.asyncSettleTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(r.ctx, c.asyncSettleTimeout)
		defer cancel()
	}
	v := d.CheckAsync(ctx, c.host, r.value)

	c.mu.Lock()
	if r.epoch != c.epoch {
		c.mu.Unlock()
		c.log.Debug("discarding stale validation result",
			slog.String("control_id", c.id.String()),
			slog.String("condition", string(d.Condition())),
			slog.Uint64("epoch", r.epoch))
		return
	}
	switch v {
	case validity.Valid:
		r.verdicts[i] = verdictValid
	case validity.Invalid:
		r.verdicts[i] = verdictInvalid
	default:
		r.verdicts[i] = verdictNoOpinion
	}
	r.pending--
	settled := r.pending == 0
	fx := c.commitLocked(r)
	c.mu.Unlock()
	c.dispatch(fx)
	// Only the completion that decremented pending to zero closes done,
	// and it does so after dispatch so observers of Done see the commit.
	if settled {
		close(r.done)
	}
}

// commitFx captures the host notifications a commit produces; they are
// dispatched after the control mutex is released.
type commitFx struct {
	state          validity.State
	message        string
	target         FocusTarget
	messageChanged bool
	show           bool
	showChanged    bool
	peers          []*Control
	pollTarget     bool
}

// commitLocked reconciles the run's verdicts into the committed validity
// state and selects the surfaced message. Callers hold c.mu and have
// already verified the run is current.
func (c *Control) commitLocked(r *run) *commitFx {
	list := c.typ.Validators

	next := c.state.Clone()
	for i, d := range list {
		switch r.verdicts[i] {
		case verdictValid:
			next.Mark(d.Condition(), false)
		case verdictInvalid:
			next.Mark(d.Condition(), true)
		}
		// Unknown and no-opinion verdicts leave the prior state for
		// the validator's condition.
	}

	// The first invalid validator in registration order selects the
	// message; the host override is consulted before the validator's own.
	message := ""
	for i, d := range list {
		if r.verdicts[i] != verdictInvalid {
			continue
		}
		if m, ok := c.host.(ValidityMessenger); ok {
			if s := m.ValidityCallback(d.Condition()); s != "" {
				message = s
				break
			}
		}
		message = d.ResolveMessage(c.host, r.value)
		break
	}

	var target FocusTarget
	provider, hasProvider := c.host.(FocusTargetProvider)
	if hasProvider {
		target = provider.ValidationTarget()
	}

	fx := &commitFx{
		state:          next.Clone(),
		message:        message,
		target:         target,
		messageChanged: message != c.message,
	}

	c.state = next
	c.message = message
	// Polling only makes sense for hosts that can produce a target at all.
	if hasProvider && target == nil {
		c.awaitingTarget = true
		if c.retryAttempts > 0 && !c.targetPolling {
			c.targetPolling = true
			fx.pollTarget = true
		}
	} else {
		c.awaitingTarget = false
	}

	if c.typ.GroupValidation && next.Valid() {
		if g, ok := c.host.(Grouped); ok {
			fx.peers = g.GroupPeers()
		}
	}

	c.flags.SetDisabled(c.host.Disabled())
	show := c.flags.ShowError(next.Valid())
	fx.show = show
	fx.showChanged = show != c.showingError
	c.showingError = show

	return fx
}

// dispatch delivers a commit's host notifications outside the control mutex.
func (c *Control) dispatch(fx *commitFx) {
	if fx == nil {
		return
	}
	c.host.SetValidity(fx.state, fx.message, fx.target)
	if fx.messageChanged {
		c.notifyMessage(fx.message)
	}
	if fx.showChanged {
		if m, ok := c.host.(ErrorMarker); ok {
			m.SetShowError(fx.show)
		}
	}
	for _, peer := range fx.peers {
		if peer != nil && peer != c {
			peer.ClearValidity()
		}
	}
	if fx.pollTarget {
		go c.pollForTarget()
	}
}

// pollForTarget retries a bounded number of times to find a validation
// target after a commit went out without one. Once the bound is exhausted
// the control keeps functioning without focus delegation.
func (c *Control) pollForTarget() {
	// commitLocked only schedules polling for target-providing hosts.
	provider := c.host.(FocusTargetProvider)

	for attempt := 0; attempt < c.retryAttempts; attempt++ {
		select {
		case <-c.baseCtx.Done():
			c.mu.Lock()
			c.targetPolling = false
			c.mu.Unlock()
			return
		case <-time.After(c.retryInterval):
		}

		target := provider.ValidationTarget()
		if target == nil {
			continue
		}

		c.mu.Lock()
		c.targetPolling = false
		if !c.awaitingTarget {
			c.mu.Unlock()
			return
		}
		c.awaitingTarget = false
		state := c.state.Clone()
		message := c.message
		c.mu.Unlock()

		c.host.SetValidity(state, message, target)
		return
	}

	c.mu.Lock()
	c.targetPolling = false
	c.mu.Unlock()
	c.log.Debug("validation target unavailable, continuing without focus delegation",
		slog.String("control_id", c.id.String()),
		slog.Int("attempts", c.retryAttempts))
}

// ClearValidity resets the committed validity to fully valid without
// running any validator. Group validation uses it to clear same-name peers;
// the clearing is one-directional and does not re-evaluate the peer.
func (c *Control) ClearValidity() {
	c.mu.Lock()
	// Supersede any in-flight run so a late completion cannot resurrect
	// the cleared state.
	if c.current != nil {
		c.current.cancel()
		c.current = nil
	}
	c.epoch++
	c.state = make(validity.State)
	messageChanged := c.message != ""
	c.message = ""
	c.flags.SetDisabled(c.host.Disabled())
	show := c.flags.ShowError(true)
	showChanged := show != c.showingError
	c.showingError = show
	c.mu.Unlock()

	c.host.SetValidity(validity.State{}, "", nil)
	if messageChanged {
		c.notifyMessage("")
	}
	if showChanged {
		if m, ok := c.host.(ErrorMarker); ok {
			m.SetShowError(show)
		}
	}
}
