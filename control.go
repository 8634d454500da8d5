package formctl

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/formctl/formctl/pkg/config"
	"github.com/formctl/formctl/pkg/interaction"
	"github.com/formctl/formctl/pkg/validity"
)

// Type describes a concrete control type: its ordered validator list and
// type-level flags. Types are static and shared across instances.
type Type struct {
	// Validators run in declaration order on every validation pass.
	Validators validity.List

	// GroupValidation clears the validity of same-name sibling controls
	// whenever this control becomes fully valid, mirroring native
	// radio-group behavior. Clearing is one-directional: peers are not
	// re-validated.
	GroupValidation bool

	// RequireTarget makes construction fail when the host cannot supply
	// a validation target at all. Use for control types where focus
	// delegation on invalid submission is mandatory.
	RequireTarget bool
}

// Control is the validity engine attached to a single host element. It owns
// the control's form value, its committed validity state and message, and
// the interaction flags deciding when an error is surfaced.
//
// The engine expects host events (Focus, Blur, SetValue, ...) from a single
// goroutine, but asynchronous validator completions may arrive on others;
// internal state is guarded accordingly.
type Control struct {
	host Host
	typ  Type
	id   uuid.UUID
	log  *slog.Logger

	baseCtx    context.Context
	cancelBase context.CancelFunc

	retryAttempts      int
	retryInterval      time.Duration
	asyncSettleTimeout time.Duration
	valueReader        func() Value

	mu             sync.Mutex
	flags          interaction.Flags
	state          validity.State
	message        string
	value          Value // last value reported via SetValue
	committedValue Value // value handed to the form (nil when gated)
	awaitingTarget bool
	targetPolling  bool
	showingError   bool

	epoch   uint64
	current *run
}

// New attaches a validity engine to the given host. Engine defaults (target
// retry bounds, async settle timeout) come from the environment via
// config.LoadEngine; options override them per control.
//
// Configuration mistakes fail here: a nil host, a validator declared with
// neither or both of Check/CheckAsync, a type requiring a validation target
// on a host that cannot provide one, or an unparsable environment override.
func New(host Host, typ Type, opts ...Option) (*Control, error) {
	if host == nil {
		return nil, ErrNilHost
	}
	if err := typ.Validators.Validate(); err != nil {
		return nil, err
	}
	if typ.RequireTarget {
		if _, ok := host.(FocusTargetProvider); !ok {
			return nil, ErrMissingValidationTarget
		}
	}
	cfg, err := config.LoadEngine()
	if err != nil {
		return nil, err
	}

	c := &Control{
		host:               host,
		typ:                typ,
		id:                 uuid.New(),
		log:                slog.Default(),
		retryAttempts:      cfg.TargetRetryAttempts,
		retryInterval:      cfg.TargetRetryInterval,
		asyncSettleTimeout: cfg.AsyncSettleTimeout,
		state:              make(validity.State),
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.baseCtx == nil {
		c.baseCtx = context.Background()
	}
	c.baseCtx, c.cancelBase = context.WithCancel(c.baseCtx)
	c.flags.SetDisabled(host.Disabled())
	return c, nil
}

// MustNew is like New but panics on configuration errors.
func MustNew(host Host, typ Type, opts ...Option) *Control {
	c, err := New(host, typ, opts...)
	if err != nil {
		panic(fmt.Sprintf("formctl: failed to create control: %v", err))
	}
	return c
}

// Close detaches the engine. In-flight asynchronous validators are
// cancelled and their late completions discarded.
func (c *Control) Close() {
	c.mu.Lock()
	if c.current != nil {
		c.current.cancel()
		c.current = nil
	}
	c.epoch++
	c.mu.Unlock()
	c.cancelBase()
}

// ID returns the engine instance identifier used in log records.
func (c *Control) ID() uuid.UUID {
	return c.id
}

// Validity returns a snapshot of the committed validity state.
func (c *Control) Validity() validity.State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state.Clone()
}

// Valid reports whether the committed validity state is fully valid.
func (c *Control) Valid() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state.Valid()
}

// ValidationMessage returns the currently committed error message, empty
// when valid.
func (c *Control) ValidationMessage() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.message
}

// ShowError reports whether an error should currently be surfaced to the
// user. This is the display policy, not raw validity: an invalid control
// that has never been touched does not show its error.
func (c *Control) ShowError() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.showingError
}

// InteractionState returns the control's named interaction state, derived
// from the flags and current validity.
func (c *Control) InteractionState() interaction.State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.flags.Current(c.state.Valid())
}

// Done returns a channel closed once every asynchronous validator of the
// most recent run has settled. A newer SetValue supersedes the run and its
// channel is never closed; callers should re-observe Done after triggering
// a new run rather than retaining a stale channel.
func (c *Control) Done() <-chan struct{} {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.current == nil {
		return closedChan
	}
	return c.current.done
}

var closedChan = func() chan struct{} {
	ch := make(chan struct{})
	close(ch)
	return ch
}()
