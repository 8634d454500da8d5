package formctl_test

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/formctl/formctl"
	"github.com/formctl/formctl/pkg/validity"
)

func TestMessageSelection(t *testing.T) {
	t.Parallel()

	// Three validators: the first passes, the second and third fail. The
	// surfaced message must be the second's, the first in registration
	// order to be invalid.
	host := newFakeHost()
	typ := formctl.Type{Validators: validity.NewList(
		syncRule(validity.KindValueMissing, "first", func(validity.Element, validity.Value) bool { return true }),
		syncRule(validity.KindTooShort, "second", func(validity.Element, validity.Value) bool { return false }),
		syncRule(validity.KindTooLong, "third", func(validity.Element, validity.Value) bool { return false }),
	)}
	ctl := formctl.MustNew(host, typ)
	defer ctl.Close()

	ctl.SetValue("x")

	assert.Equal(t, "second", ctl.ValidationMessage())
	state := ctl.Validity()
	assert.False(t, state.Violated(validity.KindValueMissing))
	assert.True(t, state.Violated(validity.KindTooShort))
	assert.True(t, state.Violated(validity.KindTooLong))
	assert.Equal(t, "second", host.lastCommit().message)
}

func TestValidityCallbackOverride(t *testing.T) {
	t.Parallel()

	host := newFakeHost()
	host.overrides = map[validity.Kind]string{
		validity.KindTooShort: "host knows better",
	}
	typ := formctl.Type{Validators: validity.NewList(
		syncRule(validity.KindTooShort, "validator message", func(validity.Element, validity.Value) bool { return false }),
	)}
	ctl := formctl.MustNew(host, typ)
	defer ctl.Close()

	ctl.SetValue("x")

	assert.Equal(t, "host knows better", ctl.ValidationMessage())
}

func TestInvalidToValidTransition(t *testing.T) {
	t.Parallel()

	host := newFakeHost()
	typ := formctl.Type{Validators: validity.NewList(
		invalidWhenEmpty(validity.KindValueMissing, "required"),
	)}
	ctl := formctl.MustNew(host, typ)
	defer ctl.Close()

	ctl.SetValue("")
	assert.False(t, ctl.Valid())
	assert.Equal(t, "required", ctl.ValidationMessage())

	ctl.SetValue("satisfies")
	assert.True(t, ctl.Valid())
	assert.Empty(t, ctl.Validity())
	assert.Empty(t, ctl.ValidationMessage())
	assert.Empty(t, host.lastCommit().state)
}

func TestAsyncSupersede(t *testing.T) {
	t.Parallel()

	// Two SetValue calls in a row with an async validator resolving after
	// 100ms: the superseded first run must produce no observable effect,
	// even though the validator ignores cancellation and resolves late.
	var cancels atomic.Int32
	asyncMin := validity.Descriptor{
		Key:     validity.KindTooShort,
		Message: "too short",
		CheckAsync: func(ctx context.Context, _ validity.Element, v validity.Value) validity.Verdict {
			context.AfterFunc(ctx, func() { cancels.Add(1) })
			time.Sleep(100 * time.Millisecond)
			s, _ := validity.Text(v)
			if len(s) >= 2 {
				return validity.Valid
			}
			return validity.Invalid
		},
	}

	host := newFakeHost()
	ctl := formctl.MustNew(host, formctl.Type{Validators: validity.NewList(asyncMin)})

	ctl.SetValue("f")
	ctl.SetValue("fo")
	<-ctl.Done()

	// Exactly one commit, reflecting the second value only.
	assert.Equal(t, 1, host.commitCount())
	assert.True(t, ctl.Valid())
	assert.Empty(t, host.lastCommit().state)

	// The first run's cancellation fired when it was superseded; closing
	// the control cancels the second run's token as well.
	ctl.Close()
	require.Eventually(t, func() bool { return cancels.Load() == 2 },
		time.Second, 5*time.Millisecond)
	assert.Equal(t, 1, host.commitCount())
}

func TestDoneSupersession(t *testing.T) {
	t.Parallel()

	block := make(chan struct{})
	asyncRule := validity.Descriptor{
		CheckAsync: func(ctx context.Context, _ validity.Element, _ validity.Value) validity.Verdict {
			select {
			case <-ctx.Done():
				return validity.NoOpinion
			case <-block:
				return validity.Valid
			}
		},
	}

	host := newFakeHost()
	ctl := formctl.MustNew(host, formctl.Type{Validators: validity.NewList(asyncRule)})
	defer ctl.Close()

	ctl.SetValue("a")
	staleDone := ctl.Done()

	ctl.SetValue("b")
	freshDone := ctl.Done()
	close(block)

	<-freshDone
	// The superseded epoch's channel stays open forever; callers must
	// re-observe Done after triggering a new run.
	select {
	case <-staleDone:
		t.Fatal("superseded run's Done channel must never close")
	default:
	}
}

func TestImmediateCommitRule(t *testing.T) {
	t.Parallel()

	asyncOK := validity.Descriptor{
		Key: validity.KindCustom,
		CheckAsync: func(ctx context.Context, _ validity.Element, _ validity.Value) validity.Verdict {
			select {
			case <-ctx.Done():
				return validity.NoOpinion
			case <-time.After(50 * time.Millisecond):
				return validity.Valid
			}
		},
	}

	host := newFakeHost()
	typ := formctl.Type{Validators: validity.NewList(
		invalidWhenEmpty(validity.KindValueMissing, "required"),
		asyncOK,
	)}
	ctl := formctl.MustNew(host, typ)
	defer ctl.Close()

	// A synchronous status change commits immediately, without waiting
	// for the async validator: the new failure must not be masked.
	ctl.SetValue("")
	assert.Equal(t, 1, host.commitCount())
	assert.False(t, ctl.Valid())
	<-ctl.Done()
	assert.Equal(t, 2, host.commitCount())

	// Re-running with an unchanged synchronous verdict waits for the
	// async validators before committing.
	ctl.SetValue("")
	assert.Equal(t, 2, host.commitCount())
	<-ctl.Done()
	assert.Equal(t, 3, host.commitCount())
}

func TestAsyncMessageTieBreak(t *testing.T) {
	t.Parallel()

	// A later async validator resolving invalid after an earlier sync one
	// already fixed the message must not overwrite it.
	asyncBad := validity.Descriptor{
		Key:     validity.KindCustom,
		Message: "async message",
		CheckAsync: func(ctx context.Context, _ validity.Element, _ validity.Value) validity.Verdict {
			select {
			case <-ctx.Done():
				return validity.NoOpinion
			case <-time.After(20 * time.Millisecond):
				return validity.Invalid
			}
		},
	}

	host := newFakeHost()
	typ := formctl.Type{Validators: validity.NewList(
		invalidWhenEmpty(validity.KindValueMissing, "sync message"),
		asyncBad,
	)}
	ctl := formctl.MustNew(host, typ)
	defer ctl.Close()

	ctl.SetValue("")
	<-ctl.Done()

	state := ctl.Validity()
	assert.True(t, state.Violated(validity.KindValueMissing))
	assert.True(t, state.Violated(validity.KindCustom))
	assert.Equal(t, "sync message", ctl.ValidationMessage())
}

func TestNoOpinionLeavesPriorState(t *testing.T) {
	t.Parallel()

	var opinionated atomic.Bool
	opinionated.Store(true)
	asyncRule := validity.Descriptor{
		Key:     validity.KindCustom,
		Message: "rejected",
		CheckAsync: func(ctx context.Context, _ validity.Element, _ validity.Value) validity.Verdict {
			if !opinionated.Load() {
				return validity.NoOpinion
			}
			return validity.Invalid
		},
	}

	host := newFakeHost()
	ctl := formctl.MustNew(host, formctl.Type{Validators: validity.NewList(asyncRule)})
	defer ctl.Close()

	ctl.SetValue("a")
	<-ctl.Done()
	assert.True(t, ctl.Validity().Violated(validity.KindCustom))

	// A later run with no opinion leaves the condition as committed.
	opinionated.Store(false)
	ctl.SetValue("b")
	<-ctl.Done()
	assert.True(t, ctl.Validity().Violated(validity.KindCustom))
}

func TestGroupClearing(t *testing.T) {
	t.Parallel()

	peerHost := newFakeHost()
	peer := formctl.MustNew(peerHost, formctl.Type{Validators: validity.NewList(
		invalidWhenEmpty(validity.KindValueMissing, "peer required"),
	)})
	defer peer.Close()
	peer.SetValue("")
	require.False(t, peer.Valid())

	host := newFakeHost()
	host.peers = []*formctl.Control{peer}
	typ := formctl.Type{
		Validators: validity.NewList(
			invalidWhenEmpty(validity.KindValueMissing, "required"),
		),
		GroupValidation: true,
	}
	ctl := formctl.MustNew(host, typ)
	defer ctl.Close()

	// Becoming invalid does not touch peers.
	ctl.SetValue("")
	assert.False(t, peer.Valid())

	// Becoming fully valid clears every same-name peer, one-directionally.
	ctl.SetValue("chosen")
	assert.True(t, ctl.Valid())
	assert.True(t, peer.Valid())
	assert.Empty(t, peerHost.lastCommit().state)
	assert.Empty(t, peer.ValidationMessage())
}

func TestTargetPolling(t *testing.T) {
	t.Parallel()

	host := newFakeHost()
	host.setTarget(nil)
	typ := formctl.Type{Validators: validity.NewList(
		invalidWhenEmpty(validity.KindValueMissing, "required"),
	)}
	ctl := formctl.MustNew(host, typ, formctl.WithTargetRetry(40, 5*time.Millisecond))
	defer ctl.Close()

	ctl.SetValue("")
	require.Equal(t, 1, host.commitCount())
	assert.Nil(t, host.lastCommit().target)

	// The target appears while the bounded poll is still running; the
	// committed validity is re-sent with it.
	target := &fakeTarget{}
	host.setTarget(target)

	require.Eventually(t, func() bool {
		last := host.lastCommit()
		return last.target == target
	}, time.Second, 5*time.Millisecond)

	last := host.lastCommit()
	assert.Equal(t, "required", last.message)
	assert.True(t, last.state.Violated(validity.KindValueMissing))
}

func TestTargetPollingExhausted(t *testing.T) {
	t.Parallel()

	host := newFakeHost()
	host.setTarget(nil)
	typ := formctl.Type{Validators: validity.NewList(
		invalidWhenEmpty(validity.KindValueMissing, "required"),
	)}
	ctl := formctl.MustNew(host, typ, formctl.WithTargetRetry(3, 2*time.Millisecond))
	defer ctl.Close()

	ctl.SetValue("")

	// The control keeps functioning without focus delegation.
	time.Sleep(30 * time.Millisecond)
	assert.Equal(t, 1, host.commitCount())
	assert.Nil(t, host.lastCommit().target)
	assert.False(t, ctl.Valid())
}

func TestInvalidRecommitsWithLateTarget(t *testing.T) {
	t.Parallel()

	host := newFakeHost()
	host.setTarget(nil)
	typ := formctl.Type{Validators: validity.NewList(
		invalidWhenEmpty(validity.KindValueMissing, "required"),
	)}
	ctl := formctl.MustNew(host, typ, formctl.WithTargetRetry(0, 0))
	defer ctl.Close()

	ctl.SetValue("")
	require.Equal(t, 1, host.commitCount())
	require.Nil(t, host.lastCommit().target)

	target := &fakeTarget{}
	host.setTarget(target)

	// The invalid signal re-commits with the now-available target before
	// the normal invalid handling continues.
	ctl.Invalid()

	require.Equal(t, 2, host.commitCount())
	last := host.lastCommit()
	assert.Equal(t, target, last.target)
	assert.Equal(t, "required", last.message)
	assert.True(t, ctl.ShowError())
}
