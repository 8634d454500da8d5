package formctl

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/formctl/formctl/pkg/validity"
)

// minimalHost has no optional capabilities, in particular no
// FocusTargetProvider.
type minimalHost struct{}

func (minimalHost) Attribute(string) (string, bool)                 { return "", false }
func (minimalHost) SetFormValue(Value)                              {}
func (minimalHost) SetValidity(validity.State, string, FocusTarget) {}
func (minimalHost) Disabled() bool                                  { return false }

func TestCommitSkipsTargetPollingWithoutProvider(t *testing.T) {
	t.Parallel()

	typ := Type{Validators: validity.NewList(validity.Descriptor{
		Key:     validity.KindValueMissing,
		Message: "required",
		Check: func(_ validity.Element, v validity.Value) bool {
			return !validity.IsEmpty(v)
		},
	})}
	ctl, err := New(minimalHost{}, typ)
	require.NoError(t, err)
	defer ctl.Close()

	ctl.SetValue("")

	// A host that can never produce a target must not be marked as waiting
	// for one, and no poll loop may be started for it.
	ctl.mu.Lock()
	defer ctl.mu.Unlock()
	assert.False(t, ctl.awaitingTarget)
	assert.False(t, ctl.targetPolling)
}
