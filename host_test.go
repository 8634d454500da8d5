package formctl_test

import (
	"sync"

	"github.com/formctl/formctl"
	"github.com/formctl/formctl/pkg/validity"
)

type fakeTarget struct {
	mu         sync.Mutex
	focusCalls int
}

func (t *fakeTarget) Focus() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.focusCalls++
}

type commitRecord struct {
	state   validity.State
	message string
	target  formctl.FocusTarget
}

// fakeHost implements Host and every optional capability, with recording so
// tests can observe the engine's outbound calls. Asynchronous validator
// completions commit from other goroutines, hence the mutex.
type fakeHost struct {
	mu        sync.Mutex
	attrs     map[string]string
	disabled  bool
	gate      func() bool
	target    formctl.FocusTarget
	overrides map[validity.Kind]string
	peers     []*formctl.Control

	formValues   []formctl.Value
	commits      []commitRecord
	messages     []string
	valueChanges []formctl.Value
	resetCalls   int
	markers      []bool
}

func newFakeHost() *fakeHost {
	return &fakeHost{
		attrs:  make(map[string]string),
		target: &fakeTarget{},
	}
}

func (h *fakeHost) Attribute(name string) (string, bool) {
	h.mu.Lock()
	defer h.mu.Unlock()
	v, ok := h.attrs[name]
	return v, ok
}

func (h *fakeHost) SetFormValue(value formctl.Value) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.formValues = append(h.formValues, value)
}

func (h *fakeHost) SetValidity(state validity.State, message string, target formctl.FocusTarget) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.commits = append(h.commits, commitRecord{state: state, message: message, target: target})
}

func (h *fakeHost) Disabled() bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.disabled
}

func (h *fakeHost) ShouldFormValueUpdate() bool {
	h.mu.Lock()
	gate := h.gate
	h.mu.Unlock()
	if gate == nil {
		return true
	}
	return gate()
}

func (h *fakeHost) ValidationTarget() formctl.FocusTarget {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.target
}

func (h *fakeHost) ValidityCallback(kind validity.Kind) string {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.overrides[kind]
}

func (h *fakeHost) ValidationMessageCallback(message string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.messages = append(h.messages, message)
}

func (h *fakeHost) ValueChangedCallback(value formctl.Value) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.valueChanges = append(h.valueChanges, value)
}

func (h *fakeHost) ResetFormControl() {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.resetCalls++
}

func (h *fakeHost) GroupPeers() []*formctl.Control {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.peers
}

func (h *fakeHost) SetShowError(show bool) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.markers = append(h.markers, show)
}

func (h *fakeHost) setAttr(name, value string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.attrs[name] = value
}

func (h *fakeHost) setTarget(target formctl.FocusTarget) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.target = target
}

func (h *fakeHost) setDisabled(disabled bool) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.disabled = disabled
}

func (h *fakeHost) setGate(gate func() bool) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.gate = gate
}

func (h *fakeHost) commitCount() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.commits)
}

func (h *fakeHost) lastCommit() commitRecord {
	h.mu.Lock()
	defer h.mu.Unlock()
	if len(h.commits) == 0 {
		return commitRecord{}
	}
	return h.commits[len(h.commits)-1]
}

func (h *fakeHost) lastFormValue() formctl.Value {
	h.mu.Lock()
	defer h.mu.Unlock()
	if len(h.formValues) == 0 {
		return nil
	}
	return h.formValues[len(h.formValues)-1]
}

func (h *fakeHost) formValueCount() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.formValues)
}

func (h *fakeHost) valueChangeCount() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.valueChanges)
}

func (h *fakeHost) resetCount() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.resetCalls
}

func (h *fakeHost) markerHistory() []bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	return append([]bool(nil), h.markers...)
}

// bareHost implements only the required Host interface, with no optional
// capabilities at all.
type bareHost struct{}

func (bareHost) Attribute(string) (string, bool)                         { return "", false }
func (bareHost) SetFormValue(formctl.Value)                              {}
func (bareHost) SetValidity(validity.State, string, formctl.FocusTarget) {}
func (bareHost) Disabled() bool                                          { return false }
