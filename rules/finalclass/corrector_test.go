package finalclass

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/swiftcheck/swiftcheck/linter"
	"github.com/swiftcheck/swiftcheck/swift"
)

type stateFilter linter.RuleState

func (s stateFilter) RuleState(string, swift.Range) linter.RuleState {
	return linter.RuleState(s)
}

func TestApplyCorrections_ReverseOrderMatchesSequentialApplication(t *testing.T) {
	contents := []byte("x class y class z")
	pending := []edit{{start: 2, end: 7}, {start: 10, end: 15}}
	locator := swift.NewLocator(contents)

	updated, corrections := applyCorrections(contents, pending, locator, linter.EnabledFilter{}, "final class")
	require.Len(t, corrections, 2)
	assert.Equal(t, "x final class y final class z", string(updated))

	// Applying one at a time from the last range to the first yields the
	// same result, since lower ranges stay valid until they are applied.
	sequential := append([]byte(nil), contents...)
	sequential = append(sequential[:10], append([]byte("final class"), sequential[15:]...)...)
	sequential = append(sequential[:2], append([]byte("final class"), sequential[7:]...)...)
	assert.Equal(t, string(sequential), string(updated))
}

func TestApplyCorrections_ForwardOrderWouldCorrupt(t *testing.T) {
	contents := []byte("x class y class z")
	// Applying the lower range first shifts everything behind it; reusing
	// the second range's original offsets then hits the wrong text.
	forward := append([]byte(nil), contents...)
	forward = append(forward[:2], append([]byte("final class"), forward[7:]...)...)
	forward = append(forward[:10], append([]byte("final class"), forward[15:]...)...)
	assert.NotEqual(t, "x final class y final class z", string(forward))
}

func TestApplyCorrections_DropsUnresolvableRange(t *testing.T) {
	contents := []byte("x class y")
	locator := swift.NewLocator(contents)
	pending := []edit{{start: 2, end: 7}, {start: 100, end: 105}}

	updated, corrections := applyCorrections(contents, pending, locator, linter.EnabledFilter{}, "static")
	assert.Equal(t, "x static y", string(updated))
	assert.Len(t, corrections, 1)
}

func TestApplyCorrections_FilterStates(t *testing.T) {
	contents := []byte("x class y")
	locator := swift.NewLocator(contents)
	pending := []edit{{start: 2, end: 7}}

	for _, state := range []linter.RuleState{linter.StateDisabled, linter.StateUnresolvable} {
		updated, corrections := applyCorrections(contents, pending, locator, stateFilter(state), "static")
		assert.Equal(t, string(contents), string(updated))
		assert.Empty(t, corrections)
	}
}

func TestApplyCorrections_EmptyEdits(t *testing.T) {
	contents := []byte("class C {}")
	updated, corrections := applyCorrections(contents, nil, swift.NewLocator(contents), linter.EnabledFilter{}, "final")
	assert.Equal(t, string(contents), string(updated))
	assert.Empty(t, corrections)
}
