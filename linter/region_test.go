package linter

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/swiftcheck/swiftcheck/swift"
)

func rangeAt(source, substring string) swift.Range {
	start := strings.Index(source, substring)
	return swift.Range{Start: start, End: start + len(substring)}
}

func TestScanRegions_DisableEnable(t *testing.T) {
	source := `class A { class func a() {} }
// swiftcheck:disable final_class_member
class B { class func b() {} }
// swiftcheck:enable final_class_member
class C { class func c() {} }
`
	filter := ScanRegions([]byte(source))

	assert.Equal(t, StateEnabled, filter.RuleState("final_class_member", rangeAt(source, "func a")))
	assert.Equal(t, StateDisabled, filter.RuleState("final_class_member", rangeAt(source, "func b")))
	assert.Equal(t, StateEnabled, filter.RuleState("final_class_member", rangeAt(source, "func c")))
	// Other rules are untouched by a named directive.
	assert.Equal(t, StateEnabled, filter.RuleState("other_rule", rangeAt(source, "func b")))
}

func TestScanRegions_DisableToEndOfFile(t *testing.T) {
	source := `class A { class func a() {} }
// swiftcheck:disable final_class_member
class B { class func b() {} }
`
	filter := ScanRegions([]byte(source))
	assert.Equal(t, StateEnabled, filter.RuleState("final_class_member", rangeAt(source, "func a")))
	assert.Equal(t, StateDisabled, filter.RuleState("final_class_member", rangeAt(source, "func b")))
}

func TestScanRegions_DisableAll(t *testing.T) {
	source := `// swiftcheck:disable all
class B { class func b() {} }
`
	filter := ScanRegions([]byte(source))
	assert.Equal(t, StateDisabled, filter.RuleState("final_class_member", rangeAt(source, "func b")))
	assert.Equal(t, StateDisabled, filter.RuleState("other_rule", rangeAt(source, "func b")))
}

func TestScanRegions_DisableNext(t *testing.T) {
	source := `// swiftcheck:disable:next final_class_member
class B { class func b() {} }
class C { class func c() {} }
`
	filter := ScanRegions([]byte(source))
	assert.Equal(t, StateDisabled, filter.RuleState("final_class_member", rangeAt(source, "func b")))
	assert.Equal(t, StateEnabled, filter.RuleState("final_class_member", rangeAt(source, "func c")))
}

func TestRegionFilter_Unresolvable(t *testing.T) {
	filter := ScanRegions([]byte("class C {}"))
	assert.Equal(t, StateUnresolvable, filter.RuleState("final_class_member", swift.Range{Start: -1, End: 2}))
	assert.Equal(t, StateUnresolvable, filter.RuleState("final_class_member", swift.Range{Start: 0, End: 100}))
	assert.Equal(t, StateUnresolvable, filter.RuleState("final_class_member", swift.Range{Start: 5, End: 2}))
}

func TestScanRegions_NoDirectives(t *testing.T) {
	source := "class C { class func f() {} }"
	filter := ScanRegions([]byte(source))
	assert.Equal(t, StateEnabled, filter.RuleState("final_class_member", rangeAt(source, "func f")))
}
