package linter

import (
	"github.com/swiftcheck/swiftcheck/swift"
)

// Violation is one reported rule finding, positioned at the offending
// token in the original file contents. Violations are immutable and
// ordered by source order of discovery.
type Violation struct {
	Rule     string
	Position swift.Position
	Message  string
	Severity Severity
}

// Correction is one applied autocorrection. Position refers to the start
// of the replaced range in the original, pre-edit file contents so that
// all corrections of one pass report consistent locations.
type Correction struct {
	Rule     string
	Position swift.Position
}
