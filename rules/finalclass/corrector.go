package finalclass

import (
	"sort"

	"github.com/swiftcheck/swiftcheck/linter"
	"github.com/swiftcheck/swiftcheck/swift"
)

// edit is one pending replacement, a half-open byte range covering exactly
// the class modifier keyword of a flagged declaration.
type edit struct {
	start int
	end   int
}

// applyCorrections rewrites every non-suppressed edit in the contents with
// the replacement keyword and returns the new contents plus one correction
// record per applied edit, in application order.
//
// Edits are applied from the end of the file toward the beginning. Each
// replacement can change the text length at its range, so applying from
// the highest offset downward is what keeps every not-yet-applied, lower
// range valid; this ordering is a correctness requirement, not an
// optimization.
func applyCorrections(contents []byte, pending []edit, locator *swift.Locator, filter linter.Filter, replacement string) ([]byte, []linter.Correction) {
	var ranges []swift.Range
	for _, e := range pending {
		r, err := locator.Range(e.start, e.end)
		if err != nil {
			// Unresolvable range: drop this correction, keep the rest
			continue
		}
		if filter.RuleState(RuleName, r) != linter.StateEnabled {
			continue
		}
		ranges = append(ranges, r)
	}

	sort.Slice(ranges, func(i, j int) bool {
		return ranges[i].Start > ranges[j].Start
	})

	updated := make([]byte, len(contents))
	copy(updated, contents)

	var corrections []linter.Correction
	for _, r := range ranges {
		// Position reflects the original file; the locator was built from
		// the pre-edit contents and the ranges below r are untouched.
		position, err := locator.PositionAt(r.Start)
		if err != nil {
			continue
		}
		var next []byte
		next = append(next, updated[:r.Start]...)
		next = append(next, replacement...)
		next = append(next, updated[r.End:]...)
		updated = next

		corrections = append(corrections, linter.Correction{
			Rule:     RuleName,
			Position: position,
		})
	}
	return updated, corrections
}
