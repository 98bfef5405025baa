package linter

import (
	"regexp"
	"strings"

	"github.com/swiftcheck/swiftcheck/swift"
)

// RuleState is the answer of a suppression lookup for a rule at a range
type RuleState int

const (
	// StateEnabled means the rule applies at the range
	StateEnabled RuleState = iota
	// StateDisabled means an inline directive turned the rule off there
	StateDisabled
	// StateUnresolvable means the range could not be checked; callers
	// skip the single affected item rather than failing the batch.
	StateUnresolvable
)

// Filter answers whether a rule is enabled at a byte range
type Filter interface {
	RuleState(rule string, r swift.Range) RuleState
}

// EnabledFilter is a Filter that never suppresses anything
type EnabledFilter struct{}

func (EnabledFilter) RuleState(string, swift.Range) RuleState {
	return StateEnabled
}

// region is one byte span where a set of rules is disabled
type region struct {
	start int
	end   int
	rules map[string]bool // nil means all rules
}

func (r *region) covers(rule string, offset int) bool {
	if offset < r.start || offset >= r.end {
		return false
	}
	return r.rules == nil || r.rules[rule]
}

// RegionFilter suppresses rules inside regions delimited by inline
// swiftcheck:disable / swiftcheck:enable comment directives.
type RegionFilter struct {
	size    int
	regions []region
}

var directivePattern = regexp.MustCompile(`//\s*swiftcheck:(disable|enable)(:next)?\b([^\n]*)`)

// ScanRegions scans the source for suppression directives and builds the
// resulting filter. A disable directive opens a region that runs until a
// matching enable directive or the end of the file; the :next form
// disables the directly following line only.
func ScanRegions(source []byte) *RegionFilter {
	filter := &RegionFilter{size: len(source)}
	open := map[string]int{} // rule name ("" for all) -> region start

	matches := directivePattern.FindAllSubmatchIndex(source, -1)
	for _, m := range matches {
		action := string(source[m[2]:m[3]])
		next := m[4] >= 0
		names := strings.Fields(string(source[m[6]:m[7]]))
		if len(names) == 0 || (len(names) == 1 && names[0] == "all") {
			names = []string{""}
		}

		if next {
			if action != "disable" {
				continue
			}
			start, end := nextLineSpan(source, m[1])
			filter.regions = append(filter.regions, makeRegion(start, end, names))
			continue
		}

		for _, name := range names {
			if action == "disable" {
				if _, exists := open[name]; !exists {
					open[name] = m[0]
				}
				continue
			}
			if start, exists := open[name]; exists {
				filter.regions = append(filter.regions, makeRegion(start, m[0], []string{name}))
				delete(open, name)
			}
		}
	}

	// Regions left open run to the end of the file
	for name, start := range open {
		filter.regions = append(filter.regions, makeRegion(start, len(source), []string{name}))
	}
	return filter
}

func makeRegion(start, end int, names []string) region {
	r := region{start: start, end: end}
	if len(names) == 1 && names[0] == "" {
		return r
	}
	r.rules = map[string]bool{}
	for _, name := range names {
		if name == "" {
			r.rules = nil
			return r
		}
		r.rules[name] = true
	}
	return r
}

// nextLineSpan returns the byte span of the line following the line that
// contains the given offset.
func nextLineSpan(source []byte, offset int) (int, int) {
	start := offset
	for start < len(source) && source[start] != '\n' {
		start++
	}
	if start < len(source) {
		start++ // past the newline
	}
	end := start
	for end < len(source) && source[end] != '\n' {
		end++
	}
	if end < len(source) {
		end++
	}
	return start, end
}

// RuleState implements Filter. Lookups outside the scanned contents are
// unresolvable rather than an error.
func (f *RegionFilter) RuleState(rule string, r swift.Range) RuleState {
	if r.Start < 0 || r.End < r.Start || r.End > f.size {
		return StateUnresolvable
	}
	for i := range f.regions {
		if f.regions[i].covers(rule, r.Start) {
			return StateDisabled
		}
	}
	return StateEnabled
}
