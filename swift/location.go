package swift

import (
	"fmt"
	"sort"
)

// Position is a resolved source location. Line and Column are 1-based,
// Offset is the 0-based byte offset in the file.
type Position struct {
	Line   int
	Column int
	Offset int
}

// Range is a half-open [Start, End) byte range in the file contents
type Range struct {
	Start int
	End   int
}

// Locator converts byte offsets into file positions and validated ranges.
// It is built once per file from the original contents; positions it
// resolves always refer to that original, pre-edit text.
type Locator struct {
	size        int
	lineOffsets []int
}

// NewLocator indexes the line starts of the given source
func NewLocator(source []byte) *Locator {
	lineOffsets := []int{0}
	for i, b := range source {
		if b == '\n' {
			lineOffsets = append(lineOffsets, i+1)
		}
	}
	return &Locator{
		size:        len(source),
		lineOffsets: lineOffsets,
	}
}

// PositionAt resolves a byte offset to a line/column position. Offsets
// outside the file yield an error; the caller is expected to drop the
// corresponding item rather than abort.
func (l *Locator) PositionAt(offset int) (Position, error) {
	if offset < 0 || offset > l.size {
		return Position{}, fmt.Errorf("offset %d out of range [0, %d]", offset, l.size)
	}
	line := sort.Search(len(l.lineOffsets), func(i int) bool {
		return l.lineOffsets[i] > offset
	})
	return Position{
		Line:   line,
		Column: offset - l.lineOffsets[line-1] + 1,
		Offset: offset,
	}, nil
}

// Range validates a half-open byte range against the file contents
func (l *Locator) Range(start, end int) (Range, error) {
	if start < 0 || end < start || end > l.size {
		return Range{}, fmt.Errorf("range [%d, %d) out of bounds for size %d", start, end, l.size)
	}
	return Range{Start: start, End: end}, nil
}
