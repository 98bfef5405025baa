package runner

import (
	"fmt"
	"io"

	"github.com/fatih/color"

	"github.com/swiftcheck/swiftcheck/linter"
)

var (
	warningColor = color.New(color.FgYellow)
	errorColor   = color.New(color.FgRed)
)

// Reporter writes lint results as file:line:column lines
type Reporter struct {
	out io.Writer
}

// NewReporter creates a reporter writing to the given stream. Color
// output follows the global color settings, disable it with
// color.NoColor.
func NewReporter(out io.Writer) *Reporter {
	return &Reporter{out: out}
}

// Report writes every violation of one file result
func (r *Reporter) Report(result FileResult) {
	for _, v := range result.Violations {
		severity := v.Severity.String()
		if v.Severity == linter.SeverityError {
			severity = errorColor.Sprint(severity)
		} else {
			severity = warningColor.Sprint(severity)
		}
		fmt.Fprintf(r.out, "%s:%d:%d: %s: %s (%s)\n",
			result.Path, v.Position.Line, v.Position.Column, severity, v.Message, v.Rule)
	}
}

// ReportCorrections writes every applied correction of one file result
func (r *Reporter) ReportCorrections(result FileResult) {
	for _, c := range result.Corrections {
		fmt.Fprintf(r.out, "%s:%d:%d corrected (%s)\n",
			result.Path, c.Position.Line, c.Position.Column, c.Rule)
	}
}
