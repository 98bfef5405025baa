package linter

import "fmt"

// Severity is the reporting level of a violation
type Severity string

const (
	SeverityWarning Severity = "warning"
	SeverityError   Severity = "error"
)

// Validate rejects severities other than warning and error
func (s Severity) Validate() error {
	switch s {
	case SeverityWarning, SeverityError:
		return nil
	}
	return fmt.Errorf("unknown severity %q", string(s))
}

func (s Severity) String() string {
	return string(s)
}
