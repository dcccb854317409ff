// internal/validate/report.go
package validate

import (
	"fmt"
	"strings"
)

// Report accumulates content-validation messages in the order they were
// produced. Phases append freely; pass/fail is decided once at the end.
type Report struct {
	msgs []string
}

func (r *Report) Append(msg string) {
	r.msgs = append(r.msgs, msg)
}

func (r *Report) Appendf(format string, args ...any) {
	r.msgs = append(r.msgs, fmt.Sprintf(format, args...))
}

func (r *Report) Extend(msgs []string) {
	r.msgs = append(r.msgs, msgs...)
}

func (r *Report) Messages() []string {
	return r.msgs
}

func (r *Report) Empty() bool {
	return len(r.msgs) == 0
}

// Err reduces the report: nil when clean, otherwise an *Error carrying
// every collected message.
func (r *Report) Err() error {
	if r.Empty() {
		return nil
	}
	return &Error{Messages: r.msgs}
}

// Error is the batched validation failure. Messages keep the order in
// which the validators produced them.
type Error struct {
	Messages []string
}

func (e *Error) Error() string {
	var b strings.Builder
	b.WriteString("validation failed:")
	for _, msg := range e.Messages {
		b.WriteString("\n  - ")
		b.WriteString(msg)
	}
	return b.String()
}
