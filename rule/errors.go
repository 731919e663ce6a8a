package rule

import "fmt"

// ValidationError reports a structurally invalid TransferRule passed to
// Encode. Reason names the violated invariant.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string {
	return "invalid transfer rule: " + e.Reason
}

func validationf(format string, args ...any) *ValidationError {
	return &ValidationError{Reason: fmt.Sprintf(format, args...)}
}

// ParseErrorKind classifies Decode failures.
type ParseErrorKind string

const (
	MissingArrow  ParseErrorKind = "missing arrow"
	EmptySide     ParseErrorKind = "empty side"
	MalformedItem ParseErrorKind = "malformed item"
)

// ParseError reports input text that does not conform to the rule
// description grammar. For malformed items, Input holds the offending
// item substring and Position its zero-based index within its side.
type ParseError struct {
	Kind     ParseErrorKind
	Input    string
	Position int
	Detail   string
}

func (e *ParseError) Error() string {
	msg := string(e.Kind)
	if e.Detail != "" {
		msg += ": " + e.Detail
	}
	if e.Kind == MalformedItem {
		msg = fmt.Sprintf("%v (item %v: %q)", msg, e.Position, e.Input)
	}
	return msg
}

func malformed(item string, position int, detail string) *ParseError {
	return &ParseError{Kind: MalformedItem, Input: item, Position: position, Detail: detail}
}
