package bridgely

import (
	"errors"
	"fmt"
	"strings"
)

// Issue codes.
const (
	CodeNoConverter = "no_converter"
	CodeInvalidType = "invalid_type"
	CodeUnknownName = "unknown_name"
	CodeOverflow    = "overflow"
)

// ErrUnknownName marks vocabulary errors: the caller supplied a name
// outside the documented set for a known type (enum member, symbolic
// constant, layer name). Unlike other conversion failures these propagate
// out of Convert.
var ErrUnknownName = errors.New("unknown name")

// Issue represents a single conversion failure, located by a /-separated
// path into the payload.
type Issue struct {
	Path    string
	Code    string
	Message string
	Cause   error
}

// Error implements error.
func (i *Issue) Error() string {
	if i.Path == "" {
		return i.Message
	}
	return fmt.Sprintf("%v: %v", i.Path, i.Message)
}

// Unwrap returns the underlying cause.
func (i *Issue) Unwrap() error {
	return i.Cause
}

// Issues aggregates per-path conversion failures; it implements error so
// batch callers can report partial success.
type Issues []*Issue

// Error summarizes the aggregated issues.
func (i Issues) Error() string {
	if len(i) == 0 {
		return "no issues"
	}
	var parts []string
	for index, issue := range i {
		if index == 3 {
			parts = append(parts, fmt.Sprintf("... and %v more", len(i)-index))
			break
		}
		parts = append(parts, issue.Error())
	}
	return strings.Join(parts, "; ")
}

// Unwrap exposes individual issues to errors.Is / errors.As.
func (i Issues) Unwrap() []error {
	ret := make([]error, len(i))
	for index, issue := range i {
		ret[index] = issue
	}
	return ret
}

// Nest prefixes every issue path with the supplied segment.
func (i Issues) Nest(segment string) Issues {
	for _, issue := range i {
		if issue.Path == "" {
			issue.Path = segment
			continue
		}
		issue.Path = segment + "/" + issue.Path
	}
	return i
}

func issueOf(err error, path, code string) *Issue {
	return &Issue{Path: path, Code: code, Message: err.Error(), Cause: err}
}
