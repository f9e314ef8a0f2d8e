package task

import (
	"errors"
	"fmt"
)

// Sentinels matched with errors.Is against the typed errors below.
var (
	ErrWrongLineCount    = errors.New("wrong line count")
	ErrMalformedLocation = errors.New("malformed location")
	ErrNotFound          = errors.New("not found")
	ErrTimeout           = errors.New("request timed out")
	ErrEmptyTitle        = errors.New("task title is empty")
)

// ParseErrorKind classifies command parse failures.
type ParseErrorKind int

const (
	WrongLineCount ParseErrorKind = iota + 1
	MalformedLocation
)

// ParseError is returned when a /task command body cannot be parsed.
type ParseError struct {
	Kind   ParseErrorKind
	Detail string
}

func (e *ParseError) Error() string {
	switch e.Kind {
	case WrongLineCount:
		return fmt.Sprintf("%s: %s", ErrWrongLineCount, e.Detail)
	case MalformedLocation:
		return fmt.Sprintf("%s: %s", ErrMalformedLocation, e.Detail)
	}
	return "parse error: " + e.Detail
}

func (e *ParseError) Is(target error) bool {
	switch e.Kind {
	case WrongLineCount:
		return target == ErrWrongLineCount
	case MalformedLocation:
		return target == ErrMalformedLocation
	}
	return false
}

// EntityKind names a level of the ClickUp hierarchy.
type EntityKind int

const (
	EntityWorkspace EntityKind = iota + 1
	EntitySpace
	EntityFolder
	EntityList
)

func (k EntityKind) String() string {
	switch k {
	case EntityWorkspace:
		return "workspace"
	case EntitySpace:
		return "space"
	case EntityFolder:
		return "folder"
	case EntityList:
		return "list"
	}
	return "entity"
}

// NotFoundError is returned when no listing entry matches a name.
type NotFoundError struct {
	Kind EntityKind
	Name string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %q not found", e.Kind, e.Name)
}

func (e *NotFoundError) Is(target error) bool {
	return target == ErrNotFound
}

// SubmissionErrorKind classifies remote call failures.
type SubmissionErrorKind int

const (
	SubmissionHTTPStatus SubmissionErrorKind = iota + 1
	SubmissionTimeout
	SubmissionNetwork // transport or response decoding failure
)

// SubmissionError wraps a failed ClickUp API call.
type SubmissionError struct {
	Kind       SubmissionErrorKind
	StatusCode int
	Body       string
	Err        error
}

func (e *SubmissionError) Error() string {
	switch e.Kind {
	case SubmissionHTTPStatus:
		return fmt.Sprintf("clickup responded %d: %s", e.StatusCode, e.Body)
	case SubmissionTimeout:
		return fmt.Sprintf("clickup request timed out: %v", e.Err)
	}
	return fmt.Sprintf("clickup request failed: %v", e.Err)
}

func (e *SubmissionError) Unwrap() error {
	return e.Err
}

func (e *SubmissionError) Is(target error) bool {
	return e.Kind == SubmissionTimeout && target == ErrTimeout
}
