package store

import "fmt"

// ParseError reports an input file that cannot be used for screening:
// missing, unreadable, malformed, or lacking required columns.
type ParseError struct {
	Path string
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("cannot load %s: %v", e.Path, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// ResumeError reports an existing output file whose shape is incompatible
// with the current input, so prior decisions cannot be trusted.
type ResumeError struct {
	Path string
	Err  error
}

func (e *ResumeError) Error() string {
	return fmt.Sprintf("cannot resume from %s: %v (use --from-scratch to discard it)", e.Path, e.Err)
}

func (e *ResumeError) Unwrap() error {
	return e.Err
}

// WriteError reports a failed attempt to persist decisions.
type WriteError struct {
	Path string
	Err  error
}

func (e *WriteError) Error() string {
	return fmt.Sprintf("cannot write %s: %v", e.Path, e.Err)
}

func (e *WriteError) Unwrap() error {
	return e.Err
}
