package settings

import "fmt"

// ParseError reports that the configuration file exists but does not hold
// valid JSON. It is always surfaced to the caller and never replaced by the
// default document: a malformed file is a user-visible configuration error,
// distinct from a missing one.
type ParseError struct {
	// Path is the configuration file that failed to parse.
	Path string
	// Err is the underlying decode diagnostic.
	Err error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("error parsing configuration file %s: %v", e.Path, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// WriteError reports a failure persisting the configuration document
// (permission denied, disk full, path not writable). The previous on-disk
// content is left as-is; no success is ever claimed on failure.
type WriteError struct {
	// Path is the configuration file that could not be written.
	Path string
	// Err is the underlying I/O or encoding failure.
	Err error
}

func (e *WriteError) Error() string {
	return fmt.Sprintf("error writing configuration file %s: %v", e.Path, e.Err)
}

func (e *WriteError) Unwrap() error { return e.Err }
