// Package errors holds the error kinds the generation pipeline can fail with.
// Every error it builds carries a stack trace so the failing root path, file
// or pattern can be traced back to the configuration that produced it.
package errors

import (
	"fmt"

	goerrors "github.com/go-errors/errors"
)

// ErrMissingGenerator is the cause of the ConfigurationError returned when
// a builder is asked to generate without a generator.
var ErrMissingGenerator = goerrors.New("missing generator function")

// ErrNotObject is the cause of the ParseError returned for a vector file
// whose top level is not a JSON object.
var ErrNotObject = goerrors.New("vector file does not contain a JSON object")

// ConfigurationError reports a mistake in how the builder was set up: a
// missing generator, an unresolvable root path or a malformed filter pattern.
type ConfigurationError struct {
	Subject string
	Reason  string
	Err     error
}

func (e *ConfigurationError) Error() string {
	msg := e.Reason
	if e.Subject != "" {
		msg = fmt.Sprintf("%s %s", e.Reason, e.Subject)
	}
	if e.Err != nil {
		return fmt.Sprintf("configuration error: %s: %v", msg, e.Err)
	}
	return "configuration error: " + msg
}

func (e *ConfigurationError) Unwrap() error {
	return e.Err
}

// ParseError reports a vector file that could not be decoded into the
// requested type.
type ParseError struct {
	Path string
	Type string
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("error parsing test case file %s to type %s: %v", e.Path, e.Type, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// DiscoveryError reports a failure while walking a resolved directory.
type DiscoveryError struct {
	Dir string
	Err error
}

func (e *DiscoveryError) Error() string {
	return fmt.Sprintf("problem reading directory %s: %v", e.Dir, e.Err)
}

func (e *DiscoveryError) Unwrap() error {
	return e.Err
}

// NewConfigurationError returns a stack-traced ConfigurationError.
func NewConfigurationError(reason, subject string, cause error) error {
	return WithStackTrace(&ConfigurationError{Subject: subject, Reason: reason, Err: cause})
}

// NewParseError returns a stack-traced ParseError.
func NewParseError(path, typeName string, cause error) error {
	return WithStackTrace(&ParseError{Path: path, Type: typeName, Err: cause})
}

// NewDiscoveryError returns a stack-traced DiscoveryError.
func NewDiscoveryError(dir string, cause error) error {
	return WithStackTrace(&DiscoveryError{Dir: dir, Err: cause})
}

// WithStackTrace wraps the given error in an Error type that contains the stack trace. If the given error already has
// a stack trace, it is used directly. If the given error is nil, return nil.
func WithStackTrace(err error) error {
	if err == nil {
		return nil
	}

	return goerrors.Wrap(err, 1)
}

// PrintErrorWithStackTrace converts the given error to a string, including the stack trace if available.
func PrintErrorWithStackTrace(err error) string {
	if err == nil {
		return ""
	}

	if goError, ok := err.(*goerrors.Error); ok {
		return goError.ErrorStack()
	}

	return err.Error()
}
