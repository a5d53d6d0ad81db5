package main

import "errors"

// Exit codes. Declined operations (unknown profile, no selection) exit with
// ExitSuccess.
const (
	ExitSuccess     = 0
	ExitError       = 1 // invalid arguments, malformed JSON options, write failures
	ExitConfigError = 2 // settings file or profile store could not be read
)

type exitError struct {
	code int
	err  error
}

func (e *exitError) Error() string { return e.err.Error() }

func (e *exitError) Unwrap() error { return e.err }

func configError(err error) error {
	return &exitError{code: ExitConfigError, err: err}
}

func exitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}
	var ee *exitError
	if errors.As(err, &ee) {
		return ee.code
	}
	return ExitError
}
