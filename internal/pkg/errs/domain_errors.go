package errs

import "errors"

// Failure classes shared by every layer. Specific errors carry exactly one of
// these so callers can branch with errors.Is without knowing the concrete error.
var (
	ErrNotFound             = errors.New("not found")
	ErrInvalidInput         = errors.New("invalid input")
	ErrInsufficientCapacity = errors.New("insufficient capacity")
	ErrForbidden            = errors.New("forbidden")
	ErrAlreadyTerminal      = errors.New("already in a terminal state")
	ErrStorageFailure       = errors.New("storage failure")
)

type classified struct {
	cause error
	class error
}

func (c *classified) Error() string { return c.cause.Error() }
func (c *classified) Unwrap() error { return c.cause }

// Is also matches the class of the class, so a sentinel built with Class
// can itself be used as a class.
func (c *classified) Is(target error) bool {
	return target == c.class || errors.Is(c.class, target)
}

// Classify attaches a failure class to err without hiding its chain.
func Classify(err error, class error) error {
	if err == nil {
		return nil
	}
	return &classified{cause: err, class: class}
}

// Class builds a sentinel error carrying the given failure class.
func Class(msg string, class error) error {
	return Classify(New(msg), class)
}

// ClassOf returns the failure class carried by err, or nil.
func ClassOf(err error) error {
	for _, class := range []error{
		ErrNotFound,
		ErrInvalidInput,
		ErrInsufficientCapacity,
		ErrForbidden,
		ErrAlreadyTerminal,
		ErrStorageFailure,
	} {
		if errors.Is(err, class) {
			return class
		}
	}
	return nil
}
