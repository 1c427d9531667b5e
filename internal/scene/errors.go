package scene

import (
	"errors"
	"fmt"
)

// namingCollisionError: a name is already held by another live object.
type namingCollisionError struct{ name string }

func (e namingCollisionError) Error() string { return "name already taken: " + e.name }

// ErrNamingCollision constructs a namingCollisionError.
func ErrNamingCollision(name string) error { return namingCollisionError{name: name} }

// IsNamingCollision reports whether err is a rejected register or rename.
func IsNamingCollision(err error) bool {
	var e namingCollisionError
	return errors.As(err, &e)
}

// unresolvedInputError: a construction names an input that does not exist.
type unresolvedInputError struct{ name string }

func (e unresolvedInputError) Error() string { return "input not found: " + e.name }

func ErrUnresolvedInput(name string) error { return unresolvedInputError{name: name} }

func IsUnresolvedInput(err error) bool {
	var e unresolvedInputError
	return errors.As(err, &e)
}

// degenerateError: a formula has no value for the current inputs.
type degenerateError struct {
	formula string
	reason  string
}

func (e degenerateError) Error() string {
	return fmt.Sprintf("degenerate configuration for %s: %s", e.formula, e.reason)
}

func ErrDegenerate(formula, reason string) error {
	return degenerateError{formula: formula, reason: reason}
}

// IsDegenerate reports whether err is a degenerate configuration.
func IsDegenerate(err error) bool {
	var e degenerateError
	return errors.As(err, &e)
}

// orphanedError: an operation reached an object that has been destroyed.
type orphanedError struct{ name string }

func (e orphanedError) Error() string { return "object destroyed: " + e.name }

func ErrOrphaned(name string) error { return orphanedError{name: name} }

func IsOrphaned(err error) bool {
	var e orphanedError
	return errors.As(err, &e)
}

// cycleError: an input would make a construction depend on itself.
type cycleError struct {
	construction string
	input        string
}

func (e cycleError) Error() string {
	return fmt.Sprintf("cycle: %s cannot depend on %s", e.construction, e.input)
}

func ErrCycle(construction, input string) error {
	return cycleError{construction: construction, input: input}
}

func IsCycle(err error) bool {
	var e cycleError
	return errors.As(err, &e)
}

// notFoundError: no object has the given name.
type notFoundError struct{ name string }

func (e notFoundError) Error() string { return "object not found: " + e.name }

func ErrNotFound(name string) error { return notFoundError{name: name} }

func IsNotFound(err error) bool {
	var e notFoundError
	return errors.As(err, &e)
}

// invalidValueError wraps the reason a value or name was rejected.
type invalidValueError struct{ err error }

func (e invalidValueError) Error() string { return "invalid value: " + e.err.Error() }
func (e invalidValueError) Unwrap() error { return e.err }

func ErrInvalidValue(err error) error { return invalidValueError{err: err} }

func IsInvalidValue(err error) bool {
	var e invalidValueError
	return errors.As(err, &e)
}

// notMovableError: the object is derived; only its inputs can move.
type notMovableError struct{ name string }

func (e notMovableError) Error() string { return "object is derived and cannot be moved: " + e.name }

func ErrNotMovable(name string) error { return notMovableError{name: name} }

func IsNotMovable(err error) bool {
	var e notMovableError
	return errors.As(err, &e)
}

// wrongKindError: a value or input has the wrong kind or count.
type wrongKindError struct{ msg string }

func (e wrongKindError) Error() string { return e.msg }

func errWrongKind(format string, args ...any) error {
	return wrongKindError{msg: fmt.Sprintf(format, args...)}
}

func IsWrongKind(err error) bool {
	var e wrongKindError
	return errors.As(err, &e)
}

// unknownFormulaError: no formula is registered under the name.
type unknownFormulaError struct{ name string }

func (e unknownFormulaError) Error() string { return "unknown construction: " + e.name }

func IsUnknownFormula(err error) bool {
	var e unknownFormulaError
	return errors.As(err, &e)
}
