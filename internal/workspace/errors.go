package workspace

import "errors"

// badRequestError signals a malformed request (unknown kind, malformed
// matrix) for 400 mapping.
type badRequestError struct{ msg string }

func (e badRequestError) Error() string { return e.msg }

// ErrBadRequest constructs a badRequestError.
func ErrBadRequest(msg string) error { return badRequestError{msg: msg} }

// IsBadRequest reports whether err indicates a malformed request.
func IsBadRequest(err error) bool {
	var e badRequestError
	return errors.As(err, &e)
}
