package yaerrors

import "errors"

// ErrTeapot is a custom error to report that the developer is a teapot, because
// they are dereferencing a nil error.
var ErrTeapot = errors.New("backend developer is a teapot")
