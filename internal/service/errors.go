package service

import "errors"

// ErrZeroFactory is returned when a quote is requested under the zero
// factory address; every pair derived from it would be garbage.
var ErrZeroFactory = errors.New("factory address is zero")
