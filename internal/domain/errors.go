package domain

import "errors"

// ErrValidation is the umbrella error every domain validation sentinel
// wraps. Callers can check errors.Is(err, ErrValidation) to tell a bad
// input apart from an infrastructure failure; the api layer classifies
// anything wrapping it as a client error.
var ErrValidation = errors.New("validation failed")
