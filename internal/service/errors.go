package service

import (
	"errors"
	"fmt"
)

// ErrProductNotFound means neither the global nor the local master has a
// row for the requested code.
var ErrProductNotFound = errors.New("product not found")

// InvalidRequestError rejects a purchase before anything is persisted. The
// Reason names the offending value (empty items, bad quantity, unknown
// code).
type InvalidRequestError struct {
	Reason string
}

func (e *InvalidRequestError) Error() string {
	return "invalid request: " + e.Reason
}

func invalidRequestf(format string, args ...interface{}) *InvalidRequestError {
	return &InvalidRequestError{Reason: fmt.Sprintf(format, args...)}
}
