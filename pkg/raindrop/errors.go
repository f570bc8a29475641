package raindrop

import (
	"errors"
	"fmt"
	"strings"
)

// APIError is the classified failure type for every call against the
// Raindrop.io API. Status is 0 when the failure happened before any HTTP
// response was received (DNS, connection refused, timeout). Body carries the
// raw response payload, when one exists, for diagnostics.
type APIError struct {
	Message string
	Status  int
	Body    []byte
}

func (e *APIError) Error() string {
	return e.Message
}

// NotFoundError indicates the referenced raindrop does not exist upstream.
type NotFoundError struct {
	ID int
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("raindrop with ID %d not found", e.ID)
}

// EntitlementError indicates the requested operation requires a paid account
// tier. Cause retains the underlying API failures for diagnostics.
type EntitlementError struct {
	Cause error
}

func (e *EntitlementError) Error() string {
	return "permanent copy feature requires a Pro subscription; " +
		"upgrade your Raindrop.io account to access this feature"
}

func (e *EntitlementError) Unwrap() error {
	return e.Cause
}

// IsNotFound reports whether err is a NotFoundError.
func IsNotFound(err error) bool {
	var nfe *NotFoundError
	return errors.As(err, &nfe)
}

// IsEntitlement reports whether err is an EntitlementError.
func IsEntitlement(err error) bool {
	var ee *EntitlementError
	return errors.As(err, &ee)
}

// entitlementKeywords are the fragments the upstream API has been observed to
// use when an operation needs a Pro plan. The API exposes no machine-readable
// code for this condition, so the error text is all there is to match on.
var entitlementKeywords = []string{"pro", "premium", "upgrade", "subscription"}

// isEntitlementError reports whether an API failure message looks like a
// subscription/upgrade restriction.
func isEntitlementError(err error) bool {
	if err == nil {
		return false
	}
	msg := strings.ToLower(err.Error())
	for _, kw := range entitlementKeywords {
		if strings.Contains(msg, kw) {
			return true
		}
	}
	return false
}
