package domain

import (
	"errors"
	"fmt"
)

var (
	ErrTrackingIDRequired   = errors.New("tracking ID is required")
	ErrNoFieldsToUpdate     = errors.New("no fields to update")
	ErrShipmentNotFound     = errors.New("shipment not found")
	ErrDuplicateShipment    = errors.New("shipment already exists")
	ErrCarrierNotConfigured = errors.New("carrier API key not configured")
	ErrForbidden            = errors.New("access forbidden")
	ErrInvalidCredentials   = errors.New("invalid credentials")
	ErrUserNotFound         = errors.New("user not found")
	ErrUserExists           = errors.New("user already exists")
	ErrRateLimited          = errors.New("too many requests")
)

// UpstreamError reports a failed carrier API call with whatever detail the
// upstream returned attached. StatusCode is zero for transport-level
// failures (timeouts, connection errors).
type UpstreamError struct {
	StatusCode int
	Detail     string
}

func (e *UpstreamError) Error() string {
	if e.StatusCode == 0 {
		return fmt.Sprintf("carrier request failed: %s", e.Detail)
	}
	return fmt.Sprintf("carrier returned %d: %s", e.StatusCode, e.Detail)
}
