package relay

import "errors"

// ErrUnknownWebhook reports that no registration matches the webhook id.
// The id will never become valid without a new registration, so callers
// treat this as a permanent rejection.
var ErrUnknownWebhook = errors.New("unknown webhook id")

// StorageError reports that the registry backend was unreachable or
// failed. Distinct from ErrUnknownWebhook: the lookup itself could not be
// performed.
type StorageError struct {
	Err error
}

func (e *StorageError) Error() string {
	return "webhook storage: " + e.Err.Error()
}

func (e *StorageError) Unwrap() error {
	return e.Err
}

// DeliveryError reports that the messaging backend rejected or failed the
// send. Rejected is true when the backend returned an explicit API error
// (bad destination, missing permissions) rather than a transport failure.
type DeliveryError struct {
	Description string
	Rejected    bool
	Err         error
}

func (e *DeliveryError) Error() string {
	return "delivery failed: " + e.Description
}

func (e *DeliveryError) Unwrap() error {
	return e.Err
}
