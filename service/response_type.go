package service

// ResponseType enumerates the outcomes a service call can report to its caller
type ResponseType int

const (
	// InvalidData response
	InvalidData ResponseType = iota

	// Error response
	Error

	// Forbidden response
	Forbidden

	// NotFound response
	NotFound

	// Success response
	Success

	// InvalidState response, for operations against a record not eligible for them
	InvalidState

	// PaymentFailed response, for charge or refund attempts declined by the gateway
	PaymentFailed

	// Conflict response, for updates beaten by a concurrent writer
	Conflict
)

var vals = [...]string{
	"invalid-data",
	"error",
	"forbidden",
	"not-found",
	"success",
	"invalid-state",
	"payment-failed",
	"conflict",
}

// String representation of `ResponseType`
func (a ResponseType) String() string {
	return vals[a]
}
