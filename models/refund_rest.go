package models

// CreateRefundRequest is the data received in the body of a refund request
type CreateRefundRequest struct {
	Amount string `json:"amount" validate:"required"`
	Reason string `json:"reason,omitempty"`
}
