package models

import "time"

// IncomingPaymentResourceRequest is the data received in the body of the incoming request
type IncomingPaymentResourceRequest struct {
	PaymentMethodID string `json:"payment_method_id" validate:"required"`
	Amount          string `json:"amount"            validate:"required"`
	AgreementID     string `json:"agreement_id,omitempty"`
	ReferenceNumber string `json:"reference_number,omitempty"`
	Notes           string `json:"notes,omitempty"`
}

// PaymentResourceRest is public facing payment details to be returned in the response
type PaymentResourceRest struct {
	ID              string                 `json:"id"`
	UserID          string                 `json:"user_id"`
	AgreementID     string                 `json:"agreement_id,omitempty"`
	Amount          string                 `json:"amount"`
	FeeAmount       string                 `json:"fee_amount"`
	NetAmount       string                 `json:"net_amount"`
	Currency        string                 `json:"currency"`
	Status          string                 `json:"status"`
	PaymentMethodID string                 `json:"payment_method_id,omitempty"`
	ReferenceNumber string                 `json:"reference_number,omitempty"`
	ProcessedAt     time.Time              `json:"processed_at,omitempty"`
	RefundedAmount  string                 `json:"refunded_amount"`
	RefundReason    string                 `json:"refund_reason,omitempty"`
	Reconciliation  ReconciliationDataRest `json:"reconciliation"`
	Notes           string                 `json:"notes,omitempty"`
	CreatedAt       time.Time              `json:"created_at,omitempty"`
	UpdatedAt       time.Time              `json:"updated_at,omitempty"`
}

// ReconciliationDataRest holds the gateway-issued identifiers for a payment
type ReconciliationDataRest struct {
	ChargeID     string   `json:"charge_id,omitempty"`
	RefundIDs    []string `json:"refund_ids,omitempty"`
	GatewayError string   `json:"gateway_error,omitempty"`
}
