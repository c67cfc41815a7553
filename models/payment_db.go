package models

import "time"

// PaymentResourceDB contains all payment details to be stored in the DB
type PaymentResourceDB struct {
	ID              string               `bson:"_id"`
	UserID          string               `bson:"user_id"`
	AgreementID     string               `bson:"agreement_id,omitempty"`
	Amount          string               `bson:"amount"`
	FeeAmount       string               `bson:"fee_amount"`
	NetAmount       string               `bson:"net_amount"`
	Currency        string               `bson:"currency"`
	Status          string               `bson:"status"`
	PaymentMethodID string               `bson:"payment_method_id,omitempty"`
	ReferenceNumber string               `bson:"reference_number,omitempty"`
	ProcessedAt     time.Time            `bson:"processed_at,omitempty"`
	RefundedAmount  string               `bson:"refunded_amount"`
	RefundReason    string               `bson:"refund_reason,omitempty"`
	Reconciliation  ReconciliationDataDB `bson:"reconciliation"`
	Notes           string               `bson:"notes,omitempty"`
	CreatedAt       time.Time            `bson:"created_at"`
	UpdatedAt       time.Time            `bson:"updated_at"`
}

// ReconciliationDataDB holds the gateway-issued identifiers for a payment.
// RefundIDs is append-only so that earlier refund references are never lost.
type ReconciliationDataDB struct {
	ChargeID     string   `bson:"charge_id,omitempty"`
	RefundIDs    []string `bson:"refund_ids,omitempty"`
	GatewayError string   `bson:"gateway_error,omitempty"`
}

// RefundUpdateDB is the set of payment fields written when a refund commits.
// The write is conditional on the refunded amount read before the gateway
// call, so two concurrent refunds can never both commit against the same
// balance.
type RefundUpdateDB struct {
	RefundedAmount string
	Status         string
	RefundReason   string
	RefundID       string
	UpdatedAt      time.Time
}
