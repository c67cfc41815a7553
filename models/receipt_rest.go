package models

import "time"

// ReceiptResourceRest is the projection of a payment, its owning user and its
// payment method used for receipt rendering. It is assembled on demand and
// never stored.
type ReceiptResourceRest struct {
	PaymentID     string                    `json:"payment_id"`
	Amount        string                    `json:"amount"`
	Currency      string                    `json:"currency"`
	Status        string                    `json:"status"`
	ProcessedAt   time.Time                 `json:"processed_at,omitempty"`
	User          ReceiptUserRest           `json:"user"`
	PaymentMethod *ReceiptPaymentMethodRest `json:"payment_method"`
}

// ReceiptUserRest identifies the payer on a receipt
type ReceiptUserRest struct {
	ID    string `json:"id"`
	Email string `json:"email"`
}

// ReceiptPaymentMethodRest describes the instrument used, when one is attached
type ReceiptPaymentMethodRest struct {
	Type     string `json:"type"`
	LastFour string `json:"last_four,omitempty"`
}
