package models

import "time"

// IncomingPaymentMethodRequest is the data received in the body of a request
// to tokenize and save a new payment method
type IncomingPaymentMethodRequest struct {
	PaymentType string `json:"payment_type" validate:"required"`
	LastFour    string `json:"last_four,omitempty"   validate:"omitempty,len=4,numeric"`
	ExpiryDate  string `json:"expiry_date,omitempty"`
	IsDefault   bool   `json:"is_default,omitempty"`
}

// PaymentMethodResourceRest is public facing payment method details to be returned in the response
type PaymentMethodResourceRest struct {
	ID          string            `json:"id"`
	UserID      string            `json:"user_id"`
	PaymentType string            `json:"payment_type"`
	LastFour    string            `json:"last_four,omitempty"`
	ExpiryDate  string            `json:"expiry_date,omitempty"`
	IsDefault   bool              `json:"is_default"`
	Metadata    map[string]string `json:"metadata,omitempty"`
	CreatedAt   time.Time         `json:"created_at,omitempty"`
	UpdatedAt   time.Time         `json:"updated_at,omitempty"`
}
