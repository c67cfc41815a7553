package models

import "time"

// PaymentMethodResourceDB contains all payment method details to be stored in the DB
type PaymentMethodResourceDB struct {
	ID          string            `bson:"_id"`
	UserID      string            `bson:"user_id"`
	PaymentType string            `bson:"payment_type"`
	LastFour    string            `bson:"last_four,omitempty"`
	ExpiryDate  string            `bson:"expiry_date,omitempty"`
	IsDefault   bool              `bson:"is_default"`
	Metadata    map[string]string `bson:"metadata,omitempty"`
	CreatedAt   time.Time         `bson:"created_at"`
	UpdatedAt   time.Time         `bson:"updated_at"`
}
