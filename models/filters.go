package models

import "time"

// PaymentFilters are the optional, conjunctive criteria used when listing
// payments. Zero values mean the criterion is not applied.
type PaymentFilters struct {
	UserID          string
	AgreementID     string
	Status          string
	StartDate       time.Time
	EndDate         time.Time
	PaymentMethodID string
}
