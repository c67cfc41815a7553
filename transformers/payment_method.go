package transformers

import (
	"github.com/chioma/payments-api/models"
)

// PaymentMethodTransformer transforms payment method resource data between rest and database models
type PaymentMethodTransformer struct{}

// TransformToDB transforms payment method resource rest model into payment method resource database model
func (pmt PaymentMethodTransformer) TransformToDB(rest models.PaymentMethodResourceRest) models.PaymentMethodResourceDB {
	return models.PaymentMethodResourceDB{
		ID:          rest.ID,
		UserID:      rest.UserID,
		PaymentType: rest.PaymentType,
		LastFour:    rest.LastFour,
		ExpiryDate:  rest.ExpiryDate,
		IsDefault:   rest.IsDefault,
		Metadata:    rest.Metadata,
		CreatedAt:   rest.CreatedAt,
		UpdatedAt:   rest.UpdatedAt,
	}
}

// TransformToRest transforms payment method resource database model into payment method resource rest model
func (pmt PaymentMethodTransformer) TransformToRest(dbResource models.PaymentMethodResourceDB) models.PaymentMethodResourceRest {
	return models.PaymentMethodResourceRest{
		ID:          dbResource.ID,
		UserID:      dbResource.UserID,
		PaymentType: dbResource.PaymentType,
		LastFour:    dbResource.LastFour,
		ExpiryDate:  dbResource.ExpiryDate,
		IsDefault:   dbResource.IsDefault,
		Metadata:    dbResource.Metadata,
		CreatedAt:   dbResource.CreatedAt,
		UpdatedAt:   dbResource.UpdatedAt,
	}
}
