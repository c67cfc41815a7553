package transformers

import (
	"github.com/chioma/payments-api/models"
)

// PaymentTransformer transforms payment resource data between rest and database models
type PaymentTransformer struct{}

// TransformToDB transforms payment resource rest model into payment resource database model
func (pt PaymentTransformer) TransformToDB(rest models.PaymentResourceRest) models.PaymentResourceDB {
	return models.PaymentResourceDB{
		ID:              rest.ID,
		UserID:          rest.UserID,
		AgreementID:     rest.AgreementID,
		Amount:          rest.Amount,
		FeeAmount:       rest.FeeAmount,
		NetAmount:       rest.NetAmount,
		Currency:        rest.Currency,
		Status:          rest.Status,
		PaymentMethodID: rest.PaymentMethodID,
		ReferenceNumber: rest.ReferenceNumber,
		ProcessedAt:     rest.ProcessedAt,
		RefundedAmount:  rest.RefundedAmount,
		RefundReason:    rest.RefundReason,
		Reconciliation:  models.ReconciliationDataDB(rest.Reconciliation),
		Notes:           rest.Notes,
		CreatedAt:       rest.CreatedAt,
		UpdatedAt:       rest.UpdatedAt,
	}
}

// TransformToRest transforms payment resource database model into payment resource rest model
func (pt PaymentTransformer) TransformToRest(dbResource models.PaymentResourceDB) models.PaymentResourceRest {
	return models.PaymentResourceRest{
		ID:              dbResource.ID,
		UserID:          dbResource.UserID,
		AgreementID:     dbResource.AgreementID,
		Amount:          dbResource.Amount,
		FeeAmount:       dbResource.FeeAmount,
		NetAmount:       dbResource.NetAmount,
		Currency:        dbResource.Currency,
		Status:          dbResource.Status,
		PaymentMethodID: dbResource.PaymentMethodID,
		ReferenceNumber: dbResource.ReferenceNumber,
		ProcessedAt:     dbResource.ProcessedAt,
		RefundedAmount:  dbResource.RefundedAmount,
		RefundReason:    dbResource.RefundReason,
		Reconciliation:  models.ReconciliationDataRest(dbResource.Reconciliation),
		Notes:           dbResource.Notes,
		CreatedAt:       dbResource.CreatedAt,
		UpdatedAt:       dbResource.UpdatedAt,
	}
}
