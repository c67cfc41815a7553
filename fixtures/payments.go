package fixtures

import (
	"time"

	"github.com/chioma/payments-api/models"
)

// GetPaymentResourceDB returns a completed payment owned by the given user,
// charged for 1000.00 with the default 2% fee applied
func GetPaymentResourceDB(id, userID string) *models.PaymentResourceDB {
	createdAt := time.Date(2024, 1, 15, 10, 30, 0, 0, time.UTC)
	return &models.PaymentResourceDB{
		ID:              id,
		UserID:          userID,
		AgreementID:     "agreement-1",
		Amount:          "1000.00",
		FeeAmount:       "20.00",
		NetAmount:       "980.00",
		Currency:        "NGN",
		Status:          "completed",
		PaymentMethodID: "method-1",
		ReferenceNumber: "charge_1705314600",
		ProcessedAt:     createdAt,
		RefundedAmount:  "0.00",
		Reconciliation: models.ReconciliationDataDB{
			ChargeID: "charge_1705314600",
		},
		CreatedAt: createdAt,
		UpdatedAt: createdAt,
	}
}

// GetPartiallyRefundedPaymentResourceDB returns the fixture payment after a
// 300.00 refund has been committed against it
func GetPartiallyRefundedPaymentResourceDB(id, userID string) *models.PaymentResourceDB {
	paymentResource := GetPaymentResourceDB(id, userID)
	paymentResource.Status = "partial_refund"
	paymentResource.RefundedAmount = "300.00"
	paymentResource.Reconciliation.RefundIDs = []string{"refund_1705318200"}
	return paymentResource
}

// GetPaymentMethodResourceDB returns a stored card owned by the given user
func GetPaymentMethodResourceDB(id, userID string) *models.PaymentMethodResourceDB {
	createdAt := time.Date(2024, 1, 10, 9, 0, 0, 0, time.UTC)
	return &models.PaymentMethodResourceDB{
		ID:          id,
		UserID:      userID,
		PaymentType: "CREDIT_CARD",
		LastFour:    "4242",
		ExpiryDate:  "2027-01",
		IsDefault:   true,
		CreatedAt:   createdAt,
		UpdatedAt:   createdAt,
	}
}

// GetUserResourceDB returns the owning user for the fixture payments
func GetUserResourceDB(id string) *models.UserResourceDB {
	return &models.UserResourceDB{
		ID:       id,
		Email:    "test@test.com",
		Forename: "test",
		Surname:  "user",
	}
}

// GetPaymentRequest returns a record-payment request body for the given amount
func GetPaymentRequest(amount, methodID string) models.IncomingPaymentResourceRequest {
	return models.IncomingPaymentResourceRequest{
		PaymentMethodID: methodID,
		Amount:          amount,
		AgreementID:     "agreement-1",
	}
}

// GetPaymentMethodRequest returns a tokenize-payment-method request body
func GetPaymentMethodRequest() models.IncomingPaymentMethodRequest {
	return models.IncomingPaymentMethodRequest{
		PaymentType: "CREDIT_CARD",
		LastFour:    "4242",
		ExpiryDate:  "2027-01",
		IsDefault:   true,
	}
}

// GetRefundRequest returns a refund request body for the given amount
func GetRefundRequest(amount string) models.CreateRefundRequest {
	return models.CreateRefundRequest{Amount: amount, Reason: "duplicate charge"}
}

// GetChargeResult returns a successful gateway charge outcome
func GetChargeResult(chargeID string) *models.ChargeResult {
	return &models.ChargeResult{Success: true, ChargeID: chargeID}
}

// GetRefundResult returns a successful gateway refund outcome
func GetRefundResult(refundID string) *models.RefundResult {
	return &models.RefundResult{Success: true, RefundID: refundID}
}
