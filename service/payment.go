package service

import (
	"fmt"
	"net/http"
	"regexp"
	"time"

	"github.com/companieshouse/chs.go/log"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/chioma/payments-api/config"
	"github.com/chioma/payments-api/dao"
	"github.com/chioma/payments-api/models"
	"github.com/chioma/payments-api/transformers"
)

// PaymentService contains the DAO for db access, the gateway used to move
// money, and the service configuration
type PaymentService struct {
	DAO     dao.DAO
	Gateway GatewayService
	Config  config.Config
}

// PaymentStatus Enum Type
type PaymentStatus int

// Enumeration containing all possible payment statuses
const (
	Pending PaymentStatus = 1 + iota
	Completed
	Failed
	Refunded
	PartialRefund
)

// String representation of payment statuses
var paymentStatuses = [...]string{
	"pending",
	"completed",
	"failed",
	"refunded",
	"partial_refund",
}

func (paymentStatus PaymentStatus) String() string {
	return paymentStatuses[paymentStatus-1]
}

// IsValidStatus reports whether s is one of the recognised payment statuses
func IsValidStatus(s string) bool {
	for _, status := range paymentStatuses {
		if s == status {
			return true
		}
	}
	return false
}

// Amounts are positive decimals with at most two fractional digits. The
// validation layer checks this too, but it is re-checked here before any
// money moves.
var amountRegex = regexp.MustCompile(`^\d+(\.\d{1,2})?$`)

func parseAmount(amount string) (decimal.Decimal, error) {
	if !amountRegex.MatchString(amount) {
		return decimal.Decimal{}, fmt.Errorf("amount [%s] format incorrect", amount)
	}
	d, err := decimal.NewFromString(amount)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("amount [%s] format incorrect", amount)
	}
	if !d.IsPositive() {
		return decimal.Decimal{}, fmt.Errorf("amount [%s] must be greater than zero", amount)
	}
	return d, nil
}

// calculateFee splits an amount into the fee retained and the net remainder.
// The fee is rounded half away from zero to 2 decimal places first, so fee
// and net always sum exactly to the amount.
func calculateFee(amount decimal.Decimal, feeRate decimal.Decimal) (fee, net decimal.Decimal) {
	fee = amount.Mul(feeRate).Round(2)
	net = amount.Sub(fee)
	return fee, net
}

// RecordPayment charges the caller's payment method through the gateway and
// persists the resulting ledger entry. Exactly one gateway charge is
// attempted per call; a declined charge is persisted as a failed record for
// audit and reported as PaymentFailed.
func (service *PaymentService) RecordPayment(req *http.Request, incoming models.IncomingPaymentResourceRequest, userID string) (*models.PaymentResourceRest, ResponseType, error) {

	amount, err := parseAmount(incoming.Amount)
	if err != nil {
		return nil, InvalidData, err
	}

	paymentMethod, err := service.DAO.GetPaymentMethodResource(incoming.PaymentMethodID, userID)
	if err != nil {
		return nil, Error, fmt.Errorf("error getting payment method from db: [%v]", err)
	}
	if paymentMethod == nil {
		return nil, NotFound, fmt.Errorf("payment method not found")
	}

	feeRate, err := decimal.NewFromString(service.Config.FeeRate)
	if err != nil {
		return nil, Error, fmt.Errorf("invalid fee rate in config: [%v]", err)
	}
	feeAmount, netAmount := calculateFee(amount, feeRate)

	// To match the format time is saved to mongo, e.g. "2018-11-22T08:39:16.782Z", truncate the time
	now := time.Now().Truncate(time.Millisecond)

	paymentResource := models.PaymentResourceDB{
		ID:              uuid.NewString(),
		UserID:          userID,
		AgreementID:     incoming.AgreementID,
		Amount:          amount.StringFixed(2),
		FeeAmount:       feeAmount.StringFixed(2),
		NetAmount:       netAmount.StringFixed(2),
		Currency:        service.Config.Currency,
		PaymentMethodID: paymentMethod.ID,
		RefundedAmount:  decimal.Zero.StringFixed(2),
		Notes:           incoming.Notes,
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	chargeResult, err := service.Gateway.Charge(req.Context(), paymentMethod.ID, amount.StringFixed(2), service.Config.Currency)
	if err != nil {
		return nil, Error, fmt.Errorf("error sending charge to gateway: [%v]", err)
	}

	if !chargeResult.Success {
		// Keep an audit record of the declined charge. The record is terminal
		// and never eligible for refund.
		paymentResource.Status = Failed.String()
		paymentResource.ReferenceNumber = incoming.ReferenceNumber
		paymentResource.Reconciliation = models.ReconciliationDataDB{GatewayError: chargeResult.Error}

		if dbErr := service.DAO.CreatePaymentResource(&paymentResource); dbErr != nil {
			log.ErrorR(req, fmt.Errorf("error writing failed payment audit record: [%v]", dbErr), log.Data{"payment_id": paymentResource.ID})
		}

		return nil, PaymentFailed, fmt.Errorf("payment processing failed: [%s]", chargeResult.Error)
	}

	paymentResource.Status = Completed.String()
	paymentResource.ProcessedAt = now
	paymentResource.ReferenceNumber = incoming.ReferenceNumber
	if paymentResource.ReferenceNumber == "" {
		paymentResource.ReferenceNumber = chargeResult.ChargeID
	}
	paymentResource.Reconciliation = models.ReconciliationDataDB{ChargeID: chargeResult.ChargeID}

	err = service.DAO.CreatePaymentResource(&paymentResource)
	if err != nil {
		// The gateway charge has already succeeded; losing the record here
		// leaves an un-reconciled external charge, so log the charge id.
		log.ErrorR(req, fmt.Errorf("error writing payment resource after successful charge: [%v]", err), log.Data{"charge_id": chargeResult.ChargeID})
		return nil, Error, fmt.Errorf("error writing to db: [%v]", err)
	}

	paymentResourceRest := transformers.PaymentTransformer{}.TransformToRest(paymentResource)
	return &paymentResourceRest, Success, nil
}

// GetPaymentByID retrieves a single payment resource
func (service *PaymentService) GetPaymentByID(id string) (*models.PaymentResourceRest, ResponseType, error) {
	paymentResource, err := service.DAO.GetPaymentResource(id)
	if err != nil {
		return nil, Error, fmt.Errorf("error getting payment resource from db: [%v]", err)
	}
	if paymentResource == nil {
		return nil, NotFound, fmt.Errorf("payment not found. id: %s", id)
	}

	paymentResourceRest := transformers.PaymentTransformer{}.TransformToRest(*paymentResource)
	return &paymentResourceRest, Success, nil
}

// ListPayments retrieves all payment resources matching the supplied filters,
// most recent first
func (service *PaymentService) ListPayments(filters models.PaymentFilters) ([]models.PaymentResourceRest, ResponseType, error) {
	if filters.Status != "" && !IsValidStatus(filters.Status) {
		return nil, InvalidData, fmt.Errorf("invalid status filter: %s", filters.Status)
	}

	paymentResources, err := service.DAO.GetPaymentResources(filters)
	if err != nil {
		return nil, Error, fmt.Errorf("error getting payment resources from db: [%v]", err)
	}

	paymentResourcesRest := make([]models.PaymentResourceRest, 0, len(paymentResources))
	for _, paymentResource := range paymentResources {
		paymentResourcesRest = append(paymentResourcesRest, transformers.PaymentTransformer{}.TransformToRest(paymentResource))
	}

	return paymentResourcesRest, Success, nil
}
