package service

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/companieshouse/chs.go/log"
	"github.com/shopspring/decimal"

	"github.com/chioma/payments-api/config"
	"github.com/chioma/payments-api/dao"
	"github.com/chioma/payments-api/models"
	"github.com/chioma/payments-api/transformers"
)

// RefundService contains the DAO and gateway used to process refunds
type RefundService struct {
	Gateway GatewayService
	DAO     dao.DAO
	Config  config.Config
}

// ProcessRefund refunds part or all of a completed payment through the
// gateway and commits the new refunded amount and status. The commit is
// conditional on the refunded amount read at the start of the call, so two
// concurrent refunds against the same payment can never together exceed the
// original charge; the loser fails with Conflict and persists nothing.
func (service *RefundService) ProcessRefund(req *http.Request, paymentID string, createRefundResource models.CreateRefundRequest, userID string) (*models.PaymentResourceRest, ResponseType, error) {

	refundAmount, err := parseAmount(createRefundResource.Amount)
	if err != nil {
		return nil, InvalidData, err
	}

	paymentResource, err := service.DAO.GetPaymentResourceForUser(paymentID, userID)
	if err != nil {
		return nil, Error, fmt.Errorf("error getting payment resource from db: [%v]", err)
	}
	if paymentResource == nil {
		return nil, NotFound, fmt.Errorf("payment not found. id: %s", paymentID)
	}

	if paymentResource.Status != Completed.String() && paymentResource.Status != PartialRefund.String() {
		return nil, InvalidState, errors.New("only completed payments can be refunded")
	}

	amount, err := decimal.NewFromString(paymentResource.Amount)
	if err != nil {
		return nil, Error, fmt.Errorf("error reading amount on payment resource: [%v]", err)
	}
	refundedAmount, err := decimal.NewFromString(paymentResource.RefundedAmount)
	if err != nil {
		return nil, Error, fmt.Errorf("error reading refunded amount on payment resource: [%v]", err)
	}

	if refundAmount.GreaterThan(amount.Sub(refundedAmount)) {
		return nil, InvalidData, errors.New("refund amount exceeds available amount")
	}

	chargeID := paymentResource.Reconciliation.ChargeID
	if chargeID == "" {
		return nil, InvalidState, errors.New("no charge ID found for refund")
	}

	refundResult, err := service.Gateway.Refund(req.Context(), chargeID, refundAmount.StringFixed(2))
	if err != nil {
		return nil, Error, fmt.Errorf("error sending refund to gateway: [%v]", err)
	}
	if !refundResult.Success {
		return nil, PaymentFailed, fmt.Errorf("refund processing failed: [%s]", refundResult.Error)
	}

	newRefundedAmount := refundedAmount.Add(refundAmount)
	newStatus := PartialRefund
	if newRefundedAmount.GreaterThanOrEqual(amount) {
		newStatus = Refunded
	}

	refundUpdate := models.RefundUpdateDB{
		RefundedAmount: newRefundedAmount.StringFixed(2),
		Status:         newStatus.String(),
		RefundReason:   createRefundResource.Reason,
		RefundID:       refundResult.RefundID,
		UpdatedAt:      time.Now().Truncate(time.Millisecond),
	}

	committed, err := service.DAO.CommitRefund(paymentID, paymentResource.RefundedAmount, &refundUpdate)
	if err != nil {
		// The gateway refund has already been made; log its id so the record
		// can be reconciled out of band.
		log.ErrorR(req, fmt.Errorf("error committing refund after successful gateway refund: [%v]", err), log.Data{"payment_id": paymentID, "refund_id": refundResult.RefundID})
		return nil, Error, fmt.Errorf("error writing to db: [%v]", err)
	}
	if !committed {
		log.ErrorR(req, errors.New("refund commit lost to a concurrent update"), log.Data{"payment_id": paymentID, "refund_id": refundResult.RefundID})
		return nil, Conflict, fmt.Errorf("payment was updated concurrently, refund [%s] requires manual reconciliation", refundResult.RefundID)
	}

	paymentResource.RefundedAmount = refundUpdate.RefundedAmount
	paymentResource.Status = refundUpdate.Status
	paymentResource.RefundReason = refundUpdate.RefundReason
	paymentResource.UpdatedAt = refundUpdate.UpdatedAt
	paymentResource.Reconciliation.RefundIDs = append(paymentResource.Reconciliation.RefundIDs, refundResult.RefundID)

	paymentResourceRest := transformers.PaymentTransformer{}.TransformToRest(*paymentResource)
	return &paymentResourceRest, Success, nil
}
