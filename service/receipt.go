package service

import (
	"fmt"
	"net/http"

	"golang.org/x/sync/errgroup"

	"github.com/chioma/payments-api/models"
)

// GenerateReceipt projects a payment, its owning user and its payment method
// into a receipt view. It never mutates state. A payment with no attached
// payment method produces a receipt with a null payment method.
func (service *PaymentService) GenerateReceipt(req *http.Request, paymentID string) (*models.ReceiptResourceRest, ResponseType, error) {
	paymentResource, err := service.DAO.GetPaymentResource(paymentID)
	if err != nil {
		return nil, Error, fmt.Errorf("error getting payment resource from db: [%v]", err)
	}
	if paymentResource == nil {
		return nil, NotFound, fmt.Errorf("payment not found. id: %s", paymentID)
	}

	// The user and payment method lookups are independent of each other
	var user *models.UserResourceDB
	var paymentMethod *models.PaymentMethodResourceDB

	var eg errgroup.Group
	eg.Go(func() error {
		var userErr error
		user, userErr = service.DAO.GetUserResource(paymentResource.UserID)
		return userErr
	})
	if paymentResource.PaymentMethodID != "" {
		eg.Go(func() error {
			var methodErr error
			paymentMethod, methodErr = service.DAO.GetPaymentMethodResource(paymentResource.PaymentMethodID, paymentResource.UserID)
			return methodErr
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, Error, fmt.Errorf("error getting receipt data from db: [%v]", err)
	}

	if user == nil {
		return nil, Error, fmt.Errorf("no user found for payment: %s", paymentID)
	}

	receipt := models.ReceiptResourceRest{
		PaymentID:   paymentResource.ID,
		Amount:      paymentResource.Amount,
		Currency:    paymentResource.Currency,
		Status:      paymentResource.Status,
		ProcessedAt: paymentResource.ProcessedAt,
		User: models.ReceiptUserRest{
			ID:    user.ID,
			Email: user.Email,
		},
	}

	if paymentMethod != nil {
		receipt.PaymentMethod = &models.ReceiptPaymentMethodRest{
			Type:     paymentMethod.PaymentType,
			LastFour: paymentMethod.LastFour,
		}
	}

	return &receipt, Success, nil
}
