package service

import (
	"fmt"
	"net/http"
	"time"

	"github.com/chioma/payments-api/config"
	"github.com/chioma/payments-api/dao"
	"github.com/chioma/payments-api/models"
	"github.com/chioma/payments-api/transformers"
)

// PaymentMethodService tokenizes payment instruments through the gateway and
// stores the resulting method records
type PaymentMethodService struct {
	DAO     dao.DAO
	Gateway GatewayService
	Config  config.Config
}

// CreatePaymentMethod tokenizes an instrument for the calling user via the
// gateway and persists the stored method. The gateway token becomes the
// method id, so charges can be made against it directly.
func (service *PaymentMethodService) CreatePaymentMethod(req *http.Request, incoming models.IncomingPaymentMethodRequest, userID string) (*models.PaymentMethodResourceRest, ResponseType, error) {

	tokenizeResult, err := service.Gateway.TokenizeMethod(req.Context(), userID)
	if err != nil {
		return nil, Error, fmt.Errorf("error sending tokenize request to gateway: [%v]", err)
	}
	if !tokenizeResult.Success {
		return nil, PaymentFailed, fmt.Errorf("payment method tokenization failed: [%s]", tokenizeResult.Error)
	}

	now := time.Now().Truncate(time.Millisecond)

	methodResource := models.PaymentMethodResourceDB{
		ID:          tokenizeResult.MethodID,
		UserID:      userID,
		PaymentType: incoming.PaymentType,
		LastFour:    incoming.LastFour,
		ExpiryDate:  incoming.ExpiryDate,
		IsDefault:   incoming.IsDefault,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	err = service.DAO.CreatePaymentMethodResource(&methodResource)
	if err != nil {
		return nil, Error, fmt.Errorf("error writing to db: [%v]", err)
	}

	methodResourceRest := transformers.PaymentMethodTransformer{}.TransformToRest(methodResource)
	return &methodResourceRest, Success, nil
}
