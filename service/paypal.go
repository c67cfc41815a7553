package service

import (
	"context"
	"fmt"

	"github.com/plutov/paypal/v4"

	"github.com/chioma/payments-api/config"
	"github.com/chioma/payments-api/models"
)

var payPalClient *paypal.Client

// GetPayPalClient returns an authenticated PayPal client for the configured environment
func GetPayPalClient(cfg config.Config) (*paypal.Client, error) {
	if payPalClient != nil {
		return payPalClient, nil
	}

	paypalAPIBase := getPayPalAPIBase(cfg.PaypalEnv)
	if paypalAPIBase == "" {
		return nil, fmt.Errorf("invalid paypal env in config: %s", cfg.PaypalEnv)
	}

	c, err := paypal.NewClient(cfg.PaypalClientID, cfg.PaypalSecret, paypalAPIBase)
	if err != nil {
		return nil, fmt.Errorf("error creating paypal client: [%v]", err)
	}
	_, err = c.GetAccessToken(context.Background())
	if err != nil {
		return nil, fmt.Errorf("error getting access token: [%v]", err)
	}

	payPalClient = c
	return payPalClient, nil
}

func getPayPalAPIBase(env string) string {
	switch env {
	case "live":
		return paypal.APIBaseLive
	case "test":
		return paypal.APIBaseSandBox
	default:
		return ""
	}
}

// PayPalSDK is an interface for all the PayPal client methods that will be used
// in this service
type PayPalSDK interface {
	GetAccessToken(ctx context.Context) (*paypal.TokenResponse, error)
	CaptureOrder(ctx context.Context, orderID string, captureOrderRequest paypal.CaptureOrderRequest) (*paypal.CaptureOrderResponse, error)
	RefundCapture(ctx context.Context, captureID string, refundCaptureRequest paypal.RefundCaptureRequest) (*paypal.RefundResponse, error)
}

// PayPalService implements GatewayService via PayPal. A method id presented
// for charging is an approved PayPal order id; charging captures the order.
type PayPalService struct {
	Client PayPalSDK
	Config config.Config
}

// Charge captures the approved PayPal order identified by methodID
func (pp *PayPalService) Charge(ctx context.Context, methodID, amount, currency string) (*models.ChargeResult, error) {
	resp, err := pp.Client.CaptureOrder(ctx, methodID, paypal.CaptureOrderRequest{})
	if err != nil {
		return nil, fmt.Errorf("error capturing order: [%v]", err)
	}

	if resp.Status != paypal.OrderStatusCompleted {
		return &models.ChargeResult{Success: false, Error: fmt.Sprintf("paypal order status is %s, not COMPLETED", resp.Status)}, nil
	}

	return &models.ChargeResult{Success: true, ChargeID: getCaptureID(resp)}, nil
}

// The reconciliation charge id for a PayPal payment is the capture id, which
// is what refunds are made against. Fall back to the order id if the capture
// block is absent.
func getCaptureID(resp *paypal.CaptureOrderResponse) string {
	for _, pu := range resp.PurchaseUnits {
		if pu.Payments == nil {
			continue
		}
		for _, capture := range pu.Payments.Captures {
			if capture.ID != "" {
				return capture.ID
			}
		}
	}
	return resp.ID
}

// Refund refunds part of a captured PayPal payment
func (pp *PayPalService) Refund(ctx context.Context, chargeID, amount string) (*models.RefundResult, error) {
	resp, err := pp.Client.RefundCapture(ctx, chargeID, paypal.RefundCaptureRequest{
		Amount: &paypal.Money{
			Currency: pp.Config.Currency,
			Value:    amount,
		},
	})
	if err != nil {
		return nil, fmt.Errorf("error refunding capture: [%v]", err)
	}

	if resp.Status != "COMPLETED" && resp.Status != "PENDING" {
		return &models.RefundResult{Success: false, Error: fmt.Sprintf("paypal refund status is %s", resp.Status)}, nil
	}

	return &models.RefundResult{Success: true, RefundID: resp.ID}, nil
}

// TokenizeMethod is not supported by the PayPal provider; instruments are
// approved order ids created client-side.
func (pp *PayPalService) TokenizeMethod(ctx context.Context, userID string) (*models.TokenizeResult, error) {
	return &models.TokenizeResult{Success: false, Error: "payment method tokenization is not supported by the paypal provider"}, nil
}
