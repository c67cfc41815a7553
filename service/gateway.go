package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/chioma/payments-api/config"
	"github.com/chioma/payments-api/models"
)

//go:generate mockgen -source=gateway.go -destination=mock_gateway.go -package=service

// GatewayService is an interface for all the requests to the external payment
// processor. A business decline (insufficient funds, bad token) is reported
// through the result value; a Go error means the outcome is unknown and the
// attempt may need manual reconciliation.
type GatewayService interface {
	Charge(ctx context.Context, methodID, amount, currency string) (*models.ChargeResult, error)
	Refund(ctx context.Context, chargeID, amount string) (*models.RefundResult, error)
	TokenizeMethod(ctx context.Context, userID string) (*models.TokenizeResult, error)
}

// GatewayClientService implements GatewayService against a bearer-token JSON
// gateway API
type GatewayClientService struct {
	Config config.Config
}

// Charge requests the gateway to take a payment from the given tokenized method
func (g *GatewayClientService) Charge(ctx context.Context, methodID, amount, currency string) (*models.ChargeResult, error) {
	gatewayRequest := models.OutgoingGatewayChargeRequest{
		MethodID: methodID,
		Amount:   amount,
		Currency: currency,
	}

	var gatewayResponse models.IncomingGatewayChargeResponse
	statusCode, err := g.postJSON(ctx, g.Config.GatewayURL+"/charges", gatewayRequest, &gatewayResponse)
	if err != nil {
		return nil, fmt.Errorf("error sending request to gateway to charge payment method: [%v]", err)
	}

	switch statusCode {
	case http.StatusCreated:
		return &models.ChargeResult{Success: true, ChargeID: gatewayResponse.ChargeID}, nil
	case http.StatusPaymentRequired, http.StatusUnprocessableEntity:
		return &models.ChargeResult{Success: false, Error: gatewayResponse.ErrorDescription}, nil
	default:
		return nil, fmt.Errorf("error status [%v] back from gateway: [%s]", statusCode, gatewayResponse.ErrorDescription)
	}
}

// Refund requests the gateway to refund part or all of an earlier charge
func (g *GatewayClientService) Refund(ctx context.Context, chargeID, amount string) (*models.RefundResult, error) {
	gatewayRequest := models.OutgoingGatewayRefundRequest{
		Amount: amount,
	}

	var gatewayResponse models.IncomingGatewayRefundResponse
	statusCode, err := g.postJSON(ctx, g.Config.GatewayURL+"/charges/"+chargeID+"/refunds", gatewayRequest, &gatewayResponse)
	if err != nil {
		return nil, fmt.Errorf("error sending request to gateway to refund charge: [%v]", err)
	}

	switch statusCode {
	case http.StatusCreated:
		return &models.RefundResult{Success: true, RefundID: gatewayResponse.RefundID}, nil
	case http.StatusPaymentRequired, http.StatusUnprocessableEntity:
		return &models.RefundResult{Success: false, Error: gatewayResponse.ErrorDescription}, nil
	default:
		return nil, fmt.Errorf("error status [%v] back from gateway: [%s]", statusCode, gatewayResponse.ErrorDescription)
	}
}

// TokenizeMethod requests the gateway to tokenize a payment instrument for the given user
func (g *GatewayClientService) TokenizeMethod(ctx context.Context, userID string) (*models.TokenizeResult, error) {
	gatewayRequest := models.OutgoingGatewayTokenizeRequest{
		UserID: userID,
	}

	var gatewayResponse models.IncomingGatewayTokenizeResponse
	statusCode, err := g.postJSON(ctx, g.Config.GatewayURL+"/payment-methods", gatewayRequest, &gatewayResponse)
	if err != nil {
		return nil, fmt.Errorf("error sending request to gateway to tokenize payment method: [%v]", err)
	}

	switch statusCode {
	case http.StatusCreated:
		return &models.TokenizeResult{Success: true, MethodID: gatewayResponse.MethodID}, nil
	case http.StatusUnprocessableEntity:
		return &models.TokenizeResult{Success: false, Error: gatewayResponse.ErrorDescription}, nil
	default:
		return nil, fmt.Errorf("error status [%v] back from gateway: [%s]", statusCode, gatewayResponse.ErrorDescription)
	}
}

func (g *GatewayClientService) postJSON(ctx context.Context, url string, gatewayRequest interface{}, gatewayResponse interface{}) (int, error) {
	requestBody, err := json.Marshal(gatewayRequest)
	if err != nil {
		return 0, fmt.Errorf("error marshalling gateway request: [%s]", err)
	}

	request, err := http.NewRequestWithContext(ctx, "POST", url, bytes.NewBuffer(requestBody))
	if err != nil {
		return 0, fmt.Errorf("error generating request for gateway: [%s]", err)
	}

	request.Header.Add("accept", "application/json")
	request.Header.Add("authorization", "Bearer "+g.Config.GatewayBearerToken)
	request.Header.Add("content-type", "application/json")

	resp, err := http.DefaultClient.Do(request)
	if err != nil {
		return 0, fmt.Errorf("error sending request to gateway: [%s]", err)
	}

	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return 0, fmt.Errorf("error reading response from gateway: [%s]", err)
	}

	if len(body) > 0 {
		err = json.Unmarshal(body, gatewayResponse)
		if err != nil {
			return 0, fmt.Errorf("error reading response from gateway: [%s]", err)
		}
	}

	return resp.StatusCode, nil
}
