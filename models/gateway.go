package models

// ChargeResult is the outcome of a gateway charge attempt. A declined charge
// is reported through Success and Error rather than a Go error.
type ChargeResult struct {
	Success  bool
	ChargeID string
	Error    string
}

// RefundResult is the outcome of a gateway refund attempt
type RefundResult struct {
	Success  bool
	RefundID string
	Error    string
}

// TokenizeResult is the outcome of a gateway tokenization attempt
type TokenizeResult struct {
	Success  bool
	MethodID string
	Error    string
}

// OutgoingGatewayChargeRequest is the request sent to the gateway to take a payment
type OutgoingGatewayChargeRequest struct {
	MethodID string `json:"method_id"`
	Amount   string `json:"amount"`
	Currency string `json:"currency"`
}

// IncomingGatewayChargeResponse is the response received from the gateway for a charge
type IncomingGatewayChargeResponse struct {
	ChargeID         string `json:"charge_id"`
	Status           string `json:"status"`
	ErrorDescription string `json:"error_description,omitempty"`
}

// OutgoingGatewayRefundRequest is the request sent to the gateway to refund a charge
type OutgoingGatewayRefundRequest struct {
	Amount string `json:"amount"`
}

// IncomingGatewayRefundResponse is the response received from the gateway for a refund
type IncomingGatewayRefundResponse struct {
	RefundID         string `json:"refund_id"`
	Status           string `json:"status"`
	ErrorDescription string `json:"error_description,omitempty"`
}

// OutgoingGatewayTokenizeRequest is the request sent to the gateway to tokenize an instrument
type OutgoingGatewayTokenizeRequest struct {
	UserID string `json:"user_id"`
}

// IncomingGatewayTokenizeResponse is the response received from the gateway for a tokenization
type IncomingGatewayTokenizeResponse struct {
	MethodID         string `json:"method_id"`
	Status           string `json:"status"`
	ErrorDescription string `json:"error_description,omitempty"`
}
