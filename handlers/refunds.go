package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/companieshouse/chs.go/log"
	"github.com/go-playground/validator/v10"
	"github.com/gorilla/mux"

	"github.com/chioma/payments-api/models"
	"github.com/chioma/payments-api/utils"
)

// HandleProcessRefund refunds part or all of a completed payment
func HandleProcessRefund(w http.ResponseWriter, req *http.Request) {
	userDetails, ok := authorisedUser(req)
	if !ok {
		log.ErrorR(req, fmt.Errorf("invalid AuthUserDetails in request context"))
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	if req.Body == nil {
		log.ErrorR(req, fmt.Errorf("request body empty"))
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	id := mux.Vars(req)["payment_id"]
	if id == "" {
		log.ErrorR(req, fmt.Errorf("payment id not supplied"))
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	requestDecoder := json.NewDecoder(req.Body)
	var createRefundRequest models.CreateRefundRequest
	err := requestDecoder.Decode(&createRefundRequest)
	if err != nil {
		log.ErrorR(req, fmt.Errorf("request body invalid: [%v]", err))
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	if err = validator.New().Struct(createRefundRequest); err != nil {
		log.ErrorR(req, fmt.Errorf("invalid POST request to process refund: [%v]", err))
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	// once we've read and decoded request body call the refund service handle internal business logic
	paymentResource, responseType, err := refundService.ProcessRefund(req, id, createRefundRequest, userDetails.ID)
	if err != nil {
		log.ErrorR(req, fmt.Errorf("error processing refund: [%v]", err), log.Data{"service_response_type": responseType.String()})
		utils.WriteErrorWithStatus(w, req, err.Error(), statusForResponseType(responseType))
		return
	}

	utils.WriteJSONWithStatus(w, req, paymentResource, http.StatusCreated)

	log.InfoR(req, "Successful POST request for refund", log.Data{"payment_id": id, "refunded_amount": paymentResource.RefundedAmount, "status": http.StatusCreated})
}
