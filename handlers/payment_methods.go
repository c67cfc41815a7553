package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/companieshouse/chs.go/log"
	"github.com/go-playground/validator/v10"

	"github.com/chioma/payments-api/models"
	"github.com/chioma/payments-api/utils"
)

// HandleCreatePaymentMethod tokenizes a payment instrument for the caller and
// stores the resulting method
func HandleCreatePaymentMethod(w http.ResponseWriter, req *http.Request) {
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

	requestDecoder := json.NewDecoder(req.Body)
	var incomingPaymentMethodRequest models.IncomingPaymentMethodRequest
	err := requestDecoder.Decode(&incomingPaymentMethodRequest)
	if err != nil {
		log.ErrorR(req, fmt.Errorf("request body invalid: [%v]", err))
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	if err = validator.New().Struct(incomingPaymentMethodRequest); err != nil {
		log.ErrorR(req, fmt.Errorf("invalid POST request to create payment method: [%v]", err))
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	methodResource, responseType, err := paymentMethodService.CreatePaymentMethod(req, incomingPaymentMethodRequest, userDetails.ID)
	if err != nil {
		log.ErrorR(req, fmt.Errorf("error creating payment method: [%v]", err), log.Data{"service_response_type": responseType.String()})
		utils.WriteErrorWithStatus(w, req, err.Error(), statusForResponseType(responseType))
		return
	}

	utils.WriteJSONWithStatus(w, req, methodResource, http.StatusCreated)

	log.InfoR(req, "Successful POST request for new payment method", log.Data{"payment_method_id": methodResource.ID, "status": http.StatusCreated})
}
