package handlers

import (
	"fmt"
	"net/http"

	"github.com/companieshouse/chs.go/log"
	"github.com/gorilla/mux"

	"github.com/chioma/payments-api/utils"
)

// HandleGetReceipt assembles the receipt view for a payment
func HandleGetReceipt(w http.ResponseWriter, req *http.Request) {
	vars := mux.Vars(req)
	id := vars["payment_id"]
	if id == "" {
		log.ErrorR(req, fmt.Errorf("payment id not supplied"))
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	receipt, responseType, err := paymentService.GenerateReceipt(req, id)
	if err != nil {
		log.ErrorR(req, fmt.Errorf("error generating receipt: [%v]", err), log.Data{"service_response_type": responseType.String()})
		utils.WriteErrorWithStatus(w, req, err.Error(), statusForResponseType(responseType))
		return
	}

	utils.WriteJSONWithStatus(w, req, receipt, http.StatusOK)

	log.InfoR(req, "Successful GET request for receipt", log.Data{"payment_id": id})
}
