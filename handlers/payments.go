package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/companieshouse/chs.go/log"
	"github.com/go-playground/validator/v10"
	"github.com/gorilla/mux"

	"github.com/chioma/payments-api/models"
	"github.com/chioma/payments-api/service"
	"github.com/chioma/payments-api/utils"
)

// HandleRecordPayment charges the caller's payment method and persists the
// resulting ledger entry
func HandleRecordPayment(w http.ResponseWriter, req *http.Request) {
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
	var incomingPaymentResourceRequest models.IncomingPaymentResourceRequest
	err := requestDecoder.Decode(&incomingPaymentResourceRequest)
	if err != nil {
		log.ErrorR(req, fmt.Errorf("request body invalid: [%v]", err))
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	// Ideally all validation would be done in the service layer but the
	// malformed-body case maps to a different status code so is handled here
	if err = validator.New().Struct(incomingPaymentResourceRequest); err != nil {
		log.ErrorR(req, fmt.Errorf("invalid POST request to record payment: [%v]", err))
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	// once we've read and decoded request body call the payment service handle internal business logic
	paymentResource, responseType, err := paymentService.RecordPayment(req, incomingPaymentResourceRequest, userDetails.ID)
	if err != nil {
		log.ErrorR(req, fmt.Errorf("error recording payment: [%v]", err), log.Data{"service_response_type": responseType.String()})
		utils.WriteErrorWithStatus(w, req, err.Error(), statusForResponseType(responseType))
		return
	}

	utils.WriteJSONWithStatus(w, req, paymentResource, http.StatusCreated)

	log.InfoR(req, "Successful POST request for new payment resource", log.Data{"payment_id": paymentResource.ID, "status": http.StatusCreated})
}

// HandleGetPayment retrieves a single payment resource
func HandleGetPayment(w http.ResponseWriter, req *http.Request) {
	vars := mux.Vars(req)
	id := vars["payment_id"]
	if id == "" {
		log.ErrorR(req, fmt.Errorf("payment id not supplied"))
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	paymentResource, responseType, err := paymentService.GetPaymentByID(id)
	if err != nil {
		log.ErrorR(req, fmt.Errorf("error getting payment: [%v]", err), log.Data{"service_response_type": responseType.String()})
		utils.WriteErrorWithStatus(w, req, err.Error(), statusForResponseType(responseType))
		return
	}

	utils.WriteJSONWithStatus(w, req, paymentResource, http.StatusOK)

	log.InfoR(req, "Successful GET request for payment resource", log.Data{"payment_id": id})
}

// HandleListPayments retrieves all payment resources matching the query
// filters, most recent first
func HandleListPayments(w http.ResponseWriter, req *http.Request) {
	filters, err := filtersFromRequest(req)
	if err != nil {
		log.ErrorR(req, fmt.Errorf("invalid payment filters: [%v]", err))
		utils.WriteErrorWithStatus(w, req, err.Error(), http.StatusBadRequest)
		return
	}

	writePaymentList(w, req, filters)
}

// HandleListAgreementPayments retrieves all payment resources recorded
// against an agreement, most recent first
func HandleListAgreementPayments(w http.ResponseWriter, req *http.Request) {
	vars := mux.Vars(req)
	agreementID := vars["agreement_id"]
	if agreementID == "" {
		log.ErrorR(req, fmt.Errorf("agreement id not supplied"))
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	writePaymentList(w, req, models.PaymentFilters{AgreementID: agreementID})
}

func writePaymentList(w http.ResponseWriter, req *http.Request, filters models.PaymentFilters) {
	paymentResources, responseType, err := paymentService.ListPayments(filters)
	if err != nil {
		log.ErrorR(req, fmt.Errorf("error listing payments: [%v]", err), log.Data{"service_response_type": responseType.String()})
		utils.WriteErrorWithStatus(w, req, err.Error(), statusForResponseType(responseType))
		return
	}

	utils.WriteJSONWithStatus(w, req, paymentResources, http.StatusOK)

	log.InfoR(req, "Successful GET request for payment resources", log.Data{"payments": len(paymentResources)})
}

// filtersFromRequest builds payment list filters from the request query
// string. Dates are supplied as YYYY-MM-DD; the end date is extended to the
// end of that day so the range is inclusive.
func filtersFromRequest(req *http.Request) (models.PaymentFilters, error) {
	query := req.URL.Query()

	filters := models.PaymentFilters{
		UserID:          query.Get("user_id"),
		AgreementID:     query.Get("agreement_id"),
		Status:          query.Get("status"),
		PaymentMethodID: query.Get("payment_method_id"),
	}

	if startDate := query.Get("start_date"); startDate != "" {
		parsed, err := time.Parse("2006-01-02", startDate)
		if err != nil {
			return filters, fmt.Errorf("start_date [%s] format incorrect", startDate)
		}
		filters.StartDate = parsed
	}

	if endDate := query.Get("end_date"); endDate != "" {
		parsed, err := time.Parse("2006-01-02", endDate)
		if err != nil {
			return filters, fmt.Errorf("end_date [%s] format incorrect", endDate)
		}
		filters.EndDate = parsed.Add(24*time.Hour - time.Millisecond)
	}

	return filters, nil
}

func statusForResponseType(responseType service.ResponseType) int {
	switch responseType {
	case service.InvalidData, service.InvalidState:
		return http.StatusBadRequest
	case service.NotFound:
		return http.StatusNotFound
	case service.Forbidden:
		return http.StatusForbidden
	case service.Conflict:
		return http.StatusConflict
	case service.PaymentFailed:
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}
