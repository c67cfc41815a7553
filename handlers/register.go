package handlers

import (
	"net/http"
	"os"

	"github.com/companieshouse/chs.go/log"
	"github.com/gorilla/mux"

	"github.com/chioma/payments-api/config"
	"github.com/chioma/payments-api/dao"
	"github.com/chioma/payments-api/helpers"
	"github.com/chioma/payments-api/interceptors"
	"github.com/chioma/payments-api/models"
	"github.com/chioma/payments-api/service"
)

var paymentService *service.PaymentService
var refundService *service.RefundService
var paymentMethodService *service.PaymentMethodService

// Register defines the route mappings for the main router and its subrouters
func Register(mainRouter *mux.Router, cfg config.Config) {
	m := dao.NewMongoService(&cfg)

	if err := m.EnsureIndexes(); err != nil {
		// Queries still work without the indexes, just slower
		log.Error(err)
	}

	gateway := newGatewayService(cfg)

	paymentService = &service.PaymentService{
		DAO:     m,
		Gateway: gateway,
		Config:  cfg,
	}

	refundService = &service.RefundService{
		Gateway: gateway,
		DAO:     m,
		Config:  cfg,
	}

	paymentMethodService = &service.PaymentMethodService{
		DAO:     m,
		Gateway: gateway,
		Config:  cfg,
	}

	mainRouter.HandleFunc("/healthcheck", healthCheck).Methods("GET").Name("get-healthcheck")

	// All payment endpoints need the authenticated caller, so they share a
	// subrouter carrying the user auth interceptor.
	paymentsRouter := mainRouter.PathPrefix("/payments").Subrouter()
	paymentsRouter.HandleFunc("", HandleRecordPayment).Methods("POST").Name("record-payment")
	paymentsRouter.HandleFunc("", HandleListPayments).Methods("GET").Name("list-payments")
	paymentsRouter.HandleFunc("/{payment_id}", HandleGetPayment).Methods("GET").Name("get-payment")
	paymentsRouter.HandleFunc("/{payment_id}/refunds", HandleProcessRefund).Methods("POST").Name("process-refund")
	paymentsRouter.HandleFunc("/{payment_id}/receipt", HandleGetReceipt).Methods("GET").Name("get-receipt")

	agreementsRouter := mainRouter.PathPrefix("/agreements").Subrouter()
	agreementsRouter.HandleFunc("/{agreement_id}/payments", HandleListAgreementPayments).Methods("GET").Name("list-agreement-payments")

	paymentMethodsRouter := mainRouter.PathPrefix("/payment-methods").Subrouter()
	paymentMethodsRouter.HandleFunc("", HandleCreatePaymentMethod).Methods("POST").Name("create-payment-method")

	// Set middleware for subrouters
	paymentsRouter.Use(log.Handler, interceptors.UserAuthenticationInterceptor)
	agreementsRouter.Use(log.Handler, interceptors.UserAuthenticationInterceptor)
	paymentMethodsRouter.Use(log.Handler, interceptors.UserAuthenticationInterceptor)
}

func newGatewayService(cfg config.Config) service.GatewayService {
	if cfg.PaymentProvider == "paypal" {
		client, err := service.GetPayPalClient(cfg)
		if err != nil {
			log.Error(err)
			os.Exit(1)
		}
		return &service.PayPalService{Client: client, Config: cfg}
	}
	return &service.GatewayClientService{Config: cfg}
}

// authorisedUser returns the caller's details placed into the request context
// by the UserAuthenticationInterceptor
func authorisedUser(req *http.Request) (models.AuthUserDetails, bool) {
	userDetails, ok := req.Context().Value(helpers.ContextKeyUserDetails).(models.AuthUserDetails)
	return userDetails, ok
}

func healthCheck(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
}
