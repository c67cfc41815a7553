package dao

import "github.com/chioma/payments-api/models"

//go:generate mockgen -source=dao.go -destination=mock_dao.go -package=dao

// DAO is an interface for accessing dao from a backend store
type DAO interface {
	CreatePaymentResource(paymentResource *models.PaymentResourceDB) error
	GetPaymentResource(id string) (*models.PaymentResourceDB, error)
	GetPaymentResourceForUser(id, userID string) (*models.PaymentResourceDB, error)
	GetPaymentResources(filters models.PaymentFilters) ([]models.PaymentResourceDB, error)
	CommitRefund(id, expectedRefundedAmount string, update *models.RefundUpdateDB) (bool, error)
	CreatePaymentMethodResource(methodResource *models.PaymentMethodResourceDB) error
	GetPaymentMethodResource(id, userID string) (*models.PaymentMethodResourceDB, error)
	GetUserResource(id string) (*models.UserResourceDB, error)
}
