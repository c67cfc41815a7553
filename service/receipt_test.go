package service

import (
	"errors"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"

	"github.com/chioma/payments-api/dao"
	"github.com/chioma/payments-api/fixtures"

	. "github.com/smartystreets/goconvey/convey"
)

func TestUnitGenerateReceipt(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	mockDao := dao.NewMockDAO(mockCtrl)
	service := PaymentService{DAO: mockDao, Config: testConfig}

	req := httptest.NewRequest("GET", "/payments/pay-1/receipt", nil)

	Convey("Error getting payment from DB", t, func() {
		mockDao.EXPECT().GetPaymentResource("pay-1").Return(nil, errors.New("connection failed"))

		receipt, status, err := service.GenerateReceipt(req, "pay-1")

		So(receipt, ShouldBeNil)
		So(status, ShouldEqual, Error)
		So(err.Error(), ShouldEqual, "error getting payment resource from db: [connection failed]")
	})

	Convey("Payment not found", t, func() {
		mockDao.EXPECT().GetPaymentResource("pay-1").Return(nil, nil)

		receipt, status, err := service.GenerateReceipt(req, "pay-1")

		So(receipt, ShouldBeNil)
		So(status, ShouldEqual, NotFound)
		So(err.Error(), ShouldEqual, "payment not found. id: pay-1")
	})

	Convey("Error getting user from DB", t, func() {
		mockDao.EXPECT().GetPaymentResource("pay-1").Return(fixtures.GetPaymentResourceDB("pay-1", "user-1"), nil)
		mockDao.EXPECT().GetUserResource("user-1").Return(nil, errors.New("connection failed"))
		mockDao.EXPECT().GetPaymentMethodResource("method-1", "user-1").Return(fixtures.GetPaymentMethodResourceDB("method-1", "user-1"), nil)

		receipt, status, err := service.GenerateReceipt(req, "pay-1")

		So(receipt, ShouldBeNil)
		So(status, ShouldEqual, Error)
		So(err.Error(), ShouldEqual, "error getting receipt data from db: [connection failed]")
	})

	Convey("No user found for payment", t, func() {
		mockDao.EXPECT().GetPaymentResource("pay-1").Return(fixtures.GetPaymentResourceDB("pay-1", "user-1"), nil)
		mockDao.EXPECT().GetUserResource("user-1").Return(nil, nil)
		mockDao.EXPECT().GetPaymentMethodResource("method-1", "user-1").Return(fixtures.GetPaymentMethodResourceDB("method-1", "user-1"), nil)

		receipt, status, err := service.GenerateReceipt(req, "pay-1")

		So(receipt, ShouldBeNil)
		So(status, ShouldEqual, Error)
		So(err.Error(), ShouldEqual, "no user found for payment: pay-1")
	})

	Convey("Receipt for a payment with a stored method", t, func() {
		mockDao.EXPECT().GetPaymentResource("pay-1").Return(fixtures.GetPaymentResourceDB("pay-1", "user-1"), nil)
		mockDao.EXPECT().GetUserResource("user-1").Return(fixtures.GetUserResourceDB("user-1"), nil)
		mockDao.EXPECT().GetPaymentMethodResource("method-1", "user-1").Return(fixtures.GetPaymentMethodResourceDB("method-1", "user-1"), nil)

		receipt, status, err := service.GenerateReceipt(req, "pay-1")

		So(err, ShouldBeNil)
		So(status, ShouldEqual, Success)
		So(receipt.PaymentID, ShouldEqual, "pay-1")
		So(receipt.Amount, ShouldEqual, "1000.00")
		So(receipt.Currency, ShouldEqual, "NGN")
		So(receipt.Status, ShouldEqual, "completed")
		So(receipt.User.Email, ShouldEqual, "test@test.com")
		So(receipt.PaymentMethod, ShouldNotBeNil)
		So(receipt.PaymentMethod.Type, ShouldEqual, "CREDIT_CARD")
		So(receipt.PaymentMethod.LastFour, ShouldEqual, "4242")
	})

	Convey("Receipt for a payment with no attached method has a null payment method", t, func() {
		paymentDB := fixtures.GetPaymentResourceDB("pay-1", "user-1")
		paymentDB.PaymentMethodID = ""
		mockDao.EXPECT().GetPaymentResource("pay-1").Return(paymentDB, nil)
		mockDao.EXPECT().GetUserResource("user-1").Return(fixtures.GetUserResourceDB("user-1"), nil)

		receipt, status, err := service.GenerateReceipt(req, "pay-1")

		So(err, ShouldBeNil)
		So(status, ShouldEqual, Success)
		So(receipt.PaymentMethod, ShouldBeNil)
	})

	Convey("Stored method missing from DB leaves the payment method null", t, func() {
		mockDao.EXPECT().GetPaymentResource("pay-1").Return(fixtures.GetPaymentResourceDB("pay-1", "user-1"), nil)
		mockDao.EXPECT().GetUserResource("user-1").Return(fixtures.GetUserResourceDB("user-1"), nil)
		mockDao.EXPECT().GetPaymentMethodResource("method-1", "user-1").Return(nil, nil)

		receipt, status, err := service.GenerateReceipt(req, "pay-1")

		So(err, ShouldBeNil)
		So(status, ShouldEqual, Success)
		So(receipt.PaymentMethod, ShouldBeNil)
	})
}
