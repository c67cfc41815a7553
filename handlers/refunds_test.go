package handlers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/gorilla/mux"

	"github.com/chioma/payments-api/dao"
	"github.com/chioma/payments-api/fixtures"
	"github.com/chioma/payments-api/service"

	. "github.com/smartystreets/goconvey/convey"
)

func TestUnitHandleProcessRefund(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	Convey("No user details in context", t, func() {
		req := httptest.NewRequest("POST", "/payments/pay-1/refunds", nil)
		w := httptest.NewRecorder()
		HandleProcessRefund(w, req)
		So(w.Code, ShouldEqual, http.StatusInternalServerError)
	})

	Convey("Request body empty", t, func() {
		req, _ := http.NewRequest("POST", "/payments/pay-1/refunds", nil)
		req = withAuthorisedUser(req, "user-1")
		req = mux.SetURLVars(req, map[string]string{"payment_id": "pay-1"})
		w := httptest.NewRecorder()
		HandleProcessRefund(w, req)
		So(w.Code, ShouldEqual, http.StatusBadRequest)
	})

	Convey("Request body fails validation", t, func() {
		req := httptest.NewRequest("POST", "/payments/pay-1/refunds", strings.NewReader(`{"reason":"duplicate charge"}`))
		req = withAuthorisedUser(req, "user-1")
		req = mux.SetURLVars(req, map[string]string{"payment_id": "pay-1"})
		w := httptest.NewRecorder()
		HandleProcessRefund(w, req)
		So(w.Code, ShouldEqual, http.StatusBadRequest)
	})

	Convey("Refund on a pending payment maps to bad request", t, func() {
		mockDao := dao.NewMockDAO(mockCtrl)
		mockGateway := service.NewMockGatewayService(mockCtrl)
		refundService = &service.RefundService{DAO: mockDao, Gateway: mockGateway, Config: testHandlerConfig}

		paymentDB := fixtures.GetPaymentResourceDB("pay-1", "user-1")
		paymentDB.Status = "pending"
		mockDao.EXPECT().GetPaymentResourceForUser("pay-1", "user-1").Return(paymentDB, nil)

		req := httptest.NewRequest("POST", "/payments/pay-1/refunds", strings.NewReader(`{"amount":"300.00"}`))
		req = withAuthorisedUser(req, "user-1")
		req = mux.SetURLVars(req, map[string]string{"payment_id": "pay-1"})
		w := httptest.NewRecorder()
		HandleProcessRefund(w, req)
		So(w.Code, ShouldEqual, http.StatusBadRequest)
	})

	Convey("Lost refund commit maps to conflict", t, func() {
		mockDao := dao.NewMockDAO(mockCtrl)
		mockGateway := service.NewMockGatewayService(mockCtrl)
		refundService = &service.RefundService{DAO: mockDao, Gateway: mockGateway, Config: testHandlerConfig}

		mockDao.EXPECT().GetPaymentResourceForUser("pay-1", "user-1").Return(fixtures.GetPaymentResourceDB("pay-1", "user-1"), nil)
		mockGateway.EXPECT().Refund(gomock.Any(), "charge_1705314600", "300.00").Return(fixtures.GetRefundResult("refund-1"), nil)
		mockDao.EXPECT().CommitRefund("pay-1", "0.00", gomock.Any()).Return(false, nil)

		req := httptest.NewRequest("POST", "/payments/pay-1/refunds", strings.NewReader(`{"amount":"300.00"}`))
		req = withAuthorisedUser(req, "user-1")
		req = mux.SetURLVars(req, map[string]string{"payment_id": "pay-1"})
		w := httptest.NewRecorder()
		HandleProcessRefund(w, req)
		So(w.Code, ShouldEqual, http.StatusConflict)
	})

	Convey("Successful refund returns the updated payment", t, func() {
		mockDao := dao.NewMockDAO(mockCtrl)
		mockGateway := service.NewMockGatewayService(mockCtrl)
		refundService = &service.RefundService{DAO: mockDao, Gateway: mockGateway, Config: testHandlerConfig}

		mockDao.EXPECT().GetPaymentResourceForUser("pay-1", "user-1").Return(fixtures.GetPaymentResourceDB("pay-1", "user-1"), nil)
		mockGateway.EXPECT().Refund(gomock.Any(), "charge_1705314600", "300.00").Return(fixtures.GetRefundResult("refund-1"), nil)
		mockDao.EXPECT().CommitRefund("pay-1", "0.00", gomock.Any()).Return(true, nil)

		req := httptest.NewRequest("POST", "/payments/pay-1/refunds", strings.NewReader(`{"amount":"300.00","reason":"duplicate charge"}`))
		req = withAuthorisedUser(req, "user-1")
		req = mux.SetURLVars(req, map[string]string{"payment_id": "pay-1"})
		w := httptest.NewRecorder()
		HandleProcessRefund(w, req)
		So(w.Code, ShouldEqual, http.StatusCreated)
		So(w.Body.String(), ShouldContainSubstring, `"refunded_amount":"300.00"`)
		So(w.Body.String(), ShouldContainSubstring, `"status":"partial_refund"`)
	})
}
