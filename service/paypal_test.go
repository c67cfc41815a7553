package service

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/plutov/paypal/v4"

	. "github.com/smartystreets/goconvey/convey"
)

func TestUnitPayPalCharge(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	mockPayPalSDK := NewMockPayPalSDK(mockCtrl)
	service := PayPalService{Client: mockPayPalSDK, Config: testConfig}

	Convey("Error capturing order", t, func() {
		mockPayPalSDK.EXPECT().CaptureOrder(gomock.Any(), "order-1", gomock.Any()).Return(nil, errors.New("error"))

		chargeResult, err := service.Charge(context.Background(), "order-1", "1000.00", "NGN")

		So(chargeResult, ShouldBeNil)
		So(err.Error(), ShouldEqual, "error capturing order: [error]")
	})

	Convey("Order capture not completed", t, func() {
		resp := paypal.CaptureOrderResponse{
			ID:     "order-1",
			Status: paypal.OrderStatusVoided,
		}
		mockPayPalSDK.EXPECT().CaptureOrder(gomock.Any(), "order-1", gomock.Any()).Return(&resp, nil)

		chargeResult, err := service.Charge(context.Background(), "order-1", "1000.00", "NGN")

		So(err, ShouldBeNil)
		So(chargeResult.Success, ShouldBeFalse)
		So(chargeResult.Error, ShouldContainSubstring, "paypal order status is VOIDED")
	})

	Convey("Completed capture returns the capture id", t, func() {
		resp := paypal.CaptureOrderResponse{
			ID:     "order-1",
			Status: paypal.OrderStatusCompleted,
			PurchaseUnits: []paypal.CapturedPurchaseUnit{
				{
					Payments: &paypal.CapturedPayments{
						Captures: []paypal.CaptureAmount{
							{ID: "capture-1"},
						},
					},
				},
			},
		}
		mockPayPalSDK.EXPECT().CaptureOrder(gomock.Any(), "order-1", gomock.Any()).Return(&resp, nil)

		chargeResult, err := service.Charge(context.Background(), "order-1", "1000.00", "NGN")

		So(err, ShouldBeNil)
		So(chargeResult.Success, ShouldBeTrue)
		So(chargeResult.ChargeID, ShouldEqual, "capture-1")
	})

	Convey("Completed capture with no capture block falls back to the order id", t, func() {
		resp := paypal.CaptureOrderResponse{
			ID:     "order-1",
			Status: paypal.OrderStatusCompleted,
		}
		mockPayPalSDK.EXPECT().CaptureOrder(gomock.Any(), "order-1", gomock.Any()).Return(&resp, nil)

		chargeResult, err := service.Charge(context.Background(), "order-1", "1000.00", "NGN")

		So(err, ShouldBeNil)
		So(chargeResult.Success, ShouldBeTrue)
		So(chargeResult.ChargeID, ShouldEqual, "order-1")
	})
}

func TestUnitPayPalRefund(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	mockPayPalSDK := NewMockPayPalSDK(mockCtrl)
	service := PayPalService{Client: mockPayPalSDK, Config: testConfig}

	Convey("Error refunding capture", t, func() {
		mockPayPalSDK.EXPECT().RefundCapture(gomock.Any(), "capture-1", gomock.Any()).Return(nil, errors.New("error"))

		refundResult, err := service.Refund(context.Background(), "capture-1", "300.00")

		So(refundResult, ShouldBeNil)
		So(err.Error(), ShouldEqual, "error refunding capture: [error]")
	})

	Convey("Refund not completed", t, func() {
		resp := paypal.RefundResponse{ID: "refund-1", Status: "CANCELLED"}
		mockPayPalSDK.EXPECT().RefundCapture(gomock.Any(), "capture-1", gomock.Any()).Return(&resp, nil)

		refundResult, err := service.Refund(context.Background(), "capture-1", "300.00")

		So(err, ShouldBeNil)
		So(refundResult.Success, ShouldBeFalse)
		So(refundResult.Error, ShouldEqual, "paypal refund status is CANCELLED")
	})

	Convey("Refund amount is sent in the configured currency", t, func() {
		mockPayPalSDK.EXPECT().RefundCapture(gomock.Any(), "capture-1", gomock.Any()).DoAndReturn(
			func(ctx context.Context, captureID string, refundCaptureRequest paypal.RefundCaptureRequest) (*paypal.RefundResponse, error) {
				So(refundCaptureRequest.Amount.Currency, ShouldEqual, "NGN")
				So(refundCaptureRequest.Amount.Value, ShouldEqual, "300.00")
				return &paypal.RefundResponse{ID: "refund-1", Status: "COMPLETED"}, nil
			})

		refundResult, err := service.Refund(context.Background(), "capture-1", "300.00")

		So(err, ShouldBeNil)
		So(refundResult.Success, ShouldBeTrue)
		So(refundResult.RefundID, ShouldEqual, "refund-1")
	})

	Convey("Pending refund is treated as successful", t, func() {
		resp := paypal.RefundResponse{ID: "refund-1", Status: "PENDING"}
		mockPayPalSDK.EXPECT().RefundCapture(gomock.Any(), "capture-1", gomock.Any()).Return(&resp, nil)

		refundResult, err := service.Refund(context.Background(), "capture-1", "300.00")

		So(err, ShouldBeNil)
		So(refundResult.Success, ShouldBeTrue)
	})
}

func TestUnitPayPalTokenizeMethod(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	service := PayPalService{Client: NewMockPayPalSDK(mockCtrl), Config: testConfig}

	Convey("Tokenization is reported as unsupported", t, func() {
		tokenizeResult, err := service.TokenizeMethod(context.Background(), "user-1")

		So(err, ShouldBeNil)
		So(tokenizeResult.Success, ShouldBeFalse)
		So(tokenizeResult.Error, ShouldEqual, "payment method tokenization is not supported by the paypal provider")
	})
}
