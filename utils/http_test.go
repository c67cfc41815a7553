package utils

import (
	"net/http"
	"net/http/httptest"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestUnitWriteJSONWithStatus(t *testing.T) {
	Convey("Failure to marshal json", t, func() {
		w := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodGet, "/payments", nil)

		// causes an UnsupportedTypeError
		WriteJSONWithStatus(w, r, make(chan int), http.StatusInternalServerError)

		So(w.Code, ShouldEqual, http.StatusInternalServerError)
		So(w.Header().Get("Content-Type"), ShouldEqual, "application/json")
		So(w.Body.String(), ShouldEqual, "")
	})

	Convey("contents are written as json", t, func() {
		w := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodGet, "/payments", nil)

		WriteJSONWithStatus(w, r, "message", http.StatusCreated)

		So(w.Code, ShouldEqual, http.StatusCreated)
		So(w.Header().Get("Content-Type"), ShouldEqual, "application/json")
		So(w.Body.String(), ShouldContainSubstring, "message")
	})
}

func TestUnitWriteErrorWithStatus(t *testing.T) {
	Convey("error message is wrapped in a message body", t, func() {
		w := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodPost, "/payments", nil)

		WriteErrorWithStatus(w, r, "payment not found. id: pay-1", http.StatusNotFound)

		So(w.Code, ShouldEqual, http.StatusNotFound)
		So(w.Header().Get("Content-Type"), ShouldEqual, "application/json")
		So(w.Body.String(), ShouldContainSubstring, `{"message":"payment not found. id: pay-1"}`)
	})
}
