package api

import (
	"net/http"
	"net/http/httptest"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestMetricsMiddleware(t *testing.T) {
	Convey("Given a wrapped handler that fails", t, func() {
		h := MetricsMiddleware(func(w http.ResponseWriter, _ *http.Request) {
			writeError(w, http.StatusUnprocessableEntity, "same_player", nil)
		}, "test")

		Convey("When it is called", func() {
			w := httptest.NewRecorder()
			h(w, httptest.NewRequest(http.MethodGet, "/test", nil))

			Convey("Then the status should pass through", func() {
				So(w.Code, ShouldEqual, http.StatusUnprocessableEntity)
				So(w.Body.String(), ShouldContainSubstring, "Unprocessable Entity")
			})
		})
	})
}

func TestGetErrorType(t *testing.T) {
	Convey("Given HTTP status codes", t, func() {
		So(getErrorType(500), ShouldEqual, "server_error")
		So(getErrorType(503), ShouldEqual, "server_error")
		So(getErrorType(422), ShouldEqual, "guarded")
		So(getErrorType(404), ShouldEqual, "not_found")
		So(getErrorType(400), ShouldEqual, "client_error")
		So(getErrorType(200), ShouldEqual, "unknown")
	})
}
