package site

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestRegister(t *testing.T) {
	Convey("Given a mux with the root route", t, func() {
		mux := http.NewServeMux()
		Register(context.Background(), mux)

		Convey("When requesting the root with a folder", func() {
			w := httptest.NewRecorder()
			mux.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/?dir=matches", http.NoBody))

			Convey("Then it should redirect to the dashboard", func() {
				So(w.Code, ShouldEqual, http.StatusFound)
				So(w.Header().Get("Location"), ShouldEqual, "/dashboard?dir=matches")
			})
		})

		Convey("When requesting an unknown path", func() {
			w := httptest.NewRecorder()
			mux.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/nope", http.NoBody))

			So(w.Code, ShouldEqual, http.StatusNotFound)
		})

		Convey("When posting to the root", func() {
			w := httptest.NewRecorder()
			mux.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/", http.NoBody))

			So(w.Code, ShouldEqual, http.StatusNotFound)
		})
	})

	Convey("Given a nil mux", t, func() {
		So(func() { Register(context.Background(), nil) }, ShouldPanic)
	})
}
