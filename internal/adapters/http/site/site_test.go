package site

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"testing/fstest"

	. "github.com/smartystreets/goconvey/convey"
)

func TestSiteHandler(t *testing.T) {
	Convey("Given the registered site", t, func() {
		mux := http.NewServeMux()
		So(Register(context.Background(), mux), ShouldBeNil)

		get := func(target string) *httptest.ResponseRecorder {
			req := httptest.NewRequest(http.MethodGet, target, nil)
			w := httptest.NewRecorder()
			mux.ServeHTTP(w, req)
			return w
		}

		Convey("Then / serves the shell", func() {
			w := get("/")
			So(w.Code, ShouldEqual, http.StatusOK)
			So(w.Header().Get("Content-Type"), ShouldContainSubstring, "text/html")
			So(w.Body.String(), ShouldContainSubstring, `id="projectsTop"`)
		})

		Convey("And client routes fall back to the shell", func() {
			for _, target := range []string{"/projects", "/about", "/games", "/no/such/page", "/index.html"} {
				w := get(target)
				So(w.Code, ShouldEqual, http.StatusOK)
				So(w.Body.String(), ShouldContainSubstring, `id="work"`)
			}
		})

		Convey("And static assets are served as files", func() {
			w := get("/app.js")
			So(w.Code, ShouldEqual, http.StatusOK)
			So(w.Header().Get("Content-Type"), ShouldContainSubstring, "javascript")

			w = get("/style.css")
			So(w.Code, ShouldEqual, http.StatusOK)
			So(w.Header().Get("Content-Type"), ShouldContainSubstring, "text/css")
		})

		Convey("And unknown API paths are not swallowed", func() {
			So(get("/api/unknown").Code, ShouldEqual, http.StatusNotFound)
		})

		Convey("And writes are rejected", func() {
			req := httptest.NewRequest(http.MethodPost, "/", nil)
			w := httptest.NewRecorder()
			mux.ServeHTTP(w, req)
			So(w.Code, ShouldEqual, http.StatusMethodNotAllowed)
		})
	})
}

func TestNewRootHandler(t *testing.T) {
	Convey("Given a file system without an index page", t, func() {
		_, err := NewRootHandler(fstest.MapFS{"app.js": {Data: []byte("x")}})

		Convey("Then construction fails", func() {
			So(errors.Is(err, ErrMissingIndex), ShouldBeTrue)
		})
	})
}
