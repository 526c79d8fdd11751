package api_test

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/cannondawg34/portfolio/internal/adapters/http/api"
	"github.com/cannondawg34/portfolio/internal/adapters/repository"
	"github.com/cannondawg34/portfolio/internal/domain/catalog"
	"github.com/cannondawg34/portfolio/internal/domain/model"
	"github.com/cannondawg34/portfolio/internal/domain/navigation"
	"github.com/cannondawg34/portfolio/internal/domain/theme"
	"github.com/cannondawg34/portfolio/pkg/logger"
	. "github.com/smartystreets/goconvey/convey"
)

func init() {
	if err := logger.Init(); err != nil {
		panic(err)
	}
}

// Mock implementations for testing
type mockDependencies struct {
	records   []catalog.Record
	filterErr error
	lastState catalog.State
	themes    map[string]theme.Theme
	lastTheme string
}

func newMockDependencies() *mockDependencies {
	return &mockDependencies{
		records: []catalog.Record{
			{
				Title:         "DB Project",
				Slug:          "db-proj3",
				Description:   "Linear hashing index",
				ThumbnailPath: "/images/db.jpg",
				DownloadPath:  "/downloads/db.zip",
				DetailsPath:   "/projects/db-proj3",
				Stack:         []string{"Java"},
				Category:      "data",
			},
			{
				Title:        "External",
				Slug:         "external",
				Description:  "Hosted elsewhere",
				DownloadPath: "https://example.com/x.zip",
			},
		},
		themes: map[string]theme.Theme{},
	}
}

func (m *mockDependencies) Filter(_ context.Context, state catalog.State) (api.FilterResult, error) {
	m.lastState = state
	if m.filterErr != nil {
		return api.FilterResult{}, m.filterErr
	}
	items := catalog.Filter(m.records, state)
	return api.FilterResult{Items: items, Count: len(items), Total: len(m.records)}, nil
}

func (m *mockDependencies) Project(_ context.Context, slug string) (catalog.Record, error) {
	for _, r := range m.records {
		if r.Slug == slug {
			return r, nil
		}
	}
	return catalog.Record{}, fmt.Errorf("%w: %s", repository.ErrNotFound, slug)
}

func (m *mockDependencies) Facets(_ context.Context) (catalog.FacetIndex, error) {
	return catalog.BuildFacetIndex(m.records), nil
}

func (m *mockDependencies) Games(_ context.Context) ([]model.Game, error) {
	return []model.Game{{Title: "Super Dragon Vanguard", ThumbnailPath: "/images/sdv.png", DownloadPath: "/downloads/sdv.zip"}}, nil
}

func (m *mockDependencies) Navigate(_ context.Context, path, fragment string) navigation.Result {
	return navigation.NewResolver("/").ResolveParts(path, fragment)
}

func (m *mockDependencies) Locate(_ context.Context, location string) navigation.Result {
	return navigation.NewResolver("/").Resolve(location)
}

func (m *mockDependencies) Theme(_ context.Context, client string) (theme.Theme, error) {
	m.lastTheme = client
	if t, ok := m.themes[client]; ok {
		return t, nil
	}
	return theme.Light, nil
}

func (m *mockDependencies) SetTheme(_ context.Context, client, raw string) (theme.Theme, error) {
	t, err := theme.Parse(raw)
	if err != nil {
		return "", err
	}
	m.lastTheme = client
	m.themes[client] = t
	return t, nil
}

func (m *mockDependencies) ToggleTheme(ctx context.Context, client string) (theme.Theme, error) {
	current, _ := m.Theme(ctx, client)
	m.themes[client] = current.Opposite()
	return current.Opposite(), nil
}

type mockStatsProvider struct {
	stats map[string]interface{}
}

func (m *mockStatsProvider) GetStats() map[string]interface{} {
	return m.stats
}

func newMux(deps *mockDependencies, opts ...api.ServerOption) *http.ServeMux {
	server := api.NewServer(deps, &mockStatsProvider{stats: map[string]interface{}{"started": true}}, opts...)
	mux := http.NewServeMux()
	server.Register(context.Background(), mux)
	return mux
}

func serve(mux *http.ServeMux, method, target string, body string, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
	}
	for _, c := range cookies {
		req.AddCookie(c)
	}
	w := httptest.NewRecorder()
	mux.ServeHTTP(w, req)
	return w
}

func TestServer_Register(t *testing.T) {
	Convey("Given a registered API server", t, func() {
		mux := newMux(newMockDependencies())

		Convey("Then health and metrics endpoints expose Prometheus text", func() {
			for _, path := range []string{"/healthz", "/metrics"} {
				w := serve(mux, http.MethodGet, path, "")
				So(w.Code, ShouldEqual, http.StatusOK)
				So(w.Header().Get("Content-Type"), ShouldContainSubstring, "text/plain")
			}
		})

		Convey("And stats endpoint returns JSON", func() {
			w := serve(mux, http.MethodGet, "/stats", "")
			So(w.Code, ShouldEqual, http.StatusOK)
			var stats map[string]interface{}
			So(json.Unmarshal(w.Body.Bytes(), &stats), ShouldBeNil)
			So(stats["started"], ShouldEqual, true)
		})

		Convey("And read endpoints reject other methods", func() {
			for _, path := range []string{"/api/projects", "/api/projects/db-proj3", "/api/facets", "/api/games", "/api/navigate", "/stats"} {
				w := serve(mux, http.MethodPost, path, "")
				So(w.Code, ShouldEqual, http.StatusMethodNotAllowed)
				So(w.Header().Get("Allow"), ShouldEqual, http.MethodGet)
			}
		})
	})
}

func TestProjectsHandler(t *testing.T) {
	Convey("Given an API server deployed under a base path", t, func() {
		deps := newMockDependencies()
		mux := newMux(deps, api.WithBasePath("/NewPortfolio/"))

		Convey("When listing projects with filter parameters", func() {
			w := serve(mux, http.MethodGet, "/api/projects?q=hashing&category=data&category=&stack=Java&stack=SQL", "")

			Convey("Then the parameters become the filter state", func() {
				So(w.Code, ShouldEqual, http.StatusOK)
				So(deps.lastState.Query, ShouldEqual, "hashing")
				So(deps.lastState.Categories.Values(), ShouldResemble, []string{"data"})
				So(deps.lastState.Stack.Values(), ShouldResemble, []string{"Java", "SQL"})
			})

			Convey("And asset paths are joined onto the base path", func() {
				var res api.FilterResult
				So(json.Unmarshal(w.Body.Bytes(), &res), ShouldBeNil)
				So(res.Count, ShouldEqual, 1)
				So(res.Total, ShouldEqual, 2)
				So(res.Items[0].ThumbnailPath, ShouldEqual, "/NewPortfolio/images/db.jpg")
				So(res.Items[0].DownloadPath, ShouldEqual, "/NewPortfolio/downloads/db.zip")
				So(res.Items[0].DetailsPath, ShouldEqual, "/NewPortfolio/projects/db-proj3")
				So(deps.records[0].ThumbnailPath, ShouldEqual, "/images/db.jpg")
			})
		})

		Convey("When no parameters are given", func() {
			w := serve(mux, http.MethodGet, "/api/projects", "")

			Convey("Then every record is returned and absolute URLs pass through", func() {
				var res api.FilterResult
				So(json.Unmarshal(w.Body.Bytes(), &res), ShouldBeNil)
				So(deps.lastState.IsEmpty(), ShouldBeTrue)
				So(res.Count, ShouldEqual, 2)
				So(res.Items[1].DownloadPath, ShouldEqual, "https://example.com/x.zip")
				So(res.Items[1].Stack, ShouldNotBeNil)
			})
		})

		Convey("When the filter fails", func() {
			deps.filterErr = errors.New("boom")
			w := serve(mux, http.MethodGet, "/api/projects", "")

			Convey("Then a 500 error body is returned", func() {
				So(w.Code, ShouldEqual, http.StatusInternalServerError)
				So(w.Body.String(), ShouldContainSubstring, `"code":"internal_error"`)
			})
		})

		Convey("When fetching one project", func() {
			w := serve(mux, http.MethodGet, "/api/projects/db-proj3", "")

			Convey("Then the long description falls back to the summary", func() {
				So(w.Code, ShouldEqual, http.StatusOK)
				var rec catalog.Record
				So(json.Unmarshal(w.Body.Bytes(), &rec), ShouldBeNil)
				So(rec.Slug, ShouldEqual, "db-proj3")
				So(rec.LongDescription, ShouldEqual, "Linear hashing index")
			})
		})

		Convey("When fetching an unknown project", func() {
			w := serve(mux, http.MethodGet, "/api/projects/nope", "")

			Convey("Then 404 is returned", func() {
				So(w.Code, ShouldEqual, http.StatusNotFound)
				So(w.Body.String(), ShouldContainSubstring, `"code":"not_found"`)
			})
		})

		Convey("When the slug is missing", func() {
			w := serve(mux, http.MethodGet, "/api/projects/", "")

			Convey("Then 400 is returned", func() {
				So(w.Code, ShouldEqual, http.StatusBadRequest)
			})
		})
	})
}

func TestFacetsAndGames(t *testing.T) {
	Convey("Given a registered API server", t, func() {
		mux := newMux(newMockDependencies())

		Convey("Facets list categories and stack tags", func() {
			w := serve(mux, http.MethodGet, "/api/facets", "")
			So(w.Code, ShouldEqual, http.StatusOK)
			So(w.Body.String(), ShouldContainSubstring, `"categories":["data"]`)
			So(w.Body.String(), ShouldContainSubstring, `"stackTags":["Java"]`)
		})

		Convey("Games carry resolved asset paths", func() {
			w := serve(mux, http.MethodGet, "/api/games", "")
			So(w.Code, ShouldEqual, http.StatusOK)
			var games []model.Game
			So(json.Unmarshal(w.Body.Bytes(), &games), ShouldBeNil)
			So(len(games), ShouldEqual, 1)
			So(games[0].DownloadPath, ShouldEqual, "/downloads/sdv.zip")
		})
	})
}

func TestNavigationHandler(t *testing.T) {
	Convey("Given a registered API server", t, func() {
		mux := newMux(newMockDependencies())

		decode := func(w *httptest.ResponseRecorder) navigation.Result {
			var res navigation.Result
			So(json.Unmarshal(w.Body.Bytes(), &res), ShouldBeNil)
			return res
		}

		Convey("A raw location resolves view and anchor", func() {
			res := decode(serve(mux, http.MethodGet, "/api/navigate?location=%2Fprojects%23projectsTop", ""))
			So(res.View, ShouldEqual, navigation.Projects)
			So(res.Scroll, ShouldBeTrue)
		})

		Convey("Path and fragment resolve separately", func() {
			res := decode(serve(mux, http.MethodGet, "/api/navigate?path=/&fragment=work", ""))
			So(res.View, ShouldEqual, navigation.Home)
			So(res.Anchor, ShouldEqual, "work")
		})

		Convey("No parameters resolve to home without scrolling", func() {
			res := decode(serve(mux, http.MethodGet, "/api/navigate", ""))
			So(res.View, ShouldEqual, navigation.Home)
			So(res.Scroll, ShouldBeFalse)
		})
	})
}

func TestSecureCookies(t *testing.T) {
	Convey("Given a server configured for HTTPS", t, func() {
		mux := newMux(newMockDependencies(), api.WithSecureCookies(true))

		Convey("Then the client id cookie is Secure", func() {
			cookies := serve(mux, http.MethodPost, "/api/theme/toggle", "").Result().Cookies()
			So(len(cookies), ShouldEqual, 1)
			So(cookies[0].Name, ShouldEqual, api.ClientCookie)
			So(cookies[0].Secure, ShouldBeTrue)
		})
	})
}

func TestThemeHandler(t *testing.T) {
	Convey("Given a registered API server", t, func() {
		deps := newMockDependencies()
		mux := newMux(deps)

		Convey("A first visit gets the default theme and a client cookie", func() {
			w := serve(mux, http.MethodGet, "/api/theme", "")
			So(w.Code, ShouldEqual, http.StatusOK)
			So(w.Body.String(), ShouldContainSubstring, `"theme":"light"`)

			cookies := w.Result().Cookies()
			So(len(cookies), ShouldEqual, 1)
			So(cookies[0].Name, ShouldEqual, api.ClientCookie)
			So(cookies[0].HttpOnly, ShouldBeTrue)
			So(deps.lastTheme, ShouldEqual, cookies[0].Value)

			Convey("And the cookie keys later requests", func() {
				w := serve(mux, http.MethodPost, "/api/theme/toggle", "", cookies[0])
				So(w.Code, ShouldEqual, http.StatusOK)
				So(w.Body.String(), ShouldContainSubstring, `"theme":"dark"`)
				So(w.Result().Cookies(), ShouldBeEmpty)
				So(deps.themes[cookies[0].Value], ShouldEqual, theme.Dark)
			})
		})

		Convey("Cookies are not Secure unless configured", func() {
			cookies := serve(mux, http.MethodGet, "/api/theme", "").Result().Cookies()
			So(len(cookies), ShouldEqual, 1)
			So(cookies[0].Secure, ShouldBeFalse)
		})

		Convey("A malformed cookie is replaced", func() {
			w := serve(mux, http.MethodGet, "/api/theme", "", &http.Cookie{Name: api.ClientCookie, Value: "not-a-uuid"})
			cookies := w.Result().Cookies()
			So(len(cookies), ShouldEqual, 1)
			So(cookies[0].Value, ShouldNotEqual, "not-a-uuid")
		})

		Convey("Setting a valid theme stores it", func() {
			w := serve(mux, http.MethodPut, "/api/theme", `{"theme":"dark"}`)
			So(w.Code, ShouldEqual, http.StatusOK)
			So(deps.themes[deps.lastTheme], ShouldEqual, theme.Dark)
		})

		Convey("Setting an unknown theme is a bad request", func() {
			w := serve(mux, http.MethodPut, "/api/theme", `{"theme":"sepia"}`)
			So(w.Code, ShouldEqual, http.StatusBadRequest)
		})

		Convey("A malformed body is a bad request", func() {
			w := serve(mux, http.MethodPut, "/api/theme", `{`)
			So(w.Code, ShouldEqual, http.StatusBadRequest)
		})

		Convey("Toggle only accepts POST", func() {
			w := serve(mux, http.MethodGet, "/api/theme/toggle", "")
			So(w.Code, ShouldEqual, http.StatusMethodNotAllowed)
			So(w.Header().Get("Allow"), ShouldEqual, http.MethodPost)
		})
	})
}
