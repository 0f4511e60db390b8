package api_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/okian/cricanalytics/internal/adapters/http/api"
	"github.com/okian/cricanalytics/internal/adapters/matchfile"
	"github.com/okian/cricanalytics/internal/domain/analysis"
	"github.com/okian/cricanalytics/internal/domain/model"
	"github.com/okian/cricanalytics/pkg/logger"
	. "github.com/smartystreets/goconvey/convey"
)

func init() {
	if err := logger.Init(logger.WithWriter(&bytes.Buffer{})); err != nil {
		panic(err)
	}
}

// mockAnalyzer returns a fixed load result and records requested dirs.
type mockAnalyzer struct {
	result matchfile.Result
	dirs   []string
}

func (m *mockAnalyzer) Analyze(_ context.Context, dir string) *analysis.Report {
	m.dirs = append(m.dirs, dir)
	return analysis.Build(m.result)
}

func twoPlayers() matchfile.Result {
	return matchfile.Result{
		Directory:      "data",
		DirectoryFound: true,
		Files: []matchfile.FileOutcome{
			{File: "m1.yaml", Status: matchfile.StatusLoaded, Rows: 3},
			{File: "bad.yaml", Status: matchfile.StatusFailed},
		},
		Deliveries: model.Deliveries{
			{MatchID: "m1.yaml", Inning: "1st innings", Ball: "0.1", Batsman: "A", RunsBatsman: 4, TotalRuns: 4},
			{MatchID: "m1.yaml", Inning: "1st innings", Ball: "0.2", Batsman: "A", Extras: 1, TotalRuns: 1, IsWicket: true},
			{MatchID: "m1.yaml", Inning: "2nd innings", Ball: "0.1", Batsman: "B", RunsBatsman: 5, TotalRuns: 5},
		},
		Warnings: []matchfile.Warning{{File: "bad.yaml", Err: matchfile.ErrDecodeFile}},
	}
}

func newMux(a api.Analyzer) *http.ServeMux {
	mux := http.NewServeMux()
	api.NewServer(a).Register(mux)
	return mux
}

func get(mux *http.ServeMux, target string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, target, nil)
	w := httptest.NewRecorder()
	mux.ServeHTTP(w, req)
	return w
}

func TestServer_Register(t *testing.T) {
	Convey("Given a server over two players", t, func() {
		analyzer := &mockAnalyzer{result: twoPlayers()}
		mux := newMux(analyzer)

		Convey("When checking health", func() {
			w := get(mux, "/healthz")

			Convey("Then it should report ok", func() {
				So(w.Code, ShouldEqual, http.StatusOK)
				So(w.Body.String(), ShouldContainSubstring, `"status":"ok"`)
				So(analyzer.dirs, ShouldBeEmpty)
			})
		})

		Convey("When scraping metrics after a request", func() {
			get(mux, "/batting")
			w := get(mux, "/metrics")

			Convey("Then the pipeline metrics should be exposed", func() {
				So(w.Code, ShouldEqual, http.StatusOK)
				So(w.Body.String(), ShouldContainSubstring, "cricanalytics_pipeline_http_requests_total")
			})
		})

		Convey("When requesting the summary", func() {
			w := get(mux, "/summary?dir=/tmp/matches")

			var body map[string]any
			So(json.Unmarshal(w.Body.Bytes(), &body), ShouldBeNil)

			Convey("Then counts and warnings should be returned", func() {
				So(w.Code, ShouldEqual, http.StatusOK)
				So(analyzer.dirs, ShouldResemble, []string{"/tmp/matches"})
				So(body["deliveries"], ShouldEqual, 3.0)
				So(body["matches"], ShouldEqual, 1.0)
				So(body["batsmen"], ShouldEqual, 2.0)
				So(body["warnings"], ShouldEqual, 1.0)
				So(body["empty"], ShouldEqual, false)
				details := body["warning_details"].([]any)
				So(details, ShouldHaveLength, 1)
				So(details[0].(map[string]any)["file"], ShouldEqual, "bad.yaml")
			})
		})

		Convey("When requesting the deliveries", func() {
			w := get(mux, "/deliveries")

			var rows []model.Delivery
			So(json.Unmarshal(w.Body.Bytes(), &rows), ShouldBeNil)

			Convey("Then the flat table should be returned", func() {
				So(rows, ShouldResemble, []model.Delivery(twoPlayers().Deliveries))
				So(analyzer.dirs, ShouldResemble, []string{""})
			})
		})

		Convey("When requesting batting stats", func() {
			w := get(mux, "/batting")

			Convey("Then undefined averages should be JSON null", func() {
				So(w.Code, ShouldEqual, http.StatusOK)
				So(w.Body.String(), ShouldContainSubstring, `"batsman":"A"`)
				So(w.Body.String(), ShouldContainSubstring, `"average":4`)
				So(w.Body.String(), ShouldContainSubstring, `"average":null`)
			})
		})

		Convey("When requesting impact for one player", func() {
			w := get(mux, "/impact?player=B")

			var rows []model.Impact
			So(json.Unmarshal(w.Body.Bytes(), &rows), ShouldBeNil)

			Convey("Then only that player should be returned", func() {
				So(rows, ShouldHaveLength, 1)
				So(rows[0].Batsman, ShouldEqual, "B")
				So(rows[0].AvgContribution.Value, ShouldEqual, 50.0)
			})
		})

		Convey("When requesting the full impact table", func() {
			w := get(mux, "/impact")

			var rows []model.Impact
			So(json.Unmarshal(w.Body.Bytes(), &rows), ShouldBeNil)

			Convey("Then it should be sorted by average contribution", func() {
				So(rows, ShouldHaveLength, 2)
				So(rows[0].AvgContribution.Value, ShouldBeGreaterThanOrEqualTo, rows[1].AvgContribution.Value)
			})
		})

		Convey("When requesting impact for unknown players", func() {
			w := get(mux, "/impact?player=Z&player=Y")

			Convey("Then an empty array should be returned", func() {
				So(w.Code, ShouldEqual, http.StatusOK)
				So(strings.TrimSpace(w.Body.String()), ShouldEqual, "[]")
			})
		})

		Convey("When comparing with default players", func() {
			w := get(mux, "/compare")

			Convey("Then the first two batsmen should be compared", func() {
				So(w.Code, ShouldEqual, http.StatusOK)
				So(w.Body.String(), ShouldContainSubstring, `"players":["A","B"]`)
				So(w.Body.String(), ShouldContainSubstring, `"Strike Rate"`)
			})
		})

		Convey("When comparing a player with themselves", func() {
			w := get(mux, "/compare?p1=A&p2=A")

			Convey("Then the guard state should be unprocessable", func() {
				So(w.Code, ShouldEqual, http.StatusUnprocessableEntity)
				So(w.Body.String(), ShouldContainSubstring, `"code":"same_player"`)
			})
		})

		Convey("When comparing an unknown player", func() {
			w := get(mux, "/compare?p1=A&p2=Z")

			So(w.Code, ShouldEqual, http.StatusUnprocessableEntity)
			So(w.Body.String(), ShouldContainSubstring, `"code":"unknown_player"`)
		})

		Convey("When only one player is given", func() {
			w := get(mux, "/compare?p1=A")

			So(w.Code, ShouldEqual, http.StatusBadRequest)
		})

		Convey("When a name carries surrounding spaces", func() {
			w := get(mux, "/impact?player=%20B%20")

			Convey("Then it should not match the trimmed name", func() {
				So(strings.TrimSpace(w.Body.String()), ShouldEqual, "[]")
			})
		})

		Convey("When requesting the dashboard", func() {
			w := get(mux, "/dashboard")

			Convey("Then an HTML page should be served", func() {
				So(w.Code, ShouldEqual, http.StatusOK)
				So(w.Header().Get("Content-Type"), ShouldStartWith, "text/html")
				So(w.Body.String(), ShouldContainSubstring, "Impact vs Consistency")
			})
		})

		Convey("When using another method", func() {
			req := httptest.NewRequest(http.MethodPost, "/batting", nil)
			w := httptest.NewRecorder()
			mux.ServeHTTP(w, req)

			So(w.Code, ShouldEqual, http.StatusNotFound)
		})
	})

	Convey("Given a server over an empty directory", t, func() {
		mux := newMux(&mockAnalyzer{result: matchfile.Result{Directory: "missing"}})

		Convey("When requesting the tables", func() {
			Convey("Then empty arrays should be returned", func() {
				for _, path := range []string{"/deliveries", "/batting", "/impact"} {
					w := get(mux, path)
					So(w.Code, ShouldEqual, http.StatusOK)
					So(strings.TrimSpace(w.Body.String()), ShouldEqual, "[]")
				}
			})

			Convey("And comparison should report too few players", func() {
				w := get(mux, "/compare")
				So(w.Code, ShouldEqual, http.StatusUnprocessableEntity)
				So(w.Body.String(), ShouldContainSubstring, `"code":"not_enough_players"`)
			})

			Convey("And the dashboard should still render", func() {
				w := get(mux, "/dashboard")
				So(w.Code, ShouldEqual, http.StatusOK)
			})
		})
	})
}

func unnamedBatsman() matchfile.Result {
	return matchfile.Result{
		Directory:      "data",
		DirectoryFound: true,
		Deliveries: model.Deliveries{
			{MatchID: "m1.yaml", Inning: "1st innings", Ball: "0.1", Batsman: "", RunsBatsman: 3, TotalRuns: 3},
			{MatchID: "m1.yaml", Inning: "1st innings", Ball: "0.2", Batsman: "A", RunsBatsman: 1, TotalRuns: 1},
		},
	}
}

func TestServer_UnnamedBatsman(t *testing.T) {
	Convey("Given a batsman recorded without a name", t, func() {
		mux := newMux(&mockAnalyzer{result: unnamedBatsman()})

		Convey("When selecting the empty name for impact", func() {
			w := get(mux, "/impact?player=")

			var rows []model.Impact
			So(json.Unmarshal(w.Body.Bytes(), &rows), ShouldBeNil)

			Convey("Then that batsman's row should be returned", func() {
				So(rows, ShouldHaveLength, 1)
				So(rows[0].Batsman, ShouldEqual, "")
				So(rows[0].AvgContribution.Value, ShouldEqual, 75.0)
			})
		})

		Convey("When comparing the empty name with a named batsman", func() {
			w := get(mux, "/compare?p1=&p2=A")

			Convey("Then both should be compared", func() {
				So(w.Code, ShouldEqual, http.StatusOK)
				So(w.Body.String(), ShouldContainSubstring, `"players":["","A"]`)
			})
		})

		Convey("When only p1 is present even if empty", func() {
			w := get(mux, "/compare?p1=")

			So(w.Code, ShouldEqual, http.StatusBadRequest)
		})
	})
}
