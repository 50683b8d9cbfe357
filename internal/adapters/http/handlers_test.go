package httpadapter

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"svw.info/aoc/internal/generator"
	"svw.info/aoc/internal/hint"
	"svw.info/aoc/internal/infrastructure/storage"
	"svw.info/aoc/internal/input"
	"svw.info/aoc/internal/solver"
	"svw.info/aoc/internal/usecase"
	"svw.info/aoc/internal/validator"
)

const sample = "30373\n25512\n65332\n33549\n35390\n"

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	dir := t.TempDir()
	cache := storage.NewFS(filepath.Join(dir, "inputs"))
	require.NoError(t, cache.Save(context.Background(), 8, sample))
	in, err := input.New(cache, "https://example.invalid", "", nil)
	require.NoError(t, err)
	hist, err := storage.OpenSQLite(filepath.Join(dir, "history.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = hist.Close() })

	uc := usecase.NewService(solver.NewDefaultRegistry(), in, hist, validator.New(), hint.NewScenic(), generator.NewForestGenerator())
	uc.Cache = cache
	uc.Logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	mux := http.NewServeMux()
	New(uc).Register(mux)
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func post(t *testing.T, url, body string) (*http.Response, map[string]any) {
	t.Helper()
	res, err := http.Post(url, "application/json", strings.NewReader(body))
	require.NoError(t, err)
	defer res.Body.Close()
	var out map[string]any
	require.NoError(t, json.NewDecoder(res.Body).Decode(&out))
	return res, out
}

func TestSolve(t *testing.T) {
	srv := newTestServer(t)
	body, _ := json.Marshal(solveReq{Day: 8, Input: sample})
	res, out := post(t, srv.URL+"/api/solve", string(body))
	assert.Equal(t, http.StatusOK, res.StatusCode)
	assert.Equal(t, "21", out["first"])
	assert.Equal(t, "8", out["second"])
	require.Contains(t, out, "hint")
	assert.EqualValues(t, 8, out["hint"].(map[string]any)["score"])
}

func TestSolveErrors(t *testing.T) {
	srv := newTestServer(t)
	cases := []struct {
		name   string
		body   string
		status int
	}{
		{"bad json", `{`, http.StatusBadRequest},
		{"bad digit", `{"day":8,"input":"12\n3a"}`, http.StatusBadRequest},
		{"empty", `{"day":8,"input":""}`, http.StatusBadRequest},
		{"unknown day", `{"day":4,"input":"1"}`, http.StatusNotFound},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			res, out := post(t, srv.URL+"/api/solve", tc.body)
			assert.Equal(t, tc.status, res.StatusCode)
			assert.NotEmpty(t, out["error"])
		})
	}
}

func TestRunThenList(t *testing.T) {
	srv := newTestServer(t)
	res, out := post(t, srv.URL+"/api/run", `{"day":8}`)
	require.Equal(t, http.StatusOK, res.StatusCode)
	run := out["run"].(map[string]any)
	assert.NotEmpty(t, run["id"])

	res, err := http.Get(srv.URL + "/api/runs?day=8")
	require.NoError(t, err)
	defer res.Body.Close()
	var list runsResp
	require.NoError(t, json.NewDecoder(res.Body).Decode(&list))
	require.Len(t, list.Runs, 1)
	assert.Equal(t, "21", list.Runs[0].Solution.First)
	assert.Equal(t, "8", list.Runs[0].Solution.Second)
}

func TestRunUnknownDay(t *testing.T) {
	srv := newTestServer(t)
	res, out := post(t, srv.URL+"/api/run", `{"day":9}`)
	assert.Equal(t, http.StatusNotFound, res.StatusCode)
	assert.Equal(t, "unknown day 9", out["error"])
}

func TestHeatmap(t *testing.T) {
	srv := newTestServer(t)
	res, err := http.Post(srv.URL+"/api/heatmap", "text/plain", strings.NewReader(sample))
	require.NoError(t, err)
	defer res.Body.Close()
	assert.Equal(t, http.StatusOK, res.StatusCode)
	assert.Contains(t, res.Header.Get("Content-Type"), "text/html")

	res2, err := http.Post(srv.URL+"/api/heatmap", "text/plain", strings.NewReader("12\n3"))
	require.NoError(t, err)
	defer res2.Body.Close()
	assert.Equal(t, http.StatusBadRequest, res2.StatusCode)
}

func TestSample(t *testing.T) {
	srv := newTestServer(t)
	res, out := post(t, srv.URL+"/api/sample", `{"seed":3,"width":4,"height":2}`)
	require.Equal(t, http.StatusOK, res.StatusCode)
	assert.Len(t, out["input"], 10)
}

func TestSampleRejectsOversizedForest(t *testing.T) {
	srv := newTestServer(t)
	cases := []struct {
		name string
		body string
	}{
		{"overflowing width", `{"seed":1,"width":4611686018427387903,"height":4}`},
		{"too tall", `{"seed":1,"width":4,"height":1001}`},
		{"negative", `{"seed":1,"width":-3}`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			res, out := post(t, srv.URL+"/api/sample", tc.body)
			assert.Equal(t, http.StatusBadRequest, res.StatusCode)
			assert.NotEmpty(t, out["error"])
		})
	}
}

func TestParameterBodiesAreBounded(t *testing.T) {
	srv := newTestServer(t)
	padded := `{"day":8,"pad":"` + strings.Repeat("x", 2<<10) + `"}`
	for _, path := range []string{"/api/run", "/api/sample"} {
		t.Run(path, func(t *testing.T) {
			res, out := post(t, srv.URL+path, padded)
			assert.Equal(t, http.StatusBadRequest, res.StatusCode)
			assert.NotEmpty(t, out["error"])
		})
	}
}

func TestDays(t *testing.T) {
	srv := newTestServer(t)
	res, err := http.Get(srv.URL + "/api/days")
	require.NoError(t, err)
	defer res.Body.Close()
	require.Equal(t, http.StatusOK, res.StatusCode)
	var out daysResp
	require.NoError(t, json.NewDecoder(res.Body).Decode(&out))
	assert.Equal(t, []int{8}, out.Registered)
	assert.Equal(t, []int{8}, out.Cached)
}

func TestMethodNotAllowed(t *testing.T) {
	srv := newTestServer(t)
	res, err := http.Get(srv.URL + "/api/solve")
	require.NoError(t, err)
	res.Body.Close()
	assert.Equal(t, http.StatusMethodNotAllowed, res.StatusCode)
}
