package httpadapter

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"

	"svw.info/aoc/internal/domain"
	"svw.info/aoc/internal/forest"
	"svw.info/aoc/internal/generator"
	"svw.info/aoc/internal/ports"
	"svw.info/aoc/internal/render"
	"svw.info/aoc/internal/solver"
	"svw.info/aoc/internal/usecase"
)

const (
	// maxInputBytes bounds request bodies carrying puzzle text.
	maxInputBytes = 4 << 20
	// maxRequestBytes bounds small parameter-only JSON bodies.
	maxRequestBytes = 1 << 10
)

type Handler struct {
	UC *usecase.Service
}

func New(uc *usecase.Service) *Handler { return &Handler{UC: uc} }

func (h *Handler) Register(mux *http.ServeMux) {
	mux.HandleFunc("/api/solve", h.handleSolve)
	mux.HandleFunc("/api/run", h.handleRun)
	mux.HandleFunc("/api/runs", h.handleRuns)
	mux.HandleFunc("/api/heatmap", h.handleHeatmap)
	mux.HandleFunc("/api/sample", h.handleSample)
	mux.HandleFunc("/api/days", h.handleDays)
}

// statusFor maps domain errors onto HTTP status codes.
func statusFor(err error) int {
	switch {
	case errors.Is(err, forest.ErrEmptyInput),
		errors.Is(err, forest.ErrInvalidHeightDigit),
		errors.Is(err, forest.ErrInconsistentRowWidth):
		return http.StatusBadRequest
	case errors.Is(err, solver.ErrUnknownDay):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	if status != http.StatusOK {
		w.WriteHeader(status)
	}
	_ = json.NewEncoder(w).Encode(v)
}

// ---- Solve ----

type solveReq struct {
	Day   int    `json:"day,omitempty"`
	Input string `json:"input"`
}
type solveResp struct {
	First      string       `json:"first,omitempty"`
	Second     string       `json:"second,omitempty"`
	DurationMs int64        `json:"durationMs,omitempty"`
	Hint       *domain.Hint `json:"hint,omitempty"`
	Error      string       `json:"error,omitempty"`
}

func (h *Handler) handleSolve(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	if r.Method != http.MethodPost {
		http.Error(w, `{"error":"method not allowed"}`, http.StatusMethodNotAllowed)
		return
	}
	var req solveReq
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxInputBytes)).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, solveResp{Error: "invalid JSON: " + err.Error()})
		return
	}
	if req.Day == 0 {
		req.Day = 8
	}
	var (
		sol  domain.Solution
		hint domain.Hint
		st   ports.Stats
		err  error
	)
	if req.Day == 8 {
		sol, hint, st, err = h.UC.SolveForest(r.Context(), req.Input)
	} else {
		sol, st, err = h.UC.SolveText(r.Context(), req.Day, req.Input)
	}
	if err != nil {
		writeJSON(w, statusFor(err), solveResp{Error: err.Error()})
		return
	}
	resp := solveResp{First: sol.First, Second: sol.Second, DurationMs: st.Duration.Milliseconds()}
	if hint.Message != "" {
		resp.Hint = &hint
	}
	writeJSON(w, http.StatusOK, resp)
}

// ---- Run ----

type runReq struct {
	Day int `json:"day"`
}
type runResp struct {
	Run   *domain.Run `json:"run,omitempty"`
	Error string      `json:"error,omitempty"`
}

func (h *Handler) handleRun(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	if r.Method != http.MethodPost {
		http.Error(w, `{"error":"method not allowed"}`, http.StatusMethodNotAllowed)
		return
	}
	var req runReq
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxRequestBytes)).Decode(&req); err != nil || req.Day <= 0 {
		writeJSON(w, http.StatusBadRequest, runResp{Error: "invalid JSON or missing day"})
		return
	}
	run, err := h.UC.Run(r.Context(), req.Day)
	if err != nil {
		writeJSON(w, statusFor(err), runResp{Error: err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, runResp{Run: &run})
}

// ---- Runs ----

type runsResp struct {
	Runs  []domain.Run `json:"runs"`
	Error string       `json:"error,omitempty"`
}

func (h *Handler) handleRuns(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	if r.Method != http.MethodGet {
		http.Error(w, `{"error":"method not allowed"}`, http.StatusMethodNotAllowed)
		return
	}
	q := r.URL.Query()
	day, _ := strconv.Atoi(q.Get("day"))
	limit, err := strconv.Atoi(q.Get("limit"))
	if err != nil || limit <= 0 {
		limit = 50
	}
	runs, err := h.UC.Runs(r.Context(), day, limit)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, runsResp{Error: err.Error()})
		return
	}
	if runs == nil {
		runs = []domain.Run{}
	}
	writeJSON(w, http.StatusOK, runsResp{Runs: runs})
}

// ---- Heatmap ----

// handleHeatmap takes the raw forest as the request body and answers with an
// HTML heatmap of scenic scores.
func (h *Handler) handleHeatmap(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxInputBytes))
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	g, _, err := h.UC.Analyze(r.Context(), string(body))
	if err != nil {
		http.Error(w, err.Error(), statusFor(err))
		return
	}
	var buf bytes.Buffer
	if err := render.Heatmap(&buf, g, "Scenic scores"); err != nil {
		http.Error(w, "failed to render chart: "+err.Error(), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = w.Write(buf.Bytes())
}

// ---- Sample ----

type sampleReq struct {
	Seed   int64 `json:"seed,omitempty"`
	Width  int   `json:"width,omitempty"`
	Height int   `json:"height,omitempty"`
}
type sampleResp struct {
	Input string `json:"input,omitempty"`
	Seed  int64  `json:"seed,omitempty"`
	Error string `json:"error,omitempty"`
}

func (h *Handler) handleSample(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	if r.Method != http.MethodPost {
		http.Error(w, `{"error":"method not allowed"}`, http.StatusMethodNotAllowed)
		return
	}
	var req sampleReq
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxRequestBytes)).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		writeJSON(w, http.StatusBadRequest, sampleResp{Error: "invalid JSON: " + err.Error()})
		return
	}
	if req.Seed == 0 {
		req.Seed = time.Now().UnixNano()
	}
	if req.Width == 0 {
		req.Width = 5
	}
	if req.Height == 0 {
		req.Height = req.Width
	}
	if req.Width < 0 || req.Height < 0 || req.Width > generator.MaxSide || req.Height > generator.MaxSide {
		writeJSON(w, http.StatusBadRequest, sampleResp{Error: fmt.Sprintf("width and height must be between 1 and %d", generator.MaxSide)})
		return
	}
	text, err := h.UC.Sample(r.Context(), req.Seed, req.Width, req.Height)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, sampleResp{Error: err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, sampleResp{Input: text, Seed: req.Seed})
}

// ---- Days ----

type daysResp struct {
	Registered []int  `json:"registered"`
	Cached     []int  `json:"cached"`
	Error      string `json:"error,omitempty"`
}

// handleDays lists the solvable days and the days with a cached input.
func (h *Handler) handleDays(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	if r.Method != http.MethodGet {
		http.Error(w, `{"error":"method not allowed"}`, http.StatusMethodNotAllowed)
		return
	}
	registered, cached, err := h.UC.Days(r.Context())
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, daysResp{Error: err.Error()})
		return
	}
	if cached == nil {
		cached = []int{}
	}
	writeJSON(w, http.StatusOK, daysResp{Registered: registered, Cached: cached})
}
