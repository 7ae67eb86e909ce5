// Package handlers provides HTTP handlers for the swaffine API.
package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/aria-lang/swaffine-go/pkg/swaffine"
)

// API serves alignment requests. MaxSequenceLength bounds each input
// sequence and MaxNaiveLength bounds each sequence aligned with the naive
// strategy; zero means unbounded.
type API struct {
	MaxSequenceLength int
	MaxNaiveLength    int
}

// Routes mounts the alignment endpoints on r.
func (a *API) Routes(r chi.Router) {
	r.Route("/alignment", func(r chi.Router) {
		r.Post("/local", a.LocalAlignHandler)
		r.Post("/matrix", a.MatrixHandler)
		r.Post("/score", a.ScoreHandler)
	})
	r.Get("/tables", TablesHandler)
	r.Get("/tables/{name}", TableHandler)
}

// AlignmentRequest represents an alignment request. Without a table name
// symbols are scored with match/mismatch, starting from the named preset
// or +1/-1. Without a strategy the O(n*m) Gotoh fill is used.
type AlignmentRequest struct {
	Sequence1 string `json:"sequence1"`
	Sequence2 string `json:"sequence2"`
	Table     string `json:"table,omitempty"`
	Preset    string `json:"preset,omitempty"`
	Match     *int   `json:"match,omitempty"`
	Mismatch  *int   `json:"mismatch,omitempty"`
	OpenGap   *int   `json:"open_gap,omitempty"`
	ExtGap    *int   `json:"ext_gap,omitempty"`
	Strategy  string `json:"strategy,omitempty"`
}

// AlignmentResponse represents the response for local alignment.
type AlignmentResponse struct {
	Line1       string  `json:"line1"`
	Match       string  `json:"match"`
	Line2       string  `json:"line2"`
	AlignedSeq1 string  `json:"aligned_seq1"`
	AlignedSeq2 string  `json:"aligned_seq2"`
	Score       int     `json:"score"`
	Start1      int     `json:"start1"`
	End1        int     `json:"end1"`
	Start2      int     `json:"start2"`
	End2        int     `json:"end2"`
	Identity    float64 `json:"identity"`
	CIGAR       string  `json:"cigar"`
	Matches     int     `json:"matches"`
	Mismatches  int     `json:"mismatches"`
	Gaps        int     `json:"gaps"`
	GapOpenings int     `json:"gap_openings"`
}

// NewAlignmentResponse converts an alignment for the wire.
func NewAlignmentResponse(a *swaffine.Alignment) AlignmentResponse {
	return AlignmentResponse{
		Line1:       a.Line1,
		Match:       a.Match,
		Line2:       a.Line2,
		AlignedSeq1: a.AlignedSeq1,
		AlignedSeq2: a.AlignedSeq2,
		Score:       a.Score,
		Start1:      a.Start1,
		End1:        a.End1,
		Start2:      a.Start2,
		End2:        a.End2,
		Identity:    a.Identity,
		CIGAR:       a.ToCIGAR(),
		Matches:     a.MatchCount(),
		Mismatches:  a.MismatchCount(),
		Gaps:        a.TotalGaps(),
		GapOpenings: a.GapOpenings(),
	}
}

// MatrixResponse represents the filled score matrix. Scores[i][j] is the
// cell for seq1[:i] and seq2[:j].
type MatrixResponse struct {
	Rows   int        `json:"rows"`
	Cols   int        `json:"cols"`
	Scores [][]int    `json:"scores"`
	Moves  [][]string `json:"moves"`
	BestI  int        `json:"best_i"`
	BestJ  int        `json:"best_j"`
	Score  int        `json:"score"`
}

// ScoreResponse represents the response for alignment score.
type ScoreResponse struct {
	Score int `json:"score"`
}

// job is a decoded and validated alignment request.
type job struct {
	pair   *swaffine.Pair
	model  swaffine.Model
	config swaffine.EngineConfig
}

// LocalAlignHandler handles local alignment requests.
func (a *API) LocalAlignHandler(w http.ResponseWriter, r *http.Request) {
	j, ok := a.decode(w, r)
	if !ok {
		return
	}
	result, err := swaffine.RunContext(r.Context(), j.pair, j.model, j.config)
	if err != nil {
		writeRunError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, NewAlignmentResponse(result.Alignment))
}

// MatrixHandler returns the filled score matrix with decoded moves.
func (a *API) MatrixHandler(w http.ResponseWriter, r *http.Request) {
	j, ok := a.decode(w, r)
	if !ok {
		return
	}
	result, err := swaffine.RunContext(r.Context(), j.pair, j.model, j.config)
	if err != nil {
		writeRunError(w, err)
		return
	}
	m := result.Matrix
	bi, bj, best := m.Max()
	writeJSON(w, http.StatusOK, MatrixResponse{
		Rows:   m.Rows(),
		Cols:   m.Cols(),
		Scores: m.Scores(),
		Moves:  m.Moves(),
		BestI:  bi,
		BestJ:  bj,
		Score:  best,
	})
}

// ScoreHandler handles alignment score requests. It skips the traceback.
func (a *API) ScoreHandler(w http.ResponseWriter, r *http.Request) {
	j, ok := a.decode(w, r)
	if !ok {
		return
	}
	score, err := swaffine.Score(r.Context(), j.pair, j.model, j.config)
	if err != nil {
		writeRunError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, ScoreResponse{Score: score})
}

// maxBodyBytes bounds the request body: two sequences of MaxSequenceLength
// symbols, each escaped as \uXXXX at worst, plus room for the other fields.
func (a *API) maxBodyBytes() int64 {
	if a.MaxSequenceLength <= 0 {
		return 0
	}
	return int64(2*6*a.MaxSequenceLength + 4096)
}

// decode reads and validates the request. On failure it has already
// written the error response.
func (a *API) decode(w http.ResponseWriter, r *http.Request) (*job, bool) {
	if limit := a.maxBodyBytes(); limit > 0 {
		r.Body = http.MaxBytesReader(w, r.Body, limit)
	}

	var req AlignmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			writeError(w, http.StatusRequestEntityTooLarge,
				fmt.Sprintf("request body exceeds %d bytes", tooLarge.Limit))
			return nil, false
		}
		writeError(w, http.StatusBadRequest, "invalid request body")
		return nil, false
	}

	seq1, err := swaffine.NewSequence(req.Sequence1)
	if err != nil {
		writeError(w, http.StatusBadRequest, "sequence1: "+err.Error())
		return nil, false
	}
	seq2, err := swaffine.NewSequence(req.Sequence2)
	if err != nil {
		writeError(w, http.StatusBadRequest, "sequence2: "+err.Error())
		return nil, false
	}
	if limit := a.MaxSequenceLength; limit > 0 && (seq1.Len() > limit || seq2.Len() > limit) {
		writeError(w, http.StatusRequestEntityTooLarge,
			fmt.Sprintf("sequences are limited to %d symbols", limit))
		return nil, false
	}

	model, err := req.model()
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return nil, false
	}
	cfg, err := req.engineConfig()
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return nil, false
	}
	if limit := a.MaxNaiveLength; cfg.Strategy == swaffine.Naive && limit > 0 &&
		(seq1.Len() > limit || seq2.Len() > limit) {
		writeError(w, http.StatusRequestEntityTooLarge,
			fmt.Sprintf("the naive strategy is limited to %d symbols; use gotoh", limit))
		return nil, false
	}

	return &job{
		pair:   &swaffine.Pair{First: seq1, Second: seq2},
		model:  model,
		config: cfg,
	}, true
}

// writeRunError maps an alignment failure to a status code.
func writeRunError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	var lookupErr *swaffine.LookupError
	switch {
	case errors.As(err, &lookupErr):
		status = http.StatusUnprocessableEntity
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		status = http.StatusServiceUnavailable
	}
	writeError(w, status, err.Error())
}

func (req *AlignmentRequest) model() (swaffine.Model, error) {
	if req.Table != "" {
		if req.Preset != "" || req.Match != nil || req.Mismatch != nil {
			return nil, fmt.Errorf("table and preset/match/mismatch are mutually exclusive")
		}
		return swaffine.BuiltinTable(req.Table)
	}

	match, mismatch := 1, -1
	if req.Preset != "" {
		preset, err := swaffine.IdentityPreset(req.Preset)
		if err != nil {
			return nil, err
		}
		match, mismatch = preset.Match, preset.Mismatch
	}
	if req.Match != nil {
		match = *req.Match
	}
	if req.Mismatch != nil {
		mismatch = *req.Mismatch
	}
	return swaffine.NewIdentity(match, mismatch)
}

func (req *AlignmentRequest) engineConfig() (swaffine.EngineConfig, error) {
	cfg := swaffine.DefaultConfig()
	cfg.Strategy = swaffine.Gotoh
	if req.OpenGap != nil {
		cfg.Gap.Open = *req.OpenGap
	}
	if req.ExtGap != nil {
		cfg.Gap.Extend = *req.ExtGap
	}
	if req.Strategy != "" {
		strategy, err := swaffine.ParseStrategy(req.Strategy)
		if err != nil {
			return cfg, err
		}
		cfg.Strategy = strategy
	}
	return cfg, nil
}
