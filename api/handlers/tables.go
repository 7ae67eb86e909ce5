package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/aria-lang/swaffine-go/pkg/swaffine"
)

// TablesResponse lists the built-in substitution tables.
type TablesResponse struct {
	Tables []string `json:"tables"`
}

// TableResponse describes one substitution table.
type TableResponse struct {
	Name      string  `json:"name"`
	Columns   string  `json:"columns"`
	Rows      string  `json:"rows"`
	Symmetric bool    `json:"symmetric"`
	Scores    [][]int `json:"scores"`
}

// TablesHandler lists the built-in tables.
func TablesHandler(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, TablesResponse{Tables: swaffine.BuiltinTables()})
}

// TableHandler returns one built-in table. Scores[r][c] is the score for
// column symbol c against row symbol r.
func TableHandler(w http.ResponseWriter, r *http.Request) {
	t, err := swaffine.BuiltinTable(chi.URLParam(r, "name"))
	if err != nil {
		writeError(w, http.StatusNotFound, err.Error())
		return
	}

	cols, rows := t.Columns(), t.Rows()
	scores := make([][]int, len(rows))
	for i, b := range rows {
		scores[i] = make([]int, len(cols))
		for j, a := range cols {
			scores[i][j], _ = t.Score(a, b)
		}
	}

	writeJSON(w, http.StatusOK, TableResponse{
		Name:      t.Name,
		Columns:   string(cols),
		Rows:      string(rows),
		Symmetric: t.IsSymmetric(),
		Scores:    scores,
	})
}

type errorResponse struct {
	Error string `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, errorResponse{Error: msg})
}
