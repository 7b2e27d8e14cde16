// SPDX-License-Identifier: MIT

package server

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/katalvlaran/graphpoet/poet"
)

// PoemRequest is the body of POST /v1/poem.
type PoemRequest struct {
	Input string `json:"input" validate:"required"`
}

// InsertionDTO describes one spliced bridge word.
type InsertionDTO struct {
	Index  int    `json:"index"`
	Before string `json:"before"`
	Bridge string `json:"bridge"`
	After  string `json:"after"`
}

// PoemResponse is the body returned by POST /v1/poem.
type PoemResponse struct {
	Poem       string         `json:"poem"`
	Insertions []InsertionDTO `json:"insertions"`
	Snapshot   string         `json:"snapshot"`
}

// BridgeQuery holds the query parameters of GET /v1/bridge.
type BridgeQuery struct {
	From string `validate:"required"`
	To   string `validate:"required"`
}

// BridgeResponse is the body returned by GET /v1/bridge.
type BridgeResponse struct {
	From   string `json:"from"`
	To     string `json:"to"`
	Bridge string `json:"bridge,omitempty"`
	Found  bool   `json:"found"`
}

// EdgeDTO is one weighted edge of the affinity graph.
type EdgeDTO struct {
	From   string `json:"from"`
	To     string `json:"to"`
	Weight int    `json:"weight"`
}

// GraphResponse is the JSON body returned by GET /v1/graph.
type GraphResponse struct {
	Snapshot string     `json:"snapshot"`
	LoadedAt time.Time  `json:"loaded_at"`
	Stats    poet.Stats `json:"stats"`
	Vertices []string   `json:"vertices"`
	Edges    []EdgeDTO  `json:"edges"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	snap := s.store.Current()
	if snap == nil {
		writeJSON(w, http.StatusServiceUnavailable, map[string]string{"status": "loading"})
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok", "snapshot": snap.ID.String()})
}

func (s *Server) handlePoem(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, int64(s.cfg.MaxInputBytes))

	var req PoemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			writeError(w, http.StatusRequestEntityTooLarge, "request body too large")
			return
		}
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := s.validate.Struct(req); err != nil {
		writeError(w, http.StatusBadRequest, "input is required")
		return
	}

	snap := s.store.Current()
	poem, insertions := snap.Poet.Compose(req.Input)
	if s.metrics != nil {
		s.metrics.ObservePoem(len(insertions))
	}

	resp := PoemResponse{
		Poem:       poem,
		Insertions: make([]InsertionDTO, 0, len(insertions)),
		Snapshot:   snap.ID.String(),
	}
	for _, in := range insertions {
		resp.Insertions = append(resp.Insertions, InsertionDTO(in))
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleBridge(w http.ResponseWriter, r *http.Request) {
	q := BridgeQuery{From: r.URL.Query().Get("from"), To: r.URL.Query().Get("to")}
	if err := s.validate.Struct(q); err != nil {
		writeError(w, http.StatusBadRequest, "query parameters from and to are required")
		return
	}

	bridge, found := s.store.Current().Poet.Bridge(q.From, q.To)
	writeJSON(w, http.StatusOK, BridgeResponse{From: q.From, To: q.To, Bridge: bridge, Found: found})
}

func (s *Server) handleGraph(w http.ResponseWriter, r *http.Request) {
	snap := s.store.Current()

	if r.URL.Query().Get("format") == "text" {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write([]byte(snap.Poet.String() + "\n")); err != nil {
			s.log.Debug("write graph text", zap.Error(err))
		}
		return
	}

	g := snap.Poet.Graph()
	resp := GraphResponse{
		Snapshot: snap.ID.String(),
		LoadedAt: snap.LoadedAt,
		Stats:    snap.Stats,
		Vertices: g.Vertices(),
	}
	edges := g.Edges()
	resp.Edges = make([]EdgeDTO, 0, len(edges))
	for _, e := range edges {
		resp.Edges = append(resp.Edges, EdgeDTO{From: e.From, To: e.To, Weight: e.Weight})
	}
	writeJSON(w, http.StatusOK, resp)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, errorResponse{Error: msg})
}
