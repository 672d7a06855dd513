package server

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/neox5/statmeta/internal/metric"
)

// descriptorResponse is the JSON form of a registry entry.
type descriptorResponse struct {
	Name       string      `json:"name"`
	Unit       string      `json:"unit"`
	UnitSuffix string      `json:"unit_suffix"`
	StatType   metric.Kind `json:"stat_type"`
	Known      bool        `json:"known"`
}

type unitResponse struct {
	Unit   string `json:"unit"`
	Suffix string `json:"suffix"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func newDescriptorResponse(name string, d metric.Descriptor, known bool) descriptorResponse {
	return descriptorResponse{
		Name:       name,
		Unit:       string(d.Unit),
		UnitSuffix: d.UnitSuffix,
		StatType:   d.Kind,
		Known:      known,
	}
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"status":  "ok",
		"entries": s.registry.Len(),
	})
}

func (s *Server) handleLookup(w http.ResponseWriter, r *http.Request) {
	name := r.PathValue("name")
	known := s.registry.Has(name)
	writeJSON(w, http.StatusOK, newDescriptorResponse(name, s.registry.Lookup(name), known))
}

func (s *Server) handleList(w http.ResponseWriter, r *http.Request) {
	out := make([]descriptorResponse, 0, s.registry.Len())
	for name, d := range s.registry.All() {
		out = append(out, newDescriptorResponse(name, d, true))
	}
	writeJSON(w, http.StatusOK, out)
}

func (s *Server) handleUnits(w http.ResponseWriter, r *http.Request) {
	entries := s.resolver.Entries()
	out := make([]unitResponse, len(entries))
	for i, e := range entries {
		out[i] = unitResponse{Unit: string(e.Unit), Suffix: e.Suffix}
	}
	writeJSON(w, http.StatusOK, out)
}

func (s *Server) handleStatus(w http.ResponseWriter, r *http.Request) {
	status, err := s.status()
	if err != nil {
		writeJSON(w, http.StatusServiceUnavailable, errorResponse{Error: err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, status)
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Warn("failed to write response", "error", err)
	}
}
