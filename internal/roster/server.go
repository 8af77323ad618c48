package roster

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Server serves a fixed collection the way json-server does, so the TUI can
// run against a local fixture.
type Server struct {
	chars    []Character
	byID     map[string]int
	registry *prometheus.Registry
	requests *prometheus.CounterVec
	mux      *http.ServeMux
}

// NewServer builds a handler for chars. The slice is copied.
func NewServer(chars []Character) *Server {
	dup := make([]Character, len(chars))
	copy(dup, chars)
	byID := make(map[string]int, len(dup))
	for i, c := range dup {
		byID[c.ID] = i
	}

	reg := prometheus.NewRegistry()
	requests := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "roster",
		Name:      "http_requests_total",
		Help:      "Requests served by the fixture server, by route and status code.",
	}, []string{"route", "code"})
	reg.MustRegister(requests)

	s := &Server{
		chars:    dup,
		byID:     byID,
		registry: reg,
		requests: requests,
		mux:      http.NewServeMux(),
	}
	s.mux.HandleFunc("GET /characters", s.instrument("/characters", s.handleList))
	s.mux.HandleFunc("GET /characters/{id}", s.instrument("/characters/{id}", s.handleGet))
	s.mux.Handle("GET /metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))
	return s
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.mux.ServeHTTP(w, r)
}

// Registry exposes the metrics registry.
func (s *Server) Registry() *prometheus.Registry {
	return s.registry
}

func (s *Server) handleList(w http.ResponseWriter, _ *http.Request) int {
	return writeJSON(w, http.StatusOK, s.chars)
}

func (s *Server) handleGet(w http.ResponseWriter, r *http.Request) int {
	idx, ok := s.byID[r.PathValue("id")]
	if !ok {
		return writeJSON(w, http.StatusNotFound, map[string]string{})
	}
	return writeJSON(w, http.StatusOK, s.chars[idx])
}

func (s *Server) instrument(route string, h func(http.ResponseWriter, *http.Request) int) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		code := h(w, r)
		s.requests.WithLabelValues(route, strconv.Itoa(code)).Inc()
	}
}

func writeJSON(w http.ResponseWriter, code int, payload any) int {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(payload)
	return code
}
