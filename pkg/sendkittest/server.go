package sendkittest

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

// Request is a request received by the fake server.
type Request struct {
	Header http.Header
	Method string
	Path   string
	Body   []byte
}

// Decode unmarshals the JSON body into v.
func (r Request) Decode(v any) error {
	return json.Unmarshal(r.Body, v)
}

// Server is a fake SendKit API backed by httptest.Server.
type Server struct {
	*httptest.Server

	failure  *failure
	apiKey   string
	requests []Request
	mu       sync.Mutex
}

type failure struct {
	body   string
	status int
}

// NewServer starts a fake API that accepts apiKey as its only bearer token.
// Callers must Close it.
func NewServer(apiKey string) *Server {
	s := &Server{apiKey: apiKey}
	s.Server = httptest.NewServer(s.routes())
	return s
}

func (s *Server) routes() http.Handler {
	r := chi.NewRouter()
	r.Use(s.record, s.authorize, s.injectFailure)
	r.Post("/v1/emails", s.sendEmail)
	r.Post("/v1/emails/mime", s.sendMime)
	r.NotFound(func(w http.ResponseWriter, _ *http.Request) {
		writeError(w, http.StatusNotFound, "not_found", "The requested endpoint was not found.")
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, _ *http.Request) {
		writeError(w, http.StatusMethodNotAllowed, "method_not_allowed", "Method is not allowed.")
	})
	return r
}

// Requests returns a copy of all recorded requests in arrival order.
func (s *Server) Requests() []Request {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Request, len(s.requests))
	copy(out, s.requests)
	return out
}

// LastRequest returns the most recent request, if any.
func (s *Server) LastRequest() (Request, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.requests) == 0 {
		return Request{}, false
	}
	return s.requests[len(s.requests)-1], true
}

// FailWith makes every subsequent authorized request answer with status and raw body.
func (s *Server) FailWith(status int, body string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.failure = &failure{status: status, body: body}
}

// Reset clears recorded requests and any configured failure.
func (s *Server) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.requests = nil
	s.failure = nil
}

func (s *Server) record(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		_ = r.Body.Close()
		r.Body = io.NopCloser(bytes.NewReader(body))

		s.mu.Lock()
		s.requests = append(s.requests, Request{
			Method: r.Method,
			Path:   r.URL.Path,
			Header: r.Header.Clone(),
			Body:   body,
		})
		s.mu.Unlock()

		next.ServeHTTP(w, r)
	})
}

func (s *Server) authorize(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Bearer "+s.apiKey {
			writeError(w, http.StatusUnauthorized, "invalid_api_key", "API key is invalid.")
			return
		}
		next.ServeHTTP(w, r)
	})
}

func (s *Server) injectFailure(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s.mu.Lock()
		f := s.failure
		s.mu.Unlock()

		if f == nil {
			next.ServeHTTP(w, r)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(f.status)
		_, _ = io.WriteString(w, f.body)
	})
}

type sendEmailBody struct {
	From    string   `json:"from"`
	Subject string   `json:"subject"`
	To      []string `json:"to"`
}

func (s *Server) sendEmail(w http.ResponseWriter, r *http.Request) {
	var body sendEmailBody
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json", "Request body is not valid JSON.")
		return
	}
	switch {
	case body.From == "":
		writeError(w, http.StatusUnprocessableEntity, "validation_error", "The from field is required.")
	case len(body.To) == 0:
		writeError(w, http.StatusUnprocessableEntity, "validation_error", "The to field is required.")
	default:
		writeJSON(w, http.StatusOK, map[string]string{"id": uuid.NewString()})
	}
}

type sendMimeBody struct {
	EnvelopeFrom string `json:"envelope_from"`
	EnvelopeTo   string `json:"envelope_to"`
	RawMessage   string `json:"raw_message"`
}

func (s *Server) sendMime(w http.ResponseWriter, r *http.Request) {
	var body sendMimeBody
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json", "Request body is not valid JSON.")
		return
	}
	switch {
	case body.EnvelopeFrom == "" || body.EnvelopeTo == "":
		writeError(w, http.StatusUnprocessableEntity, "validation_error", "The envelope fields are required.")
	case body.RawMessage == "":
		writeError(w, http.StatusUnprocessableEntity, "validation_error", "The raw_message field is required.")
	default:
		writeJSON(w, http.StatusOK, map[string]string{"id": uuid.NewString()})
	}
}

func writeError(w http.ResponseWriter, status int, name, message string) {
	writeJSON(w, status, map[string]any{
		"name":       name,
		"message":    message,
		"statusCode": status,
	})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
