// Package chi exposes the HTTP API: document management, similarity
// search, query classification, and the answer pipeline.
package chi

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	chirouter "github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/ragdex/ragdex/internal/domain"
	logpkg "github.com/ragdex/ragdex/internal/logger"
	"github.com/ragdex/ragdex/internal/metrics"
	"github.com/ragdex/ragdex/internal/usecase/health"
	"github.com/ragdex/ragdex/internal/usecase/search"
)

// DefaultScope isolates documents of callers that never set a scope.
const DefaultScope = "default"

// errorHandler tries to handle a domain error. Returns true if handled.
type errorHandler func(w http.ResponseWriter, err error, msg string) bool

// Server holds the HTTP handlers.
type Server struct {
	documents     DocumentService
	search        SearchService
	router        RouterService
	health        HealthService
	apiKeys       []string
	logger        *zap.Logger
	errorHandlers []errorHandler
}

// NewServer creates an HTTP API server.
func NewServer(
	documents DocumentService,
	searchSvc SearchService,
	routerSvc RouterService,
	healthSvc HealthService,
	apiKeys []string,
	logger *zap.Logger,
) *Server {
	s := &Server{
		documents: documents,
		search:    searchSvc,
		router:    routerSvc,
		health:    healthSvc,
		apiKeys:   apiKeys,
		logger:    logger,
	}
	s.errorHandlers = []errorHandler{
		sentinelHandler(domain.ErrDocumentNotFound, http.StatusNotFound, CodeDocumentNotFound),
		sentinelHandler(domain.ErrVectorDimMismatch, http.StatusBadRequest, CodeVectorDimMismatch),
		sentinelHandler(domain.ErrNonFiniteVector, http.StatusBadRequest, CodeValidationFailed),
		sentinelHandler(domain.ErrEmbeddingProviderError, http.StatusBadGateway, CodeEmbeddingProviderError),
		sentinelHandler(domain.ErrInference, http.StatusBadGateway, CodeInferenceError),
		sentinelHandler(domain.ErrStorage, http.StatusInternalServerError, CodeStorageError),
	}
	return s
}

// Routes builds the chi router with middleware and all endpoints.
func (s *Server) Routes() *chirouter.Mux {
	r := chirouter.NewRouter()
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.Recoverer)
	r.Use(requestLogMiddleware(s.logger))
	r.Use(metrics.Middleware())
	r.Use(BearerAuthMiddleware(s.apiKeys))

	r.Get("/health", s.handleHealth)
	r.Method(http.MethodGet, "/metrics", promhttp.Handler())

	r.Post("/classify", s.handleClassify)
	r.Post("/search", s.handleSearch)
	r.Post("/query", s.handleQuery)

	r.Route("/documents", func(r chirouter.Router) {
		r.Post("/", s.handleAddDocument)
		r.Get("/", s.handleListDocuments)
		r.Get("/{id}", s.handleGetDocument)
		r.Delete("/{id}", s.handleDeleteDocument)
	})

	return r
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	report := s.health.Check(r.Context())

	checks := make(map[string]string, len(report.Checks))
	for name, result := range report.Checks {
		checks[name] = string(result)
	}

	status := http.StatusOK
	if report.Status == health.Unhealthy {
		status = http.StatusServiceUnavailable
	}
	writeJSON(w, status, HealthResponse{Status: string(report.Status), Checks: checks})
}

func (s *Server) handleClassify(w http.ResponseWriter, r *http.Request) {
	var req ClassifyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, CodeBadRequest, "invalid request body: "+err.Error())
		return
	}
	if req.Query == "" {
		writeError(w, http.StatusBadRequest, CodeValidationFailed, "query is required")
		return
	}

	cls := s.router.Classify(req.Query)
	writeJSON(w, http.StatusOK, ClassifyResponse{
		Category:   string(cls.Category),
		Confidence: cls.Confidence,
		Strategy:   string(s.router.Strategy(cls.Category)),
		Reasons:    cls.MatchedReasons,
	})
}

func (s *Server) handleSearch(w http.ResponseWriter, r *http.Request) {
	var req SearchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, CodeBadRequest, "invalid request body: "+err.Error())
		return
	}
	if req.Query == "" {
		writeError(w, http.StatusBadRequest, CodeValidationFailed, "query is required")
		return
	}

	opts := search.Options{TopK: req.TopK, MinScore: req.MinScore}
	if req.MinScore != nil && (*req.MinScore < 0 || *req.MinScore > 1) {
		writeError(w, http.StatusBadRequest, CodeValidationFailed, "min_score must be between 0 and 1")
		return
	}

	results, err := s.search.Search(r.Context(), req.Query, scopeOr(req.Scope), opts)
	if err != nil {
		s.handleDomainError(w, r, err)
		return
	}

	items := make([]SearchResultItem, len(results))
	for i, hit := range results {
		items[i] = SearchResultItem{
			ID:      hit.Document.ID(),
			Content: hit.Document.Content(),
			Score:   hit.Score,
		}
	}
	writeJSON(w, http.StatusOK, SearchResponse{Results: items})
}

func (s *Server) handleQuery(w http.ResponseWriter, r *http.Request) {
	var req QueryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, CodeBadRequest, "invalid request body: "+err.Error())
		return
	}
	if req.Query == "" {
		writeError(w, http.StatusBadRequest, CodeValidationFailed, "query is required")
		return
	}

	if req.Stream {
		s.streamQuery(w, r, req)
		return
	}

	ans, err := s.router.Answer(r.Context(), req.Query, scopeOr(req.Scope))
	if err != nil {
		s.handleDomainError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, QueryResponse{
		Answer:   ans.Text,
		Category: string(ans.Classification.Category),
		Strategy: string(ans.Prompt.Strategy),
		Degraded: ans.Prompt.Degraded,
		Sources:  promptSources(ans.Prompt),
	})
}

// streamQuery sends the answer as server-sent events, one token per
// event, with a final [DONE] marker.
func (s *Server) streamQuery(w http.ResponseWriter, r *http.Request, req QueryRequest) {
	flusher, ok := w.(http.Flusher)
	if !ok {
		writeError(w, http.StatusInternalServerError, CodeInternalError, "streaming unsupported")
		return
	}

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.WriteHeader(http.StatusOK)

	_, err := s.router.AnswerStream(r.Context(), req.Query, scopeOr(req.Scope), func(token string) error {
		payload, err := json.Marshal(map[string]string{"token": token})
		if err != nil {
			return err
		}
		if _, err := fmt.Fprintf(w, "data: %s\n\n", payload); err != nil {
			return err
		}
		flusher.Flush()
		return nil
	})
	if err != nil {
		// Headers are gone; surface the failure in-stream.
		s.logger.Error("query stream failed", zap.Error(err))
		fmt.Fprintf(w, "data: {\"error\":%q}\n\n", safeDomainMessage(err))
		flusher.Flush()
		return
	}

	fmt.Fprint(w, "data: [DONE]\n\n")
	flusher.Flush()
}

func (s *Server) handleAddDocument(w http.ResponseWriter, r *http.Request) {
	var req AddDocumentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, CodeBadRequest, "invalid request body: "+err.Error())
		return
	}
	if req.Content == "" {
		writeError(w, http.StatusBadRequest, CodeValidationFailed, "content is required")
		return
	}

	doc, err := s.documents.Add(r.Context(), req.ID, req.Content, scopeOr(req.Scope), domain.Source(req.Source), req.Metadata)
	if err != nil {
		if isValidationError(err) {
			writeError(w, http.StatusBadRequest, CodeValidationFailed, err.Error())
			return
		}
		s.handleDomainError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, documentToDTO(&doc))
}

func (s *Server) handleListDocuments(w http.ResponseWriter, r *http.Request) {
	scope := scopeOr(r.URL.Query().Get("scope"))
	limit := queryInt(r, "limit", 0)
	offset := queryInt(r, "offset", 0)

	docs, err := s.documents.List(r.Context(), scope, limit, offset)
	if err != nil {
		s.handleDomainError(w, r, err)
		return
	}
	total, err := s.documents.Count(r.Context(), scope)
	if err != nil {
		s.handleDomainError(w, r, err)
		return
	}

	items := make([]DocumentResponse, len(docs))
	for i := range docs {
		items[i] = documentToDTO(&docs[i])
	}
	writeJSON(w, http.StatusOK, DocumentListResponse{Items: items, Total: total})
}

func (s *Server) handleGetDocument(w http.ResponseWriter, r *http.Request) {
	id := chirouter.URLParam(r, "id")
	scope := scopeOr(r.URL.Query().Get("scope"))

	doc, err := s.documents.Get(r.Context(), scope, id)
	if err != nil {
		s.handleDomainError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, documentToDTO(&doc))
}

func (s *Server) handleDeleteDocument(w http.ResponseWriter, r *http.Request) {
	id := chirouter.URLParam(r, "id")
	scope := scopeOr(r.URL.Query().Get("scope"))

	deleted, err := s.documents.Delete(r.Context(), scope, id)
	if err != nil {
		s.handleDomainError(w, r, err)
		return
	}
	if !deleted {
		writeError(w, http.StatusNotFound, CodeDocumentNotFound, domain.ErrDocumentNotFound.Error())
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// requestLogMiddleware emits one canonical log line per request and
// stores a request-scoped logger in the context.
func requestLogMiddleware(logger *zap.Logger) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()

			requestID := chimiddleware.GetReqID(r.Context())
			if requestID != "" {
				w.Header().Set("X-Request-ID", requestID)
			}

			reqLogger := logger.With(zap.String("request_id", requestID))
			ctx := logpkg.ContextWithLogger(r.Context(), reqLogger)

			ww := chimiddleware.NewWrapResponseWriter(w, r.ProtoMajor)
			next.ServeHTTP(ww, r.WithContext(ctx))

			reqLogger.Info("http_request",
				zap.String("method", r.Method),
				zap.String("path", r.URL.Path),
				zap.Int("status", ww.Status()),
				zap.Duration("latency", time.Since(start)),
				zap.Int("response_bytes", ww.BytesWritten()),
			)
		})
	}
}

func scopeOr(scope string) string {
	if scope == "" {
		return DefaultScope
	}
	return scope
}

func queryInt(r *http.Request, name string, fallback int) int {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return fallback
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return fallback
	}
	return v
}

// isValidationError marks document construction failures that should map
// to 400 rather than 500.
func isValidationError(err error) bool {
	for _, sentinel := range []error{
		domain.ErrDocumentNotFound,
		domain.ErrVectorDimMismatch,
		domain.ErrNonFiniteVector,
		domain.ErrEmbeddingProviderError,
		domain.ErrInference,
		domain.ErrStorage,
		domain.ErrWebSearchUnavailable,
	} {
		if errors.Is(err, sentinel) {
			return false
		}
	}
	return true
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code ErrorCode, message string) {
	writeJSON(w, status, ErrorResponse{Code: code, Message: message})
}

// safeDomainMessage maps an error to a message safe to expose. Anything
// that is not a known sentinel reads as "internal error".
func safeDomainMessage(err error) string {
	sentinels := []error{
		domain.ErrDocumentNotFound,
		domain.ErrVectorDimMismatch,
		domain.ErrNonFiniteVector,
		domain.ErrEmbeddingProviderError,
		domain.ErrInference,
		domain.ErrStorage,
		domain.ErrWebSearchUnavailable,
	}
	for _, s := range sentinels {
		if errors.Is(err, s) {
			return s.Error()
		}
	}
	return "internal error"
}

func sentinelHandler(sentinel error, status int, code ErrorCode) errorHandler {
	return func(w http.ResponseWriter, err error, msg string) bool {
		if !errors.Is(err, sentinel) {
			return false
		}
		writeError(w, status, code, msg)
		return true
	}
}

func (s *Server) handleDomainError(w http.ResponseWriter, r *http.Request, err error) {
	log := logpkg.FromContext(r.Context())
	msg := safeDomainMessage(err)
	for _, h := range s.errorHandlers {
		if h(w, err, msg) {
			log.Warn("domain error", zap.Error(err))
			return
		}
	}
	log.Error("internal error", zap.Error(err))
	writeError(w, http.StatusInternalServerError, CodeInternalError, "internal error")
}
