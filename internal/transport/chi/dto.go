package chi

import (
	"time"

	"github.com/ragdex/ragdex/internal/domain"
)

// ErrorCode is a machine-readable error identifier.
type ErrorCode string

const (
	CodeBadRequest             ErrorCode = "bad_request"
	CodeValidationFailed       ErrorCode = "validation_failed"
	CodeDocumentNotFound       ErrorCode = "document_not_found"
	CodeVectorDimMismatch      ErrorCode = "vector_dim_mismatch"
	CodeEmbeddingProviderError ErrorCode = "embedding_provider_error"
	CodeInferenceError         ErrorCode = "inference_error"
	CodeStorageError           ErrorCode = "storage_error"
	CodeInternalError          ErrorCode = "internal_error"
)

// ErrorResponse is the uniform error body.
type ErrorResponse struct {
	Code    ErrorCode `json:"code"`
	Message string    `json:"message"`
}

// AddDocumentRequest is the body of POST /documents.
type AddDocumentRequest struct {
	ID       string            `json:"id,omitempty"`
	Content  string            `json:"content"`
	Scope    string            `json:"scope,omitempty"`
	Source   string            `json:"source,omitempty"`
	Metadata map[string]string `json:"metadata,omitempty"`
}

// DocumentResponse describes an indexed document.
type DocumentResponse struct {
	ID        string            `json:"id"`
	Content   string            `json:"content"`
	Scope     string            `json:"scope"`
	Source    string            `json:"source"`
	Metadata  map[string]string `json:"metadata,omitempty"`
	CreatedAt time.Time         `json:"created_at"`
}

// DocumentListResponse is the body of GET /documents.
type DocumentListResponse struct {
	Items []DocumentResponse `json:"items"`
	Total int                `json:"total"`
}

// ClassifyRequest is the body of POST /classify.
type ClassifyRequest struct {
	Query string `json:"query"`
}

// ClassifyResponse reports the category, confidence, and the retrieval
// strategy the query would take.
type ClassifyResponse struct {
	Category   string   `json:"category"`
	Confidence float64  `json:"confidence"`
	Strategy   string   `json:"strategy"`
	Reasons    []string `json:"reasons,omitempty"`
}

// SearchRequest is the body of POST /search.
type SearchRequest struct {
	Query    string   `json:"query"`
	Scope    string   `json:"scope,omitempty"`
	TopK     int      `json:"top_k,omitempty"`
	MinScore *float64 `json:"min_score,omitempty"`
}

// SearchResultItem is a single similarity hit.
type SearchResultItem struct {
	ID      string  `json:"id"`
	Content string  `json:"content"`
	Score   float64 `json:"score"`
}

// SearchResponse is the body of the search reply.
type SearchResponse struct {
	Results []SearchResultItem `json:"results"`
}

// QueryRequest is the body of POST /query.
type QueryRequest struct {
	Query  string `json:"query"`
	Scope  string `json:"scope,omitempty"`
	Stream bool   `json:"stream,omitempty"`
}

// QuerySource attributes a piece of retrieved context.
type QuerySource struct {
	Kind  string  `json:"kind"` // "local" or "web"
	Title string  `json:"title,omitempty"`
	ID    string  `json:"id,omitempty"`
	URL   string  `json:"url,omitempty"`
	Score float64 `json:"score,omitempty"`
}

// QueryResponse is the non-streaming answer.
type QueryResponse struct {
	Answer   string        `json:"answer"`
	Category string        `json:"category"`
	Strategy string        `json:"strategy"`
	Degraded bool          `json:"degraded,omitempty"`
	Sources  []QuerySource `json:"sources,omitempty"`
}

// HealthResponse is the body of GET /health.
type HealthResponse struct {
	Status string            `json:"status"`
	Checks map[string]string `json:"checks"`
}

func documentToDTO(doc *domain.Document) DocumentResponse {
	return DocumentResponse{
		ID:        doc.ID(),
		Content:   doc.Content(),
		Scope:     doc.Scope(),
		Source:    string(doc.Source()),
		Metadata:  doc.Metadata(),
		CreatedAt: doc.CreatedAt(),
	}
}

func promptSources(prompt domain.Prompt) []QuerySource {
	if len(prompt.Local) == 0 && len(prompt.Web) == 0 {
		return nil
	}
	sources := make([]QuerySource, 0, len(prompt.Local)+len(prompt.Web))
	for _, hit := range prompt.Local {
		sources = append(sources, QuerySource{
			Kind:  "local",
			ID:    hit.Document.ID(),
			Score: hit.Score,
		})
	}
	for _, hit := range prompt.Web {
		sources = append(sources, QuerySource{
			Kind:  "web",
			Title: hit.Title,
			URL:   hit.SourceURL,
		})
	}
	return sources
}
