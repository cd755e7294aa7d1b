package domain

import "errors"

var (
	// ErrDocumentNotFound signals a missing document.
	ErrDocumentNotFound = errors.New("document not found")
	// ErrVectorDimMismatch signals a vector dimension mismatch.
	ErrVectorDimMismatch = errors.New("vector dimension mismatch")
	// ErrNonFiniteVector signals a vector containing NaN or Inf components.
	ErrNonFiniteVector = errors.New("non-finite vector")
	// ErrStorage signals an I/O failure in a persistent store backend.
	ErrStorage = errors.New("storage failure")
	// ErrInference signals a language-model runtime failure.
	ErrInference = errors.New("inference failure")
	// ErrWebSearchUnavailable signals that the web search collaborator
	// failed or timed out. The router absorbs it into the Direct fallback;
	// it reaches callers only from the web search transport itself.
	ErrWebSearchUnavailable = errors.New("web search unavailable")
	// ErrEmbeddingProviderError signals an embedding provider failure.
	ErrEmbeddingProviderError = errors.New("embedding provider error")
)
