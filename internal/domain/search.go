package domain

// SearchResult is a single similarity search hit. The document is a copy;
// mutating it does not touch the store.
type SearchResult struct {
	Document Document
	Score    float64 // cosine similarity, higher is better
}

// WebResult is a single hit from the web search collaborator.
type WebResult struct {
	Title     string
	Snippet   string
	SourceURL string
}

// Prompt is the assembled, possibly augmented prompt handed to the
// inference invoker.
type Prompt struct {
	Text     string
	Strategy Strategy
	// Local and Web record the retrieval provenance for callers that want
	// to surface sources. Both empty under StrategyDirect.
	Local []SearchResult
	Web   []WebResult
	// Degraded is set when web retrieval failed and the router fell back
	// to the direct prompt. A signal, not an error: the caller still gets
	// an answer.
	Degraded bool
}
