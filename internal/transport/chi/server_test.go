package chi

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"go.uber.org/zap"

	"github.com/ragdex/ragdex/internal/domain"
	"github.com/ragdex/ragdex/internal/usecase/health"
	"github.com/ragdex/ragdex/internal/usecase/router"
)

type serverMocks struct {
	documents *mockDocuments
	search    *mockSearch
	router    *mockRouter
	health    *mockHealth
}

func newTestServer(t *testing.T, mocks serverMocks) *httptest.Server {
	t.Helper()
	if mocks.documents == nil {
		mocks.documents = &mockDocuments{}
	}
	if mocks.search == nil {
		mocks.search = &mockSearch{}
	}
	if mocks.router == nil {
		mocks.router = &mockRouter{}
	}
	if mocks.health == nil {
		mocks.health = &mockHealth{report: health.Report{
			Status: health.Healthy,
			Checks: map[string]health.CheckResult{"store": health.CheckOK},
		}}
	}

	srv := NewServer(mocks.documents, mocks.search, mocks.router, mocks.health, nil, zap.NewNop())
	ts := httptest.NewServer(srv.Routes())
	t.Cleanup(ts.Close)
	return ts
}

func postJSON(t *testing.T, url string, body any) *http.Response {
	t.Helper()
	payload, err := json.Marshal(body)
	if err != nil {
		t.Fatalf("marshal body: %v", err)
	}
	resp, err := http.Post(url, "application/json", bytes.NewReader(payload))
	if err != nil {
		t.Fatalf("POST %s: %v", url, err)
	}
	return resp
}

func decodeBody[T any](t *testing.T, resp *http.Response) T {
	t.Helper()
	defer resp.Body.Close()
	var out T
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	return out
}

func TestHealthEndpoint(t *testing.T) {
	ts := newTestServer(t, serverMocks{})

	resp, err := http.Get(ts.URL + "/health")
	if err != nil {
		t.Fatalf("GET /health: %v", err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}

	body := decodeBody[HealthResponse](t, resp)
	if body.Status != "ok" {
		t.Errorf("status = %q, want ok", body.Status)
	}
	if body.Checks["store"] != "ok" {
		t.Errorf("store check = %q, want ok", body.Checks["store"])
	}
}

func TestHealthEndpointUnhealthy(t *testing.T) {
	ts := newTestServer(t, serverMocks{health: &mockHealth{report: health.Report{
		Status: health.Unhealthy,
		Checks: map[string]health.CheckResult{"store": health.CheckError},
	}}})

	resp, err := http.Get(ts.URL + "/health")
	if err != nil {
		t.Fatalf("GET /health: %v", err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusServiceUnavailable {
		t.Errorf("status = %d, want 503", resp.StatusCode)
	}
}

func TestClassifyEndpoint(t *testing.T) {
	ts := newTestServer(t, serverMocks{router: &mockRouter{
		cls: domain.Classification{
			Category:       domain.CategoryMath,
			Confidence:     0.84,
			MatchedReasons: []string{"arith_expr"},
		},
		strategy: domain.StrategyDirect,
	}})

	resp := postJSON(t, ts.URL+"/classify", ClassifyRequest{Query: "What is 2 + 2?"})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}

	body := decodeBody[ClassifyResponse](t, resp)
	if body.Category != "math" {
		t.Errorf("category = %q, want math", body.Category)
	}
	if body.Strategy != "direct" {
		t.Errorf("strategy = %q, want direct", body.Strategy)
	}
	if len(body.Reasons) != 1 || body.Reasons[0] != "arith_expr" {
		t.Errorf("reasons = %v", body.Reasons)
	}
}

func TestClassifyEndpointRequiresQuery(t *testing.T) {
	ts := newTestServer(t, serverMocks{})

	resp := postJSON(t, ts.URL+"/classify", ClassifyRequest{})
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", resp.StatusCode)
	}
	body := decodeBody[ErrorResponse](t, resp)
	if body.Code != CodeValidationFailed {
		t.Errorf("code = %q, want %q", body.Code, CodeValidationFailed)
	}
}

func TestSearchEndpoint(t *testing.T) {
	doc, err := domain.NewDocument("d1", "Paris is the capital of France", "default", domain.SourceManual, nil)
	if err != nil {
		t.Fatalf("NewDocument: %v", err)
	}
	mock := &mockSearch{results: []domain.SearchResult{{Document: doc, Score: 0.91}}}
	ts := newTestServer(t, serverMocks{search: mock})

	minScore := 0.7
	resp := postJSON(t, ts.URL+"/search", SearchRequest{Query: "capital of France", TopK: 3, MinScore: &minScore})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}

	body := decodeBody[SearchResponse](t, resp)
	if len(body.Results) != 1 {
		t.Fatalf("got %d results, want 1", len(body.Results))
	}
	if body.Results[0].ID != "d1" || body.Results[0].Score != 0.91 {
		t.Errorf("unexpected result: %+v", body.Results[0])
	}
	if mock.lastOpts.TopK != 3 || mock.lastOpts.MinScore == nil || *mock.lastOpts.MinScore != 0.7 {
		t.Errorf("options not forwarded: %+v", mock.lastOpts)
	}
}

func TestSearchEndpointExplicitZeroMinScore(t *testing.T) {
	mock := &mockSearch{}
	ts := newTestServer(t, serverMocks{search: mock})

	minScore := 0.0
	resp := postJSON(t, ts.URL+"/search", SearchRequest{Query: "q", MinScore: &minScore})
	resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}
	if mock.lastOpts.MinScore == nil || *mock.lastOpts.MinScore != 0 {
		t.Errorf("explicit zero min_score not forwarded: %+v", mock.lastOpts)
	}
}

func TestSearchEndpointOmittedMinScore(t *testing.T) {
	mock := &mockSearch{}
	ts := newTestServer(t, serverMocks{search: mock})

	resp := postJSON(t, ts.URL+"/search", SearchRequest{Query: "q"})
	resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}
	if mock.lastOpts.MinScore != nil {
		t.Errorf("omitted min_score forwarded as %v, want nil", *mock.lastOpts.MinScore)
	}
}

func TestSearchEndpointRejectsBadMinScore(t *testing.T) {
	ts := newTestServer(t, serverMocks{})

	minScore := 1.5
	resp := postJSON(t, ts.URL+"/search", SearchRequest{Query: "q", MinScore: &minScore})
	resp.Body.Close()
	if resp.StatusCode != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", resp.StatusCode)
	}
}

func TestSearchEndpointEmbeddingProviderError(t *testing.T) {
	ts := newTestServer(t, serverMocks{search: &mockSearch{err: domain.ErrEmbeddingProviderError}})

	resp := postJSON(t, ts.URL+"/search", SearchRequest{Query: "q"})
	if resp.StatusCode != http.StatusBadGateway {
		t.Fatalf("status = %d, want 502", resp.StatusCode)
	}
	body := decodeBody[ErrorResponse](t, resp)
	if body.Code != CodeEmbeddingProviderError {
		t.Errorf("code = %q", body.Code)
	}
}

func TestQueryEndpoint(t *testing.T) {
	doc, err := domain.NewDocument("d1", "context chunk", "default", domain.SourceManual, nil)
	if err != nil {
		t.Fatalf("NewDocument: %v", err)
	}
	ts := newTestServer(t, serverMocks{router: &mockRouter{
		answer: router.Answer{
			Text:           "Paris.",
			Classification: domain.Classification{Category: domain.CategoryFactual, Confidence: 0.8},
			Prompt: domain.Prompt{
				Strategy: domain.StrategyLocalThenWeb,
				Local:    []domain.SearchResult{{Document: doc, Score: 0.9}},
				Web:      []domain.WebResult{{Title: "France", SourceURL: "https://en.wikipedia.org/wiki/France"}},
			},
		},
	}})

	resp := postJSON(t, ts.URL+"/query", QueryRequest{Query: "What is the capital of France?"})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}

	body := decodeBody[QueryResponse](t, resp)
	if body.Answer != "Paris." {
		t.Errorf("answer = %q", body.Answer)
	}
	if body.Category != "factual" || body.Strategy != "local_then_web" {
		t.Errorf("category/strategy = %q/%q", body.Category, body.Strategy)
	}
	if len(body.Sources) != 2 {
		t.Fatalf("got %d sources, want 2", len(body.Sources))
	}
	if body.Sources[0].Kind != "local" || body.Sources[1].Kind != "web" {
		t.Errorf("sources = %+v", body.Sources)
	}
}

func TestQueryEndpointDegraded(t *testing.T) {
	ts := newTestServer(t, serverMocks{router: &mockRouter{
		answer: router.Answer{
			Text:           "best effort",
			Classification: domain.Classification{Category: domain.CategoryFactual},
			Prompt:         domain.Prompt{Strategy: domain.StrategyLocalThenWeb, Degraded: true},
		},
	}})

	resp := postJSON(t, ts.URL+"/query", QueryRequest{Query: "Who invented the telephone?"})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}
	body := decodeBody[QueryResponse](t, resp)
	if !body.Degraded {
		t.Error("degraded flag not surfaced")
	}
}

func TestQueryEndpointInferenceError(t *testing.T) {
	ts := newTestServer(t, serverMocks{router: &mockRouter{err: domain.ErrInference}})

	resp := postJSON(t, ts.URL+"/query", QueryRequest{Query: "hello"})
	if resp.StatusCode != http.StatusBadGateway {
		t.Fatalf("status = %d, want 502", resp.StatusCode)
	}
	body := decodeBody[ErrorResponse](t, resp)
	if body.Code != CodeInferenceError {
		t.Errorf("code = %q", body.Code)
	}
}

func TestQueryEndpointStream(t *testing.T) {
	ts := newTestServer(t, serverMocks{router: &mockRouter{tokens: []string{"Pa", "ris", "."}}})

	resp := postJSON(t, ts.URL+"/query", QueryRequest{Query: "capital of France", Stream: true})
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}
	if ct := resp.Header.Get("Content-Type"); ct != "text/event-stream" {
		t.Errorf("content type = %q", ct)
	}

	buf := new(bytes.Buffer)
	if _, err := buf.ReadFrom(resp.Body); err != nil {
		t.Fatalf("read stream: %v", err)
	}
	raw := buf.String()

	var text strings.Builder
	for _, line := range strings.Split(raw, "\n") {
		if !strings.HasPrefix(line, "data: ") || line == "data: [DONE]" {
			continue
		}
		var event struct {
			Token string `json:"token"`
		}
		if err := json.Unmarshal([]byte(strings.TrimPrefix(line, "data: ")), &event); err != nil {
			t.Fatalf("bad event %q: %v", line, err)
		}
		text.WriteString(event.Token)
	}
	if text.String() != "Paris." {
		t.Errorf("streamed text = %q", text.String())
	}
	if !strings.Contains(raw, "data: [DONE]") {
		t.Errorf("missing done marker: %q", raw)
	}
}

func TestAddDocumentEndpoint(t *testing.T) {
	docs := &mockDocuments{}
	ts := newTestServer(t, serverMocks{documents: docs})

	resp := postJSON(t, ts.URL+"/documents", AddDocumentRequest{
		ID:      "d1",
		Content: "Go is a statically typed language",
		Scope:   "notes",
	})
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("status = %d, want 201", resp.StatusCode)
	}

	body := decodeBody[DocumentResponse](t, resp)
	if body.ID != "d1" || body.Scope != "notes" {
		t.Errorf("unexpected document: %+v", body)
	}
	if docs.lastScope != "notes" {
		t.Errorf("scope not forwarded: %q", docs.lastScope)
	}
}

func TestAddDocumentEndpointRequiresContent(t *testing.T) {
	ts := newTestServer(t, serverMocks{})

	resp := postJSON(t, ts.URL+"/documents", AddDocumentRequest{ID: "d1"})
	resp.Body.Close()
	if resp.StatusCode != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", resp.StatusCode)
	}
}

func TestGetDocumentEndpointNotFound(t *testing.T) {
	ts := newTestServer(t, serverMocks{documents: &mockDocuments{err: domain.ErrDocumentNotFound}})

	resp, err := http.Get(ts.URL + "/documents/missing")
	if err != nil {
		t.Fatalf("GET: %v", err)
	}
	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", resp.StatusCode)
	}
	body := decodeBody[ErrorResponse](t, resp)
	if body.Code != CodeDocumentNotFound {
		t.Errorf("code = %q", body.Code)
	}
}

func TestGetDocumentEndpointDefaultScope(t *testing.T) {
	doc := domain.ReconstructDocument("d1", "content", "default", domain.SourceManual, nil, time.Now(), nil)
	docs := &mockDocuments{doc: doc}
	ts := newTestServer(t, serverMocks{documents: docs})

	resp, err := http.Get(ts.URL + "/documents/d1")
	if err != nil {
		t.Fatalf("GET: %v", err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}
	if docs.lastScope != DefaultScope {
		t.Errorf("scope = %q, want %q", docs.lastScope, DefaultScope)
	}
}

func TestDeleteDocumentEndpoint(t *testing.T) {
	ts := newTestServer(t, serverMocks{documents: &mockDocuments{deleted: true}})

	req, err := http.NewRequest(http.MethodDelete, ts.URL+"/documents/d1", nil)
	if err != nil {
		t.Fatalf("NewRequest: %v", err)
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("DELETE: %v", err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusNoContent {
		t.Errorf("status = %d, want 204", resp.StatusCode)
	}
}

func TestDeleteDocumentEndpointMissing(t *testing.T) {
	ts := newTestServer(t, serverMocks{documents: &mockDocuments{deleted: false}})

	req, err := http.NewRequest(http.MethodDelete, ts.URL+"/documents/ghost", nil)
	if err != nil {
		t.Fatalf("NewRequest: %v", err)
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("DELETE: %v", err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusNotFound {
		t.Errorf("status = %d, want 404", resp.StatusCode)
	}
}

func TestListDocumentsEndpoint(t *testing.T) {
	a := domain.ReconstructDocument("a", "first", "default", domain.SourceManual, nil, time.Now(), nil)
	b := domain.ReconstructDocument("b", "second", "default", domain.SourceFile, nil, time.Now(), nil)
	ts := newTestServer(t, serverMocks{documents: &mockDocuments{docs: []domain.Document{a, b}, count: 2}})

	resp, err := http.Get(ts.URL + "/documents?limit=10")
	if err != nil {
		t.Fatalf("GET: %v", err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}

	body := decodeBody[DocumentListResponse](t, resp)
	if len(body.Items) != 2 || body.Total != 2 {
		t.Errorf("items = %d total = %d", len(body.Items), body.Total)
	}
	if body.Items[0].ID != "a" || body.Items[1].ID != "b" {
		t.Errorf("order not preserved: %+v", body.Items)
	}
}
