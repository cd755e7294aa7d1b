package router

import (
	"context"

	"github.com/ragdex/ragdex/internal/domain"
)

type mockClassifier struct {
	cls domain.Classification
}

func (m *mockClassifier) Classify(string) domain.Classification { return m.cls }

type mockLocal struct {
	hits  []domain.SearchResult
	err   error
	calls int
}

func (m *mockLocal) Search(_ context.Context, _, _ string) ([]domain.SearchResult, error) {
	m.calls++
	return m.hits, m.err
}

type mockWeb struct {
	hits    []domain.WebResult
	err     error
	calls   int
	lastMax int
}

func (m *mockWeb) Search(_ context.Context, _ string, maxResults int) ([]domain.WebResult, error) {
	m.calls++
	m.lastMax = maxResults
	return m.hits, m.err
}

type mockGenerator struct {
	answer     string
	err        error
	lastPrompt string
	tokens     []string
}

func (m *mockGenerator) Generate(_ context.Context, prompt string) (string, error) {
	m.lastPrompt = prompt
	return m.answer, m.err
}

func (m *mockGenerator) GenerateStream(_ context.Context, prompt string, fn func(string) error) error {
	m.lastPrompt = prompt
	if m.err != nil {
		return m.err
	}
	for _, tok := range m.tokens {
		if err := fn(tok); err != nil {
			return err
		}
	}
	return nil
}

func mustDoc(t interface{ Fatalf(string, ...any) }, id, content string) domain.Document {
	doc, err := domain.NewDocument(id, content, "default", domain.SourceManual, nil)
	if err != nil {
		t.Fatalf("NewDocument(%q): %v", id, err)
	}
	return doc
}
