package chi

import (
	"context"

	"github.com/ragdex/ragdex/internal/domain"
	"github.com/ragdex/ragdex/internal/usecase/health"
	"github.com/ragdex/ragdex/internal/usecase/router"
	"github.com/ragdex/ragdex/internal/usecase/search"
)

type mockDocuments struct {
	doc       domain.Document
	docs      []domain.Document
	count     int
	deleted   bool
	err       error
	lastID    string
	lastScope string
}

func (m *mockDocuments) Add(_ context.Context, id, content, scope string, source domain.Source, metadata map[string]string) (domain.Document, error) {
	m.lastID = id
	m.lastScope = scope
	if m.err != nil {
		return domain.Document{}, m.err
	}
	doc, err := domain.NewDocument(id, content, scope, source, metadata)
	if err != nil {
		return domain.Document{}, err
	}
	return doc, nil
}

func (m *mockDocuments) Get(_ context.Context, scope, id string) (domain.Document, error) {
	m.lastID = id
	m.lastScope = scope
	return m.doc, m.err
}

func (m *mockDocuments) Delete(_ context.Context, scope, id string) (bool, error) {
	m.lastID = id
	m.lastScope = scope
	return m.deleted, m.err
}

func (m *mockDocuments) List(_ context.Context, scope string, limit, offset int) ([]domain.Document, error) {
	m.lastScope = scope
	return m.docs, m.err
}

func (m *mockDocuments) Count(_ context.Context, scope string) (int, error) {
	return m.count, m.err
}

type mockSearch struct {
	results  []domain.SearchResult
	err      error
	lastOpts search.Options
}

func (m *mockSearch) Search(_ context.Context, query, scope string, opts search.Options) ([]domain.SearchResult, error) {
	m.lastOpts = opts
	return m.results, m.err
}

type mockRouter struct {
	cls      domain.Classification
	strategy domain.Strategy
	answer   router.Answer
	err      error
	tokens   []string
}

func (m *mockRouter) Classify(string) domain.Classification { return m.cls }

func (m *mockRouter) Strategy(domain.Category) domain.Strategy { return m.strategy }

func (m *mockRouter) Answer(_ context.Context, _, _ string) (router.Answer, error) {
	return m.answer, m.err
}

func (m *mockRouter) AnswerStream(_ context.Context, _, _ string, fn func(string) error) (router.Answer, error) {
	if m.err != nil {
		return router.Answer{}, m.err
	}
	for _, tok := range m.tokens {
		if err := fn(tok); err != nil {
			return router.Answer{}, err
		}
	}
	return m.answer, nil
}

type mockHealth struct {
	report health.Report
}

func (m *mockHealth) Check(context.Context) health.Report { return m.report }
