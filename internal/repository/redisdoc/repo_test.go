package redisdoc

import (
	"context"
	"errors"
	"testing"

	"github.com/ragdex/ragdex/internal/domain"
)

func makeDoc(t *testing.T, id, content, scope string, embedding []float32) domain.Document {
	t.Helper()
	doc, err := domain.NewDocument(id, content, scope, domain.SourceWeb, map[string]string{"lang": "en"})
	if err != nil {
		t.Fatalf("NewDocument: %v", err)
	}
	doc.SetEmbedding(embedding)
	return doc
}

func TestSaveGetRoundTrip(t *testing.T) {
	ctx := context.Background()
	repo := New(newMockStore(), "test:")

	doc := makeDoc(t, "d1", "hello", "default", []float32{0.5, -1.25, 3})
	if err := repo.Save(ctx, doc); err != nil {
		t.Fatalf("Save: %v", err)
	}

	got, err := repo.Get(ctx, "default", "d1")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got.Content() != "hello" {
		t.Errorf("Content = %q", got.Content())
	}
	if got.Source() != domain.SourceWeb {
		t.Errorf("Source = %q, want web", got.Source())
	}
	if got.Metadata()["lang"] != "en" {
		t.Errorf("Metadata = %v", got.Metadata())
	}
	emb := got.Embedding()
	if len(emb) != 3 || emb[0] != 0.5 || emb[1] != -1.25 || emb[2] != 3 {
		t.Errorf("Embedding = %v, want [0.5 -1.25 3]", emb)
	}
	if got.CreatedAt().IsZero() {
		t.Error("CreatedAt lost in round trip")
	}
}

func TestGetMissing(t *testing.T) {
	repo := New(newMockStore(), "test:")
	_, err := repo.Get(context.Background(), "default", "missing")
	if !errors.Is(err, domain.ErrDocumentNotFound) {
		t.Errorf("err = %v, want ErrDocumentNotFound", err)
	}
}

func TestSaveKeepsPositionOnReplace(t *testing.T) {
	ctx := context.Background()
	repo := New(newMockStore(), "test:")

	repo.Save(ctx, makeDoc(t, "a", "first", "default", nil))
	repo.Save(ctx, makeDoc(t, "b", "second", "default", nil))
	repo.Save(ctx, makeDoc(t, "a", "updated", "default", nil))

	docs, err := repo.List(ctx, "default", 0, 0)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(docs) != 2 {
		t.Fatalf("List returned %d docs, want 2", len(docs))
	}
	if docs[0].ID() != "a" || docs[0].Content() != "updated" {
		t.Errorf("first = %s/%q, want a/updated", docs[0].ID(), docs[0].Content())
	}
}

func TestDeleteIdempotent(t *testing.T) {
	ctx := context.Background()
	repo := New(newMockStore(), "test:")

	repo.Save(ctx, makeDoc(t, "d1", "x", "default", nil))

	deleted, err := repo.Delete(ctx, "default", "d1")
	if err != nil || !deleted {
		t.Fatalf("first Delete = (%v, %v), want (true, nil)", deleted, err)
	}
	deleted, err = repo.Delete(ctx, "default", "d1")
	if err != nil || deleted {
		t.Fatalf("second Delete = (%v, %v), want (false, nil)", deleted, err)
	}

	if n, _ := repo.Count(ctx, "default"); n != 0 {
		t.Errorf("Count after delete = %d, want 0", n)
	}
}

func TestListPagination(t *testing.T) {
	ctx := context.Background()
	repo := New(newMockStore(), "test:")

	for _, id := range []string{"a", "b", "c", "d"} {
		repo.Save(ctx, makeDoc(t, id, id, "default", nil))
	}

	page, err := repo.List(ctx, "default", 2, 1)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(page) != 2 || page[0].ID() != "b" || page[1].ID() != "c" {
		got := make([]string, len(page))
		for i := range page {
			got[i] = page[i].ID()
		}
		t.Errorf("List(2, 1) = %v, want [b c]", got)
	}
}

func TestScopeIsolation(t *testing.T) {
	ctx := context.Background()
	repo := New(newMockStore(), "test:")

	repo.Save(ctx, makeDoc(t, "d1", "x", "alpha", []float32{1, 0}))

	if _, err := repo.Get(ctx, "beta", "d1"); !errors.Is(err, domain.ErrDocumentNotFound) {
		t.Errorf("cross-scope Get: err = %v", err)
	}
	results, err := repo.Search(ctx, "beta", []float32{1, 0}, 5, 0)
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	if len(results) != 0 {
		t.Errorf("cross-scope Search returned %d results", len(results))
	}
}

func TestSearchRanking(t *testing.T) {
	ctx := context.Background()
	repo := New(newMockStore(), "test:")

	repo.Save(ctx, makeDoc(t, "far", "far", "default", []float32{0, 1}))
	repo.Save(ctx, makeDoc(t, "exact", "exact", "default", []float32{1, 0}))

	results, err := repo.Search(ctx, "default", []float32{1, 0}, 5, 0.5)
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	if len(results) != 1 || results[0].Document.ID() != "exact" {
		t.Errorf("results = %v, want [exact]", results)
	}
}

func TestSaveStorageError(t *testing.T) {
	ctx := context.Background()
	ms := newMockStore()
	ms.hsetErr = errors.New("connection reset")
	repo := New(ms, "test:")

	err := repo.Save(ctx, makeDoc(t, "d1", "x", "default", nil))
	if !errors.Is(err, domain.ErrStorage) {
		t.Errorf("err = %v, want ErrStorage", err)
	}
}
