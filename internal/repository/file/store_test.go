package file

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/ragdex/ragdex/internal/domain"
)

func makeDoc(t *testing.T, id, content, scope string, embedding []float32) domain.Document {
	t.Helper()
	doc, err := domain.NewDocument(id, content, scope, domain.SourceManual, map[string]string{"k": "v"})
	if err != nil {
		t.Fatalf("NewDocument: %v", err)
	}
	doc.SetEmbedding(embedding)
	return doc
}

func newStore(t *testing.T) (*Store, string) {
	t.Helper()
	dir := t.TempDir()
	s, err := New(dir)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return s, dir
}

func TestSaveGetRoundTrip(t *testing.T) {
	ctx := context.Background()
	s, _ := newStore(t)

	doc := makeDoc(t, "d1", "hello world", "default", []float32{1, 2, 3})
	if err := s.Save(ctx, doc); err != nil {
		t.Fatalf("Save: %v", err)
	}

	got, err := s.Get(ctx, "default", "d1")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got.Content() != "hello world" {
		t.Errorf("Content = %q", got.Content())
	}
	if got.Metadata()["k"] != "v" {
		t.Errorf("Metadata = %v, want k=v", got.Metadata())
	}
	if len(got.Embedding()) != 3 {
		t.Errorf("Embedding len = %d, want 3", len(got.Embedding()))
	}
	if got.CreatedAt().IsZero() {
		t.Error("CreatedAt lost in round trip")
	}
}

func TestPersistenceAcrossReopen(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()

	s1, err := New(dir)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if err := s1.Save(ctx, makeDoc(t, "d1", "persisted", "default", []float32{1, 0})); err != nil {
		t.Fatalf("Save: %v", err)
	}

	// A fresh store over the same directory must see the document.
	s2, err := New(dir)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	got, err := s2.Get(ctx, "default", "d1")
	if err != nil {
		t.Fatalf("Get after reopen: %v", err)
	}
	if got.Content() != "persisted" {
		t.Errorf("Content = %q, want persisted", got.Content())
	}
}

func TestScopeFilesAreSeparate(t *testing.T) {
	ctx := context.Background()
	s, dir := newStore(t)

	s.Save(ctx, makeDoc(t, "d1", "a", "alpha", nil))
	s.Save(ctx, makeDoc(t, "d2", "b", "beta", nil))

	for _, scope := range []string{"alpha", "beta"} {
		if _, err := os.Stat(filepath.Join(dir, scope+".json")); err != nil {
			t.Errorf("scope file %s.json missing: %v", scope, err)
		}
	}

	if _, err := s.Get(ctx, "alpha", "d2"); !errors.Is(err, domain.ErrDocumentNotFound) {
		t.Errorf("cross-scope Get: err = %v, want ErrDocumentNotFound", err)
	}
}

func TestNoTempFileLeftBehind(t *testing.T) {
	ctx := context.Background()
	s, dir := newStore(t)

	s.Save(ctx, makeDoc(t, "d1", "x", "default", nil))

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("ReadDir: %v", err)
	}
	for _, e := range entries {
		if filepath.Ext(e.Name()) == ".tmp" {
			t.Errorf("temp file left behind: %s", e.Name())
		}
	}
}

func TestDeleteIdempotent(t *testing.T) {
	ctx := context.Background()
	s, _ := newStore(t)

	s.Save(ctx, makeDoc(t, "d1", "x", "default", nil))

	deleted, err := s.Delete(ctx, "default", "d1")
	if err != nil || !deleted {
		t.Fatalf("first Delete = (%v, %v), want (true, nil)", deleted, err)
	}
	deleted, err = s.Delete(ctx, "default", "d1")
	if err != nil || deleted {
		t.Fatalf("second Delete = (%v, %v), want (false, nil)", deleted, err)
	}
}

func TestListOrderSurvivesReopen(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()

	s1, _ := New(dir)
	for _, id := range []string{"z", "m", "a"} {
		s1.Save(ctx, makeDoc(t, id, id, "default", nil))
	}

	s2, _ := New(dir)
	docs, err := s2.List(ctx, "default", 0, 0)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	want := []string{"z", "m", "a"}
	for i, w := range want {
		if docs[i].ID() != w {
			t.Errorf("docs[%d].ID = %s, want %s", i, docs[i].ID(), w)
		}
	}
}

func TestInvalidScopeRejected(t *testing.T) {
	ctx := context.Background()
	s, _ := newStore(t)

	for _, scope := range []string{"../escape", "a/b", `a\b`} {
		doc := domain.ReconstructDocument("d1", "x", scope, domain.SourceManual, nil, time.Now(), nil)
		if err := s.Save(ctx, doc); err == nil {
			t.Errorf("Save with scope %q succeeded, want error", scope)
		}
	}
}

// blockPersist makes the next write to a scope fail by squatting a
// directory on the temp path the store writes through.
func blockPersist(t *testing.T, dir, scope string) {
	t.Helper()
	tmp := filepath.Join(dir, scope+".json.tmp")
	if err := os.MkdirAll(filepath.Join(tmp, "squat"), 0o755); err != nil {
		t.Fatalf("block persist: %v", err)
	}
}

func TestFailedSaveKeepsOldContentVisible(t *testing.T) {
	ctx := context.Background()
	s, dir := newStore(t)

	if err := s.Save(ctx, makeDoc(t, "d1", "original content", "default", nil)); err != nil {
		t.Fatalf("Save: %v", err)
	}

	blockPersist(t, dir, "default")
	err := s.Save(ctx, makeDoc(t, "d1", "replaced content", "default", nil))
	if !errors.Is(err, domain.ErrStorage) {
		t.Fatalf("Save with blocked persist: err = %v, want ErrStorage", err)
	}

	got, err := s.Get(ctx, "default", "d1")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got.Content() != "original content" {
		t.Errorf("Content after failed Save = %q, want the persisted original", got.Content())
	}
}

func TestFailedSaveDoesNotInsert(t *testing.T) {
	ctx := context.Background()
	s, dir := newStore(t)

	if err := s.Save(ctx, makeDoc(t, "d1", "kept", "default", nil)); err != nil {
		t.Fatalf("Save: %v", err)
	}

	blockPersist(t, dir, "default")
	if err := s.Save(ctx, makeDoc(t, "d2", "never lands", "default", nil)); !errors.Is(err, domain.ErrStorage) {
		t.Fatalf("Save with blocked persist: err = %v, want ErrStorage", err)
	}

	if _, err := s.Get(ctx, "default", "d2"); !errors.Is(err, domain.ErrDocumentNotFound) {
		t.Errorf("Get of unpersisted document: err = %v, want ErrDocumentNotFound", err)
	}
	if n, _ := s.Count(ctx, "default"); n != 1 {
		t.Errorf("Count = %d, want 1", n)
	}
}

func TestFailedDeleteKeepsDocument(t *testing.T) {
	ctx := context.Background()
	s, dir := newStore(t)

	if err := s.Save(ctx, makeDoc(t, "d1", "still here", "default", nil)); err != nil {
		t.Fatalf("Save: %v", err)
	}

	blockPersist(t, dir, "default")
	if _, err := s.Delete(ctx, "default", "d1"); !errors.Is(err, domain.ErrStorage) {
		t.Fatalf("Delete with blocked persist: err = %v, want ErrStorage", err)
	}

	got, err := s.Get(ctx, "default", "d1")
	if err != nil {
		t.Fatalf("Get after failed Delete: %v", err)
	}
	if got.Content() != "still here" {
		t.Errorf("Content = %q, want still here", got.Content())
	}
}

func TestListNegativeOffset(t *testing.T) {
	ctx := context.Background()
	s, _ := newStore(t)

	s.Save(ctx, makeDoc(t, "d1", "a", "default", nil))
	s.Save(ctx, makeDoc(t, "d2", "b", "default", nil))

	docs, err := s.List(ctx, "default", 0, -3)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(docs) != 2 {
		t.Errorf("got %d documents, want 2", len(docs))
	}
}

func TestSearchMinScoreBeforeTruncation(t *testing.T) {
	ctx := context.Background()
	s, _ := newStore(t)

	// Two strong matches and one weak one. With k=2 and a threshold the
	// weak candidate must not displace a strong one.
	s.Save(ctx, makeDoc(t, "weak", "weak", "default", []float32{0, 1}))
	s.Save(ctx, makeDoc(t, "strong1", "s1", "default", []float32{1, 0}))
	s.Save(ctx, makeDoc(t, "strong2", "s2", "default", []float32{1, 0.2}))

	results, err := s.Search(ctx, "default", []float32{1, 0}, 2, 0.5)
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	if len(results) != 2 {
		t.Fatalf("got %d results, want 2", len(results))
	}
	for _, r := range results {
		if r.Document.ID() == "weak" {
			t.Error("below-threshold candidate included")
		}
	}
}
