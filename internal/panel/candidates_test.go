package panel

import (
	"context"
	"sync"
	"testing"

	"selecao/internal/domain/candidate"
)

type fakeCandidateAPI struct {
	mu    sync.Mutex
	items []candidate.Candidate
	calls int
	err   error
}

func (f *fakeCandidateAPI) ListCandidates(ctx context.Context) ([]candidate.Candidate, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return f.items, nil
}

func seededCandidates() []candidate.Candidate {
	return []candidate.Candidate{
		{ID: "c1", Nome: "Maria Souza", Vaga: "5", Score: 0.87},
		{ID: "c2", Nome: "João Lima", Vaga: "9", Score: 0.42},
		{ID: "c3", Nome: "Ana Castro", Vaga: "5", Score: 0.91},
	}
}

func TestCandidateListLazyLoad(t *testing.T) {
	api := &fakeCandidateAPI{items: seededCandidates()}
	list := NewCandidateList(api, nil)

	if api.calls != 0 {
		t.Fatal("constructor must not fetch")
	}
	if err := list.EnsureLoaded(context.Background()); err != nil {
		t.Fatalf("ensure: %v", err)
	}
	if err := list.EnsureLoaded(context.Background()); err != nil {
		t.Fatalf("ensure again: %v", err)
	}
	if api.calls != 1 {
		t.Fatalf("expected a single fetch, got %d", api.calls)
	}
}

func TestCandidateListFailureStaysUnloaded(t *testing.T) {
	api := &fakeCandidateAPI{err: context.DeadlineExceeded}
	list := NewCandidateList(api, nil)

	if err := list.EnsureLoaded(context.Background()); err == nil {
		t.Fatal("expected error")
	}
	api.mu.Lock()
	api.err = nil
	api.items = seededCandidates()
	api.mu.Unlock()

	if err := list.EnsureLoaded(context.Background()); err != nil {
		t.Fatalf("retry: %v", err)
	}
	if len(list.Items()) != 3 {
		t.Fatalf("retry did not load, got %d items", len(list.Items()))
	}
}

func TestCandidateListVisibleFilter(t *testing.T) {
	api := &fakeCandidateAPI{items: seededCandidates()}
	list := NewCandidateList(api, nil)
	if err := list.EnsureLoaded(context.Background()); err != nil {
		t.Fatalf("ensure: %v", err)
	}

	list.SelectJob("5")
	visible := list.Visible()
	if len(visible) != 2 {
		t.Fatalf("expected 2 candidates for job 5, got %d", len(visible))
	}
	for _, c := range visible {
		if c.Vaga != "5" {
			t.Fatalf("filter leaked candidate for job %q", c.Vaga)
		}
	}

	list.SelectJob(candidate.AllJobs)
	visible = list.Visible()
	if len(visible) != 3 {
		t.Fatalf("expected full list, got %d", len(visible))
	}
	// order preserved
	if visible[0].ID != "c1" || visible[2].ID != "c3" {
		t.Fatalf("order changed: %v", visible)
	}
}
