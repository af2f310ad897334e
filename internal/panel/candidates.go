package panel

import (
	"context"
	"log/slog"
	"sync"

	"selecao/internal/domain/candidate"
)

// CandidateAPI is the slice of the remote API the candidate list needs.
// Candidates are read-only from the panel's perspective.
type CandidateAPI interface {
	ListCandidates(ctx context.Context) ([]candidate.Candidate, error)
}

// CandidateList caches the candidate collection and derives a filtered view
// from the selected job. Fetched lazily on first visit to the view.
type CandidateList struct {
	api    CandidateAPI
	logger *slog.Logger

	mu          sync.Mutex
	items       []candidate.Candidate
	loaded      bool
	selectedJob string
}

func NewCandidateList(api CandidateAPI, logger *slog.Logger) *CandidateList {
	if logger == nil {
		logger = slog.Default()
	}
	return &CandidateList{
		api:         api,
		logger:      logger,
		selectedJob: candidate.AllJobs,
	}
}

// EnsureLoaded fetches the collection on the first call only.
func (l *CandidateList) EnsureLoaded(ctx context.Context) error {
	l.mu.Lock()
	loaded := l.loaded
	l.mu.Unlock()
	if loaded {
		return nil
	}
	return l.Load(ctx)
}

// Load fetches the collection and overwrites the cache. On failure the prior
// state stays in place.
func (l *CandidateList) Load(ctx context.Context) error {
	items, err := l.api.ListCandidates(ctx)
	if err != nil {
		return err
	}
	l.mu.Lock()
	l.items = items
	l.loaded = true
	l.mu.Unlock()
	return nil
}

func (l *CandidateList) Items() []candidate.Candidate {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.items
}

// SelectJob sets the job filter. The AllJobs sentinel clears it.
func (l *CandidateList) SelectJob(id string) {
	l.mu.Lock()
	l.selectedJob = id
	l.mu.Unlock()
}

func (l *CandidateList) SelectedJob() string {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.selectedJob
}

// Visible recomputes the filtered view from the cache and the selected job.
func (l *CandidateList) Visible() []candidate.Candidate {
	l.mu.Lock()
	defer l.mu.Unlock()
	return candidate.FilterByJob(l.items, l.selectedJob)
}
