package panel

import (
	"context"
	"log/slog"
	"sync"

	"selecao/internal/common"
	"selecao/internal/domain/job"
)

// JobAPI is the slice of the remote API the job list needs.
type JobAPI interface {
	ListJobs(ctx context.Context) ([]job.Job, error)
	SetJobStatus(ctx context.Context, id string, ativa bool) error
	DeleteJob(ctx context.Context, id string) error
}

// JobList caches the admin job collection. The server copy is authoritative:
// Load replaces the cache wholesale, and every mutation is followed by a full
// reload rather than a local patch.
type JobList struct {
	api     JobAPI
	logger  *slog.Logger
	tracker *ActionTracker

	mu    sync.Mutex
	items []job.Job
}

func NewJobList(api JobAPI, logger *slog.Logger) *JobList {
	if logger == nil {
		logger = slog.Default()
	}
	return &JobList{
		api:     api,
		logger:  logger,
		tracker: NewActionTracker(),
	}
}

// Load fetches the collection and overwrites the cache. On failure the prior
// state stays in place.
func (l *JobList) Load(ctx context.Context) error {
	items, err := l.api.ListJobs(ctx)
	if err != nil {
		return err
	}
	l.mu.Lock()
	l.items = items
	l.mu.Unlock()
	return nil
}

func (l *JobList) Items() []job.Job {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.items
}

func (l *JobList) Find(id string) (job.Job, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return job.Find(l.items, id)
}

// Refresh reloads after a mutation performed elsewhere (the job form).
func (l *JobList) Refresh(ctx context.Context) error {
	return l.Load(ctx)
}

// Delete removes a posting and reloads. A repeated call while the same id is
// still in flight is a no-op; a server failure leaves the cache untouched.
func (l *JobList) Delete(ctx context.Context, id string) error {
	if !l.tracker.Begin(ActionDelete, id) {
		l.logger.Debug("delete already in flight", "job_id", id)
		return nil
	}
	defer l.tracker.End(ActionDelete, id)

	if err := l.api.DeleteJob(ctx, id); err != nil {
		return err
	}
	return l.Load(ctx)
}

// Toggle flips the active flag of a posting and reloads. The target state is
// computed from the cached item, consistent with the control the user saw.
func (l *JobList) Toggle(ctx context.Context, id string) error {
	current, ok := l.Find(id)
	if !ok {
		return common.NewError(common.CodeNotFound, "vaga não encontrada", nil)
	}
	if !l.tracker.Begin(ActionToggle, id) {
		l.logger.Debug("toggle already in flight", "job_id", id)
		return nil
	}
	defer l.tracker.End(ActionToggle, id)

	if err := l.api.SetJobStatus(ctx, id, !current.Ativa); err != nil {
		return err
	}
	return l.Load(ctx)
}

// ActionInFlight reports whether id currently has an action of the given kind
// running, for disabling its control.
func (l *JobList) ActionInFlight(kind ActionKind, id string) bool {
	return l.tracker.InFlight(kind, id)
}
