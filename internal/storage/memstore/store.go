package memstore

import (
	"context"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	domainErrors "github.com/darzi-app/darzi/internal/domain/errors"
	"github.com/darzi-app/darzi/internal/domain/model"
	"github.com/darzi-app/darzi/internal/domain/repository"
)

// Store is the in-memory job and tailor store. It stands in for a remote
// backend: every operation suspends the caller for a fixed latency before
// touching the collections, reads hand out snapshot copies, and every write
// signals the change feed so subscribers can refresh without waiting for the
// next poll tick.
//
// In strict mode assignment requires a pending job and status moves must be
// forward-only. Permissive mode trusts the caller.
type Store struct {
	latency time.Duration
	strict  bool
	logger  *slog.Logger
	now     func() time.Time

	mu      sync.Mutex
	jobs    []*model.Job
	tailors []*model.Tailor
	changed chan struct{}
}

// Option tweaks store construction, used by tests.
type Option func(*Store)

// WithClock replaces the timestamp source.
func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

// New creates an empty store.
func New(latency time.Duration, strict bool, logger *slog.Logger, opts ...Option) *Store {
	s := &Store{
		latency: latency,
		strict:  strict,
		logger:  logger,
		now:     time.Now,
		changed: make(chan struct{}),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Jobs returns the job repository backed by this store.
func (s *Store) Jobs() repository.JobRepository {
	return &jobRepository{store: s}
}

// Tailors returns the tailor repository backed by this store.
func (s *Store) Tailors() repository.TailorRepository {
	return &tailorRepository{store: s}
}

// Watch implements repository.ChangeFeed. The returned channel is closed
// after the next write; call Watch again to re-arm.
func (s *Store) Watch() <-chan struct{} {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.changed
}

// notifyLocked wakes all watchers. Callers hold s.mu.
func (s *Store) notifyLocked() {
	close(s.changed)
	s.changed = make(chan struct{})
}

// wait simulates the round trip to a remote store. Latency elapsing is the
// only completion path; there is no failure mode besides cancellation.
func (s *Store) wait(ctx context.Context) error {
	if s.latency <= 0 {
		return nil
	}
	t := time.NewTimer(s.latency)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

type jobRepository struct {
	store *Store
}

// newJobID builds the human-facing job id from a UUID, long enough that a
// collision is negligible.
func newJobID() string {
	raw := strings.ReplaceAll(uuid.NewString(), "-", "")
	return "JOB" + strings.ToUpper(raw[:12])
}

func (r *jobRepository) Create(ctx context.Context, job *model.Job) (*model.Job, error) {
	if err := r.store.wait(ctx); err != nil {
		return nil, err
	}

	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	stored := job.Clone()
	stored.ID = uuid.NewString()
	if stored.JobID == "" {
		stored.JobID = newJobID()
	}
	stored.Status = model.JobStatusPendingAssignment
	stored.TailorID = ""
	stored.AssignmentAmount = 0
	stored.AssignedAt = nil
	stored.StartedAt = nil
	stored.CompletedAt = nil
	stored.DeliveredAt = nil
	now := s.now()
	stored.CreatedAt = now
	stored.UpdatedAt = now

	s.jobs = append(s.jobs, &stored)
	s.notifyLocked()
	s.logger.Info("job created",
		slog.String("job_id", stored.JobID),
		slog.String("category", stored.Category.ID),
		slog.Int64("total_price", stored.TotalPrice),
	)

	out := stored.Clone()
	return &out, nil
}

func (r *jobRepository) GetByID(ctx context.Context, id string) (*model.Job, error) {
	if err := r.store.wait(ctx); err != nil {
		return nil, err
	}

	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	job := s.findJobLocked(id)
	if job == nil {
		return nil, domainErrors.ErrNotFound
	}
	out := job.Clone()
	return &out, nil
}

func (r *jobRepository) List(ctx context.Context, filter model.JobFilter) ([]model.Job, error) {
	if err := r.store.wait(ctx); err != nil {
		return nil, err
	}

	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.listJobsLocked(filter), nil
}

func (r *jobRepository) Assign(ctx context.Context, id, tailorID string, amount int64) (*model.Job, error) {
	if err := r.store.wait(ctx); err != nil {
		return nil, err
	}

	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	job := s.findJobLocked(id)
	if job == nil {
		return nil, domainErrors.ErrNotFound
	}
	if s.strict && job.Status != model.JobStatusPendingAssignment {
		return nil, domainErrors.ErrInvalidTransition
	}

	job.TailorID = tailorID
	job.AssignmentAmount = amount
	job.Status = model.JobStatusAssigned
	now := s.now()
	if job.AssignedAt == nil {
		job.AssignedAt = &now
	}
	job.UpdatedAt = now

	s.notifyLocked()
	s.logger.Info("job assigned",
		slog.String("job_id", job.JobID),
		slog.String("tailor_id", tailorID),
		slog.Int64("amount", amount),
	)

	out := job.Clone()
	return &out, nil
}

func (r *jobRepository) UpdateStatus(ctx context.Context, id string, status model.JobStatus) (*model.Job, error) {
	if err := r.store.wait(ctx); err != nil {
		return nil, err
	}

	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	job := s.findJobLocked(id)
	if job == nil {
		return nil, domainErrors.ErrNotFound
	}
	if s.strict && !job.Status.CanAdvanceTo(status) {
		return nil, domainErrors.ErrInvalidTransition
	}

	job.Status = status
	now := s.now()
	// Each lifecycle timestamp is stamped exactly once, by the transition
	// that first reaches the state.
	switch status {
	case model.JobStatusAssigned:
		if job.AssignedAt == nil {
			job.AssignedAt = &now
		}
	case model.JobStatusInProgress:
		if job.StartedAt == nil {
			job.StartedAt = &now
		}
	case model.JobStatusCompleted:
		if job.CompletedAt == nil {
			job.CompletedAt = &now
		}
	case model.JobStatusDelivered:
		if job.DeliveredAt == nil {
			job.DeliveredAt = &now
		}
	}
	job.UpdatedAt = now

	s.notifyLocked()
	s.logger.Info("job status updated",
		slog.String("job_id", job.JobID),
		slog.String("status", string(status)),
	)

	out := job.Clone()
	return &out, nil
}

// findJobLocked resolves a job by internal or human-facing id. Callers hold
// s.mu.
func (s *Store) findJobLocked(id string) *model.Job {
	for _, j := range s.jobs {
		if j.ID == id || j.JobID == id {
			return j
		}
	}
	return nil
}

// listJobsLocked returns matching snapshots in insertion order. Callers hold
// s.mu.
func (s *Store) listJobsLocked(filter model.JobFilter) []model.Job {
	out := make([]model.Job, 0, len(s.jobs))
	for _, j := range s.jobs {
		if filter.Matches(j) {
			out = append(out, j.Clone())
		}
	}
	return out
}

type tailorRepository struct {
	store *Store
}

func (r *tailorRepository) Create(ctx context.Context, tailor *model.Tailor) (*model.Tailor, error) {
	if err := r.store.wait(ctx); err != nil {
		return nil, err
	}

	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	stored := tailor.Clone()
	stored.ID = uuid.NewString()
	stored.IsActive = true
	stored.Availability = model.TailorAvailable
	now := s.now()
	stored.CreatedAt = now
	stored.UpdatedAt = now

	s.tailors = append(s.tailors, &stored)
	s.notifyLocked()
	s.logger.Info("tailor created", slog.String("tailor_id", stored.ID), slog.String("name", stored.Name))

	out := stored.Clone()
	return &out, nil
}

func (r *tailorRepository) GetByID(ctx context.Context, id string) (*model.Tailor, error) {
	if err := r.store.wait(ctx); err != nil {
		return nil, err
	}

	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, t := range s.tailors {
		if t.ID == id {
			out := t.Clone()
			return &out, nil
		}
	}
	return nil, domainErrors.ErrNotFound
}

func (r *tailorRepository) List(ctx context.Context, filter model.TailorFilter) ([]model.Tailor, error) {
	if err := r.store.wait(ctx); err != nil {
		return nil, err
	}

	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]model.Tailor, 0, len(s.tailors))
	for _, t := range s.tailors {
		if filter.Matches(t) {
			out = append(out, t.Clone())
		}
	}
	return out, nil
}

func (r *tailorRepository) SetAvailability(ctx context.Context, id string, status model.TailorAvailability) (*model.Tailor, error) {
	if err := r.store.wait(ctx); err != nil {
		return nil, err
	}

	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, t := range s.tailors {
		if t.ID == id {
			t.Availability = status
			t.UpdatedAt = s.now()
			s.notifyLocked()
			out := t.Clone()
			return &out, nil
		}
	}
	return nil, domainErrors.ErrNotFound
}
