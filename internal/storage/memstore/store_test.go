package memstore

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"strings"
	"testing"
	"time"

	domainErrors "github.com/darzi-app/darzi/internal/domain/errors"
	"github.com/darzi-app/darzi/internal/domain/model"
)

func newTestStore(t *testing.T, opts ...Option) *Store {
	t.Helper()
	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))
	return New(0, true, logger, opts...)
}

func sampleJob(customerID string) *model.Job {
	return &model.Job{
		CustomerID: customerID,
		Category:   model.Category{ID: "shirt", Name: "Shirt", BasePrice: 600},
		Design:     model.Design{ID: "casual", Name: "Casual Shirt", Price: 50},
		BasePrice:  600,
		TotalPrice: 650,
	}
}

func TestCreateJob(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	s := newTestStore(t, WithClock(func() time.Time { return now }))
	repo := s.Jobs()

	dirty := sampleJob("alice")
	dirty.Status = model.JobStatusDelivered
	dirty.TailorID = "sneaky"
	dirty.AssignmentAmount = 999

	job, err := repo.Create(context.Background(), dirty)
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if job.ID == "" {
		t.Error("job has no internal id")
	}
	if !strings.HasPrefix(job.JobID, "JOB") || len(job.JobID) != 15 {
		t.Errorf("job id = %q, want JOB prefix plus twelve hex chars", job.JobID)
	}
	if job.Status != model.JobStatusPendingAssignment {
		t.Errorf("status = %q, want pending_assignment", job.Status)
	}
	if job.TailorID != "" || job.AssignmentAmount != 0 {
		t.Errorf("assignment fields not cleared: %+v", job)
	}
	if !job.CreatedAt.Equal(now) || !job.UpdatedAt.Equal(now) {
		t.Errorf("timestamps = %v / %v, want %v", job.CreatedAt, job.UpdatedAt, now)
	}
}

func TestJobIDsAreUnique(t *testing.T) {
	s := newTestStore(t)
	repo := s.Jobs()

	seen := make(map[string]bool)
	for i := 0; i < 50; i++ {
		job, err := repo.Create(context.Background(), sampleJob("alice"))
		if err != nil {
			t.Fatalf("Create: %v", err)
		}
		if seen[job.JobID] {
			t.Fatalf("duplicate job id %q", job.JobID)
		}
		seen[job.JobID] = true
	}
}

func TestGetByEitherID(t *testing.T) {
	s := newTestStore(t)
	repo := s.Jobs()

	created, err := repo.Create(context.Background(), sampleJob("alice"))
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	byInternal, err := repo.GetByID(context.Background(), created.ID)
	if err != nil {
		t.Fatalf("GetByID(internal): %v", err)
	}
	byHuman, err := repo.GetByID(context.Background(), created.JobID)
	if err != nil {
		t.Fatalf("GetByID(human): %v", err)
	}
	if byInternal.ID != byHuman.ID {
		t.Fatalf("lookups disagree: %q vs %q", byInternal.ID, byHuman.ID)
	}

	if _, err := repo.GetByID(context.Background(), "JOB404"); !errors.Is(err, domainErrors.ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
}

func TestListPreservesInsertionOrder(t *testing.T) {
	s := newTestStore(t)
	repo := s.Jobs()

	var ids []string
	for _, customer := range []string{"alice", "bob", "alice"} {
		job, err := repo.Create(context.Background(), sampleJob(customer))
		if err != nil {
			t.Fatalf("Create: %v", err)
		}
		ids = append(ids, job.ID)
	}

	all, err := repo.List(context.Background(), model.JobFilter{})
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(all) != 3 {
		t.Fatalf("got %d jobs, want 3", len(all))
	}
	for i, j := range all {
		if j.ID != ids[i] {
			t.Fatalf("position %d holds %q, want %q", i, j.ID, ids[i])
		}
	}

	mine, err := repo.List(context.Background(), model.JobFilter{CustomerID: "alice"})
	if err != nil {
		t.Fatalf("List(customer): %v", err)
	}
	if len(mine) != 2 {
		t.Fatalf("alice has %d jobs, want 2", len(mine))
	}
}

func TestAssign(t *testing.T) {
	s := newTestStore(t)
	repo := s.Jobs()

	created, err := repo.Create(context.Background(), sampleJob("alice"))
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	assigned, err := repo.Assign(context.Background(), created.JobID, "tailor-1", 500)
	if err != nil {
		t.Fatalf("Assign: %v", err)
	}
	if assigned.Status != model.JobStatusAssigned {
		t.Errorf("status = %q, want assigned", assigned.Status)
	}
	if assigned.TailorID != "tailor-1" || assigned.AssignmentAmount != 500 {
		t.Errorf("assignment fields = %q / %d", assigned.TailorID, assigned.AssignmentAmount)
	}
	if assigned.AssignedAt == nil {
		t.Error("AssignedAt not stamped")
	}

	workload, err := repo.List(context.Background(), model.JobFilter{TailorID: "tailor-1"})
	if err != nil {
		t.Fatalf("List(tailor): %v", err)
	}
	if len(workload) != 1 || workload[0].AssignmentAmount != 500 {
		t.Fatalf("workload = %+v", workload)
	}
}

func TestStrictAssignRequiresPending(t *testing.T) {
	s := newTestStore(t)
	repo := s.Jobs()

	created, err := repo.Create(context.Background(), sampleJob("alice"))
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if _, err := repo.Assign(context.Background(), created.ID, "tailor-1", 500); err != nil {
		t.Fatalf("first Assign: %v", err)
	}

	if _, err := repo.Assign(context.Background(), created.ID, "tailor-2", 700); !errors.Is(err, domainErrors.ErrInvalidTransition) {
		t.Fatalf("reassign err = %v, want ErrInvalidTransition", err)
	}
}

func TestStrictStatusTransitions(t *testing.T) {
	s := newTestStore(t)
	repo := s.Jobs()

	created, err := repo.Create(context.Background(), sampleJob("alice"))
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	// Skipping intermediate states forward is fine.
	job, err := repo.UpdateStatus(context.Background(), created.ID, model.JobStatusCompleted)
	if err != nil {
		t.Fatalf("UpdateStatus(completed): %v", err)
	}
	if job.Status != model.JobStatusCompleted {
		t.Fatalf("status = %q", job.Status)
	}

	// Backwards and same-state moves are not.
	if _, err := repo.UpdateStatus(context.Background(), created.ID, model.JobStatusAssigned); !errors.Is(err, domainErrors.ErrInvalidTransition) {
		t.Fatalf("backwards err = %v, want ErrInvalidTransition", err)
	}
	if _, err := repo.UpdateStatus(context.Background(), created.ID, model.JobStatusCompleted); !errors.Is(err, domainErrors.ErrInvalidTransition) {
		t.Fatalf("same-state err = %v, want ErrInvalidTransition", err)
	}
}

func TestPermissiveStatusTransitions(t *testing.T) {
	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))
	s := New(0, false, logger)
	repo := s.Jobs()

	created, err := repo.Create(context.Background(), sampleJob("alice"))
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	if _, err := repo.UpdateStatus(context.Background(), created.ID, model.JobStatusDelivered); err != nil {
		t.Fatalf("UpdateStatus(delivered): %v", err)
	}
	job, err := repo.UpdateStatus(context.Background(), created.ID, model.JobStatusInProgress)
	if err != nil {
		t.Fatalf("backwards move in permissive mode: %v", err)
	}
	if job.Status != model.JobStatusInProgress {
		t.Fatalf("status = %q", job.Status)
	}
}

func TestLifecycleTimestampsStampedOnce(t *testing.T) {
	current := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))
	s := New(0, false, logger, WithClock(func() time.Time { return current }))
	repo := s.Jobs()

	created, err := repo.Create(context.Background(), sampleJob("alice"))
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	first := current
	if _, err := repo.UpdateStatus(context.Background(), created.ID, model.JobStatusInProgress); err != nil {
		t.Fatalf("UpdateStatus: %v", err)
	}

	// Loop back and forward again; StartedAt must keep the first stamp.
	current = current.Add(time.Hour)
	if _, err := repo.UpdateStatus(context.Background(), created.ID, model.JobStatusAssigned); err != nil {
		t.Fatalf("UpdateStatus: %v", err)
	}
	current = current.Add(time.Hour)
	job, err := repo.UpdateStatus(context.Background(), created.ID, model.JobStatusInProgress)
	if err != nil {
		t.Fatalf("UpdateStatus: %v", err)
	}

	if job.StartedAt == nil || !job.StartedAt.Equal(first) {
		t.Fatalf("StartedAt = %v, want first stamp %v", job.StartedAt, first)
	}
	if !job.UpdatedAt.Equal(current) {
		t.Fatalf("UpdatedAt = %v, want %v", job.UpdatedAt, current)
	}
}

func TestWatchSignalsOnWrite(t *testing.T) {
	s := newTestStore(t)
	repo := s.Jobs()

	watch := s.Watch()
	select {
	case <-watch:
		t.Fatal("watch fired before any write")
	default:
	}

	if _, err := repo.Create(context.Background(), sampleJob("alice")); err != nil {
		t.Fatalf("Create: %v", err)
	}

	select {
	case <-watch:
	case <-time.After(time.Second):
		t.Fatal("watch not signalled after write")
	}

	// Re-armed channel observes the next write too.
	watch = s.Watch()
	if _, err := s.Tailors().Create(context.Background(), &model.Tailor{Name: "Meera", Phone: "222"}); err != nil {
		t.Fatalf("tailor Create: %v", err)
	}
	select {
	case <-watch:
	case <-time.After(time.Second):
		t.Fatal("watch not signalled after second write")
	}
}

func TestLatencyRespectsCancellation(t *testing.T) {
	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))
	s := New(time.Minute, true, logger)
	repo := s.Jobs()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := repo.List(ctx, model.JobFilter{}); !errors.Is(err, context.Canceled) {
		t.Fatalf("err = %v, want context.Canceled", err)
	}
}

func TestSnapshotsAreDetached(t *testing.T) {
	s := newTestStore(t)
	repo := s.Jobs()

	created, err := repo.Create(context.Background(), sampleJob("alice"))
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	created.TotalPrice = 1
	created.Category.BasePrice = 1

	fresh, err := repo.GetByID(context.Background(), created.ID)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if fresh.TotalPrice != 650 || fresh.Category.BasePrice != 600 {
		t.Fatalf("snapshot mutation leaked into store: %+v", fresh)
	}
}

func TestTailorLifecycle(t *testing.T) {
	s := newTestStore(t)
	repo := s.Tailors()

	created, err := repo.Create(context.Background(), &model.Tailor{Name: "Meera", Phone: "222"})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if created.ID == "" || !created.IsActive || created.Availability != model.TailorAvailable {
		t.Fatalf("created tailor = %+v", created)
	}

	busy, err := repo.SetAvailability(context.Background(), created.ID, model.TailorBusy)
	if err != nil {
		t.Fatalf("SetAvailability: %v", err)
	}
	if busy.Availability != model.TailorBusy {
		t.Fatalf("availability = %q", busy.Availability)
	}

	available, err := repo.List(context.Background(), model.TailorFilter{OnlyAvailable: true})
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(available) != 0 {
		t.Fatalf("busy tailor still listed as available: %+v", available)
	}

	if _, err := repo.SetAvailability(context.Background(), "ghost", model.TailorAvailable); !errors.Is(err, domainErrors.ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
}
