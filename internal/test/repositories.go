package test

import (
	"context"
	"sync"

	domainErrors "github.com/darzi-app/darzi/internal/domain/errors"
	"github.com/darzi-app/darzi/internal/domain/model"
)

// JobRepositoryStub allows tests to customize behaviour per call.
type JobRepositoryStub struct {
	CreateFn       func(context.Context, *model.Job) (*model.Job, error)
	GetByIDFn      func(context.Context, string) (*model.Job, error)
	ListFn         func(context.Context, model.JobFilter) ([]model.Job, error)
	AssignFn       func(context.Context, string, string, int64) (*model.Job, error)
	UpdateStatusFn func(context.Context, string, model.JobStatus) (*model.Job, error)
}

func (s *JobRepositoryStub) Create(ctx context.Context, job *model.Job) (*model.Job, error) {
	if s.CreateFn == nil {
		panic("create not stubbed")
	}
	return s.CreateFn(ctx, job)
}

func (s *JobRepositoryStub) GetByID(ctx context.Context, id string) (*model.Job, error) {
	if s.GetByIDFn == nil {
		panic("get by id not stubbed")
	}
	return s.GetByIDFn(ctx, id)
}

func (s *JobRepositoryStub) List(ctx context.Context, filter model.JobFilter) ([]model.Job, error) {
	if s.ListFn == nil {
		panic("list not stubbed")
	}
	return s.ListFn(ctx, filter)
}

func (s *JobRepositoryStub) Assign(ctx context.Context, id, tailorID string, amount int64) (*model.Job, error) {
	if s.AssignFn == nil {
		panic("assign not stubbed")
	}
	return s.AssignFn(ctx, id, tailorID, amount)
}

func (s *JobRepositoryStub) UpdateStatus(ctx context.Context, id string, status model.JobStatus) (*model.Job, error) {
	if s.UpdateStatusFn == nil {
		panic("update status not stubbed")
	}
	return s.UpdateStatusFn(ctx, id, status)
}

// TailorRepositoryStub stores tailors in-memory for tests.
type TailorRepositoryStub struct {
	Tailors []model.Tailor
	Next    int
	Err     error
}

func (s *TailorRepositoryStub) Create(ctx context.Context, tailor *model.Tailor) (*model.Tailor, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	stored := tailor.Clone()
	s.Next++
	stored.ID = "tailor-" + string(rune('0'+s.Next))
	stored.IsActive = true
	stored.Availability = model.TailorAvailable
	s.Tailors = append(s.Tailors, stored)
	out := stored.Clone()
	return &out, nil
}

func (s *TailorRepositoryStub) GetByID(ctx context.Context, id string) (*model.Tailor, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	for _, t := range s.Tailors {
		if t.ID == id {
			out := t.Clone()
			return &out, nil
		}
	}
	return nil, domainErrors.ErrNotFound
}

func (s *TailorRepositoryStub) List(ctx context.Context, filter model.TailorFilter) ([]model.Tailor, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	out := make([]model.Tailor, 0, len(s.Tailors))
	for _, t := range s.Tailors {
		if filter.Matches(&t) {
			out = append(out, t.Clone())
		}
	}
	return out, nil
}

func (s *TailorRepositoryStub) SetAvailability(ctx context.Context, id string, status model.TailorAvailability) (*model.Tailor, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	for i := range s.Tailors {
		if s.Tailors[i].ID == id {
			s.Tailors[i].Availability = status
			out := s.Tailors[i].Clone()
			return &out, nil
		}
	}
	return nil, domainErrors.ErrNotFound
}

// ChangeFeedStub lets tests trigger write notifications by hand.
type ChangeFeedStub struct {
	mu sync.Mutex
	ch chan struct{}
}

// NewChangeFeedStub constructs an armed feed.
func NewChangeFeedStub() *ChangeFeedStub {
	return &ChangeFeedStub{ch: make(chan struct{})}
}

// Watch implements repository.ChangeFeed.
func (f *ChangeFeedStub) Watch() <-chan struct{} {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.ch
}

// Notify wakes all current watchers.
func (f *ChangeFeedStub) Notify() {
	f.mu.Lock()
	defer f.mu.Unlock()
	close(f.ch)
	f.ch = make(chan struct{})
}
