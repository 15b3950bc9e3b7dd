package model

import "time"

// JobStatus describes the fulfillment lifecycle of a submitted job.
type JobStatus string

const (
	JobStatusPendingAssignment JobStatus = "pending_assignment"
	JobStatusAssigned          JobStatus = "assigned"
	JobStatusInProgress        JobStatus = "in_progress"
	JobStatusCompleted         JobStatus = "completed"
	JobStatusDelivered         JobStatus = "delivered"
)

var statusRank = map[JobStatus]int{
	JobStatusPendingAssignment: 0,
	JobStatusAssigned:          1,
	JobStatusInProgress:        2,
	JobStatusCompleted:         3,
	JobStatusDelivered:         4,
}

// Valid reports whether the status is a known lifecycle state.
func (s JobStatus) Valid() bool {
	_, ok := statusRank[s]
	return ok
}

// CanAdvanceTo reports whether moving to next is a forward move. The
// lifecycle is strictly forward; skipping intermediate states is allowed.
func (s JobStatus) CanAdvanceTo(next JobStatus) bool {
	from, ok := statusRank[s]
	if !ok {
		return false
	}
	to, ok := statusRank[next]
	if !ok {
		return false
	}
	return to > from
}

// Job is a submitted order with an assignment and fulfillment lifecycle.
// Snapshot fields are copied from the draft at submission time and never
// change afterwards.
type Job struct {
	ID                string
	JobID             string
	CustomerID        string
	Category          Category
	Design            Design
	AddOns            []AddOn
	BasePrice         int64
	TotalPrice        int64
	DeliveryDate      time.Time
	MeasurementMethod MeasurementMethod
	MeasurementImage  string
	Measurements      map[string]float64
	PickupTime        string

	Status           JobStatus
	TailorID         string
	AssignmentAmount int64

	CreatedAt   time.Time
	UpdatedAt   time.Time
	AssignedAt  *time.Time
	StartedAt   *time.Time
	CompletedAt *time.Time
	DeliveredAt *time.Time
}

// Clone returns a deep copy safe to hand out as a snapshot.
func (j *Job) Clone() Job {
	out := *j
	if j.AddOns != nil {
		out.AddOns = append([]AddOn(nil), j.AddOns...)
	}
	if j.Measurements != nil {
		out.Measurements = make(map[string]float64, len(j.Measurements))
		for k, v := range j.Measurements {
			out.Measurements[k] = v
		}
	}
	out.AssignedAt = cloneTime(j.AssignedAt)
	out.StartedAt = cloneTime(j.StartedAt)
	out.CompletedAt = cloneTime(j.CompletedAt)
	out.DeliveredAt = cloneTime(j.DeliveredAt)
	return out
}

func cloneTime(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	c := *t
	return &c
}

// JobFilter is a conjunction over the present fields; zero values match all.
type JobFilter struct {
	Status     JobStatus
	CustomerID string
	TailorID   string
}

// Matches reports whether the job satisfies every set filter field.
func (f JobFilter) Matches(j *Job) bool {
	if f.Status != "" && j.Status != f.Status {
		return false
	}
	if f.CustomerID != "" && j.CustomerID != f.CustomerID {
		return false
	}
	if f.TailorID != "" && j.TailorID != f.TailorID {
		return false
	}
	return true
}
