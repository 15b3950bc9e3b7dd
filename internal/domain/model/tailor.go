package model

import "time"

// TailorAvailability describes whether a tailor can take new jobs.
type TailorAvailability string

const (
	TailorAvailable   TailorAvailability = "available"
	TailorBusy        TailorAvailability = "busy"
	TailorUnavailable TailorAvailability = "unavailable"
)

// Valid reports whether the availability is a known value.
func (a TailorAvailability) Valid() bool {
	switch a {
	case TailorAvailable, TailorBusy, TailorUnavailable:
		return true
	}
	return false
}

// Tailor is a service provider that can be assigned jobs.
type Tailor struct {
	ID           string
	Name         string
	Phone        string
	Email        string
	Address      string
	SkillTags    []string
	Availability TailorAvailability
	IsActive     bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Clone returns a deep copy safe to hand out as a snapshot.
func (t *Tailor) Clone() Tailor {
	out := *t
	if t.SkillTags != nil {
		out.SkillTags = append([]string(nil), t.SkillTags...)
	}
	return out
}

// TailorFilter narrows tailor listings.
type TailorFilter struct {
	// OnlyAvailable keeps active tailors whose availability is "available".
	OnlyAvailable bool
}

// Matches reports whether the tailor satisfies the filter.
func (f TailorFilter) Matches(t *Tailor) bool {
	if f.OnlyAvailable {
		return t.IsActive && t.Availability == TailorAvailable
	}
	return true
}
