package dto

import "time"

// CreateTailorRequest registers a new tailor.
type CreateTailorRequest struct {
	Name      string   `json:"name"`
	Phone     string   `json:"phone"`
	Email     string   `json:"email"`
	Address   string   `json:"address"`
	SkillTags []string `json:"skill_tags"`
}

// AvailabilityRequest updates a tailor's availability status.
type AvailabilityRequest struct {
	Status string `json:"status"`
}

// TailorResponse is the API shape of a tailor record.
type TailorResponse struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Phone        string    `json:"phone"`
	Email        string    `json:"email,omitempty"`
	Address      string    `json:"address,omitempty"`
	SkillTags    []string  `json:"skill_tags,omitempty"`
	Availability string    `json:"availability"`
	IsActive     bool      `json:"is_active"`
	CreatedAt    time.Time `json:"created_at"`
}
