package model

import "time"

// Job is a career listing.  Inactive jobs are only visible on the admin
// surface.
type Job struct {
	ID               string    `json:"id"`
	Title            string    `json:"title"`
	Department       string    `json:"department"`
	Location         string    `json:"location"`
	Type             string    `json:"type"`
	Salary           string    `json:"salary"`
	Description      string    `json:"description"`
	Requirements     []string  `json:"requirements"`
	Responsibilities []string  `json:"responsibilities"`
	Benefits         []string  `json:"benefits"`
	IsActive         bool      `json:"active"`
	CreatedAt        time.Time `json:"created_at"`
}

// Application statuses an admin can move a candidate through.
const (
	ApplicationStatusNew         = "new"
	ApplicationStatusReviewed    = "reviewed"
	ApplicationStatusShortlisted = "shortlisted"
	ApplicationStatusRejected    = "rejected"
)

// JobApplication is a candidate submission for a Job.  JobTitle is
// denormalized at submit time so the inbox stays readable after a listing
// is deleted.
type JobApplication struct {
	ID          string    `json:"id"`
	JobID       string    `json:"job_id"`
	JobTitle    string    `json:"job_title"`
	Name        string    `json:"name"`
	Email       string    `json:"email"`
	Phone       string    `json:"phone"`
	ResumeURL   string    `json:"resume_url"`
	CoverLetter string    `json:"cover_letter"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"created_at"`
}

// ValidApplicationStatus reports whether s is a status the triage endpoint
// accepts.
func ValidApplicationStatus(s string) bool {
	switch s {
	case ApplicationStatusNew, ApplicationStatusReviewed,
		ApplicationStatusShortlisted, ApplicationStatusRejected:
		return true
	}
	return false
}
